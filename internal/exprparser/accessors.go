package exprparser

import (
	"math"

	"github.com/tschaub/openlayers/internal/exprast"
	"github.com/tschaub/openlayers/internal/parsectx"
	"github.com/tschaub/openlayers/internal/valuetype"
	"github.com/tschaub/openlayers/pkg/exprerr"
)

// accessorParser builds the shared "get"/"has"/"var" handler. variable
// selects the parsing context's variables mapping over its properties
// mapping; "has" always registers and returns Boolean regardless of the
// caller's requested type, since presence is all it ever reports.
func accessorParser(op string, variable bool) opParser {
	return func(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
		if len(args) == 0 {
			return nil, exprerr.NewParseError(exprerr.MsgEmptyPath, op)
		}

		pathArgs := args
		var defaultValue any
		hasDefault := false

		if opts, ok := args[len(args)-1].(map[string]any); ok {
			pathArgs = args[:len(args)-1]
			for k := range opts {
				if k != "default" {
					return nil, exprerr.NewParseError(exprerr.MsgInvalidOptionsRecord, op)
				}
			}
			if v, ok := opts["default"]; ok {
				defaultValue = v
				hasDefault = true
			}
		}

		if len(pathArgs) == 0 {
			return nil, exprerr.NewParseError(exprerr.MsgEmptyPath, op)
		}

		path := make([]any, len(pathArgs))
		for i, seg := range pathArgs {
			switch v := seg.(type) {
			case string:
				path[i] = v
			default:
				n, ok := nonNegativeInt(v)
				if !ok {
					return nil, exprerr.NewParseError(exprerr.MsgInvalidPathSegment, op, seg)
				}
				path[i] = n
			}
		}

		registerType := t
		resultType := t
		if op == "has" {
			registerType = valuetype.Boolean
			resultType = valuetype.Boolean
		}

		var key string
		if variable {
			_, key = ctx.RegisterVariable(path, registerType, defaultValue, hasDefault)
		} else {
			_, key = ctx.RegisterProperty(path, registerType, defaultValue, hasDefault)
		}

		return &exprast.Call{
			ValueType: resultType,
			Operator:  op,
			Args:      []exprast.Expression{&exprast.Literal{ValueType: valuetype.String, Value: key}},
		}, nil
	}
}

func nonNegativeInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n >= 0 && n == math.Trunc(n) {
			return int(n), true
		}
	case int:
		if n >= 0 {
			return n, true
		}
	case int64:
		if n >= 0 {
			return int(n), true
		}
	}
	return 0, false
}

func idParser(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
	if err := requireExact(args, 0, "id"); err != nil {
		return nil, err
	}
	ctx.MarkFeatureID()
	return &exprast.Call{ValueType: t, Operator: "id"}, nil
}

func geometryTypeParser(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
	if err := requireExact(args, 0, "geometry-type"); err != nil {
		return nil, err
	}
	ctx.MarkGeometryType()
	return &exprast.Call{ValueType: t, Operator: "geometry-type"}, nil
}

func noArgReaderParser(op string) opParser {
	return func(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
		if err := requireExact(args, 0, op); err != nil {
			return nil, err
		}
		return &exprast.Call{ValueType: t, Operator: op}, nil
	}
}
