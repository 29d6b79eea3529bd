package exprparser

import (
	"github.com/tschaub/openlayers/internal/exprast"
	"github.com/tschaub/openlayers/internal/parsectx"
	"github.com/tschaub/openlayers/internal/valuetype"
)

func parseNot(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
	if err := requireExact(args, 1, "!"); err != nil {
		return nil, err
	}
	arg, err := parseArg(args, 0, valuetype.Boolean, ctx, parseColor, "!")
	if err != nil {
		return nil, err
	}
	return &exprast.Call{ValueType: valuetype.Boolean, Operator: "!", Args: []exprast.Expression{arg}}, nil
}

func logicalParser(op string) opParser {
	return func(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
		if err := requireAtLeast(args, 2, op); err != nil {
			return nil, err
		}
		parsed := make([]exprast.Expression, len(args))
		for i := range args {
			node, err := parseArg(args, i, valuetype.Boolean, ctx, parseColor, op)
			if err != nil {
				return nil, err
			}
			parsed[i] = node
		}
		return &exprast.Call{ValueType: valuetype.Boolean, Operator: op, Args: parsed}, nil
	}
}
