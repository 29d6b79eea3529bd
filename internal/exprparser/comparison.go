package exprparser

import (
	"github.com/tschaub/openlayers/internal/exprast"
	"github.com/tschaub/openlayers/internal/parsectx"
	"github.com/tschaub/openlayers/internal/valuetype"
)

func comparisonParser(op string) opParser {
	return func(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
		if err := requireExact(args, 2, op); err != nil {
			return nil, err
		}
		left, err := parseArg(args, 0, valuetype.Number, ctx, parseColor, op)
		if err != nil {
			return nil, err
		}
		right, err := parseArg(args, 1, valuetype.Number, ctx, parseColor, op)
		if err != nil {
			return nil, err
		}
		return &exprast.Call{ValueType: valuetype.Boolean, Operator: op, Args: []exprast.Expression{left, right}}, nil
	}
}

func parseBetween(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
	if err := requireExact(args, 3, "between"); err != nil {
		return nil, err
	}
	parsed := make([]exprast.Expression, 3)
	for i := 0; i < 3; i++ {
		node, err := parseArg(args, i, valuetype.Number, ctx, parseColor, "between")
		if err != nil {
			return nil, err
		}
		parsed[i] = node
	}
	return &exprast.Call{ValueType: valuetype.Boolean, Operator: "between", Args: parsed}, nil
}
