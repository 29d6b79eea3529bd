package exprparser

import (
	"github.com/tschaub/openlayers/internal/exprast"
	"github.com/tschaub/openlayers/internal/parsectx"
	"github.com/tschaub/openlayers/internal/valuetype"
)

func variadicArithParser(op string) opParser {
	return func(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
		if err := requireAtLeast(args, 2, op); err != nil {
			return nil, err
		}
		parsed := make([]exprast.Expression, len(args))
		for i := range args {
			node, err := parseArg(args, i, valuetype.Number, ctx, parseColor, op)
			if err != nil {
				return nil, err
			}
			parsed[i] = node
		}
		return &exprast.Call{ValueType: valuetype.Number, Operator: op, Args: parsed}, nil
	}
}

func binaryArithParser(op string) opParser {
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
		return &exprast.Call{ValueType: valuetype.Number, Operator: op, Args: []exprast.Expression{left, right}}, nil
	}
}

func unaryMathParser(op string) opParser {
	return func(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
		if err := requireExact(args, 1, op); err != nil {
			return nil, err
		}
		arg, err := parseArg(args, 0, valuetype.Number, ctx, parseColor, op)
		if err != nil {
			return nil, err
		}
		return &exprast.Call{ValueType: valuetype.Number, Operator: op, Args: []exprast.Expression{arg}}, nil
	}
}

func parseClamp(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
	if err := requireExact(args, 3, "clamp"); err != nil {
		return nil, err
	}
	parsed := make([]exprast.Expression, 3)
	for i := 0; i < 3; i++ {
		node, err := parseArg(args, i, valuetype.Number, ctx, parseColor, "clamp")
		if err != nil {
			return nil, err
		}
		parsed[i] = node
	}
	return &exprast.Call{ValueType: valuetype.Number, Operator: "clamp", Args: parsed}, nil
}

func parseAtan(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
	if err := requireOneOrTwo(args, "atan"); err != nil {
		return nil, err
	}
	parsed := make([]exprast.Expression, len(args))
	for i := range args {
		node, err := parseArg(args, i, valuetype.Number, ctx, parseColor, "atan")
		if err != nil {
			return nil, err
		}
		parsed[i] = node
	}
	return &exprast.Call{ValueType: valuetype.Number, Operator: "atan", Args: parsed}, nil
}
