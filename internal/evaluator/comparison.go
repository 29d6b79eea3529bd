package evaluator

import "github.com/tschaub/openlayers/internal/exprast"

func compileComparison(accept func(cmp int) bool) compileFn {
	return func(call *exprast.Call) (Func, error) {
		args, err := compileArgs(call)
		if err != nil {
			return nil, err
		}
		left, right := args[0], args[1]
		return func(c *EvaluationContext) (any, error) {
			a, err := evalNumber(left, c)
			if err != nil {
				return nil, err
			}
			b, err := evalNumber(right, c)
			if err != nil {
				return nil, err
			}
			return accept(compareFloat(a, b)), nil
		}, nil
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compileBetween(call *exprast.Call) (Func, error) {
	args, err := compileArgs(call)
	if err != nil {
		return nil, err
	}
	value, lo, hi := args[0], args[1], args[2]
	return func(c *EvaluationContext) (any, error) {
		v, err := evalNumber(value, c)
		if err != nil {
			return nil, err
		}
		min, err := evalNumber(lo, c)
		if err != nil {
			return nil, err
		}
		max, err := evalNumber(hi, c)
		if err != nil {
			return nil, err
		}
		return v >= min && v <= max, nil
	}, nil
}
