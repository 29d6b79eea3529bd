package evaluator

import "github.com/tschaub/openlayers/internal/exprast"

// compileNot implements "!" with the explicit truthy rule: true or any
// number > 0 is truthy (negates to false); everything else — false,
// non-positive numbers, strings, Undefined — is not (negates to true).
func compileNot(call *exprast.Call) (Func, error) {
	args, err := compileArgs(call)
	if err != nil {
		return nil, err
	}
	arg := args[0]
	return func(c *EvaluationContext) (any, error) {
		v, err := arg(c)
		if err != nil {
			return nil, err
		}
		return !truthy(v), nil
	}, nil
}

func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case float64:
		return x > 0
	default:
		return false
	}
}

// compileAll implements "all": short-circuits false on the first false
// operand, evaluated left to right.
func compileAll(call *exprast.Call) (Func, error) {
	args, err := compileArgs(call)
	if err != nil {
		return nil, err
	}
	return func(c *EvaluationContext) (any, error) {
		for _, arg := range args {
			v, err := evalBoolean(arg, c)
			if err != nil {
				return nil, err
			}
			if !v {
				return false, nil
			}
		}
		return true, nil
	}, nil
}

// compileAny implements "any": short-circuits true on the first true
// operand, evaluated left to right.
func compileAny(call *exprast.Call) (Func, error) {
	args, err := compileArgs(call)
	if err != nil {
		return nil, err
	}
	return func(c *EvaluationContext) (any, error) {
		for _, arg := range args {
			v, err := evalBoolean(arg, c)
			if err != nil {
				return nil, err
			}
			if v {
				return true, nil
			}
		}
		return false, nil
	}, nil
}

// evalBoolean absorbs Undefined as false rather than erroring, so a
// condition built on an absent optional property just falls through to
// the next condition or the fallback.
func evalBoolean(fn Func, c *EvaluationContext) (bool, error) {
	v, err := fn(c)
	if err != nil {
		return false, err
	}
	if isUndefined(v) {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, evalTypeError("boolean", v)
	}
	return b, nil
}
