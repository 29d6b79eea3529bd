package evaluator

import (
	"math"

	"github.com/tschaub/openlayers/internal/exprast"
)

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

func product(values []float64) float64 {
	total := 1.0
	for _, v := range values {
		total *= v
	}
	return total
}

func mod(a, b float64) float64  { return math.Mod(a, b) }
func pow(a, b float64) float64  { return math.Pow(a, b) }
func absf(v float64) float64    { return math.Abs(v) }
func floorf(v float64) float64  { return math.Floor(v) }
func ceilf(v float64) float64   { return math.Ceil(v) }
func roundf(v float64) float64  { return math.Round(v) }
func sinf(v float64) float64    { return math.Sin(v) }
func cosf(v float64) float64    { return math.Cos(v) }
func sqrtf(v float64) float64   { return math.Sqrt(v) }

func compileVariadicArith(reduce func([]float64) float64) compileFn {
	return func(call *exprast.Call) (Func, error) {
		args, err := compileArgs(call)
		if err != nil {
			return nil, err
		}
		return func(c *EvaluationContext) (any, error) {
			values := make([]float64, len(args))
			for i, arg := range args {
				v, err := evalNumber(arg, c)
				if err != nil {
					return nil, err
				}
				values[i] = v
			}
			return reduce(values), nil
		}, nil
	}
}

func compileBinaryArith(op func(a, b float64) float64) compileFn {
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
			return op(a, b), nil
		}, nil
	}
}

func compileUnaryMath(op func(float64) float64) compileFn {
	return func(call *exprast.Call) (Func, error) {
		args, err := compileArgs(call)
		if err != nil {
			return nil, err
		}
		arg := args[0]
		return func(c *EvaluationContext) (any, error) {
			v, err := evalNumber(arg, c)
			if err != nil {
				return nil, err
			}
			return op(v), nil
		}, nil
	}
}

func compileAtan(call *exprast.Call) (Func, error) {
	args, err := compileArgs(call)
	if err != nil {
		return nil, err
	}
	return func(c *EvaluationContext) (any, error) {
		values := make([]float64, len(args))
		for i, arg := range args {
			v, err := evalNumber(arg, c)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		if len(values) == 1 {
			return math.Atan(values[0]), nil
		}
		return math.Atan2(values[0], values[1]), nil
	}, nil
}

func compileClamp(call *exprast.Call) (Func, error) {
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
		return clampNumber(v, min, max), nil
	}, nil
}

func clampNumber(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func evalNumber(fn Func, c *EvaluationContext) (float64, error) {
	v, err := fn(c)
	if err != nil {
		return 0, err
	}
	n, ok := v.(float64)
	if !ok {
		return 0, evalTypeError("number", v)
	}
	return n, nil
}
