package evaluator

import (
	"math"

	"github.com/tschaub/openlayers/internal/exprast"
	"github.com/tschaub/openlayers/internal/valuetype"
)

// compileInterpolate implements "interpolate". The first
// two compiled args are always the method name ("linear"/"exponential")
// and base (1 for linear) literals exprparser.parseInterpolate attaches;
// the third is the input, followed by stop/output pairs. Output values
// below the first stop or above the last are clamped to the nearest
// stop's output; Color outputs blend channel-wise (RGB rounded, alpha
// kept as a float), matching how the rest of the evaluator treats Color.
func compileInterpolate(call *exprast.Call) (Func, error) {
	args, err := compileArgs(call)
	if err != nil {
		return nil, err
	}

	base, err := constantNumber(args[1])
	if err != nil {
		return nil, err
	}
	input := args[2]
	pairs := args[3:]
	outputType := call.Args[len(call.Args)-1].Type()

	return func(c *EvaluationContext) (any, error) {
		x, err := evalNumber(input, c)
		if err != nil {
			return nil, err
		}

		stops := make([]float64, len(pairs)/2)
		for i := 0; i < len(pairs); i += 2 {
			s, err := evalNumber(pairs[i], c)
			if err != nil {
				return nil, err
			}
			stops[i/2] = s
		}

		if x <= stops[0] {
			return pairs[1](c)
		}
		if x >= stops[len(stops)-1] {
			return pairs[len(pairs)-1](c)
		}

		idx := 0
		for idx < len(stops)-1 && stops[idx+1] <= x {
			idx++
		}
		lowerStop, upperStop := stops[idx], stops[idx+1]
		t := interpolationFraction(base, lowerStop, upperStop, x)

		lower, err := pairs[2*idx+1](c)
		if err != nil {
			return nil, err
		}
		upper, err := pairs[2*idx+3](c)
		if err != nil {
			return nil, err
		}

		return blend(outputType, lower, upper, t)
	}, nil
}

// interpolationFraction computes the normalized position of x between
// lower and upper for the given interpolation base. base == 1 is linear
// interpolation; any other positive base applies the exponential curve
// used throughout web map styling ("interpolate base 2", etc.).
func interpolationFraction(base, lower, upper, x float64) float64 {
	span := upper - lower
	if span == 0 {
		return 0
	}
	progress := (x - lower) / span
	if base == 1 {
		return progress
	}
	return (math.Pow(base, progress*span) - 1) / (math.Pow(base, span) - 1)
}

func blend(t valuetype.Type, lower, upper any, frac float64) (any, error) {
	switch t {
	case valuetype.Number:
		a, ok := lower.(float64)
		b, ok2 := upper.(float64)
		if !ok || !ok2 {
			return nil, evalTypeError("number", lower)
		}
		return a + (b-a)*frac, nil
	case valuetype.ColorType:
		a, ok := lower.(valuetype.Color)
		b, ok2 := upper.(valuetype.Color)
		if !ok || !ok2 {
			return nil, evalTypeError("color", lower)
		}
		return valuetype.Lerp(a, b, frac), nil
	default:
		if frac < 0.5 {
			return lower, nil
		}
		return upper, nil
	}
}

func constantNumber(fn Func) (float64, error) {
	v, err := fn(nil)
	if err != nil {
		return 0, err
	}
	n, ok := v.(float64)
	if !ok {
		return 0, evalTypeError("number", v)
	}
	return n, nil
}
