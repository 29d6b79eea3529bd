package evaluator

import (
	"strconv"

	"github.com/tschaub/openlayers/internal/exprast"
	"github.com/tschaub/openlayers/internal/valuetype"
)

func compileArrayCtor(call *exprast.Call) (Func, error) {
	args, err := compileArgs(call)
	if err != nil {
		return nil, err
	}
	return func(c *EvaluationContext) (any, error) {
		out := make([]float64, len(args))
		for i, arg := range args {
			v, err := evalNumber(arg, c)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}, nil
}

func compileColorCtor(call *exprast.Call) (Func, error) {
	args, err := compileArgs(call)
	if err != nil {
		return nil, err
	}
	return func(c *EvaluationContext) (any, error) {
		channels := make([]float64, len(args))
		for i, arg := range args {
			v, err := evalNumber(arg, c)
			if err != nil {
				return nil, err
			}
			channels[i] = v
		}
		color, ok := valuetype.ColorFromChannels(channels)
		if !ok {
			return nil, evalTypeError("color", channels)
		}
		return color, nil
	}, nil
}

// compileBand implements "band index [xOffset [yOffset]]": raster sampling
// is out of scope for the CPU evaluator's I/O-free core, so it resolves
// against whatever band values the caller populated as ordinary numeric
// properties keyed "band:<index>:<x>:<y>" — a style layer wires the
// actual raster read before invoking the compiled expression.
func compileBand(call *exprast.Call) (Func, error) {
	args, err := compileArgs(call)
	if err != nil {
		return nil, err
	}
	index := args[0]
	var xOffset, yOffset Func
	if len(args) > 1 {
		xOffset = args[1]
	}
	if len(args) > 2 {
		yOffset = args[2]
	}
	return func(c *EvaluationContext) (any, error) {
		i, err := evalNumber(index, c)
		if err != nil {
			return nil, err
		}
		x, y := 0.0, 0.0
		if xOffset != nil {
			if x, err = evalNumber(xOffset, c); err != nil {
				return nil, err
			}
		}
		if yOffset != nil {
			if y, err = evalNumber(yOffset, c); err != nil {
				return nil, err
			}
		}
		slug := bandSlug(i, x, y)
		v, ok := c.property(slug)
		if !ok {
			return 0.0, nil
		}
		n, ok := v.(float64)
		if !ok {
			return nil, evalTypeError("number", v)
		}
		return n, nil
	}, nil
}

func bandSlug(index, xOffset, yOffset float64) string {
	return "band:" + strconv.FormatFloat(index, 'f', -1, 64) +
		":" + strconv.FormatFloat(xOffset, 'f', -1, 64) +
		":" + strconv.FormatFloat(yOffset, 'f', -1, 64)
}

// compilePalette implements "palette index color1 color2 …": every color
// argument is a parse-time literal (enforced by exprparser.parsePalette),
// so the lookup table is built once outside the returned closure and the
// closure itself only truncates the index toward zero, clamps it to the
// table's bounds, and indexes into it.
func compilePalette(call *exprast.Call) (Func, error) {
	args, err := compileArgs(call)
	if err != nil {
		return nil, err
	}
	index := args[0]
	colors := make([]valuetype.Color, len(args)-1)
	for i, arg := range args[1:] {
		v, err := arg(nil)
		if err != nil {
			return nil, err
		}
		color, ok := v.(valuetype.Color)
		if !ok {
			return nil, evalTypeError("color", v)
		}
		colors[i] = color
	}
	return func(c *EvaluationContext) (any, error) {
		i, err := evalNumber(index, c)
		if err != nil {
			return nil, err
		}
		idx := int(i)
		if idx < 0 {
			idx = 0
		}
		if idx >= len(colors) {
			idx = len(colors) - 1
		}
		return colors[idx], nil
	}, nil
}

func compileIn(call *exprast.Call) (Func, error) {
	args, err := compileArgs(call)
	if err != nil {
		return nil, err
	}
	needle := args[0]
	haystack := args[1:]
	return func(c *EvaluationContext) (any, error) {
		n, err := needle(c)
		if err != nil {
			return nil, err
		}
		for _, item := range haystack {
			v, err := item(c)
			if err != nil {
				return nil, err
			}
			if v == n {
				return true, nil
			}
		}
		return false, nil
	}, nil
}
