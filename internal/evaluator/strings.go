package evaluator

import (
	"strings"

	"github.com/tschaub/openlayers/internal/exprast"
	"github.com/tschaub/openlayers/internal/valuetype"
)

func compileConcat(call *exprast.Call) (Func, error) {
	args, err := compileArgs(call)
	if err != nil {
		return nil, err
	}
	return func(c *EvaluationContext) (any, error) {
		var sb strings.Builder
		for _, arg := range args {
			s, err := evalString(arg, c)
			if err != nil {
				return nil, err
			}
			sb.WriteString(s)
		}
		return sb.String(), nil
	}, nil
}

// compileLength implements "length" over either a String or a
// NumberArray, dispatching on the compiled argument's own declared type
// (exprparser.parseLength already resolved which one applies at parse
// time).
func compileLength(call *exprast.Call) (Func, error) {
	args, err := compileArgs(call)
	if err != nil {
		return nil, err
	}
	arg := args[0]
	wantsString := call.Args[0].Type() == valuetype.String
	return func(c *EvaluationContext) (any, error) {
		v, err := arg(c)
		if err != nil {
			return nil, err
		}
		if wantsString {
			s, ok := v.(string)
			if !ok {
				return nil, evalTypeError("string", v)
			}
			return float64(len([]rune(s))), nil
		}
		arr, ok := v.([]float64)
		if !ok {
			return nil, evalTypeError("number array", v)
		}
		return float64(len(arr)), nil
	}, nil
}

func evalString(fn Func, c *EvaluationContext) (string, error) {
	v, err := fn(c)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", evalTypeError("string", v)
	}
	return s, nil
}
