package exprparser

import (
	"github.com/tschaub/openlayers/internal/exprast"
	"github.com/tschaub/openlayers/internal/parsectx"
	"github.com/tschaub/openlayers/internal/valuetype"
	"github.com/tschaub/openlayers/pkg/exprerr"
)

const linearBase = 1

// parseInterpolate parses "interpolate [method] input stop1 out1 stop2 out2 …".
// method is itself an encoded array, either ["linear"] or
// ["exponential", base]; the parsed node always carries a method-name
// literal and a base literal (1 for linear) as its first two args, so the
// evaluator never needs to special-case linear interpolation separately
// from the base=1 exponential case.
func parseInterpolate(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
	if err := requireAtLeast(args, 4, "interpolate"); err != nil {
		return nil, err
	}

	method, base, err := parseInterpolationType(args[0])
	if err != nil {
		return nil, err
	}

	rest := args[1:]
	if err := requireOdd(rest, 3, "interpolate"); err != nil {
		return nil, err
	}

	input, err := parseArg(rest, 0, valuetype.Number, ctx, parseColor, "interpolate")
	if err != nil {
		return nil, err
	}

	pairs := rest[1:]
	parsedPairs := make([]exprast.Expression, len(pairs))
	var prevStop float64
	for i := 0; i < len(pairs); i += 2 {
		stopLit, ok := pairs[i].(float64)
		if !ok {
			if n, isInt := pairs[i].(int); isInt {
				stopLit = float64(n)
			} else {
				return nil, exprerr.NewParseError(exprerr.MsgStopsMustBeLiteral, i/2)
			}
		}
		if i > 0 && stopLit <= prevStop {
			return nil, exprerr.NewParseError(exprerr.MsgStopsNotIncreasing, i/2, stopLit, i/2-1, prevStop)
		}
		prevStop = stopLit

		stopNode, err := parseArg(pairs, i, valuetype.Number, ctx, parseColor, "interpolate")
		if err != nil {
			return nil, err
		}
		outNode, err := parseArg(pairs, i+1, t, ctx, parseColor, "interpolate")
		if err != nil {
			return nil, err
		}
		parsedPairs[i], parsedPairs[i+1] = stopNode, outNode
	}

	allArgs := make([]exprast.Expression, 0, 2+1+len(parsedPairs))
	allArgs = append(allArgs, method, base, input)
	allArgs = append(allArgs, parsedPairs...)
	return &exprast.Call{ValueType: t, Operator: "interpolate", Args: allArgs}, nil
}

func parseInterpolationType(encoded any) (method, base *exprast.Literal, err error) {
	arr, ok := encoded.([]any)
	if !ok || len(arr) == 0 {
		return nil, nil, exprerr.NewParseError(exprerr.MsgInvalidInterpolationType, encoded)
	}
	name, ok := arr[0].(string)
	if !ok {
		return nil, nil, exprerr.NewParseError(exprerr.MsgInvalidInterpolationType, encoded)
	}
	switch name {
	case "linear":
		if len(arr) != 1 {
			return nil, nil, exprerr.NewParseError(exprerr.MsgInvalidInterpolationType, encoded)
		}
		return &exprast.Literal{ValueType: valuetype.String, Value: "linear"},
			&exprast.Literal{ValueType: valuetype.Number, Value: float64(linearBase)}, nil
	case "exponential":
		if len(arr) != 2 {
			return nil, nil, exprerr.NewParseError(exprerr.MsgInvalidInterpolationType, encoded)
		}
		baseVal, ok := arr[1].(float64)
		if !ok {
			if n, isInt := arr[1].(int); isInt {
				baseVal = float64(n)
			} else {
				return nil, nil, exprerr.NewParseError(exprerr.MsgExpectedExponentialBase, arr[1])
			}
		}
		if baseVal <= 0 {
			return nil, nil, exprerr.NewParseError(exprerr.MsgExponentialBasePositive, arr[1])
		}
		return &exprast.Literal{ValueType: valuetype.String, Value: "exponential"},
			&exprast.Literal{ValueType: valuetype.Number, Value: baseVal}, nil
	default:
		return nil, nil, exprerr.NewParseError(exprerr.MsgInvalidInterpolationType, encoded)
	}
}
