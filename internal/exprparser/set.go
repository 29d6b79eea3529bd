package exprparser

import (
	"github.com/tschaub/openlayers/internal/exprast"
	"github.com/tschaub/openlayers/internal/parsectx"
	"github.com/tschaub/openlayers/internal/valuetype"
	"github.com/tschaub/openlayers/pkg/exprerr"
)

// parseIn parses "in needle haystack". haystack is a raw array of literal
// values, optionally wrapped in a "literal" operator. A
// raw array whose first element is a string is ambiguous with a call
// expression, so it must be wrapped — ["literal", ["a", "b"]] — to be
// accepted as string haystack data.
func parseIn(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
	if err := requireExact(args, 2, "in"); err != nil {
		return nil, err
	}

	haystackRaw, err := unwrapHaystack(args[1])
	if err != nil {
		return nil, err
	}

	needleType := valuetype.Number
	if len(haystackRaw) > 0 {
		if _, isString := haystackRaw[0].(string); isString {
			needleType = valuetype.String
		}
	}

	needle, err := parseArg(args, 0, needleType, ctx, parseColor, "in")
	if err != nil {
		return nil, err
	}

	items := make([]exprast.Expression, len(haystackRaw))
	for i, raw := range haystackRaw {
		node, err := parseLiteral(raw, needleType, parseColor)
		if err != nil {
			return nil, exprerr.WrapParseError(err, exprerr.MsgFailedHaystackItem, i)
		}
		items[i] = node
	}

	callArgs := append([]exprast.Expression{needle}, items...)
	return &exprast.Call{ValueType: valuetype.Boolean, Operator: "in", Args: callArgs}, nil
}

// unwrapHaystack accepts either ["literal", [...]] or a bare array and
// returns the underlying slice of raw values. A bare array whose first
// element is a string is rejected: it must go through "literal" to avoid
// being parsed as a call.
func unwrapHaystack(encoded any) ([]any, error) {
	arr, ok := encoded.([]any)
	if !ok {
		return nil, exprerr.NewParseError(exprerr.MsgInHaystackNotArray)
	}

	if len(arr) > 0 {
		if op, isString := arr[0].(string); isString && op == "literal" {
			if len(arr) != 2 {
				return nil, exprerr.NewParseError(exprerr.MsgInHaystackNotArray)
			}
			inner, ok := arr[1].([]any)
			if !ok {
				return nil, exprerr.NewParseError(exprerr.MsgInHaystackNotArray)
			}
			return inner, nil
		}
	}

	if len(arr) > 0 {
		if _, isString := arr[0].(string); isString {
			return nil, exprerr.NewParseError(exprerr.MsgInStringArrayNeedsLiteral)
		}
	}

	return arr, nil
}
