package exprparser

import (
	"github.com/tschaub/openlayers/internal/exprast"
	"github.com/tschaub/openlayers/internal/parsectx"
	"github.com/tschaub/openlayers/internal/valuetype"
	"github.com/tschaub/openlayers/pkg/exprerr"
)

// opParser parses a call's arguments (the encoded array minus its leading
// operator-name string) into a typed node. t is the result type the caller
// expects of the whole call: every operator validates its argument count,
// parses its arguments with their own expected types, and returns a call
// node of type t.
type opParser func(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error)

var dispatch map[string]opParser

func init() {
	dispatch = map[string]opParser{
		"get": accessorParser("get", false),
		"has": accessorParser("has", false),
		"var": accessorParser("var", true),

		"id":            idParser,
		"geometry-type": geometryTypeParser,
		"resolution":    noArgReaderParser("resolution"),
		"zoom":          noArgReaderParser("zoom"),
		"time":          noArgReaderParser("time"),
		"line-metric":   noArgReaderParser("line-metric"),

		"concat": parseConcat,

		"!":   parseNot,
		"all": logicalParser("all"),
		"any": logicalParser("any"),

		"==":      comparisonParser("=="),
		"!=":      comparisonParser("!="),
		"<":       comparisonParser("<"),
		"<=":      comparisonParser("<="),
		">":       comparisonParser(">"),
		">=":      comparisonParser(">="),
		"between": parseBetween,

		"+":     variadicArithParser("+"),
		"*":     variadicArithParser("*"),
		"-":     binaryArithParser("-"),
		"/":     binaryArithParser("/"),
		"%":     binaryArithParser("%"),
		"^":     binaryArithParser("^"),
		"clamp": parseClamp,
		"abs":   unaryMathParser("abs"),
		"floor": unaryMathParser("floor"),
		"ceil":  unaryMathParser("ceil"),
		"round": unaryMathParser("round"),
		"sin":   unaryMathParser("sin"),
		"cos":   unaryMathParser("cos"),
		"sqrt":  unaryMathParser("sqrt"),
		"atan":  parseAtan,

		"case":         parseCase,
		"match-number": matchParser(valuetype.Number, "match-number"),
		"match":        parseMatchAlias,
		"match-string": matchParser(valuetype.String, "match-string"),
		"coalesce":     parseCoalesce,

		"interpolate": parseInterpolate,

		"in": parseIn,

		"array":     parseArrayCtor,
		"color":     parseColorCtor,
		"band":      parseBand,
		"palette":   parsePalette,
		"to-string": parseToString,
		"length":    parseLength,
		"literal":   parseLiteralEscape,
	}
}

// Parse converts an encoded expression into a typed expression tree whose
// Type() equals t, or fails with an *exprerr.ParseError or
// *exprerr.LiteralError. ctx accumulates accessor metadata as a side
// effect; parseColor is the color-string collaborator literal coercion
// delegates to — pass nil if the expression is known not to touch color
// literals.
func Parse(encoded any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
	if arr, ok := encoded.([]any); ok {
		if len(arr) == 0 {
			return nil, exprerr.NewParseError(exprerr.MsgEmptyExpression)
		}
		if op, ok := arr[0].(string); ok {
			handler, known := dispatch[op]
			if !known {
				return nil, exprerr.NewParseError(exprerr.MsgUnknownOperator, op)
			}
			node, err := handler(arr[1:], t, ctx, parseColor)
			if err != nil {
				return nil, err
			}
			if node.Type() != t {
				return nil, exprerr.NewParseError(exprerr.MsgUnexpectedType, op, t, node.Type())
			}
			return node, nil
		}
		return parseLiteral(encoded, t, parseColor)
	}

	if isPrimitive(encoded) {
		return parseLiteral(encoded, t, parseColor)
	}

	return nil, exprerr.NewParseError(exprerr.MsgExpressionShape)
}

func isPrimitive(v any) bool {
	switch v.(type) {
	case bool, float64, float32, int, int64, string:
		return true
	default:
		return false
	}
}

func parseLiteral(raw any, t valuetype.Type, parseColor valuetype.ColorParser) (exprast.Expression, error) {
	val, err := valuetype.Coerce(raw, t, parseColor)
	if err != nil {
		return nil, err
	}
	return &exprast.Literal{ValueType: t, Value: val}, nil
}

// parseArg recursively parses args[index] as t, wrapping any failure in
// the "failed to parse argument i of OP expression" template every
// operator's argument parsing uses.
func parseArg(args []any, index int, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser, op string) (exprast.Expression, error) {
	node, err := Parse(args[index], t, ctx, parseColor)
	if err != nil {
		return nil, exprerr.WrapParseError(err, exprerr.MsgFailedArgument, index, op)
	}
	return node, nil
}

