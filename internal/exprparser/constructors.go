package exprparser

import (
	"github.com/tschaub/openlayers/internal/exprast"
	"github.com/tschaub/openlayers/internal/parsectx"
	"github.com/tschaub/openlayers/internal/valuetype"
	"github.com/tschaub/openlayers/pkg/exprerr"
)

// parseConcat parses "concat a1 a2 …" (≥2 String args).
func parseConcat(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
	if err := requireAtLeast(args, 2, "concat"); err != nil {
		return nil, err
	}
	parsed := make([]exprast.Expression, len(args))
	for i := range args {
		node, err := parseArg(args, i, valuetype.String, ctx, parseColor, "concat")
		if err != nil {
			return nil, err
		}
		parsed[i] = node
	}
	return &exprast.Call{ValueType: valuetype.String, Operator: "concat", Args: parsed}, nil
}

// parseToString is pure sugar: "to-string x" is exactly the same as
// declaring x's expected type String, so no extra Call wrapper is built.
func parseToString(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
	if err := requireExact(args, 1, "to-string"); err != nil {
		return nil, err
	}
	return parseArg(args, 0, valuetype.String, ctx, parseColor, "to-string")
}

// parseLength parses "length x" where x is a String or NumberArray.
// The argument's own type dictates which length is taken,
// so both candidate types are probed against a scratch context first. A
// plain string literal only probes clean as String (a number[] never
// coerces from a bare string); a plain number array probes clean as both,
// since coerceString also joins arrays, and a "get"/"var" accessor always
// probes clean as both too, since it type-checks against whatever type
// its caller declares. When both succeed, number[] wins: it's the more
// common shape to measure dynamically (dash patterns, category lists). A
// caller that wants the length of a dynamic string should wrap it in
// "to-string" first, which pins the type unambiguously.
func parseLength(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
	if err := requireExact(args, 1, "length"); err != nil {
		return nil, err
	}

	stringScratch := parsectx.New()
	_, stringErr := Parse(args[0], valuetype.String, stringScratch, parseColor)

	arrayScratch := parsectx.New()
	_, arrayErr := Parse(args[0], valuetype.NumberArray, arrayScratch, parseColor)

	argType := valuetype.NumberArray
	switch {
	case stringErr != nil && arrayErr != nil:
		return nil, arrayErr
	case arrayErr != nil:
		argType = valuetype.String
	}

	node, err := parseArg(args, 0, argType, ctx, parseColor, "length")
	if err != nil {
		return nil, err
	}
	return &exprast.Call{ValueType: valuetype.Number, Operator: "length", Args: []exprast.Expression{node}}, nil
}

// parseLiteralEscape parses "literal v" by coercing v directly through
// valuetype.Coerce, bypassing Parse's array/string call-dispatch entirely.
// This lets an array whose first element happens to be a string be
// expressed unambiguously as data rather than a call.
func parseLiteralEscape(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
	if err := requireExact(args, 1, "literal"); err != nil {
		return nil, err
	}
	return parseLiteral(args[0], t, parseColor)
}

// parseArrayCtor parses "array a1 a2 …" (≥1 Number args) into a NumberArray
// literal-shaped call; every argument must itself parse as Number.
func parseArrayCtor(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
	if err := requireAtLeast(args, 1, "array"); err != nil {
		return nil, err
	}
	parsed := make([]exprast.Expression, len(args))
	for i := range args {
		node, err := parseArg(args, i, valuetype.Number, ctx, parseColor, "array")
		if err != nil {
			return nil, err
		}
		parsed[i] = node
	}
	return &exprast.Call{ValueType: valuetype.NumberArray, Operator: "array", Args: parsed}, nil
}

// parseColorCtor parses "color v1 …" (1-4 Number args: single shade, shade
// + alpha, rgb, or rgba).
func parseColorCtor(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
	if err := requireRange(args, 1, 4, "color"); err != nil {
		return nil, err
	}
	parsed := make([]exprast.Expression, len(args))
	for i := range args {
		node, err := parseArg(args, i, valuetype.Number, ctx, parseColor, "color")
		if err != nil {
			return nil, err
		}
		parsed[i] = node
	}
	return &exprast.Call{ValueType: valuetype.ColorType, Operator: "color", Args: parsed}, nil
}

// parseBand parses "band index [xOffset [yOffset]]" (1-3 Number args),
// reading a raster band value at evaluation time.
func parseBand(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
	if err := requireRange(args, 1, 3, "band"); err != nil {
		return nil, err
	}
	parsed := make([]exprast.Expression, len(args))
	for i := range args {
		node, err := parseArg(args, i, valuetype.Number, ctx, parseColor, "band")
		if err != nil {
			return nil, err
		}
		parsed[i] = node
	}
	return &exprast.Call{ValueType: valuetype.Number, Operator: "band", Args: parsed}, nil
}

// parsePalette parses "palette index [color1, color2, …]": index is a
// Number, and the second argument is an array whose entries
// must each parse as a *literal* Color value (not a dynamic
// sub-expression), since the palette is meant to be resolved into a
// lookup table once at parse time.
func parsePalette(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
	if err := requireExact(args, 2, "palette"); err != nil {
		return nil, err
	}
	index, err := parseArg(args, 0, valuetype.Number, ctx, parseColor, "palette")
	if err != nil {
		return nil, err
	}
	colorsRaw, ok := args[1].([]any)
	if !ok {
		return nil, exprerr.NewParseError(exprerr.MsgPaletteColorsNotArray)
	}
	colors := make([]exprast.Expression, len(colorsRaw))
	for i, raw := range colorsRaw {
		node, err := Parse(raw, valuetype.ColorType, ctx, parseColor)
		if err != nil {
			return nil, exprerr.WrapParseError(err, exprerr.MsgFailedPaletteColor, i)
		}
		if !exprast.IsLiteral(node) {
			return nil, exprerr.NewParseError(exprerr.MsgPaletteColorNotLiteral, i)
		}
		colors[i] = node
	}
	return &exprast.Call{ValueType: valuetype.ColorType, Operator: "palette", Args: append([]exprast.Expression{index}, colors...)}, nil
}
