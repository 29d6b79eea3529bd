package exprparser

import (
	"github.com/tschaub/openlayers/internal/exprast"
	"github.com/tschaub/openlayers/internal/parsectx"
	"github.com/tschaub/openlayers/internal/valuetype"
)

// parseCase parses "case cond1 out1 cond2 out2 … fallback": an odd
// argument count of at least 3, alternating boolean conditions and
// T-typed outputs, ending in a T-typed fallback.
func parseCase(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
	if err := requireOdd(args, 3, "case"); err != nil {
		return nil, err
	}
	parsed := make([]exprast.Expression, len(args))
	for i := 0; i < len(args)-1; i += 2 {
		cond, err := parseArg(args, i, valuetype.Boolean, ctx, parseColor, "case")
		if err != nil {
			return nil, err
		}
		out, err := parseArg(args, i+1, t, ctx, parseColor, "case")
		if err != nil {
			return nil, err
		}
		parsed[i], parsed[i+1] = cond, out
	}
	fallback, err := parseArg(args, len(args)-1, t, ctx, parseColor, "case")
	if err != nil {
		return nil, err
	}
	parsed[len(args)-1] = fallback
	return &exprast.Call{ValueType: t, Operator: "case", Args: parsed}, nil
}

// matchParser builds the shared "match-number"/"match-string" handler:
// an even argument count of at least 4 — value, then (key, output) pairs,
// then a T-typed fallback. matchType is the type both value and every key
// parse as.
func matchParser(matchType valuetype.Type, evaluatorOp string) opParser {
	return func(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
		if err := requireEven(args, 4, evaluatorOp); err != nil {
			return nil, err
		}
		return buildMatch(args, t, ctx, parseColor, matchType, evaluatorOp)
	}
}

func buildMatch(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser, matchType valuetype.Type, evaluatorOp string) (exprast.Expression, error) {
	parsed := make([]exprast.Expression, len(args))
	value, err := parseArg(args, 0, matchType, ctx, parseColor, evaluatorOp)
	if err != nil {
		return nil, err
	}
	parsed[0] = value
	for i := 1; i < len(args)-1; i += 2 {
		key, err := parseArg(args, i, matchType, ctx, parseColor, evaluatorOp)
		if err != nil {
			return nil, err
		}
		out, err := parseArg(args, i+1, t, ctx, parseColor, evaluatorOp)
		if err != nil {
			return nil, err
		}
		parsed[i], parsed[i+1] = key, out
	}
	fallback, err := parseArg(args, len(args)-1, t, ctx, parseColor, evaluatorOp)
	if err != nil {
		return nil, err
	}
	parsed[len(args)-1] = fallback
	return &exprast.Call{ValueType: t, Operator: evaluatorOp, Args: parsed}, nil
}

// parseMatchAlias resolves the legacy bare "match" operator: it behaves
// as match-number if the first branch key parses as a number,
// else as match-string. The probe targets the first key (args[1]), not
// the value being matched (args[0]): the value is frequently a dynamic
// "get"/"var" accessor, which type-checks trivially against either
// Number or String at parse time regardless of what it actually reads at
// evaluation time, so probing it would always resolve to match-number.
// A literal branch key carries the real signal. The trial parse runs
// against a scratch parsing context so a failed attempt never leaks
// accessor registrations into ctx.
func parseMatchAlias(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
	if err := requireEven(args, 4, "match"); err != nil {
		return nil, err
	}
	scratch := parsectx.New()
	if _, err := Parse(args[1], valuetype.Number, scratch, parseColor); err == nil {
		return buildMatch(args, t, ctx, parseColor, valuetype.Number, "match-number")
	}
	return buildMatch(args, t, ctx, parseColor, valuetype.String, "match-string")
}

// parseCoalesce parses "coalesce a1 a2 …" (≥2 args, each T), a first-class
// operator rather than sugar over case/has.
func parseCoalesce(args []any, t valuetype.Type, ctx *parsectx.Context, parseColor valuetype.ColorParser) (exprast.Expression, error) {
	if err := requireAtLeast(args, 2, "coalesce"); err != nil {
		return nil, err
	}
	parsed := make([]exprast.Expression, len(args))
	for i := range args {
		node, err := parseArg(args, i, t, ctx, parseColor, "coalesce")
		if err != nil {
			return nil, err
		}
		parsed[i] = node
	}
	return &exprast.Call{ValueType: t, Operator: "coalesce", Args: parsed}, nil
}
