package exprparser

import (
	"errors"
	"testing"

	"github.com/tschaub/openlayers/internal/colorparse"
	"github.com/tschaub/openlayers/internal/parsectx"
	"github.com/tschaub/openlayers/internal/valuetype"
	"github.com/tschaub/openlayers/pkg/exprerr"
)

func mustParse(t *testing.T, encoded any, ty valuetype.Type, ctx *parsectx.Context) any {
	t.Helper()
	node, err := Parse(encoded, ty, ctx, colorparse.Parse)
	if err != nil {
		t.Fatalf("Parse(%v, %v) failed: %v", encoded, ty, err)
	}
	return node
}

func TestParseLiteralPrimitives(t *testing.T) {
	ctx := parsectx.New()
	mustParse(t, "hello", valuetype.String, ctx)
	mustParse(t, 3.0, valuetype.Number, ctx)
	mustParse(t, true, valuetype.Boolean, ctx)
}

func TestParseEmptyExpressionFails(t *testing.T) {
	ctx := parsectx.New()
	_, err := Parse([]any{}, valuetype.Number, ctx, colorparse.Parse)
	if err == nil {
		t.Fatal("expected an empty array to fail parsing")
	}
	var parseErr *exprerr.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected a *exprerr.ParseError, got %T", err)
	}
}

func TestParseUnknownOperatorFails(t *testing.T) {
	ctx := parsectx.New()
	_, err := Parse([]any{"not-a-real-operator"}, valuetype.Number, ctx, colorparse.Parse)
	if err == nil {
		t.Fatal("expected an unknown operator to fail parsing")
	}
}

func TestParseGetRegistersAccessor(t *testing.T) {
	ctx := parsectx.New()
	mustParse(t, []any{"get", "name"}, valuetype.String, ctx)
	props := ctx.Properties()
	if len(props) != 1 {
		t.Fatalf("expected exactly one registered property, got %d", len(props))
	}
	for _, acc := range props {
		if acc.Slug != "name_0" {
			t.Fatalf("got slug %q, want \"name_0\"", acc.Slug)
		}
	}
}

func TestParseHasAlwaysReturnsBoolean(t *testing.T) {
	ctx := parsectx.New()
	node := mustParse(t, []any{"has", "name"}, valuetype.Boolean, ctx)
	if node.(interface{ Type() valuetype.Type }).Type() != valuetype.Boolean {
		t.Fatal("expected \"has\" to produce a boolean-typed node")
	}
}

func TestParseGetWithDefault(t *testing.T) {
	ctx := parsectx.New()
	mustParse(t, []any{"get", "name", map[string]any{"default": "anonymous"}}, valuetype.String, ctx)
	for _, acc := range ctx.Properties() {
		if !acc.HasDefault || acc.Default != "anonymous" {
			t.Fatalf("got default %v (has=%v), want \"anonymous\" (has=true)", acc.Default, acc.HasDefault)
		}
	}
}

func TestParseIDAndGeometryTypeMarkUsage(t *testing.T) {
	ctx := parsectx.New()
	if ctx.UsesFeatureID() || ctx.UsesGeometryType() {
		t.Fatal("a fresh context should report neither flag")
	}
	mustParse(t, []any{"id"}, valuetype.String, ctx)
	if !ctx.UsesFeatureID() {
		t.Fatal("expected parsing \"id\" to mark feature-id usage")
	}
	mustParse(t, []any{"geometry-type"}, valuetype.String, ctx)
	if !ctx.UsesGeometryType() {
		t.Fatal("expected parsing \"geometry-type\" to mark geometry-type usage")
	}
}

func TestParseArrayCtorRejectsZeroArgs(t *testing.T) {
	ctx := parsectx.New()
	_, err := Parse([]any{"array"}, valuetype.NumberArray, ctx, colorparse.Parse)
	if err == nil {
		t.Fatal("expected \"array\" with zero elements to fail (at least one required)")
	}
}

func TestParseArrayCtorAcceptsOneArg(t *testing.T) {
	ctx := parsectx.New()
	mustParse(t, []any{"array", 1.0}, valuetype.NumberArray, ctx)
}

func TestParseColorCtorAcceptsOneToFourArgs(t *testing.T) {
	ctx := parsectx.New()
	for _, args := range [][]any{
		{"color", 128.0},
		{"color", 128.0, 0.5},
		{"color", 1.0, 2.0, 3.0},
		{"color", 1.0, 2.0, 3.0, 0.5},
	} {
		mustParse(t, args, valuetype.ColorType, ctx)
	}
	if _, err := Parse([]any{"color"}, valuetype.ColorType, ctx, colorparse.Parse); err == nil {
		t.Fatal("expected \"color\" with zero arguments to fail")
	}
	if _, err := Parse([]any{"color", 1.0, 2.0, 3.0, 4.0, 5.0}, valuetype.ColorType, ctx, colorparse.Parse); err == nil {
		t.Fatal("expected \"color\" with five arguments to fail")
	}
}

func TestParseBandAcceptsOneToThreeArgs(t *testing.T) {
	ctx := parsectx.New()
	mustParse(t, []any{"band", 0.0}, valuetype.Number, ctx)
	mustParse(t, []any{"band", 0.0, 1.0}, valuetype.Number, ctx)
	mustParse(t, []any{"band", 0.0, 1.0, 1.0}, valuetype.Number, ctx)
	if _, err := Parse([]any{"band", 0.0, 1.0, 1.0, 1.0}, valuetype.Number, ctx, colorparse.Parse); err == nil {
		t.Fatal("expected \"band\" with four arguments to fail")
	}
}

func TestParsePaletteRequiresIndexAndColorArray(t *testing.T) {
	ctx := parsectx.New()
	mustParse(t, []any{"palette", 1.0, []any{"red", "green", "blue"}}, valuetype.ColorType, ctx)

	if _, err := Parse([]any{"palette", 1.0, "red", "green"}, valuetype.ColorType, ctx, colorparse.Parse); err == nil {
		t.Fatal("expected the flat variadic shape to fail: palette takes (index, [colors])")
	}
	if _, err := Parse([]any{"palette", 1.0, "red"}, valuetype.ColorType, ctx, colorparse.Parse); err == nil {
		t.Fatal("expected a non-array second argument to fail")
	}
}

func TestParsePaletteRejectsNonLiteralColor(t *testing.T) {
	ctx := parsectx.New()
	_, err := Parse([]any{"palette", 1.0, []any{[]any{"get", "fill"}}}, valuetype.ColorType, ctx, colorparse.Parse)
	if err == nil {
		t.Fatal("expected a dynamic (non-literal) palette color to fail")
	}
}

func TestParseConcatRequiresAtLeastTwoArgs(t *testing.T) {
	ctx := parsectx.New()
	if _, err := Parse([]any{"concat", "a"}, valuetype.String, ctx, colorparse.Parse); err == nil {
		t.Fatal("expected \"concat\" with one argument to fail")
	}
	mustParse(t, []any{"concat", "a", "b"}, valuetype.String, ctx)
}

func TestParseToStringIsSugar(t *testing.T) {
	ctx := parsectx.New()
	node, err := Parse([]any{"to-string", 3.0}, valuetype.String, ctx, colorparse.Parse)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.String() != "3" {
		t.Fatalf("got %q, want the coerced literal string \"3\"", node.String())
	}
}

func TestParseLengthDispatchesOnArgumentType(t *testing.T) {
	ctx := parsectx.New()
	mustParse(t, []any{"length", "hello"}, valuetype.Number, ctx)
	mustParse(t, []any{"length", []any{"array", 1.0, 2.0, 3.0}}, valuetype.Number, ctx)
}

// TestParseLengthOverAccessorRegistersNumberArray covers a dynamic "get"
// argument, which type-checks against either String or number[] regardless
// of what it actually reads: "length" must resolve it to number[] (the
// accessor gets registered with that type) rather than always falling to
// whichever candidate type is probed first.
func TestParseLengthOverAccessorRegistersNumberArray(t *testing.T) {
	ctx := parsectx.New()
	mustParse(t, []any{"length", []any{"get", "tags"}}, valuetype.Number, ctx)
	if len(ctx.Properties()) != 1 {
		t.Fatalf("got %d registered properties, want 1", len(ctx.Properties()))
	}
	for _, acc := range ctx.Properties() {
		if acc.Type != valuetype.NumberArray {
			t.Fatalf("got accessor type %v, want number[]", acc.Type)
		}
	}
}

func TestParseLiteralEscapeBypassesCallDispatch(t *testing.T) {
	ctx := parsectx.New()
	node := mustParse(t, []any{"literal", []any{"not", "a", "call"}}, valuetype.String, ctx)
	if node.String() != "not,a,call" {
		t.Fatalf("got %q, want the array coerced to a joined string", node.String())
	}
}

func TestParseInWrappedStringArray(t *testing.T) {
	ctx := parsectx.New()
	mustParse(t, []any{"in", []any{"get", "category"}, []any{"literal", []any{"a", "b", "c"}}}, valuetype.Boolean, ctx)
}

func TestParseInBareStringArrayRejected(t *testing.T) {
	ctx := parsectx.New()
	_, err := Parse([]any{"in", []any{"get", "category"}, []any{"a", "b"}}, valuetype.Boolean, ctx, colorparse.Parse)
	if err == nil {
		t.Fatal("expected a bare string-array haystack to require \"literal\" wrapping")
	}
}

func TestParseInBareNumberArrayAllowed(t *testing.T) {
	ctx := parsectx.New()
	mustParse(t, []any{"in", []any{"get", "category"}, []any{1.0, 2.0, 3.0}}, valuetype.Boolean, ctx)
}

func TestParseMatchAliasResolvesNumberOrString(t *testing.T) {
	ctx := parsectx.New()
	mustParse(t, []any{"match", 1.0, 1.0, "one", "other"}, valuetype.String, ctx)
	mustParse(t, []any{"match", "a", "a", "first", "other"}, valuetype.String, ctx)
}

func TestParseCaseRequiresOddArgCount(t *testing.T) {
	ctx := parsectx.New()
	if _, err := Parse([]any{"case", true, "a"}, valuetype.String, ctx, colorparse.Parse); err == nil {
		t.Fatal("expected an even arg count (missing fallback) to fail")
	}
	mustParse(t, []any{"case", true, "a", "fallback"}, valuetype.String, ctx)
}

func TestParseInterpolateRejectsNonIncreasingStops(t *testing.T) {
	ctx := parsectx.New()
	_, err := Parse([]any{"interpolate", []any{"linear"}, []any{"zoom"}, 0.0, 1.0, 0.0, 2.0}, valuetype.Number, ctx, colorparse.Parse)
	if err == nil {
		t.Fatal("expected non-increasing interpolation stops to fail")
	}
}

func TestParseInterpolateExponentialRequiresPositiveBase(t *testing.T) {
	ctx := parsectx.New()
	_, err := Parse([]any{"interpolate", []any{"exponential", -1.0}, []any{"zoom"}, 0.0, 1.0}, valuetype.Number, ctx, colorparse.Parse)
	if err == nil {
		t.Fatal("expected a non-positive exponential base to fail")
	}
}

func TestParseColorLiteralUsesColorParser(t *testing.T) {
	ctx := parsectx.New()
	mustParse(t, "red", valuetype.ColorType, ctx)
}
