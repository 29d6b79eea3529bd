package evaluator

import (
	"testing"

	"github.com/tschaub/openlayers/internal/colorparse"
	"github.com/tschaub/openlayers/internal/exprparser"
	"github.com/tschaub/openlayers/internal/parsectx"
	"github.com/tschaub/openlayers/internal/valuetype"
)

// build parses encoded against a fresh context and compiles it, failing
// the test on either step. It mirrors the styleexpr.BuildExpression
// convenience without importing the public package, keeping evaluator's
// tests independent of its own caller.
func build(t *testing.T, encoded any, ty valuetype.Type) (Func, *parsectx.Context) {
	t.Helper()
	ctx := parsectx.New()
	node, err := exprparser.Parse(encoded, ty, ctx, colorparse.Parse)
	if err != nil {
		t.Fatalf("Parse(%v) failed: %v", encoded, err)
	}
	fn, err := Compile(node)
	if err != nil {
		t.Fatalf("Compile(%v) failed: %v", encoded, err)
	}
	return fn, ctx
}

func evalOrFatal(t *testing.T, fn Func, c *EvaluationContext) any {
	t.Helper()
	v, err := fn(c)
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	return v
}

// TestGetReturnsPropertyValue checks that "get" resolves a property by its
// accessor key.
func TestGetReturnsPropertyValue(t *testing.T) {
	fn, ctx := build(t, []any{"get", "property"}, valuetype.Number)
	c := NewEvaluationContext()
	for key := range ctx.Properties() {
		c.SetProperty(key, 42.0)
	}
	got := evalOrFatal(t, fn, c)
	if got != 42.0 {
		t.Fatalf("got %v, want 42", got)
	}
}

// TestGetUndefinedWhenAbsentWithNoDefault checks the evaluator's half of
// default handling: default application happens in the accessor
// processor (see internal/accessor), so the evaluator itself only needs
// to prove that a slug truly absent from the context (no default
// registered) evaluates to Undefined rather than erroring.
func TestGetUndefinedWhenAbsentWithNoDefault(t *testing.T) {
	fn, _ := build(t, []any{"get", "missing"}, valuetype.Number)
	c := NewEvaluationContext()
	got := evalOrFatal(t, fn, c)
	if got != Undefined {
		t.Fatalf("got %v, want Undefined", got)
	}
}

func TestHasReportsPresence(t *testing.T) {
	fn, ctx := build(t, []any{"has", "name"}, valuetype.Boolean)
	c := NewEvaluationContext()
	if got := evalOrFatal(t, fn, c); got != false {
		t.Fatalf("got %v, want false for an absent accessor", got)
	}
	for key := range ctx.Properties() {
		c.SetProperty(key, "anything")
	}
	if got := evalOrFatal(t, fn, c); got != true {
		t.Fatalf("got %v, want true once the accessor is populated", got)
	}
}

func TestVarReadsVariablesTable(t *testing.T) {
	fn, ctx := build(t, []any{"var", "scale"}, valuetype.Number)
	c := NewEvaluationContext()
	for key := range ctx.Variables() {
		c.SetVariable(key, 2.5)
	}
	if got := evalOrFatal(t, fn, c); got != 2.5 {
		t.Fatalf("got %v, want 2.5", got)
	}
}

func TestIDAndGeometryTypeAndViewReaders(t *testing.T) {
	fn, _ := build(t, []any{"id"}, valuetype.String)
	c := NewEvaluationContext()
	c.SetFeatureID("feature-1")
	if got := evalOrFatal(t, fn, c); got != "feature-1" {
		t.Fatalf("got %v, want \"feature-1\"", got)
	}

	gt, _ := build(t, []any{"geometry-type"}, valuetype.String)
	c.SetGeometryType("Polygon")
	if got := evalOrFatal(t, gt, c); got != "Polygon" {
		t.Fatalf("got %v, want \"Polygon\"", got)
	}

	res, _ := build(t, []any{"resolution"}, valuetype.Number)
	c.SetResolution(4.5)
	if got := evalOrFatal(t, res, c); got != 4.5 {
		t.Fatalf("got %v, want 4.5", got)
	}

	zoom, _ := build(t, []any{"zoom"}, valuetype.Number)
	c.SetZoom(12.0)
	if got := evalOrFatal(t, zoom, c); got != 12.0 {
		t.Fatalf("got %v, want 12", got)
	}
}

// TestConcat checks that "concat" joins its evaluated arguments in order.
func TestConcat(t *testing.T) {
	fn, ctx := build(t, []any{"concat", []any{"get", "val"}, " ", []any{"get", "val2"}}, valuetype.String)
	c := NewEvaluationContext()
	props := ctx.Properties()
	for key, acc := range props {
		switch acc.Slug {
		case "val_0":
			c.SetProperty(key, "test")
		case "val2_1":
			c.SetProperty(key, "another")
		}
	}
	if got := evalOrFatal(t, fn, c); got != "test another" {
		t.Fatalf("got %q, want \"test another\"", got)
	}
}

// TestCoalesceSkipsUndefined checks that "coalesce" steps past an
// undefined accessor to the next argument.
func TestCoalesceSkipsUndefined(t *testing.T) {
	fn, ctx := build(t, []any{"coalesce", []any{"get", "a"}, []any{"get", "b"}, "last"}, valuetype.String)
	c := NewEvaluationContext()
	for key, acc := range ctx.Properties() {
		if acc.Slug == "b_1" {
			c.SetProperty(key, "hello")
		}
	}
	if got := evalOrFatal(t, fn, c); got != "hello" {
		t.Fatalf("got %q, want \"hello\"", got)
	}
}

func TestCoalesceFallsBackToLastWhenAllUndefined(t *testing.T) {
	fn, _ := build(t, []any{"coalesce", []any{"get", "a"}, []any{"get", "b"}, "last"}, valuetype.String)
	c := NewEvaluationContext()
	if got := evalOrFatal(t, fn, c); got != "last" {
		t.Fatalf("got %q, want \"last\"", got)
	}
}

// TestInterpolateLinear checks a basic two-stop linear interpolation.
func TestInterpolateLinear(t *testing.T) {
	fn, ctx := build(t, []any{"interpolate", []any{"linear"}, []any{"get", "n"}, 0.0, 0.0, 1.0, 100.0}, valuetype.Number)
	c := NewEvaluationContext()
	for key := range ctx.Properties() {
		c.SetProperty(key, 0.5)
	}
	if got := evalOrFatal(t, fn, c); got != 50.0 {
		t.Fatalf("got %v, want 50", got)
	}
}

// TestInterpolateExponential checks exponential-base interpolation to a
// tolerance of 1e-6.
func TestInterpolateExponential(t *testing.T) {
	fn, _ := build(t, []any{"interpolate", []any{"exponential", 2.0}, 0.5, 0.0, 0.0, 1.0, 100.0}, valuetype.Number)
	got := evalOrFatal(t, fn, NewEvaluationContext())
	want := 41.42135623730952
	n, ok := got.(float64)
	if !ok {
		t.Fatalf("got %T, want float64", got)
	}
	if diff := n - want; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("got %v, want %v (tol 1e-6)", n, want)
	}
}

// TestInterpolateColor checks gamma-corrected color blending: a 50/50
// mix of red and green lands brighter than the naive {128, 128, 0, 1}
// midpoint because each channel is decoded into linear light before
// blending and re-encoded afterward.
func TestInterpolateColor(t *testing.T) {
	fn, _ := build(t, []any{"interpolate", []any{"linear"}, 0.5, 0.0, "red", 1.0, []any{0.0, 255.0, 0.0}}, valuetype.ColorType)
	got := evalOrFatal(t, fn, NewEvaluationContext())
	want := valuetype.Color{186, 186, 0, 1}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestInterpolateClampsAtBothEnds(t *testing.T) {
	fn, _ := build(t, []any{"interpolate", []any{"linear"}, -5.0, 0.0, 10.0, 1.0, 20.0}, valuetype.Number)
	if got := evalOrFatal(t, fn, NewEvaluationContext()); got != 10.0 {
		t.Fatalf("got %v, want 10 (clamp below first stop)", got)
	}
	fn2, _ := build(t, []any{"interpolate", []any{"linear"}, 50.0, 0.0, 10.0, 1.0, 20.0}, valuetype.Number)
	if got := evalOrFatal(t, fn2, NewEvaluationContext()); got != 20.0 {
		t.Fatalf("got %v, want 20 (clamp above last stop)", got)
	}
}

// TestMatchString checks that the legacy "match" alias resolves to
// match-string when its branch keys are strings.
func TestMatchString(t *testing.T) {
	fn, ctx := build(t, []any{"match", []any{"get", "string"}, "foo", "got foo", "got other"}, valuetype.String)
	c := NewEvaluationContext()
	for key := range ctx.Properties() {
		c.SetProperty(key, "bar")
	}
	if got := evalOrFatal(t, fn, c); got != "got other" {
		t.Fatalf("got %q, want \"got other\"", got)
	}
}

// TestInMembership checks "in" against a literal-wrapped string haystack.
func TestInMembership(t *testing.T) {
	fn, _ := build(t, []any{"in", "yellow", []any{"literal", []any{"red", "green", "blue"}}}, valuetype.Boolean)
	if got := evalOrFatal(t, fn, NewEvaluationContext()); got != false {
		t.Fatalf("got %v, want false", got)
	}
}

// TestBetween checks the inclusive "between" bounds check.
func TestBetween(t *testing.T) {
	fn, _ := build(t, []any{"between", 3.0, 3.0, 5.0}, valuetype.Boolean)
	if got := evalOrFatal(t, fn, NewEvaluationContext()); got != true {
		t.Fatalf("got %v, want true", got)
	}
}

func TestArithmetic(t *testing.T) {
	cases := []struct {
		encoded []any
		want    float64
	}{
		{[]any{"+", 1.0, 2.0, 3.0}, 6},
		{[]any{"*", 2.0, 3.0, 4.0}, 24},
		{[]any{"-", 5.0, 2.0}, 3},
		{[]any{"/", 10.0, 4.0}, 2.5},
		{[]any{"%", 7.0, 3.0}, 1},
		{[]any{"^", 2.0, 10.0}, 1024},
		{[]any{"clamp", 15.0, 0.0, 10.0}, 10},
		{[]any{"abs", -4.0}, 4},
		{[]any{"floor", 1.9}, 1},
		{[]any{"ceil", 1.1}, 2},
		{[]any{"round", 1.5}, 2},
		{[]any{"sqrt", 9.0}, 3},
	}
	for _, tc := range cases {
		fn, _ := build(t, tc.encoded, valuetype.Number)
		if got := evalOrFatal(t, fn, NewEvaluationContext()); got != tc.want {
			t.Fatalf("%v: got %v, want %v", tc.encoded, got, tc.want)
		}
	}
}

func TestAtanOneAndTwoArg(t *testing.T) {
	fn, _ := build(t, []any{"atan", 1.0}, valuetype.Number)
	single := evalOrFatal(t, fn, NewEvaluationContext()).(float64)
	if diff := single - 0.7853981633974483; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("got %v, want atan(1)", single)
	}

	fn2, _ := build(t, []any{"atan", 1.0, 1.0}, valuetype.Number)
	two := evalOrFatal(t, fn2, NewEvaluationContext()).(float64)
	if diff := two - 0.7853981633974483; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("got %v, want atan2(1,1)", two)
	}
}

func TestComparisons(t *testing.T) {
	cases := []struct {
		op   string
		a, b float64
		want bool
	}{
		{"==", 1, 1, true}, {"==", 1, 2, false},
		{"!=", 1, 2, true}, {"!=", 1, 1, false},
		{"<", 1, 2, true}, {"<", 2, 1, false},
		{"<=", 2, 2, true}, {">", 2, 1, true}, {">=", 2, 2, true},
	}
	for _, tc := range cases {
		fn, _ := build(t, []any{tc.op, tc.a, tc.b}, valuetype.Boolean)
		if got := evalOrFatal(t, fn, NewEvaluationContext()); got != tc.want {
			t.Fatalf("%s(%v,%v): got %v, want %v", tc.op, tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNotTruthyRule(t *testing.T) {
	fn, _ := build(t, []any{"!", true}, valuetype.Boolean)
	if got := evalOrFatal(t, fn, NewEvaluationContext()); got != false {
		t.Fatalf("!true: got %v, want false", got)
	}
	fn2, _ := build(t, []any{"!", false}, valuetype.Boolean)
	if got := evalOrFatal(t, fn2, NewEvaluationContext()); got != true {
		t.Fatalf("!false: got %v, want true", got)
	}
}

func TestAllAnyShortCircuit(t *testing.T) {
	all, _ := build(t, []any{"all", true, true, false}, valuetype.Boolean)
	if got := evalOrFatal(t, all, NewEvaluationContext()); got != false {
		t.Fatalf("all(true,true,false): got %v, want false", got)
	}
	any_, _ := build(t, []any{"any", false, false, true}, valuetype.Boolean)
	if got := evalOrFatal(t, any_, NewEvaluationContext()); got != true {
		t.Fatalf("any(false,false,true): got %v, want true", got)
	}
}

func TestCaseSelectsFirstTrueCondition(t *testing.T) {
	fn, _ := build(t, []any{"case", false, "a", true, "b", "fallback"}, valuetype.String)
	if got := evalOrFatal(t, fn, NewEvaluationContext()); got != "b" {
		t.Fatalf("got %q, want \"b\"", got)
	}
	fn2, _ := build(t, []any{"case", false, "a", false, "b", "fallback"}, valuetype.String)
	if got := evalOrFatal(t, fn2, NewEvaluationContext()); got != "fallback" {
		t.Fatalf("got %q, want \"fallback\"", got)
	}
}

func TestArrayAndColorConstructors(t *testing.T) {
	arr, _ := build(t, []any{"array", 1.0, 2.0, 3.0}, valuetype.NumberArray)
	got := evalOrFatal(t, arr, NewEvaluationContext())
	want := []float64{1, 2, 3}
	gotSlice, ok := got.([]float64)
	if !ok || len(gotSlice) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if gotSlice[i] != want[i] {
			t.Fatalf("got %v, want %v", gotSlice, want)
		}
	}

	c, _ := build(t, []any{"color", 10.0, 20.0, 30.0}, valuetype.ColorType)
	if got := evalOrFatal(t, c, NewEvaluationContext()); got != (valuetype.Color{10, 20, 30, 1}) {
		t.Fatalf("got %v, want opaque rgb", got)
	}
}

func TestPaletteIndexesAndClamps(t *testing.T) {
	fn, _ := build(t, []any{"palette", 5.0, []any{"red", "green", "blue"}}, valuetype.ColorType)
	got := evalOrFatal(t, fn, NewEvaluationContext())
	want := valuetype.Color{0, 0, 255, 1} // blue, clamped to the last index
	if got != want {
		t.Fatalf("got %v, want %v (index clamped to last color)", got, want)
	}
}
