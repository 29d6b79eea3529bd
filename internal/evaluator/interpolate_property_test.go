package evaluator

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/tschaub/openlayers/internal/valuetype"
)

// TestInterpolateClampedAndMonotone checks the two invariants interpolate
// must hold: the result clamps to the first/last stop's output outside
// the stop range, and strictly between two stops the result never falls
// outside their own outputs regardless of the chosen base.
func TestInterpolateClampedAndMonotone(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("clamped below the first stop and above the last", prop.ForAll(
		func(lowOut, highOut, below, above float64) bool {
			fn, _ := build(t, []any{"interpolate", []any{"linear"}, below, 0.0, lowOut, 10.0, highOut}, valuetype.Number)
			gotLow, err := fn(nil)
			if err != nil || gotLow != lowOut {
				return false
			}
			fn2, _ := build(t, []any{"interpolate", []any{"linear"}, above + 10, 0.0, lowOut, 10.0, highOut}, valuetype.Number)
			gotHigh, err := fn2(nil)
			return err == nil && gotHigh == highOut
		},
		gen.Float64Range(-1000, 1000),
		gen.Float64Range(-1000, 1000),
		gen.Float64Range(-1000, -0.001),
		gen.Float64Range(0.001, 1000),
	))

	properties.Property("interior result stays within [min(lowOut,highOut), max(lowOut,highOut)]", prop.ForAll(
		func(lowOut, highOut float64, base float64, frac float64) bool {
			x := frac * 10
			fn, _ := build(t, []any{"interpolate", []any{"exponential", base}, x, 0.0, lowOut, 10.0, highOut}, valuetype.Number)
			got, err := fn(nil)
			if err != nil {
				return false
			}
			n := got.(float64)
			lo, hi := lowOut, highOut
			if lo > hi {
				lo, hi = hi, lo
			}
			const eps = 1e-6
			return n >= lo-eps && n <= hi+eps
		},
		gen.Float64Range(-1000, 1000),
		gen.Float64Range(-1000, 1000),
		gen.Float64Range(0.1, 10).SuchThat(func(b float64) bool { return b != 1 }),
		gen.Float64Range(0, 1),
	))

	properties.TestingRun(t)
}

// TestClampIdempotent checks the "clamp(v,a,b) is idempotent" law:
// clamping an already-clamped value leaves it unchanged.
func TestClampIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("clamp(clamp(v,a,b),a,b) == clamp(v,a,b)", prop.ForAll(
		func(v, a, b float64) bool {
			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			once, _ := build(t, []any{"clamp", v, lo, hi}, valuetype.Number)
			onceVal, err := once(nil)
			if err != nil {
				return false
			}
			twice, _ := build(t, []any{"clamp", onceVal.(float64), lo, hi}, valuetype.Number)
			twiceVal, err := twice(nil)
			return err == nil && twiceVal == onceVal
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
	))

	properties.TestingRun(t)
}
