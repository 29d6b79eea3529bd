package valuetype

import "math"

// Color is four channels (r, g, b, a). r, g, b are conventionally in
// [0, 255]; a is in [0, 1]. Color values are not clamped on construction;
// callers that blend channels (see the evaluator's interpolation) clamp
// and round where needed.
type Color [4]float64

// NewColor builds a Color from (r, g, b, a).
func NewColor(r, g, b, a float64) Color {
	return Color{r, g, b, a}
}

// ColorFromRGB builds an opaque Color, defaulting alpha to 1.
func ColorFromRGB(r, g, b float64) Color {
	return Color{r, g, b, 1}
}

// ColorFromNumbers builds a Color from a slice of numbers per the "color
// from array" rule in the literal coercion table: length 3 becomes
// [r,g,b,1], length 4 is accepted as-is, any other length is an error
// the caller reports.
func ColorFromNumbers(v []float64) (Color, bool) {
	switch len(v) {
	case 3:
		return Color{v[0], v[1], v[2], 1}, true
	case 4:
		return Color{v[0], v[1], v[2], v[3]}, true
	default:
		return Color{}, false
	}
}

// ColorFromChannels builds a Color from the "color" constructor's 1-4
// numeric arguments: a single shade, shade+alpha, rgb, or rgba. Unlike
// ColorFromNumbers (the array-literal coercion rule, which only ever
// accepts length 3 or 4), the constructor also accepts a bare shade or a
// shade+alpha pair.
func ColorFromChannels(v []float64) (Color, bool) {
	switch len(v) {
	case 1:
		return Color{v[0], v[0], v[0], 1}, true
	case 2:
		return Color{v[0], v[0], v[0], v[1]}, true
	case 3:
		return Color{v[0], v[1], v[2], 1}, true
	case 4:
		return Color{v[0], v[1], v[2], v[3]}, true
	default:
		return Color{}, false
	}
}

// gamma is the decode/encode exponent used to blend RGB channels in
// linear light rather than in gamma-compressed sRGB space. Blending the
// raw 0-255 channel values directly makes a red-to-green midpoint read
// as a muddy, too-dark olive; decoding each channel first pushes the
// midpoint toward whichever endpoint is brighter, the way a display
// actually mixes light.
const gamma = 2.2

func gammaDecode(c float64) float64 {
	return math.Pow(c/255, gamma)
}

func gammaEncode(c float64) float64 {
	return math.Pow(c, 1/gamma) * 255
}

// Lerp blends two colors by weight t in [0, 1]. The RGB channels are
// decoded out of sRGB, blended linearly in that linear-light space, and
// re-encoded before rounding; alpha is already linear, so it's blended
// directly.
func Lerp(a, b Color, t float64) Color {
	return Color{
		math.Round(gammaEncode(gammaDecode(a[0]) + (gammaDecode(b[0])-gammaDecode(a[0]))*t)),
		math.Round(gammaEncode(gammaDecode(a[1]) + (gammaDecode(b[1])-gammaDecode(a[1]))*t)),
		math.Round(gammaEncode(gammaDecode(a[2]) + (gammaDecode(b[2])-gammaDecode(a[2]))*t)),
		a[3] + (b[3]-a[3])*t,
	}
}
