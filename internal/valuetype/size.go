package valuetype

// Size is exactly two numbers, normally width and height.
type Size [2]float64

// SizeFromScalar expands a scalar n to the pair [n, n], the scalar-to-size
// coercion a caller's external size normalizer expects.
func SizeFromScalar(n float64) Size {
	return Size{n, n}
}
