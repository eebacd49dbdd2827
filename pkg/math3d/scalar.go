package math3d

import "math"

// Single-precision wrappers over the stdlib math package. The whole
// pipeline works in float32; conversions live here instead of at every
// call site.

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return float32(math.Ceil(float64(x)))
}

// Cos returns the cosine of the angle x in radians.
func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// Sin returns the sine of the angle x in radians.
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Min returns the smaller of a and b.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
