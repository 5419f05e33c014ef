package stitch

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, scalar equality is tolerance
// based. Point equality, by contrast, is exact: a vertex the simplifier kept
// must reappear bit-for-bit in the output.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Number of whole pieces of size maxLength needed to cover distance.
func ceilDiv(distance, maxLength float64) int {
	return int(math.Ceil(distance / maxLength))
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
