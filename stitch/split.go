package stitch

import "sort"

// Splitters place interior points along a single segment a-b. They are the
// building blocks for stippling and other fill patterns; the running stitch
// walker does not use them. All of them return points strictly between a and
// b, in strictly increasing order along the segment, and are bit-for-bit
// reproducible for a given seed.

// SplitEvenN returns segments-1 interior points at the fractional positions
// k/segments along a-b. If segments <= 1 there is nothing to place and the
// result is empty.
//
// With a non-empty seed, each position is perturbed by an independent draw
// scaled by jitterSigma/segments. A bad roll can transpose neighboring
// positions, so the jittered positions are re-sorted to keep the output
// monotonic along the segment.
func SplitEvenN(a, b Point, segments int, jitterSigma float64, seed string) []Point {
	if segments <= 1 {
		return nil
	}

	splits := make([]float64, segments-1)
	for k := 1; k < segments; k++ {
		splits[k-1] = float64(k) / float64(segments)
	}
	if seed != "" {
		jitters := UniformFloats(len(splits), seed)
		for i, jitter := range jitters {
			splits[i] += (jitter*2 - 1) * (jitterSigma / float64(segments))
		}
		sort.Float64s(splits)
	}

	points := make([]Point, len(splits))
	for i, t := range splits {
		points[i] = a.Lerp(b, t)
	}
	return points
}

// SplitEvenDist splits a-b into the fewest even pieces no longer than
// maxLength and returns the interior points. Absent jitter, no gap exceeds
// maxLength.
func SplitEvenDist(a, b Point, maxLength float64, jitterSigma float64, seed string) []Point {
	if maxLength <= 0 {
		fatalf("max length must be positive, got %v", maxLength)
	}
	segments := ceilDiv(a.Distance(b), maxLength)
	return SplitEvenN(a, b, segments, jitterSigma, seed)
}

// SplitRandomPhase walks a-b in steps of roughly the given length, each step
// scaled by a random factor in [1-lengthSigma, 1+lengthSigma). The starting
// offset is a random fraction of one step, drawn from the seed's "phase"
// stream, so adjacent segments split with the same seed don't beat against
// each other. The walk stops strictly before the far endpoint; if the phase
// offset alone overshoots the segment, the result is empty.
func SplitRandomPhase(a, b Point, length, lengthSigma float64, seed string) []Point {
	if length <= 0 {
		fatalf("split length must be positive, got %v", length)
	}
	if lengthSigma < 0 || lengthSigma >= 1 {
		fatalf("length sigma must be in [0, 1), got %v", lengthSigma)
	}
	if a == b {
		fatalf("cannot split a zero-length segment")
	}

	distance := a.Distance(b)
	progress := length * Uniform(seed, "phase")
	if progress >= distance {
		return nil
	}
	splits := []float64{progress}
	// lengthSigma < 1 keeps every step positive, so the walk always
	// terminates.
	for i := 0; ; i++ {
		x := UniformAt(i, seed)
		progress += length * (1 + lengthSigma*(x-0.5)*2)
		if progress >= distance {
			break
		}
		splits = append(splits, progress)
	}

	direction := b.Sub(a).Unit()
	points := make([]Point, len(splits))
	for i, offset := range splits {
		points[i] = a.Add(direction.Mul(offset))
	}
	return points
}
