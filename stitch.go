// Convert digitized 2D polylines into sewing machine stitch plans.
//
// This package turns an arbitrary polyline into a sequence of discrete
// needle penetration points: evenly spaced along each stretch of the path,
// never farther apart than a maximum stitch length, with sharp corners
// stitched exactly rather than rounded away. Stitch placement can be
// randomized reproducibly from a seed string, and a finished sequence can be
// thickened into a bean stitch by backtracking.
package stitch

import "github.com/seamly/stitch/stitch"

type Point = stitch.Point
type Path = stitch.Path
type Plan = stitch.Plan
type RepeatPattern = stitch.RepeatPattern
type Simplifier = stitch.Simplifier

// RunningStitch walks the path in increments of at most stitchLength,
// stitching every corner that survives simplification under tolerance
// exactly. The first and last points of the path are always stitched. Paths
// with fewer than two points produce an empty plan.
func RunningStitch(points Path, stitchLength, tolerance float64) (result Path, err error) {
	defer func() {
		recoveredErr := stitch.HandleStitchPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return stitch.RunningStitch(points, stitchLength, tolerance), nil
}

// RunningStitchWith is RunningStitch with a caller-supplied path simplifier.
// See the stitch subpackage's Simplifier for the contract.
func RunningStitchWith(simplify Simplifier, points Path, stitchLength, tolerance float64) (result Path, err error) {
	defer func() {
		recoveredErr := stitch.HandleStitchPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return stitch.RunningStitchWith(simplify, points, stitchLength, tolerance), nil
}

// BeanStitch backtracks over stitches to add thread weight, consuming the
// repeats pattern cyclically, one entry per stitch. Sequences with fewer
// than two stitches are returned unchanged.
func BeanStitch(stitches Path, repeats RepeatPattern) (result Path, err error) {
	defer func() {
		recoveredErr := stitch.HandleStitchPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return stitch.BeanStitch(stitches, repeats), nil
}

// SplitEvenN places segments-1 evenly spaced points between a and b,
// optionally jittered reproducibly from the seed.
func SplitEvenN(a, b Point, segments int, jitterSigma float64, seed string) (result []Point, err error) {
	defer func() {
		recoveredErr := stitch.HandleStitchPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return stitch.SplitEvenN(a, b, segments, jitterSigma, seed), nil
}

// SplitEvenDist places evenly spaced points between a and b such that no gap
// exceeds maxLength, optionally jittered reproducibly from the seed.
func SplitEvenDist(a, b Point, maxLength, jitterSigma float64, seed string) (result []Point, err error) {
	defer func() {
		recoveredErr := stitch.HandleStitchPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return stitch.SplitEvenDist(a, b, maxLength, jitterSigma, seed), nil
}

// SplitRandomPhase places points between a and b at randomized spacing
// around the given length, reproducibly from the seed.
func SplitRandomPhase(a, b Point, length, lengthSigma float64, seed string) (result []Point, err error) {
	defer func() {
		recoveredErr := stitch.HandleStitchPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return stitch.SplitRandomPhase(a, b, length, lengthSigma, seed), nil
}
