package stitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDouglasPeuckerCollinear(t *testing.T) {
	path := Path{{0, 0}, {2, 0}, {5, 0}, {7, 0}, {10, 0}}
	simplified := DouglasPeucker(path, 0)
	assert.Equal(t, Path{{0, 0}, {10, 0}}, simplified)
}

func TestDouglasPeuckerKeepsSharpCorners(t *testing.T) {
	path := Path{{0, 0}, {5, 0.01}, {10, 0}, {10, 10}}
	simplified := DouglasPeucker(path, 0.5)
	// The nearly collinear midpoint goes, the right-angle corner stays.
	assert.Equal(t, Path{{0, 0}, {10, 0}, {10, 10}}, simplified)
}

func TestDouglasPeuckerShortInputs(t *testing.T) {
	assert.Equal(t, Path{}, DouglasPeucker(Path{}, 1))
	assert.Equal(t, Path{{1, 2}}, DouglasPeucker(Path{{1, 2}}, 1))
	assert.Equal(t, Path{{1, 2}, {3, 4}}, DouglasPeucker(Path{{1, 2}, {3, 4}}, 1))
}

func TestDouglasPeuckerProperties(t *testing.T) {
	path := Path{{0, 0}, {1, 3}, {2, 1}, {4, 4}, {6, 0}, {8, 2}, {10, 1}, {12, 5}}
	for _, tolerance := range []float64{0, 0.5, 1, 2, 10} {
		simplified := DouglasPeucker(path, tolerance)

		// Endpoints always survive.
		assert.Equal(t, path[0], simplified[0])
		assert.Equal(t, path[len(path)-1], simplified[len(simplified)-1])

		// The result is a subsequence of the input.
		i := 0
		for _, point := range simplified {
			for i < len(path) && path[i] != point {
				i++
			}
			assert.Less(t, i, len(path), "simplified point %v is not an input vertex in order", point)
		}

		// Every discarded vertex stays within tolerance of the simplified
		// path.
		for _, point := range path {
			best := point.Distance(simplified[0])
			for j := 1; j < len(simplified); j++ {
				d := perpendicularDistance(point, simplified[j-1], simplified[j])
				if d < best {
					best = d
				}
			}
			assert.LessOrEqual(t, best, tolerance+Tolerance)
		}
	}
}

func TestDouglasPeuckerIdempotent(t *testing.T) {
	path := Path{{0, 0}, {1, 3}, {2, 1}, {4, 4}, {6, 0}, {8, 2}, {10, 1}, {12, 5}}
	for _, tolerance := range []float64{0, 0.5, 2} {
		simplified := DouglasPeucker(path, tolerance)
		assert.Equal(t, simplified, DouglasPeucker(simplified, tolerance))
	}
}

func TestPerpendicularDistance(t *testing.T) {
	a := Point{0, 0}
	b := Point{10, 0}
	assert.InDelta(t, 3.0, perpendicularDistance(Point{5, 3}, a, b), Tolerance)
	// Beyond the segment ends, distance is to the nearest endpoint.
	assert.InDelta(t, 5.0, perpendicularDistance(Point{-3, 4}, a, b), Tolerance)
	// Degenerate segment.
	assert.InDelta(t, 5.0, perpendicularDistance(Point{3, 4}, a, a), Tolerance)
}
