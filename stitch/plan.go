package stitch

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
)

// Plan is a finished stitch sequence plus debug conveniences. The sequence
// itself is just the underlying Path; nothing here is required to sew.
type Plan Path

// ThreadLength returns the total length of thread laid down by the plan,
// counting repeated passes over the same stitches.
func (p Plan) ThreadLength() float64 {
	return Path(p).Length()
}

// Bounds returns the corners of the plan's bounding box.
func (p Plan) Bounds() (min, max Point) {
	min = Point{X: math.Inf(1), Y: math.Inf(1)}
	max = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, point := range p {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
	}
	return min, max
}

func (p Plan) String() string {
	count := fmt.Sprintf("%d stitches", len(p))
	// A plan under two stitches sews nothing; color it as a warning.
	if len(p) < 2 {
		return fmt.Sprintf("Plan { %s }", aurora.Red(count))
	}
	min, max := p.Bounds()
	return fmt.Sprintf("Plan { %s, thread %.1f, box (%g, %g)-(%g, %g) }",
		aurora.Green(count),
		p.ThreadLength(),
		min.X, min.Y, max.X, max.Y,
	)
}
