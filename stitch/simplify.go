package stitch

// A Simplifier reduces a path to a subsequence of its own vertices such that
// every discarded vertex lies within tolerance of the simplified path. It
// must always retain the first and last point. Topology need not be
// preserved; a simplified path may self-intersect.
type Simplifier func(points Path, tolerance float64) Path

// DouglasPeucker is the default Simplifier: recursively keep the vertex
// farthest from the chord between the endpoints until every remaining
// deviation is within tolerance.
func DouglasPeucker(points Path, tolerance float64) Path {
	if len(points) <= 2 {
		return points
	}
	worst := 0
	worstDist := 0.0
	for i := 1; i < len(points)-1; i++ {
		d := perpendicularDistance(points[i], points[0], points[len(points)-1])
		if d > worstDist {
			worst = i
			worstDist = d
		}
	}
	if worstDist <= tolerance {
		return Path{points[0], points[len(points)-1]}
	}
	left := DouglasPeucker(points[:worst+1], tolerance)
	right := DouglasPeucker(points[worst:], tolerance)
	return append(append(Path{}, left...), right[1:]...)
}

// Distance from p to the segment a-b.
func perpendicularDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	lengthSq := ab.X*ab.X + ab.Y*ab.Y
	if lengthSq == 0 {
		return p.Distance(a)
	}
	t := (p.Sub(a).X*ab.X + p.Sub(a).Y*ab.Y) / lengthSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
