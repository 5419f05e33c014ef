package stitch

import "math"

// Point is a 2D point, and doubles as a 2D vector when it is the difference
// of two points. Points are plain values: stitch output must preserve the
// exact coordinates of any input vertex it keeps, and several algorithms
// compare points by exact equality, so we never round or normalize stored
// coordinates.
type Point struct {
	X float64
	Y float64
}

// Path is an ordered polyline. Insertion order defines the direction of
// travel. Adjacent duplicate points are legal and describe zero-length
// sub-segments.
type Path []Point

// RepeatPattern is a cyclic list of per-stitch repeat counts consumed
// round-robin by BeanStitch.
type RepeatPattern []int

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns the sum of a point and a vector.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Mul returns the vector scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the vector's length.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Unit returns the unit vector in the same direction. The zero vector has no
// direction; callers must guard against zero-length segments first.
func (p Point) Unit() Point {
	length := p.Length()
	return Point{X: p.X / length, Y: p.Y / length}
}

// Lerp interpolates between two points. t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Length returns the total polyline length of the path.
func (path Path) Length() float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += path[i].Distance(path[i-1])
	}
	return total
}
