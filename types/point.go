// Package types holds the small value types shared by every package in
// this module: planar points, vertex/triangle/corner indices, and the
// tolerance used to compare coordinates. Nothing here depends on any
// other package in the module, so it can be imported freely.
package types

// Point represents a position in 2D Cartesian space.
//
// Coordinates use float64 precision, suitable for most geometric
// applications with appropriate epsilon tolerance for comparisons.
type Point struct {
	X float64
	Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dist2 returns the squared Euclidean distance between p and q.
func (p Point) Dist2(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Equal reports whether p and q have bitwise-identical coordinates.
//
// This is intentionally not tolerance-based: it backs the "inserting a
// point equal to an existing vertex" boundary case, which is defined in
// terms of exact duplicate coordinates, not near-duplicates (that case
// is a caller/snapping concern, not the mesh's).
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}
