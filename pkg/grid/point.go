// Package grid provides the integer geometry shared by the net graph and the
// device collection. Everything on a schematic snaps to grid vertices, so
// points are compared by value.
package grid

import (
	"fmt"
	"math"
)

// Point is a grid vertex.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Less orders points by X, then Y. All deterministic enumeration in the
// module (components, anchors, vertices) uses this order.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Cross returns the z component of the cross product of p and q.
func (p Point) Cross(q Point) int {
	return p.X*q.Y - p.Y*q.X
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) int {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Snap converts an unsnapped pointer position to the nearest grid vertex.
func Snap(x, y float64) Point {
	return Point{X: int(math.Round(x)), Y: int(math.Round(y))}
}

// OnSegment reports whether p lies on the closed segment a-b.
func OnSegment(p, a, b Point) bool {
	if b.Sub(a).Cross(p.Sub(a)) != 0 {
		return false
	}
	return NewBox(a, b).Contains(p)
}

// StrictlyInside reports whether p lies on segment a-b but is not one of its
// endpoints.
func StrictlyInside(p, a, b Point) bool {
	return p != a && p != b && OnSegment(p, a, b)
}
