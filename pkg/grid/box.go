package grid

import "math"

// Box is an axis-aligned box with inclusive corners.
type Box struct {
	Min Point `json:"min"` // Minimum (top-left) corner
	Max Point `json:"max"` // Maximum (bottom-right) corner
}

// NewBox returns the box spanned by two corners in any order.
func NewBox(a, b Point) Box {
	return Box{
		Min: Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

// EmptyBox returns a box that contains nothing and is the identity for Union.
func EmptyBox() Box {
	return Box{
		Min: Point{X: math.MaxInt, Y: math.MaxInt},
		Max: Point{X: math.MinInt, Y: math.MinInt},
	}
}

// IsEmpty reports whether the box contains no points.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Contains checks if a point is within the box, edges included.
func (b Box) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Intersects checks if two boxes share at least one point.
func (b Box) Intersects(o Box) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y
}

// Expand grows the box to include p.
func (b Box) Expand(p Point) Box {
	if b.IsEmpty() {
		return Box{Min: p, Max: p}
	}
	return Box{
		Min: Point{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y)},
		Max: Point{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y)},
	}
}

// Union returns the smallest box containing both boxes.
func (b Box) Union(o Box) Box {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return b.Expand(o.Min).Expand(o.Max)
}

// Inflate grows the box by d on every side.
func (b Box) Inflate(d int) Box {
	if b.IsEmpty() {
		return b
	}
	return Box{
		Min: Point{X: b.Min.X - d, Y: b.Min.Y - d},
		Max: Point{X: b.Max.X + d, Y: b.Max.Y + d},
	}
}
