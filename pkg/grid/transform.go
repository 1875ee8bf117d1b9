package grid

// Transform is an integer affine transform: a 2x2 matrix restricted to
// quarter-turn rotations and mirrors, followed by a translation.
//
//	x' = A*x + B*y + T.X
//	y' = C*x + D*y + T.Y
type Transform struct {
	A, B, C, D int
	T          Point
}

// Identity returns the transform that leaves every point in place.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// Translate returns a pure translation by d.
func Translate(d Point) Transform {
	return Transform{A: 1, D: 1, T: d}
}

// Rotate90 returns a counter-clockwise quarter turn about the origin.
func Rotate90() Transform {
	return Transform{B: -1, C: 1}
}

// MirrorX flips across the X axis (negates Y).
func MirrorX() Transform {
	return Transform{A: 1, D: -1}
}

// MirrorY flips across the Y axis (negates X).
func MirrorY() Transform {
	return Transform{A: -1, D: 1}
}

// Apply maps p through t.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.T.X,
		Y: t.C*p.X + t.D*p.Y + t.T.Y,
	}
}

// ApplyBox maps both corners of b and renormalizes.
func (t Transform) ApplyBox(b Box) Box {
	if b.IsEmpty() {
		return b
	}
	return NewBox(t.Apply(b.Min), t.Apply(b.Max))
}

// Then returns the transform that applies t first and u second.
func (t Transform) Then(u Transform) Transform {
	return Transform{
		A: u.A*t.A + u.B*t.C,
		B: u.A*t.B + u.B*t.D,
		C: u.C*t.A + u.D*t.C,
		D: u.C*t.B + u.D*t.D,
		T: u.Apply(t.T),
	}
}

// IsIdentity reports whether t leaves every point in place.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}
