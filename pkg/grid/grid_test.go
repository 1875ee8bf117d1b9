package grid

import "testing"

func TestBoxNormalizesCorners(t *testing.T) {
	b := NewBox(Pt(3, -1), Pt(-2, 4))
	if b.Min != Pt(-2, -1) || b.Max != Pt(3, 4) {
		t.Fatalf("unexpected box %+v", b)
	}
	if !b.Contains(Pt(3, 4)) || !b.Contains(Pt(-2, -1)) {
		t.Errorf("box corners should be inclusive")
	}
	if b.Contains(Pt(4, 0)) {
		t.Errorf("box should not contain (4,0)")
	}
}

func TestEmptyBoxIsUnionIdentity(t *testing.T) {
	b := NewBox(Pt(0, 0), Pt(1, 1))
	if got := EmptyBox().Union(b); got != b {
		t.Errorf("EmptyBox().Union(b) = %+v, want %+v", got, b)
	}
	if got := b.Union(EmptyBox()); got != b {
		t.Errorf("b.Union(EmptyBox()) = %+v, want %+v", got, b)
	}
	if EmptyBox().Intersects(b) {
		t.Errorf("empty box must not intersect anything")
	}
}

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		a, b Box
		want bool
	}{
		{NewBox(Pt(0, 0), Pt(2, 2)), NewBox(Pt(2, 2), Pt(4, 4)), true},
		{NewBox(Pt(0, 0), Pt(2, 2)), NewBox(Pt(3, 0), Pt(4, 4)), false},
		{NewBox(Pt(0, 0), Pt(0, 5)), NewBox(Pt(-1, 2), Pt(1, 3)), true},
	}
	for i, tt := range tests {
		if got := tt.a.Intersects(tt.b); got != tt.want {
			t.Errorf("case %d: Intersects = %v, want %v", i, got, tt.want)
		}
	}
}

func TestTransformRotateAndTranslate(t *testing.T) {
	rot := Rotate90()
	if got := rot.Apply(Pt(1, 0)); got != Pt(0, 1) {
		t.Errorf("rotate (1,0) = %v, want (0,1)", got)
	}

	// rotate first, then move
	tr := rot.Then(Translate(Pt(10, 20)))
	if got := tr.Apply(Pt(0, 3)); got != Pt(7, 20) {
		t.Errorf("rotate+translate (0,3) = %v, want (7,20)", got)
	}

	full := rot.Then(rot).Then(rot).Then(rot)
	if !full.IsIdentity() {
		t.Errorf("four quarter turns should be identity, got %+v", full)
	}
}

func TestTransformApplyBox(t *testing.T) {
	b := NewBox(Pt(-2, -3), Pt(2, 3))
	got := Rotate90().ApplyBox(b)
	want := NewBox(Pt(-3, -2), Pt(3, 2))
	if got != want {
		t.Errorf("ApplyBox = %+v, want %+v", got, want)
	}
}

func TestSnap(t *testing.T) {
	if got := Snap(1.4, -2.6); got != Pt(1, -3) {
		t.Errorf("Snap = %v, want (1,-3)", got)
	}
}

func TestStrictlyInside(t *testing.T) {
	a, b := Pt(0, 0), Pt(0, 4)
	if !StrictlyInside(Pt(0, 2), a, b) {
		t.Errorf("(0,2) should be inside (0,0)-(0,4)")
	}
	if StrictlyInside(a, a, b) || StrictlyInside(b, a, b) {
		t.Errorf("endpoints are not strictly inside")
	}
	if StrictlyInside(Pt(1, 2), a, b) {
		t.Errorf("(1,2) is off the segment")
	}
	if !StrictlyInside(Pt(2, 2), Pt(0, 0), Pt(4, 4)) {
		t.Errorf("(2,2) should be inside the diagonal")
	}
}
