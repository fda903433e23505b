package geom

import "testing"

func TestBoxAddPoint(t *testing.T) {
	b := EmptyBox().AddPoint(Vec3{1, 2, 3}).AddPoint(Vec3{-1, 5, 0})
	if !b.Min.Aeq(Vec3{-1, 2, 0}) || !b.Max.Aeq(Vec3{1, 5, 3}) {
		t.Errorf("got min=%v max=%v", b.Min, b.Max)
	}
}

func TestBoxEmpty(t *testing.T) {
	if !EmptyBox().Empty() {
		t.Errorf("EmptyBox should be empty")
	}
	b := Box{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}}
	if b.Empty() {
		t.Errorf("unit box should not be empty")
	}
}

func TestBoxIntersection(t *testing.T) {
	a := Box{Min: Vec3{0, 0, 0}, Max: Vec3{2, 2, 2}}
	b := Box{Min: Vec3{1, 1, 1}, Max: Vec3{3, 3, 3}}
	got := a.Intersection(b)
	want := Box{Min: Vec3{1, 1, 1}, Max: Vec3{2, 2, 2}}
	if !got.Min.Aeq(want.Min) || !got.Max.Aeq(want.Max) {
		t.Errorf("got %v, want %v", got, want)
	}

	c := Box{Min: Vec3{5, 5, 5}, Max: Vec3{6, 6, 6}}
	if !a.Intersection(c).Empty() {
		t.Errorf("disjoint boxes should produce an empty intersection")
	}
}

// octSplit must produce 8 equal-volume children whose union reconstructs
// the parent box, in the fixed canonical order.
func TestBoxOctSplit(t *testing.T) {
	b := Box{Min: Vec3{-2, -2, -2}, Max: Vec3{2, 2, 2}}
	children := b.OctSplit()

	union := EmptyBox()
	for _, c := range children {
		if c.Empty() {
			t.Errorf("child box should not be empty")
		}
		size := c.Max.Sub(c.Min)
		if !size.Aeq(Vec3{2, 2, 2}) {
			t.Errorf("expected each child to span 2 units per axis, got %v", size)
		}
		union = union.AddBox(c)
	}
	if !union.Min.Aeq(b.Min) || !union.Max.Aeq(b.Max) {
		t.Errorf("children union %v..%v does not reconstruct parent %v..%v", union.Min, union.Max, b.Min, b.Max)
	}

	// Canonical order: octant 0 is the all-low corner, octant 7 the all-high corner.
	if !children[0].Min.Aeq(b.Min) {
		t.Errorf("octant 0 should be the all-low corner, got min=%v", children[0].Min)
	}
	if !children[7].Max.Aeq(b.Max) {
		t.Errorf("octant 7 should be the all-high corner, got max=%v", children[7].Max)
	}
}

func TestBoxHit(t *testing.T) {
	b := Box{Min: Vec3{-1, -1, -1}, Max: Vec3{1, 1, 1}}
	hit, err := NewRay(Vec3{0, 0, 5}, Vec3{0, 0, -1})
	if err != nil {
		t.Fatal(err)
	}
	if !b.Hit(hit) {
		t.Errorf("expected ray through the box origin to hit")
	}

	miss, err := NewRay(Vec3{5, 5, 5}, Vec3{0, 0, -1})
	if err != nil {
		t.Fatal(err)
	}
	if b.Hit(miss) {
		t.Errorf("expected parallel ray well outside the box to miss")
	}
}

func TestBoxHitBehindRay(t *testing.T) {
	b := Box{Min: Vec3{-1, -1, -1}, Max: Vec3{1, 1, 1}}
	// box is entirely behind the ray origin along +Z.
	r, err := NewRay(Vec3{0, 0, 5}, Vec3{0, 0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if b.Hit(r) {
		t.Errorf("a box behind the ray origin should not register a hit at t>=0")
	}
}
