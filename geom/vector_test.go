package geom

import "testing"

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	if got := a.Add(b); !got.Aeq(Vec3{5, 7, 9}) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Sub(a); !got.Aeq(Vec3{3, 3, 3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: got %f want 32", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	if !got.Aeq(Vec3{0, 0, 1}) {
		t.Errorf("Cross: got %v want (0,0,1)", got)
	}
}

func TestVec3Unit(t *testing.T) {
	v := Vec3{3, 4, 0}
	u := v.Unit()
	if l := u.Length(); l < 1-Epsilon || l > 1+Epsilon {
		t.Errorf("Unit length = %f, want ~1", l)
	}
	if !u.Aeq(Vec3{0.6, 0.8, 0}) {
		t.Errorf("Unit: got %v want (0.6,0.8,0)", u)
	}
}

func TestVec3UnitZero(t *testing.T) {
	if got := (Vec3{}).Unit(); got != (Vec3{}) {
		t.Errorf("Unit of zero vector should stay zero, got %v", got)
	}
}

func TestVec3Reflect(t *testing.T) {
	v := Vec3{1, -1, 0}
	n := Vec3{0, 1, 0}
	got := v.Reflect(n)
	if !got.Aeq(Vec3{1, 1, 0}) {
		t.Errorf("Reflect: got %v want (1,1,0)", got)
	}
}

func TestVec3RefractTotalInternalReflection(t *testing.T) {
	// A steep angle through a much denser-to-less-dense boundary has no
	// real refraction solution.
	v := Vec3{1, -0.05, 0}.Unit()
	n := Vec3{0, 1, 0}
	_, ok := v.Refract(n, 2.0)
	if ok {
		t.Errorf("expected total internal reflection, got a refracted ray")
	}
}

func TestVec3RefractStraightThrough(t *testing.T) {
	v := Vec3{0, -1, 0}
	n := Vec3{0, 1, 0}
	got, ok := v.Refract(n, 1.0)
	if !ok {
		t.Fatalf("expected a valid refraction")
	}
	if !got.Aeq(Vec3{0, -1, 0}) {
		t.Errorf("straight-through refraction should pass unbent, got %v", got)
	}
}
