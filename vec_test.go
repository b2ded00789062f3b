package swcanvas

import (
	"math"
	"testing"
)

func TestVec2AddSubMul(t *testing.T) {
	a := V2(1, 2)
	b := V2(3, 4)
	if got := a.Add(b); got != (Vec2{4, 6}) {
		t.Errorf("Add = %+v, want (4,6)", got)
	}
	if got := b.Sub(a); got != (Vec2{2, 2}) {
		t.Errorf("Sub = %+v, want (2,2)", got)
	}
	if got := a.Mul(2); got != (Vec2{2, 4}) {
		t.Errorf("Mul(2) = %+v, want (2,4)", got)
	}
}

func TestVec2DotAndAngle(t *testing.T) {
	a := V2(1, 0)
	b := V2(0, 1)
	if got := a.Dot(b); got != 0 {
		t.Errorf("Dot(perpendicular) = %v, want 0", got)
	}
	if got := a.Angle(b); !approxEq(got, math.Pi/2, 1e-9) {
		t.Errorf("Angle = %v, want pi/2", got)
	}
}

func TestVec2NormalizeZeroVector(t *testing.T) {
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Normalize() of zero vector = %+v, want zero", got)
	}
}

func TestVec2NormalizeUnitLength(t *testing.T) {
	v := V2(3, 4).Normalize()
	if !approxEq(v.Length(), 1, 1e-9) {
		t.Errorf("Normalize().Length() = %v, want 1", v.Length())
	}
}

func TestVec2IsZero(t *testing.T) {
	if !(Vec2{}).IsZero() {
		t.Error("IsZero() = false for the zero vector")
	}
	if (Vec2{1, 0}).IsZero() {
		t.Error("IsZero() = true for a nonzero vector")
	}
}

func TestVec2ToPointAndBack(t *testing.T) {
	v := V2(5, 6)
	p := v.ToPoint()
	if p.X != 5 || p.Y != 6 {
		t.Errorf("ToPoint() = %+v, want (5,6)", p)
	}
	back := PointToVec2(p)
	if back != v {
		t.Errorf("PointToVec2(ToPoint(v)) = %+v, want %+v", back, v)
	}
}

func TestVec2RotateQuarterTurn(t *testing.T) {
	v := V2(1, 0)
	r := v.Rotate(math.Pi / 2)
	if !approxEq(r.X, 0, 1e-9) || !approxEq(r.Y, 1, 1e-9) {
		t.Errorf("Rotate(pi/2) of (1,0) = %+v, want (0,1)", r)
	}
}
