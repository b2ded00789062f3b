package swcanvas

import (
	"math"
	"testing"
)

func TestRectUnion(t *testing.T) {
	a := NewRect(Pt(0, 0), Pt(5, 5))
	b := NewRect(Pt(3, -2), Pt(8, 3))
	u := a.Union(b)
	if u.Min != (Point{0, -2}) || u.Max != (Point{8, 5}) {
		t.Errorf("Union = %+v, want min (0,-2) max (8,5)", u)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(Pt(0, 0), Pt(10, 10))
	if !r.Contains(Pt(5, 5)) {
		t.Error("Contains(5,5) = false, want true")
	}
	if r.Contains(Pt(11, 5)) {
		t.Error("Contains(11,5) = true, want false")
	}
}

func TestLineEvalEndpoints(t *testing.T) {
	l := NewLine(Pt(0, 0), Pt(10, 20))
	if got := l.Eval(0); got != l.P0 {
		t.Errorf("Eval(0) = %+v, want %+v", got, l.P0)
	}
	if got := l.Eval(1); got != l.P1 {
		t.Errorf("Eval(1) = %+v, want %+v", got, l.P1)
	}
}

func TestLineLength(t *testing.T) {
	l := NewLine(Pt(0, 0), Pt(3, 4))
	if got := l.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
}

func TestQuadBezEvalEndpoints(t *testing.T) {
	q := NewQuadBez(Pt(0, 0), Pt(5, 10), Pt(10, 0))
	if got := q.Eval(0); got != q.P0 {
		t.Errorf("Eval(0) = %+v, want %+v", got, q.P0)
	}
	if got := q.Eval(1); got != q.P2 {
		t.Errorf("Eval(1) = %+v, want %+v", got, q.P2)
	}
}

func TestQuadBezRaiseMatchesEval(t *testing.T) {
	q := NewQuadBez(Pt(0, 0), Pt(5, 10), Pt(10, 0))
	cubic := q.Raise()
	for _, tParam := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got := cubic.Eval(tParam)
		want := q.Eval(tParam)
		if !approxEq(got.X, want.X, 1e-9) || !approxEq(got.Y, want.Y, 1e-9) {
			t.Errorf("Raise().Eval(%v) = %+v, want %+v (same curve as quadratic)", tParam, got, want)
		}
	}
}

func TestQuadBezBoundingBoxCapturesBulge(t *testing.T) {
	q := NewQuadBez(Pt(0, 0), Pt(5, 10), Pt(10, 0))
	box := q.BoundingBox()
	if box.Max.Y <= 0 {
		t.Errorf("BoundingBox().Max.Y = %v, want > 0", box.Max.Y)
	}
	// The true extremum of this symmetric quad is at t=0.5, y=5.
	if !approxEq(box.Max.Y, 5, 1e-9) {
		t.Errorf("BoundingBox().Max.Y = %v, want 5", box.Max.Y)
	}
}

func TestCubicBezSubdivideMatchesOriginalAtJoin(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(3, 10), Pt(7, 10), Pt(10, 0))
	left, right := c.Subdivide()
	if left.P3 != right.P0 {
		t.Errorf("subdivided halves don't share a joint point: %+v vs %+v", left.P3, right.P0)
	}
	mid := c.Eval(0.5)
	if !approxEq(left.P3.X, mid.X, 1e-9) || !approxEq(left.P3.Y, mid.Y, 1e-9) {
		t.Errorf("subdivision joint = %+v, want curve midpoint %+v", left.P3, mid)
	}
}

func TestCubicBezDerivTangent(t *testing.T) {
	// A straight horizontal line's tangent should point purely in +X.
	c := NewCubicBez(Pt(0, 0), Pt(3, 0), Pt(7, 0), Pt(10, 0))
	tan := c.Tangent(0.5)
	if !approxEq(tan.Y, 0, 1e-9) {
		t.Errorf("Tangent(0.5).Y = %v, want 0 for a straight horizontal curve", tan.Y)
	}
	if tan.X <= 0 {
		t.Errorf("Tangent(0.5).X = %v, want > 0", tan.X)
	}
}

func TestCubicBezBoundingBox(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))
	box := c.BoundingBox()
	if box.Min.X < 0 || box.Max.X > 10 {
		t.Errorf("BoundingBox X range = [%v, %v], want within [0, 10]", box.Min.X, box.Max.X)
	}
	if box.Max.Y <= 0 {
		t.Errorf("BoundingBox().Max.Y = %v, want > 0", box.Max.Y)
	}
}

func TestCubicBezInflectionsSCurveHasOne(t *testing.T) {
	// A classic S-curve has exactly one inflection point in (0,1).
	c := NewCubicBez(Pt(0, 0), Pt(10, 0), Pt(0, 10), Pt(10, 10))
	infl := c.Inflections()
	if len(infl) != 1 {
		t.Errorf("Inflections() = %v, want exactly one for an S-curve", infl)
	}
	for _, tParam := range infl {
		if tParam < 0 || tParam > 1 {
			t.Errorf("inflection parameter %v out of [0,1]", tParam)
		}
	}
}

func TestVec2PerpIsOrthogonal(t *testing.T) {
	v := V2(3, 4)
	p := v.Perp()
	if got := v.Dot(p); math.Abs(got) > 1e-9 {
		t.Errorf("Dot(v, v.Perp()) = %v, want ~0", got)
	}
}
