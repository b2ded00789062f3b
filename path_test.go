package swcanvas

import "testing"

func TestPathMoveToLineToRecordsElements(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)

	elems := p.Elements()
	if len(elems) != 2 {
		t.Fatalf("len(Elements()) = %d, want 2", len(elems))
	}
	if m, ok := elems[0].(MoveTo); !ok || m.Point != Pt(1, 2) {
		t.Errorf("elems[0] = %+v, want MoveTo(1,2)", elems[0])
	}
	if l, ok := elems[1].(LineTo); !ok || l.Point != Pt(3, 4) {
		t.Errorf("elems[1] = %+v, want LineTo(3,4)", elems[1])
	}
	if got := p.CurrentPoint(); got != Pt(3, 4) {
		t.Errorf("CurrentPoint() = %+v, want (3, 4)", got)
	}
}

func TestPathCloseReturnsToStart(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(9, 9)
	p.Close()
	if got := p.CurrentPoint(); got != Pt(1, 1) {
		t.Errorf("CurrentPoint() after Close() = %+v, want (1, 1)", got)
	}
}

func TestPathClear(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.Clear()
	if len(p.Elements()) != 0 {
		t.Errorf("len(Elements()) after Clear() = %d, want 0", len(p.Elements()))
	}
	if p.HasCurrentPoint() {
		t.Error("HasCurrentPoint() after Clear() = true, want false")
	}
}

func TestPathTransformAppliesToAllElements(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 0)
	p.LineTo(2, 0)
	p.QuadraticTo(3, 1, 4, 0)
	p.CubicTo(5, 1, 6, 1, 7, 0)

	m := Translate(10, 0)
	out := p.Transform(m)

	elems := out.Elements()
	if len(elems) != len(p.Elements()) {
		t.Fatalf("len(transformed) = %d, want %d", len(elems), len(p.Elements()))
	}
	mv := elems[0].(MoveTo)
	if mv.Point != Pt(11, 0) {
		t.Errorf("transformed MoveTo = %+v, want (11, 0)", mv.Point)
	}
}

func TestPathRectangleIsClosedQuad(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 20)
	elems := p.Elements()
	if len(elems) != 5 {
		t.Fatalf("len(Elements()) = %d, want 5 (move+3 lines+close)", len(elems))
	}
	if _, ok := elems[4].(Close); !ok {
		t.Errorf("last element = %T, want Close", elems[4])
	}
}

func TestPathAppendFromMergesElementsAndCurrentPoint(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 1)

	other := NewPath()
	other.MoveTo(5, 5)
	other.LineTo(6, 6)

	p.AppendFrom(other)

	elems := p.Elements()
	if len(elems) != 4 {
		t.Fatalf("len(Elements()) = %d, want 4", len(elems))
	}
	if got := p.CurrentPoint(); got != Pt(6, 6) {
		t.Errorf("CurrentPoint() after AppendFrom = %+v, want (6, 6)", got)
	}
}

func TestPathAppendFromNilOrEmptyIsNoop(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.AppendFrom(nil)
	p.AppendFrom(NewPath())
	if len(p.Elements()) != 1 {
		t.Errorf("len(Elements()) after no-op AppendFrom = %d, want 1", len(p.Elements()))
	}
}

func TestPathBoundingBoxEmptyPath(t *testing.T) {
	p := NewPath()
	if _, ok := p.BoundingBox(); ok {
		t.Error("BoundingBox() of empty path reported ok=true")
	}
}

func TestPathBoundingBoxStraightLines(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 5)

	box, ok := p.BoundingBox()
	if !ok {
		t.Fatal("BoundingBox() reported ok=false for non-empty path")
	}
	if box.Min != (Point{0, 0}) || box.Max != (Point{10, 5}) {
		t.Errorf("BoundingBox() = %+v, want min (0,0) max (10,5)", box)
	}
}

func TestPathBoundingBoxIncludesCurveExtrema(t *testing.T) {
	p := NewPath()
	// A quarter-circle-ish cubic bulging above its chord: the chord alone
	// runs from (0,0) to (10,0), but the curve's extremum pushes Y higher.
	p.MoveTo(0, 0)
	p.CubicTo(0, 10, 10, 10, 10, 0)

	box, ok := p.BoundingBox()
	if !ok {
		t.Fatal("BoundingBox() reported ok=false")
	}
	if box.Max.Y <= 0 {
		t.Errorf("BoundingBox().Max.Y = %v, want > 0 to capture curve bulge", box.Max.Y)
	}
}

func TestPathCloneIsIndependent(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	clone := p.Clone()
	p.LineTo(2, 2)

	if len(clone.Elements()) != 1 {
		t.Errorf("clone mutated after original changed: len = %d, want 1", len(clone.Elements()))
	}
}

func TestPathCircleStartsAndEndsOnBoundary(t *testing.T) {
	p := NewPath()
	p.Circle(0, 0, 5)
	elems := p.Elements()
	mv, ok := elems[0].(MoveTo)
	if !ok {
		t.Fatalf("first element = %T, want MoveTo", elems[0])
	}
	if mv.Point != Pt(5, 0) {
		t.Errorf("Circle start point = %+v, want (5, 0)", mv.Point)
	}
}

func TestPathRoundedRectangleClampsRadius(t *testing.T) {
	p := NewPath()
	// Radius larger than half the smaller dimension must be clamped rather
	// than producing overlapping/invalid arcs.
	p.RoundedRectangle(0, 0, 10, 4, 100)
	if len(p.Elements()) == 0 {
		t.Fatal("RoundedRectangle produced no elements")
	}
}
