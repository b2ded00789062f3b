package swcanvas

import "testing"

func TestNewDashNormalizesNegativeLengths(t *testing.T) {
	d := NewDash(-5, 3)
	if d == nil {
		t.Fatal("NewDash(-5, 3) = nil, want non-nil")
	}
	if d.Array[0] != 5 || d.Array[1] != 3 {
		t.Errorf("Array = %v, want [5 3]", d.Array)
	}
}

func TestNewDashAllZeroReturnsNil(t *testing.T) {
	if d := NewDash(0, 0); d != nil {
		t.Errorf("NewDash(0,0) = %+v, want nil", d)
	}
	if d := NewDash(); d != nil {
		t.Errorf("NewDash() = %+v, want nil", d)
	}
}

func TestDashPatternLengthDuplicatesOddArrays(t *testing.T) {
	d := NewDash(5, 3, 2)
	want := (5.0 + 3.0 + 2.0) * 2
	if got := d.PatternLength(); got != want {
		t.Errorf("PatternLength() = %v, want %v", got, want)
	}
}

func TestDashIsDashed(t *testing.T) {
	if (*Dash)(nil).IsDashed() {
		t.Error("nil Dash.IsDashed() = true, want false")
	}
	if !NewDash(5, 3).IsDashed() {
		t.Error("NewDash(5,3).IsDashed() = false, want true")
	}
}

func TestDashCloneIsIndependent(t *testing.T) {
	d := NewDash(5, 3)
	clone := d.Clone()
	clone.Array[0] = 100
	if d.Array[0] == 100 {
		t.Error("mutating clone's Array mutated the original")
	}
}

func TestDashStateAtWithinFirstSegment(t *testing.T) {
	d := NewDash(5, 3)
	on, remaining := d.StateAt(2)
	if !on {
		t.Error("StateAt(2) on [5,3] should be 'on' (within the first dash)")
	}
	if remaining != 3 {
		t.Errorf("StateAt(2) remaining = %v, want 3", remaining)
	}
}

func TestDashStateAtWithinGap(t *testing.T) {
	d := NewDash(5, 3)
	on, _ := d.StateAt(6)
	if on {
		t.Error("StateAt(6) on [5,3] should be 'off' (within the gap)")
	}
}

func TestDashStateAtBoundaryStartsNextSegment(t *testing.T) {
	d := NewDash(5, 3)
	// distance == 5 lands exactly on the dash/gap boundary; per StateAt's
	// documented half-open convention, this belongs to the gap.
	on, _ := d.StateAt(5)
	if on {
		t.Error("StateAt(5) at the dash/gap boundary should report 'off' (half-open convention)")
	}
}

func TestDashStateAtWrapsAroundPattern(t *testing.T) {
	d := NewDash(5, 3)
	onFirst, _ := d.StateAt(1)
	onWrapped, _ := d.StateAt(1 + d.PatternLength()*3)
	if onFirst != onWrapped {
		t.Errorf("StateAt should be periodic: got %v and %v for equivalent positions", onFirst, onWrapped)
	}
}

func TestDashStateAtNilOrEmptyIsAlwaysOn(t *testing.T) {
	var d *Dash
	on, remaining := d.StateAt(100)
	if !on {
		t.Error("nil Dash.StateAt should always report 'on'")
	}
	if !isInf(remaining) {
		t.Errorf("nil Dash.StateAt remaining = %v, want +Inf", remaining)
	}
}

func isInf(f float64) bool {
	return f > 1e300
}

func TestDashScale(t *testing.T) {
	d := NewDash(5, 3)
	scaled := d.Scale(2)
	if scaled.Array[0] != 10 || scaled.Array[1] != 6 {
		t.Errorf("Scale(2).Array = %v, want [10 6]", scaled.Array)
	}
}

func TestDashWithOffset(t *testing.T) {
	d := NewDash(5, 3)
	offset := d.WithOffset(2)
	if offset.Offset != 2 {
		t.Errorf("WithOffset(2).Offset = %v, want 2", offset.Offset)
	}
	if d.Offset != 0 {
		t.Error("WithOffset mutated the receiver")
	}
}
