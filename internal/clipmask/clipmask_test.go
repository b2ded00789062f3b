package clipmask

import "testing"

func TestNewMaskIsInactiveAndFullyVisible(t *testing.T) {
	m := New(4, 4)
	if m.IsActive() {
		t.Error("fresh mask reports IsActive() = true")
	}
	if got := m.CoverageAt(1, 1); got != 255 {
		t.Errorf("CoverageAt on fresh mask = %d, want 255", got)
	}
}

func TestNilMaskIsInactiveAndFullyVisible(t *testing.T) {
	var m *Mask
	if m.IsActive() {
		t.Error("nil mask reports IsActive() = true")
	}
	if got := m.CoverageAt(0, 0); got != 255 {
		t.Errorf("nil.CoverageAt() = %d, want 255", got)
	}
}

func TestCoverageAtOutOfBoundsIsFullyClipped(t *testing.T) {
	buf := make([]uint8, 4*4)
	for i := range buf {
		buf[i] = 255
	}
	m := FromCoverage(4, 4, buf)
	if got := m.CoverageAt(-1, 0); got != 0 {
		t.Errorf("CoverageAt(-1,0) = %d, want 0", got)
	}
	if got := m.CoverageAt(10, 10); got != 0 {
		t.Errorf("CoverageAt(10,10) = %d, want 0", got)
	}
}

func TestFromCoverageThresholdsAtHalfIntoASingleBit(t *testing.T) {
	buf := make([]uint8, 2*2)
	buf[0] = 100 // below 128: clipped out
	buf[1] = 200 // at/above 128: visible
	m := FromCoverage(2, 2, buf)
	if !m.IsActive() {
		t.Error("FromCoverage mask reports IsActive() = false")
	}
	if got := m.CoverageAt(0, 0); got != 0 {
		t.Errorf("CoverageAt(0,0) for coverage=100 = %d, want 0 (below the 50%% threshold)", got)
	}
	if got := m.CoverageAt(1, 0); got != 255 {
		t.Errorf("CoverageAt(1,0) for coverage=200 = %d, want 255 (at/above the 50%% threshold)", got)
	}
}

func TestFromCoverageExactlyAtThresholdIsVisible(t *testing.T) {
	m := FromCoverage(1, 1, []uint8{128})
	if got := m.CoverageAt(0, 0); got != 255 {
		t.Errorf("CoverageAt(0,0) for coverage=128 = %d, want 255", got)
	}
}

func TestCloneIsIndependentAfterReplacement(t *testing.T) {
	m := FromCoverage(1, 1, []uint8{255})
	clone := m.Clone()

	// Replacing m's buffer (as IntersectMask does, never mutating in
	// place) must not affect the clone.
	m = FromCoverage(1, 1, []uint8{0})

	if got := clone.CoverageAt(0, 0); got != 255 {
		t.Errorf("clone.CoverageAt(0,0) = %d, want 255 (unaffected by later reassignment)", got)
	}
	if got := m.CoverageAt(0, 0); got != 0 {
		t.Errorf("m.CoverageAt(0,0) = %d, want 0", got)
	}
}

func TestCloneOfNilIsNil(t *testing.T) {
	var m *Mask
	if clone := m.Clone(); clone != nil {
		t.Errorf("Clone() of nil mask = %+v, want nil", clone)
	}
}

func TestIntersectMaskANDsBitsTogether(t *testing.T) {
	a := FromCoverage(2, 1, []uint8{255, 0})
	b := FromCoverage(2, 1, []uint8{255, 255})

	result := a.IntersectMask(b)
	if got := result.CoverageAt(0, 0); got != 255 {
		t.Errorf("IntersectMask(visible,visible).CoverageAt = %d, want 255", got)
	}
	if got := result.CoverageAt(1, 0); got != 0 {
		t.Errorf("IntersectMask(clipped,visible).CoverageAt = %d, want 0", got)
	}
}

func TestIntersectMaskWithInactiveOtherReturnsReceiverUnchanged(t *testing.T) {
	a := FromCoverage(1, 1, []uint8{200})
	var b *Mask
	result := a.IntersectMask(b)
	if result != a {
		t.Error("IntersectMask with inactive other should return the receiver unchanged")
	}
}

func TestIntersectMaskTreatsNilReceiverAsFullyVisible(t *testing.T) {
	var a *Mask
	b := FromCoverage(1, 1, []uint8{200})
	result := a.IntersectMask(b)
	if got := result.CoverageAt(0, 0); got != 255 {
		t.Errorf("IntersectMask(nil, visible).CoverageAt = %d, want 255 (nil treated as fully visible)", got)
	}
}

func TestAllocateIsIdempotentAndFullyVisible(t *testing.T) {
	m := New(2, 2)
	m.Allocate()
	if !m.IsActive() {
		t.Error("after Allocate(), IsActive() = false")
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := m.CoverageAt(x, y); got != 255 {
				t.Errorf("CoverageAt(%d,%d) = %d, want 255 after Allocate", x, y, got)
			}
		}
	}
	m.buf[0] = 0
	m.Allocate()
	if m.buf[0] != 0 {
		t.Error("second Allocate() call overwrote existing buffer")
	}
}
