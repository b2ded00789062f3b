package blend

import "testing"

func TestMulDiv255Rounding(t *testing.T) {
	tests := []struct{ a, b, want uint8 }{
		{255, 255, 255},
		{0, 255, 0},
		{128, 255, 128},
		{255, 128, 128},
		{1, 1, 0},
	}
	for _, tt := range tests {
		if got := MulDiv255(tt.a, tt.b); got != tt.want {
			t.Errorf("MulDiv255(%d,%d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAddDiv255Clamps(t *testing.T) {
	if got := AddDiv255(200, 100); got != 255 {
		t.Errorf("AddDiv255(200,100) = %d, want 255", got)
	}
	if got := AddDiv255(10, 20); got != 30 {
		t.Errorf("AddDiv255(10,20) = %d, want 30", got)
	}
}

func TestPremultiplyUnpremultiplyRoundTrip(t *testing.T) {
	for _, a := range []uint8{0, 1, 64, 128, 200, 255} {
		for _, straight := range []uint8{0, 50, 128, 255} {
			premul := Premultiply(straight, a)
			if premul > straight {
				t.Fatalf("Premultiply(%d,%d) = %d, want <= %d", straight, a, premul, straight)
			}
			if a == 0 {
				continue
			}
			back := Unpremultiply(premul, a)
			// Round trip through 8-bit premultiplication is lossy: at
			// alpha a the premultiplied channel only has steps of 255/a
			// straight units, so allow half a step plus rounding (and at
			// least 3) rather than exact equality.
			diff := int(back) - int(straight)
			if diff < 0 {
				diff = -diff
			}
			tol := 3
			if step := (255+int(a))/(2*int(a)) + 1; step > tol {
				tol = step
			}
			if diff > tol {
				t.Errorf("Unpremultiply(Premultiply(%d,%d),%d) = %d, want close to %d", straight, a, a, back, straight)
			}
		}
	}
}

func TestUnpremultiplyZeroAlpha(t *testing.T) {
	if got := Unpremultiply(100, 0); got != 0 {
		t.Errorf("Unpremultiply(100,0) = %d, want 0", got)
	}
}

func TestCompositeCopyFullCoverageReplacesVerbatim(t *testing.T) {
	r, g, b, a := Composite(Copy, 10, 20, 30, 40, 255, 200, 200, 200, 200)
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("Composite(Copy, full coverage) = (%d,%d,%d,%d), want (10,20,30,40)", r, g, b, a)
	}
}

func TestCompositeCopyZeroCoverageKeepsDestination(t *testing.T) {
	r, g, b, a := Composite(Copy, 10, 20, 30, 40, 0, 200, 201, 202, 203)
	if r != 200 || g != 201 || b != 202 || a != 203 {
		t.Errorf("Composite(Copy, 0 coverage) = (%d,%d,%d,%d), want unchanged dest", r, g, b, a)
	}
}

func TestCompositeSourceOverOpaqueSourceFullCoverageIgnoresDest(t *testing.T) {
	r, g, b, a := Composite(SourceOver, 255, 0, 0, 255, 255, 0, 255, 0, 255)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("Composite(SourceOver, opaque src, full coverage) = (%d,%d,%d,%d), want (255,0,0,255)", r, g, b, a)
	}
}

func TestCompositeSourceOverZeroCoverageKeepsDestination(t *testing.T) {
	r, g, b, a := Composite(SourceOver, 255, 0, 0, 255, 0, 10, 20, 30, 40)
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("Composite(SourceOver, 0 coverage) = (%d,%d,%d,%d), want unchanged dest", r, g, b, a)
	}
}

func TestCompositeSourceOverTransparentSourceOverOpaqueDestKeepsDest(t *testing.T) {
	r, g, b, a := Composite(SourceOver, 255, 0, 0, 0, 255, 1, 2, 3, 255)
	if r != 1 || g != 2 || b != 3 || a != 255 {
		t.Errorf("Composite(SourceOver, transparent src) = (%d,%d,%d,%d), want unchanged dest", r, g, b, a)
	}
}

func TestCompositeSourceOverOntoTransparentDestYieldsSourceWithEffectiveAlpha(t *testing.T) {
	r, _, _, a := Composite(SourceOver, 100, 150, 200, 255, 128, 0, 0, 0, 0)
	if a == 0 {
		t.Fatal("Composite onto transparent dest with nonzero coverage should not be fully transparent")
	}
	// Straight-color result should still read back as the source hue.
	if r < 90 || r > 110 {
		t.Errorf("Composite result R = %d, want close to source 100", r)
	}
}

func TestCompositeSourceOverPartialCoverageBlendsTowardSource(t *testing.T) {
	r, _, _, a := Composite(SourceOver, 255, 255, 255, 255, 128, 0, 0, 0, 255)
	if a != 255 {
		t.Errorf("Composite over opaque dest should remain opaque, got A=%d", a)
	}
	if r <= 0 || r >= 255 {
		t.Errorf("Composite partial-coverage white-over-black R = %d, want strictly between 0 and 255", r)
	}
}
