package swcanvas

import "testing"

func TestFreshContextIsNotClipped(t *testing.T) {
	ctx := newTestContext(10, 10)
	if ctx.IsClipped() {
		t.Error("fresh context reports IsClipped() = true")
	}
}

func TestClipRectRestrictsFillToClipRegion(t *testing.T) {
	ctx := newTestContext(20, 20)
	ctx.ClipRect(0, 0, 5, 5)
	if !ctx.IsClipped() {
		t.Fatal("IsClipped() = false after ClipRect")
	}

	ctx.SetFillStyle(Color{R: 255, A: 255})
	ctx.FillRect(0, 0, 20, 20)

	inside := ctx.Surface().GetPixel(2, 2)
	if inside.A == 0 {
		t.Error("GetPixel(2,2) inside the clip region is transparent, want filled")
	}
	outside := ctx.Surface().GetPixel(15, 15)
	if outside.A != 0 {
		t.Errorf("GetPixel(15,15) outside the clip region = %+v, want transparent", outside)
	}
}

func TestClipRectDoesNotDisturbPendingPath(t *testing.T) {
	ctx := newTestContext(20, 20)
	ctx.MoveTo(1, 1)
	ctx.LineTo(2, 2)
	ctx.ClipRect(0, 0, 5, 5)
	x, y, ok := ctx.CurrentPoint()
	if !ok || x != 2 || y != 2 {
		t.Errorf("CurrentPoint() after ClipRect = (%v,%v,%v), want (2,2,true)", x, y, ok)
	}
}

func TestResetClipRestoresFullVisibility(t *testing.T) {
	ctx := newTestContext(20, 20)
	ctx.ClipRect(0, 0, 5, 5)
	ctx.ResetClip()
	if ctx.IsClipped() {
		t.Error("IsClipped() = true after ResetClip")
	}

	ctx.SetFillStyle(Color{R: 255, A: 255})
	ctx.FillRect(0, 0, 20, 20)
	outside := ctx.Surface().GetPixel(15, 15)
	if outside.A == 0 {
		t.Error("GetPixel(15,15) after ResetClip should be fillable again")
	}
}

func TestSuccessiveClipsIntersect(t *testing.T) {
	ctx := newTestContext(20, 20)
	ctx.ClipRect(0, 0, 10, 10)
	ctx.ClipRect(5, 5, 10, 10)

	ctx.SetFillStyle(Color{R: 255, A: 255})
	ctx.FillRect(0, 0, 20, 20)

	// Only the overlap [5,10)x[5,10) should be filled.
	overlap := ctx.Surface().GetPixel(7, 7)
	if overlap.A == 0 {
		t.Error("GetPixel(7,7) in the intersection of both clips is transparent, want filled")
	}
	onlyFirst := ctx.Surface().GetPixel(2, 2)
	if onlyFirst.A != 0 {
		t.Errorf("GetPixel(2,2) in only the first clip region = %+v, want transparent", onlyFirst)
	}
	onlySecond := ctx.Surface().GetPixel(12, 12)
	if onlySecond.A != 0 {
		t.Errorf("GetPixel(12,12) in only the second clip region = %+v, want transparent", onlySecond)
	}
}

func TestSaveRestorePreservesAndRestoresClipState(t *testing.T) {
	ctx := newTestContext(20, 20)
	ctx.ClipRect(0, 0, 5, 5)
	ctx.Save()
	ctx.ClipRect(5, 5, 10, 10)
	wasClippedAfterSecond := ctx.IsClipped()
	ctx.Restore()

	if !wasClippedAfterSecond {
		t.Fatal("expected IsClipped() = true after the second ClipRect")
	}
	if !ctx.IsClipped() {
		t.Error("IsClipped() = false after Restore, want the first clip region restored")
	}

	ctx.SetFillStyle(Color{R: 255, A: 255})
	ctx.FillRect(0, 0, 20, 20)
	// After restoring, only the first clip (0,0,5,5) should be active.
	inFirst := ctx.Surface().GetPixel(2, 2)
	if inFirst.A == 0 {
		t.Error("GetPixel(2,2) should be fillable after restoring the first clip region")
	}
}
