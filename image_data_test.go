package swcanvas

import (
	"image"
	"image/color"
	"testing"
)

func TestNewImageDataRejectsNonPositiveDimensions(t *testing.T) {
	if _, err := NewImageData(0, 10); err != ErrInvalidDimensions {
		t.Errorf("NewImageData(0,10) = %v, want ErrInvalidDimensions", err)
	}
	if _, err := NewImageData(10, -1); err != ErrInvalidDimensions {
		t.Errorf("NewImageData(10,-1) = %v, want ErrInvalidDimensions", err)
	}
}

func TestNewImageDataIsTransparentAndCorrectlySized(t *testing.T) {
	img, err := NewImageData(3, 4)
	if err != nil {
		t.Fatalf("NewImageData(3,4) = %v, want nil", err)
	}
	if len(img.Data) != 3*4*4 {
		t.Errorf("len(Data) = %d, want %d", len(img.Data), 3*4*4)
	}
	for _, b := range img.Data {
		if b != 0 {
			t.Fatal("NewImageData produced non-zero bytes, want fully transparent")
		}
	}
}

func TestGetImageDataRoundTripsSurfacePixels(t *testing.T) {
	ctx := newTestContext(10, 10)
	ctx.SetFillStyle(Color{R: 1, G: 2, B: 3, A: 255})
	ctx.FillRect(0, 0, 10, 10)

	data, err := ctx.GetImageData(2, 2, 3, 3)
	if err != nil {
		t.Fatalf("GetImageData() = %v, want nil", err)
	}
	if data.Width != 3 || data.Height != 3 {
		t.Fatalf("GetImageData size = %dx%d, want 3x3", data.Width, data.Height)
	}
	if data.Data[0] != 1 || data.Data[1] != 2 || data.Data[2] != 3 || data.Data[3] != 255 {
		t.Errorf("first pixel = %v, want (1,2,3,255)", data.Data[0:4])
	}
}

func TestGetImageDataOutsideSurfaceBoundsIsTransparent(t *testing.T) {
	ctx := newTestContext(4, 4)
	ctx.SetFillStyle(Red)
	ctx.FillRect(0, 0, 4, 4)

	data, err := ctx.GetImageData(-2, -2, 4, 4)
	if err != nil {
		t.Fatalf("GetImageData() = %v, want nil", err)
	}
	// Top-left corner of the requested region is off-surface and must
	// read back as transparent rather than erroring or wrapping.
	if data.Data[0] != 0 || data.Data[3] != 0 {
		t.Errorf("out-of-bounds pixel = %v, want transparent", data.Data[0:4])
	}
	// Bottom-right corner of the requested region maps onto filled surface.
	lastPixel := len(data.Data) - 4
	if data.Data[lastPixel+3] == 0 {
		t.Error("in-bounds pixel of GetImageData region reads transparent, want filled")
	}
}

func TestGetImageDataRejectsNonPositiveDimensions(t *testing.T) {
	ctx := newTestContext(10, 10)
	if _, err := ctx.GetImageData(0, 0, 0, 5); err != ErrInvalidDimensions {
		t.Errorf("GetImageData(w=0) = %v, want ErrInvalidDimensions", err)
	}
}

func TestPutImageDataWritesVerbatimBypassingCompositing(t *testing.T) {
	ctx := newTestContext(10, 10)
	ctx.SetFillStyle(Color{R: 0, G: 0, B: 0, A: 255})
	ctx.FillRect(0, 0, 10, 10)

	data, _ := NewImageData(2, 2)
	for i := range data.Data {
		data.Data[i] = 128
	}
	ctx.PutImageData(data, 3, 3)

	got := ctx.Surface().GetPixel(3, 3)
	if got != (Color{128, 128, 128, 128}) {
		t.Errorf("GetPixel(3,3) after PutImageData = %+v, want (128,128,128,128) written verbatim", got)
	}
}

func TestPutImageDataClipsToSurfaceBounds(t *testing.T) {
	ctx := newTestContext(4, 4)
	data, _ := NewImageData(10, 10)
	for i := range data.Data {
		data.Data[i] = 200
	}
	// Should not panic despite extending far outside the 4x4 surface.
	ctx.PutImageData(data, -3, -3)

	got := ctx.Surface().GetPixel(0, 0)
	if got.R != 200 {
		t.Errorf("GetPixel(0,0) after clipped PutImageData = %+v, want R=200", got)
	}
}

func TestPutImageDataNilIsNoop(t *testing.T) {
	ctx := newTestContext(4, 4)
	ctx.PutImageData(nil, 0, 0)
}

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDrawImageAxisAlignedPaintsDestinationRect(t *testing.T) {
	ctx := newTestContext(20, 20)
	src := solidImage(4, 4, color.NRGBA{R: 50, G: 60, B: 70, A: 255})
	ctx.DrawImage(src, 2, 2, 6, 6)

	got := ctx.Surface().GetPixel(5, 5)
	if got.A == 0 {
		t.Error("GetPixel(5,5) after DrawImage is transparent, want painted")
	}
}

func TestDrawImageZeroSizeIsNoop(t *testing.T) {
	ctx := newTestContext(10, 10)
	src := solidImage(2, 2, color.NRGBA{R: 255, A: 255})
	ctx.DrawImage(src, 0, 0, 0, 5)
	if ctx.Surface().GetPixel(0, 0).A != 0 {
		t.Error("DrawImage with dw=0 painted pixels, want no-op")
	}
}

func TestDrawImageAffineDispatchesUnderRotation(t *testing.T) {
	ctx := newTestContext(30, 30)
	ctx.Translate(15, 15)
	ctx.Rotate(0.5)
	src := solidImage(6, 6, color.NRGBA{R: 200, G: 0, B: 0, A: 255})
	ctx.DrawImage(src, -3, -3, 6, 6)

	got := ctx.Surface().GetPixel(15, 15)
	if got.A == 0 {
		t.Error("GetPixel at rotated destination center is transparent, want painted")
	}
}
