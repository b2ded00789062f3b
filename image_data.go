package swcanvas

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
)

// ImageData is a raw RGBA8 (straight alpha, row-major, no padding)
// pixel buffer, mirroring the layout Surface.Pix returns so Get/Put
// round-trip without conversion.
type ImageData struct {
	Width, Height int
	Data          []uint8
}

// NewImageData allocates a transparent ImageData of the given size.
func NewImageData(width, height int) (*ImageData, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &ImageData{Width: width, Height: height, Data: make([]uint8, width*height*4)}, nil
}

// GetImageData reads a region of the surface. The requested rectangle
// is clipped to the surface bounds rather than erroring on an
// out-of-range request — pixels outside the surface are reported as
// transparent black, matching HTML5 Canvas2D's clip-to-intersection
// behavior for getImageData.
func (c *Context2D) GetImageData(x, y, w, h int) (*ImageData, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	out := &ImageData{Width: w, Height: h, Data: make([]uint8, w*h*4)}

	sx0, sy0 := x, y
	sx1, sy1 := x+w, y+h
	if sx0 < 0 {
		sx0 = 0
	}
	if sy0 < 0 {
		sy0 = 0
	}
	if sx1 > c.surface.Width() {
		sx1 = c.surface.Width()
	}
	if sy1 > c.surface.Height() {
		sy1 = c.surface.Height()
	}

	pix := c.surface.Pix()
	stride := c.surface.Width() * 4
	for sy := sy0; sy < sy1; sy++ {
		dy := sy - y
		srcRow := sy * stride
		dstRow := dy * w * 4
		for sx := sx0; sx < sx1; sx++ {
			dx := sx - x
			si := srcRow + sx*4
			di := dstRow + dx*4
			copy(out.Data[di:di+4], pix[si:si+4])
		}
	}
	return out, nil
}

// PutImageData writes data back to the surface at (x, y), clipped to
// the surface bounds, bypassing compositing (a direct overwrite, as
// HTML5 Canvas2D specifies).
func (c *Context2D) PutImageData(data *ImageData, x, y int) {
	if data == nil {
		return
	}
	pix := c.surface.Pix()
	stride := c.surface.Width() * 4
	for sy := 0; sy < data.Height; sy++ {
		ty := y + sy
		if ty < 0 || ty >= c.surface.Height() {
			continue
		}
		srcRow := sy * data.Width * 4
		dstRow := ty * stride
		for sx := 0; sx < data.Width; sx++ {
			tx := x + sx
			if tx < 0 || tx >= c.surface.Width() {
				continue
			}
			si := srcRow + sx*4
			di := dstRow + tx*4
			copy(pix[di:di+4], data.Data[si:si+4])
		}
	}
}

// DrawImage draws img into the destination rectangle (dx, dy, dw, dh)
// in user space, resampled through the current transform.
//
// When the current transform is axis-aligned (no rotation or shear),
// the destination is resampled with golang.org/x/image/draw's
// Catmull-Rom scaler for quality comparable to typical browser
// drawImage behavior. Otherwise (rotation or shear present), each
// destination pixel's source sample is found by inverse-transforming
// it and taking a bilinear sample, which handles arbitrary affine
// transforms at some cost in resampling quality versus a dedicated
// separable scaler.
func (c *Context2D) DrawImage(img image.Image, dx, dy, dw, dh float64) {
	if dw == 0 || dh == 0 {
		return
	}

	if c.state.transform.IsAxisAligned() {
		c.drawImageAxisAligned(img, dx, dy, dw, dh)
		return
	}
	c.drawImageAffine(img, dx, dy, dw, dh)
}

func (c *Context2D) drawImageAxisAligned(img image.Image, dx, dy, dw, dh float64) {
	p0 := c.state.transform.TransformPoint(Pt(dx, dy))
	p1 := c.state.transform.TransformPoint(Pt(dx+dw, dy+dh))
	bbox := NewRect(p0, p1)

	destRect := image.Rect(
		int(math.Round(bbox.Min.X)), int(math.Round(bbox.Min.Y)),
		int(math.Round(bbox.Max.X)), int(math.Round(bbox.Max.Y)),
	)
	if destRect.Dx() <= 0 || destRect.Dy() <= 0 {
		return
	}

	scratch := image.NewNRGBA(destRect)
	xdraw.CatmullRom.Scale(scratch, destRect, img, img.Bounds(), draw.Over, nil)
	c.compositeNRGBA(scratch, destRect)
}

// drawImageAffine handles rotated/sheared destinations via inverse
// sampling: for each device pixel in the transformed bounding box,
// map back into source image space and bilinear-sample.
func (c *Context2D) drawImageAffine(img image.Image, dx, dy, dw, dh float64) {
	corners := [4]Point{
		c.state.transform.TransformPoint(Pt(dx, dy)),
		c.state.transform.TransformPoint(Pt(dx+dw, dy)),
		c.state.transform.TransformPoint(Pt(dx+dw, dy+dh)),
		c.state.transform.TransformPoint(Pt(dx, dy+dh)),
	}
	bbox := NewRect(corners[0], corners[1])
	for _, p := range corners[2:] {
		bbox = bbox.Union(NewRect(p, p))
	}

	inv := c.state.transform.Invert()
	bounds := img.Bounds()
	x0, x1 := int(math.Floor(bbox.Min.X)), int(math.Ceil(bbox.Max.X))
	y0, y1 := int(math.Floor(bbox.Min.Y)), int(math.Ceil(bbox.Max.Y))
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > c.surface.Width() {
		x1 = c.surface.Width()
	}
	if y1 > c.surface.Height() {
		y1 = c.surface.Height()
	}

	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			devicePt := Pt(float64(px)+0.5, float64(py)+0.5)
			userPt := inv.TransformPoint(devicePt)
			u := (userPt.X - dx) / dw
			v := (userPt.Y - dy) / dh
			if u < 0 || u > 1 || v < 0 || v > 1 {
				continue
			}
			sx := bounds.Min.X + u*float64(bounds.Dx())
			sy := bounds.Min.Y + v*float64(bounds.Dy())
			sample := bilinearSample(img, sx, sy)
			if sample.A == 0 {
				continue
			}
			eff := uint8(math.Round(float64(sample.A) * c.state.globalAlpha))
			c.paintSpan(px, px+1, py, Color{R: sample.R, G: sample.G, B: sample.B, A: eff}, 255)
		}
	}
}

func bilinearSample(img image.Image, fx, fy float64) Color {
	x0 := int(math.Floor(fx - 0.5))
	y0 := int(math.Floor(fy - 0.5))
	tx := (fx - 0.5) - float64(x0)
	ty := (fy - 0.5) - float64(y0)

	c00 := sampleClamped(img, x0, y0)
	c10 := sampleClamped(img, x0+1, y0)
	c01 := sampleClamped(img, x0, y0+1)
	c11 := sampleClamped(img, x0+1, y0+1)

	top := c00.Lerp(c10, tx)
	bottom := c01.Lerp(c11, tx)
	return top.Lerp(bottom, ty)
}

func sampleClamped(img image.Image, x, y int) Color {
	b := img.Bounds()
	if x < b.Min.X {
		x = b.Min.X
	}
	if x >= b.Max.X {
		x = b.Max.X - 1
	}
	if y < b.Min.Y {
		y = b.Min.Y
	}
	if y >= b.Max.Y {
		y = b.Max.Y - 1
	}
	r, g, bl, a := img.At(x, y).RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8), A: uint8(a >> 8)}
}

// compositeNRGBA composites a scratch NRGBA image onto the surface at
// its own bounds, through globalAlpha and globalCompositeOperation.
func (c *Context2D) compositeNRGBA(src *image.NRGBA, rect image.Rectangle) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		if y < 0 || y >= c.surface.Height() {
			continue
		}
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if x < 0 || x >= c.surface.Width() {
				continue
			}
			i := src.PixOffset(x, y)
			a := src.Pix[i+3]
			if a == 0 {
				continue
			}
			col := Color{R: src.Pix[i], G: src.Pix[i+1], B: src.Pix[i+2], A: a}
			col = applyGlobalAlpha(col, c.state.globalAlpha)
			c.paintSpan(x, x+1, y, col, 255)
		}
	}
}
