package swcanvas

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"unsafe"

	"github.com/swcanvas/swcanvas/internal/blend"
)

// Surface is the core rendering target: a rectangular buffer of straight
// (non-premultiplied) sRGB pixels. It implements image.Image so it
// composes with the standard library image ecosystem (PNG encode/decode,
// draw.Draw, etc.), grounded on the teacher's Pixmap.
//
// A Surface is consumable: Close marks it unusable for further drawing,
// matching the spec's "drawing on a consumed surface is a StateError"
// requirement.
type Surface struct {
	width, height int
	pix           []byte // straight sRGB, R,G,B,A order, stride = width*4
	closed        bool
}

var _ image.Image = (*Surface)(nil)

// NewSurface creates a new, fully transparent surface of the given size.
// Width and height are not validated, here or in CreateCanvas; a
// non-positive size is not reported as an error.
func NewSurface(width, height int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Closed reports whether Close has been called.
func (s *Surface) Closed() bool { return s.closed }

// Close marks the surface as consumed. Idempotent.
func (s *Surface) Close() error {
	s.closed = true
	return nil
}

// Pix returns the raw backing buffer: four straight sRGB bytes per pixel
// in R,G,B,A order, row-major, stride width*4. Callers that mutate this
// slice bypass compositing; it exists for getImageData/putImageData and
// for tests.
func (s *Surface) Pix() []byte { return s.pix }

// Words reinterprets the same backing buffer as one native-endian uint32
// per pixel: an actual aliased view, not a decoded copy. Writing through
// this view and reading through Pix (or vice versa) observe the same
// bytes — see packing.go for the word<->byte channel mapping.
func (s *Surface) Words() []uint32 {
	if len(s.pix) == 0 {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&s.pix[0])), s.width*s.height)
}

// GetPixel returns the color at (x, y), or transparent black if out of
// bounds.
func (s *Surface) GetPixel(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	i := (y*s.width + x) * 4
	return Color{R: s.pix[i], G: s.pix[i+1], B: s.pix[i+2], A: s.pix[i+3]}
}

// SetPixel writes a single pixel verbatim (no blending).
func (s *Surface) SetPixel(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := (y*s.width + x) * 4
	s.pix[i], s.pix[i+1], s.pix[i+2], s.pix[i+3] = c.R, c.G, c.B, c.A
}

// Clear fills the entire surface with a color verbatim.
func (s *Surface) Clear(c Color) {
	for i := 0; i < len(s.pix); i += 4 {
		s.pix[i], s.pix[i+1], s.pix[i+2], s.pix[i+3] = c.R, c.G, c.B, c.A
	}
}

// FillSpanOpaque is the SpanOps opaque writer: it overwrites x1..x2
// (exclusive) on row y with c verbatim, batch-doubling the write for long
// spans. Grounded on the teacher's Pixmap.FillSpan.
func (s *Surface) FillSpanOpaque(x1, x2, y int, c Color) {
	x1, x2 = s.clipSpan(x1, x2, y)
	if x1 >= x2 {
		return
	}

	start := (y*s.width + x1) * 4
	length := x2 - x1

	if length < 16 {
		for i := 0; i < length; i++ {
			idx := start + i*4
			s.pix[idx], s.pix[idx+1], s.pix[idx+2], s.pix[idx+3] = c.R, c.G, c.B, c.A
		}
		return
	}

	s.pix[start], s.pix[start+1], s.pix[start+2], s.pix[start+3] = c.R, c.G, c.B, c.A
	filled := 1
	for filled < length {
		copyLen := filled
		if filled+copyLen > length {
			copyLen = length - filled
		}
		copy(s.pix[start+filled*4:start+(filled+copyLen)*4], s.pix[start:start+copyLen*4])
		filled += copyLen
	}
}

// FillSpanAlpha is the SpanOps alpha writer: it composites a uniform
// straight color with per-span alpha (e.g. AA edge coverage) onto x1..x2
// on row y using premultiplied source-over math. coverage is 0..255 and
// multiplies the color's own alpha. Grounded on the teacher's
// Pixmap.FillSpanBlend, generalized to take an explicit coverage value
// rather than assuming the color's alpha alone drives blending.
func (s *Surface) FillSpanAlpha(x1, x2, y int, c Color, coverage uint8) {
	s.fillSpanOp(blend.SourceOver, x1, x2, y, c, coverage)
}

// CompositeSpan blends a span using the given composite operator and
// coverage — the general entry point CompositeOp dispatches to; opaque
// source-over with full coverage is routed through FillSpanOpaque for
// speed.
func (s *Surface) CompositeSpan(op CompositeOp, x1, x2, y int, c Color, coverage uint8) {
	s.fillSpanOp(toBlendOp(op), x1, x2, y, c, coverage)
}

func (s *Surface) fillSpanOp(op blend.Op, x1, x2, y int, c Color, coverage uint8) {
	x1, x2 = s.clipSpan(x1, x2, y)
	if x1 >= x2 || coverage == 0 {
		return
	}
	if op == blend.SourceOver && coverage == 255 && c.A == 255 {
		s.FillSpanOpaque(x1, x2, y, c)
		return
	}

	start := (y*s.width + x1) * 4
	length := x2 - x1
	for i := 0; i < length; i++ {
		idx := start + i*4
		dr, dg, db, da := s.pix[idx], s.pix[idx+1], s.pix[idx+2], s.pix[idx+3]
		or, og, ob, oa := blend.Composite(op, c.R, c.G, c.B, c.A, coverage, dr, dg, db, da)
		s.pix[idx], s.pix[idx+1], s.pix[idx+2], s.pix[idx+3] = or, og, ob, oa
	}
}

func (s *Surface) clipSpan(x1, x2, y int) (int, int) {
	if y < 0 || y >= s.height {
		return 0, 0
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > s.width {
		x2 = s.width
	}
	return x1, x2
}

// --- image.Image ---

func (s *Surface) At(x, y int) color.Color {
	c := s.GetPixel(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToImage returns an independent *image.NRGBA snapshot of the surface.
func (s *Surface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.pix)
	return img
}

// SavePNG encodes the surface as a PNG file at path.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // caller-provided path is intentional
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return png.Encode(f, s.ToImage())
}
