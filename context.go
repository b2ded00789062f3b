package swcanvas

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"

	"github.com/swcanvas/swcanvas/internal/blend"
	"github.com/swcanvas/swcanvas/internal/clipmask"
	"github.com/swcanvas/swcanvas/internal/flatten"
	"github.com/swcanvas/swcanvas/internal/primitives"
	"github.com/swcanvas/swcanvas/internal/rasterfill"
	"github.com/swcanvas/swcanvas/internal/strokegen"
)

// drawState is the portion of Context2D affected by Save/Restore.
// The current path is deliberately excluded: per the HTML5 Canvas2D
// spec, save()/restore() snapshot style and transform state but never
// the path under construction.
type drawState struct {
	transform   Matrix
	fillColor   Color
	strokeColor Color
	stroke      StrokeProperties
	globalAlpha float64
	compositeOp CompositeOp
	clip        *clipmask.Mask
}

func (s drawState) clone() drawState {
	s.stroke = s.stroke.Clone()
	return s
}

// Context2D is the main drawing surface state machine: current
// transform, path, fill/stroke style, clip region, and a save/restore
// stack, dispatching fill and stroke operations either to an analytic
// fast path (internal/primitives) or the general flatten →
// rasterfill/strokegen pipeline.
type Context2D struct {
	surface *Surface
	state   drawState
	stack   []drawState

	path *Path

	filler *rasterfill.Filler
	opts   contextOptions

	slowPathUsed bool
	closed       bool
}

var _ io.Closer = (*Context2D)(nil)

// NewContext2D creates a drawing context targeting surface.
func NewContext2D(surface *Surface, opts ...ContextOption) *Context2D {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Context2D{
		surface: surface,
		state: drawState{
			transform:   Identity(),
			fillColor:   Black,
			strokeColor: Black,
			stroke:      DefaultStrokeProperties(),
			globalAlpha: 1.0,
			compositeOp: CompositeSourceOver,
		},
		path:   NewPath(),
		filler: rasterfill.NewFiller(surface.Width()),
		opts:   options,
	}
}

// CreateCanvas allocates a Surface of the given size and a Context2D
// bound to it in a single call, mirroring the `document.createElement(
// "canvas")` + `getContext("2d")` convenience most Canvas2D hosts expose
// as one constructor.
func CreateCanvas(width, height int, opts ...ContextOption) (*Surface, *Context2D) {
	surface := NewSurface(width, height)
	return surface, NewContext2D(surface, opts...)
}

// Close releases the context. The underlying Surface is not closed.
func (c *Context2D) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.path = nil
	c.stack = nil
	return nil
}

// Surface returns the underlying pixel surface.
func (c *Context2D) Surface() *Surface { return c.surface }

// WasSlowPathUsed reports whether the most recent fill/stroke fell back
// to the general rasterization pipeline instead of an analytic fast
// path. Part of the Core API surface as a diagnostic for callers who
// care whether a draw call took the fast or slow route.
func (c *Context2D) WasSlowPathUsed() bool { return c.slowPathUsed }

// ResetSlowPathFlag clears the flag WasSlowPathUsed reports. Each
// fill/stroke resets it automatically before dispatching, so this is
// only needed to observe a single operation in isolation after others
// have already run.
func (c *Context2D) ResetSlowPathFlag() { c.slowPathUsed = false }

// ---- style state ----

// SetFillStyle sets the solid color used by Fill/FillRect.
func (c *Context2D) SetFillStyle(col Color) { c.state.fillColor = col }

// FillStyle returns the current fill color.
func (c *Context2D) FillStyle() Color { return c.state.fillColor }

// SetStrokeStyle sets the solid color used by Stroke/StrokeRect.
func (c *Context2D) SetStrokeStyle(col Color) { c.state.strokeColor = col }

// StrokeStyle returns the current stroke color.
func (c *Context2D) StrokeStyle() Color { return c.state.strokeColor }

// SetGlobalAlpha sets the alpha multiplier applied to all drawing
// operations, clamped to [0, 1].
func (c *Context2D) SetGlobalAlpha(a float64) {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.state.globalAlpha = a
}

// GlobalAlpha returns the current global alpha.
func (c *Context2D) GlobalAlpha() float64 { return c.state.globalAlpha }

// SetGlobalCompositeOperation sets the Porter-Duff compositing mode.
func (c *Context2D) SetGlobalCompositeOperation(op CompositeOp) { c.state.compositeOp = op }

// SetGlobalCompositeOperationString sets the compositing mode from a
// CSS Canvas globalCompositeOperation string ("source-over", "copy").
// Returns ErrInvalidEnum for any other value, leaving the mode unchanged.
func (c *Context2D) SetGlobalCompositeOperationString(name string) error {
	op, ok := ParseCompositeOp(name)
	if !ok {
		return ErrInvalidEnum
	}
	c.state.compositeOp = op
	return nil
}

// GlobalCompositeOperation returns the current compositing mode.
func (c *Context2D) GlobalCompositeOperation() CompositeOp { return c.state.compositeOp }

// SetLineWidth sets the stroke width in user-space units. Negative
// widths are rejected with ErrInvalidLineWidth and leave the previous
// width in place.
func (c *Context2D) SetLineWidth(w float64) error {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrInvalidLineWidth
	}
	c.state.stroke.Width = w
	return nil
}

// LineWidth returns the current stroke width.
func (c *Context2D) LineWidth() float64 { return c.state.stroke.Width }

// SetLineCap sets the stroke end-cap style.
func (c *Context2D) SetLineCap(cap LineCap) { c.state.stroke.Cap = cap }

// SetLineCapString sets the stroke end-cap style from a CSS Canvas
// lineCap string ("butt", "round", "square"). Returns ErrInvalidEnum
// for any other value, leaving the cap unchanged.
func (c *Context2D) SetLineCapString(name string) error {
	cap, ok := ParseLineCap(name)
	if !ok {
		return ErrInvalidEnum
	}
	c.state.stroke.Cap = cap
	return nil
}

// LineCap returns the current stroke end-cap style.
func (c *Context2D) LineCap() LineCap { return c.state.stroke.Cap }

// SetLineJoin sets the stroke corner style.
func (c *Context2D) SetLineJoin(join LineJoin) { c.state.stroke.Join = join }

// SetLineJoinString sets the stroke corner style from a CSS Canvas
// lineJoin string ("miter", "round", "bevel"). Returns ErrInvalidEnum
// for any other value, leaving the join unchanged.
func (c *Context2D) SetLineJoinString(name string) error {
	join, ok := ParseLineJoin(name)
	if !ok {
		return ErrInvalidEnum
	}
	c.state.stroke.Join = join
	return nil
}

// LineJoin returns the current stroke corner style.
func (c *Context2D) LineJoin() LineJoin { return c.state.stroke.Join }

// SetMiterLimit sets the miter length limit before falling back to
// bevel. Non-positive limits are rejected with ErrInvalidMiterLimit.
func (c *Context2D) SetMiterLimit(limit float64) error {
	if limit <= 0 || math.IsNaN(limit) || math.IsInf(limit, 0) {
		return ErrInvalidMiterLimit
	}
	c.state.stroke.MiterLimit = limit
	return nil
}

// MiterLimit returns the current miter limit.
func (c *Context2D) MiterLimit() float64 { return c.state.stroke.MiterLimit }

// SetLineDash sets the dash pattern. Passing an empty slice clears it
// (returns to a solid line).
func (c *Context2D) SetLineDash(lengths []float64) {
	if len(lengths) == 0 {
		c.state.stroke.Dash = nil
		return
	}
	dash := NewDash(lengths...)
	offset := 0.0
	if c.state.stroke.Dash != nil {
		offset = c.state.stroke.Dash.Offset
	}
	if dash != nil {
		dash.Offset = offset
	}
	c.state.stroke.Dash = dash
}

// GetLineDash returns a copy of the current dash pattern, or nil if solid.
func (c *Context2D) GetLineDash() []float64 {
	if c.state.stroke.Dash == nil {
		return nil
	}
	out := make([]float64, len(c.state.stroke.Dash.Array))
	copy(out, c.state.stroke.Dash.Array)
	return out
}

// SetLineDashOffset sets the starting offset into the dash pattern.
// While no dash pattern is set, the offset is not stored: LineDashOffset
// keeps reporting 0 and a later SetLineDash starts from offset 0.
func (c *Context2D) SetLineDashOffset(offset float64) {
	if c.state.stroke.Dash == nil {
		c.state.stroke.Dash = NewDash(0)
	}
	if c.state.stroke.Dash != nil {
		c.state.stroke.Dash = c.state.stroke.Dash.WithOffset(offset)
	}
}

// LineDashOffset returns the current dash offset.
func (c *Context2D) LineDashOffset() float64 {
	if c.state.stroke.Dash == nil {
		return 0
	}
	return c.state.stroke.Dash.Offset
}

// ---- transform ----

// Save pushes a copy of the current style/transform/clip state.
func (c *Context2D) Save() {
	c.stack = append(c.stack, c.state.clone())
}

// Restore pops the most recently saved state. A no-op if the stack is empty.
func (c *Context2D) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate applies a translation to the current transform.
func (c *Context2D) Translate(x, y float64) { c.state.transform = c.state.transform.Multiply(Translate(x, y)) }

// Scale applies a scale to the current transform.
func (c *Context2D) Scale(sx, sy float64) { c.state.transform = c.state.transform.Multiply(Scale(sx, sy)) }

// Rotate applies a rotation (radians) to the current transform.
func (c *Context2D) Rotate(angle float64) { c.state.transform = c.state.transform.Multiply(Rotate(angle)) }

// Transform multiplies the current transform by (a,b,c,d,e,f), in the
// HTML5 Canvas2D column-vector convention.
func (c *Context2D) Transform(a, b, cc, d, e, f float64) {
	c.state.transform = c.state.transform.Multiply(Matrix{A: a, B: b, C: cc, D: d, E: e, F: f})
}

// SetTransform replaces the current transform outright.
func (c *Context2D) SetTransform(a, b, cc, d, e, f float64) {
	c.state.transform = Matrix{A: a, B: b, C: cc, D: d, E: e, F: f}
}

// ResetTransform resets the current transform to identity.
func (c *Context2D) ResetTransform() { c.state.transform = Identity() }

// GetTransform returns the current transform.
func (c *Context2D) GetTransform() Matrix { return c.state.transform }

// ---- path construction ----
// Points passed to these methods are in user space; they are baked
// into the path in device space immediately, matching the HTML5
// Canvas2D rule that path commands capture the transform in effect
// at the time they are issued.

// BeginPath discards the current path.
func (c *Context2D) BeginPath() { c.path.Clear() }

// ClosePath closes the current subpath.
func (c *Context2D) ClosePath() { c.path.Close() }

// MoveTo starts a new subpath at (x, y).
func (c *Context2D) MoveTo(x, y float64) {
	p := c.state.transform.TransformPoint(Pt(x, y))
	c.path.MoveTo(p.X, p.Y)
}

// LineTo appends a line segment to (x, y).
func (c *Context2D) LineTo(x, y float64) {
	p := c.state.transform.TransformPoint(Pt(x, y))
	c.path.LineTo(p.X, p.Y)
}

// QuadraticCurveTo appends a quadratic Bezier curve.
func (c *Context2D) QuadraticCurveTo(cx, cy, x, y float64) {
	cp := c.state.transform.TransformPoint(Pt(cx, cy))
	p := c.state.transform.TransformPoint(Pt(x, y))
	c.path.QuadraticTo(cp.X, cp.Y, p.X, p.Y)
}

// BezierCurveTo appends a cubic Bezier curve.
func (c *Context2D) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	cp1 := c.state.transform.TransformPoint(Pt(c1x, c1y))
	cp2 := c.state.transform.TransformPoint(Pt(c2x, c2y))
	p := c.state.transform.TransformPoint(Pt(x, y))
	c.path.CubicTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p.X, p.Y)
}

// Rect adds an axis-aligned (in user space) rectangle as a new subpath.
func (c *Context2D) Rect(x, y, w, h float64) {
	tmp := NewPath()
	tmp.Rectangle(x, y, w, h)
	c.path.AppendFrom(tmp.Transform(c.state.transform))
}

// Arc adds a circular arc as a new subpath: it always starts with a
// MoveTo to the arc's start point and is not joined to an existing
// current point.
func (c *Context2D) Arc(x, y, r, startAngle, endAngle float64, anticlockwise bool) {
	a0, a1 := startAngle, endAngle
	if anticlockwise {
		a0, a1 = endAngle, startAngle
	}
	tmp := NewPath()
	tmp.Arc(x, y, r, a0, a1)
	c.path.AppendFrom(tmp.Transform(c.state.transform))
}

// Ellipse adds an axis-aligned (in user space) ellipse as a new subpath.
func (c *Context2D) Ellipse(x, y, rx, ry float64) {
	tmp := NewPath()
	tmp.Ellipse(x, y, rx, ry)
	c.path.AppendFrom(tmp.Transform(c.state.transform))
}

// RoundedRect adds a rounded rectangle as a new subpath.
func (c *Context2D) RoundedRect(x, y, w, h, r float64) {
	tmp := NewPath()
	tmp.RoundedRectangle(x, y, w, h, r)
	c.path.AppendFrom(tmp.Transform(c.state.transform))
}

// CurrentPoint returns the path's current point, if any.
func (c *Context2D) CurrentPoint() (x, y float64, ok bool) {
	if !c.path.HasCurrentPoint() {
		return 0, 0, false
	}
	p := c.path.CurrentPoint()
	return p.X, p.Y, true
}

// ---- fill / stroke ----

// Fill rasterizes the current path using rule and clears it.
func (c *Context2D) Fill(rule FillRule) error {
	err := c.doFill(rule)
	c.path.Clear()
	return err
}

// FillPreserve is Fill without clearing the path afterward.
func (c *Context2D) FillPreserve(rule FillRule) error {
	return c.doFill(rule)
}

// FillString is Fill taking a CSS Canvas fill-rule string ("nonzero",
// "evenodd") instead of a typed FillRule, as the two-argument JS
// fill(path, fillRule) form expects. Returns ErrInvalidEnum for any
// other value without touching the path.
func (c *Context2D) FillString(rule string) error {
	fr, ok := ParseFillRule(rule)
	if !ok {
		return ErrInvalidEnum
	}
	return c.Fill(fr)
}

// Stroke rasterizes the outline of the current path and clears it.
func (c *Context2D) Stroke() error {
	err := c.doStroke()
	c.path.Clear()
	return err
}

// StrokePreserve is Stroke without clearing the path afterward.
func (c *Context2D) StrokePreserve() error {
	return c.doStroke()
}

// FillRect immediately fills an axis-aligned rectangle, independent
// of the current path.
func (c *Context2D) FillRect(x, y, w, h float64) error {
	saved := c.path
	c.path = NewPath()
	c.Rect(x, y, w, h)
	err := c.doFill(FillRuleNonZero)
	c.path = saved
	return err
}

// StrokeRect immediately strokes an axis-aligned rectangle, independent
// of the current path.
func (c *Context2D) StrokeRect(x, y, w, h float64) error {
	saved := c.path
	c.path = NewPath()
	c.Rect(x, y, w, h)
	err := c.doStroke()
	c.path = saved
	return err
}

// ClearRect resets an axis-aligned rectangle to transparent, ignoring
// globalCompositeOperation but respecting the active clip.
func (c *Context2D) ClearRect(x, y, w, h float64) {
	tmp := NewPath()
	tmp.Rectangle(x, y, w, h)
	dev := tmp.Transform(c.state.transform)
	polys := flatten.Flatten(pathToFlattenCmds(dev), c.opts.flattenTolerance)
	c.filler.Fill(polys, rasterfill.NonZero, 0, c.surface.Height(), func(s rasterfill.Span) {
		c.paintSpanOp(CompositeCopy, s.X1, s.X2, s.Y, Color{}, s.Coverage)
	})
}

func (c *Context2D) doFill(rule FillRule) error {
	if c.closed || c.surface.Closed() {
		return ErrSurfaceClosed
	}
	c.ResetSlowPathFlag()
	if c.pathMissesSurface(0) {
		return nil
	}

	shape := DetectShape(c.path)
	if c.fillFastPath(shape) {
		Logger().Debug("fill dispatched to fast path", "shape", shape.Kind)
		return nil
	}
	Logger().Debug("fill fell back to general pipeline", "shape", shape.Kind)

	c.slowPathUsed = true
	polys := flatten.Flatten(pathToFlattenCmds(c.path), c.opts.flattenTolerance)
	col := c.effectiveFillColor()
	c.filler.Fill(polys, toRasterRule(rule), 0, c.surface.Height(), func(s rasterfill.Span) {
		c.paintSpan(s.X1, s.X2, s.Y, col, s.Coverage)
	})
	return nil
}

// fillFastPath attempts an analytic fast-path fill for a detected
// axis-aligned circle/ellipse/rect/rounded rect. Rotated/sheared shapes
// (which DetectShape never reports, since its geometric checks require
// axis alignment) fall through to the general pipeline.
func (c *Context2D) fillFastPath(shape DetectedShape) bool {
	col := c.effectiveFillColor()
	switch shape.Kind {
	case ShapeCircle, ShapeEllipse:
		primitives.FillCircle(primitives.Circle{
			CX: shape.CenterX, CY: shape.CenterY, RX: shape.RadiusX, RY: shape.RadiusY,
		}, c.surface.Width(), c.surface.Height(), func(s rasterfill.Span) {
			c.paintSpan(s.X1, s.X2, s.Y, col, s.Coverage)
		})
		return true
	case ShapeRect:
		primitives.FillRect(primitives.Rect{
			X0: shape.CenterX - shape.Width/2, Y0: shape.CenterY - shape.Height/2,
			X1: shape.CenterX + shape.Width/2, Y1: shape.CenterY + shape.Height/2,
		}, c.surface.Width(), c.surface.Height(), func(s rasterfill.Span) {
			c.paintSpan(s.X1, s.X2, s.Y, col, s.Coverage)
		})
		return true
	case ShapeRRect:
		primitives.FillRoundedRect(primitives.RoundedRect{
			X0: shape.CenterX - shape.Width/2, Y0: shape.CenterY - shape.Height/2,
			X1: shape.CenterX + shape.Width/2, Y1: shape.CenterY + shape.Height/2,
			Radius: shape.CornerRadius,
		}, c.surface.Width(), c.surface.Height(), func(s rasterfill.Span) {
			c.paintSpan(s.X1, s.X2, s.Y, col, s.Coverage)
		})
		return true
	default:
		return false
	}
}

// strokeFastPath attempts an analytic fast-path stroke for a detected
// axis-aligned shape, mirroring fillFastPath. For rects and rounded
// rects it only applies to the default miter join: a rect or rounded
// rect stroked with a round or bevel join has different corner geometry
// than the plain outer-minus-inner frame StrokeRect/StrokeRoundedRect
// draw, so those fall back to the general strokegen pipeline instead of producing a
// subtly wrong corner. Circles, ellipses and axis-aligned lines have no
// corners and take the fast path under any join. Dashed strokes always
// fall back, since dashing
// operates on flattened polyline geometry these primitives never build.
func (c *Context2D) strokeFastPath(shape DetectedShape, lineWidth float64) bool {
	if c.state.stroke.IsDashed() {
		return false
	}
	col := c.effectiveStrokeColor()
	w, h := c.surface.Width(), c.surface.Height()
	miter := c.state.stroke.Join == LineJoinMiter
	switch shape.Kind {
	case ShapeCircle, ShapeEllipse:
		primitives.StrokeCircle(primitives.Circle{
			CX: shape.CenterX, CY: shape.CenterY, RX: shape.RadiusX, RY: shape.RadiusY,
		}, lineWidth, w, h, func(s rasterfill.Span) {
			c.paintSpan(s.X1, s.X2, s.Y, col, s.Coverage)
		})
		return true
	case ShapeRect:
		if !miter {
			return false
		}
		half := lineWidth / 2
		outer := primitives.Rect{
			X0: shape.CenterX - shape.Width/2 - half, Y0: shape.CenterY - shape.Height/2 - half,
			X1: shape.CenterX + shape.Width/2 + half, Y1: shape.CenterY + shape.Height/2 + half,
		}
		inner := primitives.Rect{
			X0: shape.CenterX - shape.Width/2 + half, Y0: shape.CenterY - shape.Height/2 + half,
			X1: shape.CenterX + shape.Width/2 - half, Y1: shape.CenterY + shape.Height/2 - half,
		}
		primitives.StrokeRect(outer, inner, w, h, func(s rasterfill.Span) {
			c.paintSpan(s.X1, s.X2, s.Y, col, s.Coverage)
		})
		return true
	case ShapeRRect:
		if !miter {
			return false
		}
		primitives.StrokeRoundedRect(primitives.RoundedRect{
			X0: shape.CenterX - shape.Width/2, Y0: shape.CenterY - shape.Height/2,
			X1: shape.CenterX + shape.Width/2, Y1: shape.CenterY + shape.Height/2,
			Radius: shape.CornerRadius,
		}, lineWidth, w, h, func(s rasterfill.Span) {
			c.paintSpan(s.X1, s.X2, s.Y, col, s.Coverage)
		})
		return true
	case ShapeLine:
		return primitives.FillLineAxisAligned(primitives.Line{
			X0: shape.StartX, Y0: shape.StartY, X1: shape.EndX, Y1: shape.EndY, Width: lineWidth,
		}, toPrimitivesCap(c.state.stroke.Cap), w, h, func(s rasterfill.Span) {
			c.paintSpan(s.X1, s.X2, s.Y, col, s.Coverage)
		})
	default:
		return false
	}
}

func (c *Context2D) doStroke() error {
	if c.closed || c.surface.Closed() {
		return ErrSurfaceClosed
	}
	c.ResetSlowPathFlag()

	scaleFactor := c.state.transform.MaxScaleFactor()
	if scaleFactor <= 0 {
		Logger().Warn("degenerate transform scale factor, falling back to 1", "transform", c.state.transform)
		scaleFactor = 1
	}
	width := c.state.stroke.Width * scaleFactor
	if width <= 0 {
		return nil
	}
	if c.pathMissesSurface(width / 2) {
		return nil
	}

	shape := DetectShape(c.path)
	if c.strokeFastPath(shape, width) {
		Logger().Debug("stroke dispatched to fast path", "shape", shape.Kind)
		return nil
	}
	Logger().Debug("stroke fell back to general pipeline", "shape", shape.Kind)
	c.slowPathUsed = true

	opts := strokegen.Options{
		Width:      width,
		Cap:        toStrokeCap(c.state.stroke.Cap),
		Join:       toStrokeJoin(c.state.stroke.Join),
		MiterLimit: c.state.stroke.MiterLimit,
	}

	subpaths := flatten.Flatten(pathToFlattenCmds(c.path), c.opts.flattenTolerance)
	var outline []flatten.Polygon
	for _, sp := range subpaths {
		runs := [][]strokegen.Point{toStrokePoints(sp.Points)}
		closed := sp.Closed
		if c.state.stroke.IsDashed() {
			runs = splitDash(sp.Points, sp.Closed, c.state.stroke.Dash, scaleFactor)
			closed = false
		}
		for _, run := range runs {
			for _, poly := range strokegen.Generate(run, closed, opts) {
				outline = append(outline, flatten.Polygon{Points: toFlattenPoints(poly.Points), Closed: true})
			}
		}
	}

	col := c.effectiveStrokeColor()
	c.filler.Fill(outline, rasterfill.NonZero, 0, c.surface.Height(), func(s rasterfill.Span) {
		c.paintSpan(s.X1, s.X2, s.Y, col, s.Coverage)
	})
	return nil
}

// ---- pixel output ----

// Width returns the surface width in pixels.
func (c *Context2D) Width() int { return c.surface.Width() }

// Height returns the surface height in pixels.
func (c *Context2D) Height() int { return c.surface.Height() }

// Image returns the surface as an image.Image.
func (c *Context2D) Image() image.Image { return c.surface.ToImage() }

// SavePNG writes the surface to a PNG file.
func (c *Context2D) SavePNG(path string) error { return c.surface.SavePNG(path) }

// EncodePNG writes the surface as PNG to w.
func (c *Context2D) EncodePNG(w io.Writer) error { return png.Encode(w, c.Image()) }

// EncodeJPEG writes the surface as JPEG with the given quality (1-100).
func (c *Context2D) EncodeJPEG(w io.Writer, quality int) error {
	return jpeg.Encode(w, c.Image(), &jpeg.Options{Quality: quality})
}

// ---- internal helpers ----

func (c *Context2D) effectiveFillColor() Color {
	return applyGlobalAlpha(c.state.fillColor, c.state.globalAlpha)
}

func (c *Context2D) effectiveStrokeColor() Color {
	return applyGlobalAlpha(c.state.strokeColor, c.state.globalAlpha)
}

func applyGlobalAlpha(col Color, alpha float64) Color {
	if alpha >= 1 {
		return col
	}
	col.A = uint8(math.Round(float64(col.A) * alpha))
	return col
}

// paintSpan composites a uniform-coverage span, splitting into
// per-pixel composites whenever a clip mask is active.
func (c *Context2D) paintSpan(x1, x2, y int, col Color, coverage uint8) {
	c.paintSpanOp(c.state.compositeOp, x1, x2, y, col, coverage)
}

func (c *Context2D) paintSpanOp(op CompositeOp, x1, x2, y int, col Color, coverage uint8) {
	if coverage == 0 {
		return
	}
	if !c.state.clip.IsActive() {
		c.surface.CompositeSpan(op, x1, x2, y, col, coverage)
		return
	}
	for x := x1; x < x2; x++ {
		clipCov := c.state.clip.CoverageAt(x, y)
		if clipCov == 0 {
			continue
		}
		eff := blend.MulDiv255(coverage, clipCov)
		if eff == 0 {
			continue
		}
		c.surface.CompositeSpan(op, x, x+1, y, col, eff)
	}
}

func toRasterRule(rule FillRule) rasterfill.FillRule {
	if rule == FillRuleEvenOdd {
		return rasterfill.EvenOdd
	}
	return rasterfill.NonZero
}

func toStrokeCap(cap LineCap) strokegen.Cap {
	switch cap {
	case LineCapRound:
		return strokegen.CapRound
	case LineCapSquare:
		return strokegen.CapSquare
	default:
		return strokegen.CapButt
	}
}

func toStrokeJoin(join LineJoin) strokegen.Join {
	switch join {
	case LineJoinRound:
		return strokegen.JoinRound
	case LineJoinBevel:
		return strokegen.JoinBevel
	default:
		return strokegen.JoinMiter
	}
}

func toPrimitivesCap(cap LineCap) primitives.Cap {
	switch cap {
	case LineCapRound:
		return primitives.CapRound
	case LineCapSquare:
		return primitives.CapSquare
	default:
		return primitives.CapButt
	}
}

// pathMissesSurface reports whether the current path's bounding box,
// expanded by pad (e.g. half the stroke width), lies entirely outside
// the surface. Used as a cheap reject before flattening and
// rasterizing, since curve extrema give an exact box rather than just
// the control-point hull.
func (c *Context2D) pathMissesSurface(pad float64) bool {
	box, ok := c.path.BoundingBox()
	if !ok {
		return true
	}
	return box.Max.X+pad < 0 || box.Max.Y+pad < 0 ||
		box.Min.X-pad > float64(c.surface.Width()) || box.Min.Y-pad > float64(c.surface.Height())
}

// pathToFlattenCmds converts Path elements into the generic command
// stream internal/flatten expects, degree-elevating quadratics to
// cubics so flatten only has to know one curve type.
func pathToFlattenCmds(p *Path) []flatten.Cmd {
	elems := p.Elements()
	cmds := make([]flatten.Cmd, 0, len(elems))
	var pen Point
	for _, e := range elems {
		switch el := e.(type) {
		case MoveTo:
			cmds = append(cmds, flatten.Cmd{Kind: flatten.MoveTo, X: el.Point.X, Y: el.Point.Y})
			pen = el.Point
		case LineTo:
			cmds = append(cmds, flatten.Cmd{Kind: flatten.LineTo, X: el.Point.X, Y: el.Point.Y})
			pen = el.Point
		case QuadTo:
			raised := NewQuadBez(pen, el.Control, el.Point).Raise()
			cmds = append(cmds, flatten.Cmd{Kind: flatten.CubicTo, C1X: raised.P1.X, C1Y: raised.P1.Y, C2X: raised.P2.X, C2Y: raised.P2.Y, X: el.Point.X, Y: el.Point.Y})
			pen = el.Point
		case CubicTo:
			cmds = append(cmds, flatten.Cmd{Kind: flatten.CubicTo, C1X: el.Control1.X, C1Y: el.Control1.Y, C2X: el.Control2.X, C2Y: el.Control2.Y, X: el.Point.X, Y: el.Point.Y})
			pen = el.Point
		case Close:
			cmds = append(cmds, flatten.Cmd{Kind: flatten.ClosePath})
		}
	}
	return cmds
}

func toStrokePoints(pts []flatten.Point) []strokegen.Point {
	out := make([]strokegen.Point, len(pts))
	for i, p := range pts {
		out[i] = strokegen.Point{X: p.X, Y: p.Y}
	}
	return out
}

func toFlattenPoints(pts []strokegen.Point) []flatten.Point {
	out := make([]flatten.Point, len(pts))
	for i, p := range pts {
		out[i] = flatten.Point{X: p.X, Y: p.Y}
	}
	return out
}

// splitDash walks a (possibly implicitly closed) polyline's arc
// length and returns one open polyline per "on" dash run, in device
// space. scale adjusts dash lengths the same way stroke width is
// scaled, since dash lengths are specified in user-space units.
func splitDash(points []flatten.Point, closed bool, dash *Dash, scale float64) [][]strokegen.Point {
	scaled := dash.Scale(scale)
	if scaled == nil || !scaled.IsDashed() || len(points) < 2 {
		return [][]strokegen.Point{toStrokePoints(points)}
	}

	pts := points
	if closed {
		pts = append(append([]flatten.Point{}, points...), points[0])
	}

	var runs [][]strokegen.Point
	var current []strokegen.Point
	dist := 0.0
	offset := scaled.NormalizedOffset()
	on, untilBoundary := scaled.StateAt(offset)
	if on {
		current = append(current, strokegen.Point{X: pts[0].X, Y: pts[0].Y})
	}

	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		if segLen < 1e-12 {
			continue
		}
		pos := 0.0
		for pos < segLen {
			step := untilBoundary
			if step > segLen-pos {
				step = segLen - pos
			}
			if step <= 0 {
				step = segLen - pos
			}
			pos += step
			dist += step
			untilBoundary -= step
			t := pos / segLen
			pt := strokegen.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
			if on {
				current = append(current, pt)
			}
			if untilBoundary <= 1e-9 {
				if on && len(current) >= 2 {
					runs = append(runs, current)
				}
				current = nil
				on, untilBoundary = scaled.StateAt(offset + dist)
				if on {
					current = append(current, pt)
				}
			}
		}
	}
	if on && len(current) >= 2 {
		runs = append(runs, current)
	}
	return runs
}
