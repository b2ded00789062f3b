package swcanvas

import "math"

// ShapeKind identifies a path recognized as a simple geometric
// primitive, letting Context2D route it to an analytic fast path
// (internal/primitives) instead of the general flatten+rasterfill
// pipeline. Detection runs on the already-transformed (device-space)
// path, so a shape built in user space but rotated or sheared by the
// current transform will not match: every detector here checks axis
// alignment in the coordinates the path actually holds.
type ShapeKind int

const (
	// ShapeUnknown indicates the path is too complex, or not axis
	// aligned, for any recognized fast path.
	ShapeUnknown ShapeKind = iota
	ShapeCircle
	ShapeEllipse
	ShapeRect
	ShapeRRect
	// ShapeLine indicates a single axis-aligned line segment (MoveTo
	// followed by one LineTo, left open). Only single-segment strokes
	// are recognized; a multi-point polyline falls back to the general
	// pipeline even if every segment happens to be axis aligned.
	ShapeLine
)

// DetectedShape holds the parameters of a recognized geometric
// primitive. Which fields are meaningful depends on Kind.
type DetectedShape struct {
	Kind         ShapeKind
	CenterX      float64 // circle/ellipse/rect/rrect center.
	CenterY      float64
	RadiusX      float64 // circle/ellipse radius; RadiusX == RadiusY for a circle.
	RadiusY      float64
	Width        float64 // rect/rrect bounding size.
	Height       float64
	CornerRadius float64 // rrect only.
	StartX       float64 // line endpoints.
	StartY       float64
	EndX         float64
	EndY         float64
}

// kappa is the cubic Bezier handle length for a 90-degree circular arc,
// expressed as a fraction of the radius: 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// shapeDetectTolerance bounds the coordinate error DetectShape tolerates
// before giving up and reporting ShapeUnknown.
const shapeDetectTolerance = 1e-3

// shapeDetector matches a specific element-count pattern. Detectors are
// tried in order; the first match wins. A path length not claimed by
// any entry is ShapeUnknown without further work.
var shapeDetectors = []struct {
	elemCount int
	detect    func([]PathElement) (DetectedShape, bool)
}{
	{elemCount: 2, detect: detectLine},
	{elemCount: 5, detect: detectRect},
	{elemCount: 6, detect: detectCircleOrEllipse},
}

// DetectShape analyzes a Path and reports the simple geometric
// primitive it matches, if any. Rounded rects are checked separately
// rather than through the fixed-length table; detectRRect matches only
// the ten-element sequence RoundedRectangle emits.
func DetectShape(path *Path) DetectedShape {
	if path == nil {
		return DetectedShape{Kind: ShapeUnknown}
	}
	elems := path.Elements()
	if len(elems) == 0 {
		return DetectedShape{Kind: ShapeUnknown}
	}
	for _, d := range shapeDetectors {
		if len(elems) != d.elemCount {
			continue
		}
		if shape, ok := d.detect(elems); ok {
			return shape
		}
	}
	if len(elems) >= 9 {
		if shape, ok := detectRRect(elems); ok {
			return shape
		}
	}
	return DetectedShape{Kind: ShapeUnknown}
}

// detectLine matches an open MoveTo+LineTo path whose single segment
// runs parallel to an axis — the shape FillLineAxisAligned/StrokeRect
// can rasterize analytically without going through strokegen.
func detectLine(elems []PathElement) (DetectedShape, bool) {
	move, ok := elems[0].(MoveTo)
	if !ok {
		return DetectedShape{}, false
	}
	line, ok := elems[1].(LineTo)
	if !ok {
		return DetectedShape{}, false
	}
	dx := math.Abs(move.Point.X - line.Point.X)
	dy := math.Abs(move.Point.Y - line.Point.Y)
	if dx > shapeDetectTolerance && dy > shapeDetectTolerance {
		return DetectedShape{}, false // diagonal
	}
	if dx <= shapeDetectTolerance && dy <= shapeDetectTolerance {
		return DetectedShape{}, false // zero-length: let the general pipeline draw the cap-only dot
	}
	return DetectedShape{
		Kind:   ShapeLine,
		StartX: move.Point.X, StartY: move.Point.Y,
		EndX: line.Point.X, EndY: line.Point.Y,
	}, true
}

// quadrantUnit is the unit outward direction of each of the four
// cardinal points a circle/ellipse path visits, in the order Path's
// circle-building code emits them: right, bottom, left, top.
var quadrantUnit = [4]Point{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 0, Y: -1},
}

// detectCircleOrEllipse matches MoveTo + 4*CubicTo + Close and checks
// that the four cubics are the standard kappa-handle approximation of
// an axis-aligned ellipse (a circle when the two radii agree).
func detectCircleOrEllipse(elems []PathElement) (DetectedShape, bool) {
	move, ok := elems[0].(MoveTo)
	if !ok {
		return DetectedShape{}, false
	}
	var cubics [4]CubicTo
	for i := range cubics {
		c, ok := elems[i+1].(CubicTo)
		if !ok {
			return DetectedShape{}, false
		}
		cubics[i] = c
	}
	if _, ok := elems[5].(Close); !ok {
		return DetectedShape{}, false
	}

	// pts[0..3] are the right/bottom/left/top cardinal points the path
	// visits; the curve must close back onto pts[0].
	pts := [4]Point{move.Point, cubics[0].Point, cubics[1].Point, cubics[2].Point}
	if !nearlyEqual(cubics[3].Point, move.Point) {
		return DetectedShape{}, false
	}

	cx := (pts[0].X + pts[2].X) / 2 // right/left pair
	cy := (pts[1].Y + pts[3].Y) / 2 // bottom/top pair
	cx2 := (pts[1].X + pts[3].X) / 2
	cy2 := (pts[0].Y + pts[2].Y) / 2
	if math.Abs(cx-cx2) > shapeDetectTolerance || math.Abs(cy-cy2) > shapeDetectTolerance {
		return DetectedShape{}, false
	}

	rx := math.Abs(pts[0].X - cx)
	ry := math.Abs(pts[1].Y - cy)
	if rx < shapeDetectTolerance || ry < shapeDetectTolerance {
		return DetectedShape{}, false
	}
	if !verifyEllipseHandles(cubics, cx, cy, rx, ry) {
		return DetectedShape{}, false
	}

	if math.Abs(rx-ry) < shapeDetectTolerance {
		r := (rx + ry) / 2
		return DetectedShape{Kind: ShapeCircle, CenterX: cx, CenterY: cy, RadiusX: r, RadiusY: r}, true
	}
	return DetectedShape{Kind: ShapeEllipse, CenterX: cx, CenterY: cy, RadiusX: rx, RadiusY: ry}, true
}

// verifyEllipseHandles checks every cubic's pair of control points
// against the kappa-scaled handle for its quadrant, rather than
// hand-writing the four quadrant cases separately.
func verifyEllipseHandles(cubics [4]CubicTo, cx, cy, rx, ry float64) bool {
	kx, ky := rx*kappa, ry*kappa
	for i, c := range cubics {
		start := quadrantUnit[i]
		end := quadrantUnit[(i+1)%4]
		wantCP1 := Point{X: cx + start.X*rx + (-start.Y)*kx, Y: cy + start.Y*ry + start.X*ky}
		wantCP2 := Point{X: cx + end.X*rx + end.Y*kx, Y: cy + end.Y*ry + (-end.X)*ky}
		if !closeTo(c.Control1, wantCP1) || !closeTo(c.Control2, wantCP2) {
			return false
		}
	}
	return true
}

// detectRect matches MoveTo + 3*LineTo + Close forming an axis-aligned
// rectangle (every edge purely horizontal or vertical).
func detectRect(elems []PathElement) (DetectedShape, bool) {
	move, ok := elems[0].(MoveTo)
	if !ok {
		return DetectedShape{}, false
	}
	corners := [4]Point{move.Point}
	for i := 1; i <= 3; i++ {
		l, ok := elems[i].(LineTo)
		if !ok {
			return DetectedShape{}, false
		}
		corners[i] = l.Point
	}
	if _, ok := elems[4].(Close); !ok {
		return DetectedShape{}, false
	}
	for i := 0; i < 4; i++ {
		next := corners[(i+1)%4]
		if math.Abs(corners[i].X-next.X) > shapeDetectTolerance && math.Abs(corners[i].Y-next.Y) > shapeDetectTolerance {
			return DetectedShape{}, false
		}
	}

	minX, maxX := corners[0].X, corners[0].X
	minY, maxY := corners[0].Y, corners[0].Y
	for _, c := range corners[1:] {
		minX, maxX = math.Min(minX, c.X), math.Max(maxX, c.X)
		minY, maxY = math.Min(minY, c.Y), math.Max(maxY, c.Y)
	}
	w, h := maxX-minX, maxY-minY
	if w < shapeDetectTolerance || h < shapeDetectTolerance {
		return DetectedShape{}, false
	}
	return DetectedShape{Kind: ShapeRect, CenterX: (minX + maxX) / 2, CenterY: (minY + maxY) / 2, Width: w, Height: h}, true
}

// detectRRect matches the exact element sequence Path.RoundedRectangle
// emits: MoveTo, then four (LineTo edge, CubicTo corner) pairs, then
// Close — ten elements total.
func detectRRect(elems []PathElement) (DetectedShape, bool) {
	if len(elems) != 10 {
		return DetectedShape{}, false
	}
	move, ok := elems[0].(MoveTo)
	if !ok {
		return DetectedShape{}, false
	}
	var edges [4]Point
	var corners [4]CubicTo
	for i := 0; i < 4; i++ {
		lt, ok := elems[1+i*2].(LineTo)
		if !ok {
			return DetectedShape{}, false
		}
		edges[i] = lt.Point
		ct, ok := elems[2+i*2].(CubicTo)
		if !ok {
			return DetectedShape{}, false
		}
		corners[i] = ct
	}
	if _, ok := elems[9].(Close); !ok {
		return DetectedShape{}, false
	}

	topY := move.Point.Y
	rightX := corners[0].Point.X
	bottomY := corners[1].Point.Y
	leftX := corners[2].Point.X
	if math.Abs(edges[0].Y-topY) > shapeDetectTolerance ||
		math.Abs(edges[1].X-rightX) > shapeDetectTolerance ||
		math.Abs(edges[2].Y-bottomY) > shapeDetectTolerance ||
		math.Abs(edges[3].X-leftX) > shapeDetectTolerance {
		return DetectedShape{}, false
	}

	w, h := rightX-leftX, bottomY-topY
	if w < shapeDetectTolerance || h < shapeDetectTolerance {
		return DetectedShape{}, false
	}

	r1 := move.Point.X - leftX
	r2 := rightX - edges[0].X
	r3 := corners[0].Point.Y - topY
	r4 := bottomY - edges[1].Y
	cornerR := (r1 + r2 + r3 + r4) / 4
	if r1 < 0 || r2 < 0 {
		return DetectedShape{}, false
	}
	for _, r := range []float64{r1, r2, r3, r4} {
		if math.Abs(r-cornerR) > shapeDetectTolerance {
			return DetectedShape{}, false
		}
	}

	return DetectedShape{
		Kind: ShapeRRect,
		CenterX: (leftX + rightX) / 2, CenterY: (topY + bottomY) / 2,
		Width: w, Height: h, CornerRadius: cornerR,
	}, true
}

func nearlyEqual(a, b Point) bool {
	return math.Abs(a.X-b.X) < shapeDetectTolerance && math.Abs(a.Y-b.Y) < shapeDetectTolerance
}

func closeTo(pt, want Point) bool {
	return math.Abs(pt.X-want.X) < shapeDetectTolerance && math.Abs(pt.Y-want.Y) < shapeDetectTolerance
}
