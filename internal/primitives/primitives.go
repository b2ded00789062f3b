// Package primitives implements exact- or analytic-coverage fast paths
// for the axis-aligned shapes Context2D can recognize without going
// through the general flatten+rasterfill/strokegen pipeline: rectangles,
// circles/ellipses, rounded rectangles, axis-aligned lines, and circular
// arcs (RectOps, CircleOps, RoundedRectOps, LineOps, ArcOps in the
// design's terms). Rectangles, circles/ellipses and rounded rectangles
// each have a fill and a stroke entry point; lines and arcs have a
// single stroke-style entry point each (FillLineAxisAligned, StrokeArc).
// Grounded on the teacher's shape-detection fast path: once a shape is
// classified (see the root package's shape detector), its coverage can
// be computed analytically instead of by polygon scan-conversion, which
// is both faster and exact (or, for ellipse/rounded-corner curvature,
// consistently approximated) at shape edges.
package primitives

import (
	"math"

	"github.com/swcanvas/swcanvas/internal/rasterfill"
)

// Cap mirrors internal/strokegen.Cap for the fast paths in this
// package, duplicated locally (like the Point/Polygon types every
// internal package keeps to itself) so primitives never has to import
// strokegen just for an three-value enum.
type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Rect describes an axis-aligned rectangle in device space.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

func normalizeRect(r Rect) Rect {
	if r.X1 < r.X0 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y1 < r.Y0 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

func clipRectToSurface(r Rect, width, height int) Rect {
	if r.X0 < 0 {
		r.X0 = 0
	}
	if r.Y0 < 0 {
		r.Y0 = 0
	}
	if r.X1 > float64(width) {
		r.X1 = float64(width)
	}
	if r.Y1 > float64(height) {
		r.Y1 = float64(height)
	}
	return r
}

// FillRect emits exact antialiased coverage spans for an axis-aligned
// rectangle clipped to [0,width)x[0,height). Edges that don't fall on
// integer boundaries get fractional coverage on their boundary pixel.
func FillRect(r Rect, width, height int, emit func(rasterfill.Span)) {
	r = clipRectToSurface(normalizeRect(r), width, height)
	if r.X0 >= r.X1 || r.Y0 >= r.Y1 {
		return
	}

	yStart := int(math.Floor(r.Y0))
	yEnd := int(math.Ceil(r.Y1))
	for y := yStart; y < yEnd; y++ {
		rowCov := verticalCoverage(float64(y), float64(y+1), r.Y0, r.Y1)
		if rowCov <= 0 {
			continue
		}
		emitHorizontalRuns(r.X0, r.X1, y, rowCov, width, emit)
	}
}

// emitHorizontalRuns splits [x0,x1) into an optional fractional left
// pixel, a full-coverage middle run, and an optional fractional right
// pixel, each scaled by rowCov.
func emitHorizontalRuns(x0, x1 float64, y int, rowCov float64, width int, emit func(rasterfill.Span)) {
	xaInt := int(math.Floor(x0))
	xbInt := int(math.Floor(x1))

	if xaInt == xbInt {
		cov := (x1 - x0) * rowCov
		emitIf(rasterfill.Span{Y: y, X1: xaInt, X2: xaInt + 1, Coverage: toByte(cov)}, width, emit)
		return
	}

	leftFrac := float64(xaInt+1) - x0
	fullStart := xaInt + 1
	if leftFrac < 1 {
		emitIf(rasterfill.Span{Y: y, X1: xaInt, X2: xaInt + 1, Coverage: toByte(leftFrac * rowCov)}, width, emit)
	} else {
		fullStart = xaInt
	}

	fullEnd := xbInt
	if fullEnd > fullStart {
		emitIf(rasterfill.Span{Y: y, X1: fullStart, X2: fullEnd, Coverage: toByte(rowCov)}, width, emit)
	}

	rightFrac := x1 - float64(xbInt)
	if rightFrac > 0 && xbInt < width {
		emitIf(rasterfill.Span{Y: y, X1: xbInt, X2: xbInt + 1, Coverage: toByte(rightFrac * rowCov)}, width, emit)
	}
}

func emitIf(s rasterfill.Span, width int, emit func(rasterfill.Span)) {
	if s.X1 < 0 {
		s.X1 = 0
	}
	if s.X2 > width {
		s.X2 = width
	}
	if s.X1 >= s.X2 || s.Coverage == 0 {
		return
	}
	emit(s)
}

func verticalCoverage(rowTop, rowBottom, y0, y1 float64) float64 {
	top := math.Max(rowTop, y0)
	bottom := math.Min(rowBottom, y1)
	if bottom <= top {
		return 0
	}
	return bottom - top
}

func toByte(c float64) uint8 {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return uint8(c*255 + 0.5)
}

// StrokeRect emits the exact antialiased coverage of an axis-aligned
// rectangle stroke: outer minus inner, where outer/inner are the rect
// offset outward/inward by half the stroke width. Because inner is
// always contained in outer, the frame's area at any pixel is just the
// difference of each rectangle's own coverage there (both indicators
// are separable products of a Y-membership and an X-membership, so
// outer's indicator minus inner's indicator is exactly the frame's
// indicator) — this reuses the same row/column math as FillRect rather
// than approximating. A rectangle's corners are square, so this frame
// is also the correct shape for a miter join at 90 degrees: no separate
// corner geometry is needed.
func StrokeRect(outer, inner Rect, width, height int, emit func(rasterfill.Span)) {
	outer = clipRectToSurface(normalizeRect(outer), width, height)
	if outer.X0 >= outer.X1 || outer.Y0 >= outer.Y1 {
		return
	}
	// A stroke wider than the shape collapses the inner rect; treat
	// that as "no hole" (the whole outer rect is covered) rather than
	// normalizing an inverted inner rect into a bogus hole.
	hasInner := inner.X1 > inner.X0 && inner.Y1 > inner.Y0
	inner = normalizeRect(inner)

	row := make([]float64, width)
	yStart := int(math.Floor(outer.Y0))
	yEnd := int(math.Ceil(outer.Y1))
	for y := yStart; y < yEnd; y++ {
		for i := range row {
			row[i] = 0
		}
		rowTop, rowBottom := float64(y), float64(y+1)
		outerRowCov := verticalCoverage(rowTop, rowBottom, outer.Y0, outer.Y1)
		if outerRowCov <= 0 {
			continue
		}
		accumulateRectRow(row, outer.X0, outer.X1, outerRowCov)
		if hasInner {
			innerRowCov := verticalCoverage(rowTop, rowBottom, inner.Y0, inner.Y1)
			if innerRowCov > 0 {
				accumulateRectRow(row, inner.X0, inner.X1, -innerRowCov)
			}
		}
		emitFloatRow(row, y, emit)
	}
}

// accumulateRectRow adds weight times the fractional horizontal overlap
// of [xa,xb) into each pixel of row (weight may be negative, used by
// StrokeRect to subtract the inner rectangle's contribution).
func accumulateRectRow(row []float64, xa, xb, weight float64) {
	width := len(row)
	if xb <= xa {
		return
	}
	if xa < 0 {
		xa = 0
	}
	if xb > float64(width) {
		xb = float64(width)
	}
	if xa >= xb {
		return
	}
	xaInt := int(math.Floor(xa))
	xbInt := int(math.Floor(xb))
	if xaInt == xbInt {
		if xaInt >= 0 && xaInt < width {
			row[xaInt] += (xb - xa) * weight
		}
		return
	}
	if xaInt >= 0 && xaInt < width {
		row[xaInt] += (float64(xaInt+1) - xa) * weight
	}
	for x := xaInt + 1; x < xbInt; x++ {
		if x >= 0 && x < width {
			row[x] += weight
		}
	}
	if xbInt >= 0 && xbInt < width {
		row[xbInt] += (xb - float64(xbInt)) * weight
	}
}

// emitFloatRow converts a row of (possibly fractional, clamped)
// coverage values into merged byte-coverage spans.
func emitFloatRow(row []float64, y int, emit func(rasterfill.Span)) {
	width := len(row)
	x := 0
	for x < width {
		cov := toByte(row[x])
		if cov == 0 {
			x++
			continue
		}
		start := x
		x++
		for x < width && toByte(row[x]) == cov {
			x++
		}
		emit(rasterfill.Span{Y: y, X1: start, X2: x, Coverage: cov})
	}
}

// Line describes an axis-aligned stroked line segment in device space.
type Line struct {
	X0, Y0, X1, Y1 float64
	Width          float64
}

// FillLineAxisAligned emits exact antialiased coverage for a horizontal
// or vertical stroked line segment, reducing it to a single rectangle
// (butt/square cap) plus a circle at each endpoint (round cap). Reports
// ok=false when the segment is diagonal, so the caller falls back to
// the general stroke pipeline.
func FillLineAxisAligned(l Line, cap Cap, width, height int, emit func(rasterfill.Span)) bool {
	half := l.Width / 2
	if half <= 0 {
		return true
	}
	horizontal := l.Y0 == l.Y1
	vertical := l.X0 == l.X1
	if !horizontal && !vertical {
		return false
	}
	if horizontal && vertical {
		// Zero-length segment: only a round cap draws anything (a dot).
		if cap == CapRound {
			FillCircle(Circle{CX: l.X0, CY: l.Y0, RX: half, RY: half}, width, height, emit)
		}
		return true
	}

	var r Rect
	if horizontal {
		x0, x1 := l.X0, l.X1
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		if cap == CapSquare {
			x0 -= half
			x1 += half
		}
		r = Rect{X0: x0, Y0: l.Y0 - half, X1: x1, Y1: l.Y0 + half}
	} else {
		y0, y1 := l.Y0, l.Y1
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		if cap == CapSquare {
			y0 -= half
			y1 += half
		}
		r = Rect{X0: l.X0 - half, Y0: y0, X1: l.X0 + half, Y1: y1}
	}
	FillRect(r, width, height, emit)
	if cap == CapRound {
		FillCircle(Circle{CX: l.X0, CY: l.Y0, RX: half, RY: half}, width, height, emit)
		FillCircle(Circle{CX: l.X1, CY: l.Y1, RX: half, RY: half}, width, height, emit)
	}
	return true
}

// Circle describes a circle (or, with RX != RY, an axis-aligned
// ellipse) in device space.
type Circle struct {
	CX, CY, RX, RY float64
}

// FillCircle emits analytic antialiased coverage using a signed-
// distance approximation: coverage = clamp(0.5 - signedDistance, 0, 1)
// where signedDistance is the normalized elliptical distance from the
// boundary, giving a ~1px antialiased edge independent of radius.
func FillCircle(c Circle, width, height int, emit func(rasterfill.Span)) {
	if c.RX <= 0 || c.RY <= 0 {
		return
	}
	yStart := int(math.Floor(c.CY - c.RY - 1))
	yEnd := int(math.Ceil(c.CY + c.RY + 1))
	if yStart < 0 {
		yStart = 0
	}
	if yEnd > height {
		yEnd = height
	}

	for y := yStart; y < yEnd; y++ {
		fy := float64(y) + 0.5
		x := 0
		for x < width {
			cov := circleCoverage(c, float64(x)+0.5, fy)
			if cov == 0 {
				x++
				continue
			}
			start := x
			x++
			for x < width && circleCoverage(c, float64(x)+0.5, fy) == cov {
				x++
			}
			emit(rasterfill.Span{Y: y, X1: start, X2: x, Coverage: cov})
		}
	}
}

func circleCoverage(c Circle, px, py float64) uint8 {
	d := ellipseSignedDistance(c, px, py)
	return bandCoverage(d, 0.5)
}

// ellipseSignedDistance approximates the signed distance (in device
// pixels, positive outside) from (px,py) to the boundary of c. Exact
// for circles (RX==RY); a reasonable approximation for ellipses, using
// the average radius as the pixel-to-unit scale.
func ellipseSignedDistance(c Circle, px, py float64) float64 {
	dx := (px - c.CX) / c.RX
	dy := (py - c.CY) / c.RY
	unitDist := math.Hypot(dx, dy)
	avgR := (c.RX + c.RY) / 2
	return (unitDist - 1) * avgR
}

// bandCoverage turns a signed distance from a boundary (positive
// outside) into antialiased coverage of a band of half-width half
// centered on that boundary (half=0.5 degenerates to a plain filled-
// edge AA ramp, matching circleCoverage's prior behavior).
func bandCoverage(signedDist, half float64) uint8 {
	cov := half - signedDist
	if cov <= 0 {
		return 0
	}
	if cov >= 1 {
		return 255
	}
	return uint8(cov*255 + 0.5)
}

// StrokeCircle emits analytic antialiased coverage for the annulus of a
// circle/ellipse stroke: the band of points within lineWidth/2 of the
// boundary, rather than the filled disc FillCircle produces.
func StrokeCircle(c Circle, lineWidth float64, width, height int, emit func(rasterfill.Span)) {
	half := lineWidth / 2
	if c.RX <= 0 || c.RY <= 0 || half <= 0 {
		return
	}
	outerR := math.Max(c.RX, c.RY) + half + 1
	yStart := int(math.Floor(c.CY - outerR))
	yEnd := int(math.Ceil(c.CY + outerR))
	if yStart < 0 {
		yStart = 0
	}
	if yEnd > height {
		yEnd = height
	}

	for y := yStart; y < yEnd; y++ {
		fy := float64(y) + 0.5
		x := 0
		for x < width {
			d := ellipseSignedDistance(c, float64(x)+0.5, fy)
			cov := bandCoverage(math.Abs(d), half+0.5)
			if cov == 0 {
				x++
				continue
			}
			start := x
			x++
			for x < width {
				d2 := ellipseSignedDistance(c, float64(x)+0.5, fy)
				cov2 := bandCoverage(math.Abs(d2), half+0.5)
				if cov2 != cov {
					break
				}
				x++
			}
			emit(rasterfill.Span{Y: y, X1: start, X2: x, Coverage: cov})
		}
	}
}

// Arc describes a circular arc stroke in device space, swept
// counter-clockwise-normalized from StartAngle to EndAngle (radians,
// EndAngle >= StartAngle) the same way Path.Arc normalizes angles.
type Arc struct {
	CX, CY, R            float64
	StartAngle, EndAngle float64
}

// StrokeArc emits analytic antialiased coverage for a circular arc
// stroke: the same radial annulus test as StrokeCircle, additionally
// masked to the angular span [StartAngle,EndAngle]. The angular edges
// at the two ends of the arc are not antialiased (a documented
// simplification: only the radial edges get sub-pixel coverage), which
// matches the precision the general stroke pipeline's flattened-polygon
// rasterization gives those edges in practice.
func StrokeArc(a Arc, lineWidth float64, width, height int, emit func(rasterfill.Span)) {
	half := lineWidth / 2
	if a.R <= 0 || half <= 0 || a.EndAngle <= a.StartAngle {
		return
	}
	outerR := a.R + half + 1
	yStart := int(math.Floor(a.CY - outerR))
	yEnd := int(math.Ceil(a.CY + outerR))
	if yStart < 0 {
		yStart = 0
	}
	if yEnd > height {
		yEnd = height
	}
	full := a.EndAngle-a.StartAngle >= 2*math.Pi-1e-9

	for y := yStart; y < yEnd; y++ {
		fy := float64(y) + 0.5
		x := 0
		for x < width {
			cov := arcCoverage(a, half, float64(x)+0.5, fy, full)
			if cov == 0 {
				x++
				continue
			}
			start := x
			x++
			for x < width && arcCoverage(a, half, float64(x)+0.5, fy, full) == cov {
				x++
			}
			emit(rasterfill.Span{Y: y, X1: start, X2: x, Coverage: cov})
		}
	}
}

func arcCoverage(a Arc, half, px, py float64, full bool) uint8 {
	dx, dy := px-a.CX, py-a.CY
	dist := math.Hypot(dx, dy) - a.R
	cov := bandCoverage(math.Abs(dist), half+0.5)
	if cov == 0 || full {
		return cov
	}
	ang := math.Atan2(dy, dx)
	for ang < a.StartAngle {
		ang += 2 * math.Pi
	}
	if ang > a.EndAngle {
		ang -= 2 * math.Pi
	}
	if ang < a.StartAngle || ang > a.EndAngle {
		return 0
	}
	return cov
}

// RoundedRect describes an axis-aligned rounded rectangle in device
// space.
type RoundedRect struct {
	X0, Y0, X1, Y1, Radius float64
}

// roundedRectSDF is the signed distance (positive outside, negative
// inside) from (px,py) to the boundary of r, using the standard
// rounded-box signed distance field: inset the rectangle by Radius on
// each axis, measure distance to that inset core, then subtract Radius
// back out. The same function serves both FillRoundedRect and
// StrokeRoundedRect, giving RoundedRectOps its combined fill+stroke
// path: fill thresholds at d<0, stroke thresholds at |d| < lineWidth/2.
func roundedRectSDF(r RoundedRect, px, py float64) float64 {
	cx := (r.X0 + r.X1) / 2
	cy := (r.Y0 + r.Y1) / 2
	halfW := (r.X1 - r.X0) / 2
	halfH := (r.Y1 - r.Y0) / 2
	radius := r.Radius
	if radius > halfW {
		radius = halfW
	}
	if radius > halfH {
		radius = halfH
	}
	qx := math.Abs(px-cx) - (halfW - radius)
	qy := math.Abs(py-cy) - (halfH - radius)
	outsideX := math.Max(qx, 0)
	outsideY := math.Max(qy, 0)
	return math.Hypot(outsideX, outsideY) + math.Min(math.Max(qx, qy), 0) - radius
}

// FillRoundedRect emits antialiased coverage for a filled rounded
// rectangle via roundedRectSDF.
func FillRoundedRect(r RoundedRect, width, height int, emit func(rasterfill.Span)) {
	if r.X1 <= r.X0 || r.Y1 <= r.Y0 || r.Radius < 0 {
		return
	}
	yStart := int(math.Floor(r.Y0 - 1))
	yEnd := int(math.Ceil(r.Y1 + 1))
	if yStart < 0 {
		yStart = 0
	}
	if yEnd > height {
		yEnd = height
	}
	for y := yStart; y < yEnd; y++ {
		fy := float64(y) + 0.5
		x := 0
		for x < width {
			cov := bandCoverage(roundedRectSDF(r, float64(x)+0.5, fy), 0.5)
			if cov == 0 {
				x++
				continue
			}
			start := x
			x++
			for x < width && bandCoverage(roundedRectSDF(r, float64(x)+0.5, fy), 0.5) == cov {
				x++
			}
			emit(rasterfill.Span{Y: y, X1: start, X2: x, Coverage: cov})
		}
	}
}

// StrokeRoundedRect emits antialiased coverage for the frame of a
// rounded-rectangle stroke, reusing roundedRectSDF's distance field but
// thresholding the band around the boundary instead of its interior.
func StrokeRoundedRect(r RoundedRect, lineWidth float64, width, height int, emit func(rasterfill.Span)) {
	half := lineWidth / 2
	if r.X1 <= r.X0 || r.Y1 <= r.Y0 || r.Radius < 0 || half <= 0 {
		return
	}
	pad := half + 1
	yStart := int(math.Floor(r.Y0 - pad))
	yEnd := int(math.Ceil(r.Y1 + pad))
	if yStart < 0 {
		yStart = 0
	}
	if yEnd > height {
		yEnd = height
	}
	for y := yStart; y < yEnd; y++ {
		fy := float64(y) + 0.5
		x := 0
		for x < width {
			cov := bandCoverage(math.Abs(roundedRectSDF(r, float64(x)+0.5, fy)), half+0.5)
			if cov == 0 {
				x++
				continue
			}
			start := x
			x++
			for x < width && bandCoverage(math.Abs(roundedRectSDF(r, float64(x)+0.5, fy)), half+0.5) == cov {
				x++
			}
			emit(rasterfill.Span{Y: y, X1: start, X2: x, Coverage: cov})
		}
	}
}
