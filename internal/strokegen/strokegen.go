// Package strokegen expands a flattened polyline into the set of
// filled polygons that represent its stroked outline: one rectangle
// per segment, a join shape at each interior vertex, and cap geometry
// at open ends. Every polygon is wound consistently (counter-
// clockwise) so the downstream nonzero-winding fill never cancels
// overlapping segment/join geometry into a false hole.
//
// Grounded on the teacher's stroke expander: independent convex
// polygons per segment/join/cap, composited under a single fill
// rather than a single watertight outline polygon.
package strokegen

import "math"

type Point struct{ X, Y float64 }

// Cap is the end-of-line style for open subpaths.
type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Join is the corner style at interior vertices.
type Join int

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// Options configures stroke expansion. Width is the full stroke
// width (the generated outline extends Width/2 to either side of the
// centerline).
type Options struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// Polygon is one convex piece of the stroke outline.
type Polygon struct {
	Points []Point
}

const roundSegmentAngle = math.Pi / 8 // ~22.5 degrees per arc segment

// Generate expands a single polyline (already flattened, and already
// dash-segmented into one "on" run by the caller) into stroke fill
// polygons.
func Generate(points []Point, closed bool, opts Options) []Polygon {
	pts := dedupe(points)
	half := opts.Width / 2
	if half <= 0 {
		return nil
	}
	n := len(pts)
	if n < 2 {
		if n == 1 && (opts.Cap == CapRound) {
			return []Polygon{ensureCCW(circlePolygon(pts[0], half, 24))}
		}
		return nil
	}

	segCount := n - 1
	if closed {
		segCount = n
	}

	dir := make([]Point, segCount)
	normal := make([]Point, segCount)
	var out []Polygon

	for i := 0; i < segCount; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		dx, dy := b.X-a.X, b.Y-a.Y
		length := math.Hypot(dx, dy)
		if length < 1e-9 {
			dir[i] = Point{1, 0}
		} else {
			dir[i] = Point{dx / length, dy / length}
		}
		normal[i] = Point{-dir[i].Y, dir[i].X}
		out = append(out, ensureCCW(Polygon{Points: []Point{
			add(a, scale(normal[i], half)),
			add(b, scale(normal[i], half)),
			add(b, scale(normal[i], -half)),
			add(a, scale(normal[i], -half)),
		}}))
	}

	joinCount := segCount - 1
	if closed {
		joinCount = segCount
	}
	for i := 0; i < joinCount; i++ {
		j := (i + 1) % segCount
		vertex := pts[(i+1)%n]
		out = append(out, joinPolygons(vertex, normal[i], normal[j], half, opts)...)
	}

	if !closed {
		out = append(out, capPolygons(pts[0], negate(dir[0]), normal[0], half, opts.Cap)...)
		out = append(out, capPolygons(pts[n-1], dir[segCount-1], normal[segCount-1], half, opts.Cap)...)
	}

	return out
}

func joinPolygons(vertex, n0, n1 Point, half float64, opts Options) []Polygon {
	// Pick the outer side: the sign of the cross product of the two
	// normals (the same as that of the two segment directions) gives the
	// turn direction, and the corner opens on the side away from the
	// turn; the inner side is already covered by the overlapping segment
	// rectangles.
	sign := 1.0
	if n0.X*n1.Y-n0.Y*n1.X > 0 {
		sign = -1.0
	}

	on0 := scale(n0, sign)
	on1 := scale(n1, sign)
	corner0 := add(vertex, scale(on0, half))
	corner1 := add(vertex, scale(on1, half))

	if dist(corner0, corner1) < 1e-9 {
		return nil
	}

	switch opts.Join {
	case JoinRound:
		return []Polygon{ensureCCW(arcFan(vertex, corner0, corner1, half))}
	case JoinMiter:
		cosTheta := on0.X*on1.X + on0.Y*on1.Y
		cosHalf := math.Sqrt(math.Max(0, (1+cosTheta)/2))
		limit := opts.MiterLimit
		if limit <= 0 {
			limit = 10
		}
		if cosHalf > 1e-6 && 1/cosHalf <= limit {
			sum := add(on0, on1)
			sumLen := math.Hypot(sum.X, sum.Y)
			if sumLen > 1e-9 {
				miterDir := scale(sum, 1/sumLen)
				miterLen := half / cosHalf
				miterPoint := add(vertex, scale(miterDir, miterLen))
				return []Polygon{ensureCCW(Polygon{Points: []Point{vertex, corner0, miterPoint, corner1}})}
			}
		}
		// Miter limit exceeded or degenerate: fall back to bevel.
		return []Polygon{ensureCCW(Polygon{Points: []Point{vertex, corner0, corner1}})}
	default: // JoinBevel
		return []Polygon{ensureCCW(Polygon{Points: []Point{vertex, corner0, corner1}})}
	}
}

func capPolygons(end, outwardDir, normal Point, half float64, cap Cap) []Polygon {
	switch cap {
	case CapSquare:
		base0 := add(end, scale(normal, half))
		base1 := add(end, scale(normal, -half))
		tip0 := add(base0, scale(outwardDir, half))
		tip1 := add(base1, scale(outwardDir, half))
		return []Polygon{ensureCCW(Polygon{Points: []Point{base0, tip0, tip1, base1}})}
	case CapRound:
		p0 := add(end, scale(normal, half))
		p1 := add(end, scale(normal, -half))
		return []Polygon{ensureCCW(arcFanThrough(end, p0, p1, outwardDir, half))}
	default: // CapButt
		return nil
	}
}

// arcFan builds a fan polygon covering the arc from corner0 to
// corner1 around center, taking the short way around (used for
// round joins where the turn direction determines the arc side).
func arcFan(center, corner0, corner1 Point, radius float64) Polygon {
	a0 := math.Atan2(corner0.Y-center.Y, corner0.X-center.X)
	a1 := math.Atan2(corner1.Y-center.Y, corner1.X-center.X)
	delta := shortestAngleDelta(a0, a1)
	return Polygon{Points: fanPoints(center, a0, delta, radius)}
}

// arcFanThrough builds a semicircle fan from p0 to p1 around center,
// bulging toward outwardDir (used for round caps, which always sweep
// the half outside the line, not whichever side is shorter).
func arcFanThrough(center, p0, p1, outwardDir Point, radius float64) Polygon {
	a0 := math.Atan2(p0.Y-center.Y, p0.X-center.X)
	a1 := math.Atan2(p1.Y-center.Y, p1.X-center.X)
	delta := shortestAngleDelta(a0, a1)
	// Verify the midpoint of the sweep lies on the outward side; if
	// not, sweep the other way around (the complementary arc).
	mid := a0 + delta/2
	midPt := Point{math.Cos(mid), math.Sin(mid)}
	if midPt.X*outwardDir.X+midPt.Y*outwardDir.Y < 0 {
		if delta > 0 {
			delta -= 2 * math.Pi
		} else {
			delta += 2 * math.Pi
		}
	}
	return Polygon{Points: fanPoints(center, a0, delta, radius)}
}

func fanPoints(center Point, a0, delta, radius float64) []Point {
	steps := int(math.Ceil(math.Abs(delta) / roundSegmentAngle))
	if steps < 1 {
		steps = 1
	}
	pts := make([]Point, 0, steps+2)
	pts = append(pts, center)
	for i := 0; i <= steps; i++ {
		a := a0 + delta*float64(i)/float64(steps)
		pts = append(pts, Point{center.X + radius*math.Cos(a), center.Y + radius*math.Sin(a)})
	}
	return pts
}

func shortestAngleDelta(a0, a1 float64) float64 {
	d := math.Mod(a1-a0+math.Pi, 2*math.Pi) - math.Pi
	if d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

func circlePolygon(center Point, radius float64, steps int) Polygon {
	pts := make([]Point, steps)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		pts[i] = Point{center.X + radius*math.Cos(a), center.Y + radius*math.Sin(a)}
	}
	return Polygon{Points: pts}
}

func dedupe(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}
	out := make([]Point, 0, len(points))
	out = append(out, points[0])
	for _, p := range points[1:] {
		last := out[len(out)-1]
		if math.Hypot(p.X-last.X, p.Y-last.Y) > 1e-9 {
			out = append(out, p)
		}
	}
	return out
}

func ensureCCW(p Polygon) Polygon {
	area := 0.0
	n := len(p.Points)
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	if area < 0 {
		reversed := make([]Point, n)
		for i, pt := range p.Points {
			reversed[n-1-i] = pt
		}
		return Polygon{Points: reversed}
	}
	return p
}

func add(a, b Point) Point      { return Point{a.X + b.X, a.Y + b.Y} }
func negate(a Point) Point      { return Point{-a.X, -a.Y} }
func scale(a Point, s float64) Point { return Point{a.X * s, a.Y * s} }
func dist(a, b Point) float64   { return math.Hypot(a.X-b.X, a.Y-b.Y) }
