package swcanvas

import "math"

// Matrix is a 2D affine transformation using the canvas column-vector
// convention:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// This matches the HTML5 Canvas 2D `setTransform(a, b, c, d, e, f)` argument
// order and composition order.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: 1, E: 0, F: 0}
}

// Translate returns a pure translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: 1, E: x, F: y}
}

// Scale returns a pure scaling matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, B: 0, C: 0, D: sy, E: 0, F: 0}
}

// Rotate returns a rotation matrix for angle radians (clockwise in a
// y-down device space, matching Canvas2D rotate()).
func Rotate(angle float64) Matrix {
	sin, cos := math.Sin(angle), math.Cos(angle)
	return Matrix{A: cos, B: sin, C: -sin, D: cos, E: 0, F: 0}
}

// Shear returns a skew matrix with the given x and y shear factors.
func Shear(sx, sy float64) Matrix {
	return Matrix{A: 1, B: sy, C: sx, D: 1, E: 0, F: 0}
}

// Multiply returns m composed with other, such that applying the result to
// a point is equivalent to applying other first, then m:
// (m.Multiply(other)).TransformPoint(p) == m.TransformPoint(other.TransformPoint(p)).
//
// This matches the Canvas2D `ctx.transform(...)` semantics where the new
// matrix is post-multiplied onto the current one.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

// TransformPoint applies the transform to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// TransformVector applies the linear part of the transform only (ignores
// translation) — useful for transforming deltas and normals.
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y,
		Y: m.B*p.X + m.D*p.Y,
	}
}

// Determinant returns the determinant of the linear part of the matrix.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse transform. If the matrix is (numerically)
// singular, it returns the identity transform — a local recovery rather
// than surfacing an error, consistent with how degenerate transforms are
// handled elsewhere in the rasterizer.
func (m Matrix) Invert() Matrix {
	det := m.Determinant()
	if math.Abs(det) < 1e-12 {
		return Identity()
	}
	invDet := 1.0 / det
	return Matrix{
		A: m.D * invDet,
		B: -m.B * invDet,
		C: -m.C * invDet,
		D: m.A * invDet,
		E: (m.C*m.F - m.D*m.E) * invDet,
		F: (m.B*m.E - m.A*m.F) * invDet,
	}
}

// IsIdentity reports whether m is exactly the identity transform.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 && m.D == 1 && m.E == 0 && m.F == 0
}

// IsTranslation reports whether m has no rotation, scale, or shear.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 && m.D == 1
}

// IsTranslationOnly is an alias for IsTranslation kept for naming symmetry
// with IsScaleOnly; both must always agree.
func (m Matrix) IsTranslationOnly() bool {
	return m.IsTranslation()
}

// IsScaleOnly reports whether m is a (possibly non-uniform, possibly
// negative) axis-aligned scale plus translation, with no rotation or shear.
func (m Matrix) IsScaleOnly() bool {
	return m.B == 0 && m.C == 0
}

// IsAxisAligned reports whether m maps axis-aligned rectangles to
// axis-aligned rectangles without rotating their content — true for
// scale+translate (B and C both zero), false for any rotation or shear.
// Used by DrawImage to decide whether the image can be drawn with the
// direct scaler instead of per-pixel inverse mapping.
func (m Matrix) IsAxisAligned() bool {
	return m.B == 0 && m.C == 0
}

// IsUniformScale reports whether the linear part of m scales all
// directions by the same factor (rotation and uniform scale qualify;
// shear and non-uniform scale do not).
func (m Matrix) IsUniformScale() bool {
	// A uniform-scale-plus-rotation matrix satisfies A==D and B==-C
	// (up to floating point), since it can be written s*[[cos,sin],[-sin,cos]].
	const eps = 1e-9
	return math.Abs(m.A-m.D) < eps && math.Abs(m.B+m.C) < eps
}

// MaxScaleFactor returns the largest singular value of the linear part of
// m, i.e. the largest factor by which m can stretch a unit vector. Used to
// pick a device-space flattening tolerance that stays accurate under
// scale-up transforms.
func (m Matrix) MaxScaleFactor() float64 {
	p := m.A*m.A + m.B*m.B
	r := m.C*m.C + m.D*m.D
	q := m.A*m.C + m.B*m.D
	sum := p + r
	diff := p - r
	disc := math.Sqrt(diff*diff + 4*q*q)
	maxEig := (sum + disc) / 2
	if maxEig < 0 {
		maxEig = 0
	}
	return math.Sqrt(maxEig)
}
