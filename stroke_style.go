package swcanvas

// StrokeProperties encapsulates all stroke-related style properties,
// grounded on the teacher's stroke.go unified Stroke struct (itself
// following the tiny-skia/kurbo convention of bundling width/cap/join/
// miter/dash together rather than passing them as separate arguments).
type StrokeProperties struct {
	// Width is the line width in user-space units. Must be >= 0.
	Width float64

	// Cap is the shape of line endpoints.
	Cap LineCap

	// Join is the shape of line joins.
	Join LineJoin

	// MiterLimit bounds how far a miter join may extend before it is
	// converted to a bevel. Must be > 0.
	MiterLimit float64

	// Dash is the dash pattern applied along the stroke. nil means solid.
	Dash *Dash
}

// DefaultStrokeProperties returns the Canvas2D default: a solid 1-unit
// line with butt caps, miter joins, and miterLimit 10 (the HTML5 Canvas
// default, not the teacher's SVG-style 4.0 default).
func DefaultStrokeProperties() StrokeProperties {
	return StrokeProperties{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 10.0,
	}
}

// WithWidth returns a copy with the given width.
func (s StrokeProperties) WithWidth(w float64) StrokeProperties {
	s.Width = w
	return s
}

// WithCap returns a copy with the given line cap.
func (s StrokeProperties) WithCap(c LineCap) StrokeProperties {
	s.Cap = c
	return s
}

// WithJoin returns a copy with the given line join.
func (s StrokeProperties) WithJoin(j LineJoin) StrokeProperties {
	s.Join = j
	return s
}

// WithMiterLimit returns a copy with the given miter limit.
func (s StrokeProperties) WithMiterLimit(limit float64) StrokeProperties {
	s.MiterLimit = limit
	return s
}

// WithDash returns a copy with the given dash pattern. Pass nil to clear
// dashing.
func (s StrokeProperties) WithDash(dash *Dash) StrokeProperties {
	if dash == nil {
		s.Dash = nil
	} else {
		s.Dash = dash.Clone()
	}
	return s
}

// IsDashed reports whether this stroke has an active dash pattern.
func (s StrokeProperties) IsDashed() bool {
	return s.Dash != nil && s.Dash.IsDashed()
}

// Clone returns a deep copy, including the Dash pointer field.
func (s StrokeProperties) Clone() StrokeProperties {
	result := s
	if s.Dash != nil {
		result.Dash = s.Dash.Clone()
	}
	return result
}
