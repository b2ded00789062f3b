package swcanvas

// LineCap specifies the shape of stroked line endpoints. Grounded on the
// teacher's paint.go enum of the same name.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin specifies the shape used to join two stroked segments.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// FillRule selects how self-intersecting or nested subpaths determine
// "inside".
type FillRule int

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// ParseLineCap maps a CSS Canvas lineCap string onto LineCap.
func ParseLineCap(s string) (LineCap, bool) {
	switch s {
	case "butt":
		return LineCapButt, true
	case "round":
		return LineCapRound, true
	case "square":
		return LineCapSquare, true
	default:
		return 0, false
	}
}

// ParseLineJoin maps a CSS Canvas lineJoin string onto LineJoin.
func ParseLineJoin(s string) (LineJoin, bool) {
	switch s {
	case "miter":
		return LineJoinMiter, true
	case "round":
		return LineJoinRound, true
	case "bevel":
		return LineJoinBevel, true
	default:
		return 0, false
	}
}

// ParseFillRule maps a CSS Canvas fill-rule string onto FillRule.
func ParseFillRule(s string) (FillRule, bool) {
	switch s {
	case "nonzero":
		return FillRuleNonZero, true
	case "evenodd":
		return FillRuleEvenOdd, true
	default:
		return 0, false
	}
}
