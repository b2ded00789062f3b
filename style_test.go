package swcanvas

import "testing"

func TestParseLineCap(t *testing.T) {
	tests := []struct {
		in      string
		want    LineCap
		wantOk  bool
	}{
		{"butt", LineCapButt, true},
		{"round", LineCapRound, true},
		{"square", LineCapSquare, true},
		{"bogus", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLineCap(tt.in)
			if ok != tt.wantOk || (ok && got != tt.want) {
				t.Errorf("ParseLineCap(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestParseLineJoin(t *testing.T) {
	tests := []struct {
		in     string
		want   LineJoin
		wantOk bool
	}{
		{"miter", LineJoinMiter, true},
		{"round", LineJoinRound, true},
		{"bevel", LineJoinBevel, true},
		{"bogus", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLineJoin(tt.in)
			if ok != tt.wantOk || (ok && got != tt.want) {
				t.Errorf("ParseLineJoin(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestParseFillRule(t *testing.T) {
	tests := []struct {
		in     string
		want   FillRule
		wantOk bool
	}{
		{"nonzero", FillRuleNonZero, true},
		{"evenodd", FillRuleEvenOdd, true},
		{"bogus", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseFillRule(tt.in)
			if ok != tt.wantOk || (ok && got != tt.want) {
				t.Errorf("ParseFillRule(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}
