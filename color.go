package swcanvas

import "math"

// Color is a straight (non-premultiplied) sRGB color, four bytes per
// channel. This is the canonical in-memory representation used by the
// rasterizer core; premultiplication happens only at blend time, in
// internal/blend.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color from float components in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{R: toByte(r), G: toByte(g), B: toByte(b), A: 255}
}

// RGBA2 returns a color from float components in [0, 1].
func RGBA2(r, g, b, a float64) Color {
	return Color{R: toByte(r), G: toByte(g), B: toByte(b), A: toByte(a)}
}

// RGBAByte constructs a color directly from bytes.
func RGBAByte(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Hex parses a CSS-style hex color string ("#RGB", "#RGBA", "#RRGGBB",
// "#RRGGBBAA"). This is convenience sugar layered on top of the numeric
// core — it is never called from the rasterization hot path, only at
// style-setting time.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Color{A: 255}
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// Lerp linearly interpolates between two colors in straight-alpha byte
// space; t=0 returns c, t=1 returns other.
func (c Color) Lerp(other Color, t float64) Color {
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return Color{
		R: lerp(c.R, other.R),
		G: lerp(c.G, other.G),
		B: lerp(c.B, other.B),
		A: lerp(c.A, other.A),
	}
}

// Common named colors, grounded on the teacher's color palette var block.
var (
	Black       = Color{A: 255}
	White       = Color{R: 255, G: 255, B: 255, A: 255}
	Red         = Color{R: 255, A: 255}
	Green       = Color{G: 255, A: 255}
	Blue        = Color{B: 255, A: 255}
	Yellow      = Color{R: 255, G: 255, A: 255}
	Cyan        = Color{G: 255, B: 255, A: 255}
	Magenta     = Color{R: 255, B: 255, A: 255}
	Transparent = Color{}
)

// HSL constructs an opaque color from hue [0,360), saturation [0,1], and
// lightness [0,1].
func HSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB(r+m, g+m, b+m)
}
