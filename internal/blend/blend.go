// Package blend implements the two compositing operators the spec
// requires — source-over and copy — as premultiplied-byte math, grounded
// on the teacher's internal/blend/porter_duff.go Porter-Duff
// implementation (mulDiv255/addDiv255 rounding helpers and the
// blendSourceOver/blendSource formulas). Every other Porter-Duff operator
// and separable/non-separable blend mode the teacher implements is
// dropped: the spec names only source-over and copy as in-scope
// CompositeOps.
package blend

// Op selects a compositing operator.
type Op uint8

const (
	// SourceOver composites source over destination: S + D*(1-Sa).
	SourceOver Op = iota
	// Copy replaces the destination verbatim, including alpha.
	Copy
)

// MulDiv255 multiplies two byte values and divides by 255 with correct
// rounding: (a*b + 127) / 255.
func MulDiv255(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}

// AddDiv255 adds two byte values, clamping to 255.
func AddDiv255(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// Premultiply converts a straight color channel to premultiplied given
// alpha a.
func Premultiply(straight, a uint8) uint8 {
	return MulDiv255(straight, a)
}

// Unpremultiply converts a premultiplied channel back to straight given
// alpha a. Returns 0 when a is 0 (fully transparent, channel undefined).
func Unpremultiply(premul, a uint8) uint8 {
	if a == 0 {
		return 0
	}
	v := (uint32(premul)*255 + uint32(a)/2) / uint32(a)
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// Composite blends a straight-alpha source color with coverage (0-255,
// additional modulation applied on top of the source's own alpha, e.g.
// AA edge coverage or globalAlpha) over a straight-alpha destination
// color, using op. Both src and dst are straight (non-premultiplied); the
// result is returned straight as well, matching the surface's storage
// format.
func Composite(op Op, sr, sg, sb, sa uint8, coverage uint8, dr, dg, db, da uint8) (r, g, b, a uint8) {
	effA := MulDiv255(sa, coverage)

	if op == Copy {
		// "copy" replaces the destination verbatim, including alpha —
		// coverage still modulates how much of the destination is
		// replaced outside the covered shape, so partial coverage still
		// blends, it simply doesn't preserve destination alpha in the
		// way source-over does.
		if coverage == 255 {
			return sr, sg, sb, sa
		}
		return lerpByte(dr, sr, coverage), lerpByte(dg, sg, coverage), lerpByte(db, sb, coverage), lerpByte(da, sa, coverage)
	}

	if effA == 0 {
		return dr, dg, db, da
	}
	if effA == 255 {
		return sr, sg, sb, 255
	}

	spr := MulDiv255(sr, effA)
	spg := MulDiv255(sg, effA)
	spb := MulDiv255(sb, effA)
	dpr := MulDiv255(dr, da)
	dpg := MulDiv255(dg, da)
	dpb := MulDiv255(db, da)

	invSa := 255 - effA
	outA := AddDiv255(effA, MulDiv255(da, invSa))
	outPR := AddDiv255(spr, MulDiv255(dpr, invSa))
	outPG := AddDiv255(spg, MulDiv255(dpg, invSa))
	outPB := AddDiv255(spb, MulDiv255(dpb, invSa))

	if outA == 0 {
		return 0, 0, 0, 0
	}
	return Unpremultiply(outPR, outA), Unpremultiply(outPG, outA), Unpremultiply(outPB, outA), outA
}

func lerpByte(from, to, t uint8) uint8 {
	return AddDiv255(MulDiv255(from, 255-t), MulDiv255(to, t))
}
