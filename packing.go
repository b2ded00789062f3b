package swcanvas

import "encoding/binary"

// packing.go centralizes every byte<->packed-word conversion for the
// surface pixel buffer in one place, per the design note that endianness
// handling must not be duplicated across SpanOps/primitive fast paths.
//
// A Surface's backing store is always four straight sRGB bytes per pixel
// in R,G,B,A order (matching the byte layout ImageData uses on the wire).
// The packed uint32 view reinterprets the same four bytes using the host's
// native byte order, so PackColor/UnpackColor below are the only place the
// mapping between "RGBA byte order" and "native uint32 word" is decided.

var nativeEndian = binary.NativeEndian

// PackColor packs four straight sRGB bytes into a native-endian uint32,
// such that writing the result through a []uint32 view of the same memory
// produces the identical byte sequence as writing the four bytes directly.
func PackColor(r, g, b, a uint8) uint32 {
	buf := [4]byte{r, g, b, a}
	return nativeEndian.Uint32(buf[:])
}

// UnpackColor is the inverse of PackColor.
func UnpackColor(w uint32) (r, g, b, a uint8) {
	var buf [4]byte
	nativeEndian.PutUint32(buf[:], w)
	return buf[0], buf[1], buf[2], buf[3]
}

// Pack packs a Color struct into a native-endian word.
func (c Color) Pack() uint32 {
	return PackColor(c.R, c.G, c.B, c.A)
}

// UnpackColorStruct is the struct-returning counterpart of UnpackColor.
func UnpackColorStruct(w uint32) Color {
	r, g, b, a := UnpackColor(w)
	return Color{R: r, G: g, B: b, A: a}
}
