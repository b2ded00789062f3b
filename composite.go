package swcanvas

import "github.com/swcanvas/swcanvas/internal/blend"

// CompositeOp selects how newly drawn pixels combine with what is already
// on the surface. Only the two operators the spec names are supported;
// anything else is an InvalidArgument at the Context2D API boundary.
type CompositeOp uint8

const (
	// CompositeSourceOver is the default: premultiplied-over blending
	// modulated by globalAlpha and shape coverage.
	CompositeSourceOver CompositeOp = iota
	// CompositeCopy replaces the destination verbatim, including alpha,
	// wherever the source has coverage.
	CompositeCopy
)

func toBlendOp(op CompositeOp) blend.Op {
	if op == CompositeCopy {
		return blend.Copy
	}
	return blend.SourceOver
}

// ParseCompositeOp maps the two supported CSS Canvas globalCompositeOperation
// strings onto CompositeOp. Any other string is rejected by the caller with
// ErrInvalidEnum.
func ParseCompositeOp(name string) (CompositeOp, bool) {
	switch name {
	case "source-over":
		return CompositeSourceOver, true
	case "copy":
		return CompositeCopy, true
	default:
		return 0, false
	}
}
