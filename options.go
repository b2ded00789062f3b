package swcanvas

// ContextOption configures a Context2D during construction. Grounded on
// the teacher's functional-options ContextOption pattern, repurposed from
// GPU-renderer dependency injection to the much smaller set of knobs a
// pure CPU rasterizer needs.
//
// Example:
//
//	surf := swcanvas.NewSurface(800, 600)
//	ctx := swcanvas.NewContext2D(surf, swcanvas.WithFlattenTolerance(0.1))
type ContextOption func(*contextOptions)

type contextOptions struct {
	flattenTolerance float64
}

func defaultOptions() contextOptions {
	return contextOptions{
		flattenTolerance: 0.25,
	}
}

// WithFlattenTolerance overrides the default device-space curve
// flattening tolerance (0.25px). Smaller values flatten curves into more
// segments for a smoother result at the cost of more work per draw call.
func WithFlattenTolerance(px float64) ContextOption {
	return func(o *contextOptions) {
		if px > 0 {
			o.flattenTolerance = px
		}
	}
}
