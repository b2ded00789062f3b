package swcanvas

import (
	"github.com/swcanvas/swcanvas/internal/clipmask"
	"github.com/swcanvas/swcanvas/internal/flatten"
	"github.com/swcanvas/swcanvas/internal/rasterfill"
)

// Clip intersects the active clip region with the current path,
// rasterized under rule. Grounded on the teacher's clip-stack push
// pattern, but backed by a 1-bit stencil (internal/clipmask) rather
// than a stack of region objects: the path is rasterized to AA
// coverage first (so the in/out boundary still falls at the geometric
// edge), then thresholded into the stencil bit for each pixel.
func (c *Context2D) Clip(rule FillRule) {
	w, h := c.surface.Width(), c.surface.Height()
	buf := make([]uint8, w*h)
	polys := flatten.Flatten(pathToFlattenCmds(c.path), c.opts.flattenTolerance)
	c.filler.Fill(polys, toRasterRule(rule), 0, h, func(s rasterfill.Span) {
		row := s.Y * w
		for x := s.X1; x < s.X2; x++ {
			buf[row+x] = s.Coverage
		}
	})
	newMask := clipmask.FromCoverage(w, h, buf)
	if c.state.clip == nil {
		c.state.clip = newMask
	} else {
		c.state.clip = c.state.clip.IntersectMask(newMask)
	}
}

// ClipRect is a convenience that clips to an axis-aligned (in user
// space) rectangle without disturbing the current path.
func (c *Context2D) ClipRect(x, y, w, h float64) {
	saved := c.path
	c.path = NewPath()
	c.Rect(x, y, w, h)
	c.Clip(FillRuleNonZero)
	c.path = saved
}

// ResetClip clears the active clip region, restoring full visibility.
func (c *Context2D) ResetClip() { c.state.clip = nil }

// IsClipped reports whether any clip region is currently active.
func (c *Context2D) IsClipped() bool { return c.state.clip.IsActive() }
