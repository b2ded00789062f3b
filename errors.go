package swcanvas

import "errors"

// Sentinel errors, grounded on the teacher's backend/native/errors.go and
// text/errors.go package-level errors.New convention: callers compare
// against these with errors.Is rather than matching on a custom error
// type per failure mode.
var (
	// ErrInvalidDimensions is returned by NewImageData and GetImageData
	// for non-positive width or height. NewSurface and CreateCanvas do
	// not validate their sizes and return no error.
	ErrInvalidDimensions = errors.New("swcanvas: width and height must be > 0")

	// ErrNonFiniteValue describes a numeric argument that is NaN or
	// +/-Inf. No function in the package currently returns it: path and
	// draw methods do not check their coordinates for NaN or Inf.
	ErrNonFiniteValue = errors.New("swcanvas: non-finite value")

	// ErrInvalidLineWidth is returned by SetLineWidth for a negative width.
	ErrInvalidLineWidth = errors.New("swcanvas: line width must be >= 0")

	// ErrInvalidMiterLimit is returned by SetMiterLimit for a non-positive limit.
	ErrInvalidMiterLimit = errors.New("swcanvas: miter limit must be > 0")

	// ErrInvalidEnum is returned when a string enum argument (line cap,
	// line join, fill rule, composite operation) is not recognized.
	ErrInvalidEnum = errors.New("swcanvas: invalid enum value")

	// ErrSurfaceClosed is returned by any draw operation on a Context2D
	// whose Surface has already been closed/consumed.
	ErrSurfaceClosed = errors.New("swcanvas: surface is closed")
)
