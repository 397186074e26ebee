package graphics

import "errors"

// Sentinel errors for the graphics package.
var (
	// ErrDegenerateRange is returned when a value has to be scaled out of a
	// range whose minimum equals its maximum.
	ErrDegenerateRange = errors.New("graphics: degenerate range (min == max)")

	// ErrSurfaceClosed is returned by surface operations after Close.
	ErrSurfaceClosed = errors.New("graphics: surface is closed")

	// ErrUnsupportedFormat is returned for pixel formats the raster backend
	// cannot represent.
	ErrUnsupportedFormat = errors.New("graphics: unsupported pixel format")

	// ErrInvalidSize is returned when a surface is created with a
	// non-positive width or height.
	ErrInvalidSize = errors.New("graphics: invalid surface size")

	// ErrUnknownFormat is returned by Open for names missing from the registry.
	ErrUnknownFormat = errors.New("graphics: unknown surface format")

	// ErrNilShape is returned when a nil shape is passed to a surface.
	ErrNilShape = errors.New("graphics: nil shape")

	// ErrInvalidShape is returned for shapes with NaN or infinite
	// coordinates, radius or angles.
	ErrInvalidShape = errors.New("graphics: invalid shape")

	// ErrNilFontFace is returned by Print for a font without a face.
	ErrNilFontFace = errors.New("graphics: font has no face")
)
