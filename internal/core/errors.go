package core

import "errors"

var (
	// ErrInvalidDimensions is reported when a grid is requested with a zero
	// dimension. Callers receive the DefaultGrid alongside it.
	ErrInvalidDimensions = errors.New("core: invalid grid dimensions")

	// ErrMalformedMap is reported when decoded rows do not form a
	// non-empty rectangle.
	ErrMalformedMap = errors.New("core: malformed map")
)
