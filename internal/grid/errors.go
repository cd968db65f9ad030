package grid

import "errors"

// Sentinel errors reported by grid operations.
var (
	// ErrOutOfBounds reports a cell access outside the grid dimensions.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")

	// ErrBadWindow reports a crop window that is inverted or reaches
	// outside the grid.
	ErrBadWindow = errors.New("grid: invalid crop window")

	// ErrNoFit reports a merge overlay that does not fit inside the
	// destination grid at the requested offset.
	ErrNoFit = errors.New("grid: overlay does not fit")
)
