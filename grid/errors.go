package grid

import "errors"

// Sentinel errors for grid operations. Callers branch with errors.Is; the
// package wraps them with %w to attach coordinates and sizes.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: must have at least one row and one column")

	// ErrNonRectangular indicates parsed rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrBadGlyph indicates a parsed row holds a rune other than '-', '.' or 'x'.
	ErrBadGlyph = errors.New("grid: unknown cell glyph")

	// ErrInvalidPercent indicates a wall percentage outside [0,100].
	ErrInvalidPercent = errors.New("grid: wall percent out of range")

	// ErrOutOfBounds indicates a coordinate or index outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrNoPath indicates the destination cannot be reached from the start.
	// The grid is left in a valid state: Visited shows the explored area and
	// no cell was marked OnPath by the failed search.
	ErrNoPath = errors.New("grid: no path between start and destination")

	// ErrBrokenChain indicates the predecessor links of a finished search do
	// not lead back to the start. It signals an internal inconsistency, not a
	// search outcome.
	ErrBrokenChain = errors.New("grid: broken predecessor chain")
)
