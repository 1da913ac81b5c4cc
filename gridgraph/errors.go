package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrGridTooLarge indicates the grid has more cells than a uint32 can address.
	ErrGridTooLarge = errors.New("gridgraph: grid has too many cells")
	// ErrNodeOutOfRange indicates a cell id outside the grid.
	ErrNodeOutOfRange = errors.New("gridgraph: cell id out of range")
)
