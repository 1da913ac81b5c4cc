// Package heightmap reads hill-climbing puzzle maps into a gridgraph.GridGraph.
//
// Format:
//
//   - One row per line; every row has the same length.
//   - 'a'…'z' encode elevations 0…25.
//   - Exactly one 'S' (start, elevation of 'a') and one 'E' (end, elevation of 'z').
//   - Trailing carriage returns and trailing blank lines are ignored.
//
// Errors:
//
//   - ErrBadCell:        a character outside 'a'…'z', 'S', 'E'.
//   - ErrMissingStart / ErrMissingEnd:     no 'S' / 'E' found.
//   - ErrDuplicateStart / ErrDuplicateEnd: more than one 'S' / 'E'.
//   - gridgraph.ErrEmptyGrid, gridgraph.ErrNonRectangular for the grid shape.
package heightmap
