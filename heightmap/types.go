package heightmap

import (
	"errors"

	"github.com/katalvlaran/elevpath/gridgraph"
)

// Sentinel errors for map parsing.
var (
	// ErrBadCell indicates a character that is not an elevation marker.
	ErrBadCell = errors.New("heightmap: invalid cell character")
	// ErrMissingStart indicates the map has no 'S'.
	ErrMissingStart = errors.New("heightmap: start marker 'S' not found")
	// ErrMissingEnd indicates the map has no 'E'.
	ErrMissingEnd = errors.New("heightmap: end marker 'E' not found")
	// ErrDuplicateStart indicates the map has more than one 'S'.
	ErrDuplicateStart = errors.New("heightmap: more than one start marker 'S'")
	// ErrDuplicateEnd indicates the map has more than one 'E'.
	ErrDuplicateEnd = errors.New("heightmap: more than one end marker 'E'")
)

const (
	// Lowest is the elevation of 'a' and 'S'.
	Lowest = 0
	// Highest is the elevation of 'z' and 'E'.
	Highest = int('z' - 'a')
)

// Heightmap is a parsed map: the elevation grid plus start and end cell ids.
type Heightmap struct {
	Grid  *gridgraph.GridGraph
	Start int
	End   int
}

// Lowest returns the ids of all cells at elevation 'a', the start included.
func (m *Heightmap) Lowest() []int {
	return m.Grid.Cells(func(e int) bool { return e == Lowest })
}
