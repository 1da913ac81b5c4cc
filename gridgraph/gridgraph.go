package gridgraph

import (
	"iter"
	"math"

	"github.com/samber/lo"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// of elevations indexed values[y][x]. The input is copied.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrGridTooLarge if W×H exceeds math.MaxUint32.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if uint64(w)*uint64(h) > math.MaxUint32 {
		return nil, ErrGridTooLarge
	}

	// Flatten row-major so a cell id indexes the slice directly
	cells := make([]int, 0, w*h)
	for _, row := range values {
		cells = append(cells, row...)
	}

	return &GridGraph{Width: w, Height: h, elevations: cells}, nil
}

// Len returns the number of cells, W×H.
func (gg *GridGraph) Len() int {
	return len(gg.elevations)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Contains reports whether id is a valid cell id.
func (gg *GridGraph) Contains(id int) bool {
	return id >= 0 && id < len(gg.elevations)
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(id int) (x, y int) {
	return id % gg.Width, id / gg.Width
}

// Elevation returns the elevation of cell id.
func (gg *GridGraph) Elevation(id int) int {
	return gg.elevations[id]
}

// Neighbors yields the in-bounds orthogonal neighbours of id in N, E, S, W order.
// Nothing is allocated; callers that stop early simply break out of the loop.
func (gg *GridGraph) Neighbors(id int) iter.Seq[int] {
	return func(yield func(int) bool) {
		x, y := gg.Coordinate(id)
		for _, d := range neighborOffsets {
			nx, ny := x+d[0], y+d[1]
			if !gg.InBounds(nx, ny) {
				continue
			}
			if !yield(gg.Index(nx, ny)) {
				return
			}
		}
	}
}

// Traversable reports whether the directed step u→v between adjacent cells is
// allowed under rule.
func (gg *GridGraph) Traversable(u, v int, rule StepRule) bool {
	return CanStep(gg.elevations[u], gg.elevations[v], rule)
}

// Cells returns, in ascending order, the ids of all cells whose elevation
// satisfies match.
// Complexity: O(W×H).
func (gg *GridGraph) Cells(match func(elevation int) bool) []int {
	return lo.Filter(lo.Range(len(gg.elevations)), func(id int, _ int) bool {
		return match(gg.elevations[id])
	})
}
