// Package gridgraph defines core types and step rules
// for the gridgraph subpackage of github.com/katalvlaran/elevpath.
package gridgraph

// StepRule selects which moves between adjacent cells are admissible.
type StepRule int

const (
	// Ascend allows a step when the target is at most one level above the source.
	Ascend StepRule = iota
	// Descend allows a step when the source is at most one level above the target.
	// It is Ascend with the direction of travel reversed.
	Descend
)

// String returns the rule name.
func (r StepRule) String() string {
	switch r {
	case Ascend:
		return "ascend"
	case Descend:
		return "descend"
	default:
		return "unknown"
	}
}

// CanStep reports whether a step from a cell of elevation from to an adjacent
// cell of elevation to is allowed under rule.
func CanStep(from, to int, rule StepRule) bool {
	if rule == Descend {
		return from <= to+1
	}
	return to <= from+1
}

// GridGraph treats a 2D elevation grid as a graph. It is immutable once built.
// Width and Height define dimensions; elevations holds the cells row-major.
type GridGraph struct {
	Width, Height int
	elevations    []int
}

// neighborOffsets lists the orthogonal moves in N, E, S, W order.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
