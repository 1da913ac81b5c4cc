// Package gridgraph treats a rectangular elevation map as an implicit graph,
// so that path searches can walk it without materialising an adjacency list.
//
// What:
//
//   - GridGraph wraps a rectangular grid of integer elevations.
//   - Cells are identified by their row-major index y*Width + x.
//   - Neighbors yields the up-to-four orthogonal neighbours (N, E, S, W) of a cell.
//   - StepRule decides whether a move between two adjacent cells is allowed:
//     Ascend permits climbing at most one level (any descent is fine),
//     Descend is its mirror image, used when walking a route backwards.
//   - Levels runs a unit-cost BFS under a StepRule.
//
// Why:
//
//   - Hill-climbing route planning: shortest walks where each step may rise by
//     at most one level.
//   - Reverse searches: from a summit, find the nearest valley cell.
//
// Complexity:
//
//   - NewGridGraph: O(W×H) time and memory.
//   - Neighbors, CanStep, Traversable, Index, Coordinate: O(1).
//   - Levels, Cells: O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrGridTooLarge: the cell count does not fit a uint32 cell id.
//   - ErrNodeOutOfRange: a cell id outside [0, W×H) was supplied.
package gridgraph
