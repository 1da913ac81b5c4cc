// Package dijkstra finds shortest hill-climbing routes on a gridgraph.GridGraph
// using Dijkstra's algorithm with a true decrease-key priority queue.
//
// Overview:
//
//   - Every step between adjacent cells costs 1; whether a step is allowed is
//     decided by a gridgraph.StepRule.
//   - Tentative distances live in a per-search array; the frontier lives in an
//     iheap.Heap keyed by distance, so a shorter route to a queued cell lowers
//     its entry in place instead of pushing a duplicate.
//   - Searches stop lazily: as soon as the answer is known, the remaining
//     frontier is discarded.
//
// Entry points:
//
//	func ShortestDistance(g *gridgraph.GridGraph, start, end int, opts ...Option) (Result, error)
//
//	  - Walks from start under gridgraph.Ascend (by default) and stops the
//	    first time end is popped: with non-negative weights that pop carries
//	    the final shortest distance.
//
//	func MinDistanceToAny(g *gridgraph.GridGraph, end int, candidates []int, opts ...Option) (Result, error)
//
//	  - Walks backwards from end under gridgraph.Descend (by default). Every
//	    popped candidate is crossed off a private copy of the candidate set and
//	    its distance folded into a running minimum; the search stops once the
//	    set is empty or the frontier runs dry.
//
// Result:
//
//   - Distance is Unreached (math.MaxInt64) when no admissible route exists.
//     This is a normal outcome, not an error; check Result.Reached().
//   - State is one of Initialized, Running, Found, Exhausted and records how
//     the search ended.
//   - Path holds the route in walk order when WithReturnPath() is set.
//
// Options:
//
//   - WithRule(gridgraph.StepRule):  override the default step rule.
//   - WithReturnPath():              record predecessors and return Result.Path.
//   - WithMaxDistance(int64):        never settle cells farther than this.
//   - WithLogger(zerolog.Logger):    emit one Debug event per search with counters.
//
// Complexity:
//
//   - Time:  O(N log N) for N = W×H cells; each cell is inserted and popped at
//     most once and has at most four incoming steps.
//   - Space: O(N) for distances, the visited bitmap, the heap and its index.
//
// Errors (sentinel):
//
//   - ErrNilGraph:       g is nil.
//   - ErrNodeOutOfRange: start, end or a candidate is not a cell of g.
//   - ErrBadMaxDistance: WithMaxDistance received a negative value (panics).
//
// Thread safety:
//
//   - Searches share no state; concurrent searches over the same immutable
//     GridGraph are safe.
package dijkstra
