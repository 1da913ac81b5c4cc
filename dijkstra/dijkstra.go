package dijkstra

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/kelindar/bitmap"
	"github.com/negrel/assert"
	"github.com/samber/lo"

	"github.com/katalvlaran/elevpath/gridgraph"
	"github.com/katalvlaran/elevpath/iheap"
)

// ShortestDistance computes the length of the shortest admissible walk from
// start to end. The default rule is gridgraph.Ascend.
//
// The search stops the first time end is popped from the heap. If the
// frontier empties first, the result carries Unreached and State Exhausted.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must be cells of g (ErrNodeOutOfRange).
func ShortestDistance(g *gridgraph.GridGraph, start, end int, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.Contains(start) {
		return Result{}, fmt.Errorf("%w: start %d", ErrNodeOutOfRange, start)
	}
	if !g.Contains(end) {
		return Result{}, fmt.Errorf("%w: end %d", ErrNodeOutOfRange, end)
	}

	r := newRunner(g, buildOptions(gridgraph.Ascend, opts))
	r.init(start)
	r.process(func(u int, _ int64) bool {
		return u == end
	})

	target := -1
	if r.state == Found {
		target = end
	}
	res := r.result(target)
	r.log("shortest_distance", res)

	return res, nil
}

// MinDistanceToAny computes the shortest admissible walk from end to the
// nearest of candidates. The walk runs backwards from end, so the default
// rule is gridgraph.Descend: it accepts exactly the steps that Ascend accepts
// in the opposite direction.
//
// candidates is copied; duplicates are ignored. An empty list yields
// Unreached without searching. Candidates that no walk reaches are ignored.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. end and every candidate must be cells of g (ErrNodeOutOfRange).
func MinDistanceToAny(g *gridgraph.GridGraph, end int, candidates []int, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.Contains(end) {
		return Result{}, fmt.Errorf("%w: end %d", ErrNodeOutOfRange, end)
	}

	pending := roaring.New()
	for _, c := range candidates {
		if !g.Contains(c) {
			return Result{}, fmt.Errorf("%w: candidate %d", ErrNodeOutOfRange, c)
		}
		pending.Add(uint32(c))
	}

	r := newRunner(g, buildOptions(gridgraph.Descend, opts))
	if pending.IsEmpty() {
		res := Result{Distance: Unreached, Node: -1, State: Exhausted}
		r.log("min_distance_to_any", res)
		return res, nil
	}

	// Pops come out in non-decreasing distance order, so the first candidate
	// popped already holds the minimum.
	best, nearest := Unreached, -1
	r.init(end)
	r.process(func(u int, d int64) bool {
		if !pending.CheckedRemove(uint32(u)) {
			return false
		}
		if d < best {
			best, nearest = d, u
		}
		return pending.IsEmpty()
	})

	if nearest >= 0 {
		r.state = Found
	}
	res := r.result(nearest)
	r.log("min_distance_to_any", res)

	return res, nil
}

// buildOptions applies opts on top of the entry point's defaults.
func buildOptions(rule gridgraph.StepRule, opts []Option) Options {
	cfg := DefaultOptions(rule)
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// runner holds the mutable state for a single search. Nothing in it outlives
// the call that created it.
type runner struct {
	g       *gridgraph.GridGraph    // read-only input grid
	options Options                 // rule, thresholds, logger
	dist    []int64                 // cell → best known distance
	prev    []int                   // cell → predecessor, nil unless ReturnPath
	visited bitmap.Bitmap           // settled cells
	pq      *iheap.Heap[int64, int] // frontier keyed by tentative distance
	state   State
	stats   Stats
}

func newRunner(g *gridgraph.GridGraph, cfg Options) *runner {
	return &runner{
		g:       g,
		options: cfg,
		pq:      iheap.New[int64, int](),
		state:   Initialized,
	}
}

// init sets every distance to Unreached, sizes the visited bitmap and queues
// source at distance 0.
func (r *runner) init(source int) {
	n := r.g.Len()
	r.dist = make([]int64, n)
	for i := range r.dist {
		r.dist[i] = Unreached
	}
	if r.options.ReturnPath {
		r.prev = make([]int, n)
		for i := range r.prev {
			r.prev[i] = -1
		}
	}
	r.visited.Grow(uint32(n - 1))

	r.dist[source] = 0
	r.pq.Insert(0, source)
	r.state = Initialized
}

// process is the main loop. It pops the closest queued cell, hands it to
// settle, and relaxes its outgoing steps unless settle asks to stop.
//
// Loop termination conditions:
//
//   - settle returns true   → Found.
//   - the heap becomes empty → Exhausted.
//
// relax never queues a cell beyond MaxDistance, so the heap also runs dry
// once everything within the limit is settled.
func (r *runner) process(settle func(u int, d int64) bool) {
	r.state = Running
	for {
		d, u, ok := r.pq.Pop()
		if !ok {
			r.state = Exhausted
			return
		}
		r.stats.Pops++
		assert.Equal(r.dist[u], d)

		if settle(u, d) {
			r.state = Found
			return
		}

		r.visited.Set(uint32(u))
		r.relax(u, d)
	}
}

// relax examines each admissible step u→v towards an unsettled cell. A step
// that improves dist[v] updates the distance array first and then queues v
// or lowers its key in place.
func (r *runner) relax(u int, d int64) {
	for v := range r.g.Neighbors(u) {
		if r.visited.Contains(uint32(v)) || !r.g.Traversable(u, v, r.options.Rule) {
			continue
		}
		r.stats.Relaxations++

		nd := d + 1
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}

		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		r.pq.InsertOrDecrease(v, nd)
		r.stats.Updates++
	}
}

// result assembles the Result for target, which is -1 when nothing was found.
// target must have been popped, so its distance is final.
func (r *runner) result(target int) Result {
	res := Result{Distance: Unreached, Node: -1, State: r.state, Stats: r.stats}
	if target < 0 {
		return res
	}

	res.Distance = r.dist[target]
	res.Node = target
	if r.prev != nil {
		res.Path = r.path(target)
	}

	return res
}

// path rebuilds the route ending at target by following predecessors.
func (r *runner) path(target int) []int {
	var out []int
	for at := target; at >= 0; at = r.prev[at] {
		out = append(out, at)
	}

	return lo.Reverse(out)
}

func (r *runner) log(op string, res Result) {
	r.options.Logger.Debug().
		Str("op", op).
		Stringer("rule", r.options.Rule).
		Stringer("state", res.State).
		Bool("reached", res.Reached()).
		Int64("distance", res.Distance).
		Int("pops", res.Stats.Pops).
		Int("relaxations", res.Stats.Relaxations).
		Int("updates", res.Stats.Updates).
		Msg("search finished")
}
