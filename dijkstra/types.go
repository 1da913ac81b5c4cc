// Package dijkstra defines core types and configuration options
// for shortest-path searches over elevation grids.
package dijkstra

import (
	"errors"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/elevpath/gridgraph"
)

// Unreached is the distance reported for cells no admissible route reaches.
const Unreached int64 = math.MaxInt64

// Sentinel errors returned by the search entry points.
var (
	// ErrNilGraph indicates that a nil *gridgraph.GridGraph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeOutOfRange indicates a start, end or candidate id outside the grid.
	// It is the same value as gridgraph.ErrNodeOutOfRange.
	ErrNodeOutOfRange = gridgraph.ErrNodeOutOfRange

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// State records the progress of a search.
type State int

const (
	// Initialized: distances are set up and the source is queued.
	Initialized State = iota
	// Running: the main loop is popping and relaxing.
	Running
	// Found: the target (or at least one candidate) was settled.
	Found
	// Exhausted: the frontier ran dry, or MaxDistance was hit, without success.
	Exhausted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Stats counts the work a search performed.
type Stats struct {
	Pops        int // entries removed from the heap
	Relaxations int // admissible steps examined towards unsettled cells
	Updates     int // steps that improved a tentative distance
}

// Result is the outcome of a search.
type Result struct {
	// Distance is the shortest distance found, or Unreached.
	Distance int64
	// Node is the target settled at Distance: end for ShortestDistance, the
	// nearest candidate for MinDistanceToAny. -1 when nothing was reached.
	Node int
	// State is Found or Exhausted once the search returns.
	State State
	// Path is the route from the search source to Node, inclusive.
	// Nil unless WithReturnPath() was given and Node was reached.
	Path []int
	// Stats holds the work counters.
	Stats Stats
}

// Reached reports whether Distance is a real distance rather than Unreached.
func (r Result) Reached() bool {
	return r.Distance != Unreached
}

// Options configures a search.
//
//   - Rule: step rule deciding which moves are allowed.
//   - ReturnPath: if true, record predecessors and fill Result.Path.
//   - MaxDistance: cells farther than this are never settled. Default math.MaxInt64.
//   - Logger: receives one Debug event per search. Default zerolog.Nop().
type Options struct {
	Rule        gridgraph.StepRule
	ReturnPath  bool
	MaxDistance int64
	Logger      zerolog.Logger
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithRule overrides the default step rule of the entry point.
func WithRule(rule gridgraph.StepRule) Option {
	return func(o *Options) {
		o.Rule = rule
	}
}

// WithReturnPath enables predecessor tracking and Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed max are not settled.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Invalid configuration is a programming error, reported early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithLogger routes the per-search Debug event to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns an Options struct for the given default rule.
//
// Defaults:
//   - ReturnPath:  false.
//   - MaxDistance: math.MaxInt64 (no limit).
//   - Logger:      zerolog.Nop().
func DefaultOptions(rule gridgraph.StepRule) Options {
	return Options{
		Rule:        rule,
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
		Logger:      zerolog.Nop(),
	}
}
