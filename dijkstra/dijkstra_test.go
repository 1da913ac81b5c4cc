// Package dijkstra_test contains unit tests for the grid shortest-path searches.
// These tests validate input checking, the single-target and nearest-candidate
// searches, unreachable targets, options, and agreement with a BFS oracle.
package dijkstra_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/elevpath/dijkstra"
	"github.com/katalvlaran/elevpath/gridgraph"
	"github.com/katalvlaran/elevpath/heightmap"
)

const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi`

func mustParse(t *testing.T, s string) *heightmap.Heightmap {
	t.Helper()
	m, err := heightmap.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return m
}

func mustGrid(t *testing.T, values [][]int) *gridgraph.GridGraph {
	t.Helper()
	g, err := gridgraph.NewGridGraph(values)
	require.NoError(t, err)
	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestShortestDistance_Validation(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 1}, {2, 3}})

	_, err := dijkstra.ShortestDistance(nil, 0, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.ShortestDistance(g, -1, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNodeOutOfRange)

	_, err = dijkstra.ShortestDistance(g, 0, 4)
	assert.ErrorIs(t, err, dijkstra.ErrNodeOutOfRange)
	assert.ErrorIs(t, err, gridgraph.ErrNodeOutOfRange)
}

func TestMinDistanceToAny_Validation(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 1}, {2, 3}})

	_, err := dijkstra.MinDistanceToAny(nil, 0, []int{1})
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.MinDistanceToAny(g, 9, []int{1})
	assert.ErrorIs(t, err, dijkstra.ErrNodeOutOfRange)

	_, err = dijkstra.MinDistanceToAny(g, 3, []int{0, 7})
	require.ErrorIs(t, err, dijkstra.ErrNodeOutOfRange)
	assert.Contains(t, err.Error(), "candidate 7")
}

func TestWithMaxDistance_Negative(t *testing.T) {
	opts := dijkstra.DefaultOptions(gridgraph.Ascend)
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&opts)
	})
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestSample(t *testing.T) {
	m := mustParse(t, sample)

	res, err := dijkstra.ShortestDistance(m.Grid, m.Start, m.End)
	require.NoError(t, err)
	assert.Equal(t, int64(31), res.Distance)
	assert.Equal(t, dijkstra.Found, res.State)
	assert.Equal(t, m.End, res.Node)
	assert.True(t, res.Reached())
	assert.Nil(t, res.Path, "no path without WithReturnPath")

	res, err = dijkstra.MinDistanceToAny(m.Grid, m.End, m.Lowest())
	require.NoError(t, err)
	assert.Equal(t, int64(29), res.Distance)
	assert.Equal(t, dijkstra.Found, res.State)
	assert.Equal(t, heightmap.Lowest, m.Grid.Elevation(res.Node))
}

// TestShortestDistance_SinglePath uses a 5×5 grid where the only climbable
// route runs along the top row and down the right column, so the answer is
// the Manhattan distance between opposite corners.
func TestShortestDistance_SinglePath(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 1, 2, 3, 4},
		{9, 9, 9, 9, 5},
		{9, 9, 9, 9, 6},
		{9, 9, 9, 9, 7},
		{9, 9, 9, 9, 8},
	})
	start, end := g.Index(0, 0), g.Index(4, 4)

	res, err := dijkstra.ShortestDistance(g, start, end, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(8), res.Distance)

	want := []int{0, 1, 2, 3, 4, 9, 14, 19, 24}
	assert.Equal(t, want, res.Path)
}

// TestMinDistanceToAny_Disconnected has three elevation-0 cells but only the
// one on the bottom row can climb to the end.
func TestMinDistanceToAny_Disconnected(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 9, 0, 9, 9},
		{9, 9, 9, 9, 9},
		{0, 1, 2, 3, 4},
	})
	end := g.Index(4, 2)
	lows := g.Cells(func(e int) bool { return e == 0 })
	require.Len(t, lows, 3)

	res, err := dijkstra.MinDistanceToAny(g, end, lows, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Distance)
	assert.Equal(t, g.Index(0, 2), res.Node)
	assert.Equal(t, dijkstra.Found, res.State)
	assert.Equal(t, []int{14, 13, 12, 11, 10}, res.Path, "path runs from end to candidate")

	// The other two cannot even start the climb.
	for _, c := range lows[:2] {
		r, err := dijkstra.ShortestDistance(g, c, end)
		require.NoError(t, err)
		assert.False(t, r.Reached())
	}
}

func TestShortestDistance_Unreachable(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 1, 2},
		{1, 9, 9},
		{2, 9, 5},
	})

	res, err := dijkstra.ShortestDistance(g, 0, g.Index(2, 2), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Unreached, res.Distance)
	assert.False(t, res.Reached())
	assert.Equal(t, dijkstra.Exhausted, res.State)
	assert.Equal(t, -1, res.Node)
	assert.Nil(t, res.Path)
	assert.Equal(t, 5, res.Stats.Pops, "every reachable cell is settled before giving up")
}

func TestMinDistanceToAny_EdgeCases(t *testing.T) {
	m := mustParse(t, sample)

	res, err := dijkstra.MinDistanceToAny(m.Grid, m.End, nil)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Unreached, res.Distance)
	assert.Equal(t, dijkstra.Exhausted, res.State)
	assert.Zero(t, res.Stats.Pops)

	// The end itself is a candidate at distance 0.
	res, err = dijkstra.MinDistanceToAny(m.Grid, m.End, []int{m.End, m.Start, m.End})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Distance)
	assert.Equal(t, m.End, res.Node)

	// Only unreachable candidates: the whole backward region is explored.
	g := mustGrid(t, [][]int{{0, 9, 8}})
	res, err = dijkstra.MinDistanceToAny(g, 2, []int{0})
	require.NoError(t, err)
	assert.False(t, res.Reached())
	assert.Equal(t, dijkstra.Exhausted, res.State)
}

func TestShortestDistance_StartIsEnd(t *testing.T) {
	m := mustParse(t, sample)
	res, err := dijkstra.ShortestDistance(m.Grid, m.Start, m.Start, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Distance)
	assert.Equal(t, []int{m.Start}, res.Path)
	assert.Equal(t, 1, res.Stats.Pops)
}

// ------------------------------------------------------------------------
// 3. Options
// ------------------------------------------------------------------------

func TestWithMaxDistance(t *testing.T) {
	m := mustParse(t, sample)

	res, err := dijkstra.ShortestDistance(m.Grid, m.Start, m.End, dijkstra.WithMaxDistance(30))
	require.NoError(t, err)
	assert.False(t, res.Reached())
	assert.Equal(t, dijkstra.Exhausted, res.State)

	res, err = dijkstra.ShortestDistance(m.Grid, m.Start, m.End, dijkstra.WithMaxDistance(31))
	require.NoError(t, err)
	assert.Equal(t, int64(31), res.Distance)
}

// TestWithRule walks the sample from E to S under Descend: the same route as
// S→E under Ascend, traversed backwards.
func TestWithRule(t *testing.T) {
	m := mustParse(t, sample)

	res, err := dijkstra.ShortestDistance(m.Grid, m.End, m.Start,
		dijkstra.WithRule(gridgraph.Descend), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(31), res.Distance)
	assert.Equal(t, m.End, res.Path[0])
	assert.Equal(t, m.Start, res.Path[len(res.Path)-1])

	// Ascend from the summit back down is trivially short: any descent is allowed.
	res, err = dijkstra.MinDistanceToAny(m.Grid, m.End, m.Lowest(), dijkstra.WithRule(gridgraph.Ascend))
	require.NoError(t, err)
	assert.Less(t, res.Distance, int64(29))
}

func TestWithLogger(t *testing.T) {
	m := mustParse(t, sample)
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := dijkstra.ShortestDistance(m.Grid, m.Start, m.End, dijkstra.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"search finished"`)
	assert.Contains(t, out, `"op":"shortest_distance"`)
	assert.Contains(t, out, `"distance":31`)
	assert.Contains(t, out, `"state":"found"`)
}

// ------------------------------------------------------------------------
// 4. Properties
// ------------------------------------------------------------------------

func TestSearch_Idempotent(t *testing.T) {
	m := mustParse(t, sample)

	a, err := dijkstra.ShortestDistance(m.Grid, m.Start, m.End, dijkstra.WithReturnPath())
	require.NoError(t, err)
	b, err := dijkstra.ShortestDistance(m.Grid, m.Start, m.End, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := dijkstra.MinDistanceToAny(m.Grid, m.End, m.Lowest())
	require.NoError(t, err)
	d, err := dijkstra.MinDistanceToAny(m.Grid, m.End, m.Lowest())
	require.NoError(t, err)
	assert.Equal(t, c, d)
}

func randomGrid(rng *rand.Rand, w, h, maxElev int) [][]int {
	grid := make([][]int, h)
	for y := range grid {
		grid[y] = make([]int, w)
		for x := range grid[y] {
			grid[y][x] = rng.Intn(maxElev + 1)
		}
	}
	return grid
}

// TestShortestDistance_MatchesBFS compares every start→target distance on
// random grids with unit-cost BFS levels, and checks each returned path.
func TestShortestDistance_MatchesBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for round := 0; round < 5; round++ {
		g := mustGrid(t, randomGrid(rng, 9, 7, 4))
		start := rng.Intn(g.Len())
		levels, err := g.Levels(start, gridgraph.Ascend)
		require.NoError(t, err)

		for end := 0; end < g.Len(); end++ {
			res, err := dijkstra.ShortestDistance(g, start, end, dijkstra.WithReturnPath())
			require.NoError(t, err)
			if levels[end] < 0 {
				require.False(t, res.Reached(), "round %d end %d", round, end)
				continue
			}
			require.Equal(t, int64(levels[end]), res.Distance, "round %d end %d", round, end)
			require.Len(t, res.Path, levels[end]+1)
			require.Equal(t, start, res.Path[0])
			require.Equal(t, end, res.Path[len(res.Path)-1])
			for i := 1; i < len(res.Path); i++ {
				u, v := res.Path[i-1], res.Path[i]
				require.Contains(t, collect(g, u), v, "path step %d→%d not adjacent", u, v)
				require.True(t, g.Traversable(u, v, gridgraph.Ascend))
			}
		}
	}
}

// TestMinDistanceToAny_MatchesBFS checks the nearest-candidate distance is the
// minimum BFS level over the candidates, and equals the first one settled.
func TestMinDistanceToAny_MatchesBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for round := 0; round < 20; round++ {
		g := mustGrid(t, randomGrid(rng, 8, 8, 5))
		end := rng.Intn(g.Len())
		lows := g.Cells(func(e int) bool { return e == 0 })

		levels, err := g.Levels(end, gridgraph.Descend)
		require.NoError(t, err)
		want := dijkstra.Unreached
		for _, c := range lows {
			if levels[c] >= 0 && int64(levels[c]) < want {
				want = int64(levels[c])
			}
		}

		res, err := dijkstra.MinDistanceToAny(g, end, lows)
		require.NoError(t, err)
		require.Equal(t, want, res.Distance, "round %d", round)
		if res.Reached() {
			require.Equal(t, want, int64(levels[res.Node]))
		}
	}
}

func collect(g *gridgraph.GridGraph, id int) []int {
	var out []int
	for v := range g.Neighbors(id) {
		out = append(out, v)
	}
	return out
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "initialized", dijkstra.Initialized.String())
	assert.Equal(t, "running", dijkstra.Running.String())
	assert.Equal(t, "found", dijkstra.Found.String())
	assert.Equal(t, "exhausted", dijkstra.Exhausted.String())
	assert.Equal(t, "unknown", dijkstra.State(42).String())
}
