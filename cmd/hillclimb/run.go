package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/trim21/errgo"

	"github.com/katalvlaran/elevpath/dijkstra"
	"github.com/katalvlaran/elevpath/gridgraph"
	"github.com/katalvlaran/elevpath/heightmap"
	"github.com/katalvlaran/elevpath/internal/config"
)

var errMismatch = errors.New("dijkstra and BFS disagree")

type job struct {
	input    string
	search   config.Search
	showPath bool
	check    bool
	logger   zerolog.Logger
}

// hikeOptions are shared by both searches.
func (j job) hikeOptions() []dijkstra.Option {
	var opts = []dijkstra.Option{dijkstra.WithLogger(j.logger)}
	if j.search.MaxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(j.search.MaxDistance))
	}

	return opts
}

// climbOptions adds route tracking, which only the S→E answer prints.
func (j job) climbOptions() []dijkstra.Option {
	opts := j.hikeOptions()
	if j.showPath {
		opts = append(opts, dijkstra.WithReturnPath())
	}

	return opts
}

// run solves both questions for j.input and writes one answer per line to w.
func run(w io.Writer, j job) error {
	m, err := heightmap.Load(j.input)
	if err != nil {
		return errgo.Wrap(err, "failed to load heightmap")
	}

	lowest := m.Lowest()
	j.logger.Info().
		Str("file", j.input).
		Int("width", m.Grid.Width).
		Int("height", m.Grid.Height).
		Str("cells", humanize.Comma(int64(m.Grid.Len()))).
		Str("candidates", humanize.Comma(int64(len(lowest)))).
		Msg("heightmap loaded")

	climb, err := dijkstra.ShortestDistance(m.Grid, m.Start, m.End, j.climbOptions()...)
	if err != nil {
		return errgo.Wrap(err, "failed to search from start")
	}

	hike, err := dijkstra.MinDistanceToAny(m.Grid, m.End, lowest, j.hikeOptions()...)
	if err != nil {
		return errgo.Wrap(err, "failed to search from end")
	}

	j.logger.Info().
		Str("settled", humanize.Comma(int64(climb.Stats.Pops+hike.Stats.Pops))).
		Str("updates", humanize.Comma(int64(climb.Stats.Updates+hike.Stats.Updates))).
		Msg("searches finished")

	if j.check {
		if err := crossCheck(m, lowest, climb, hike); err != nil {
			return err
		}
		j.logger.Info().Msg("BFS cross-check passed")
	}

	fmt.Fprintln(w, formatDistance(climb))
	fmt.Fprintln(w, formatDistance(hike))

	if j.showPath && climb.Reached() {
		fmt.Fprintln(w, formatPath(m.Grid, climb.Path))
	}

	return nil
}

func formatDistance(res dijkstra.Result) string {
	if !res.Reached() {
		return "unreachable"
	}

	return strconv.FormatInt(res.Distance, 10)
}

func formatPath(g *gridgraph.GridGraph, path []int) string {
	return strings.Join(lo.Map(path, func(id int, _ int) string {
		x, y := g.Coordinate(id)
		return fmt.Sprintf("%d,%d", x, y)
	}), " ")
}

// crossCheck recomputes both answers with unit-cost BFS levels.
func crossCheck(m *heightmap.Heightmap, lowest []int, climb, hike dijkstra.Result) error {
	up, err := m.Grid.Levels(m.Start, gridgraph.Ascend)
	if err != nil {
		return errgo.Wrap(err, "failed to compute BFS levels")
	}

	if want := levelDistance(up[m.End]); want != climb.Distance {
		return errgo.Wrap(errMismatch, fmt.Sprintf("climb: dijkstra %d, BFS %d", climb.Distance, want))
	}

	down, err := m.Grid.Levels(m.End, gridgraph.Descend)
	if err != nil {
		return errgo.Wrap(err, "failed to compute BFS levels")
	}

	reached := lo.FilterMap(lowest, func(id int, _ int) (int, bool) {
		return down[id], down[id] >= 0
	})
	want := dijkstra.Unreached
	if len(reached) > 0 {
		want = int64(lo.Min(reached))
	}

	if want != hike.Distance {
		return errgo.Wrap(errMismatch, fmt.Sprintf("hike: dijkstra %d, BFS %d", hike.Distance, want))
	}

	return nil
}

func levelDistance(level int) int64 {
	if level < 0 {
		return dijkstra.Unreached
	}

	return int64(level)
}
