package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/trim21/errgo"

	"github.com/katalvlaran/elevpath/gridgraph"
)

// Load opens path and parses it with Parse.
func Load(path string) (*Heightmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errgo.Wrap(err, fmt.Sprintf("failed to open map %s", path))
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a map from r. Cell ids in the result are row-major.
func Parse(r io.Reader) (*Heightmap, error) {
	var (
		rows       [][]int
		start, end = -1, -1
		width      int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt32)
	for y := 0; sc.Scan(); y++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if y == 0 {
			width = len(line)
		}
		row := make([]int, len(line))
		for x := 0; x < len(line); x++ {
			c := line[x]
			switch {
			case c == 'S':
				if start >= 0 {
					return nil, fmt.Errorf("%w: row %d column %d", ErrDuplicateStart, y+1, x+1)
				}
				start = y*width + x
				c = 'a'
			case c == 'E':
				if end >= 0 {
					return nil, fmt.Errorf("%w: row %d column %d", ErrDuplicateEnd, y+1, x+1)
				}
				end = y*width + x
				c = 'z'
			case c < 'a' || c > 'z':
				return nil, fmt.Errorf("%w: %q at row %d column %d", ErrBadCell, c, y+1, x+1)
			}
			row[x] = int(c - 'a')
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, errgo.Wrap(err, "failed to read map")
	}

	// Drop trailing blank lines so a final newline pair is not a ragged row.
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}

	g, err := gridgraph.NewGridGraph(rows)
	if err != nil {
		return nil, err
	}
	if start < 0 {
		return nil, ErrMissingStart
	}
	if end < 0 {
		return nil, ErrMissingEnd
	}

	return &Heightmap{Grid: g, Start: start, End: end}, nil
}
