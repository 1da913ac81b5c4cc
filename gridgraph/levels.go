package gridgraph

import "fmt"

// Levels computes unit-cost BFS distances from source, following only the
// steps allowed by rule. The result has one entry per cell; unreachable cells
// hold -1.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for distances and the queue.
func (gg *GridGraph) Levels(source int, rule StepRule) ([]int, error) {
	if !gg.Contains(source) {
		return nil, fmt.Errorf("%w: %d", ErrNodeOutOfRange, source)
	}

	dist := make([]int, len(gg.elevations))
	for i := range dist {
		dist[i] = -1
	}
	dist[source] = 0

	queue := []int{source}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for v := range gg.Neighbors(u) {
			if dist[v] >= 0 || !gg.Traversable(u, v, rule) {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}

	return dist, nil
}
