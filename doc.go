// Package elevpath finds shortest hill-climbing routes over elevation grids.
//
// A map is a rectangle of letters 'a' (lowest) to 'z' (highest), with 'S'
// marking the start (elevation 'a') and 'E' the goal (elevation 'z'). One
// step moves to an orthogonal neighbour and may climb at most one level;
// descending any amount is allowed.
//
// The module is organized into small packages:
//
//	iheap/          generic indexed binary min-heap with decrease-key
//	gridgraph/      immutable elevation grid, neighbour iteration, step rules, BFS levels
//	heightmap/      parser for the letter map format
//	dijkstra/       ShortestDistance (S→E) and MinDistanceToAny (E→nearest 'a')
//	cmd/hillclimb/  command-line entry point printing both answers
//
// Quick example:
//
//	m, _ := heightmap.Load("input.txt")
//	climb, _ := dijkstra.ShortestDistance(m.Grid, m.Start, m.End)
//	hike, _ := dijkstra.MinDistanceToAny(m.Grid, m.End, m.Lowest())
//	fmt.Println(climb.Distance, hike.Distance)
//
// Every search owns its heap, distance array and visited set; nothing is
// shared between calls, so independent searches may run concurrently.
package elevpath
