// Package dijkstra provides the PathFinder: single-source, single-destination
// shortest paths over the climbing graph of a heightmap.Grid.
//
// Overview:
//
//   - Every step costs 1. A step may climb at most one elevation level and
//     may descend any number of levels; there are no diagonal moves.
//   - The destination is fixed by the grid; the start is chosen per call.
//   - An unreachable destination is an expected outcome, reported by
//     ShortestPath as ok == false rather than as an error.
//
// Strategies:
//
//   - StrategyHeap (default): binary min-heap keyed by (distance, cell index)
//     with lazy decrease-key. Time O(V log V), memory O(V).
//   - StrategyScan: scans the distance table for the closest unvisited cell on
//     every round, the textbook O(V²) form. Same answers, slower on big grids.
//
// Key features:
//
//   - WithReturnPath(): Result.Path lists every cell from start to destination.
//   - WithMaxDistance(d): do not explore beyond d steps; lets callers prune
//     searches that can no longer beat a known bound.
//   - WithContext(ctx): cancellation and deadlines.
//
// Thread safety:
//
//   - A PathFinder is immutable after NewPathFinder and each Search allocates
//     its own distance table, so concurrent Search calls on one PathFinder and
//     one Grid are safe without locking.
//
// API reference:
//
//	pf, err := dijkstra.NewPathFinder(grid, dijkstra.WithStrategy(dijkstra.StrategyScan))
//	steps, ok, err := pf.ShortestPath(grid.Origin)
//	res, err := pf.Search(start) // Distance, Reached, Visited, Path
package dijkstra
