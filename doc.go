// Package hillpath is a shortest-path engine for climbing elevation grids:
// given a rectangular map of heights, how few single steps does it take to
// walk from one cell to another when each step may rise by at most one level?
//
// 🚀 What is in here?
//
//	heightmap/     the grid: parsing, validation, neighbours and the climbing rule
//	dijkstra/      PathFinder, single-source search with heap or scan selection
//	bfs/           one reverse pass from the destination, distances for every cell
//	lowpoint/      best start among all lowest cells, fanned out over workers
//	report/        text, JSON and YAML rendering of the answers
//	cmd/hillpath/  the command-line front end
//
// Quick example, the climbing rule on a small grid:
//
//	S a b      S→a→b→c→d→e rises at most one level per step,
//	e d c      and e→S is allowed too: descending is free.
//
// S sits at height a and E at height z, so a real map needs a long ramp.
//
// Every search is deterministic: equal distances break towards the lowest
// row-major index, and an unreachable destination is reported as such, never
// as a sentinel number.
//
//	go run github.com/katalvlaran/hillpath/cmd/hillpath input.txt
package hillpath
