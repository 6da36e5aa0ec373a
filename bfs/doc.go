// Package bfs provides a breadth-first search that runs backwards from the
// destination of a heightmap.Grid, yielding a distance field: for every cell,
// the fewest steps needed to reach the destination under the climbing rule.
//
// What
//
//   - Reverse returns a Field containing:
//   - Order: visit sequence, destination first
//   - Depth: per cell, steps to the destination (-1 if unreachable)
//   - Next:  per cell, the next cell on one shortest route
//   - Hooks: OnEnqueue (before a cell is enqueued), OnVisit (when visiting;
//     may abort with an error).
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - All edges weigh 1, so breadth-first order is shortest-path order.
//   - Walking edges backwards answers every start cell in a single pass,
//     which is what the low-point query needs; Field.Nearest picks the best
//     candidate directly.
//   - The field doubles as an independent oracle for the dijkstra package.
//
// Determinism
//
//	Neighbours are always expanded in the fixed N, E, S, W order, so Order,
//	Depth and Next are fully reproducible.
//
// Complexity
//
//   - Time:   O(W·H), each cell enqueued at most once, four neighbours each.
//   - Memory: O(W·H) for Depth, Next, visited flags and the queue.
//
// Errors
//
//   - ErrGridNil          nil grid
//   - ErrOptionViolation  negative MaxDepth
//   - ErrNotReached       PathFrom on a cell that cannot reach the destination
//   - ctx.Err()           on cancellation
package bfs
