// Package lowpoint answers the low-point query: among all cells at the grid's
// minimum elevation, which one is closest to the destination, and how close?
//
// Two evaluation modes return the same distance:
//
//   - ModeFanout (default) runs dijkstra.PathFinder once per candidate on an
//     errgroup bounded by WithWorkers. With pruning enabled each new search is
//     capped at the best distance found so far, which can only discard
//     candidates that would not win.
//   - ModeReverse runs a single bfs.Reverse pass from the destination and
//     reads every candidate's distance off the resulting field.
//
// An empty answer is never encoded as a number: when no candidate reaches the
// destination, Search and MinimumDistance fail with ErrUnreachable.
package lowpoint
