// Package dijkstra implements Dijkstra's shortest-path search on the
// implicit unit-weight climbing graph of a heightmap.Grid.
//
// Notes on implementation choices:
//
//   - Distances live in a []int indexed by the grid's row-major cell index;
//     -1 marks an unknown (infinite) distance.
//   - Search stops as soon as the destination is finalised.
//   - StrategyHeap uses a “lazy” decrease-key heap: duplicates are pushed and
//     stale entries ignored when popped.
//   - StrategyScan selects the closest unvisited cell by a full table scan,
//     breaking ties on the lowest cell index.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/hillpath/heightmap"
)

// unknown marks a cell whose tentative distance is still infinite.
const unknown = -1

// PathFinder answers shortest-distance queries from arbitrary start cells to
// the grid's fixed destination. It holds no per-search state, so one
// PathFinder may serve concurrent Search calls.
type PathFinder struct {
	grid *heightmap.Grid
	opts Options
}

// NewPathFinder validates g and opts and returns a ready PathFinder.
// Returns ErrNilGrid or ErrOptionViolation.
func NewPathFinder(g *heightmap.Grid, opts ...Option) (*PathFinder, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &PathFinder{grid: g, opts: o}, nil
}

// ShortestPath is a convenience wrapper building a one-off PathFinder.
func ShortestPath(g *heightmap.Grid, start heightmap.Coord, opts ...Option) (int, bool, error) {
	pf, err := NewPathFinder(g, opts...)
	if err != nil {
		return 0, false, err
	}
	return pf.ShortestPath(start)
}

// Grid returns the grid this PathFinder searches.
func (pf *PathFinder) Grid() *heightmap.Grid { return pf.grid }

// Options returns a copy of the effective options.
func (pf *PathFinder) Options() Options { return pf.opts }

// ShortestPath returns the number of steps on the shortest path from start
// to the destination. ok is false, with a nil error, when no path exists.
// Errors are limited to ErrStartOutOfBounds and context cancellation.
func (pf *PathFinder) ShortestPath(start heightmap.Coord) (dist int, ok bool, err error) {
	res, err := pf.Search(start)
	if err != nil {
		return 0, false, err
	}
	if !res.Reached {
		return 0, false, nil
	}
	return res.Distance, true, nil
}

// Search runs one search from start and returns its full Result.
//
// Complexity:
//
//   - StrategyHeap: O(V log V) time (E ≤ 4V), O(V) memory.
//   - StrategyScan: O(V²) time, O(V) memory.
func (pf *PathFinder) Search(start heightmap.Coord) (*Result, error) {
	if !pf.grid.InBounds(start) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrStartOutOfBounds, start, pf.grid.Width, pf.grid.Height)
	}

	r := newRunner(pf.grid, pf.opts, start)
	var (
		reached bool
		err     error
	)
	switch pf.opts.Strategy {
	case StrategyScan:
		reached, err = r.scanLoop()
	default:
		reached, err = r.heapLoop()
	}
	if err != nil {
		return nil, err
	}

	res := &Result{Start: start, Distance: unknown, Reached: reached, Visited: r.visitedCount}
	if reached {
		res.Distance = r.dist[r.target]
		if pf.opts.ReturnPath {
			res.Path = r.path()
		}
	}
	return res, nil
}

// runner holds the mutable state for a single search. It is discarded when
// Search returns.
type runner struct {
	grid         *heightmap.Grid
	opts         Options
	source       int
	target       int
	dist         []int  // cell index → tentative distance, unknown if infinite
	prev         []int  // cell index → predecessor on the best path, -1 if none
	visited      []bool // cell index → distance finalised
	visitedCount int
	nbuf         []heightmap.Coord // reusable neighbour buffer
}

// newRunner sizes the distance table to the grid and seeds the start cell.
func newRunner(g *heightmap.Grid, opts Options, start heightmap.Coord) *runner {
	n := g.Cells()
	r := &runner{
		grid:    g,
		opts:    opts,
		source:  g.Index(start),
		target:  g.Index(g.Destination),
		dist:    make([]int, n),
		visited: make([]bool, n),
		nbuf:    make([]heightmap.Coord, 0, 4),
	}
	for i := range r.dist {
		r.dist[i] = unknown
	}
	if opts.ReturnPath {
		r.prev = make([]int, n)
		for i := range r.prev {
			r.prev[i] = -1
		}
	}
	r.dist[r.source] = 0
	return r
}

// cancelled reports the context error, if any, without blocking.
func (r *runner) cancelled() error {
	select {
	case <-r.opts.Ctx.Done():
		return r.opts.Ctx.Err()
	default:
		return nil
	}
}

// scanLoop is the table-scan loop: pick the unvisited cell with the smallest
// known distance, relax, mark visited, stop at the destination.
func (r *runner) scanLoop() (bool, error) {
	for {
		if err := r.cancelled(); err != nil {
			return false, err
		}

		// 1) Select the closest unvisited cell; lowest index wins ties.
		u := -1
		for i, d := range r.dist {
			if d == unknown || r.visited[i] {
				continue
			}
			if u < 0 || d < r.dist[u] {
				u = i
			}
		}
		// 2) Nothing left with a finite distance: destination unreachable.
		if u < 0 {
			return false, nil
		}

		// 3) Relax, then finalise u.
		r.relax(u, nil)
		r.visited[u] = true
		r.visitedCount++

		// 4) The destination distance is final once it is visited.
		if u == r.target {
			return true, nil
		}
	}
}

// heapLoop is the priority-queue loop with lazy decrease-key.
func (r *runner) heapLoop() (bool, error) {
	pq := make(nodePQ, 0, 64)
	heap.Push(&pq, nodeItem{idx: r.source, dist: 0})
	push := func(v, d int) { heap.Push(&pq, nodeItem{idx: v, dist: d}) }

	for pq.Len() > 0 {
		if err := r.cancelled(); err != nil {
			return false, err
		}

		item := heap.Pop(&pq).(nodeItem)
		// skip stale entries
		if r.visited[item.idx] || item.dist > r.dist[item.idx] {
			continue
		}
		r.visited[item.idx] = true
		r.visitedCount++

		if item.idx == r.target {
			return true, nil
		}
		r.relax(item.idx, push)
	}
	return false, nil
}

// relax offers dist[u]+1 to every unvisited neighbour of u reachable by the
// climbing rule. improved, when non-nil, is told about each lowered distance.
func (r *runner) relax(u int, improved func(v, d int)) {
	from := r.grid.Coordinate(u)
	nd := r.dist[u] + 1
	if nd > r.opts.MaxDistance {
		return
	}

	r.nbuf = r.grid.AppendNeighbors(r.nbuf[:0], from)
	for _, to := range r.nbuf {
		v := r.grid.Index(to)
		if r.visited[v] || !r.grid.CanStep(from, to) {
			continue
		}
		if r.dist[v] != unknown && r.dist[v] <= nd {
			continue
		}
		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		if improved != nil {
			improved(v, nd)
		}
	}
}

// path walks predecessors back from the destination.
func (r *runner) path() []heightmap.Coord {
	n := r.dist[r.target] + 1
	out := make([]heightmap.Coord, n)
	for at, i := r.target, n-1; at >= 0 && i >= 0; at, i = r.prev[at], i-1 {
		out[i] = r.grid.Coordinate(at)
	}
	return out
}

// nodeItem is a heap entry: a cell index and the distance it was pushed with.
type nodeItem struct {
	idx  int
	dist int
}

// nodePQ is a min-heap ordered by distance, then cell index.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
