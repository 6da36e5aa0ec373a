package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hillpath/heightmap"
)

// queueItem pairs a cell index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *heightmap.Grid
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	nbuf    []heightmap.Coord
	res     *Field
}

// Reverse runs breadth-first search from g.Destination along reversed
// climbing edges, applying any number of functional Options.
// Returns ErrGridNil for a nil grid, ErrOptionViolation for bad options,
// the context error on cancellation, or any OnVisit hook error.
//
// Complexity: O(W·H) time and memory.
func Reverse(g *heightmap.Grid, opts ...Option) (*Field, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Cells()
	w := &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		nbuf:    make([]heightmap.Coord, 0, 4),
		res: &Field{
			Order: make([]heightmap.Coord, 0, n),
			Depth: make([]int, n),
			Next:  make([]int, n),
			grid:  g,
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = -1
		w.res.Next[i] = -1
	}

	// Seed queue with the destination (no successor)
	w.enqueue(g.Index(g.Destination), 0, -1)

	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.res, nil
}

// enqueue marks idx visited at depth d, records its successor, calls
// OnEnqueue and adds it to the queue.
func (w *walker) enqueue(idx, d, next int) {
	w.visited[idx] = true
	w.res.Depth[idx] = d
	w.res.Next[idx] = next
	w.opts.OnEnqueue(w.grid.Coordinate(idx), d)
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[head]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueuePredecessors(item)
	}
	return nil
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	c := w.grid.Coordinate(item.idx)
	w.res.Order = append(w.res.Order, c)
	if err := w.opts.OnVisit(c, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", c, err)
	}
	return nil
}

// enqueuePredecessors enqueues every unseen neighbour that may step onto
// the current cell, honouring MaxDepth.
func (w *walker) enqueuePredecessors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	cur := w.grid.Coordinate(item.idx)
	w.nbuf = w.grid.AppendNeighbors(w.nbuf[:0], cur)
	for _, nb := range w.nbuf {
		v := w.grid.Index(nb)
		if w.visited[v] || !w.grid.CanStep(nb, cur) {
			continue
		}
		w.enqueue(v, nextDepth, item.idx)
	}
}
