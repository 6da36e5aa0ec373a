// Package bfs provides tunable options and error definitions
// for the reverse breadth-first search over a heightmap.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/hillpath/heightmap"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathFrom for cells with no route to the
	// destination.
	ErrNotReached = errors.New("bfs: cell does not reach the destination")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Reverse is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is enqueued, before visiting.
	// Receives the cell and its distance to the destination.
	OnEnqueue func(c heightmap.Coord, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c heightmap.Coord, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(heightmap.Coord, int) {},
		OnVisit:   func(heightmap.Coord, int) error { return nil },
		MaxDepth:  0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c heightmap.Coord, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c heightmap.Coord, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Field holds the outcome of a reverse traversal:
//   - Order: cells visited, in visit sequence (destination first).
//   - Depth: per cell index, the number of steps to the destination, -1 if
//     the destination cannot be reached from that cell.
//   - Next:  per cell index, the following cell on one shortest route, -1 for
//     the destination itself and for unreached cells.
type Field struct {
	Order []heightmap.Coord
	Depth []int
	Next  []int

	grid *heightmap.Grid
}

// DistanceFrom returns the number of steps from c to the destination.
// ok is false when c cannot reach the destination or lies outside the grid.
func (f *Field) DistanceFrom(c heightmap.Coord) (int, bool) {
	if !f.grid.InBounds(c) {
		return 0, false
	}
	d := f.Depth[f.grid.Index(c)]
	if d < 0 {
		return 0, false
	}
	return d, true
}

// PathFrom reconstructs the route from c to the destination, inclusive.
func (f *Field) PathFrom(c heightmap.Coord) ([]heightmap.Coord, error) {
	d, ok := f.DistanceFrom(c)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, c)
	}
	path := make([]heightmap.Coord, 0, d+1)
	for at := f.grid.Index(c); at >= 0; at = f.Next[at] {
		path = append(path, f.grid.Coordinate(at))
	}
	return path, nil
}

// Nearest returns the candidate with the smallest distance to the
// destination. Ties go to the earlier candidate. ok is false when no
// candidate reaches the destination.
func (f *Field) Nearest(candidates []heightmap.Coord) (best heightmap.Coord, dist int, ok bool) {
	for _, c := range candidates {
		d, reached := f.DistanceFrom(c)
		if !reached {
			continue
		}
		if !ok || d < dist {
			best, dist, ok = c, d, true
		}
	}
	return best, dist, ok
}
