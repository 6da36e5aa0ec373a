// Package dijkstra defines core types and configuration options
// for the single-destination shortest-path search over a heightmap.Grid.
//
// The search graph is implicit: an edge A→B of weight 1 exists iff B is an
// orthogonal neighbour of A and elevation(B) <= elevation(A)+1.
//
// Options:
//
//	– Strategy:     StrategyHeap (default) or StrategyScan.
//	– Ctx:          cancellation and deadlines, checked once per expanded cell.
//	– ReturnPath:   if true, Result.Path holds the cells from start to destination.
//	– MaxDistance:  cells farther than this are not explored (default: no cap).
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the grid pointer is nil.
//	– ErrStartOutOfBounds if the start coordinate lies outside the grid.
//	– ErrOptionViolation  if an option was given an invalid value.
//	– ErrUnreachable      for callers that must treat "no path" as a failure.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/hillpath/heightmap"
)

// Sentinel errors returned by the PathFinder.
var (
	// ErrNilGrid indicates that a nil *heightmap.Grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrStartOutOfBounds indicates the start coordinate is not a grid cell.
	ErrStartOutOfBounds = errors.New("dijkstra: start coordinate outside grid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrUnreachable marks a destination that no path reaches. ShortestPath
	// itself reports this case with ok == false; the error exists for callers
	// that must surface it as a failure.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")
)

// Strategy selects how the next cell to expand is chosen.
type Strategy int

const (
	// StrategyHeap keeps a lazy decrease-key binary heap: O(E log V).
	StrategyHeap Strategy = iota

	// StrategyScan scans the whole distance table for the closest unvisited
	// cell on every round: O(V²). Kept for small grids and as a reference.
	StrategyScan
)

// String returns the flag name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyHeap:
		return "heap"
	case StrategyScan:
		return "scan"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "heap" or "scan" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "heap", "":
		return StrategyHeap, nil
	case "scan":
		return StrategyScan, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}

// Options configures a PathFinder.
type Options struct {
	Ctx         context.Context // cancellation; never nil after DefaultOptions
	Strategy    Strategy        // cell selection policy
	ReturnPath  bool            // whether Result.Path is filled
	MaxDistance int             // exploration cap, math.MaxInt for none

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a PathFinder.
// Invalid values are recorded and surfaced as ErrOptionViolation by
// NewPathFinder.
type Option func(*Options)

// DefaultOptions returns background context, StrategyHeap, no path
// reconstruction and no distance cap.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Strategy:    StrategyHeap,
		ReturnPath:  false,
		MaxDistance: math.MaxInt,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the cell selection policy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != StrategyHeap && s != StrategyScan {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithReturnPath enables path reconstruction in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance stops exploring cells farther than d from the start.
// A destination beyond d is reported as unreachable. d must be >= 0.
func WithMaxDistance(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// Result holds the outcome of one search.
//
//   - Distance: edges on the shortest path, or -1 when Reached is false.
//   - Reached:  whether the destination was reached.
//   - Visited:  number of cells whose distance was finalised.
//   - Path:     start..destination inclusive, only with WithReturnPath.
type Result struct {
	Start    heightmap.Coord
	Distance int
	Reached  bool
	Visited  int
	Path     []heightmap.Coord
}
