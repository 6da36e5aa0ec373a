package lowpoint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hillpath/dijkstra"
	"github.com/katalvlaran/hillpath/heightmap"
)

// Sentinel errors for low-point searches.
var (
	// ErrNilGrid indicates that a nil *heightmap.Grid was passed.
	ErrNilGrid = errors.New("lowpoint: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lowpoint: invalid option supplied")

	// ErrUnreachable indicates that no candidate reaches the destination.
	// It wraps dijkstra.ErrUnreachable.
	ErrUnreachable = fmt.Errorf("lowpoint: every candidate failed: %w", dijkstra.ErrUnreachable)
)

// Mode selects how candidates are evaluated.
type Mode int

const (
	// ModeFanout runs one PathFinder search per candidate on a bounded
	// worker pool.
	ModeFanout Mode = iota

	// ModeReverse computes one reverse distance field from the destination
	// and reads every candidate off it.
	ModeReverse
)

// String returns the flag name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeFanout:
		return "fanout"
	case ModeReverse:
		return "reverse"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "fanout" or "reverse" (case-insensitive) to a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fanout", "":
		return ModeFanout, nil
	case "reverse":
		return ModeReverse, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrOptionViolation, name)
	}
}

// Options configures a low-point search.
type Options struct {
	Ctx         context.Context
	Mode        Mode
	Workers     int                // concurrent searches in ModeFanout
	Prune       bool               // cap later searches at the best distance so far
	PathOptions []dijkstra.Option  // forwarded to every PathFinder
	Logger      logrus.FieldLogger // per-candidate debug entries

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns ModeFanout with one worker per CPU, pruning on and
// a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Mode:    ModeFanout,
		Workers: runtime.NumCPU(),
		Prune:   true,
		Logger:  discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMode selects fan-out or reverse evaluation.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != ModeFanout && m != ModeReverse {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithWorkers bounds the number of concurrent searches. n must be >= 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithPruning toggles the best-so-far distance cap.
func WithPruning(on bool) Option {
	return func(o *Options) {
		o.Prune = on
	}
}

// WithPathOptions forwards options such as dijkstra.WithStrategy to every
// PathFinder the search builds.
func WithPathOptions(opts ...dijkstra.Option) Option {
	return func(o *Options) {
		o.PathOptions = append(o.PathOptions, opts...)
	}
}

// WithLogger sets the logger used for per-candidate debug entries.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of a low-point search.
//
//   - Distance:   the minimum distance over all candidates.
//   - From:       the candidate achieving it; the earliest in row-major order on ties.
//   - Candidates: number of minimum-elevation cells examined.
//   - Reached:    candidates whose search reached the destination. With
//     pruning on, candidates cut off by the bound are not counted.
type Result struct {
	Distance   int
	From       heightmap.Coord
	Candidates int
	Reached    int
	Mode       Mode
}
