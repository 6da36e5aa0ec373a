package lowpoint

import (
	"math"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillpath/bfs"
	"github.com/katalvlaran/hillpath/dijkstra"
	"github.com/katalvlaran/hillpath/heightmap"
)

// MinimumDistance returns the shortest distance to the destination from any
// cell at the grid's minimum elevation. It fails with ErrUnreachable when no
// candidate reaches the destination.
func MinimumDistance(g *heightmap.Grid, opts ...Option) (int, error) {
	res, err := Search(g, opts...)
	if err != nil {
		return 0, err
	}
	return res.Distance, nil
}

// Search evaluates every low-elevation candidate and returns the best one.
//
// Complexity:
//
//   - ModeFanout:  O(C · V log V) work for C candidates, spread over Workers.
//   - ModeReverse: O(V) for the distance field plus O(C) to read it.
func Search(g *heightmap.Grid, opts ...Option) (*Result, error) {
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

	cands := g.LowElevationCandidates()
	if len(cands) == 0 {
		return nil, heightmap.ErrNoCandidates
	}

	log := o.Logger.WithFields(logrus.Fields{
		"mode":       o.Mode.String(),
		"candidates": len(cands),
	})
	log.Debug("low point search started")

	var (
		res *Result
		err error
	)
	switch o.Mode {
	case ModeReverse:
		res, err = searchReverse(g, cands, o, log)
	default:
		res, err = searchFanout(g, cands, o, log)
	}
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"distance": res.Distance,
		"from":     res.From.String(),
		"reached":  res.Reached,
	}).Debug("low point search finished")
	return res, nil
}

// searchFanout runs one PathFinder per candidate on a bounded errgroup.
// Each worker owns its distance table; the grid is shared read-only.
func searchFanout(g *heightmap.Grid, cands []heightmap.Coord, o Options, log logrus.FieldLogger) (*Result, error) {
	grp, ctx := errgroup.WithContext(o.Ctx)
	grp.SetLimit(o.Workers)

	var best atomic.Int64
	best.Store(math.MaxInt64)
	dists := make([]int, len(cands))

	for i, c := range cands {
		grp.Go(func() error {
			popts := make([]dijkstra.Option, 0, len(o.PathOptions)+2)
			popts = append(popts, o.PathOptions...)
			popts = append(popts, dijkstra.WithContext(ctx))
			if bound := best.Load(); o.Prune && bound != math.MaxInt64 {
				popts = append(popts, dijkstra.WithMaxDistance(int(bound)))
			}

			pf, err := dijkstra.NewPathFinder(g, popts...)
			if err != nil {
				return err
			}
			d, ok, err := pf.ShortestPath(c)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"candidate": c.String(),
				"distance":  d,
				"reached":   ok,
			}).Debug("candidate evaluated")

			if !ok {
				dists[i] = -1
				return nil
			}
			dists[i] = d
			for {
				cur := best.Load()
				if int64(d) >= cur || best.CompareAndSwap(cur, int64(d)) {
					break
				}
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return reduce(cands, dists, ModeFanout)
}

// searchReverse reads every candidate off one reverse distance field.
func searchReverse(g *heightmap.Grid, cands []heightmap.Coord, o Options, log logrus.FieldLogger) (*Result, error) {
	field, err := bfs.Reverse(g, bfs.WithContext(o.Ctx))
	if err != nil {
		return nil, err
	}

	dists := make([]int, len(cands))
	for i, c := range cands {
		d, ok := field.DistanceFrom(c)
		if !ok {
			d = -1
		}
		dists[i] = d
		log.WithFields(logrus.Fields{
			"candidate": c.String(),
			"distance":  d,
			"reached":   ok,
		}).Debug("candidate evaluated")
	}

	return reduce(cands, dists, ModeReverse)
}

// reduce picks the smallest non-negative distance, earliest candidate on
// ties, and fails with ErrUnreachable when there is none.
func reduce(cands []heightmap.Coord, dists []int, mode Mode) (*Result, error) {
	res := &Result{Distance: -1, Candidates: len(cands), Mode: mode}
	for i, d := range dists {
		if d < 0 {
			continue
		}
		res.Reached++
		if res.Distance < 0 || d < res.Distance {
			res.Distance, res.From = d, cands[i]
		}
	}
	if res.Reached == 0 {
		return nil, ErrUnreachable
	}
	return res, nil
}
