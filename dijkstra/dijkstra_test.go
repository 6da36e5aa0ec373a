// Package dijkstra_test contains unit tests for the PathFinder. These tests
// validate option handling, the climbing rule, both selection strategies,
// path reconstruction, distance caps and cancellation.
package dijkstra_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillpath/dijkstra"
	"github.com/katalvlaran/hillpath/heightmap"
)

var strategies = []dijkstra.Strategy{dijkstra.StrategyHeap, dijkstra.StrategyScan}

func canonicalGrid(t testing.TB) *heightmap.Grid {
	t.Helper()
	g, err := heightmap.Parse([]string{
		"Sabqponm",
		"abcryxxl",
		"accszExk",
		"acctuvwj",
		"abdefghi",
	})
	require.NoError(t, err)
	return g
}

// rowGrid builds a single-row grid from raw elevations with the origin at the
// first cell and the destination at the last.
func rowGrid(t testing.TB, elev ...heightmap.Elevation) *heightmap.Grid {
	t.Helper()
	g, err := heightmap.New([][]heightmap.Elevation{elev}, heightmap.Coord{}, heightmap.Coord{X: len(elev) - 1})
	require.NoError(t, err)
	return g
}

// randomGrid returns a w×h grid with small random elevations so that both
// reachable and unreachable starts occur.
func randomGrid(t testing.TB, rng *rand.Rand, w, h int) *heightmap.Grid {
	t.Helper()
	rows := make([][]heightmap.Elevation, h)
	for y := range rows {
		rows[y] = make([]heightmap.Elevation, w)
		for x := range rows[y] {
			rows[y][x] = heightmap.Elevation(rng.Intn(6))
		}
	}
	dst := heightmap.Coord{X: rng.Intn(w), Y: rng.Intn(h)}
	g, err := heightmap.New(rows, heightmap.Coord{}, dst)
	require.NoError(t, err)
	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestNewPathFinder_Errors(t *testing.T) {
	_, err := dijkstra.NewPathFinder(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGrid)

	g := canonicalGrid(t)
	_, err = dijkstra.NewPathFinder(g, dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)

	_, err = dijkstra.NewPathFinder(g, dijkstra.WithStrategy(dijkstra.Strategy(9)))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)
}

func TestSearch_StartOutOfBounds(t *testing.T) {
	pf, err := dijkstra.NewPathFinder(canonicalGrid(t))
	require.NoError(t, err)

	_, _, err = pf.ShortestPath(heightmap.Coord{X: 8, Y: 0})
	assert.ErrorIs(t, err, dijkstra.ErrStartOutOfBounds)
	_, err = pf.Search(heightmap.Coord{X: 0, Y: -1})
	assert.ErrorIs(t, err, dijkstra.ErrStartOutOfBounds)
}

func TestParseStrategy(t *testing.T) {
	s, err := dijkstra.ParseStrategy("SCAN")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.StrategyScan, s)

	s, err = dijkstra.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.StrategyHeap, s)

	_, err = dijkstra.ParseStrategy("astar")
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)

	assert.Equal(t, "heap", dijkstra.StrategyHeap.String())
	assert.Equal(t, "scan", dijkstra.StrategyScan.String())
}

// ------------------------------------------------------------------------
// 2. Climbing rule
// ------------------------------------------------------------------------

func TestShortestPath_ClimbingRule(t *testing.T) {
	cases := []struct {
		name   string
		elev   []heightmap.Elevation
		want   int
		wantOK bool
	}{
		{"unit step", []heightmap.Elevation{0, 1}, 1, true},
		{"cliff", []heightmap.Elevation{0, 25}, 0, false},
		{"free descent", []heightmap.Elevation{25, 0}, 1, true},
		{"staircase", []heightmap.Elevation{0, 1, 2, 3, 4}, 4, true},
		{"two-level step", []heightmap.Elevation{0, 2}, 0, false},
		{"flat", []heightmap.Elevation{7, 7, 7}, 2, true},
	}
	for _, tc := range cases {
		for _, s := range strategies {
			t.Run(fmt.Sprintf("%s/%s", tc.name, s), func(t *testing.T) {
				got, ok, err := dijkstra.ShortestPath(rowGrid(t, tc.elev...), heightmap.Coord{}, dijkstra.WithStrategy(s))
				require.NoError(t, err)
				assert.Equal(t, tc.wantOK, ok)
				if tc.wantOK {
					assert.Equal(t, tc.want, got)
				}
			})
		}
	}
}

// TestShortestPath_AzIsUnreachable: a 1×2 "az" grid has no unit climb.
func TestShortestPath_AzIsUnreachable(t *testing.T) {
	g := rowGrid(t, 'a'-'a', 'z'-'a')
	for _, s := range strategies {
		pf, err := dijkstra.NewPathFinder(g, dijkstra.WithStrategy(s))
		require.NoError(t, err)
		r, err := pf.Search(g.Origin)
		require.NoError(t, err)
		assert.False(t, r.Reached)
		assert.Equal(t, -1, r.Distance)
		assert.Equal(t, 1, r.Visited)
	}
}

// TestShortestPath_Detour requires walking around a wall.
//
//	a b c
//	z z d
//	g f e   destination at (0,2)
func TestShortestPath_Detour(t *testing.T) {
	g, err := heightmap.New([][]heightmap.Elevation{
		{0, 1, 2},
		{25, 25, 3},
		{6, 5, 4},
	}, heightmap.Coord{}, heightmap.Coord{X: 0, Y: 2})
	require.NoError(t, err)

	for _, s := range strategies {
		got, ok, err := dijkstra.ShortestPath(g, g.Origin, dijkstra.WithStrategy(s))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 6, got, s.String())
	}
}

// ------------------------------------------------------------------------
// 3. Canonical scenario and properties
// ------------------------------------------------------------------------

func TestShortestPath_Canonical(t *testing.T) {
	g := canonicalGrid(t)
	for _, s := range strategies {
		got, ok, err := dijkstra.ShortestPath(g, g.Origin, dijkstra.WithStrategy(s))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 31, got, s.String())
	}
}

func TestSearch_ReturnPath(t *testing.T) {
	g := canonicalGrid(t)
	for _, s := range strategies {
		pf, err := dijkstra.NewPathFinder(g, dijkstra.WithStrategy(s), dijkstra.WithReturnPath())
		require.NoError(t, err)
		res, err := pf.Search(g.Origin)
		require.NoError(t, err)
		require.True(t, res.Reached)

		require.Len(t, res.Path, res.Distance+1)
		assert.Equal(t, g.Origin, res.Path[0])
		assert.Equal(t, g.Destination, res.Path[len(res.Path)-1])
		for i := 1; i < len(res.Path); i++ {
			prev, cur := res.Path[i-1], res.Path[i]
			require.Equal(t, 1, prev.Manhattan(cur), "step %d not adjacent", i)
			require.True(t, g.CanStep(prev, cur), "step %d violates climbing rule", i)
		}
	}
}

func TestSearch_NoPathWithoutOption(t *testing.T) {
	g := canonicalGrid(t)
	pf, err := dijkstra.NewPathFinder(g)
	require.NoError(t, err)
	res, err := pf.Search(g.Origin)
	require.NoError(t, err)
	assert.Nil(t, res.Path)
	assert.Positive(t, res.Visited)
}

func TestShortestPath_StartIsDestination(t *testing.T) {
	g := canonicalGrid(t)
	for _, s := range strategies {
		pf, err := dijkstra.NewPathFinder(g, dijkstra.WithStrategy(s), dijkstra.WithReturnPath())
		require.NoError(t, err)
		res, err := pf.Search(g.Destination)
		require.NoError(t, err)
		assert.True(t, res.Reached)
		assert.Equal(t, 0, res.Distance)
		assert.Equal(t, []heightmap.Coord{g.Destination}, res.Path)
	}
}

func TestShortestPath_Deterministic(t *testing.T) {
	g := canonicalGrid(t)
	pf, err := dijkstra.NewPathFinder(g)
	require.NoError(t, err)
	first, ok, err := pf.ShortestPath(g.Origin)
	require.NoError(t, err)
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		got, ok, err := pf.ShortestPath(g.Origin)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, first, got)
	}
}

// TestShortestPath_Admissible checks dist >= Manhattan for every reachable start.
func TestShortestPath_Admissible(t *testing.T) {
	g := canonicalGrid(t)
	pf, err := dijkstra.NewPathFinder(g)
	require.NoError(t, err)
	for i := 0; i < g.Cells(); i++ {
		start := g.Coordinate(i)
		d, ok, err := pf.ShortestPath(start)
		require.NoError(t, err)
		if ok {
			assert.GreaterOrEqual(t, d, start.Manhattan(g.Destination), "start %v", start)
		}
	}
}

// TestStrategies_AgreeOnRandomGrids compares heap and scan from every start.
func TestStrategies_AgreeOnRandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		g := randomGrid(t, rng, 3+rng.Intn(8), 3+rng.Intn(8))
		heapPF, err := dijkstra.NewPathFinder(g, dijkstra.WithStrategy(dijkstra.StrategyHeap))
		require.NoError(t, err)
		scanPF, err := dijkstra.NewPathFinder(g, dijkstra.WithStrategy(dijkstra.StrategyScan))
		require.NoError(t, err)

		for i := 0; i < g.Cells(); i++ {
			start := g.Coordinate(i)
			hd, hok, err := heapPF.ShortestPath(start)
			require.NoError(t, err)
			sd, sok, err := scanPF.ShortestPath(start)
			require.NoError(t, err)
			require.Equal(t, hok, sok, "trial %d start %v", trial, start)
			require.Equal(t, hd, sd, "trial %d start %v", trial, start)
		}
	}
}

// ------------------------------------------------------------------------
// 4. MaxDistance and cancellation
// ------------------------------------------------------------------------

func TestWithMaxDistance(t *testing.T) {
	g := canonicalGrid(t)
	for _, s := range strategies {
		_, ok, err := dijkstra.ShortestPath(g, g.Origin, dijkstra.WithStrategy(s), dijkstra.WithMaxDistance(30))
		require.NoError(t, err)
		assert.False(t, ok, "cap below the answer must report unreachable (%s)", s)

		got, ok, err := dijkstra.ShortestPath(g, g.Origin, dijkstra.WithStrategy(s), dijkstra.WithMaxDistance(31))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 31, got)
	}
}

func TestWithMaxDistance_Zero(t *testing.T) {
	g := canonicalGrid(t)
	d, ok, err := dijkstra.ShortestPath(g, g.Destination, dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, d)

	_, ok, err = dijkstra.ShortestPath(g, g.Origin, dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWithContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := canonicalGrid(t)
	for _, s := range strategies {
		_, _, err := dijkstra.ShortestPath(g, g.Origin, dijkstra.WithStrategy(s), dijkstra.WithContext(ctx))
		assert.ErrorIs(t, err, context.Canceled, s.String())
	}
}
