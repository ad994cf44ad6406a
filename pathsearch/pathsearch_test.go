// Package pathsearch_test exercises route enumeration: both counting
// modes on a height-trail fixture, witness-route validity, cyclic inputs,
// and the step cap.
package pathsearch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/geometry"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathsearch"
)

// trail is a 3×3 height map where height(x,y) = x+y. A step goes to a
// cardinal neighbor exactly one higher, so every route from (0,0) to a
// tile of height h is a monotone lattice path and the counts are pure
// binomials.
func trail(t *testing.T) *grid.Grid[int] {
	t.Helper()
	g, err := grid.New([][]int{
		{0, 1, 2},
		{1, 2, 3},
		{2, 3, 4},
	})
	require.NoError(t, err)

	return g
}

// uphill yields the cardinal neighbors exactly one higher than n.
func uphill(g *grid.Grid[int]) pathsearch.StepFunc[geometry.GridAddress] {
	return func(a geometry.GridAddress) []geometry.GridAddress {
		here := g.MustGet(a)
		var out []geometry.GridAddress
		for _, c := range geometry.Cardinals {
			next, ok := a.Step(c)
			if !ok {
				continue
			}
			if h, onGrid := g.GetAt(next); onGrid && *h == *here+1 {
				out = append(out, next)
			}
		}

		return out
	}
}

// heightIs builds a goal predicate matching tiles of height want.
func heightIs(g *grid.Grid[int], want int) pathsearch.GoalFunc[geometry.GridAddress] {
	return func(a geometry.GridAddress) bool {
		return *g.MustGet(a) == want
	}
}

func TestSearch_NilStep(t *testing.T) {
	_, err := pathsearch.Search(0, nil, func(int) bool { return false })
	require.ErrorIs(t, err, pathsearch.ErrNilStep)
}

func TestSearch_NilGoal(t *testing.T) {
	_, err := pathsearch.Search(0, func(int) []int { return nil }, nil)
	require.ErrorIs(t, err, pathsearch.ErrNilGoal)
}

func TestSearch_BadMaxStepsPanics(t *testing.T) {
	require.Panics(t, func() { pathsearch.WithMaxSteps(-1)(nil) })
}

// TestSearch_DistinctPaths counts monotone lattice paths: C(4,2)=6 routes
// from the corner to the single height-4 tile.
func TestSearch_DistinctPaths(t *testing.T) {
	g := trail(t)
	start := geometry.GridAddress{X: 0, Y: 0}

	res, err := pathsearch.Search(start, uphill(g), heightIs(g, 4))
	require.NoError(t, err)
	require.Equal(t, 6, res.Count)
	require.False(t, res.Truncated)
}

// TestSearch_DistinctEndpoints counts reachable goal tiles once each:
// three tiles have height 2, against 1+2+1=4 distinct routes to them.
func TestSearch_DistinctEndpoints(t *testing.T) {
	g := trail(t)
	start := geometry.GridAddress{X: 0, Y: 0}
	goal := heightIs(g, 2)

	paths, err := pathsearch.Search(start, uphill(g), goal)
	require.NoError(t, err)
	require.Equal(t, 4, paths.Count)

	ends, err := pathsearch.Search(start, uphill(g), goal,
		pathsearch.WithMode(pathsearch.DistinctEndpoints))
	require.NoError(t, err)
	require.Equal(t, 3, ends.Count)
}

// TestSearch_FirstPath checks the witness route: right length, starts at
// the start, ends on a goal, each step a one-higher cardinal neighbor.
func TestSearch_FirstPath(t *testing.T) {
	g := trail(t)
	start := geometry.GridAddress{X: 0, Y: 0}

	res, err := pathsearch.Search(start, uphill(g), heightIs(g, 4))
	require.NoError(t, err)

	path := res.FirstPath()
	require.Len(t, path, 5)
	require.Equal(t, start, path[0])
	require.Equal(t, 4, *g.MustGet(path[4]))
	for i := 1; i < len(path); i++ {
		require.Equal(t, 1, geometry.VectorBetween(path[i-1], path[i]).Manhattan(),
			"step %d must move one tile", i)
		require.Equal(t, *g.MustGet(path[i-1])+1, *g.MustGet(path[i]),
			"step %d must climb by one", i)
	}
}

func TestSearch_NoGoalReachable(t *testing.T) {
	g := trail(t)
	start := geometry.GridAddress{X: 2, Y: 2} // already at the top

	res, err := pathsearch.Search(start, uphill(g), heightIs(g, 9))
	require.NoError(t, err)
	require.Zero(t, res.Count)
	require.Nil(t, res.FirstPath())
	require.False(t, res.Truncated)
}

// TestSearch_EndpointModeHandlesCycles verifies the shared visited set
// lets DistinctEndpoints terminate on a cyclic relation without any cap.
func TestSearch_EndpointModeHandlesCycles(t *testing.T) {
	step := func(n int) []int { return []int{(n + 1) % 4} } // 0→1→2→3→0
	res, err := pathsearch.Search(0, step, func(n int) bool { return n == 3 },
		pathsearch.WithMode(pathsearch.DistinctEndpoints))
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	require.Equal(t, []int{0, 1, 2, 3}, res.FirstPath())
	require.False(t, res.Truncated)
}

// TestSearch_Truncation verifies the cap stops an unbounded walk and
// flags the partial result.
func TestSearch_Truncation(t *testing.T) {
	step := func(n int) []int { return []int{n + 1} }
	res, err := pathsearch.Search(0, step, func(n int) bool { return n == 1_000_000 },
		pathsearch.WithMaxSteps(10))
	require.NoError(t, err)
	require.True(t, res.Truncated)
	require.Zero(t, res.Count)
}
