package hex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindPath(t *testing.T) {
	grid := StandardGrid()
	origin := NewCoord(0, 0)

	t.Run("shortest path on an open board", func(t *testing.T) {
		start, end := NewCoord(-2, 0), NewCoord(2, 0)
		path := grid.FindPath(start, end, nil, nil)

		require.Len(t, path, Distance(start, end)+1, "Path should include both endpoints")
		require.Equal(t, start, path[0])
		require.Equal(t, end, path[len(path)-1])
		for i := 1; i < len(path); i++ {
			require.True(t, Adjacent(path[i-1], path[i]), "Consecutive cells should be adjacent")
		}
	})

	t.Run("same start and end", func(t *testing.T) {
		require.Equal(t, []Coord{origin}, grid.FindPath(origin, origin, nil, nil))
		blocked := func(c Coord) bool { return c == origin }
		require.Empty(t, grid.FindPath(origin, origin, blocked, nil), "Blocked end should yield no path")
	})

	t.Run("routes around blocked cells", func(t *testing.T) {
		start, end := NewCoord(-1, 0), NewCoord(1, 0)
		blocked := func(c Coord) bool { return c == origin }
		path := grid.FindPath(start, end, blocked, nil)

		require.NotEmpty(t, path)
		require.NotContains(t, path, origin)
		require.Len(t, path, 4, "Detour around the center takes three steps")
	})

	t.Run("respects edge predicate", func(t *testing.T) {
		start, end := origin, origin.Neighbor(East)
		noEast := func(from, to Coord) bool {
			d, _ := DirectionTo(from, to)
			return !(from == origin && d == East)
		}
		path := grid.FindPath(start, end, nil, noEast)

		require.Len(t, path, 3, "Blocked edge forces a two-step route")
		require.True(t, grid.Reachable(start, end, nil, noEast))
	})

	t.Run("unreachable", func(t *testing.T) {
		none := func(from, to Coord) bool { return false }
		require.Empty(t, grid.FindPath(origin, NewCoord(2, 0), nil, none))
		require.Empty(t, grid.FindPath(origin, NewCoord(5, 0), nil, nil), "Off-board end is unreachable")
	})
}
