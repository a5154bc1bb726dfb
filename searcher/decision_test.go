package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wtheisen/notorious/game"
	"github.com/wtheisen/notorious/hex"
)

// placeState returns a two player game at the start of the first place phase.
func placeState(t *testing.T) *game.GameState {
	t.Helper()
	gs, err := game.NewGameState([]game.Seat{{}, {}}, game.StandardRules(), game.DefaultLayout(), nil)
	require.NoError(t, err)
	gs = play(gs, game.SetupPort{Player: 0, Cell: hex.NewCoord(-1, 0)})
	gs = play(gs, game.SetupPort{Player: 1, Cell: hex.NewCoord(0, 0)})
	require.Equal(t, game.PlacePhase, gs.Round.Phase)
	return gs
}

func TestUCB1(t *testing.T) {
	require.Equal(t, math.Inf(1), ucb1(0, 0, 1), "unexplored nodes come first")

	normalizer := C_SQUARED * math.Log(100)
	require.InDelta(t, 5.0/10+math.Sqrt(normalizer/10), ucb1(5, 10, normalizer), 0.0001)
	require.Greater(t, ucb1(5, 10, normalizer), ucb1(5, 20, normalizer), "more visits explore less")
	require.Greater(t, ucb1(6, 10, normalizer), ucb1(5, 10, normalizer), "more rewards exploit more")
}

func TestDecisionSelectOrExpand(t *testing.T) {
	t.Run("expanding children in move order", func(t *testing.T) {
		gs := placeState(t)
		root := newDecision(nil, -1, gs)
		require.Len(t, root.moves, len(game.ActionTypes))

		child, next, selected := root.selectOrExpand(gs)

		require.False(t, selected, "Node should expand a new child")
		require.Len(t, root.children, 1)
		require.Same(t, root.children[0], child)
		require.Equal(t, 0, child.mover, "Child is rewarded for the seat that moved")
		require.Equal(t, 1, child.visits, "Child should apply a temporary loss")
		require.Equal(t, LOSS, child.rewards)
		require.Equal(t, next.Hash(), child.hash)
		require.Equal(t, []game.ActionType{game.SailAction}, next.Players[0].Captains)
		require.Zero(t, root.visits, "Node stats should not change")
	})

	t.Run("selecting the best child of a fully expanded node", func(t *testing.T) {
		gs := placeState(t)
		root := newDecision(nil, -1, gs)
		for range root.moves {
			root.selectOrExpand(gs)
		}
		root.visits = len(root.children)
		root.children[2].rewards = WIN

		child, next, selected := root.selectOrExpand(gs)

		require.True(t, selected, "Node should perform selection")
		require.Same(t, root.children[2], child, "Node should select the child with max UCB")
		require.Equal(t, 2, child.visits, "Child should apply a temporary loss")
		require.Equal(t, []game.ActionType{game.StealAction}, next.Players[0].Captains)
		require.Len(t, root.children, len(root.moves))
	})

	t.Run("terminal node returns itself", func(t *testing.T) {
		ended := placeState(t)
		ended.Round.Ended = true
		node := newDecision(nil, -1, ended)
		require.Empty(t, node.moves)

		got, gotState, selected := node.selectOrExpand(ended)

		require.Same(t, node, got)
		require.Same(t, ended, gotState)
		require.False(t, selected)
	})
}

func TestBackup(t *testing.T) {
	gs := placeState(t)
	root := newDecision(nil, -1, gs)
	child, _, _ := root.selectOrExpand(gs)

	backup(child, func(seat int) float64 {
		if seat == 0 {
			return WIN
		}
		return LOSS
	})

	require.Equal(t, WIN, child.rewards, "Loss is reversed and the win recorded")
	require.Equal(t, 1, child.visits)
	require.Equal(t, 1, root.visits)
	require.Zero(t, root.rewards, "The root has no mover to reward")
}

func TestTraverse(t *testing.T) {
	gs := placeState(t)
	root := newDecision(nil, -1, gs)
	child, next, _ := root.selectOrExpand(gs)

	require.Same(t, child, traverse(root, []Segment{{Move: root.moves[0], StateHash: next.Hash()}}))
	require.Same(t, root, traverse(root, nil))
	require.Nil(t, traverse(nil, nil))
	require.Nil(t, traverse(root, []Segment{{Move: root.moves[1], StateHash: next.Hash()}}), "move never expanded")
	require.Nil(t, traverse(root, []Segment{{Move: root.moves[0], StateHash: next.Hash() + 1}}), "hash mismatch")
}
