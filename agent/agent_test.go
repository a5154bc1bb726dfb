package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wtheisen/notorious/game"
	"github.com/wtheisen/notorious/hex"
	"github.com/wtheisen/notorious/metrics"
	"github.com/wtheisen/notorious/searcher"
)

func newState(t *testing.T) *game.GameState {
	t.Helper()
	gs, err := game.NewGameState([]game.Seat{{Name: "Anne"}, {Name: "Jack"}}, game.StandardRules(), game.DefaultLayout(), game.NewShuffler(1))
	require.NoError(t, err)
	return gs
}

func TestRandomAgent(t *testing.T) {
	t.Run("plays a legal move", func(t *testing.T) {
		gs := newState(t)
		a := NewRandomAgent(3, metrics.NewCollector())
		move, m := a.FindMove(gs, nil)
		require.NotNil(t, move)
		require.NoError(t, gs.Validate(move))
		require.Equal(t, "random", m.Agent)
		require.Equal(t, len(gs.LegalMoves()), m.Candidates)
	})

	t.Run("same seed same move", func(t *testing.T) {
		gs := newState(t)
		m1, _ := NewRandomAgent(9, metrics.NewDummyCollector()).FindMove(gs, nil)
		m2, _ := NewRandomAgent(9, metrics.NewDummyCollector()).FindMove(gs, nil)
		require.Equal(t, m1, m2)
	})
}

func TestGreedyAgent(t *testing.T) {
	t.Run("prefers the move that scores best", func(t *testing.T) {
		// give the evaluation a clear favourite: a port on the treasure at the center
		center := hex.NewCoord(0, 0)
		evaluate := func(s game.State) float64 {
			gs := s.(*game.GameState)
			if gs.Board.Count(center, 0, game.Port) > 0 {
				return 1
			}
			return 0
		}
		gs := newState(t)
		a := NewGreedyAgent(evaluate, 1, metrics.NewCollector())
		move, m := a.FindMove(gs, nil)
		require.Equal(t, game.SetupPort{Player: 0, Cell: center}, move)
		require.Equal(t, m.Candidates, m.Scored)
		require.Equal(t, "greedy", m.Agent)
	})

	t.Run("plays a whole game", func(t *testing.T) {
		rules := game.StandardRules()
		rules.WinThreshold = 8
		gs, err := game.NewGameState([]game.Seat{{}, {Power: game.PowerGovernor}}, rules, game.DefaultLayout(), game.NewShuffler(2))
		require.NoError(t, err)
		agents := []Agent{
			NewGreedyAgent(game.EvaluatePosition, 1, metrics.NewDummyCollector()),
			NewRandomAgent(2, metrics.NewDummyCollector()),
		}
		var state game.State = gs
		for i := 0; i < 2000 && !state.(*game.GameState).Ended(); i++ {
			seat := state.(*game.GameState).Active()
			move, _ := agents[seat].FindMove(state, nil)
			require.NotNil(t, move)
			state = state.Play(move)
		}
	})
}

func TestMCTSAgent(t *testing.T) {
	gs := newState(t)
	gs = gs.Play(game.SetupPort{Player: 0, Cell: hex.NewCoord(-1, 0)}).(*game.GameState)
	gs = gs.Play(game.SetupPort{Player: 1, Cell: hex.NewCoord(0, 0)}).(*game.GameState)

	a := NewMCTSAgent(searcher.NewMCTS(2, searcher.WithEpisodes(30), searcher.WithCutoff(4), searcher.WithMetrics(metrics.NewCollector())))
	move, m := a.FindMove(gs, nil)
	require.NoError(t, gs.Validate(move))
	require.Equal(t, "mcts", m.Agent)
	require.Equal(t, 30, m.Episodes)

	// the reply is passed on as an update so the tree carries over
	next := gs.Play(move).(*game.GameState)
	reply := next.LegalMoves()[0]
	after := next.Play(reply).(*game.GameState)
	move, m = a.FindMove(after, []Update{{Move: reply, State: after, Hash: after.Hash()}})
	require.NoError(t, after.Validate(move))
	require.True(t, m.TreeReused)
}
