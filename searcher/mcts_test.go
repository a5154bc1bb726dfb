package searcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wtheisen/notorious/game"
	"github.com/wtheisen/notorious/metrics"
)

func TestNewMCTS(t *testing.T) {
	require.Panics(t, func() {
		NewMCTS(2)
	}, "Should panic without a search budget")
}

func TestFindNextMove(t *testing.T) {
	t.Run("episodes budget", func(t *testing.T) {
		gs := placeState(t)
		m := NewMCTS(2, WithEpisodes(40), WithCutoff(5), WithSeed(1), WithMetrics(metrics.NewCollector()))

		move, metric := m.FindNextMove(gs, nil)

		require.NoError(t, gs.Validate(move))
		require.Equal(t, "mcts", metric.Agent)
		require.Equal(t, 40, metric.Episodes)
		require.Equal(t, len(game.ActionTypes), metric.Candidates)
		require.False(t, metric.TreeReused)

		visits := 0
		for _, choice := range m.Policy() {
			visits += choice.Visits
		}
		require.Equal(t, 40, visits, "every episode passes through one root move")
	})

	t.Run("reuses the subtree of the chosen move", func(t *testing.T) {
		gs := placeState(t)
		m := NewMCTS(2, WithEpisodes(40), WithCutoff(5), WithSeed(2), WithMetrics(metrics.NewCollector()))

		move, _ := m.FindNextMove(gs, nil)
		next := play(gs, move)
		reply := next.LegalMoves()[0]
		after := play(next, reply)

		_, metric := m.FindNextMove(after, []Segment{{Move: reply, StateHash: after.Hash()}})
		require.True(t, metric.TreeReused)
	})

	t.Run("unknown lineage resets the tree", func(t *testing.T) {
		gs := placeState(t)
		m := NewMCTS(1, WithEpisodes(10), WithCutoff(3), WithMetrics(metrics.NewCollector()))

		move, _ := m.FindNextMove(gs, nil)
		next := play(gs, move)

		_, metric := m.FindNextMove(next, []Segment{{Move: move, StateHash: next.Hash()}})
		require.False(t, metric.TreeReused, "the chosen move is already the root")
	})

	t.Run("rollouts reach the end of the game", func(t *testing.T) {
		gs := placeState(t)
		gs.Round.Phase = game.PiratePhase
		gs.Round.Passed = []bool{true, false}
		gs.Round.Active = 1
		gs.Players[0].Notoriety = gs.Rules.WinThreshold
		m := NewMCTS(1, WithEpisodes(10), WithMetrics(metrics.NewCollector()))

		move, metric := m.FindNextMove(gs, nil)

		require.NoError(t, gs.Validate(move))
		require.Positive(t, metric.FullPlayouts)
	})

	t.Run("duration budget", func(t *testing.T) {
		gs := placeState(t)
		m := NewMCTS(2, WithDuration(20*time.Millisecond), WithCutoff(3))

		move, _ := m.FindNextMove(gs, nil)
		require.NoError(t, gs.Validate(move))
	})

	t.Run("no legal moves", func(t *testing.T) {
		gs := placeState(t)
		gs.Round.Ended = true
		m := NewMCTS(1, WithEpisodes(3))

		move, _ := m.FindNextMove(gs, nil)
		require.Nil(t, move)
	})
}
