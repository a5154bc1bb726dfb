package gamemaster

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wtheisen/notorious/config"
	"github.com/wtheisen/notorious/game"
	"github.com/wtheisen/notorious/hex"
)

func newEngine(t *testing.T) *LocalEngine {
	t.Helper()
	e, err := NewLocalEngine(config.DefaultScenario(2), game.NewShuffler(1))
	require.NoError(t, err)
	return e
}

func TestLocalEngineInit(t *testing.T) {
	e := newEngine(t)
	state, getUpdate := e.Init()

	gs := state.(*game.GameState)
	require.Equal(t, game.SetupPhase, gs.Round.Phase)
	require.Len(t, gs.Players, 2)
	require.Equal(t, 0, gs.Active())

	move, next := getUpdate()
	require.Nil(t, move, "nothing played yet")
	require.Nil(t, next)

	t.Run("rejects a bad scenario", func(t *testing.T) {
		_, err := NewLocalEngine(config.DefaultScenario(1), nil)
		require.Error(t, err)
	})
}

func TestLocalEnginePlay(t *testing.T) {
	t.Run("valid move publishes an update", func(t *testing.T) {
		e := newEngine(t)
		_, getUpdate := e.Init()

		port := game.SetupPort{Player: 0, Cell: hex.NewCoord(-1, 0)}
		require.NoError(t, e.Play(port))

		move, state := getUpdate()
		require.Equal(t, port, move)
		gs := state.(*game.GameState)
		require.True(t, gs.Players[0].HasPort)
		require.Equal(t, 1, gs.Active())
		require.Equal(t, gs.Hash(), e.State().Hash())
	})

	t.Run("illegal move is a rule error", func(t *testing.T) {
		e := newEngine(t)
		_, getUpdate := e.Init()
		before := e.State().Hash()

		err := e.Play(game.SetupPort{Player: 1, Cell: hex.NewCoord(0, 0)})
		require.ErrorIs(t, err, game.ErrNotYourTurn)
		var ruleErr *game.RuleError
		require.ErrorAs(t, err, &ruleErr)
		require.Equal(t, before, e.State().Hash())

		move, _ := getUpdate()
		require.Nil(t, move)
	})

	t.Run("full buffer drops the oldest update", func(t *testing.T) {
		e := newEngine(t)
		_, getUpdate := e.Init()

		first := game.SetupPort{Player: 0, Cell: hex.NewCoord(-1, 0)}
		second := game.SetupPort{Player: 1, Cell: hex.NewCoord(0, 0)}
		require.NoError(t, e.Play(first))
		require.NoError(t, e.Play(second))

		move, state := getUpdate()
		require.Equal(t, second, move)
		require.Equal(t, game.PlacePhase, state.(*game.GameState).Round.Phase)
	})

	t.Run("play without init", func(t *testing.T) {
		e := newEngine(t)
		require.NoError(t, e.Play(game.SetupPort{Player: 0, Cell: hex.NewCoord(-1, 0)}))
	})
}

func TestLocalEngineGameOver(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.Play(game.SetupPort{Player: 0, Cell: hex.NewCoord(-1, 0)}))
	require.NoError(t, e.Play(game.SetupPort{Player: 1, Cell: hex.NewCoord(0, 0)}))

	// force the last pirate turn of a round that crosses the win threshold
	gs := e.State()
	gs.Round.Phase = game.PiratePhase
	gs.Round.Passed = []bool{true, false}
	gs.Round.Active = 1
	gs.Players[0].Notoriety = gs.Rules.WinThreshold
	e = ResumeLocalEngine(gs)
	_, getUpdate := e.Init()

	require.NoError(t, e.Play(game.EndPirateTurn{Player: 1}))
	require.True(t, e.Over())

	move, state := getUpdate()
	require.Equal(t, game.EndPirateTurn{Player: 1}, move)
	require.Equal(t, []int{0}, state.(*game.GameState).Winners())

	move, state = getUpdate()
	require.Nil(t, move, "channel closed after the final update")
	require.Nil(t, state)

	err := e.Play(game.EndPirateTurn{Player: 0})
	require.ErrorIs(t, err, game.ErrGameOver)
}

func TestSnapshot(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.Play(game.SetupPort{Player: 0, Cell: hex.NewCoord(-1, 0)}))

	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, e.Save(path))

	gs, err := LoadState(path, game.NewShuffler(1))
	require.NoError(t, err)
	require.Equal(t, e.State().Hash(), gs.Hash())

	resumed := ResumeLocalEngine(gs)
	require.NoError(t, resumed.Play(game.SetupPort{Player: 1, Cell: hex.NewCoord(0, 0)}))
	require.Equal(t, game.PlacePhase, resumed.State().Round.Phase)

	_, err = LoadState(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
}
