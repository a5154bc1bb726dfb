package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wtheisen/notorious/hex"
)

var (
	westPort = hex.NewCoord(-1, 0)
	eastPort = hex.NewCoord(0, 0)
)

func newGame(t *testing.T, powers ...PowerID) *GameState {
	t.Helper()
	if len(powers) == 0 {
		powers = []PowerID{NoPower, NoPower}
	}
	seats := make([]Seat, len(powers))
	for i, p := range powers {
		seats[i] = Seat{Power: p}
	}
	gs, err := NewGameState(seats, StandardRules(), DefaultLayout(), nil)
	require.NoError(t, err)
	return gs
}

// newGameWithPorts seats two players and plays setup, leaving the game at the
// start of the first place phase.
func newGameWithPorts(t *testing.T, powers ...PowerID) *GameState {
	t.Helper()
	gs := newGame(t, powers...)
	gs = execute(t, gs, SetupPort{Player: 0, Cell: westPort})
	gs = execute(t, gs, SetupPort{Player: 1, Cell: eastPort})
	require.Equal(t, PlacePhase, gs.Round.Phase)
	return gs
}

func execute(t *testing.T, gs *GameState, m Move) *GameState {
	t.Helper()
	next, _, err := gs.Execute(m)
	require.NoError(t, err, "move %v should be legal", m)
	return next
}

// put moves ships from owner's inventory onto c.
func put(t *testing.T, gs *GameState, c hex.Coord, owner int, kind ShipKind, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, gs.Board.PlaceShip(c, Ship{Kind: kind, Owner: owner}))
		gs.player(owner).adjustInventory(kind, -1)
	}
}

// acting puts the game in phase with id to act holding captains.
func acting(gs *GameState, phase Phase, id int, captains ...ActionType) {
	gs.Round.Phase = phase
	gs.Round.Active = id
	p := gs.player(id)
	p.Captains = append(p.Captains, captains...)
	if len(p.Captains) > p.CaptainSlots {
		p.CaptainSlots = len(p.Captains)
	}
}

func requireRejected(t *testing.T, gs *GameState, m Move, sentinel error) {
	t.Helper()
	before := gs.Hash()
	next, _, err := gs.Execute(m)
	require.ErrorIs(t, err, sentinel)
	var ruleErr *RuleError
	require.ErrorAs(t, err, &ruleErr)
	require.Same(t, gs, next, "a rejected move returns the same state")
	require.Equal(t, before, gs.Hash(), "a rejected move must not change the state")
}
