package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wtheisen/notorious/hex"
)

// playRound places two forfeitable captains each and forfeits them all,
// leaving the game at the start of the pirate phase.
func playRound(t *testing.T, gs *GameState) *GameState {
	t.Helper()
	require.Equal(t, PlacePhase, gs.Round.Phase)
	for gs.Round.Phase == PlacePhase {
		gs = execute(t, gs, PlaceCaptain{Player: gs.Active(), Kind: StealAction})
	}
	require.Equal(t, PlayPhase, gs.Round.Phase)
	for gs.Round.Phase == PlayPhase {
		gs = execute(t, gs, Forfeit{Player: gs.Active(), Kind: StealAction})
	}
	require.Equal(t, PiratePhase, gs.Round.Phase)
	return gs
}

func passPirateTurns(t *testing.T, gs *GameState) *GameState {
	t.Helper()
	for gs.Round.Phase == PiratePhase && !gs.Ended() {
		gs = execute(t, gs, EndPirateTurn{Player: gs.Active()})
	}
	return gs
}

func TestSetupPhase(t *testing.T) {
	t.Run("ports go on open water", func(t *testing.T) {
		gs := newGame(t)
		requireRejected(t, gs, SetupPort{Player: 0, Cell: hex.NewCoord(0, -1)}, ErrIllegalTarget)
		requireRejected(t, gs, SetupPort{Player: 0, Cell: hex.NewCoord(3, 0)}, ErrIllegalTarget)
		gs = execute(t, gs, SetupPort{Player: 0, Cell: westPort})
		requireRejected(t, gs, SetupPort{Player: 1, Cell: westPort}, ErrIllegalTarget)
	})

	t.Run("starting fleet", func(t *testing.T) {
		gs := newGame(t)
		next := execute(t, gs, SetupPort{Player: 0, Cell: westPort})
		require.Equal(t, 1, next.Board.Count(westPort, 0, Port))
		require.Equal(t, 2, next.Board.Count(westPort, 0, Sloop))
		require.Equal(t, gs.Rules.StartingSloops-2, next.Players[0].Sloops)
		require.Equal(t, 1, next.Active())
		require.Equal(t, SetupPhase, next.Round.Phase)
	})

	t.Run("all ports open the first round", func(t *testing.T) {
		gs := newGameWithPorts(t)
		require.Equal(t, 1, gs.Round.Number)
		require.Equal(t, 0, gs.Active())
		require.True(t, gs.SetupComplete())
	})
}

func TestPlacePhase(t *testing.T) {
	t.Run("turns alternate until every slot is filled", func(t *testing.T) {
		gs := newGameWithPorts(t)
		gs = execute(t, gs, PlaceCaptain{Player: 0, Kind: SailAction})
		require.Equal(t, 1, gs.Active())
		require.False(t, gs.PlacementComplete())
		gs = execute(t, gs, PlaceCaptain{Player: 1, Kind: SailAction})
		gs = execute(t, gs, PlaceCaptain{Player: 0, Kind: SailAction})
		gs = execute(t, gs, PlaceCaptain{Player: 1, Kind: ChartAction})
		require.Equal(t, PlayPhase, gs.Round.Phase)
		require.Equal(t, []ActionType{SailAction, SailAction}, gs.Players[0].Captains)
	})

	t.Run("power eligibility", func(t *testing.T) {
		gs := newGameWithPorts(t, PowerDreadPirate, NoPower)
		requireRejected(t, gs, PlaceCaptain{Player: 0, Kind: ChartAction}, ErrIneligible)
	})

	t.Run("slots are a hard limit", func(t *testing.T) {
		gs := newGameWithPorts(t)
		gs.Players[0].Captains = []ActionType{SailAction, BuildAction}
		requireRejected(t, gs, PlaceCaptain{Player: 0, Kind: SinkAction}, ErrCaptainsFull)
	})

	t.Run("reverse direction", func(t *testing.T) {
		gs := newGame(t, NoPower, NoPower, NoPower)
		gs = execute(t, gs, SetupPort{Player: 0, Cell: westPort})
		gs = execute(t, gs, SetupPort{Player: 1, Cell: eastPort})
		gs = execute(t, gs, SetupPort{Player: 2, Cell: hex.NewCoord(0, 2)})
		gs.Round.Direction = Reverse
		gs = execute(t, gs, PlaceCaptain{Player: 0, Kind: SailAction})
		require.Equal(t, 2, gs.Active(), "reverse order wraps to the last seat")
	})
}

func TestPiratePhase(t *testing.T) {
	t.Run("entering scores control and accrues raids", func(t *testing.T) {
		gs := playRound(t, newGameWithPorts(t))
		require.Equal(t, 1, gs.Players[0].Notoriety, "controls its port")
		require.Equal(t, 1, gs.Players[1].Notoriety)
		require.Equal(t, 1, gs.Deck.Raids[0].Accrued)
		require.Len(t, gs.Deck.Reserve, 1, "nobody is notorious enough for the second raid")
		require.False(t, gs.Round.FinalRound)
		require.Equal(t, 0, gs.Active())
	})

	t.Run("governor scores islands higher", func(t *testing.T) {
		gs := newGameWithPorts(t, PowerGovernor, NoPower)
		put(t, gs, hex.NewCoord(0, -1), 0, Sloop, 1)
		gs = playRound(t, gs)
		require.Equal(t, 3, gs.Players[0].Notoriety, "port plus Tortuga at two")
	})

	t.Run("second raid revealed at the threshold", func(t *testing.T) {
		gs := newGameWithPorts(t)
		gs.Players[1].Notoriety = gs.Rules.RevealThreshold - 1
		gs = playRound(t, gs)
		require.Len(t, gs.Deck.Raids, 2)
		require.Empty(t, gs.Deck.Reserve)
	})

	t.Run("next round starts with the next seat", func(t *testing.T) {
		gs := passPirateTurns(t, playRound(t, newGameWithPorts(t)))
		require.Equal(t, PlacePhase, gs.Round.Phase)
		require.Equal(t, 2, gs.Round.Number)
		require.Equal(t, 1, gs.Round.First)
		require.Equal(t, 1, gs.Active())
	})

	t.Run("win threshold finishes the round then ends the game", func(t *testing.T) {
		gs := newGameWithPorts(t)
		gs.Players[0].Notoriety = gs.Rules.WinThreshold - 1
		gs = playRound(t, gs)
		require.True(t, gs.Round.FinalRound)
		require.False(t, gs.Ended(), "pirate turns still happen")

		gs = execute(t, gs, EndPirateTurn{Player: 0})
		require.False(t, gs.Ended())
		gs = execute(t, gs, EndPirateTurn{Player: 1})
		require.True(t, gs.Ended())
		require.Equal(t, "Player1", gs.Winner())
		require.Equal(t, []int{0}, gs.Winners())
		require.Empty(t, gs.LegalMoves())
		requireRejected(t, gs, PlaceCaptain{Player: 0, Kind: SailAction}, ErrGameOver)
	})
}

func TestStandings(t *testing.T) {
	gs := newGame(t, NoPower, NoPower, NoPower)
	gs.Players[0].Notoriety, gs.Players[0].Doubloons = 10, 1
	gs.Players[1].Notoriety, gs.Players[1].Doubloons = 10, 4
	gs.Players[2].Notoriety, gs.Players[2].Doubloons = 12, 0
	require.Equal(t, []int{2, 1, 0}, gs.Standings())
	require.Empty(t, gs.Winner(), "no winner while the game runs")

	gs.Round.Ended = true
	require.Equal(t, "Player3", gs.Winner())

	gs.Players[1].Notoriety, gs.Players[1].Doubloons = 12, 0
	require.Equal(t, []int{1, 2}, gs.Winners())
	require.Empty(t, gs.Winner(), "a shared top standing has no single winner")
}

func TestCaptainUnlock(t *testing.T) {
	thresholds := []int{5, 12}

	t.Run("one threshold crossed once", func(t *testing.T) {
		p := Player{Notoriety: 4, CaptainSlots: 2}
		p.gainNotoriety(2, thresholds)
		require.Equal(t, 6, p.Notoriety)
		require.Equal(t, 3, p.CaptainSlots)
		p.gainNotoriety(1, thresholds)
		require.Equal(t, 3, p.CaptainSlots, "already past the threshold")
	})

	t.Run("landing on a threshold counts", func(t *testing.T) {
		p := Player{Notoriety: 4, CaptainSlots: 2}
		p.gainNotoriety(1, thresholds)
		require.Equal(t, 3, p.CaptainSlots)
	})

	t.Run("two thresholds in one gain", func(t *testing.T) {
		p := Player{Notoriety: 4, CaptainSlots: 2}
		p.gainNotoriety(9, thresholds)
		require.Equal(t, 4, p.CaptainSlots)
	})
}

func TestWindToken(t *testing.T) {
	gs := newGameWithPorts(t)
	requireRejected(t, gs, UseWindToken{Player: 1}, ErrNoToken)

	gs.Round.WindHolder = 1
	next, _, err := gs.Execute(UseWindToken{Player: 1})
	require.NoError(t, err, "the holder may use it out of turn")
	require.Equal(t, Reverse, next.Round.Direction)
	require.Equal(t, -1, next.Round.WindHolder)
	require.Equal(t, gs.Active(), next.Active())
	requireRejected(t, next, UseWindToken{Player: 1}, ErrNoToken)
}
