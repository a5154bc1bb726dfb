package game

import (
	"fmt"

	"github.com/wtheisen/notorious/utils"
)

// checkInvariants panics if an executed move left the state inconsistent.
// A panic here is an engine bug, never a player error.
func (gs *GameState) checkInvariants() {
	for i := range gs.Board.Cells {
		if c := gs.Board.Cells[i].Coord; !c.Valid() {
			panic(fmt.Sprintf("invariant: cell %v is not a cube coordinate", c))
		}
	}
	for i := range gs.Players {
		p := &gs.Players[i]
		if got := p.Sloops + gs.Board.Fleet(p.ID, Sloop); got != gs.Rules.StartingSloops {
			panic(fmt.Sprintf("invariant: %s has %d sloops in total, want %d", p.Name, got, gs.Rules.StartingSloops))
		}
		if got := p.Galleons + gs.Board.Fleet(p.ID, Galleon); got != gs.Rules.StartingGalleons {
			panic(fmt.Sprintf("invariant: %s has %d galleons in total, want %d", p.Name, got, gs.Rules.StartingGalleons))
		}
		ports := gs.Board.Fleet(p.ID, Port)
		if (p.HasPort && ports != 1) || (!p.HasPort && ports != 0) {
			panic(fmt.Sprintf("invariant: %s has %d ports on the board", p.Name, ports))
		}
		if len(p.Captains) > p.CaptainSlots {
			panic(fmt.Sprintf("invariant: %s placed %d captains in %d slots", p.Name, len(p.Captains), p.CaptainSlots))
		}
		if p.Doubloons < 0 {
			panic(fmt.Sprintf("invariant: %s owes %d doubloons", p.Name, -p.Doubloons))
		}
		if p.Pending != nil && !p.HasCaptain(ChartAction) {
			panic(fmt.Sprintf("invariant: %s has a pending draw without a chart captain", p.Name))
		}
	}
	if held := utils.Count(gs.Players, func(p Player) bool { return p.Pending != nil }); held > 1 {
		panic(fmt.Sprintf("invariant: %d chart draws pending at once", held))
	}
}
