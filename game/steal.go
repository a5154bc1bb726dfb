package game

import (
	"fmt"

	"github.com/wtheisen/notorious/hex"
)

// Steal sends an opposing sloop on a shared cell back to its owner's
// inventory, optionally putting one of the thief's own sloops in its place.
type Steal struct {
	Player     int       `yaml:"player"`
	Cell       hex.Coord `yaml:"cell,flow"`
	Victim     int       `yaml:"victim"`
	PlaceSloop bool      `yaml:"place_sloop,omitempty"`
}

func (m Steal) Actor() int     { return m.Player }
func (m Steal) endsTurn() bool { return true }

func (m Steal) Validate(gs *GameState) error {
	action := StealAction.String()
	if err := gs.checkAction(StealAction, m.Player); err != nil {
		return err
	}
	if !gs.validSeat(m.Victim) || m.Victim == m.Player {
		return reject(action, ErrIllegalTarget, "seat %d is not an opponent", m.Victim)
	}
	if gs.Board.Cell(m.Cell) == nil {
		return reject(action, ErrIllegalTarget, "%v is off the board", m.Cell)
	}
	if !gs.Board.HasPresence(m.Cell, m.Player) {
		return reject(action, ErrNoShips, "none of your ships are at %v", m.Cell)
	}
	if gs.Board.Count(m.Cell, m.Victim, Sloop) == 0 {
		return reject(action, ErrNoShips, "%s has no sloop at %v", gs.Players[m.Victim].Name, m.Cell)
	}
	if m.PlaceSloop && gs.player(m.Player).Sloops == 0 {
		return reject(action, ErrInventory, "no sloops left to place")
	}
	return nil
}

func (m Steal) apply(gs *GameState) Outcome {
	p, victim := gs.player(m.Player), gs.player(m.Victim)
	mustRemove(&gs.Board, m.Cell, Ship{Kind: Sloop, Owner: m.Victim})
	victim.adjustInventory(Sloop, 1)
	powerOf(victim).shipLost(victim, Sloop, LostToSteal)
	if m.PlaceSloop {
		mustPlace(&gs.Board, m.Cell, Ship{Kind: Sloop, Owner: m.Player})
		p.adjustInventory(Sloop, -1)
	}
	p.consumeCaptain(StealAction)
	return Outcome{Message: fmt.Sprintf("%s stole a sloop from %s at %v", p.Name, victim.Name, m.Cell)}
}

func (m Steal) String() string {
	return fmt.Sprintf("player %d: steal from %d at %v", m.Player, m.Victim, m.Cell)
}
