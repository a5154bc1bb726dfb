package game

import (
	"fmt"

	"github.com/wtheisen/notorious/hex"
)

// SetupPort places a player's port and starting fleet during setup.
type SetupPort struct {
	Player int       `yaml:"player"`
	Cell   hex.Coord `yaml:"cell,flow"`
}

func (m SetupPort) Actor() int     { return m.Player }
func (m SetupPort) endsTurn() bool { return true }

func (m SetupPort) Validate(gs *GameState) error {
	const action = "place port"
	if err := gs.checkTurn(action, m.Player, SetupPhase); err != nil {
		return err
	}
	p := gs.player(m.Player)
	if p.HasPort {
		return reject(action, ErrIllegalMove, "%s already has a port", p.Name)
	}
	cell := gs.Board.Cell(m.Cell)
	switch {
	case cell == nil:
		return reject(action, ErrIllegalTarget, "%v is off the board", m.Cell)
	case cell.Island != nil:
		return reject(action, ErrIllegalTarget, "%v is the island %s", m.Cell, cell.Island.Name)
	case len(cell.Ships) > 0:
		return reject(action, ErrIllegalTarget, "%v is occupied", m.Cell)
	case p.Sloops < gs.Rules.StartingFleet:
		return reject(action, ErrInventory, "%s has only %d sloops", p.Name, p.Sloops)
	}
	return nil
}

func (m SetupPort) apply(gs *GameState) Outcome {
	p := gs.player(m.Player)
	mustPlace(&gs.Board, m.Cell, Ship{Kind: Port, Owner: m.Player})
	for i := 0; i < gs.Rules.StartingFleet; i++ {
		mustPlace(&gs.Board, m.Cell, Ship{Kind: Sloop, Owner: m.Player})
		p.adjustInventory(Sloop, -1)
	}
	p.HasPort = true
	p.Port = m.Cell
	return Outcome{Message: fmt.Sprintf("%s founded a port at %v", p.Name, m.Cell)}
}

func (m SetupPort) String() string {
	return fmt.Sprintf("player %d: port at %v", m.Player, m.Cell)
}

func mustPlace(b *Board, c hex.Coord, ship Ship) {
	if err := b.PlaceShip(c, ship); err != nil {
		panic(err)
	}
}

func mustRemove(b *Board, c hex.Coord, ship Ship) {
	if err := b.RemoveShip(c, ship); err != nil {
		panic(err)
	}
}
