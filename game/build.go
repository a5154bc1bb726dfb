package game

import (
	"fmt"

	"github.com/wtheisen/notorious/hex"
)

// Build launches ships from inventory onto one cell: the rules' sloop batch
// or a galleon, plus one extra sloop per bribe.
type Build struct {
	Player      int       `yaml:"player"`
	Cell        hex.Coord `yaml:"cell,flow"`
	Galleon     bool      `yaml:"galleon,omitempty"`
	ExtraSloops int       `yaml:"extra_sloops,omitempty"`
}

func (m Build) Actor() int     { return m.Player }
func (m Build) endsTurn() bool { return true }

// Ships returns how many sloops and galleons the build places.
func (m Build) Ships(gs *GameState) (sloops, galleons int) {
	if m.Galleon {
		return m.ExtraSloops, gs.Rules.BuildGalleons
	}
	return gs.Rules.BuildSloops + m.ExtraSloops, 0
}

func (m Build) Cost(gs *GameState) int {
	return gs.bribeCost(m.Player, BuildAction, BribeExtraSloop, m.ExtraSloops, gs.Rules.BribeCost)
}

func (m Build) Validate(gs *GameState) error {
	action := BuildAction.String()
	if err := gs.checkAction(BuildAction, m.Player); err != nil {
		return err
	}
	if m.ExtraSloops < 0 {
		return reject(action, ErrIllegalMove, "extra sloops cannot be negative")
	}
	if gs.Board.Cell(m.Cell) == nil {
		return reject(action, ErrIllegalTarget, "%v is off the board", m.Cell)
	}
	p := gs.player(m.Player)
	ownPort := p.HasPort && p.Port == m.Cell
	if !ownPort {
		if !gs.Board.HasPresence(m.Cell, m.Player) {
			return reject(action, ErrIllegalTarget, "%v holds none of %s's ships", m.Cell, p.Name)
		}
		if gs.Board.HasForeign(m.Cell, m.Player) {
			return reject(action, ErrIllegalTarget, "%v is contested", m.Cell)
		}
	}
	sloops, galleons := m.Ships(gs)
	if sloops > p.Sloops || galleons > p.Galleons {
		return reject(action, ErrInventory, "%s has %d sloops and %d galleons left", p.Name, p.Sloops, p.Galleons)
	}
	return gs.checkCost(action, m.Player, m.Cost(gs))
}

func (m Build) apply(gs *GameState) Outcome {
	p := gs.player(m.Player)
	sloops, galleons := m.Ships(gs)
	for i := 0; i < sloops; i++ {
		mustPlace(&gs.Board, m.Cell, Ship{Kind: Sloop, Owner: m.Player})
	}
	for i := 0; i < galleons; i++ {
		mustPlace(&gs.Board, m.Cell, Ship{Kind: Galleon, Owner: m.Player})
	}
	p.adjustInventory(Sloop, -sloops)
	p.adjustInventory(Galleon, -galleons)
	cost := m.Cost(gs)
	p.spend(cost)
	p.consumeCaptain(BuildAction)
	return Outcome{
		Message:   fmt.Sprintf("%s built %d sloops and %d galleons at %v", p.Name, sloops, galleons, m.Cell),
		Doubloons: -cost,
	}
}

func (m Build) String() string {
	if m.Galleon {
		return fmt.Sprintf("player %d: build galleon at %v (+%d)", m.Player, m.Cell, m.ExtraSloops)
	}
	return fmt.Sprintf("player %d: build sloops at %v (+%d)", m.Player, m.Cell, m.ExtraSloops)
}
