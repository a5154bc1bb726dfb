package game

import (
	"fmt"

	"github.com/wtheisen/notorious/hex"
)

// ShipMove sails one ship along Path. Path starts at the ship's current cell
// and every step is one hop.
type ShipMove struct {
	Kind ShipKind    `yaml:"kind"`
	Path []hex.Coord `yaml:"path,flow"`
}

func (s ShipMove) hops() int {
	return len(s.Path) - 1
}

// Sail moves any number of the player's mobile ships. The total number of
// hops is bounded by the sail range plus one hop per bribe.
type Sail struct {
	Player int        `yaml:"player"`
	Moves  []ShipMove `yaml:"moves"`
	Bribes int        `yaml:"bribes,omitempty"`
}

func (m Sail) Actor() int     { return m.Player }
func (m Sail) endsTurn() bool { return true }

// Budget is the number of hops the move may spend.
func (m Sail) Budget(gs *GameState) int {
	return powerOf(gs.player(m.Player)).sailRange(gs.Rules.SailRange) + m.Bribes
}

// Cost is the doubloon price of the bribed hops.
func (m Sail) Cost(gs *GameState) int {
	return gs.bribeCost(m.Player, SailAction, BribeMovement, m.Bribes, gs.Rules.BribeCost)
}

func (m Sail) Validate(gs *GameState) error {
	action := SailAction.String()
	if err := gs.checkAction(SailAction, m.Player); err != nil {
		return err
	}
	if m.Bribes < 0 {
		return reject(action, ErrIllegalMove, "bribes cannot be negative")
	}
	if len(m.Moves) == 0 {
		return reject(action, ErrIllegalMove, "no ships to sail")
	}
	hops := 0
	for _, mv := range m.Moves {
		if !mv.Kind.Mobile() {
			return reject(action, ErrIllegalMove, "a %s does not sail", mv.Kind)
		}
		if len(mv.Path) < 2 {
			return reject(action, ErrIllegalMove, "a %s must sail at least one hex", mv.Kind)
		}
		hops += mv.hops()
	}
	if budget := m.Budget(gs); hops > budget {
		return reject(action, ErrIllegalMove, "%d hops exceed the budget of %d", hops, budget)
	}
	if err := gs.checkCost(action, m.Player, m.Cost(gs)); err != nil {
		return err
	}
	board := gs.Board.Copy()
	return m.sail(gs, &board)
}

// sail plays every hop on b in order, stopping at the first illegal one.
func (m Sail) sail(gs *GameState, b *Board) error {
	action := SailAction.String()
	ignore := powerOf(gs.player(m.Player)).IgnoreIslandEdges
	for _, mv := range m.Moves {
		ship := Ship{Kind: mv.Kind, Owner: m.Player}
		for i := 1; i < len(mv.Path); i++ {
			from, to := mv.Path[i-1], mv.Path[i]
			if b.Count(from, m.Player, mv.Kind) == 0 {
				return reject(action, ErrNoShips, "no %s of yours at %v", mv.Kind, from)
			}
			if err := b.MoveShip(from, to, ship, ignore); err != nil {
				return reject(action, ErrIllegalMove, "%v", err)
			}
		}
	}
	return nil
}

func (m Sail) apply(gs *GameState) Outcome {
	if err := m.sail(gs, &gs.Board); err != nil {
		panic(err)
	}
	p := gs.player(m.Player)
	cost := m.Cost(gs)
	p.spend(cost)
	p.consumeCaptain(SailAction)
	return Outcome{
		Message:   fmt.Sprintf("%s sailed %d ships", p.Name, len(m.Moves)),
		Doubloons: -cost,
	}
}

func (m Sail) String() string {
	return fmt.Sprintf("player %d: sail %d ships (+%d)", m.Player, len(m.Moves), m.Bribes)
}
