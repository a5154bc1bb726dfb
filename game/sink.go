package game

import (
	"fmt"

	"github.com/wtheisen/notorious/hex"
)

// Hop is a single-hex sloop move.
type Hop struct {
	From hex.Coord `yaml:"from,flow"`
	To   hex.Coord `yaml:"to,flow"`
}

// SinkTarget names a ship to sink by owner and kind.
type SinkTarget struct {
	Victim int      `yaml:"victim"`
	Kind   ShipKind `yaml:"kind"`
}

// Sink removes opposing ships from a cell where the player has a presence.
// A bribe may first move one of the player's sloops one hex, and a second
// bribe sinks one more ship on the same cell.
type Sink struct {
	Player   int         `yaml:"player"`
	Cell     hex.Coord   `yaml:"cell,flow"`
	Victim   int         `yaml:"victim"`
	Kind     ShipKind    `yaml:"kind"`
	Relocate *Hop        `yaml:"relocate,omitempty"`
	Extra    *SinkTarget `yaml:"extra,omitempty"`
}

func (m Sink) Actor() int     { return m.Player }
func (m Sink) endsTurn() bool { return true }

// Cost prices the relocation and the extra sink separately and adds them.
func (m Sink) Cost(gs *GameState) int {
	cost := 0
	if m.Relocate != nil {
		cost += gs.bribeCost(m.Player, SinkAction, BribeRelocate, 1, gs.Rules.RelocateCost)
	}
	if m.Extra != nil {
		cost += gs.bribeCost(m.Player, SinkAction, BribeExtraSink, 1, gs.Rules.ExtraSinkCost)
	}
	return cost
}

func (m Sink) targets() []SinkTarget {
	targets := []SinkTarget{{Victim: m.Victim, Kind: m.Kind}}
	if m.Extra != nil {
		targets = append(targets, *m.Extra)
	}
	return targets
}

type sunk struct {
	SinkTarget
	notoriety int
}

func (m Sink) Validate(gs *GameState) error {
	action := SinkAction.String()
	if err := gs.checkAction(SinkAction, m.Player); err != nil {
		return err
	}
	if gs.Board.Cell(m.Cell) == nil {
		return reject(action, ErrIllegalTarget, "%v is off the board", m.Cell)
	}
	if err := gs.checkCost(action, m.Player, m.Cost(gs)); err != nil {
		return err
	}
	board := gs.Board.Copy()
	_, err := m.resolve(gs, &board)
	return err
}

// resolve plays the relocation and every sink on b and works out the
// rewards. Rewards compare notoriety as it stood before the action.
func (m Sink) resolve(gs *GameState, b *Board) ([]sunk, error) {
	action := SinkAction.String()
	actor := gs.player(m.Player)
	power := powerOf(actor)

	if hop := m.Relocate; hop != nil {
		if b.Count(hop.From, m.Player, Sloop) == 0 {
			return nil, reject(action, ErrNoShips, "no sloop of yours at %v", hop.From)
		}
		if err := b.MoveShip(hop.From, hop.To, Ship{Kind: Sloop, Owner: m.Player}, power.IgnoreIslandEdges); err != nil {
			return nil, reject(action, ErrIllegalMove, "%v", err)
		}
	}

	var results []sunk
	for _, t := range m.targets() {
		if !gs.validSeat(t.Victim) || t.Victim == m.Player {
			return nil, reject(action, ErrIllegalTarget, "seat %d is not an opponent", t.Victim)
		}
		if !t.Kind.Mobile() {
			return nil, reject(action, ErrIllegalTarget, "a %s cannot be sunk", t.Kind)
		}
		if !b.HasPresence(m.Cell, m.Player) {
			return nil, reject(action, ErrNoShips, "none of your ships are at %v", m.Cell)
		}
		victim := gs.player(t.Victim)
		if b.Count(m.Cell, t.Victim, t.Kind) == 0 {
			return nil, reject(action, ErrNoShips, "%s has no %s at %v", victim.Name, t.Kind, m.Cell)
		}
		if t.Kind == Galleon {
			if mine, theirs := b.Influence(m.Cell, m.Player), b.Influence(m.Cell, t.Victim); mine < theirs {
				return nil, reject(action, ErrInfluence, "influence %d is below %s's %d", mine, victim.Name, theirs)
			}
		}
		mustRemove(b, m.Cell, Ship{Kind: t.Kind, Owner: t.Victim})
		reward := 0
		if victim.Notoriety >= actor.Notoriety {
			reward = power.sinkNotoriety(t.Kind, gs.Rules.SinkNotoriety(t.Kind))
		}
		results = append(results, sunk{SinkTarget: t, notoriety: reward})
	}
	return results, nil
}

func (m Sink) apply(gs *GameState) Outcome {
	results, err := m.resolve(gs, &gs.Board)
	if err != nil {
		panic(err)
	}
	p := gs.player(m.Player)
	cost := m.Cost(gs)
	p.spend(cost)
	gained := 0
	for _, r := range results {
		victim := gs.player(r.Victim)
		victim.adjustInventory(r.Kind, 1)
		powerOf(victim).shipLost(victim, r.Kind, LostToSink)
		gained += r.notoriety
	}
	p.gainNotoriety(gained, gs.Rules.CaptainThresholds)
	p.consumeCaptain(SinkAction)
	return Outcome{
		Message:   fmt.Sprintf("%s sank %d ships at %v", p.Name, len(results), m.Cell),
		Notoriety: gained,
		Doubloons: -cost,
	}
}

func (m Sink) String() string {
	return fmt.Sprintf("player %d: sink %s of %d at %v", m.Player, m.Kind, m.Victim, m.Cell)
}
