package game

import (
	"github.com/wtheisen/notorious/hex"
	"github.com/wtheisen/notorious/utils"
)

// Player is one seat at the table. ID is the seat index.
type Player struct {
	ID           int          `yaml:"id"`
	Name         string       `yaml:"name"`
	Power        PowerID      `yaml:"power,omitempty"`
	Notoriety    int          `yaml:"notoriety"`
	Doubloons    int          `yaml:"doubloons"`
	CaptainSlots int          `yaml:"captain_slots"`
	Captains     []ActionType `yaml:"captains,flow"` // committed and not yet used
	Sloops       int          `yaml:"sloops"`        // unplaced
	Galleons     int          `yaml:"galleons"`      // unplaced
	HasPort      bool         `yaml:"has_port"`
	Port         hex.Coord    `yaml:"port,flow"`
	Hand         []Chart      `yaml:"hand,omitempty"`
	Pending      *PendingDraw `yaml:"pending,omitempty"`
}

// PendingDraw is the first half of a chart draw awaiting a selection.
type PendingDraw struct {
	Cards []Chart `yaml:"cards"`
	Keep  int     `yaml:"keep"`
}

// Copy returns a deep copy of p.
func (p Player) Copy() Player {
	p.Captains = append([]ActionType(nil), p.Captains...)
	p.Hand = append([]Chart(nil), p.Hand...)
	if p.Pending != nil {
		pending := PendingDraw{Cards: append([]Chart(nil), p.Pending.Cards...), Keep: p.Pending.Keep}
		p.Pending = &pending
	}
	return p
}

// HasCaptain reports whether p holds an unused captain committed to kind.
func (p *Player) HasCaptain(kind ActionType) bool {
	return utils.FindIndex(p.Captains, kind) >= 0
}

// consumeCaptain removes one committed captain of kind.
func (p *Player) consumeCaptain(kind ActionType) {
	i := utils.FindIndex(p.Captains, kind)
	if i < 0 {
		panic("consumeCaptain: player has no captain committed to " + kind.String())
	}
	p.Captains = utils.RemoveAt(p.Captains, i)
}

// Inventory returns how many unplaced ships of kind p holds.
func (p *Player) Inventory(kind ShipKind) int {
	switch kind {
	case Sloop:
		return p.Sloops
	case Galleon:
		return p.Galleons
	}
	return 0
}

func (p *Player) adjustInventory(kind ShipKind, delta int) {
	switch kind {
	case Sloop:
		p.Sloops += delta
	case Galleon:
		p.Galleons += delta
	default:
		panic("adjustInventory: " + kind.String() + " is not held in inventory")
	}
	if p.Sloops < 0 || p.Galleons < 0 {
		panic("adjustInventory: negative inventory")
	}
}

// gainNotoriety adds amount and unlocks one captain slot for every threshold
// crossed by this gain.
func (p *Player) gainNotoriety(amount int, thresholds []int) {
	if amount <= 0 {
		return
	}
	before := p.Notoriety
	p.Notoriety += amount
	for _, t := range thresholds {
		if before < t && p.Notoriety >= t {
			p.CaptainSlots++
		}
	}
}

func (p *Player) spend(doubloons int) {
	if doubloons > p.Doubloons {
		panic("spend: player cannot cover the cost")
	}
	p.Doubloons -= doubloons
}

// handIndex returns the position of chart id in p's hand, or -1.
func (p *Player) handIndex(id int) int {
	for i, c := range p.Hand {
		if c.ID == id {
			return i
		}
	}
	return -1
}
