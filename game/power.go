package game

import (
	"fmt"
	"sort"
)

// PowerID names an entry in the power table. The empty ID is the plain
// captain with no overrides.
type PowerID string

const (
	NoPower            PowerID = ""
	PowerNavigator     PowerID = "navigator"
	PowerSmuggler      PowerID = "smuggler"
	PowerCorsair       PowerID = "corsair"
	PowerShipwright    PowerID = "shipwright"
	PowerQuartermaster PowerID = "quartermaster"
	PowerGovernor      PowerID = "governor"
	PowerDreadPirate   PowerID = "dread_pirate"
)

// BribeItem identifies what a bribe buys.
type BribeItem int

const (
	BribeMovement BribeItem = iota
	BribeExtraSloop
	BribeRelocate
	BribeExtraSink
	BribeExtraDraw
	BribeExtraKeep
)

// BribeContext is passed to a power's cost override. Standard is the cost
// under the base rules.
type BribeContext struct {
	Action   ActionType
	Item     BribeItem
	Units    int
	Standard int
}

// LossKind says how a ship left the board against its owner's will.
type LossKind int

const (
	LostToSink LossKind = iota
	LostToSteal
)

// Power is a bundle of rule overrides bound to one player for the whole
// game. Nil hooks fall through to the base rules.
type Power struct {
	ID          PowerID
	Description string

	SailRange         func(base int) int
	IgnoreIslandEdges bool
	Eligible          func(action ActionType) bool
	BribeCost         func(ctx BribeContext) int
	OnShipLost        func(p *Player, kind ShipKind, how LossKind)
	ControlNotoriety  func(cell *Cell, base int) int
	SinkNotoriety     func(kind ShipKind, base int) int
}

func (p Power) sailRange(base int) int {
	if p.SailRange == nil {
		return base
	}
	return p.SailRange(base)
}

func (p Power) eligible(action ActionType) bool {
	return p.Eligible == nil || p.Eligible(action)
}

func (p Power) bribeCost(ctx BribeContext) int {
	if p.BribeCost == nil || ctx.Units == 0 {
		return ctx.Standard
	}
	if cost := p.BribeCost(ctx); cost > 0 {
		return cost
	}
	return 0
}

func (p Power) shipLost(player *Player, kind ShipKind, how LossKind) {
	if p.OnShipLost != nil {
		p.OnShipLost(player, kind, how)
	}
}

func (p Power) controlNotoriety(cell *Cell, base int) int {
	if p.ControlNotoriety == nil {
		return base
	}
	return p.ControlNotoriety(cell, base)
}

func (p Power) sinkNotoriety(kind ShipKind, base int) int {
	if p.SinkNotoriety == nil {
		return base
	}
	return p.SinkNotoriety(kind, base)
}

var powers = map[PowerID]Power{
	NoPower: {
		ID:          NoPower,
		Description: "No special ability.",
	},
	PowerNavigator: {
		ID:          PowerNavigator,
		Description: "Sails one extra hex.",
		SailRange:   func(base int) int { return base + 1 },
	},
	PowerSmuggler: {
		ID:                PowerSmuggler,
		Description:       "Sails across island edges.",
		IgnoreIslandEdges: true,
	},
	PowerCorsair: {
		ID:          PowerCorsair,
		Description: "Moves a sloop before sinking for free.",
		BribeCost: func(ctx BribeContext) int {
			if ctx.Item == BribeRelocate {
				return 0
			}
			return ctx.Standard
		},
	},
	PowerShipwright: {
		ID:          PowerShipwright,
		Description: "The first extra sloop of a build is free.",
		BribeCost: func(ctx BribeContext) int {
			if ctx.Item == BribeExtraSloop {
				return ctx.Standard / ctx.Units * (ctx.Units - 1)
			}
			return ctx.Standard
		},
	},
	PowerQuartermaster: {
		ID:          PowerQuartermaster,
		Description: "Gains a doubloon whenever one of its ships is sunk or stolen.",
		OnShipLost: func(p *Player, _ ShipKind, _ LossKind) {
			p.Doubloons++
		},
	},
	PowerGovernor: {
		ID:          PowerGovernor,
		Description: "Controlled island cells are worth one extra notoriety.",
		ControlNotoriety: func(cell *Cell, base int) int {
			if cell.Island != nil {
				return base + 1
			}
			return base
		},
	},
	PowerDreadPirate: {
		ID:          PowerDreadPirate,
		Description: "Earns one extra notoriety for a rewarded sink but never draws charts.",
		Eligible:    func(action ActionType) bool { return action != ChartAction },
		SinkNotoriety: func(_ ShipKind, base int) int {
			if base > 0 {
				return base + 1
			}
			return 0
		},
	},
}

// LookupPower resolves id in the power table.
func LookupPower(id PowerID) (Power, error) {
	p, ok := powers[id]
	if !ok {
		return Power{}, fmt.Errorf("unknown power %q", id)
	}
	return p, nil
}

// Powers lists every known power ID in name order.
func Powers() []PowerID {
	ids := make([]PowerID, 0, len(powers))
	for id := range powers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func powerOf(p *Player) Power {
	power, err := LookupPower(p.Power)
	if err != nil {
		panic(err)
	}
	return power
}
