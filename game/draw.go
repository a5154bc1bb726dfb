package game

import "fmt"

// DrawCharts is the first half of the chart action: it draws a batch and
// leaves it pending on the player until KeepCharts picks from it.
type DrawCharts struct {
	Player    int  `yaml:"player"`
	ExtraDraw bool `yaml:"extra_draw,omitempty"`
	ExtraKeep bool `yaml:"extra_keep,omitempty"`
}

func (m DrawCharts) Actor() int     { return m.Player }
func (m DrawCharts) endsTurn() bool { return false }

// Counts returns how many charts are drawn and how many may be kept.
func (m DrawCharts) Counts(gs *GameState) (draw, keep int) {
	draw, keep = gs.Rules.DrawCount, gs.Rules.KeepCount
	if m.ExtraDraw {
		draw++
	}
	if m.ExtraKeep {
		keep++
	}
	return draw, keep
}

func (m DrawCharts) Cost(gs *GameState) int {
	return gs.bribeCost(m.Player, ChartAction, BribeExtraDraw, units(m.ExtraDraw), gs.Rules.BribeCost) +
		gs.bribeCost(m.Player, ChartAction, BribeExtraKeep, units(m.ExtraKeep), gs.Rules.BribeCost)
}

func (m DrawCharts) Validate(gs *GameState) error {
	action := ChartAction.String()
	if err := gs.checkAction(ChartAction, m.Player); err != nil {
		return err
	}
	if gs.Deck.Available() == 0 {
		return reject(action, ErrIllegalMove, "no charts left to draw")
	}
	return gs.checkCost(action, m.Player, m.Cost(gs))
}

func (m DrawCharts) apply(gs *GameState) Outcome {
	p := gs.player(m.Player)
	draw, keep := m.Counts(gs)
	cards := gs.Deck.draw(draw, gs.Shuffler)
	if keep > len(cards) {
		keep = len(cards)
	}
	cost := m.Cost(gs)
	p.spend(cost)
	p.Pending = &PendingDraw{Cards: cards, Keep: keep}
	return Outcome{
		Message:   fmt.Sprintf("%s drew %d charts and may keep %d", p.Name, len(cards), keep),
		Doubloons: -cost,
		Charts:    append([]Chart(nil), cards...),
	}
}

func (m DrawCharts) String() string {
	return fmt.Sprintf("player %d: draw charts", m.Player)
}

// KeepCharts finishes a pending draw. Keep holds indexes into the pending
// cards and must match the keep quota exactly.
type KeepCharts struct {
	Player int   `yaml:"player"`
	Keep   []int `yaml:"keep,flow"`
}

func (m KeepCharts) Actor() int     { return m.Player }
func (m KeepCharts) endsTurn() bool { return true }

func (m KeepCharts) Validate(gs *GameState) error {
	const action = "keep charts"
	if err := gs.checkTurn(action, m.Player, PlayPhase); err != nil {
		return err
	}
	pending := gs.player(m.Player).Pending
	if pending == nil {
		return reject(action, ErrSelection, "no chart draw is pending")
	}
	if len(m.Keep) != pending.Keep {
		return reject(action, ErrSelection, "must keep exactly %d charts, got %d", pending.Keep, len(m.Keep))
	}
	seen := make(map[int]bool, len(m.Keep))
	for _, i := range m.Keep {
		if i < 0 || i >= len(pending.Cards) {
			return reject(action, ErrSelection, "no drawn chart at index %d", i)
		}
		if seen[i] {
			return reject(action, ErrSelection, "chart %d selected twice", i)
		}
		seen[i] = true
	}
	return nil
}

func (m KeepCharts) apply(gs *GameState) Outcome {
	p := gs.player(m.Player)
	kept := make(map[int]bool, len(m.Keep))
	for _, i := range m.Keep {
		kept[i] = true
	}
	var hand []Chart
	for i, c := range p.Pending.Cards {
		if kept[i] {
			hand = append(hand, c)
			p.Hand = append(p.Hand, c)
		} else {
			gs.Deck.discard(c)
		}
	}
	p.Pending = nil
	p.consumeCaptain(ChartAction)
	gs.Round.WindHolder = m.Player
	return Outcome{
		Message: fmt.Sprintf("%s kept %d charts and took the wind", p.Name, len(hand)),
		Charts:  hand,
	}
}

func (m KeepCharts) String() string {
	return fmt.Sprintf("player %d: keep %v", m.Player, m.Keep)
}

func units(bribed bool) int {
	if bribed {
		return 1
	}
	return 0
}
