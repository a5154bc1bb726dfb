package game

import (
	"fmt"

	"github.com/wtheisen/notorious/hex"
)

// ClaimChart cashes in a chart from the player's hand or a public raid.
type ClaimChart struct {
	Player int `yaml:"player"`
	Chart  int `yaml:"chart"`
}

func (m ClaimChart) Actor() int     { return m.Player }
func (m ClaimChart) endsTurn() bool { return false }

// find locates the chart, reporting whether it is a public raid.
func (m ClaimChart) find(gs *GameState) (Chart, bool, bool) {
	p := gs.player(m.Player)
	if i := p.handIndex(m.Chart); i >= 0 {
		return p.Hand[i], false, true
	}
	if i := gs.Deck.raidIndex(m.Chart); i >= 0 {
		return gs.Deck.Raids[i], true, true
	}
	return Chart{}, false, false
}

func (m ClaimChart) Validate(gs *GameState) error {
	const action = "claim chart"
	if err := gs.checkTurn(action, m.Player, PiratePhase); err != nil {
		return err
	}
	chart, _, ok := m.find(gs)
	if !ok {
		return reject(action, ErrIllegalTarget, "chart %d is neither held nor public", m.Chart)
	}
	_, err := gs.ChartReward(m.Player, chart)
	return err
}

func (m ClaimChart) apply(gs *GameState) Outcome {
	chart, public, _ := m.find(gs)
	out, err := gs.ChartReward(m.Player, chart)
	if err != nil {
		panic(err)
	}
	p := gs.player(m.Player)
	if public {
		i := gs.Deck.raidIndex(chart.ID)
		gs.Deck.Raids = append(gs.Deck.Raids[:i:i], gs.Deck.Raids[i+1:]...)
	} else {
		i := p.handIndex(chart.ID)
		p.Hand = append(p.Hand[:i:i], p.Hand[i+1:]...)
		gs.Deck.discard(chart)
	}
	p.Doubloons += out.Doubloons
	p.gainNotoriety(out.Notoriety, gs.Rules.CaptainThresholds)
	return out
}

func (m ClaimChart) String() string {
	return fmt.Sprintf("player %d: claim chart %d", m.Player, m.Chart)
}

// ChartReward checks whether seat id meets c's objective on the current board
// and returns the reward it would pay.
func (gs *GameState) ChartReward(id int, c Chart) (Outcome, error) {
	const action = "claim chart"
	if !gs.validSeat(id) {
		return Outcome{}, reject(action, ErrUnknownPlayer, "no player in seat %d", id)
	}
	b := &gs.Board
	name := gs.Players[id].Name
	switch c.Kind {
	case TreasureMap:
		if err := gs.holdsWithGalleon(id, c.Target); err != nil {
			return Outcome{}, err
		}
		return Outcome{
			Message:   fmt.Sprintf("%s dug up the treasure at %v", name, c.Target),
			Doubloons: len(gs.Players),
			Charts:    []Chart{c},
		}, nil

	case IslandRaid:
		cell, ok := b.IslandCell(c.Island)
		if !ok {
			return Outcome{}, reject(action, ErrObjective, "no island named %s", c.Island)
		}
		if err := gs.holdsWithGalleon(id, cell); err != nil {
			return Outcome{}, err
		}
		if c.Accrued < gs.Rules.RaidMinimum {
			return Outcome{}, reject(action, ErrObjective, "the raid on %s has only accrued %d", c.Island, c.Accrued)
		}
		return Outcome{
			Message:   fmt.Sprintf("%s raided %s", name, c.Island),
			Notoriety: c.Notoriety + c.Accrued,
			Charts:    []Chart{c},
		}, nil

	case SmugglerRoute:
		from, okA := b.IslandCell(c.IslandA)
		to, okB := b.IslandCell(c.IslandB)
		if !okA || !okB {
			return Outcome{}, reject(action, ErrObjective, "unknown islands %s and %s", c.IslandA, c.IslandB)
		}
		path := b.FindPath(from, to)
		if len(path) == 0 {
			return Outcome{}, reject(action, ErrObjective, "no open route from %s to %s", c.IslandA, c.IslandB)
		}
		for _, step := range path {
			if !b.HasPresence(step, id) {
				return Outcome{}, reject(action, ErrObjective, "the route needs a ship at %v", step)
			}
		}
		return Outcome{
			Message:   fmt.Sprintf("%s ran the route %s-%s", name, c.IslandA, c.IslandB),
			Doubloons: len(path),
			Charts:    []Chart{c},
		}, nil
	}
	panic(fmt.Sprintf("ChartReward: unknown chart kind %v", c.Kind))
}

func (gs *GameState) holdsWithGalleon(id int, c hex.Coord) error {
	const action = "claim chart"
	if gs.Board.Count(c, id, Galleon) == 0 {
		return reject(action, ErrObjective, "needs a galleon at %v", c)
	}
	if owner, ok := gs.Board.Controller(c); !ok || owner != id {
		return reject(action, ErrObjective, "%v is not controlled by %s", c, gs.Players[id].Name)
	}
	return nil
}

// EndPirateTurn closes the player's pirate turn.
type EndPirateTurn struct {
	Player int `yaml:"player"`
}

func (m EndPirateTurn) Actor() int     { return m.Player }
func (m EndPirateTurn) endsTurn() bool { return true }

func (m EndPirateTurn) Validate(gs *GameState) error {
	return gs.checkTurn("end pirate turn", m.Player, PiratePhase)
}

func (m EndPirateTurn) apply(gs *GameState) Outcome {
	gs.Round.Passed[m.Player] = true
	return Outcome{Message: fmt.Sprintf("%s ended their pirate turn", gs.Players[m.Player].Name)}
}

func (m EndPirateTurn) String() string {
	return fmt.Sprintf("player %d: end pirate turn", m.Player)
}

// UseWindToken spends the wind token to reverse the turn direction. The
// holder may use it at any time, not only on their own turn.
type UseWindToken struct {
	Player int `yaml:"player"`
}

func (m UseWindToken) Actor() int     { return m.Player }
func (m UseWindToken) endsTurn() bool { return false }

func (m UseWindToken) Validate(gs *GameState) error {
	const action = "use wind token"
	if gs.Round.Ended {
		return reject(action, ErrGameOver, "the game is over")
	}
	if !gs.validSeat(m.Player) {
		return reject(action, ErrUnknownPlayer, "no player in seat %d", m.Player)
	}
	if gs.Round.WindHolder != m.Player {
		return reject(action, ErrNoToken, "%s does not hold the wind token", gs.Players[m.Player].Name)
	}
	return nil
}

func (m UseWindToken) apply(gs *GameState) Outcome {
	if gs.Round.Direction == Forward {
		gs.Round.Direction = Reverse
	} else {
		gs.Round.Direction = Forward
	}
	gs.Round.WindHolder = -1
	return Outcome{Message: fmt.Sprintf("%s turned the wind", gs.Players[m.Player].Name)}
}

func (m UseWindToken) String() string {
	return fmt.Sprintf("player %d: use wind token", m.Player)
}
