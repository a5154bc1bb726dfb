package game

import "fmt"

// PlaceCaptain commits one captain to an action during the place phase.
type PlaceCaptain struct {
	Player int        `yaml:"player"`
	Kind   ActionType `yaml:"kind"`
}

func (m PlaceCaptain) Actor() int     { return m.Player }
func (m PlaceCaptain) endsTurn() bool { return true }

func (m PlaceCaptain) Validate(gs *GameState) error {
	const action = "place captain"
	if err := gs.checkTurn(action, m.Player, PlacePhase); err != nil {
		return err
	}
	if _, ok := actionNames[m.Kind]; !ok {
		return reject(action, ErrIllegalMove, "unknown action %v", m.Kind)
	}
	p := gs.player(m.Player)
	if len(p.Captains) >= p.CaptainSlots {
		return reject(action, ErrCaptainsFull, "%s has committed all %d captains", p.Name, p.CaptainSlots)
	}
	if !powerOf(p).eligible(m.Kind) {
		return reject(action, ErrIneligible, "%s's power forbids %s", p.Name, m.Kind)
	}
	return nil
}

func (m PlaceCaptain) apply(gs *GameState) Outcome {
	p := gs.player(m.Player)
	p.Captains = append(p.Captains, m.Kind)
	return Outcome{Message: fmt.Sprintf("%s sent a captain to %s", p.Name, m.Kind)}
}

func (m PlaceCaptain) String() string {
	return fmt.Sprintf("player %d: captain to %s", m.Player, m.Kind)
}

// Forfeit gives up a committed captain without taking its action.
type Forfeit struct {
	Player int        `yaml:"player"`
	Kind   ActionType `yaml:"kind"`
}

func (m Forfeit) Actor() int     { return m.Player }
func (m Forfeit) endsTurn() bool { return true }

func (m Forfeit) Validate(gs *GameState) error {
	const action = "forfeit"
	if err := gs.checkTurn(action, m.Player, PlayPhase); err != nil {
		return err
	}
	p := gs.player(m.Player)
	if p.Pending != nil {
		return reject(action, ErrPendingDraw, "finish the chart draw first")
	}
	if !p.HasCaptain(m.Kind) {
		return reject(action, ErrNoCaptain, "%s has no captain on %s", p.Name, m.Kind)
	}
	return nil
}

func (m Forfeit) apply(gs *GameState) Outcome {
	p := gs.player(m.Player)
	p.consumeCaptain(m.Kind)
	return Outcome{Message: fmt.Sprintf("%s forfeited %s", p.Name, m.Kind)}
}

func (m Forfeit) String() string {
	return fmt.Sprintf("player %d: forfeit %s", m.Player, m.Kind)
}
