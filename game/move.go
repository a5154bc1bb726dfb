package game

// Outcome describes what an executed move did.
type Outcome struct {
	Message   string  `yaml:"message"`
	Notoriety int     `yaml:"notoriety,omitempty"` // gained by the actor
	Doubloons int     `yaml:"doubloons,omitempty"` // gained (positive) or spent (negative) by the actor
	Charts    []Chart `yaml:"charts,omitempty"`    // drawn or claimed
}

// checkTurn verifies the game is running, id is a seat and it is id's turn in
// phase.
func (gs *GameState) checkTurn(action string, id int, phase Phase) error {
	if gs.Round.Ended {
		return reject(action, ErrGameOver, "the game is over")
	}
	if id < 0 || id >= len(gs.Players) {
		return reject(action, ErrUnknownPlayer, "no player in seat %d", id)
	}
	if gs.Round.Phase != phase {
		return reject(action, ErrWrongPhase, "it is the %s phase, not %s", gs.Round.Phase, phase)
	}
	if gs.Round.Active != id {
		return reject(action, ErrNotYourTurn, "it is %s's turn", gs.Players[gs.Round.Active].Name)
	}
	return nil
}

// checkAction runs the checks shared by every captain action: turn, phase,
// no pending draw, power eligibility and a committed captain.
func (gs *GameState) checkAction(kind ActionType, id int) error {
	action := kind.String()
	if err := gs.checkTurn(action, id, PlayPhase); err != nil {
		return err
	}
	p := gs.player(id)
	if p.Pending != nil {
		return reject(action, ErrPendingDraw, "finish the chart draw first")
	}
	if !powerOf(p).eligible(kind) {
		return reject(action, ErrIneligible, "%s's power forbids it", p.Name)
	}
	if !p.HasCaptain(kind) {
		return reject(action, ErrNoCaptain, "%s has no captain on %s", p.Name, kind)
	}
	return nil
}

func (gs *GameState) checkCost(action string, id, cost int) error {
	if p := gs.player(id); cost > p.Doubloons {
		return reject(action, ErrInsufficientDoubloons, "costs %d doubloons, %s has %d", cost, p.Name, p.Doubloons)
	}
	return nil
}

// bribeCost prices units of item for seat id, applying its power.
func (gs *GameState) bribeCost(id int, action ActionType, item BribeItem, units, perUnit int) int {
	if units <= 0 {
		return 0
	}
	ctx := BribeContext{Action: action, Item: item, Units: units, Standard: units * perUnit}
	return powerOf(gs.player(id)).bribeCost(ctx)
}

func (gs *GameState) validSeat(id int) bool {
	return id >= 0 && id < len(gs.Players)
}
