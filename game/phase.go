package game

// canAct reports whether seat id still has something to do in the current
// phase.
func (gs *GameState) canAct(id int) bool {
	p := &gs.Players[id]
	switch gs.Round.Phase {
	case SetupPhase:
		return !p.HasPort
	case PlacePhase:
		return len(p.Captains) < p.CaptainSlots
	case PlayPhase:
		return len(p.Captains) > 0 || p.Pending != nil
	case PiratePhase:
		return !gs.Round.Passed[id]
	}
	return false
}

// SetupComplete reports whether every player has placed a port.
func (gs *GameState) SetupComplete() bool {
	for _, p := range gs.Players {
		if !p.HasPort {
			return false
		}
	}
	return true
}

// PlacementComplete reports whether every captain slot is committed.
func (gs *GameState) PlacementComplete() bool {
	for _, p := range gs.Players {
		if len(p.Captains) != p.CaptainSlots {
			return false
		}
	}
	return true
}

// PlayComplete reports whether every committed captain has been used or
// forfeited.
func (gs *GameState) PlayComplete() bool {
	for _, p := range gs.Players {
		if len(p.Captains) > 0 || p.Pending != nil {
			return false
		}
	}
	return true
}

// PirateComplete reports whether every player has taken a pirate turn.
func (gs *GameState) PirateComplete() bool {
	for _, passed := range gs.Round.Passed {
		if !passed {
			return false
		}
	}
	return true
}

// ReadyToAdvance reports whether the current phase's exit guard holds.
func (gs *GameState) ReadyToAdvance() bool {
	if gs.Round.Ended {
		return false
	}
	switch gs.Round.Phase {
	case SetupPhase:
		return gs.SetupComplete()
	case PlacePhase:
		return gs.PlacementComplete()
	case PlayPhase:
		return gs.PlayComplete()
	case PiratePhase:
		return gs.PirateComplete()
	}
	return false
}

// endTurn hands the turn to the next seat that can act, moving to the next
// phase once nobody can.
func (gs *GameState) endTurn() {
	if gs.ReadyToAdvance() {
		gs.advancePhase()
		return
	}
	gs.Round.Active = gs.nextEligible(gs.Round.Active, false)
}

// nextEligible walks the table in the turn direction from seat, wrapping
// around. With inclusive set, seat itself is considered first.
func (gs *GameState) nextEligible(seat int, inclusive bool) int {
	n := len(gs.Players)
	step := gs.Round.Direction.step()
	start := 1
	if inclusive {
		start = 0
	}
	for i := start; i <= n; i++ {
		candidate := ((seat+i*step)%n + n) % n
		if gs.canAct(candidate) {
			return candidate
		}
	}
	return seat
}

func (gs *GameState) advancePhase() {
	switch gs.Round.Phase {
	case SetupPhase:
		gs.startRound(0)
	case PlacePhase:
		gs.Round.Phase = PlayPhase
		gs.Round.Active = gs.nextEligible(gs.Round.First, true)
	case PlayPhase:
		gs.enterPirate()
	case PiratePhase:
		if gs.winThresholdReached() {
			gs.Round.Ended = true
			return
		}
		n := len(gs.Players)
		gs.startRound(((gs.Round.First+gs.Round.Direction.step())%n + n) % n)
	}
}

func (gs *GameState) startRound(first int) {
	gs.Round.Phase = PlacePhase
	gs.Round.Number++
	gs.Round.First = first
	gs.Round.Active = gs.nextEligible(first, true)
}

// enterPirate scores control, accrues raid rewards and reveals the reserved
// raid before the pirate turns begin.
func (gs *GameState) enterPirate() {
	for i := range gs.Board.Cells {
		cell := &gs.Board.Cells[i]
		owner, ok := gs.Board.Controller(cell.Coord)
		if !ok {
			continue
		}
		p := gs.player(owner)
		p.gainNotoriety(powerOf(p).controlNotoriety(cell, gs.Rules.ControlNotoriety), gs.Rules.CaptainThresholds)
	}

	for i := range gs.Deck.Raids {
		gs.Deck.Raids[i].Accrued++
	}

	for _, p := range gs.Players {
		if p.Notoriety >= gs.Rules.RevealThreshold {
			gs.Deck.revealRaid()
			break
		}
	}

	gs.Round.FinalRound = gs.winThresholdReached()
	gs.Round.Phase = PiratePhase
	for i := range gs.Round.Passed {
		gs.Round.Passed[i] = false
	}
	gs.Round.Active = gs.nextEligible(gs.Round.First, true)
}

func (gs *GameState) winThresholdReached() bool {
	for _, p := range gs.Players {
		if p.Notoriety >= gs.Rules.WinThreshold {
			return true
		}
	}
	return false
}
