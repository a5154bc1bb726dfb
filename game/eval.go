package game

import "math"

// EvaluateStanding compares the active player's notoriety and doubloons with
// the strongest opponent's, scoring between -1 and 1.
func EvaluateStanding(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	notorietyScore, doubloonScore := gs.calculateStandingScores()

	return (2*notorietyScore + doubloonScore) / 3.0
}

// EvaluatePosition adds board control and objective progress to the standing
// score.
func EvaluatePosition(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	notorietyScore, doubloonScore := gs.calculateStandingScores()
	controlScore := gs.calculateControlScore()
	chartScore := gs.calculateChartScore()

	return (2*notorietyScore + doubloonScore + controlScore + chartScore) / 5
}

// rival is the opponent with the best standing.
func (gs *GameState) rival() int {
	for _, id := range gs.Standings() {
		if id != gs.Round.Active {
			return id
		}
	}
	return gs.Round.Active
}

func (gs *GameState) calculateStandingScores() (notorietyScore, doubloonScore float64) {
	me, them := gs.Players[gs.Round.Active], gs.Players[gs.rival()]
	notorietyScore = normalize(float64(me.Notoriety), float64(them.Notoriety))
	doubloonScore = normalize(float64(me.Doubloons), float64(them.Doubloons))
	return notorietyScore, doubloonScore
}

func (gs *GameState) calculateControlScore() float64 {
	controlled := make(map[int]float64)

	// Island cells count double, they carry raids and routes
	for _, cell := range gs.Board.Cells {
		owner, ok := gs.Board.Controller(cell.Coord)
		if !ok {
			continue
		}
		weight := 1.0
		if cell.Island != nil {
			weight = 2
		}
		controlled[owner] += weight
	}

	return normalize(controlled[gs.Round.Active], controlled[gs.rival()])
}

// calculateChartScore rewards holding charts that could be claimed right now,
// damped so a large hand of unreachable charts does not dominate.
func (gs *GameState) calculateChartScore() float64 {
	ready := make(map[int]float64)
	for _, id := range []int{gs.Round.Active, gs.rival()} {
		for _, c := range gs.Players[id].Hand {
			if _, err := gs.ChartReward(id, c); err == nil {
				ready[id]++
			} else {
				ready[id] += 0.25
			}
		}
		for _, c := range gs.Deck.Raids {
			if _, err := gs.ChartReward(id, c); err == nil {
				ready[id]++
			}
		}
		ready[id] = math.Sqrt(ready[id])
	}
	return normalize(ready[gs.Round.Active], ready[gs.rival()])
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
