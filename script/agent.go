package script

import (
	"github.com/rs/zerolog/log"

	"github.com/wtheisen/notorious/agent"
	"github.com/wtheisen/notorious/game"
	"github.com/wtheisen/notorious/metrics"
)

type scriptedAgent struct {
	seat     int
	steps    []Step
	next     int
	fallback agent.Agent
}

// Agents splits s by seat and returns one agent per seat. A seat whose script
// has run out hands over to fallback(seat).
func Agents(s *Script, players int, fallback func(seat int) agent.Agent) []agent.Agent {
	agents := make([]agent.Agent, players)
	for seat := range agents {
		a := &scriptedAgent{seat: seat, fallback: fallback(seat)}
		for _, step := range s.Moves {
			if step.Player == seat {
				a.steps = append(a.steps, step)
			}
		}
		agents[seat] = a
	}
	return agents
}

func (a *scriptedAgent) FindMove(state game.State, updates []agent.Update) (game.Move, metrics.SearchMetric) {
	if a.next >= len(a.steps) {
		return a.fallback.FindMove(state, updates)
	}
	step := a.steps[a.next]
	a.next++
	move, err := step.Move()
	if err != nil {
		// Parse already checked every step
		panic(err)
	}
	log.Debug().Msgf("seat %d plays scripted step %d: %v", a.seat, a.next, move)
	return move, metrics.SearchMetric{Agent: "script", Candidates: 1}
}
