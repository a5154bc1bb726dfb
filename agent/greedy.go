package agent

import (
	"golang.org/x/exp/rand"

	"github.com/wtheisen/notorious/game"
	"github.com/wtheisen/notorious/metrics"
)

type greedyAgent struct {
	evaluate  game.Evaluate
	rng       *rand.Rand
	collector metrics.Collector
}

// NewGreedyAgent looks one move ahead and plays the move whose result scores
// best for the mover under evaluate. Ties are broken at random.
func NewGreedyAgent(evaluate game.Evaluate, seed uint64, collector metrics.Collector) Agent {
	return &greedyAgent{evaluate: evaluate, rng: rand.New(rand.NewSource(seed)), collector: collector}
}

func (a *greedyAgent) FindMove(state game.State, _ []Update) (game.Move, metrics.SearchMetric) {
	a.collector.Start("greedy")
	gs, ok := state.(*game.GameState)
	if !ok {
		panic("unexpected state type")
	}
	moves := gs.LegalMoves()
	a.collector.AddCandidates(len(moves))
	if len(moves) == 0 {
		return nil, a.collector.Complete()
	}

	mover := gs.Active()
	var best []game.Move
	bestScore := -2.0
	for _, move := range moves {
		next, _, err := gs.Execute(move)
		if err != nil {
			continue
		}
		// score the result from the mover's seat even if the turn passed on
		next.Round.Active = mover
		score := a.evaluate(next)
		a.collector.AddScored()
		switch {
		case score > bestScore:
			bestScore, best = score, []game.Move{move}
		case score == bestScore:
			best = append(best, move)
		}
	}
	if len(best) == 0 {
		return moves[0], a.collector.Complete()
	}
	return best[a.rng.Intn(len(best))], a.collector.Complete()
}
