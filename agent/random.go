package agent

import (
	"golang.org/x/exp/rand"

	"github.com/wtheisen/notorious/game"
	"github.com/wtheisen/notorious/metrics"
)

type randomAgent struct {
	rng       *rand.Rand
	collector metrics.Collector
}

// NewRandomAgent plays a uniformly random legal move.
func NewRandomAgent(seed uint64, collector metrics.Collector) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed)), collector: collector}
}

func (a *randomAgent) FindMove(state game.State, _ []Update) (game.Move, metrics.SearchMetric) {
	a.collector.Start("random")
	moves := state.LegalMoves()
	a.collector.AddCandidates(len(moves))
	if len(moves) == 0 {
		return nil, a.collector.Complete()
	}
	return moves[a.rng.Intn(len(moves))], a.collector.Complete()
}
