// Package searcher implements tree-parallel Monte Carlo tree search with
// virtual loss over game states.
package searcher

import "math"

// Hyperparameters for MCTS

const C_SQUARED = 2.0

// Use rewards to estimate the chance of winning
const WIN = 1.0
const LOSS = 1 - WIN

// MaxCutoff is the default number of random moves in a rollout before the
// position is scored by the evaluation function.
const MaxCutoff = 40

func ucb1(rewards float64, visits int, c2LnN float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}

	return rewards/float64(visits) + math.Sqrt(c2LnN/float64(visits))
}
