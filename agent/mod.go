// Package agent holds the move pickers a host can seat at the table.
package agent

import (
	"github.com/wtheisen/notorious/game"
	"github.com/wtheisen/notorious/metrics"
)

// Update is one move played by anyone and the state it produced.
type Update struct {
	Move  game.Move
	State game.State
	Hash  game.StateHash
}

type Agent interface {
	// FindMove returns the move to play for the active seat of state and the
	// metrics collected while picking it. updates are the moves played since
	// this agent last moved.
	FindMove(state game.State, updates []Update) (game.Move, metrics.SearchMetric)
}
