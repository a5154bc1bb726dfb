package agent

import (
	"github.com/wtheisen/notorious/game"
	"github.com/wtheisen/notorious/metrics"
	"github.com/wtheisen/notorious/searcher"
)

type mctsAgent struct {
	mcts *searcher.MCTS
}

// NewMCTSAgent plays the move a tree search visits most. The agent keeps the
// search tree between moves and replays updates to find its place in it.
func NewMCTSAgent(mcts *searcher.MCTS) Agent {
	return &mctsAgent{mcts: mcts}
}

func (a *mctsAgent) FindMove(state game.State, updates []Update) (game.Move, metrics.SearchMetric) {
	gs, ok := state.(*game.GameState)
	if !ok {
		panic("unexpected state type")
	}
	lineage := make([]searcher.Segment, len(updates))
	for i, u := range updates {
		lineage[i] = searcher.Segment{Move: u.Move, StateHash: u.Hash}
	}
	return a.mcts.FindNextMove(gs, lineage)
}
