package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wtheisen/notorious/agent"
	"github.com/wtheisen/notorious/config"
	"github.com/wtheisen/notorious/game"
	"github.com/wtheisen/notorious/gamemaster"
	"github.com/wtheisen/notorious/metrics"
)

// idleAgent never picks a move, so the engine falls back every time.
type idleAgent struct{}

func (idleAgent) FindMove(game.State, []agent.Update) (game.Move, metrics.SearchMetric) {
	return nil, metrics.SearchMetric{Agent: "idle"}
}

// recordingAgent plays randomly and remembers the updates it was shown.
type recordingAgent struct {
	agent.Agent
	seen int
}

func (a *recordingAgent) FindMove(state game.State, updates []agent.Update) (game.Move, metrics.SearchMetric) {
	a.seen += len(updates)
	return a.Agent.FindMove(state, updates)
}

func newHost(t *testing.T) *gamemaster.LocalEngine {
	t.Helper()
	host, err := gamemaster.NewLocalEngine(config.DefaultScenario(2), game.NewShuffler(7))
	require.NoError(t, err)
	return host
}

func TestNew(t *testing.T) {
	_, err := New(newHost(t), []agent.Agent{idleAgent{}})
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	t.Run("fallback moves finish the game", func(t *testing.T) {
		e, err := New(newHost(t), []agent.Agent{idleAgent{}, idleAgent{}}, WithSeed(7))
		require.NoError(t, err)

		winners, gameMetric, moveMetrics := e.Run()
		require.NotEmpty(t, winners)
		require.NotEmpty(t, gameMetric.Winners)
		require.Equal(t, uint64(7), gameMetric.Seed)
		require.Equal(t, 2, gameMetric.Players)
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.Equal(t, gameMetric.TotalMoves, gameMetric.Rejected)
		require.Equal(t, "setup", moveMetrics[0].Phase)
		for _, m := range moveMetrics {
			require.True(t, m.Rejected)
			require.Equal(t, "idle", m.Agent)
		}
	})

	t.Run("move cap", func(t *testing.T) {
		e, err := New(newHost(t), []agent.Agent{idleAgent{}, idleAgent{}}, WithMaxMoves(3))
		require.NoError(t, err)

		winners, gameMetric, moveMetrics := e.Run()
		require.Nil(t, winners)
		require.Empty(t, gameMetric.Winners)
		require.Len(t, moveMetrics, 3)
	})

	t.Run("agents see the other seats' moves", func(t *testing.T) {
		agents := []*recordingAgent{
			{Agent: agent.NewRandomAgent(1, metrics.NewDummyCollector())},
			{Agent: agent.NewRandomAgent(2, metrics.NewDummyCollector())},
		}
		e, err := New(newHost(t), []agent.Agent{agents[0], agents[1]}, WithMaxMoves(50))
		require.NoError(t, err)

		_, gameMetric, moveMetrics := e.Run()
		require.Zero(t, gameMetric.Rejected, "random agents only pick legal moves")
		require.Len(t, moveMetrics, 50)
		require.Positive(t, agents[0].seen)
		require.Positive(t, agents[1].seen)
	})
}
