package searcher

import (
	"reflect"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/wtheisen/notorious/game"
	"github.com/wtheisen/notorious/metrics"
)

type Option func(mcts *MCTS)

// Segment is a move played since the last search and the hash of the state
// it produced.
type Segment struct {
	Move      game.Move
	StateHash game.StateHash
}

type MCTS struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	seed       uint64
	searches   uint64
	evaluate   game.Evaluate
	root       *decision
	policy     []Choice
	metrics    metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithSeed seeds the rollout policy of every worker.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(m *MCTS) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

// NewMCTS returns a searcher running goroutines workers on a shared tree. A
// search budget of episodes or duration is required; episodes win when both
// are given.
func NewMCTS(goroutines int, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines: max(goroutines, 1),
		cutoff:     MaxCutoff,
		evaluate:   game.EvaluatePosition,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// FindNextMove searches from state and returns the most visited move. lineage
// lists the moves played by others since the previous call, so the subtree
// under the new state can be reused.
func (m *MCTS) FindNextMove(state *game.GameState, lineage []Segment) (game.Move, metrics.SearchMetric) {
	m.metrics.Start("mcts")
	// Searching copies never reshuffle, so every move is deterministic
	root := state.Copy()
	root.Shuffler = nil

	m.findRoot(lineage, root)
	m.metrics.AddCandidates(len(m.root.moves))
	if m.episodes > 0 {
		m.iterate(root)
	} else {
		m.countdown(root)
	}
	metric := m.metrics.Complete()
	m.policy = m.root.policy()

	ith := m.root.best()
	if ith < 0 {
		if len(m.root.moves) == 0 {
			return nil, metric
		}
		log.Warn().Msg("search ended before expanding the root, playing the first legal move")
		return m.root.moves[0], metric
	}
	move := m.root.moves[ith]

	// Keep the subtree of the chosen move for the next search
	m.root = m.root.children[ith]
	m.root.parent = nil
	return move, metric
}

// Policy returns the visit counts of the root moves of the last search.
func (m *MCTS) Policy() []Choice {
	return m.policy
}

func (m *MCTS) findRoot(path []Segment, state *game.GameState) {
	root := traverse(m.root, path)
	if root == nil || root.hash != state.Hash() {
		m.root = newDecision(nil, -1, state)
		return
	}
	root.parent = nil
	m.root = root
	m.metrics.ReusedTree()
}

func traverse(root *decision, path []Segment) *decision {
	if root == nil {
		return nil
	}

	node := root
	for _, segment := range path {
		ith := slices.IndexFunc(node.moves[:len(node.children)], func(move game.Move) bool {
			return reflect.DeepEqual(move, segment.Move)
		})
		if ith < 0 { // Node has not expanded this move
			return nil
		}
		child := node.children[ith]
		if child.hash != segment.StateHash {
			log.Debug().Msgf("node's state hash %d does not match segment's state hash %d", child.hash, segment.StateHash)
			return nil
		}
		node = child
	}
	return node
}

func (m *MCTS) iterate(state *game.GameState) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		rng := m.workerRand(i)
		go func() {
			defer wg.Done()

			for range task {
				m.simulate(state, rng)
			}
		}()
	}

	wg.Wait()
	m.searches++
}

func (m *MCTS) countdown(state *game.GameState) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		rng := m.workerRand(i)
		go func() {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
					m.simulate(state, rng)
				}
			}
		}()
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
	m.searches++
}

func (m *MCTS) workerRand(worker int) *rand.Rand {
	return rand.New(rand.NewSource(m.seed + m.searches*uint64(m.goroutines) + uint64(worker)))
}

func (m *MCTS) simulate(state *game.GameState, rng *rand.Rand) {
	newNode, newState := selectThenExpand(m.root, state)
	reward := m.rollout(newState, rng)
	backup(newNode, reward)
	m.metrics.AddEpisode()
}

func selectThenExpand(root *decision, state *game.GameState) (*decision, *game.GameState) {
	parent := root
	child, state, selected := parent.selectOrExpand(state)
	for selected && (child != parent) {
		parent = child
		child, state, selected = parent.selectOrExpand(state)
	}
	return child, state
}

// rollout plays random moves till the game is over or for cutoff moves and
// returns the reward of every seat.
func (m *MCTS) rollout(state *game.GameState, rng *rand.Rand) func(seat int) float64 {
	for depth := 0; !state.Ended() && depth < m.cutoff; depth++ {
		moves := state.LegalMoves()
		if len(moves) == 0 {
			break
		}
		state = play(state, moves[rng.Intn(len(moves))]) // Random rollout policy
	}

	if state.Ended() { // Game over before cutoff
		m.metrics.AddFullPlayout()
		winners := state.Winners()
		return func(seat int) float64 {
			if slices.Contains(winners, seat) {
				return WIN / float64(len(winners))
			}
			return LOSS
		}
	}

	// At cutoff, score the position from every seat's perspective
	view := state.Copy()
	scores := make([]float64, len(view.Players))
	for seat := range scores {
		view.Round.Active = seat
		scores[seat] = LOSS + (WIN-LOSS)*(m.evaluate(view)+1)/2
	}
	m.metrics.AddScored()
	return func(seat int) float64 {
		return scores[seat]
	}
}

func backup(newNode *decision, reward func(seat int) float64) {
	node := newNode
	for node != nil {
		node = node.backup(reward)
	}
}
