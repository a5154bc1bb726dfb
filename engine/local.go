package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wtheisen/notorious/agent"
	"github.com/wtheisen/notorious/game"
	"github.com/wtheisen/notorious/gamemaster"
	"github.com/wtheisen/notorious/metrics"
)

var errNoMove = errors.New("agent returned no move")

// Engine seats one agent per player at a locally hosted game and drives it.
type Engine struct {
	host     *gamemaster.LocalEngine
	agents   []agent.Agent
	maxMoves int
	seed     uint64
}

type Option func(*Engine)

// WithMaxMoves caps the number of moves Run plays.
func WithMaxMoves(n int) Option {
	return func(e *Engine) {
		e.maxMoves = n
	}
}

// WithSeed records the seed the game was dealt with in the game metric.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

func New(host *gamemaster.LocalEngine, agents []agent.Agent, opts ...Option) (*Engine, error) {
	if n := len(host.State().Players); n != len(agents) {
		return nil, fmt.Errorf("new engine: %d players but %d agents", n, len(agents))
	}
	e := &Engine{host: host, agents: agents, maxMoves: MaxMoves}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Run asks the active seat's agent for a move until the game ends. A move the
// host rejects is replaced by the first legal move so the game always
// progresses.
func (e *Engine) Run() ([]int, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	state, getUpdate := e.host.Init()
	gs := state.(*game.GameState)

	updates := make([][]agent.Update, len(e.agents))
	var moveMetrics []metrics.MoveMetric
	rejected := 0

	log.Info().Msgf("round %d %s phase, %s to act", gs.Round.Number, gs.Round.Phase, gs.Player())

	for step := 1; !gs.Ended() && step <= e.maxMoves; step++ {
		seat := gs.Active()
		move, search := e.agents[seat].FindMove(gs, updates[seat])
		updates[seat] = nil

		err := errNoMove
		if move != nil {
			err = e.host.Play(move)
		}
		if err != nil {
			log.Warn().Err(err).Msgf("%s: %v rejected, playing a fallback", gs.Player(), move)
			rejected++
			moves := gs.LegalMoves()
			if len(moves) == 0 {
				log.Error().Msgf("%s has no legal move, stopping", gs.Player())
				break
			}
			move = moves[0]
			if err := e.host.Play(move); err != nil {
				panic(fmt.Sprintf("legal move %v rejected: %v", move, err))
			}
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Round:        gs.Round.Number,
			Phase:        gs.Round.Phase.String(),
			Player:       seat,
			Move:         fmt.Sprint(move),
			Rejected:     err != nil,
			SearchMetric: search,
		})

		next := e.next(getUpdate)
		for i := range updates {
			if i != seat {
				updates[i] = append(updates[i], agent.Update{Move: move, State: next, Hash: next.Hash()})
			}
		}
		if next.Round.Phase != gs.Round.Phase || next.Round.Number != gs.Round.Number {
			log.Info().Msgf("round %d %s phase", next.Round.Number, next.Round.Phase)
		}
		gs = next
	}

	if !gs.Ended() {
		log.Warn().Msgf("stopped after %d moves without a winner", len(moveMetrics))
	}
	winners := gs.Winners()
	names := make([]string, len(winners))
	for i, id := range winners {
		names[i] = gs.Players[id].Name
	}
	if len(names) > 0 {
		log.Info().Msgf("winners: %s", strings.Join(names, ", "))
	}

	end := time.Now()
	gameMetric := metrics.GameMetric{
		Seed:       e.seed,
		Players:    len(gs.Players),
		Winners:    strings.Join(names, ","),
		Rounds:     gs.Round.Number,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalMoves: len(moveMetrics),
		Rejected:   rejected,
	}
	return winners, gameMetric, moveMetrics
}

// next takes the update the host published for the last move, falling back
// to the host's state if it was dropped.
func (e *Engine) next(getUpdate gamemaster.UpdateGetter) *game.GameState {
	if _, state := getUpdate(); state != nil {
		return state.(*game.GameState)
	}
	return e.host.State()
}
