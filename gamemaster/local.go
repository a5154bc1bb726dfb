package gamemaster

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/wtheisen/notorious/config"
	"github.com/wtheisen/notorious/game"
	"github.com/wtheisen/notorious/meta"
)

// UpdateGetter polls for the next played move and the state it produced. It
// returns nil, nil when no update is waiting or once the game is over.
type UpdateGetter func() (game.Move, game.State)

type Engine interface {
	Init() (game.State, UpdateGetter)
	Play(game.Move) error
}

type update struct {
	move  game.Move
	state game.State
}

// LocalEngine hosts one game in process. Moves are validated by the rules
// engine and every accepted move is published on the update channel.
type LocalEngine struct {
	mu       sync.Mutex
	state    *game.GameState
	updateCh chan update
	gameOver bool
}

// NewLocalEngine starts a new game for scenario.
func NewLocalEngine(scenario config.Scenario, shuffler game.Shuffler) (*LocalEngine, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	gs, err := scenario.NewGame(shuffler)
	if err != nil {
		return nil, err
	}
	return &LocalEngine{state: gs}, nil
}

// ResumeLocalEngine hosts an existing game, typically one loaded from a
// snapshot.
func ResumeLocalEngine(gs *game.GameState) *LocalEngine {
	return &LocalEngine{state: gs, gameOver: gs.Ended()}
}

func (e *LocalEngine) Init() (game.State, UpdateGetter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.updateCh = make(chan update, meta.UPDATE_BUFFER)
	if e.gameOver {
		close(e.updateCh)
	}
	log.Info().Msgf("hosting %d players, round %d, %s phase", len(e.state.Players), e.state.Round.Number, e.state.Round.Phase)

	updateCh := e.updateCh
	return e.state.Copy(), func() (game.Move, game.State) {
		select {
		case u, ok := <-updateCh:
			if !ok {
				return nil, nil
			}
			return u.move, u.state
		default:
			return nil, nil
		}
	}
}

// Play validates and applies move. A rejected move leaves the game untouched
// and returns the rule error.
func (e *LocalEngine) Play(move game.Move) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.gameOver {
		return fmt.Errorf("play %v: %w", move, game.ErrGameOver)
	}
	next, outcome, err := e.state.Execute(move)
	if err != nil {
		log.Debug().Err(err).Msgf("rejected %v", move)
		return err
	}
	e.state = next
	if outcome.Message != "" {
		log.Debug().Msg(outcome.Message)
	}

	e.publish(update{move: move, state: next.Copy()})
	if next.Ended() {
		e.gameOver = true
		log.Info().Msgf("game over after round %d", next.Round.Number)
		if e.updateCh != nil {
			close(e.updateCh)
		}
	}
	return nil
}

// publish never blocks the host: when the buffer is full the oldest update
// is dropped.
func (e *LocalEngine) publish(u update) {
	if e.updateCh == nil {
		return
	}
	for {
		select {
		case e.updateCh <- u:
			return
		default:
			select {
			case <-e.updateCh:
			default:
			}
		}
	}
}

// State returns a copy of the current state.
func (e *LocalEngine) State() *game.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Copy()
}

func (e *LocalEngine) Over() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gameOver
}

// Save writes a snapshot of the current state to path.
func (e *LocalEngine) Save(path string) error {
	return SaveState(path, e.State())
}
