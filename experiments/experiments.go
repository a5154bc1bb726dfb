// Package experiments plays series of seeded games and records the results.
package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/wtheisen/notorious/agent"
	"github.com/wtheisen/notorious/engine"
	"github.com/wtheisen/notorious/gamemaster"
	"github.com/wtheisen/notorious/metrics"
)

// Series is a batch of games at the same table. Game i is dealt and played
// with seed Seed+i.
type Series struct {
	Name      string
	Games     int
	Seed      uint64
	MaxMoves  int
	NewHost   func(seed uint64) (*gamemaster.LocalEngine, error)
	NewAgents func(seed uint64, players int) []agent.Agent
}

type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Wins  []int // games won per seat, shared wins included
}

// Run plays every game of the series in turn.
func Run(s Series) (Result, error) {
	var result Result
	log.Info().Msgf("starting %s series of %d games...", s.Name, s.Games)

	for i := 0; i < s.Games; i++ {
		seed := s.Seed + uint64(i)
		host, err := s.NewHost(seed)
		if err != nil {
			return Result{}, fmt.Errorf("game %d: %w", i+1, err)
		}
		players := len(host.State().Players)
		if result.Wins == nil {
			result.Wins = make([]int, players)
		}

		opts := []engine.Option{engine.WithSeed(seed)}
		if s.MaxMoves > 0 {
			opts = append(opts, engine.WithMaxMoves(s.MaxMoves))
		}
		e, err := engine.New(host, s.NewAgents(seed, players), opts...)
		if err != nil {
			return Result{}, fmt.Errorf("game %d: %w", i+1, err)
		}

		log.Info().Msgf("starting game %d of %d with seed %d...", i+1, s.Games, seed)
		winners, gameMetric, moveMetrics := e.Run()

		id := i + 1
		result.Games = append(result.Games, metrics.GameRecord{ID: id, GameMetric: gameMetric})
		for _, mm := range moveMetrics {
			result.Moves = append(result.Moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
		}
		for _, seat := range winners {
			if seat < len(result.Wins) {
				result.Wins[seat]++
			}
		}
		log.Info().Msgf("completed game %d with winners: %s", id, gameMetric.Winners)
	}

	log.Info().Msgf("completed %s series, wins per seat: %v", s.Name, result.Wins)
	return result, nil
}

// Write stores the game and move records of r.
func (r Result) Write(writer *metrics.Writer) error {
	if err := writer.WriteGameRecords(r.Games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(r.Moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return nil
}
