package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wtheisen/notorious/agent"
	"github.com/wtheisen/notorious/config"
	"github.com/wtheisen/notorious/experiments"
	"github.com/wtheisen/notorious/game"
	"github.com/wtheisen/notorious/gamemaster"
	"github.com/wtheisen/notorious/meta"
	"github.com/wtheisen/notorious/metrics"
	"github.com/wtheisen/notorious/script"
	"github.com/wtheisen/notorious/searcher"
)

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)
	if cfg.PrettyLog {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("notorious failed")
	}
}

func run(cfg config.Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = meta.DEFAULT_SEED
	}

	scenario := config.DefaultScenario(cfg.Players)
	if cfg.Scenario != "" {
		var err error
		if scenario, err = config.LoadScenario(cfg.Scenario); err != nil {
			return err
		}
	}

	var moves *script.Script
	if cfg.Script != "" {
		var err error
		if moves, err = script.Load(cfg.Script); err != nil {
			return err
		}
	}

	var last *gamemaster.LocalEngine
	newHost := func(seed uint64) (*gamemaster.LocalEngine, error) {
		if cfg.Resume == "" {
			host, err := gamemaster.NewLocalEngine(scenario, game.NewShuffler(seed))
			last = host
			return host, err
		}
		gs, err := gamemaster.LoadState(cfg.Resume, game.NewShuffler(seed))
		if err != nil {
			return nil, err
		}
		last = gamemaster.ResumeLocalEngine(gs)
		return last, nil
	}

	newAgents := func(seed uint64, players int) []agent.Agent {
		bot := func(seat int) agent.Agent {
			botSeed := seed + uint64(seat)
			switch cfg.Agent {
			case config.AgentRandom:
				return agent.NewRandomAgent(botSeed, metrics.NewCollector())
			case config.AgentMCTS:
				return agent.NewMCTSAgent(searcher.NewMCTS(cfg.Goroutines,
					searcher.WithEpisodes(cfg.Episodes),
					searcher.WithDuration(cfg.Duration),
					searcher.WithCutoff(cfg.Cutoff),
					searcher.WithSeed(botSeed),
					searcher.WithMetrics(metrics.NewCollector()),
				))
			}
			return agent.NewGreedyAgent(game.EvaluatePosition, botSeed, metrics.NewCollector())
		}
		if moves != nil {
			return script.Agents(moves, players, bot)
		}
		agents := make([]agent.Agent, players)
		for seat := range agents {
			agents[seat] = bot(seat)
		}
		return agents
	}

	result, err := experiments.Run(experiments.Series{
		Name:      "notorious",
		Games:     cfg.Games,
		Seed:      seed,
		MaxMoves:  cfg.MaxTurns,
		NewHost:   newHost,
		NewAgents: newAgents,
	})
	if err != nil {
		return err
	}

	writer, err := metrics.NewWriter(cfg.RecordsDir)
	if err != nil {
		return err
	}
	if err := result.Write(writer); err != nil {
		return err
	}

	path := filepath.Join(writer.Dir(), "state.yaml")
	if err := last.Save(path); err != nil {
		return err
	}
	log.Info().Msgf("saved the final state to %s", path)
	return nil
}
