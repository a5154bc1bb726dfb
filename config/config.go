// Package config reads the host configuration from the environment and
// command-line flags, and loads scenario files.
package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/wtheisen/notorious/meta"
)

// Agent kinds selectable with NOTORIOUS_AGENT.
const (
	AgentGreedy = "greedy"
	AgentRandom = "random"
	AgentMCTS   = "mcts"
)

// Config holds the command configuration. Flags override the environment.
type Config struct {
	Players    int    `env:"NOTORIOUS_PLAYERS"     envDefault:"2"`
	Seed       uint64 `env:"NOTORIOUS_SEED"        envDefault:"1"`
	Games      int    `env:"NOTORIOUS_GAMES"       envDefault:"1"`
	Scenario   string `env:"NOTORIOUS_SCENARIO"`
	Script     string `env:"NOTORIOUS_SCRIPT"`
	Resume     string `env:"NOTORIOUS_RESUME"`
	Agent      string `env:"NOTORIOUS_AGENT"       envDefault:"greedy"`
	RecordsDir string `env:"NOTORIOUS_RECORDS_DIR" envDefault:"records"`
	LogLevel   string `env:"NOTORIOUS_LOG_LEVEL"   envDefault:"info"`
	PrettyLog  bool   `env:"NOTORIOUS_PRETTY_LOG"`
	MaxTurns   int    `env:"NOTORIOUS_MAX_TURNS"   envDefault:"2000"`

	// Tree search settings for the mcts agent
	Goroutines int           `env:"NOTORIOUS_MCTS_GOROUTINES" envDefault:"4"`
	Episodes   int           `env:"NOTORIOUS_MCTS_EPISODES"   envDefault:"200"`
	Duration   time.Duration `env:"NOTORIOUS_MCTS_DURATION"`
	Cutoff     int           `env:"NOTORIOUS_MCTS_CUTOFF"     envDefault:"40"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseConfig parses the environment, then flags, into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.IntVar(&cfg.Players, "players", cfg.Players, "number of players when no scenario is given")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the chart shuffle and the bots")
	fs.IntVar(&cfg.Games, "games", cfg.Games, "number of games to play, seeded consecutively")
	fs.StringVar(&cfg.Scenario, "scenario", cfg.Scenario, "path to a scenario yaml file")
	fs.StringVar(&cfg.Script, "script", cfg.Script, "path to a move script yaml file")
	fs.StringVar(&cfg.Resume, "resume", cfg.Resume, "path to a saved state to continue from")
	fs.StringVar(&cfg.Agent, "agent", cfg.Agent, "bot for unscripted seats: greedy, random or mcts")
	fs.StringVar(&cfg.RecordsDir, "records", cfg.RecordsDir, "directory for game and move records")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "zerolog level")
	fs.BoolVar(&cfg.PrettyLog, "pretty", cfg.PrettyLog, "human readable console logs")
	fs.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "stop a game after this many moves")
	fs.IntVar(&cfg.Goroutines, "mcts-goroutines", cfg.Goroutines, "tree search workers")
	fs.IntVar(&cfg.Episodes, "mcts-episodes", cfg.Episodes, "tree search episodes per move, 0 to search by duration")
	fs.DurationVar(&cfg.Duration, "mcts-duration", cfg.Duration, "tree search time per move when episodes is 0")
	fs.IntVar(&cfg.Cutoff, "mcts-cutoff", cfg.Cutoff, "random moves per rollout before scoring")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the flag and env parsers cannot.
func (c Config) Validate() error {
	if c.Players < meta.MIN_PLAYERS || c.Players > meta.MAX_PLAYERS {
		return fmt.Errorf("invalid config: players must be between %d and %d, got %d", meta.MIN_PLAYERS, meta.MAX_PLAYERS, c.Players)
	}
	switch c.Agent {
	case AgentGreedy, AgentRandom:
	case AgentMCTS:
		if c.Episodes <= 0 && c.Duration <= 0 {
			return fmt.Errorf("invalid config: mcts needs episodes or a duration")
		}
		if c.Goroutines <= 0 || c.Cutoff <= 0 {
			return fmt.Errorf("invalid config: mcts goroutines and cutoff must be positive")
		}
	default:
		return fmt.Errorf("invalid config: unknown agent %q", c.Agent)
	}
	if c.Games <= 0 {
		return fmt.Errorf("invalid config: games must be positive, got %d", c.Games)
	}
	if c.Resume != "" && c.Games != 1 {
		return fmt.Errorf("invalid config: a resumed game cannot be played as a series of %d", c.Games)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("invalid config: max turns must be positive, got %d", c.MaxTurns)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(c.LogLevel)
}
