package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wtheisen/notorious/game"
	"github.com/wtheisen/notorious/meta"
)

// Scenario describes a table: who plays with which power, rule overrides and
// optionally a custom map.
type Scenario struct {
	Players []game.Seat  `yaml:"players"`
	Rules   game.Rules   `yaml:"rules"`
	Layout  *game.Layout `yaml:"layout,omitempty"`
}

// DefaultScenario seats n powerless players on the standard map.
func DefaultScenario(n int) Scenario {
	seats := make([]game.Seat, n)
	for i := range seats {
		seats[i] = game.Seat{Name: fmt.Sprintf("Player%d", i+1)}
	}
	return Scenario{Players: seats, Rules: game.StandardRules()}
}

// ParseScenario decodes a scenario. Rules not named in data keep their
// standard values.
func ParseScenario(data []byte) (Scenario, error) {
	sc := Scenario{Rules: game.StandardRules()}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

// LoadScenario reads and decodes a scenario file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("load scenario: %w", err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("load scenario %s: %w", path, err)
	}
	return sc, nil
}

// Validate checks the seats, powers, rules and layout.
func (s Scenario) Validate() error {
	if n := len(s.Players); n < meta.MIN_PLAYERS || n > meta.MAX_PLAYERS {
		return fmt.Errorf("invalid scenario: need %d to %d players, got %d", meta.MIN_PLAYERS, meta.MAX_PLAYERS, n)
	}
	for i, seat := range s.Players {
		if _, err := game.LookupPower(seat.Power); err != nil {
			return fmt.Errorf("invalid scenario: player %d: %w", i+1, err)
		}
	}
	if err := s.Rules.Validate(); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}
	if err := s.MapLayout().Validate(); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}
	return nil
}

// MapLayout returns the custom layout or the standard one.
func (s Scenario) MapLayout() game.Layout {
	if s.Layout == nil {
		return game.DefaultLayout()
	}
	return *s.Layout
}

// NewGame starts a game for the scenario.
func (s Scenario) NewGame(shuffler game.Shuffler) (*game.GameState, error) {
	return game.NewGameState(s.Players, s.Rules, s.MapLayout(), shuffler)
}
