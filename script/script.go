// Package script decodes YAML move scripts and replays them as agents.
package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wtheisen/notorious/game"
	"github.com/wtheisen/notorious/hex"
)

// Cell is an axial coordinate as written in a script.
type Cell struct {
	Q int `yaml:"q"`
	R int `yaml:"r"`
}

func (c Cell) Coord() hex.Coord {
	return hex.NewCoord(c.Q, c.R)
}

func coords(cells []Cell) []hex.Coord {
	out := make([]hex.Coord, len(cells))
	for i, c := range cells {
		out[i] = c.Coord()
	}
	return out
}

type ShipPath struct {
	Kind game.ShipKind `yaml:"kind"`
	Path []Cell        `yaml:"path"`
}

type Hop struct {
	From Cell `yaml:"from"`
	To   Cell `yaml:"to"`
}

type Target struct {
	Victim int           `yaml:"victim"`
	Kind   game.ShipKind `yaml:"kind"`
}

// Step is one scripted move. Action picks which of the other fields apply.
type Step struct {
	Player  int              `yaml:"player"`
	Action  string           `yaml:"action"`
	Cell    *Cell            `yaml:"cell,omitempty"`
	Captain *game.ActionType `yaml:"captain,omitempty"`

	Ships       []ShipPath    `yaml:"ships,omitempty"`
	Bribes      int           `yaml:"bribes,omitempty"`
	Galleon     bool          `yaml:"galleon,omitempty"`
	ExtraSloops int           `yaml:"extra_sloops,omitempty"`
	Victim      int           `yaml:"victim,omitempty"`
	Ship        game.ShipKind `yaml:"ship,omitempty"`
	PlaceSloop  bool          `yaml:"place_sloop,omitempty"`
	Relocate    *Hop          `yaml:"relocate,omitempty"`
	Extra       *Target       `yaml:"extra,omitempty"`
	ExtraDraw   bool          `yaml:"extra_draw,omitempty"`
	ExtraKeep   bool          `yaml:"extra_keep,omitempty"`
	Keep        []int         `yaml:"keep,omitempty"`
	Chart       int           `yaml:"chart,omitempty"`
}

// Script is an ordered list of moves for any number of seats.
type Script struct {
	Moves []Step `yaml:"moves"`
}

// Parse decodes a script and checks every step converts to a move.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i, step := range s.Moves {
		if _, err := step.Move(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

// Load reads and decodes a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	return Parse(data)
}

// Move converts the step into an engine move.
func (s Step) Move() (game.Move, error) {
	needCell := func() (hex.Coord, error) {
		if s.Cell == nil {
			return hex.Coord{}, fmt.Errorf("%s needs a cell", s.Action)
		}
		return s.Cell.Coord(), nil
	}
	needCaptain := func() (game.ActionType, error) {
		if s.Captain == nil {
			return 0, fmt.Errorf("%s needs a captain", s.Action)
		}
		return *s.Captain, nil
	}

	switch s.Action {
	case "port":
		c, err := needCell()
		return game.SetupPort{Player: s.Player, Cell: c}, err
	case "captain":
		kind, err := needCaptain()
		return game.PlaceCaptain{Player: s.Player, Kind: kind}, err
	case "forfeit":
		kind, err := needCaptain()
		return game.Forfeit{Player: s.Player, Kind: kind}, err
	case "sail":
		moves := make([]game.ShipMove, len(s.Ships))
		for i, sp := range s.Ships {
			moves[i] = game.ShipMove{Kind: sp.Kind, Path: coords(sp.Path)}
		}
		return game.Sail{Player: s.Player, Moves: moves, Bribes: s.Bribes}, nil
	case "build":
		c, err := needCell()
		return game.Build{Player: s.Player, Cell: c, Galleon: s.Galleon, ExtraSloops: s.ExtraSloops}, err
	case "steal":
		c, err := needCell()
		return game.Steal{Player: s.Player, Cell: c, Victim: s.Victim, PlaceSloop: s.PlaceSloop}, err
	case "sink":
		c, err := needCell()
		m := game.Sink{Player: s.Player, Cell: c, Victim: s.Victim, Kind: s.Ship}
		if s.Relocate != nil {
			m.Relocate = &game.Hop{From: s.Relocate.From.Coord(), To: s.Relocate.To.Coord()}
		}
		if s.Extra != nil {
			m.Extra = &game.SinkTarget{Victim: s.Extra.Victim, Kind: s.Extra.Kind}
		}
		return m, err
	case "draw":
		return game.DrawCharts{Player: s.Player, ExtraDraw: s.ExtraDraw, ExtraKeep: s.ExtraKeep}, nil
	case "keep":
		return game.KeepCharts{Player: s.Player, Keep: s.Keep}, nil
	case "claim":
		return game.ClaimChart{Player: s.Player, Chart: s.Chart}, nil
	case "pass":
		return game.EndPirateTurn{Player: s.Player}, nil
	case "wind":
		return game.UseWindToken{Player: s.Player}, nil
	}
	return nil, fmt.Errorf("unknown action %q", s.Action)
}
