package game

import (
	"fmt"

	"github.com/wtheisen/notorious/hex"
)

// IslandSpec places one island on the board.
type IslandSpec struct {
	Name    string          `yaml:"name"`
	Q       int             `yaml:"q"`
	R       int             `yaml:"r"`
	Blocked []hex.Direction `yaml:"blocked,flow"`
}

// Coord returns the island's cell.
func (s IslandSpec) Coord() hex.Coord {
	return hex.NewCoord(s.Q, s.R)
}

// Layout is the static part of a game: where the islands are and which charts
// make up the deck.
type Layout struct {
	Islands   []IslandSpec `yaml:"islands"`
	Treasures []hex.Coord  `yaml:"treasures"`
	Routes    [][2]string  `yaml:"routes"`
	Raids     []string     `yaml:"raids"` // first is revealed at the start, the rest on the reveal threshold
}

// Validate checks every name and coordinate the layout refers to.
func (l Layout) Validate() error {
	names := make(map[string]bool)
	cells := make(map[hex.Coord]bool)
	for _, is := range l.Islands {
		c := is.Coord()
		if !grid.Contains(c) {
			return fmt.Errorf("invalid layout: island %q at %v is off the board", is.Name, c)
		}
		if names[is.Name] {
			return fmt.Errorf("invalid layout: duplicate island %q", is.Name)
		}
		if cells[c] {
			return fmt.Errorf("invalid layout: two islands at %v", c)
		}
		names[is.Name] = true
		cells[c] = true
	}
	for _, t := range l.Treasures {
		if !t.Valid() || !grid.Contains(t) {
			return fmt.Errorf("invalid layout: treasure at %v is off the board", t)
		}
	}
	for _, r := range l.Routes {
		if !names[r[0]] || !names[r[1]] || r[0] == r[1] {
			return fmt.Errorf("invalid layout: bad smuggler route %s-%s", r[0], r[1])
		}
	}
	if len(l.Raids) == 0 {
		return fmt.Errorf("invalid layout: at least one raid is required")
	}
	for _, r := range l.Raids {
		if !names[r] {
			return fmt.Errorf("invalid layout: raid on unknown island %q", r)
		}
	}
	return nil
}

// Board builds an empty board with the layout's islands.
func (l Layout) Board() (Board, error) {
	islands := make(map[hex.Coord]Island, len(l.Islands))
	for _, is := range l.Islands {
		islands[is.Coord()] = Island{Name: is.Name, Blocked: is.Blocked}
	}
	return NewBoard(islands)
}

// Deck builds the chart deck. The draw pile is shuffled with shuffler.
func (l Layout) Deck(rules Rules, shuffler Shuffler) Deck {
	var d Deck
	id := 1
	for _, t := range l.Treasures {
		d.Draw = append(d.Draw, Chart{ID: id, Kind: TreasureMap, Target: t})
		id++
	}
	for _, r := range l.Routes {
		d.Draw = append(d.Draw, Chart{ID: id, Kind: SmugglerRoute, IslandA: r[0], IslandB: r[1]})
		id++
	}
	shuffle(shuffler, d.Draw)

	for i, name := range l.Raids {
		raid := Chart{ID: id, Kind: IslandRaid, Island: name, Notoriety: rules.RaidNotoriety}
		id++
		if i == 0 {
			d.Raids = append(d.Raids, raid)
		} else {
			d.Reserve = append(d.Reserve, raid)
		}
	}
	return d
}

// DefaultLayout is the standard map: five islands around an open center.
func DefaultLayout() Layout {
	return Layout{
		Islands: []IslandSpec{
			{Name: "Tortuga", Q: 0, R: -1, Blocked: []hex.Direction{hex.East, hex.West}},
			{Name: "Nassau", Q: 1, R: 1, Blocked: []hex.Direction{hex.West, hex.SouthWest}},
			{Name: "Port Royal", Q: -2, R: 1, Blocked: []hex.Direction{hex.NorthEast}},
			{Name: "Isla de Muerta", Q: 2, R: -1, Blocked: []hex.Direction{hex.West, hex.SouthWest}},
			{Name: "Skull Rock", Q: -1, R: 2, Blocked: []hex.Direction{hex.East}},
		},
		Treasures: []hex.Coord{
			hex.NewCoord(0, 0),
			hex.NewCoord(-2, 0),
			hex.NewCoord(2, 0),
			hex.NewCoord(0, -2),
			hex.NewCoord(0, 2),
			hex.NewCoord(-1, 1),
			hex.NewCoord(2, -2),
			hex.NewCoord(-2, 2),
		},
		Routes: [][2]string{
			{"Tortuga", "Nassau"},
			{"Port Royal", "Isla de Muerta"},
			{"Skull Rock", "Tortuga"},
			{"Port Royal", "Nassau"},
			{"Skull Rock", "Isla de Muerta"},
		},
		Raids: []string{"Tortuga", "Nassau"},
	}
}
