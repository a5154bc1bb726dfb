package game

import (
	"fmt"

	"github.com/wtheisen/notorious/hex"
)

type ChartKind int

const (
	TreasureMap ChartKind = iota
	IslandRaid
	SmugglerRoute
)

var chartNames = map[ChartKind]string{
	TreasureMap:   "treasure_map",
	IslandRaid:    "island_raid",
	SmugglerRoute: "smuggler_route",
}

func (k ChartKind) String() string {
	if name, ok := chartNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ChartKind(%d)", int(k))
}

func (k ChartKind) MarshalText() ([]byte, error) {
	name, ok := chartNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown chart kind %d", int(k))
	}
	return []byte(name), nil
}

func (k *ChartKind) UnmarshalText(text []byte) error {
	for kind, name := range chartNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown chart kind %q", text)
}

// Chart is an objective card. Which fields are meaningful depends on Kind:
// Target for a treasure map, Island/Accrued/Notoriety for a raid and
// IslandA/IslandB for a smuggler route.
type Chart struct {
	ID        int       `yaml:"id"`
	Kind      ChartKind `yaml:"kind"`
	Target    hex.Coord `yaml:"target,flow,omitempty"`
	Island    string    `yaml:"island,omitempty"`
	Accrued   int       `yaml:"accrued,omitempty"`
	Notoriety int       `yaml:"notoriety,omitempty"`
	IslandA   string    `yaml:"island_a,omitempty"`
	IslandB   string    `yaml:"island_b,omitempty"`
}

func (c Chart) String() string {
	switch c.Kind {
	case TreasureMap:
		return fmt.Sprintf("treasure map #%d to %v", c.ID, c.Target)
	case IslandRaid:
		return fmt.Sprintf("raid #%d on %s (+%d)", c.ID, c.Island, c.Accrued)
	case SmugglerRoute:
		return fmt.Sprintf("smuggler route #%d %s-%s", c.ID, c.IslandA, c.IslandB)
	}
	return fmt.Sprintf("chart #%d", c.ID)
}

// Deck holds every chart not in a player's hand. The back of Draw is the next
// card drawn. Raids are the revealed public raids; Reserve holds the raids
// still waiting to be revealed.
type Deck struct {
	Draw    []Chart `yaml:"draw"`
	Discard []Chart `yaml:"discard"`
	Raids   []Chart `yaml:"raids"`
	Reserve []Chart `yaml:"reserve"`
}

// Copy returns a deep copy of d.
func (d Deck) Copy() Deck {
	return Deck{
		Draw:    append([]Chart(nil), d.Draw...),
		Discard: append([]Chart(nil), d.Discard...),
		Raids:   append([]Chart(nil), d.Raids...),
		Reserve: append([]Chart(nil), d.Reserve...),
	}
}

// Available is the number of cards that can still be drawn, counting the
// discard pile that would be reshuffled in.
func (d *Deck) Available() int {
	return len(d.Draw) + len(d.Discard)
}

// draw takes up to n cards from the back of the draw pile. When the pile runs
// short the discard pile is shuffled and slid underneath it first.
func (d *Deck) draw(n int, shuffler Shuffler) []Chart {
	if len(d.Draw) < n && len(d.Discard) > 0 {
		d.reshuffle(shuffler)
	}
	if n > len(d.Draw) {
		n = len(d.Draw)
	}
	cut := len(d.Draw) - n
	drawn := make([]Chart, 0, n)
	for i := len(d.Draw) - 1; i >= cut; i-- {
		drawn = append(drawn, d.Draw[i])
	}
	d.Draw = d.Draw[:cut:cut]
	return drawn
}

func (d *Deck) reshuffle(shuffler Shuffler) {
	pile := d.Discard
	shuffle(shuffler, pile)
	d.Draw = append(pile, d.Draw...)
	d.Discard = nil
}

// discard puts cards on the discard pile.
func (d *Deck) discard(cards ...Chart) {
	d.Discard = append(d.Discard, cards...)
}

// revealRaid moves the next reserved raid into play. It reports false when
// none is left.
func (d *Deck) revealRaid() bool {
	if len(d.Reserve) == 0 {
		return false
	}
	d.Raids = append(d.Raids, d.Reserve[0])
	d.Reserve = d.Reserve[1:]
	return true
}

func (d *Deck) raidIndex(id int) int {
	for i, c := range d.Raids {
		if c.ID == id {
			return i
		}
	}
	return -1
}
