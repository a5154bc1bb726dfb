package game

import (
	"fmt"

	"github.com/wtheisen/notorious/hex"
)

var grid = hex.StandardGrid()

// Grid returns the fixed 19-cell topology every board is laid out on.
func Grid() *hex.Grid {
	return grid
}

// Island is bound to one cell for the whole game. Blocked lists the sides of
// that cell ships may not sail across.
type Island struct {
	Name    string          `yaml:"name"`
	Blocked []hex.Direction `yaml:"blocked,flow"`
}

// Blocks reports whether the island closes side d of its cell.
func (i *Island) Blocks(d hex.Direction) bool {
	if i == nil {
		return false
	}
	for _, b := range i.Blocked {
		if b == d {
			return true
		}
	}
	return false
}

// Cell holds the ships physically present at one coordinate.
type Cell struct {
	Coord  hex.Coord `yaml:"coord,flow"`
	Ships  []Ship    `yaml:"ships,omitempty"`
	Island *Island   `yaml:"island,omitempty"`
}

// Board is the static island layout plus the dynamic ship positions, one
// entry per grid cell in grid order.
type Board struct {
	Cells []Cell `yaml:"cells"`
}

// NewBoard lays out an empty board with the given islands.
func NewBoard(islands map[hex.Coord]Island) (Board, error) {
	b := Board{Cells: make([]Cell, grid.Len())}
	for i, c := range grid.Cells() {
		b.Cells[i].Coord = c
	}
	for c, island := range islands {
		cell := b.Cell(c)
		if cell == nil {
			return Board{}, fmt.Errorf("island %q at %v is off the board", island.Name, c)
		}
		for _, d := range island.Blocked {
			if !d.Valid() {
				return Board{}, fmt.Errorf("island %q has invalid blocked side %d", island.Name, d)
			}
		}
		cell.Island = &Island{Name: island.Name, Blocked: append([]hex.Direction(nil), island.Blocked...)}
	}
	return b, nil
}

// Copy returns a deep copy sharing no slices with b.
func (b Board) Copy() Board {
	cells := make([]Cell, len(b.Cells))
	for i, cell := range b.Cells {
		cells[i] = Cell{Coord: cell.Coord}
		if len(cell.Ships) > 0 {
			cells[i].Ships = append([]Ship(nil), cell.Ships...)
		}
		if cell.Island != nil {
			island := Island{Name: cell.Island.Name, Blocked: append([]hex.Direction(nil), cell.Island.Blocked...)}
			cells[i].Island = &island
		}
	}
	return Board{Cells: cells}
}

// Cell returns the cell at c, or nil when c is off the board.
func (b *Board) Cell(c hex.Coord) *Cell {
	i := grid.Index(c)
	if i < 0 || i >= len(b.Cells) {
		return nil
	}
	return &b.Cells[i]
}

// IslandCell returns the coordinate of the named island.
func (b *Board) IslandCell(name string) (hex.Coord, bool) {
	for _, cell := range b.Cells {
		if cell.Island != nil && cell.Island.Name == name {
			return cell.Coord, true
		}
	}
	return hex.Coord{}, false
}

// Count returns how many ships of kind owner has at c.
func (b *Board) Count(c hex.Coord, owner int, kind ShipKind) int {
	cell := b.Cell(c)
	if cell == nil {
		return 0
	}
	n := 0
	for _, s := range cell.Ships {
		if s.Owner == owner && s.Kind == kind {
			n++
		}
	}
	return n
}

// HasPresence reports whether owner has any ship, port included, at c.
func (b *Board) HasPresence(c hex.Coord, owner int) bool {
	cell := b.Cell(c)
	if cell == nil {
		return false
	}
	for _, s := range cell.Ships {
		if s.Owner == owner {
			return true
		}
	}
	return false
}

// HasForeign reports whether anyone but owner has a ship at c.
func (b *Board) HasForeign(c hex.Coord, owner int) bool {
	cell := b.Cell(c)
	if cell == nil {
		return false
	}
	for _, s := range cell.Ships {
		if s.Owner != owner {
			return true
		}
	}
	return false
}

// Fleet counts the ships of kind owner has anywhere on the board.
func (b *Board) Fleet(owner int, kind ShipKind) int {
	n := 0
	for _, cell := range b.Cells {
		for _, s := range cell.Ships {
			if s.Owner == owner && s.Kind == kind {
				n++
			}
		}
	}
	return n
}

// Influence sums the weight of owner's ships at c.
func (b *Board) Influence(c hex.Coord, owner int) int {
	cell := b.Cell(c)
	if cell == nil {
		return 0
	}
	total := 0
	for _, s := range cell.Ships {
		if s.Owner == owner {
			total += s.Kind.Influence()
		}
	}
	return total
}

// Controller returns the owner with strictly the most influence at c. A tie
// for the top, including an empty cell, has no controller.
func (b *Board) Controller(c hex.Coord) (owner int, ok bool) {
	cell := b.Cell(c)
	if cell == nil {
		return -1, false
	}
	totals := make(map[int]int)
	for _, s := range cell.Ships {
		totals[s.Owner] += s.Kind.Influence()
	}
	best, owner, tied := 0, -1, false
	for o, v := range totals {
		switch {
		case v > best:
			best, owner, tied = v, o, false
		case v == best:
			tied = true
		}
	}
	if best == 0 || tied {
		return -1, false
	}
	return owner, true
}

// CanTraverseEdge reports whether a ship may sail between two adjacent cells.
// The edge is closed when an island on either endpoint blocks the side facing
// the other endpoint.
func (b *Board) CanTraverseEdge(from, to hex.Coord) bool {
	d, ok := hex.DirectionTo(from, to)
	if !ok {
		return false
	}
	src, dst := b.Cell(from), b.Cell(to)
	if src == nil || dst == nil {
		return false
	}
	return !src.Island.Blocks(d) && !dst.Island.Blocks(d.Opposite())
}

// CanSail reports whether a single hop is legal, optionally ignoring islands.
func (b *Board) CanSail(from, to hex.Coord, ignoreIslands bool) bool {
	if b.Cell(from) == nil || b.Cell(to) == nil || !hex.Adjacent(from, to) {
		return false
	}
	return ignoreIslands || b.CanTraverseEdge(from, to)
}

// FindPath returns one shortest sailable path between two cells.
func (b *Board) FindPath(from, to hex.Coord) []hex.Coord {
	return grid.FindPath(from, to, nil, b.CanTraverseEdge)
}

// PlaceShip adds a ship to c.
func (b *Board) PlaceShip(c hex.Coord, ship Ship) error {
	cell := b.Cell(c)
	if cell == nil {
		return fmt.Errorf("cannot place ship: %v is off the board", c)
	}
	cell.Ships = append(cell.Ships, ship)
	return nil
}

// RemoveShip removes one ship matching ship from c.
func (b *Board) RemoveShip(c hex.Coord, ship Ship) error {
	cell := b.Cell(c)
	if cell == nil {
		return fmt.Errorf("cannot remove ship: %v is off the board", c)
	}
	for i, s := range cell.Ships {
		if s == ship {
			cell.Ships = append(cell.Ships[:i], cell.Ships[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("cannot remove ship: no %s of player %d at %v", ship.Kind, ship.Owner, c)
}

// MoveShip moves one ship a single hop. On error neither cell changes.
func (b *Board) MoveShip(from, to hex.Coord, ship Ship, ignoreIslands bool) error {
	if !ship.Kind.Mobile() {
		return fmt.Errorf("cannot move ship: a %s does not sail", ship.Kind)
	}
	if !b.CanSail(from, to, ignoreIslands) {
		return fmt.Errorf("cannot move ship: no sailable edge from %v to %v", from, to)
	}
	if err := b.RemoveShip(from, ship); err != nil {
		return fmt.Errorf("cannot move ship: %w", err)
	}
	// to is on the board, checked by CanSail
	_ = b.PlaceShip(to, ship)
	return nil
}
