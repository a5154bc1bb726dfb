package hex

// BoardRadius is the radius of the standard board; radius 2 gives 19 cells.
const BoardRadius = 2

// Grid is a fixed, bounded set of cells.
type Grid struct {
	cells []Coord
	index map[Coord]int
}

// NewGrid returns every coordinate within radius of the origin, ordered by
// row then column.
func NewGrid(radius int) *Grid {
	g := &Grid{index: make(map[Coord]int)}
	for r := -radius; r <= radius; r++ {
		for q := -radius; q <= radius; q++ {
			c := NewCoord(q, r)
			if abs(c.S) > radius {
				continue
			}
			g.index[c] = len(g.cells)
			g.cells = append(g.cells, c)
		}
	}
	return g
}

// StandardGrid returns the 19-cell board.
func StandardGrid() *Grid {
	return NewGrid(BoardRadius)
}

// Cells returns the coordinates in a stable order. The slice must not be modified.
func (g *Grid) Cells() []Coord {
	return g.cells
}

// Len is the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Contains reports whether c is a board cell.
func (g *Grid) Contains(c Coord) bool {
	_, ok := g.index[c]
	return ok
}

// Index returns the position of c in Cells, or -1 if c is off the board.
func (g *Grid) Index(c Coord) int {
	if i, ok := g.index[c]; ok {
		return i
	}
	return -1
}

// Neighbors returns the on-board neighbors of c in direction order.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, NumDirections)
	for _, n := range c.Neighbors() {
		if g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}
