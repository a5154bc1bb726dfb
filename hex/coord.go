// Package hex implements cube/axial hex coordinates, the fixed board cell set
// and breadth-first path search over it.
package hex

import (
	"fmt"
	"strings"
)

// Coord is a cube coordinate. Q+R+S is always zero.
type Coord struct {
	Q int `yaml:"q" json:"q"`
	R int `yaml:"r" json:"r"`
	S int `yaml:"s" json:"s"`
}

// NewCoord builds a coordinate from its axial components.
func NewCoord(q, r int) Coord {
	return Coord{Q: q, R: r, S: -q - r}
}

// Direction indexes a hex side, 0 through 5, counter-clockwise from east.
type Direction int

const (
	East Direction = iota
	NorthEast
	NorthWest
	West
	SouthWest
	SouthEast
)

// NumDirections is the number of sides of a hex.
const NumDirections = 6

var directionNames = [NumDirections]string{"E", "NE", "NW", "W", "SW", "SE"}

func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(directionNames[d]), nil
}

// UnmarshalText accepts a side name such as "NE", in any case.
func (d *Direction) UnmarshalText(text []byte) error {
	name := strings.ToUpper(string(text))
	for i, n := range directionNames {
		if n == name {
			*d = Direction(i)
			return nil
		}
	}
	return fmt.Errorf("unknown direction %q", text)
}

// Opposite returns the direction pointing back across the same edge.
func (d Direction) Opposite() Direction {
	return (d + NumDirections/2) % NumDirections
}

// Valid reports whether d names one of the six sides.
func (d Direction) Valid() bool {
	return d >= 0 && d < NumDirections
}

// Offsets holds the unit vector for each direction.
var Offsets = [NumDirections]Coord{
	{Q: 1, R: 0, S: -1},
	{Q: 1, R: -1, S: 0},
	{Q: 0, R: -1, S: 1},
	{Q: -1, R: 0, S: 1},
	{Q: -1, R: 1, S: 0},
	{Q: 0, R: 1, S: -1},
}

// Valid reports whether the cube constraint holds.
func (c Coord) Valid() bool {
	return c.Q+c.R+c.S == 0
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.Q, c.R, c.S)
}

// Add returns the component-wise sum.
func (c Coord) Add(o Coord) Coord {
	return Coord{Q: c.Q + o.Q, R: c.R + o.R, S: c.S + o.S}
}

// Neighbor returns the adjacent coordinate across side d.
func (c Coord) Neighbor(d Direction) Coord {
	return c.Add(Offsets[d])
}

// Neighbors returns the six adjacent coordinates in direction order.
func (c Coord) Neighbors() [NumDirections]Coord {
	var out [NumDirections]Coord
	for d := range Offsets {
		out[d] = c.Add(Offsets[d])
	}
	return out
}

// Distance is the number of steps between a and b on an unobstructed grid.
func Distance(a, b Coord) int {
	return (abs(a.Q-b.Q) + abs(a.R-b.R) + abs(a.S-b.S)) / 2
}

// Adjacent reports whether a and b share an edge.
func Adjacent(a, b Coord) bool {
	return Distance(a, b) == 1
}

// DirectionTo returns the side of from that faces to. ok is false unless the
// two coordinates are adjacent.
func DirectionTo(from, to Coord) (d Direction, ok bool) {
	delta := Coord{Q: to.Q - from.Q, R: to.R - from.R, S: to.S - from.S}
	for i, off := range Offsets {
		if off == delta {
			return Direction(i), true
		}
	}
	return 0, false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
