package game

import "fmt"

type ShipKind int

const (
	Sloop ShipKind = iota
	Galleon
	Port
)

var shipNames = map[ShipKind]string{
	Sloop:   "sloop",
	Galleon: "galleon",
	Port:    "port",
}

// Influence is the weight a ship of this kind adds to its owner in a cell.
func (k ShipKind) Influence() int {
	switch k {
	case Sloop:
		return 1
	case Galleon:
		return 2
	case Port:
		return 3
	}
	panic(fmt.Sprintf("unknown ship kind %d", int(k)))
}

// Mobile reports whether ships of this kind can sail, be built or be sunk.
func (k ShipKind) Mobile() bool {
	return k == Sloop || k == Galleon
}

func (k ShipKind) String() string {
	if name, ok := shipNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ShipKind(%d)", int(k))
}

func (k ShipKind) MarshalText() ([]byte, error) {
	name, ok := shipNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown ship kind %d", int(k))
	}
	return []byte(name), nil
}

func (k *ShipKind) UnmarshalText(text []byte) error {
	for kind, name := range shipNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown ship kind %q", text)
}

// Ship is a single piece on the board.
type Ship struct {
	Kind  ShipKind `yaml:"kind"`
	Owner int      `yaml:"owner"`
}
