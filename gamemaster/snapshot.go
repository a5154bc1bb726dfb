package gamemaster

import (
	"fmt"
	"os"

	"github.com/wtheisen/notorious/game"
)

// SaveState writes gs as YAML to path.
func SaveState(path string, gs *game.GameState) error {
	data, err := gs.Marshal()
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// LoadState reads a snapshot written by SaveState and injects shuffler.
func LoadState(path string, shuffler game.Shuffler) (*game.GameState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	gs, err := game.Unmarshal(data, shuffler)
	if err != nil {
		return nil, fmt.Errorf("load state %s: %w", path, err)
	}
	return gs, nil
}
