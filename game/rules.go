package game

import "fmt"

// Rules holds every tunable number of the game. A zero field is invalid; use
// StandardRules as the base and override what differs.
type Rules struct {
	StartingSloops    int   `yaml:"starting_sloops"`
	StartingGalleons  int   `yaml:"starting_galleons"`
	StartingFleet     int   `yaml:"starting_fleet"` // sloops placed with the port
	StartingDoubloons int   `yaml:"starting_doubloons"`
	StartingCaptains  int   `yaml:"starting_captains"`
	CaptainThresholds []int `yaml:"captain_thresholds,flow"`
	RevealThreshold   int   `yaml:"reveal_threshold"`
	WinThreshold      int   `yaml:"win_threshold"`

	BribeCost     int `yaml:"bribe_cost"`
	RelocateCost  int `yaml:"relocate_cost"`
	ExtraSinkCost int `yaml:"extra_sink_cost"`

	SailRange     int `yaml:"sail_range"`
	BuildSloops   int `yaml:"build_sloops"`
	BuildGalleons int `yaml:"build_galleons"`
	DrawCount     int `yaml:"draw_count"`
	KeepCount     int `yaml:"keep_count"`

	SloopSinkNotoriety   int `yaml:"sloop_sink_notoriety"`
	GalleonSinkNotoriety int `yaml:"galleon_sink_notoriety"`
	ControlNotoriety     int `yaml:"control_notoriety"`
	RaidNotoriety        int `yaml:"raid_notoriety"`
	RaidMinimum          int `yaml:"raid_minimum"`
}

// Validate checks the rules are self-consistent.
func (r Rules) Validate() error {
	positive := map[string]int{
		"starting_sloops":   r.StartingSloops,
		"starting_galleons": r.StartingGalleons,
		"starting_captains": r.StartingCaptains,
		"win_threshold":     r.WinThreshold,
		"sail_range":        r.SailRange,
		"build_sloops":      r.BuildSloops,
		"build_galleons":    r.BuildGalleons,
		"draw_count":        r.DrawCount,
		"keep_count":        r.KeepCount,
	}
	for name, v := range positive {
		if v <= 0 {
			return fmt.Errorf("invalid rules: %s must be positive, got %d", name, v)
		}
	}
	if r.StartingFleet < 0 || r.StartingFleet > r.StartingSloops {
		return fmt.Errorf("invalid rules: starting_fleet %d exceeds starting_sloops %d", r.StartingFleet, r.StartingSloops)
	}
	if r.KeepCount > r.DrawCount {
		return fmt.Errorf("invalid rules: keep_count %d exceeds draw_count %d", r.KeepCount, r.DrawCount)
	}
	if r.BribeCost < 0 || r.RelocateCost < 0 || r.ExtraSinkCost < 0 || r.StartingDoubloons < 0 {
		return fmt.Errorf("invalid rules: costs and doubloons must not be negative")
	}
	for i := 1; i < len(r.CaptainThresholds); i++ {
		if r.CaptainThresholds[i] <= r.CaptainThresholds[i-1] {
			return fmt.Errorf("invalid rules: captain_thresholds must be increasing")
		}
	}
	return nil
}

// Copy returns rules that share no slices with r.
func (r Rules) Copy() Rules {
	r.CaptainThresholds = append([]int(nil), r.CaptainThresholds...)
	return r
}

// SinkNotoriety is the base reward for sinking a ship of kind.
func (r Rules) SinkNotoriety(kind ShipKind) int {
	if kind == Galleon {
		return r.GalleonSinkNotoriety
	}
	return r.SloopSinkNotoriety
}
