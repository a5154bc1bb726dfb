package game

// StandardRules returns the rules of the base game.
func StandardRules() Rules {
	return Rules{
		StartingSloops:    8,
		StartingGalleons:  4,
		StartingFleet:     2,
		StartingDoubloons: 3,
		StartingCaptains:  2,
		CaptainThresholds: []int{5, 12},
		RevealThreshold:   10,
		WinThreshold:      24,

		BribeCost:     1,
		RelocateCost:  1,
		ExtraSinkCost: 2,

		SailRange:     2,
		BuildSloops:   2,
		BuildGalleons: 1,
		DrawCount:     2,
		KeepCount:     1,

		SloopSinkNotoriety:   1,
		GalleonSinkNotoriety: 3,
		ControlNotoriety:     1,
		RaidNotoriety:        3,
		RaidMinimum:          2,
	}
}
