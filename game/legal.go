package game

import "github.com/wtheisen/notorious/hex"

// LegalMoves enumerates the moves open to the active player. Bribed variants
// are left out except where the base move would be illegal without them, so
// the list stays small enough for a search bot.
func (gs *GameState) LegalMoves() []Move {
	if gs.Round.Ended {
		return nil
	}
	id := gs.Round.Active
	var candidates []Move

	switch gs.Round.Phase {
	case SetupPhase:
		for _, c := range grid.Cells() {
			candidates = append(candidates, SetupPort{Player: id, Cell: c})
		}
	case PlacePhase:
		for _, kind := range ActionTypes {
			candidates = append(candidates, PlaceCaptain{Player: id, Kind: kind})
		}
	case PlayPhase:
		candidates = gs.playMoves(id)
	case PiratePhase:
		p := gs.player(id)
		for _, c := range p.Hand {
			candidates = append(candidates, ClaimChart{Player: id, Chart: c.ID})
		}
		for _, c := range gs.Deck.Raids {
			candidates = append(candidates, ClaimChart{Player: id, Chart: c.ID})
		}
		candidates = append(candidates, EndPirateTurn{Player: id})
	}
	if gs.Round.WindHolder == id && gs.Round.Phase != SetupPhase {
		candidates = append(candidates, UseWindToken{Player: id})
	}

	moves := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		if m.Validate(gs) == nil {
			moves = append(moves, m)
		}
	}
	return moves
}

func (gs *GameState) playMoves(id int) []Move {
	p := gs.player(id)
	if p.Pending != nil {
		var moves []Move
		for _, keep := range combinations(len(p.Pending.Cards), p.Pending.Keep) {
			moves = append(moves, KeepCharts{Player: id, Keep: keep})
		}
		return moves
	}

	var moves []Move
	seen := make(map[ActionType]bool)
	for _, kind := range p.Captains {
		if seen[kind] {
			continue
		}
		seen[kind] = true
		moves = append(moves, Forfeit{Player: id, Kind: kind})
		switch kind {
		case SailAction:
			moves = append(moves, gs.sailMoves(id)...)
		case BuildAction:
			for _, c := range grid.Cells() {
				moves = append(moves, Build{Player: id, Cell: c}, Build{Player: id, Cell: c, Galleon: true})
			}
		case StealAction:
			for _, c := range grid.Cells() {
				for victim := range gs.Players {
					moves = append(moves,
						Steal{Player: id, Cell: c, Victim: victim},
						Steal{Player: id, Cell: c, Victim: victim, PlaceSloop: true})
				}
			}
		case SinkAction:
			for _, c := range grid.Cells() {
				for victim := range gs.Players {
					moves = append(moves,
						Sink{Player: id, Cell: c, Victim: victim, Kind: Sloop},
						Sink{Player: id, Cell: c, Victim: victim, Kind: Galleon})
				}
			}
		case ChartAction:
			moves = append(moves, DrawCharts{Player: id})
		}
	}
	return moves
}

// sailMoves lists single-ship sails to every cell reachable within range.
func (gs *GameState) sailMoves(id int) []Move {
	b := &gs.Board
	power := powerOf(gs.player(id))
	budget := power.sailRange(gs.Rules.SailRange)
	canSail := func(from, to hex.Coord) bool { return b.CanSail(from, to, power.IgnoreIslandEdges) }

	var moves []Move
	for _, from := range grid.Cells() {
		for _, kind := range []ShipKind{Sloop, Galleon} {
			if b.Count(from, id, kind) == 0 {
				continue
			}
			for _, to := range grid.Cells() {
				if to == from || hex.Distance(from, to) > budget {
					continue
				}
				path := grid.FindPath(from, to, nil, canSail)
				if len(path) < 2 || len(path)-1 > budget {
					continue
				}
				moves = append(moves, Sail{Player: id, Moves: []ShipMove{{Kind: kind, Path: path}}})
			}
		}
	}
	return moves
}

// combinations returns every k-element subset of 0..n-1 in lexicographic
// order.
func combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	var out [][]int
	pick := make([]int, 0, k)
	var walk func(start int)
	walk = func(start int) {
		if len(pick) == k {
			out = append(out, append([]int(nil), pick...))
			return
		}
		for i := start; i < n; i++ {
			pick = append(pick, i)
			walk(i + 1)
			pick = pick[:len(pick)-1]
		}
	}
	walk(0)
	return out
}
