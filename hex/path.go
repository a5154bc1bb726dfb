package hex

// FindPath runs a breadth-first search from start to end over the grid. A
// neighbor is expanded only when isBlocked reports false for it and
// canTraverse reports true for the edge leading to it. Either predicate may be
// nil. The returned path includes both endpoints; it is empty when end is
// blocked or unreachable.
func (g *Grid) FindPath(start, end Coord, isBlocked func(Coord) bool, canTraverse func(from, to Coord) bool) []Coord {
	if !g.Contains(start) || !g.Contains(end) {
		return nil
	}
	if isBlocked != nil && isBlocked(end) {
		return nil
	}
	if start == end {
		return []Coord{start}
	}

	prev := map[Coord]Coord{start: start}
	queue := []Coord{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range g.Neighbors(current) {
			if _, seen := prev[next]; seen {
				continue
			}
			if isBlocked != nil && isBlocked(next) {
				continue
			}
			if canTraverse != nil && !canTraverse(current, next) {
				continue
			}
			prev[next] = current
			if next == end {
				return walkBack(prev, start, end)
			}
			queue = append(queue, next)
		}
	}
	return nil
}

// Reachable reports whether a path exists between start and end.
func (g *Grid) Reachable(start, end Coord, isBlocked func(Coord) bool, canTraverse func(from, to Coord) bool) bool {
	return len(g.FindPath(start, end, isBlocked, canTraverse)) > 0
}

func walkBack(prev map[Coord]Coord, start, end Coord) []Coord {
	path := []Coord{end}
	for c := end; c != start; {
		c = prev[c]
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
