package engine

// Group is a maximal set of same-colored stones connected by 4-adjacency,
// together with the empty intersections adjacent to it. Groups are computed
// views over a board and are never persisted.
type Group struct {
	Occupant  Occupant
	Stones    []int            // spot indices, row-major
	Liberties map[int]struct{} // empty spot indices adjacent to the group
}

func (g Group) LibertyCount() int { return len(g.Liberties) }

func (g Group) Contains(idx int) bool {
	for _, s := range g.Stones {
		if s == idx {
			return true
		}
	}
	return false
}

// FindGroup computes the group containing (x, y) with an iterative flood
// fill over an explicit queue, so a full 19×19 chain cannot blow the stack.
// Starting from an empty spot yields a group with no stones.
func FindGroup(b Board, x, y int) Group {
	group := Group{Occupant: b.At(x, y).Occupant, Liberties: make(map[int]struct{})}
	if group.Occupant == Empty {
		return group
	}

	visited := make([]bool, len(b.Spots))
	queue := make([][2]int, 0, 8)
	queue = append(queue, [2]int{x, y})
	visited[b.Index(x, y)] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		group.Stones = append(group.Stones, b.Index(cur[0], cur[1]))

		for _, n := range b.Neighbors(cur[0], cur[1]) {
			nIdx := b.Index(n[0], n[1])
			switch b.Spots[nIdx].Occupant {
			case group.Occupant:
				if !visited[nIdx] {
					visited[nIdx] = true
					queue = append(queue, n)
				}
			case Empty:
				group.Liberties[nIdx] = struct{}{}
			}
		}
	}
	return group
}

// FindGroups returns every stone group on the board.
func FindGroups(b Board) []Group {
	var groups []Group
	seen := make([]bool, len(b.Spots))
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			idx := b.Index(x, y)
			if seen[idx] || b.Spots[idx].Occupant == Empty {
				continue
			}
			group := FindGroup(b, x, y)
			for _, s := range group.Stones {
				seen[s] = true
			}
			groups = append(groups, group)
		}
	}
	return groups
}
