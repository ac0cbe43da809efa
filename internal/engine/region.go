package engine

// EmptyRegion is a contiguous set of empty intersections under 4-adjacency,
// with the stone colors bordering it and whether it reaches the board edge.
// A region bordered by exactly one color and closed off from the edge is
// that color's territory; everything else is neutral.
type EmptyRegion struct {
	Spots       []int
	Border      map[Occupant]struct{}
	TouchesEdge bool
}

// FindEmptyRegions flood-fills every connected empty region on the board.
func FindEmptyRegions(b Board) []EmptyRegion {
	var regions []EmptyRegion
	visited := make([]bool, len(b.Spots))

	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			idx := b.Index(x, y)
			if visited[idx] || b.Spots[idx].Occupant != Empty {
				continue
			}

			region := EmptyRegion{Border: make(map[Occupant]struct{})}
			queue := [][2]int{{x, y}}
			visited[idx] = true

			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				cx, cy := cur[0], cur[1]
				region.Spots = append(region.Spots, b.Index(cx, cy))
				if cx == 0 || cx == b.Size-1 || cy == 0 || cy == b.Size-1 {
					region.TouchesEdge = true
				}
				for _, n := range b.Neighbors(cx, cy) {
					nIdx := b.Index(n[0], n[1])
					if occ := b.Spots[nIdx].Occupant; occ == Empty {
						if !visited[nIdx] {
							visited[nIdx] = true
							queue = append(queue, n)
						}
					} else {
						region.Border[occ] = struct{}{}
					}
				}
			}
			regions = append(regions, region)
		}
	}
	return regions
}
