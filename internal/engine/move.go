package engine

// MarkerRemoved is set on intersections whose stones were just captured.
// It is a transient display hint, not a rule artifact.
const MarkerRemoved = "removed"

// Captures counts stones removed from the board, per removed color.
type Captures struct {
	Black int `json:"black" bson:"black"`
	White int `json:"white" bson:"white"`
}

func (c Captures) Total() int { return c.Black + c.White }

// ApplyMove validates a stone placement and returns the resulting board.
//
// prev is the position in effect before the opponent's last move — the one
// a ko recapture would recreate; pass nil when no such position exists.
// The input board is never mutated: on failure it is returned unchanged
// alongside one of ErrOutOfBounds, ErrOccupied, ErrSuicide, ErrKoViolation.
func ApplyMove(b Board, prev *Board, color Occupant, x, y, moveNumber int) (Board, Captures, error) {
	if !b.InBounds(x, y) {
		return b, Captures{}, ErrOutOfBounds
	}
	if b.At(x, y).Occupant != Empty {
		return b, Captures{}, ErrOccupied
	}

	next := b.clone()
	num := moveNumber
	next.Spots[next.Index(x, y)] = Intersection{Occupant: color, MoveNumber: &num}

	// Captures resolve before the suicide check: taking an adjacent group
	// can be the very thing that gives the new stone its liberties.
	captured := captureAdjacent(&next, x, y, color)

	if captured.Total() == 0 {
		if FindGroup(next, x, y).LibertyCount() == 0 {
			return b, Captures{}, ErrSuicide
		}
	}

	if prev != nil && next.SameOccupants(*prev) {
		return b, Captures{}, ErrKoViolation
	}

	return next, captured, nil
}

// captureAdjacent removes every opponent group adjacent to (x, y) whose
// liberties dropped to zero. Several neighbors may belong to one group, so
// a group is processed at most once.
func captureAdjacent(b *Board, x, y int, color Occupant) Captures {
	var captured Captures
	processed := make(map[int]bool) // stone indices of groups already handled

	for _, n := range b.Neighbors(x, y) {
		nIdx := b.Index(n[0], n[1])
		if b.Spots[nIdx].Occupant != color.Opponent() || processed[nIdx] {
			continue
		}
		group := FindGroup(*b, n[0], n[1])
		for _, s := range group.Stones {
			processed[s] = true
		}
		if group.LibertyCount() > 0 {
			continue
		}

		for _, s := range group.Stones {
			b.Spots[s] = Intersection{Occupant: Empty, Marker: MarkerRemoved}
		}
		switch group.Occupant {
		case Black:
			captured.Black += len(group.Stones)
		case White:
			captured.White += len(group.Stones)
		}
	}
	return captured
}
