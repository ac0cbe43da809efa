package engine

// AnnotatePlayability returns a copy of the board where every
// intersection's playable flag says whether turn may legally play there.
// Each empty spot is checked with the full move pipeline — captures,
// suicide and ko included — so the annotation is only valid for this turn
// and this history and must be recomputed after every transition.
func AnnotatePlayability(b Board, prev *Board, turn Occupant) Board {
	next := b.clone()
	for y := 0; y < next.Size; y++ {
		for x := 0; x < next.Size; x++ {
			idx := next.Index(x, y)
			if next.Spots[idx].Occupant != Empty {
				next.Spots[idx].Playable = false
				continue
			}
			_, _, err := ApplyMove(b, prev, turn, x, y, 0)
			next.Spots[idx].Playable = err == nil
		}
	}
	return next
}
