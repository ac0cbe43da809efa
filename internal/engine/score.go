package engine

import "fmt"

// ScoringMethod selects between the two classic scoring systems.
type ScoringMethod string

const (
	// ScoringArea counts stones on board plus enclosed territory (Chinese).
	ScoringArea ScoringMethod = "area"
	// ScoringTerritory counts enclosed territory plus captures (Japanese).
	ScoringTerritory ScoringMethod = "territory"
)

// DefaultKomi is White's compensation for moving second. A half-integer, so
// the final score can never tie.
const DefaultKomi = 6.5

// Territory returns the number of empty intersections enclosed by each
// color. A region counts only when it borders exactly one color and does
// not reach the board edge; open and mixed-border regions are neutral.
func Territory(b Board) (black, white int) {
	for _, region := range FindEmptyRegions(b) {
		if region.TouchesEdge || len(region.Border) != 1 {
			continue
		}
		for owner := range region.Border {
			switch owner {
			case Black:
				black += len(region.Spots)
			case White:
				white += len(region.Spots)
			}
		}
	}
	return black, white
}

// CalculateScore computes both players' final scores. captures is the
// running tally of stones removed from the board over the whole game; it
// participates only in territory scoring.
func CalculateScore(b Board, method ScoringMethod, komi float64, captures Captures) (blackScore, whiteScore float64) {
	var blackStones, whiteStones int
	for i := range b.Spots {
		switch b.Spots[i].Occupant {
		case Black:
			blackStones++
		case White:
			whiteStones++
		}
	}
	blackTerritory, whiteTerritory := Territory(b)

	switch method {
	case ScoringTerritory:
		// captures.White is the number of white stones taken, i.e. Black's prisoners.
		blackScore = float64(blackTerritory + captures.White)
		whiteScore = float64(whiteTerritory+captures.Black) + komi
	default:
		blackScore = float64(blackStones + blackTerritory)
		whiteScore = float64(whiteStones+whiteTerritory) + komi
	}
	return blackScore, whiteScore
}

// AnnotateForScoring returns a copy of the board with scoring_owner and
// scoring_explanation filled in on every empty intersection. Annotations
// from any previous pass are cleared first; occupied spots carry no owner.
func AnnotateForScoring(b Board) Board {
	next := b.clone()
	for i := range next.Spots {
		next.Spots[i].ScoringOwner = nil
		next.Spots[i].ScoringExplanation = ""
	}

	for _, region := range FindEmptyRegions(next) {
		switch {
		case region.TouchesEdge:
			for _, idx := range region.Spots {
				next.Spots[idx].ScoringExplanation = "Open (touches edge)"
			}
		case len(region.Border) == 1:
			var owner Occupant
			for o := range region.Border {
				owner = o
			}
			for _, idx := range region.Spots {
				o := owner
				next.Spots[idx].ScoringOwner = &o
				next.Spots[idx].ScoringExplanation = fmt.Sprintf("Cell enclosed by %s", owner)
			}
		default:
			for _, idx := range region.Spots {
				next.Spots[idx].ScoringExplanation = "Neutral"
			}
		}
	}
	return next
}
