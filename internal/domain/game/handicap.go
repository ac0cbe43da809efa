package game

import "goban/internal/engine"

// Standard star-point placements per board size, in the order stones are
// handed out: opposite corners first, then the remaining corners, then
// tengen. Non-standard sizes get no pre-placed stones.
var handicapPoints = map[int][][2]int{
	9:  {{2, 2}, {6, 6}, {2, 6}, {6, 2}, {4, 4}},
	13: {{3, 3}, {9, 9}, {3, 9}, {9, 3}, {6, 6}},
	19: {{3, 3}, {15, 15}, {15, 3}, {3, 15}, {9, 9}},
}

// placeHandicapStones puts up to handicap Black stones on the star points
// of the board and returns how many were actually placed.
func placeHandicapStones(b *engine.Board, size, handicap int) int {
	points, ok := handicapPoints[size]
	if !ok || handicap <= 0 {
		return 0
	}
	if handicap > len(points) {
		handicap = len(points)
	}
	for i := 0; i < handicap; i++ {
		num := 0
		*b = b.Set(points[i][0], points[i][1], engine.Intersection{Occupant: engine.Black, MoveNumber: &num})
	}
	return handicap
}
