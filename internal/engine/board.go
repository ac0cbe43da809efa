package engine

import (
	"encoding/json"
	"fmt"
)

// Intersection is the full state of a single point on the board. Its flat
// row-major sequence is the wire format exchanged with the hosting and
// presentation layers.
type Intersection struct {
	Occupant           Occupant  `json:"occupant" bson:"occupant"`
	MoveNumber         *int      `json:"move_number,omitempty" bson:"move_number,omitempty"`
	Marker             string    `json:"marker,omitempty" bson:"marker,omitempty"`
	ScoringOwner       *Occupant `json:"scoring_owner,omitempty" bson:"scoring_owner,omitempty"`
	ScoringExplanation string    `json:"scoring_explanation,omitempty" bson:"scoring_explanation,omitempty"`
	Playable           bool      `json:"playable" bson:"playable"`
}

// Board is a square grid of intersections stored row-major: the spot at
// column x, row y lives at index y*Size + x. Boards have value semantics —
// Set, ApplyMove and the annotators return fresh boards and never touch the
// receiver's spots.
type Board struct {
	Size  int            `json:"size" bson:"size"`
	Spots []Intersection `json:"spots" bson:"spots"`
}

func NewBoard(size int) Board {
	return Board{Size: size, Spots: make([]Intersection, size*size)}
}

func (b Board) Index(x, y int) int { return y*b.Size + x }

func (b Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Size && y >= 0 && y < b.Size
}

func (b Board) At(x, y int) Intersection { return b.Spots[b.Index(x, y)] }

// Set returns a new board with the spot at (x, y) replaced.
func (b Board) Set(x, y int, spot Intersection) Board {
	next := b.clone()
	next.Spots[next.Index(x, y)] = spot
	return next
}

func (b Board) clone() Board {
	spots := make([]Intersection, len(b.Spots))
	copy(spots, b.Spots)
	return Board{Size: b.Size, Spots: spots}
}

// Neighbors returns the 2-4 orthogonally adjacent coordinates of (x, y).
// Diagonal adjacency never counts in Go.
func (b Board) Neighbors(x, y int) [][2]int {
	result := make([][2]int, 0, 4)
	if x > 0 {
		result = append(result, [2]int{x - 1, y})
	}
	if x+1 < b.Size {
		result = append(result, [2]int{x + 1, y})
	}
	if y > 0 {
		result = append(result, [2]int{x, y - 1})
	}
	if y+1 < b.Size {
		result = append(result, [2]int{x, y + 1})
	}
	return result
}

// SameOccupants compares stone placement only, ignoring move numbers,
// markers and annotations. This is the comparison the ko rule is defined
// over.
func (b Board) SameOccupants(other Board) bool {
	if b.Size != other.Size || len(b.Spots) != len(other.Spots) {
		return false
	}
	for i := range b.Spots {
		if b.Spots[i].Occupant != other.Spots[i].Occupant {
			return false
		}
	}
	return true
}

// MarshalSpots serializes the board as a flat row-major JSON array of
// intersections.
func (b Board) MarshalSpots() ([]byte, error) {
	return json.Marshal(b.Spots)
}

// UnmarshalSpots restores a board of the given size from MarshalSpots
// output. It fails with ErrMalformedBoard when the payload does not decode
// or does not contain exactly size² spots.
func UnmarshalSpots(data []byte, size int) (Board, error) {
	var spots []Intersection
	if err := json.Unmarshal(data, &spots); err != nil {
		return Board{}, fmt.Errorf("%w: %v", ErrMalformedBoard, err)
	}
	if len(spots) != size*size {
		return Board{}, fmt.Errorf("%w: got %d spots, want %d for size %d", ErrMalformedBoard, len(spots), size*size, size)
	}
	return Board{Size: size, Spots: spots}, nil
}
