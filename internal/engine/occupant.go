package engine

import (
	"encoding/json"
	"fmt"
)

// Occupant is the content of a single intersection: nothing, or a stone of
// one of the two colors. The set is closed; every switch over it in this
// package handles all three cases.
type Occupant uint8

const (
	Empty Occupant = iota
	Black
	White
)

func (o Occupant) String() string {
	switch o {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Opponent returns the opposing color. Empty has no opponent and maps to
// itself.
func (o Occupant) Opponent() Occupant {
	switch o {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (o Occupant) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *Occupant) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "empty":
		*o = Empty
	case "black":
		*o = Black
	case "white":
		*o = White
	default:
		return fmt.Errorf("unknown occupant %q", s)
	}
	return nil
}
