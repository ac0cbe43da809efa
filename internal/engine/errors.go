package engine

import "errors"

var (
	ErrOutOfBounds    = errors.New("coordinates are outside the board")
	ErrOccupied       = errors.New("intersection is already occupied")
	ErrSuicide        = errors.New("move leaves own group with no liberties")
	ErrKoViolation    = errors.New("move recreates the previous board position")
	ErrMalformedBoard = errors.New("malformed board")
)
