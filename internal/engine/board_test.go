package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardFromDiagram builds a board from a whitespace-trimmed diagram where
// 'B' is a black stone, 'W' a white stone and '.' an empty intersection.
// Rows are y, columns are x.
func boardFromDiagram(t *testing.T, diagram string) Board {
	t.Helper()

	var lines []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	size := len(lines)
	b := NewBoard(size)
	for y, line := range lines {
		require.Len(t, line, size, "diagram must be square")
		for x, ch := range line {
			switch ch {
			case 'B':
				b.Spots[b.Index(x, y)].Occupant = Black
			case 'W':
				b.Spots[b.Index(x, y)].Occupant = White
			case '.':
			default:
				t.Fatalf("unexpected diagram rune %q", ch)
			}
		}
	}
	return b
}

func TestBoardIndexing(t *testing.T) {
	b := NewBoard(3)
	assert.Equal(t, 0, b.Index(0, 0))
	assert.Equal(t, 4, b.Index(1, 1))
	assert.Equal(t, 8, b.Index(2, 2))
	assert.Equal(t, 5, b.Index(2, 1), "linear index is y*size + x")
}

func TestBoardInBounds(t *testing.T) {
	b := NewBoard(9)
	assert.True(t, b.InBounds(0, 0))
	assert.True(t, b.InBounds(8, 8))
	assert.False(t, b.InBounds(-1, 0))
	assert.False(t, b.InBounds(0, 9))
}

func TestBoardSetDoesNotMutateReceiver(t *testing.T) {
	b := NewBoard(3)
	next := b.Set(1, 1, Intersection{Occupant: Black})

	assert.Equal(t, Black, next.At(1, 1).Occupant)
	assert.Equal(t, Empty, b.At(1, 1).Occupant, "the original board must stay untouched")
}

func TestBoardNeighbors(t *testing.T) {
	b := NewBoard(9)

	assert.Len(t, b.Neighbors(0, 0), 2, "corner")
	assert.Len(t, b.Neighbors(4, 0), 3, "edge")
	assert.Len(t, b.Neighbors(4, 4), 4, "center")

	for _, n := range b.Neighbors(0, 0) {
		assert.True(t, b.InBounds(n[0], n[1]))
	}
}

func TestSameOccupantsIgnoresAnnotations(t *testing.T) {
	a := boardFromDiagram(t, `
		.B.
		...
		...
	`)
	b := a.clone()
	b.Spots[0].Marker = MarkerRemoved
	b.Spots[0].Playable = true

	assert.True(t, a.SameOccupants(b))

	c := b.Set(0, 0, Intersection{Occupant: White})
	assert.False(t, a.SameOccupants(c))
}

func TestBoardSerializeRoundTrip(t *testing.T) {
	b := boardFromDiagram(t, `
		.BW
		...
		W..
	`)
	num := 7
	b.Spots[1].MoveNumber = &num

	data, err := b.MarshalSpots()
	require.NoError(t, err)

	restored, err := UnmarshalSpots(data, 3)
	require.NoError(t, err)
	require.Equal(t, b.Spots, restored.Spots)
}

func TestUnmarshalSpotsMalformed(t *testing.T) {
	b := NewBoard(3)
	data, err := b.MarshalSpots()
	require.NoError(t, err)

	// Right payload, wrong board size.
	_, err = UnmarshalSpots(data, 4)
	require.ErrorIs(t, err, ErrMalformedBoard)

	_, err = UnmarshalSpots([]byte("not json"), 3)
	require.ErrorIs(t, err, ErrMalformedBoard)
}
