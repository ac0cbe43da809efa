package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotatePlayabilityEmptyBoard(t *testing.T) {
	b := NewBoard(3)
	annotated := AnnotatePlayability(b, nil, Black)

	for i := range annotated.Spots {
		assert.True(t, annotated.Spots[i].Playable)
	}
}

func TestAnnotatePlayabilityOccupiedAndSuicide(t *testing.T) {
	b := boardFromDiagram(t, `
		.....
		..B..
		.B.B.
		..B..
		.....
	`)

	annotated := AnnotatePlayability(b, nil, White)

	assert.False(t, annotated.At(2, 1).Playable, "occupied")
	assert.False(t, annotated.At(2, 2).Playable, "suicide for white")
	assert.True(t, annotated.At(0, 0).Playable)
	assert.True(t, annotated.At(4, 4).Playable)

	// The eye is fine for Black, whose own group it belongs to.
	annotatedBlack := AnnotatePlayability(b, nil, Black)
	assert.True(t, annotatedBlack.At(2, 2).Playable)
}

// With exactly one empty cell left, and that cell legal for the current
// player, it must be the only spot annotated playable.
func TestAnnotatePlayabilitySingleLegalCell(t *testing.T) {
	b := boardFromDiagram(t, `
		BB.
		WBW
		WWW
	`)

	annotated := AnnotatePlayability(b, nil, Black)

	var playable []int
	for i := range annotated.Spots {
		if annotated.Spots[i].Playable {
			playable = append(playable, i)
		}
	}
	require.Len(t, playable, 1)
	assert.Equal(t, b.Index(2, 0), playable[0])
}

func TestAnnotatePlayabilityRespectsKo(t *testing.T) {
	start := boardFromDiagram(t, `
		.BW..
		BW.W.
		.BW..
		.....
		.....
	`)

	afterCapture, _, err := ApplyMove(start, nil, Black, 2, 1, 1)
	require.NoError(t, err)

	annotated := AnnotatePlayability(afterCapture, &start, White)
	assert.False(t, annotated.At(1, 1).Playable, "immediate recapture is ko")
	assert.True(t, annotated.At(4, 4).Playable)

	// Without the snapshot the same point is an ordinary capture.
	noHistory := AnnotatePlayability(afterCapture, nil, White)
	assert.True(t, noHistory.At(1, 1).Playable)
}

func TestAnnotatePlayabilityDoesNotMutateInput(t *testing.T) {
	b := NewBoard(3)
	_ = AnnotatePlayability(b, nil, Black)
	for i := range b.Spots {
		assert.False(t, b.Spots[i].Playable)
	}
}
