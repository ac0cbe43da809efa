package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goban/internal/engine"
	apperrors "goban/internal/errors"
	"goban/internal/statuses"
)

func newActiveGame(t *testing.T, boardSize int) *Game {
	t.Helper()
	g, err := NewGame(boardSize, 0, 0, "", "alice")
	require.NoError(t, err)
	require.NoError(t, g.Join("bob"))
	return g
}

func TestNewGameDefaults(t *testing.T) {
	g, err := NewGame(0, 0, 0, "", "alice")
	require.NoError(t, err)

	assert.Equal(t, DefaultBoardSize, g.BoardSize)
	assert.Equal(t, engine.DefaultKomi, g.Komi)
	assert.Equal(t, engine.ScoringArea, g.Scoring)
	assert.Equal(t, statuses.StatusWaitOpponent, g.Status)
	assert.Equal(t, "alice", g.PlayerBlack)
	assert.Empty(t, g.PlayerWhite)
	assert.Equal(t, engine.Black, g.Turn)
	assert.False(t, g.GameOver)
	assert.Nil(t, g.FinalScoreBlack)
	assert.Nil(t, g.FinalScoreWhite)

	for i := range g.Board.Spots {
		assert.True(t, g.Board.Spots[i].Playable, "every point of an empty board is playable")
	}
}

func TestNewGameRejectsTinyBoard(t *testing.T) {
	_, err := NewGame(1, 0, 0, "", "alice")
	require.ErrorIs(t, err, apperrors.ErrBadBoardSize)
}

func TestNewGameHandicap(t *testing.T) {
	g, err := NewGame(9, 2, 0, "", "alice")
	require.NoError(t, err)

	assert.Equal(t, engine.Black, g.Board.At(2, 2).Occupant)
	assert.Equal(t, engine.Black, g.Board.At(6, 6).Occupant)
	assert.Equal(t, 2, g.Handicap)
	assert.Equal(t, engine.White, g.Turn, "white moves first in a handicap game")
}

func TestNewGameHandicapCappedAtStarPoints(t *testing.T) {
	g, err := NewGame(9, 30, 0, "", "alice")
	require.NoError(t, err)
	assert.Equal(t, 5, g.Handicap)
}

func TestNewGameHandicapNonStandardSize(t *testing.T) {
	g, err := NewGame(7, 3, 0, "", "alice")
	require.NoError(t, err)
	assert.Equal(t, 0, g.Handicap, "no star points on non-standard sizes")
	assert.Equal(t, engine.Black, g.Turn)
}

func TestJoin(t *testing.T) {
	g, err := NewGame(9, 0, 0, "", "alice")
	require.NoError(t, err)

	require.NoError(t, g.Join("bob"))
	assert.Equal(t, "bob", g.PlayerWhite)
	assert.Equal(t, statuses.StatusActive, g.Status)
	require.NotNil(t, g.StartedAt)

	// Both players may rejoin; a third identity may not.
	require.NoError(t, g.Join("alice"))
	require.NoError(t, g.Join("bob"))
	require.ErrorIs(t, g.Join("carol"), apperrors.ErrGameFull)
}

func TestColorOf(t *testing.T) {
	g := newActiveGame(t, 9)

	color, err := g.ColorOf("alice")
	require.NoError(t, err)
	assert.Equal(t, engine.Black, color)

	color, err = g.ColorOf("bob")
	require.NoError(t, err)
	assert.Equal(t, engine.White, color)

	_, err = g.ColorOf("carol")
	require.ErrorIs(t, err, apperrors.ErrNotInGame)
}

func TestPlaceStoneBeforeOpponentJoins(t *testing.T) {
	g, err := NewGame(9, 0, 0, "", "alice")
	require.NoError(t, err)

	err = g.PlaceStone(engine.Black, 4, 4)
	require.ErrorIs(t, err, apperrors.ErrGameNotStarted)
}

func TestPlaceStoneAlternatesTurns(t *testing.T) {
	g := newActiveGame(t, 9)

	require.NoError(t, g.PlaceStone(engine.Black, 4, 4))
	assert.Equal(t, engine.White, g.Turn)
	assert.Equal(t, 1, g.MoveCount)

	err := g.PlaceStone(engine.Black, 5, 5)
	require.ErrorIs(t, err, apperrors.ErrNotPlayersTurn)
	assert.Equal(t, engine.Empty, g.Board.At(5, 5).Occupant, "rejected move leaves the session unchanged")

	require.NoError(t, g.PlaceStone(engine.White, 5, 5))
	assert.Equal(t, engine.Black, g.Turn)
}

func TestPlaceStoneRecordsHistoryAndCaptures(t *testing.T) {
	g := newActiveGame(t, 5)

	moves := []struct {
		color engine.Occupant
		x, y  int
	}{
		{engine.Black, 1, 2}, // left of the white victim
		{engine.White, 2, 2},
		{engine.Black, 2, 1},
		{engine.White, 4, 4},
		{engine.Black, 3, 2},
		{engine.White, 4, 3},
	}
	for _, m := range moves {
		require.NoError(t, g.PlaceStone(m.color, m.x, m.y))
	}

	require.NoError(t, g.PlaceStone(engine.Black, 2, 3))
	assert.Equal(t, engine.Empty, g.Board.At(2, 2).Occupant, "surrounded white stone is captured")
	assert.Equal(t, 1, g.Captures.White)
	assert.Len(t, g.History, 7)
}

func TestKoThroughSession(t *testing.T) {
	g := newActiveGame(t, 5)

	moves := []struct {
		color engine.Occupant
		x, y  int
	}{
		{engine.Black, 1, 0},
		{engine.White, 2, 0},
		{engine.Black, 0, 1},
		{engine.White, 1, 1},
		{engine.Black, 1, 2},
		{engine.White, 2, 2},
		{engine.Black, 4, 4}, // tenuki while the shape completes
		{engine.White, 3, 1},
		{engine.Black, 2, 1}, // takes the ko
	}
	for _, m := range moves {
		require.NoError(t, g.PlaceStone(m.color, m.x, m.y))
	}
	require.Equal(t, 1, g.Captures.White)

	// Immediate recapture is forbidden...
	err := g.PlaceStone(engine.White, 1, 1)
	require.ErrorIs(t, err, engine.ErrKoViolation)

	// ...but legal after an exchange elsewhere.
	require.NoError(t, g.PlaceStone(engine.White, 0, 4))
	require.NoError(t, g.PlaceStone(engine.Black, 4, 0))
	require.NoError(t, g.PlaceStone(engine.White, 1, 1))
	assert.Equal(t, 1, g.Captures.Black)
}

func TestTwoPassesEndTheGame(t *testing.T) {
	g := newActiveGame(t, 5)

	require.NoError(t, g.PlaceStone(engine.Black, 2, 2))
	require.NoError(t, g.Pass(engine.White))
	assert.Equal(t, 1, g.Passes)
	assert.False(t, g.GameOver)

	// A placement resets the pass counter.
	require.NoError(t, g.PlaceStone(engine.Black, 1, 1))
	assert.Equal(t, 0, g.Passes)

	require.NoError(t, g.Pass(engine.White))
	require.NoError(t, g.Pass(engine.Black))

	assert.True(t, g.GameOver)
	assert.Equal(t, statuses.StatusCompleted, g.Status)
	require.NotNil(t, g.FinalScoreBlack)
	require.NotNil(t, g.FinalScoreWhite)
	assert.Equal(t, 2.0, *g.FinalScoreBlack, "two stones, no enclosed territory")
	assert.Equal(t, 6.5, *g.FinalScoreWhite)
	assert.Equal(t, engine.White, g.Winner)
}

func TestNoMovesAfterGameOver(t *testing.T) {
	g := newActiveGame(t, 5)
	require.NoError(t, g.Pass(engine.Black))
	require.NoError(t, g.Pass(engine.White))
	require.True(t, g.GameOver)

	require.ErrorIs(t, g.PlaceStone(engine.Black, 0, 0), apperrors.ErrGameOver)
	require.ErrorIs(t, g.Pass(engine.Black), apperrors.ErrGameOver)
	require.ErrorIs(t, g.Resign(engine.White), apperrors.ErrGameOver)
}

func TestPassOutOfTurn(t *testing.T) {
	g := newActiveGame(t, 5)
	require.ErrorIs(t, g.Pass(engine.White), apperrors.ErrNotPlayersTurn)
}

func TestResign(t *testing.T) {
	g := newActiveGame(t, 5)
	require.NoError(t, g.PlaceStone(engine.Black, 2, 2))

	require.NoError(t, g.Resign(engine.Black))
	assert.True(t, g.GameOver)
	assert.Equal(t, engine.White, g.Winner)
	require.NotNil(t, g.FinalScoreBlack)
	require.NotNil(t, g.FinalScoreWhite)
}

func TestFinishedBoardIsFullyAnnotated(t *testing.T) {
	g := newActiveGame(t, 5)
	require.NoError(t, g.Pass(engine.Black))
	require.NoError(t, g.Pass(engine.White))

	for i := range g.Board.Spots {
		assert.False(t, g.Board.Spots[i].Playable, "nothing is playable after game over")
		assert.NotEmpty(t, g.Board.Spots[i].ScoringExplanation, "every empty point is explained")
	}
}
