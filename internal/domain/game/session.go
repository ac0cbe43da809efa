package game

import (
	"time"

	"goban/internal/engine"
	apperrors "goban/internal/errors"
	"goban/internal/statuses"
)

const DefaultBoardSize = 9

// NewGame creates a session with an empty board of the given size. The
// creator always plays Black. A positive handicap pre-places Black stones
// on the standard star points and hands the first move to White.
func NewGame(boardSize, handicap int, komi float64, scoring engine.ScoringMethod, creatorID string) (*Game, error) {
	if boardSize == 0 {
		boardSize = DefaultBoardSize
	}
	if boardSize < 2 {
		return nil, apperrors.ErrBadBoardSize
	}
	if komi == 0 {
		komi = engine.DefaultKomi
	}
	if scoring == "" {
		scoring = engine.ScoringArea
	}

	board := engine.NewBoard(boardSize)
	turn := engine.Black
	handicap = placeHandicapStones(&board, boardSize, handicap)
	if handicap > 0 {
		turn = engine.White
	}

	g := &Game{
		Status:      statuses.StatusWaitOpponent,
		BoardSize:   boardSize,
		PlayerBlack: creatorID,
		Turn:        turn,
		Handicap:    handicap,
		Komi:        komi,
		Scoring:     scoring,
		CreatedAt:   time.Now(),
	}
	g.Board = engine.AnnotatePlayability(board, nil, turn)
	return g, nil
}

// Join adds userID as the White player and starts the game. Players already
// in the session may rejoin at any time; a third identity is rejected.
func (g *Game) Join(userID string) error {
	if userID == g.PlayerBlack || (g.PlayerWhite != "" && userID == g.PlayerWhite) {
		return nil
	}
	if g.PlayerWhite != "" {
		return apperrors.ErrGameFull
	}
	if g.GameOver {
		return apperrors.ErrGameOver
	}
	g.PlayerWhite = userID
	g.Status = statuses.StatusActive
	now := time.Now()
	g.StartedAt = &now
	return nil
}

// ColorOf resolves a player identity to a stone color.
func (g *Game) ColorOf(userID string) (engine.Occupant, error) {
	if userID != "" && userID == g.PlayerBlack {
		return engine.Black, nil
	}
	if userID != "" && userID == g.PlayerWhite {
		return engine.White, nil
	}
	return engine.Empty, apperrors.ErrNotInGame
}

// PlaceStone applies a validated placement for color at (x, y). A rejected
// move leaves the session completely unchanged.
func (g *Game) PlaceStone(color engine.Occupant, x, y int) error {
	if err := g.checkMoveAllowed(color); err != nil {
		return err
	}

	next, captured, err := engine.ApplyMove(g.Board, g.lastSnapshot(), color, x, y, g.MoveCount+1)
	if err != nil {
		return err
	}

	g.History = append(g.History, g.Board)
	g.Captures.Black += captured.Black
	g.Captures.White += captured.White
	g.MoveCount++
	g.Passes = 0
	g.Turn = color.Opponent()
	g.Board = engine.AnnotatePlayability(next, g.lastSnapshot(), g.Turn)
	return nil
}

// Pass gives up color's turn. Two consecutive passes end the game and
// trigger scoring.
func (g *Game) Pass(color engine.Occupant) error {
	if err := g.checkMoveAllowed(color); err != nil {
		return err
	}

	g.Passes++
	if g.Passes >= 2 {
		g.finish(engine.Empty)
		return nil
	}

	// A pass snapshots the unchanged position, so any following placement
	// differs from it and a ko recapture becomes legal again.
	g.History = append(g.History, g.Board)
	g.Turn = color.Opponent()
	g.Board = engine.AnnotatePlayability(g.Board, g.lastSnapshot(), g.Turn)
	return nil
}

// Resign ends the game immediately in favor of color's opponent.
func (g *Game) Resign(color engine.Occupant) error {
	if g.GameOver {
		return apperrors.ErrGameOver
	}
	if g.Status != statuses.StatusActive {
		return apperrors.ErrGameNotStarted
	}
	g.finish(color.Opponent())
	return nil
}

func (g *Game) checkMoveAllowed(color engine.Occupant) error {
	if g.GameOver {
		return apperrors.ErrGameOver
	}
	if g.Status != statuses.StatusActive {
		return apperrors.ErrGameNotStarted
	}
	if color != g.Turn {
		return apperrors.ErrNotPlayersTurn
	}
	return nil
}

func (g *Game) lastSnapshot() *engine.Board {
	if len(g.History) == 0 {
		return nil
	}
	return &g.History[len(g.History)-1]
}

// finish is the single terminal transition: annotate the board for display,
// compute final scores, freeze the session. No transitions leave it.
func (g *Game) finish(winner engine.Occupant) {
	annotated := engine.AnnotateForScoring(g.Board)
	for i := range annotated.Spots {
		annotated.Spots[i].Playable = false
	}
	black, white := engine.CalculateScore(annotated, g.Scoring, g.Komi, g.Captures)

	g.Board = annotated
	g.FinalScoreBlack = &black
	g.FinalScoreWhite = &white
	if winner == engine.Empty {
		// Komi is a half-integer, so the scores cannot tie.
		if black > white {
			winner = engine.Black
		} else {
			winner = engine.White
		}
	}
	g.Winner = winner
	g.GameOver = true
	g.Status = statuses.StatusCompleted
}
