package errors

import "errors"

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrGameFull         = errors.New("game already has two players")
	ErrGameOver         = errors.New("game is already over")
	ErrGameNotStarted   = errors.New("waiting for second player to join")
	ErrNotPlayersTurn   = errors.New("it's not your turn")
	ErrNotInGame        = errors.New("user is not a player in this game")
	ErrBadBoardSize     = errors.New("board size must be at least 2")
	ErrCreateGameFailed = errors.New("create game failed")
	ErrJoinGameFailed   = errors.New("join game failed")
	ErrInternal         = errors.New("internal error")
)
