package game

import (
	"context"
	"sync"

	gamedomain "goban/internal/domain/game"
	"goban/internal/engine"
	apperrors "goban/internal/errors"
)

// GameStore is what the use case needs from persistence. The Mongo/Redis
// implementation lives in internal/repository.
type GameStore interface {
	GenerateGameKeys(ctx context.Context) (gameKeySecret string, gameKeyPublic string)
	PutGame(ctx context.Context, gameData gamedomain.Game) bool
	UpdateGame(ctx context.Context, gameData gamedomain.Game) error
	GetGameByPublicKey(ctx context.Context, gameKeyPublic string) (gamedomain.Game, error)
	SaveBoardSnapshot(ctx context.Context, key string, spots []byte) error
	LoadBoardSnapshot(ctx context.Context, key string) ([]byte, error)
}

type GameUseCase struct {
	store GameStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewGameUseCase(store GameStore) *GameUseCase {
	return &GameUseCase{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

// lockGame serializes move application per session: the engine's contract is
// at most one accepted move per logical turn. Independent games stay fully
// parallel.
func (g *GameUseCase) lockGame(gameKeyPublic string) *sync.Mutex {
	g.mu.Lock()
	defer g.mu.Unlock()
	lock, ok := g.locks[gameKeyPublic]
	if !ok {
		lock = &sync.Mutex{}
		g.locks[gameKeyPublic] = lock
	}
	return lock
}

func (g *GameUseCase) CreateGame(ctx context.Context, req gamedomain.CreateGameRequest, creatorID string) (gamedomain.Game, error) {
	newGame, err := gamedomain.NewGame(req.BoardSize, req.Handicap, req.Komi, engine.ScoringMethod(req.Scoring), creatorID)
	if err != nil {
		return gamedomain.Game{}, err
	}

	newGame.GameKeySecret, newGame.GameKeyPublic = g.store.GenerateGameKeys(ctx)

	if ok := g.store.PutGame(ctx, *newGame); !ok {
		return gamedomain.Game{}, apperrors.ErrCreateGameFailed
	}
	if err := g.cacheBoard(ctx, newGame); err != nil {
		return gamedomain.Game{}, err
	}
	return *newGame, nil
}

func (g *GameUseCase) JoinGame(ctx context.Context, gameKeyPublic string, userID string) (gamedomain.Game, error) {
	lock := g.lockGame(gameKeyPublic)
	lock.Lock()
	defer lock.Unlock()

	play, err := g.store.GetGameByPublicKey(ctx, gameKeyPublic)
	if err != nil {
		return gamedomain.Game{}, err
	}
	if err := play.Join(userID); err != nil {
		return gamedomain.Game{}, err
	}
	if err := g.store.UpdateGame(ctx, play); err != nil {
		return gamedomain.Game{}, apperrors.ErrJoinGameFailed
	}
	return play, nil
}

// PlaceStone applies one placement for the player identified by userID.
func (g *GameUseCase) PlaceStone(ctx context.Context, gameKeyPublic, userID string, x, y int) (gamedomain.Game, error) {
	return g.applyMove(ctx, gameKeyPublic, userID, func(play *gamedomain.Game, color engine.Occupant) error {
		return play.PlaceStone(color, x, y)
	})
}

// PassMove gives up the caller's turn; the second consecutive pass ends the
// game and fills in the final scores.
func (g *GameUseCase) PassMove(ctx context.Context, gameKeyPublic, userID string) (gamedomain.Game, error) {
	return g.applyMove(ctx, gameKeyPublic, userID, func(play *gamedomain.Game, color engine.Occupant) error {
		return play.Pass(color)
	})
}

func (g *GameUseCase) Resign(ctx context.Context, gameKeyPublic, userID string) (gamedomain.Game, error) {
	return g.applyMove(ctx, gameKeyPublic, userID, func(play *gamedomain.Game, color engine.Occupant) error {
		return play.Resign(color)
	})
}

func (g *GameUseCase) applyMove(ctx context.Context, gameKeyPublic, userID string, action func(*gamedomain.Game, engine.Occupant) error) (gamedomain.Game, error) {
	lock := g.lockGame(gameKeyPublic)
	lock.Lock()
	defer lock.Unlock()

	play, err := g.store.GetGameByPublicKey(ctx, gameKeyPublic)
	if err != nil {
		return gamedomain.Game{}, err
	}
	color, err := play.ColorOf(userID)
	if err != nil {
		return gamedomain.Game{}, err
	}
	if err := action(&play, color); err != nil {
		return gamedomain.Game{}, err
	}
	if err := g.store.UpdateGame(ctx, play); err != nil {
		return gamedomain.Game{}, err
	}
	if err := g.cacheBoard(ctx, &play); err != nil {
		return gamedomain.Game{}, err
	}
	return play, nil
}

func (g *GameUseCase) GetGameByPublicKey(ctx context.Context, gameKeyPublic string) (gamedomain.Game, error) {
	return g.store.GetGameByPublicKey(ctx, gameKeyPublic)
}

// GetCachedBoard returns the last serialized board for a game, as stored in
// the hot cache on every accepted move.
func (g *GameUseCase) GetCachedBoard(ctx context.Context, gameKeySecret string, boardSize int) (engine.Board, error) {
	data, err := g.store.LoadBoardSnapshot(ctx, gameKeySecret)
	if err != nil {
		return engine.Board{}, err
	}
	return engine.UnmarshalSpots(data, boardSize)
}

func (g *GameUseCase) IsUserInGame(play gamedomain.Game, userID string) bool {
	_, err := play.ColorOf(userID)
	return err == nil
}

func (g *GameUseCase) cacheBoard(ctx context.Context, play *gamedomain.Game) error {
	spots, err := play.Board.MarshalSpots()
	if err != nil {
		return err
	}
	return g.store.SaveBoardSnapshot(ctx, play.GameKeySecret, spots)
}
