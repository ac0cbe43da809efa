package game

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"goban/internal/adapters"
	"goban/internal/bootstrap"
	"goban/internal/delivery/identity"
	gamedomain "goban/internal/domain/game"
	"goban/internal/engine"
	apperrors "goban/internal/errors"
	"goban/internal/httpresponse"
	repo "goban/internal/repository"
	gameuc "goban/internal/usecase/game"
	"goban/internal/utils"
)

type GameHandler struct {
	cfg      bootstrap.Config
	log      *zap.SugaredLogger
	gameUC   *gameuc.GameUseCase
	identity *identity.Handler
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Live websocket connections per public game key.
type gameConns struct {
	black *websocket.Conn
	white *websocket.Conn
}

var activeGames = make(map[string]*gameConns)
var activeGamesMu sync.Mutex

func NewGameHandler(cfg bootstrap.Config, log *zap.SugaredLogger, mongoAdapter *adapters.AdapterMongo, redisAdapter *adapters.AdapterRedis, identityHandler *identity.Handler) *GameHandler {
	return &GameHandler{
		cfg:      cfg,
		log:      log,
		gameUC:   gameuc.NewGameUseCase(repo.NewGameRepository(cfg, log, redisAdapter.GetClient(), mongoAdapter.Database)),
		identity: identityHandler,
	}
}

// HandleNewGame creates a game and returns its public and secret keys. The
// creator plays Black.
func (g *GameHandler) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	var req gamedomain.CreateGameRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		g.log.Error("HandleNewGame: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MalformedJSONErrorDesc})
		return
	}
	if req.BoardSize == 0 {
		req.BoardSize = g.cfg.DefaultBoardSize
	}
	if req.Komi == 0 {
		req.Komi = g.cfg.DefaultKomi
	}

	playerID := g.identity.PlayerID(w, r)

	newGame, err := g.gameUC.CreateGame(r.Context(), req, playerID)
	if err != nil {
		g.writeError(w, err)
		return
	}

	g.log.Infof("new game created with public key %s by %s", newGame.GameKeyPublic, playerID)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, gamedomain.GameCreateResponse{
		GameKeyPublic: newGame.GameKeyPublic,
		GameKeySecret: newGame.GameKeySecret,
	})
}

// HandleJoinGame adds the caller to a game as White.
func (g *GameHandler) HandleJoinGame(w http.ResponseWriter, r *http.Request) {
	var req gamedomain.GameKeyRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil || req.GameKey == "" {
		g.log.Error("HandleJoinGame: malformed request: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MalformedJSONErrorDesc})
		return
	}

	playerID := g.identity.PlayerID(w, r)

	play, err := g.gameUC.JoinGame(r.Context(), req.GameKey, playerID)
	if err != nil {
		g.writeError(w, err)
		return
	}

	g.log.Infof("player %s joined game %s", playerID, req.GameKey)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, gamedomain.GameStateResponse{Game: redact(play)})
}

func (g *GameHandler) HandlePlaceStone(w http.ResponseWriter, r *http.Request) {
	var req gamedomain.MoveRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil || req.GameKey == "" {
		g.log.Error("HandlePlaceStone: malformed request: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MalformedJSONErrorDesc})
		return
	}

	playerID := g.identity.PlayerID(w, r)

	play, err := g.gameUC.PlaceStone(r.Context(), req.GameKey, playerID, req.X, req.Y)
	if err != nil {
		g.writeError(w, err)
		return
	}

	resp := gamedomain.GameStateResponse{Game: redact(play)}
	g.notifyGame(req.GameKey, resp)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

func (g *GameHandler) HandlePassMove(w http.ResponseWriter, r *http.Request) {
	g.handleTurnAction(w, r, g.gameUC.PassMove)
}

func (g *GameHandler) HandleResign(w http.ResponseWriter, r *http.Request) {
	g.handleTurnAction(w, r, g.gameUC.Resign)
}

func (g *GameHandler) handleTurnAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, gameKeyPublic, userID string) (gamedomain.Game, error)) {
	var req gamedomain.GameKeyRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil || req.GameKey == "" {
		g.log.Error("handleTurnAction: malformed request: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MalformedJSONErrorDesc})
		return
	}

	playerID := g.identity.PlayerID(w, r)

	play, err := action(r.Context(), req.GameKey, playerID)
	if err != nil {
		g.writeError(w, err)
		return
	}

	resp := gamedomain.GameStateResponse{Game: redact(play)}
	g.notifyGame(req.GameKey, resp)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

// GetGameByKey returns the full session, annotated board included.
func (g *GameHandler) GetGameByKey(w http.ResponseWriter, r *http.Request) {
	var req gamedomain.GameKeyRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil || req.GameKey == "" {
		g.log.Error("GetGameByKey: malformed request: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MalformedJSONErrorDesc})
		return
	}

	play, err := g.gameUC.GetGameByPublicKey(r.Context(), req.GameKey)
	if err != nil {
		g.writeError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, gamedomain.GameStateResponse{Game: redact(play)})
}

// HandleStartGame upgrades to a websocket and runs the live move loop for
// one player. Moves are applied through the use case and the resulting
// state is broadcast to both players.
func (g *GameHandler) HandleStartGame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	gameKey := r.URL.Query().Get("game_id")
	playerID := g.identity.PlayerID(w, r)

	if gameKey == "" {
		g.log.Error("HandleStartGame: missing game_id")
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: "missing game_id"})
		return
	}

	play, err := g.gameUC.GetGameByPublicKey(ctx, gameKey)
	if err != nil {
		g.writeError(w, err)
		return
	}
	color, err := play.ColorOf(playerID)
	if err != nil {
		g.writeError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Error("upgrade error: ", err)
		return
	}

	g.registerConn(gameKey, color, conn)
	defer g.unregisterConn(gameKey, color, conn)

	for {
		var move gamedomain.MoveRequest
		if err = conn.ReadJSON(&move); err != nil {
			g.log.Info("websocket closed: ", err)
			return
		}

		var updated gamedomain.Game
		switch {
		case move.Resign:
			updated, err = g.gameUC.Resign(ctx, gameKey, playerID)
		case move.Pass:
			updated, err = g.gameUC.PassMove(ctx, gameKey, playerID)
		default:
			updated, err = g.gameUC.PlaceStone(ctx, gameKey, playerID, move.X, move.Y)
		}
		if err != nil {
			g.log.Infof("rejected move in game %s: %v", gameKey, err)
			_ = conn.WriteJSON(httpresponse.ErrorResponse{ErrorDescription: err.Error()})
			continue
		}

		g.notifyGame(gameKey, gamedomain.GameStateResponse{Game: redact(updated)})
	}
}

func (g *GameHandler) registerConn(gameKey string, color engine.Occupant, conn *websocket.Conn) {
	activeGamesMu.Lock()
	defer activeGamesMu.Unlock()

	conns, ok := activeGames[gameKey]
	if !ok {
		conns = &gameConns{}
		activeGames[gameKey] = conns
	}

	slot := &conns.black
	if color == engine.White {
		slot = &conns.white
	}
	if *slot != nil {
		(*slot).Close()
	}
	*slot = conn
}

func (g *GameHandler) unregisterConn(gameKey string, color engine.Occupant, conn *websocket.Conn) {
	conn.Close()
	activeGamesMu.Lock()
	defer activeGamesMu.Unlock()

	conns, ok := activeGames[gameKey]
	if !ok {
		return
	}
	if color == engine.White && conns.white == conn {
		conns.white = nil
	}
	if color == engine.Black && conns.black == conn {
		conns.black = nil
	}
}

// notifyGame pushes the new state to every live connection of the game.
func (g *GameHandler) notifyGame(gameKey string, resp gamedomain.GameStateResponse) {
	activeGamesMu.Lock()
	defer activeGamesMu.Unlock()

	conns, ok := activeGames[gameKey]
	if !ok {
		return
	}
	for _, conn := range []*websocket.Conn{conns.black, conns.white} {
		if conn == nil {
			continue
		}
		if err := conn.WriteJSON(resp); err != nil {
			g.log.Error("write to player error: ", err)
		}
	}
}

// redact strips the secret key before a game leaves the API.
func redact(play gamedomain.Game) gamedomain.Game {
	play.GameKeySecret = ""
	return play
}

func (g *GameHandler) writeError(w http.ResponseWriter, err error) {
	g.log.Error(err)
	httpresponse.WriteResponseWithStatus(w, statusForError(err),
		httpresponse.ErrorResponse{ErrorDescription: err.Error()})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrGameFull):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrNotInGame):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrGameOver),
		errors.Is(err, apperrors.ErrGameNotStarted),
		errors.Is(err, apperrors.ErrNotPlayersTurn),
		errors.Is(err, apperrors.ErrBadBoardSize),
		errors.Is(err, engine.ErrOutOfBounds),
		errors.Is(err, engine.ErrOccupied),
		errors.Is(err, engine.ErrSuicide),
		errors.Is(err, engine.ErrKoViolation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
