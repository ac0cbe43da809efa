package identity

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"goban/internal/adapters"
	repo "goban/internal/repository"
)

const sessionCookie = "player_session"

// Handler issues and resolves anonymous player identities. A player gets a
// uuid the first time they hit the API, carried by a cookie and backed by
// the redis session storage, and keeps it across games.
type Handler struct {
	store *repo.RedisIdentityStorage
	log   *zap.SugaredLogger
}

func NewHandler(redisAdapter *adapters.AdapterRedis, log *zap.SugaredLogger) *Handler {
	return &Handler{
		store: repo.NewRedisIdentityStorage(redisAdapter.GetClient(), log),
		log:   log,
	}
}

// PlayerID returns the caller's player id, minting a new identity and
// setting the session cookie when none is presented.
func (h *Handler) PlayerID(w http.ResponseWriter, r *http.Request) string {
	ctx := r.Context()

	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if playerID, ok := h.store.GetPlayerIDBySession(ctx, cookie.Value); ok {
			return playerID
		}
	}

	sessionID := uuid.New().String()
	playerID := uuid.New().String()
	h.store.StoreSession(ctx, sessionID, playerID)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sessionID,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour * 30),
		HttpOnly: true,
	})

	h.log.Infof("issued new player identity %s", playerID)
	return playerID
}
