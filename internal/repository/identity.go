package repo

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sessionTTL = time.Hour * 11

// RedisIdentityStorage maps session cookies to anonymous player ids.
type RedisIdentityStorage struct {
	client *redis.Client
	log    *zap.SugaredLogger
}

func NewRedisIdentityStorage(client *redis.Client, log *zap.SugaredLogger) *RedisIdentityStorage {
	return &RedisIdentityStorage{
		client: client,
		log:    log,
	}
}

func (r *RedisIdentityStorage) GetPlayerIDBySession(ctx context.Context, sessionID string) (playerID string, ok bool) {
	v, err := r.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Error(err)
		}
		return "", false
	}
	return v, true
}

func (r *RedisIdentityStorage) StoreSession(ctx context.Context, sessionID string, playerID string) {
	if err := r.client.Set(ctx, sessionKey(sessionID), playerID, sessionTTL).Err(); err != nil {
		r.log.Error(err)
	}
}

func (r *RedisIdentityStorage) DeleteSession(ctx context.Context, sessionID string) {
	r.client.Del(ctx, sessionKey(sessionID))
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}
