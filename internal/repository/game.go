package repo

import (
	"context"
	"crypto/md5"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"goban/internal/bootstrap"
	"goban/internal/domain/game"
	apperrors "goban/internal/errors"
)

const gamesCollection = "games"

// GameRepository persists games in Mongo and keeps the latest serialized
// board per game in Redis for cheap reads by the presentation layer.
type GameRepository struct {
	cfg   bootstrap.Config
	log   *zap.SugaredLogger
	redis *redis.Client
	mongo *mongo.Database
}

func NewGameRepository(cfg bootstrap.Config, log *zap.SugaredLogger, redis *redis.Client, mongo *mongo.Database) *GameRepository {
	return &GameRepository{
		cfg:   cfg,
		log:   log,
		redis: redis,
		mongo: mongo,
	}
}

// GenerateGameKeys produces the secret key the players hold and a short
// public key derived from it, retrying until the public key is unused.
func (g *GameRepository) GenerateGameKeys(ctx context.Context) (gameKeySecret string, gameKeyPublic string) {
	for {
		gameKeySecret = uuid.New().String()
		gameKeyPublic = generateHash(gameKeySecret)

		if g.checkPublicKeyIsUniq(ctx, gameKeyPublic) {
			return gameKeySecret, gameKeyPublic
		}
	}
}

func generateHash(s string) string {
	h := md5.New()
	h.Write([]byte(s))
	hashBytes := h.Sum(nil)
	number := binary.BigEndian.Uint32(hashBytes[:4])
	code := number % 100000
	return fmt.Sprintf("%05d", code)
}

func (g *GameRepository) checkPublicKeyIsUniq(ctx context.Context, gameKeyPublic string) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"game_key_public": gameKeyPublic}
	err := g.mongo.Collection(gamesCollection).FindOne(ctx, filter).Err()
	return errors.Is(err, mongo.ErrNoDocuments)
}

func (g *GameRepository) PutGame(ctx context.Context, gameData game.Game) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := g.mongo.Collection(gamesCollection).InsertOne(ctx, gameData)
	if err != nil {
		g.log.Errorf("failed to insert game to database: %v", err)
		return false
	}

	g.log.Infof("game inserted successfully with public key: %s", gameData.GameKeyPublic)
	return true
}

func (g *GameRepository) UpdateGame(ctx context.Context, gameData game.Game) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"game_key_secret": gameData.GameKeySecret}
	res, err := g.mongo.Collection(gamesCollection).ReplaceOne(ctx, filter, gameData)
	if err != nil {
		g.log.Errorf("failed to update game %s: %v", gameData.GameKeyPublic, err)
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrGameNotFound
	}
	return nil
}

func (g *GameRepository) GetGameByPublicKey(ctx context.Context, gameKeyPublic string) (game.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"game_key_public": gameKeyPublic}

	var foundGame game.Game
	err := g.mongo.Collection(gamesCollection).FindOne(ctx, filter).Decode(&foundGame)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return game.Game{}, apperrors.ErrGameNotFound
	} else if err != nil {
		g.log.Error(err)
		return game.Game{}, err
	}

	return foundGame, nil
}

func (g *GameRepository) SaveBoardSnapshot(ctx context.Context, key string, spots []byte) error {
	return g.redis.Set(ctx, boardKey(key), spots, 0).Err()
}

func (g *GameRepository) LoadBoardSnapshot(ctx context.Context, key string) ([]byte, error) {
	data, err := g.redis.Get(ctx, boardKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrGameNotFound
	}
	return data, err
}

func boardKey(gameKeySecret string) string {
	return "board:" + gameKeySecret
}
