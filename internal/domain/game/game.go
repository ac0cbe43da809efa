package game

import (
	"time"

	"goban/internal/engine"
)

// Game is a single Go session between two players. It is the aggregate the
// repository persists; all rule decisions live in the engine package.
type Game struct {
	GameKeySecret string `json:"game_key_secret" bson:"game_key_secret"`
	GameKeyPublic string `json:"game_key_public" bson:"game_key_public"`
	Status        string `json:"status" bson:"status"`

	BoardSize int          `json:"board_size" bson:"board_size"`
	Board     engine.Board `json:"board" bson:"board"`
	// History holds the position in effect before each accepted move,
	// oldest first. The ko rule compares candidate boards against its last
	// entry.
	History []engine.Board `json:"-" bson:"history"`

	PlayerBlack string          `json:"player_black" bson:"player_black"`
	PlayerWhite string          `json:"player_white,omitempty" bson:"player_white,omitempty"`
	Turn        engine.Occupant `json:"turn" bson:"turn"`

	Passes    int `json:"passes" bson:"passes"`
	MoveCount int `json:"move_count" bson:"move_count"`
	Handicap  int `json:"handicap" bson:"handicap"`

	Komi     float64              `json:"komi" bson:"komi"`
	Scoring  engine.ScoringMethod `json:"scoring" bson:"scoring"`
	Captures engine.Captures      `json:"captures" bson:"captures"`

	GameOver        bool            `json:"game_over" bson:"game_over"`
	Winner          engine.Occupant `json:"winner,omitempty" bson:"winner,omitempty"`
	FinalScoreBlack *float64        `json:"final_score_black,omitempty" bson:"final_score_black,omitempty"`
	FinalScoreWhite *float64        `json:"final_score_white,omitempty" bson:"final_score_white,omitempty"`

	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	StartedAt *time.Time `json:"started_at,omitempty" bson:"started_at,omitempty"`
}

type CreateGameRequest struct {
	BoardSize int     `json:"board_size"`
	Handicap  int     `json:"handicap"`
	Komi      float64 `json:"komi"`
	Scoring   string  `json:"scoring"`
}

type GameCreateResponse struct {
	GameKeyPublic string `json:"game_key_public"`
	GameKeySecret string `json:"game_key_secret"`
}

type GameKeyRequest struct {
	GameKey string `json:"game_key"`
}

// MoveRequest is one websocket or HTTP action inside a running game: a
// placement at (x, y), a pass, or a resignation.
type MoveRequest struct {
	GameKey string `json:"game_key,omitempty"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Pass    bool   `json:"pass,omitempty"`
	Resign  bool   `json:"resign,omitempty"`
}

type GameStateResponse struct {
	Game Game `json:"game"`
}
