package service

import (
	"time"

	"github.com/wricardo/cities-game/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string            `json:"id"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	GameState      *engine.GameState `json:"game_state"`
}

// TurnResult contains the outcome of one line of player input
type TurnResult struct {
	SessionID string            `json:"session_id"`
	Input     string            `json:"input"`
	Messages  []string          `json:"messages"`
	GameState *engine.GameState `json:"game_state"`
	Finished  bool              `json:"finished"`
}

// CatalogInfo summarizes the city catalog
type CatalogInfo struct {
	TotalCities  int            `json:"total_cities"`
	LetterCounts map[string]int `json:"letter_counts"`
}
