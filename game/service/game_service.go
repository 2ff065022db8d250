package service

import (
	"context"
	"time"

	"github.com/wricardo/cities-game/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error
	CleanupSessions(ctx context.Context, maxAge time.Duration) int

	// Game Operations
	Play(ctx context.Context, sessionID, input string) (*TurnResult, error)
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Catalog
	GetCatalog(ctx context.Context) (*CatalogInfo, error)
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	CleanupExpiredSessions(maxAge time.Duration) int
}

// Session represents an active game session
type Session struct {
	ID             string
	Game           *engine.Game
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
