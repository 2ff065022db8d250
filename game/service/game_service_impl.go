package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/wricardo/cities-game/game/engine"
)

var (
	ErrNilGame         = errors.New("session has no game")
	ErrSessionNotFound = errors.New("session not found")
)

// Catalog is the read-only catalog view the service reports on
type Catalog interface {
	Len() int
	LetterCounts() map[string]int
}

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	catalog  Catalog
	mu       sync.Mutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, catalog Catalog) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		catalog:  catalog,
	}
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Let session manager generate the ID
	session, err := s.sessions.Create("")
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return sessionInfo(session), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSessionNotFound, err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return sessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, sessionInfo(sess))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(sessionID); err != nil {
		return fmt.Errorf("%w: %w", ErrSessionNotFound, err)
	}
	return nil
}

// CleanupSessions removes idle and finished sessions. It holds the service
// lock so the manager's inspection of each game cannot overlap a Play.
func (s *gameServiceImpl) CleanupSessions(ctx context.Context, maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.sessions.CleanupExpiredSessions(maxAge)
	if removed > 0 {
		log.Printf("[SESSION] cleaned up %d expired sessions", removed)
	}
	return removed
}

// Play feeds one line of raw input to a session's game
func (s *gameServiceImpl) Play(ctx context.Context, sessionID, input string) (*TurnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSessionNotFound, err)
	}
	if sess.Game == nil {
		return nil, ErrNilGame
	}

	s.sessions.UpdateLastAccessed(sessionID)

	sess.Game.Process(input)
	state := sess.Game.Snapshot()

	log.Printf("[PLAY] session=%s input=%q state=%s remaining=%d", sess.ID, input, state.State, state.RemainingCities)

	return &TurnResult{
		SessionID: sess.ID,
		Input:     input,
		Messages:  state.Messages,
		GameState: state,
		Finished:  state.Finished,
	}, nil
}

// GetGameState returns the current snapshot of a session's game
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSessionNotFound, err)
	}
	if sess.Game == nil {
		return nil, ErrNilGame
	}

	return sess.Game.Snapshot(), nil
}

// GetCatalog summarizes the shared catalog
func (s *gameServiceImpl) GetCatalog(ctx context.Context) (*CatalogInfo, error) {
	return &CatalogInfo{
		TotalCities:  s.catalog.Len(),
		LetterCounts: s.catalog.LetterCounts(),
	}, nil
}

func sessionInfo(sess *Session) *SessionInfo {
	info := &SessionInfo{
		ID:             sess.ID,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
	}
	if sess.Game != nil {
		info.GameState = sess.Game.Snapshot()
	}
	return info
}
