package service_test

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/wricardo/cities-game/game/catalog"
	"github.com/wricardo/cities-game/game/engine"
	"github.com/wricardo/cities-game/game/service"
	"github.com/wricardo/cities-game/game/session"
)

var errMockNotFound = errors.New("session not found")

// MockSessionManager implements service.SessionManager for testing
type MockSessionManager struct {
	sessions map[string]*service.Session
	catalog  *catalog.Catalog
	seed     int64
}

func NewMockSessionManager(cat *catalog.Catalog) *MockSessionManager {
	return &MockSessionManager{
		sessions: make(map[string]*service.Session),
		catalog:  cat,
		seed:     1,
	}
}

func (m *MockSessionManager) Create(id string) (*service.Session, error) {
	// Generate ID if empty (mimics real session manager behavior)
	if id == "" {
		id = fmt.Sprintf("test_%d", len(m.sessions)+1)
	}

	if _, exists := m.sessions[id]; exists {
		return nil, errors.New("session already exists")
	}

	game, err := engine.NewGame(m.catalog, engine.NewSeededRandom(m.seed))
	if err != nil {
		return nil, err
	}

	session := &service.Session{
		ID:             id,
		Game:           game,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}

	m.sessions[id] = session
	return session, nil
}

func (m *MockSessionManager) Get(id string) (*service.Session, error) {
	session, exists := m.sessions[id]
	if !exists {
		return nil, errMockNotFound
	}
	return session, nil
}

func (m *MockSessionManager) List() []*service.Session {
	result := make([]*service.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}
	return result
}

func (m *MockSessionManager) Delete(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return errMockNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *MockSessionManager) UpdateLastAccessed(id string) error {
	if session, exists := m.sessions[id]; exists {
		session.LastAccessedAt = time.Now()
		return nil
	}
	return errMockNotFound
}

func (m *MockSessionManager) CleanupExpiredSessions(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, session := range m.sessions {
		if (session.Game != nil && session.Game.IsFinished()) || session.LastAccessedAt.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

func createTestService(t *testing.T) (service.GameService, *MockSessionManager) {
	t.Helper()
	cat, err := catalog.New([]string{"Москва", "Анапа", "Тверь", "Рязань", "Нальчик"})
	if err != nil {
		t.Fatalf("Failed to create catalog: %v", err)
	}
	sessions := NewMockSessionManager(cat)
	return service.NewGameService(sessions, cat), sessions
}

func TestCreateSession(t *testing.T) {
	svc, sessions := createTestService(t)
	ctx := context.Background()

	info, err := svc.CreateSession(ctx)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	if info.ID == "" {
		t.Error("Expected session ID to be generated")
	}
	if info.GameState == nil {
		t.Fatal("Expected game state in session info")
	}
	if info.GameState.State != engine.StateNotStarted {
		t.Errorf("Expected not_started, got %v", info.GameState.State)
	}
	if !slices.Equal(info.GameState.Messages, []string{engine.MsgToStart, engine.MsgToEnd}) {
		t.Errorf("Expected start instructions, got %q", info.GameState.Messages)
	}
	if len(sessions.sessions) != 1 {
		t.Errorf("Expected 1 stored session, got %d", len(sessions.sessions))
	}
}

func TestGetSession(t *testing.T) {
	svc, _ := createTestService(t)
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	t.Run("existing session", func(t *testing.T) {
		info, err := svc.GetSession(ctx, created.ID)
		if err != nil {
			t.Fatalf("Failed to get session: %v", err)
		}
		if info.ID != created.ID {
			t.Errorf("Expected session %s, got %s", created.ID, info.ID)
		}
	})

	t.Run("missing session", func(t *testing.T) {
		_, err := svc.GetSession(ctx, "nope")
		if !errors.Is(err, errMockNotFound) {
			t.Errorf("Expected wrapped not-found error, got %v", err)
		}
		if !errors.Is(err, service.ErrSessionNotFound) {
			t.Errorf("Expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestListAndDeleteSessions(t *testing.T) {
	svc, _ := createTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateSession(ctx); err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
	}

	list, err := svc.ListSessions(ctx)
	if err != nil {
		t.Fatalf("Failed to list sessions: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(list))
	}

	if err := svc.DeleteSession(ctx, list[0].ID); err != nil {
		t.Fatalf("Failed to delete session: %v", err)
	}
	if err := svc.DeleteSession(ctx, list[0].ID); err == nil {
		t.Error("Expected error deleting a session twice")
	}

	list, _ = svc.ListSessions(ctx)
	if len(list) != 2 {
		t.Errorf("Expected 2 sessions after delete, got %d", len(list))
	}
}

func TestPlay(t *testing.T) {
	svc, _ := createTestService(t)
	ctx := context.Background()

	info, err := svc.CreateSession(ctx)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	t.Run("instructions before a game", func(t *testing.T) {
		result, err := svc.Play(ctx, info.ID, "Москва")
		if err != nil {
			t.Fatalf("Play failed: %v", err)
		}
		if !slices.Equal(result.Messages, []string{engine.MsgToStart, engine.MsgToEnd}) {
			t.Errorf("Expected instructions, got %q", result.Messages)
		}
	})

	t.Run("new game", func(t *testing.T) {
		result, err := svc.Play(ctx, info.ID, engine.CommandNewGame)
		if err != nil {
			t.Fatalf("Play failed: %v", err)
		}
		if len(result.Messages) == 0 || result.Messages[0] != engine.MsgNewGame {
			t.Errorf("Expected new game message first, got %q", result.Messages)
		}
		if result.GameState.State != engine.StateAwaitingInput {
			t.Errorf("Expected awaiting_input, got %v", result.GameState.State)
		}
		if result.SessionID != info.ID || result.Input != engine.CommandNewGame {
			t.Errorf("Unexpected result envelope: %+v", result)
		}
	})

	t.Run("unknown city", func(t *testing.T) {
		result, err := svc.Play(ctx, info.ID, "Атлантида")
		if err != nil {
			t.Fatalf("Play failed: %v", err)
		}
		want := []string{engine.MsgNoSuchCity, engine.MsgEnterAnotherCity}
		if !slices.Equal(result.Messages, want) {
			t.Errorf("Expected %q, got %q", want, result.Messages)
		}
	})

	t.Run("exit", func(t *testing.T) {
		result, err := svc.Play(ctx, info.ID, engine.CommandExitGame)
		if err != nil {
			t.Fatalf("Play failed: %v", err)
		}
		if !result.Finished {
			t.Error("Expected finished result")
		}

		state, err := svc.GetGameState(ctx, info.ID)
		if err != nil {
			t.Fatalf("Failed to get state: %v", err)
		}
		if state.State != engine.StateFinished {
			t.Errorf("Expected finished state, got %v", state.State)
		}
	})

	t.Run("missing session", func(t *testing.T) {
		if _, err := svc.Play(ctx, "nope", "Москва"); !errors.Is(err, service.ErrSessionNotFound) {
			t.Errorf("Expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestPlay_NilGame(t *testing.T) {
	svc, sessions := createTestService(t)
	sessions.sessions["empty"] = &service.Session{ID: "empty"}

	if _, err := svc.Play(context.Background(), "empty", "Москва"); !errors.Is(err, service.ErrNilGame) {
		t.Errorf("Expected ErrNilGame, got %v", err)
	}
	if _, err := svc.GetGameState(context.Background(), "empty"); !errors.Is(err, service.ErrNilGame) {
		t.Errorf("Expected ErrNilGame, got %v", err)
	}
}

func TestGetCatalog(t *testing.T) {
	svc, _ := createTestService(t)

	info, err := svc.GetCatalog(context.Background())
	if err != nil {
		t.Fatalf("Failed to get catalog: %v", err)
	}
	if info.TotalCities != 5 {
		t.Errorf("Expected 5 cities, got %d", info.TotalCities)
	}
	if info.LetterCounts["М"] != 1 || info.LetterCounts["Т"] != 1 {
		t.Errorf("Unexpected letter counts: %v", info.LetterCounts)
	}
}

func TestCleanupSessions(t *testing.T) {
	svc, sessions := createTestService(t)
	ctx := context.Background()

	idle, _ := svc.CreateSession(ctx)
	finished, _ := svc.CreateSession(ctx)
	active, _ := svc.CreateSession(ctx)

	sessions.sessions[idle.ID].LastAccessedAt = time.Now().Add(-2 * time.Hour)
	if _, err := svc.Play(ctx, finished.ID, engine.CommandExitGame); err != nil {
		t.Fatalf("Play failed: %v", err)
	}

	if removed := svc.CleanupSessions(ctx, time.Hour); removed != 2 {
		t.Errorf("Expected 2 sessions removed, got %d", removed)
	}
	if _, err := svc.GetSession(ctx, active.ID); err != nil {
		t.Errorf("Expected active session to survive cleanup: %v", err)
	}
	for _, id := range []string{idle.ID, finished.ID} {
		if _, err := svc.GetSession(ctx, id); !errors.Is(err, service.ErrSessionNotFound) {
			t.Errorf("Expected session %s to be removed, got %v", id, err)
		}
	}
}

// Run with -race: cleanup inspects every game while Play mutates one.
func TestCleanupSessions_ConcurrentPlay(t *testing.T) {
	cat, err := catalog.New([]string{"Москва", "Анапа", "Тверь", "Рязань", "Нальчик"})
	if err != nil {
		t.Fatalf("Failed to create catalog: %v", err)
	}
	svc := service.NewGameService(session.NewManager(cat, nil), cat)
	ctx := context.Background()

	info, err := svc.CreateSession(ctx)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if _, err := svc.Play(ctx, info.ID, engine.CommandNewGame); err != nil {
				t.Errorf("Play failed: %v", err)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			svc.CleanupSessions(ctx, time.Hour)
		}
	}()
	wg.Wait()

	if _, err := svc.GetSession(ctx, info.ID); err != nil {
		t.Errorf("Expected running session to survive cleanup: %v", err)
	}
}
