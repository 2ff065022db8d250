package main

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wricardo/cities-game/api"
	"github.com/wricardo/cities-game/game/catalog"
	"github.com/wricardo/cities-game/game/engine"
	"github.com/wricardo/cities-game/game/service"
	"github.com/wricardo/cities-game/game/session"
)

// fixedRandom replays a fixed sequence of values, reduced modulo n,
// then keeps returning 0.
type fixedRandom struct {
	values []int
	calls  int
}

func (r *fixedRandom) Intn(n int) int {
	defer func() { r.calls++ }()
	if r.calls >= len(r.values) {
		return 0
	}
	return r.values[r.calls] % n
}

func createTestCatalog(t *testing.T, names ...string) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(names)
	if err != nil {
		t.Fatalf("Failed to create catalog: %v", err)
	}
	return cat
}

// newTestServer runs the REST API over cat; every session draws from values
func newTestServer(t *testing.T, cat *catalog.Catalog, values ...int) *httptest.Server {
	t.Helper()
	manager := session.NewManager(cat, func() engine.Random {
		return &fixedRandom{values: values}
	})
	srv := httptest.NewServer(api.NewServer(service.NewGameService(manager, cat), nil, ""))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient(t *testing.T) {
	cat := createTestCatalog(t, "Москва", "Анапа")
	srv := newTestServer(t, cat)
	client := NewClient(srv.URL + "/")
	ctx := context.Background()

	state, err := client.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if client.SessionID() == "" {
		t.Fatal("Expected session ID to be set")
	}
	if state.State != engine.StateNotStarted || state.TotalCities != 2 {
		t.Errorf("Unexpected initial state: %+v", state)
	}

	result, err := client.Play(ctx, engine.CommandNewGame)
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if len(result.Messages) == 0 || result.Messages[0] != engine.MsgNewGame {
		t.Errorf("Expected new game message, got %v", result.Messages)
	}

	state, err = client.GetState(ctx)
	if err != nil {
		t.Fatalf("GetState failed: %v", err)
	}
	if state.State != engine.StateAwaitingInput {
		t.Errorf("Expected awaiting_input, got %s", state.State)
	}
}

func TestClient_UnknownSession(t *testing.T) {
	srv := newTestServer(t, createTestCatalog(t, "Москва"))
	client := NewClient(srv.URL)

	_, err := client.Resume(context.Background(), "nope")
	if err == nil {
		t.Fatal("Expected error for unknown session")
	}
	if !strings.Contains(err.Error(), "404") || !strings.Contains(err.Error(), "session not found") {
		t.Errorf("Expected 404 session not found, got %v", err)
	}
}

func TestStrategy_NextCity(t *testing.T) {
	cat := createTestCatalog(t, "Москва", "Анапа", "Астрахань", "Нальчик", "Абакан")
	strategy := NewStrategy(cat)

	tests := []struct {
		name  string
		state *engine.GameState
		want  string
	}{
		{
			name:  "any letter prefers a city nobody can answer",
			state: &engine.GameState{},
			want:  "Нальчик",
		},
		{
			name: "required letter",
			state: &engine.GameState{
				RequiredLetters: []string{"М"},
			},
			want: "Москва",
		},
		{
			name: "fewest replies",
			state: &engine.GameState{
				RequiredLetters: []string{"А"},
				History: []engine.Move{
					{Player: engine.PlayerHuman, City: "Нальчик"},
					{Player: engine.PlayerOpponent, City: "Абакан"},
				},
			},
			want: "Астрахань",
		},
		{
			name: "nothing left",
			state: &engine.GameState{
				RequiredLetters: []string{"Н"},
				History:         []engine.Move{{Player: engine.PlayerHuman, City: "Нальчик"}},
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strategy.NextCity(tt.state); got != tt.want {
				t.Errorf("NextCity() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStrategy_Reject(t *testing.T) {
	strategy := NewStrategy(createTestCatalog(t, "Москва", "Мурманск"))
	state := &engine.GameState{RequiredLetters: []string{"М"}}

	first := strategy.NextCity(state)
	strategy.Reject(first)
	second := strategy.NextCity(state)
	if second == "" || second == first {
		t.Errorf("Expected a different city after rejecting %s, got %q", first, second)
	}

	strategy.Reject(second)
	if got := strategy.NextCity(state); got != "" {
		t.Errorf("Expected no city left, got %q", got)
	}

	strategy.Reset()
	if got := strategy.NextCity(state); got == "" {
		t.Error("Expected Reset to forget rejected cities")
	}
}

func TestPlayGames(t *testing.T) {
	ctx := context.Background()

	t.Run("wins when moving first", func(t *testing.T) {
		cat := createTestCatalog(t, "Москва", "Анапа")
		client := NewClient(newTestServer(t, cat).URL)
		if _, err := client.CreateSession(ctx); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}

		stats, err := playGames(ctx, client, NewStrategy(cat), Options{Games: 3, MaxTurns: 10})
		if err != nil {
			t.Fatalf("playGames failed: %v", err)
		}
		if stats.Games != 3 || stats.Wins != 3 || stats.Losses != 0 {
			t.Errorf("Unexpected stats: %+v", stats)
		}
	})

	t.Run("loses when out of cities", func(t *testing.T) {
		// opponent moves first and names Анапа
		cat := createTestCatalog(t, "Анапа", "Москва")
		client := NewClient(newTestServer(t, cat, 1, 0).URL)
		if _, err := client.CreateSession(ctx); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}

		stats, err := playGames(ctx, client, NewStrategy(cat), Options{Games: 1, MaxTurns: 10})
		if err != nil {
			t.Fatalf("playGames failed: %v", err)
		}
		if stats.Wins != 0 || stats.Losses != 1 || stats.Turns != 0 {
			t.Errorf("Unexpected stats: %+v", stats)
		}
	})

	t.Run("skips cities the server does not know", func(t *testing.T) {
		server := createTestCatalog(t, "Москва", "Анапа")
		local := createTestCatalog(t, "Адлер", "Анапа", "Москва")
		client := NewClient(newTestServer(t, server).URL)
		if _, err := client.CreateSession(ctx); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}

		stats, err := playGames(ctx, client, NewStrategy(local), Options{Games: 1, MaxTurns: 10})
		if err != nil {
			t.Fatalf("playGames failed: %v", err)
		}
		if stats.Wins != 1 || stats.Turns != 2 {
			t.Errorf("Expected a win after one rejected city, got %+v", stats)
		}
	})

	t.Run("turn limit leaves the game unfinished", func(t *testing.T) {
		// the server rejects Адлер, so the only input is spent without a reply
		server := createTestCatalog(t, "Москва", "Анапа")
		local := createTestCatalog(t, "Адлер", "Анапа", "Москва")
		client := NewClient(newTestServer(t, server).URL)
		if _, err := client.CreateSession(ctx); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}

		stats, err := playGames(ctx, client, NewStrategy(local), Options{Games: 1, MaxTurns: 1})
		if err != nil {
			t.Fatalf("playGames failed: %v", err)
		}
		if stats.Unfinished != 1 || stats.Losses != 0 || stats.Wins != 0 || stats.Turns != 1 {
			t.Errorf("Expected one unfinished game, got %+v", stats)
		}
	})

	t.Run("finished session", func(t *testing.T) {
		cat := createTestCatalog(t, "Москва", "Анапа")
		client := NewClient(newTestServer(t, cat).URL)
		if _, err := client.CreateSession(ctx); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}
		if _, err := client.Play(ctx, engine.CommandExitGame); err != nil {
			t.Fatalf("Play failed: %v", err)
		}

		_, err := playGames(ctx, client, NewStrategy(cat), Options{Games: 1, MaxTurns: 10})
		if !errors.Is(err, ErrSessionFinished) {
			t.Errorf("Expected ErrSessionFinished, got %v", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		cat := createTestCatalog(t, "Москва", "Анапа")
		client := NewClient(newTestServer(t, cat).URL)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := playGames(cancelled, client, NewStrategy(cat), Options{Games: 1})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	})
}

func TestRejected(t *testing.T) {
	tests := []struct {
		messages []string
		want     bool
	}{
		{[]string{engine.MsgNoSuchCity, engine.MsgEnterAnotherCity}, true},
		{[]string{engine.MsgWrongFirstLetter, engine.MsgEnterAnotherCity}, true},
		{[]string{engine.MsgCityAlreadyUsed, engine.MsgEnterAnotherCity}, true},
		{[]string{"Мой город: Анапа.", engine.MsgPlayerTurn}, false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := rejected(tt.messages); got != tt.want {
			t.Errorf("rejected(%q) = %v, want %v", tt.messages, got, tt.want)
		}
	}
}
