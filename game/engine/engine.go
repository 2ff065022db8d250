package engine

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/wricardo/cities-game/game/catalog"
)

var (
	ErrNilCatalog = errors.New("catalog cannot be nil")
)

// Engine provides the main interface for game operations
type Engine interface {
	// Request/response cycle
	Process(input string)
	Messages() []string
	IsFinished() bool

	// Inspection
	State() State
	RequiredLetters() []string
	RemainingCount() int
	History() []Move
	Snapshot() *GameState
}

// Game implements the Engine interface for one player session
type Game struct {
	catalog   *catalog.Catalog
	rng       Random
	state     State
	remaining []catalog.Entry
	required  []string
	history   []Move
	playerWon bool

	// messages is the snapshot visible to callers; out collects lines
	// during a Process call and is swapped into messages at the end.
	messages []string
	out      []string
}

// NewGame creates a new game session over a shared catalog.
// A nil rng is replaced with a freshly seeded source.
func NewGame(cat *catalog.Catalog, rng Random) (*Game, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	if rng == nil {
		rng = NewRandom()
	}

	g := &Game{
		catalog: cat,
		rng:     rng,
		state:   StateNotStarted,
	}
	g.messages = notStartedMessages()

	return g, nil
}

// Process consumes one line of raw player input
func (g *Game) Process(input string) {
	g.out = make([]string, 0, 4)
	defer func() {
		g.messages = g.out
		g.out = nil
	}()

	switch {
	case input == CommandExitGame:
		g.state = StateFinished
	case g.state == StateFinished:
		// terminal
	case input == CommandNewGame:
		g.startNewGame()
	case g.state == StateNotStarted:
		g.emit(notStartedMessages()...)
	case g.state == StateAwaitingInput:
		g.processPlayerTurn(input)
	default:
		panic(fmt.Sprintf("engine: unknown game state %v", g.state))
	}
}

// Messages returns a copy of the lines produced by the last Process call
func (g *Game) Messages() []string {
	return slices.Clone(g.messages)
}

// IsFinished reports whether the player has left the game
func (g *Game) IsFinished() bool {
	return g.state == StateFinished
}

// State returns the current state
func (g *Game) State() State {
	return g.state
}

// RequiredLetters returns the letters the next city must start with.
// An empty result means any letter is accepted.
func (g *Game) RequiredLetters() []string {
	return slices.Clone(g.required)
}

// RemainingCount returns how many catalog cities are still unused
func (g *Game) RemainingCount() int {
	return len(g.remaining)
}

// History returns the cities accepted in the current game
func (g *Game) History() []Move {
	return slices.Clone(g.history)
}

// PlayerWon reports whether the opponent ran out of cities in the last game
func (g *Game) PlayerWon() bool {
	return g.playerWon
}

// Snapshot returns a JSON-friendly copy of the session state
func (g *Game) Snapshot() *GameState {
	return &GameState{
		State:           g.state,
		RequiredLetters: g.RequiredLetters(),
		RemainingCities: len(g.remaining),
		TotalCities:     g.catalog.Len(),
		History:         g.History(),
		Messages:        g.Messages(),
		PlayerWon:       g.playerWon,
		Finished:        g.IsFinished(),
	}
}

func (g *Game) emit(lines ...string) {
	g.out = append(g.out, lines...)
}

func (g *Game) startNewGame() {
	g.remaining = g.catalog.Entries()
	g.required = nil
	g.history = nil
	g.playerWon = false
	g.emit(MsgNewGame)

	opponentFirst := g.rng.Intn(2) == 1
	if opponentFirst {
		g.makeOpponentTurn()
		return
	}

	g.emit(MsgPlayerTurn)
	g.state = StateAwaitingInput
}

func (g *Game) endCurrentGame() {
	g.emit(notStartedMessages()...)
	g.state = StateNotStarted
}

func (g *Game) makeOpponentTurn() {
	candidates := g.candidates()
	if len(candidates) == 0 {
		g.playerWon = true
		g.emit(MsgPlayerWon)
		g.endCurrentGame()
		return
	}

	city := candidates[g.rng.Intn(len(candidates))]
	g.emit(fmt.Sprintf(MsgOpponentTurn, city.Name))
	g.accept(PlayerOpponent, city)
	g.emit(MsgPlayerTurn)
	g.state = StateAwaitingInput
}

// candidates returns the remaining cities starting with any required letter
func (g *Game) candidates() []catalog.Entry {
	if len(g.required) == 0 {
		return g.remaining
	}

	var pool []catalog.Entry
	for _, e := range g.remaining {
		for _, letter := range g.required {
			if strings.HasPrefix(e.Name, letter) {
				pool = append(pool, e)
				break
			}
		}
	}
	return pool
}

func (g *Game) processPlayerTurn(input string) {
	key := catalog.Key(input)

	if _, known := g.catalog.Lookup(key); !known {
		g.emit(MsgNoSuchCity, MsgEnterAnotherCity)
		return
	}

	if len(g.required) > 0 && !slices.Contains(g.required, FirstLetter(input)) {
		g.emit(MsgWrongFirstLetter, MsgEnterAnotherCity)
		return
	}

	i := slices.IndexFunc(g.remaining, func(e catalog.Entry) bool { return e.Key == key })
	if i < 0 {
		g.emit(MsgCityAlreadyUsed, MsgEnterAnotherCity)
		return
	}

	g.accept(PlayerHuman, g.remaining[i])
	g.makeOpponentTurn()
}

// accept removes the city from play and derives the next required letters
func (g *Game) accept(player Player, city catalog.Entry) {
	if i := slices.Index(g.remaining, city); i >= 0 {
		g.remaining = slices.Delete(g.remaining, i, i+1)
	}
	g.history = append(g.history, Move{Player: player, City: city.Name})
	g.required = NextLetters(city.Name)
	g.emit(fmt.Sprintf(MsgNextCity, FormatLetters(g.required)))
}

func notStartedMessages() []string {
	return []string{MsgToStart, MsgToEnd}
}
