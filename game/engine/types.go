package engine

import "fmt"

// State represents the phase of a game session
type State int

const (
	StateNotStarted State = iota
	StateAwaitingInput
	StateFinished
)

// String returns the wire name of the state
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateAwaitingInput:
		return "awaiting_input"
	case StateFinished:
		return "finished"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "not_started":
		*s = StateNotStarted
	case "awaiting_input":
		*s = StateAwaitingInput
	case "finished":
		*s = StateFinished
	default:
		return fmt.Errorf("unknown state %q", text)
	}
	return nil
}

// Player commands, matched literally against raw input
const (
	CommandNewGame  = "/new_game"
	CommandExitGame = "/exit_game"
)

// Player identifies who named a city
type Player string

const (
	PlayerHuman    Player = "human"
	PlayerOpponent Player = "opponent"
)

// Game messages
const (
	MsgToStart          = "Чтобы начать новую игру, введите " + CommandNewGame + "\nВы можете начать новую игру в любой момент."
	MsgToEnd            = "Чтобы выйти из игры, введите " + CommandExitGame + "\nВы можете выйти из игры в любой момент."
	MsgNewGame          = "Новая игра."
	MsgNextCity         = "Следующий город на %s."
	MsgOpponentTurn     = "Мой город: %s."
	MsgPlayerTurn       = "Введите ваш город."
	MsgNoSuchCity       = "Я не знаю такого города."
	MsgCityAlreadyUsed  = "Такой город уже был."
	MsgWrongFirstLetter = "Не с той буквы."
	MsgEnterAnotherCity = "Введите другой город."
	MsgPlayerWon        = "Я не знаю таких городов.\nПоздравляю! Вы победили!"

	letterSeparator = " или "
)

// Move is a single accepted city in the current game
type Move struct {
	Player Player `json:"player"`
	City   string `json:"city"`
}

// GameState is a read-only snapshot of a game session
type GameState struct {
	State           State    `json:"state"`
	RequiredLetters []string `json:"required_letters"`
	RemainingCities int      `json:"remaining_cities"`
	TotalCities     int      `json:"total_cities"`
	History         []Move   `json:"history"`
	Messages        []string `json:"messages"`
	PlayerWon       bool     `json:"player_won"`
	Finished        bool     `json:"finished"`
}
