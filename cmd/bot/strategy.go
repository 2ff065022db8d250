package main

import (
	"strings"

	"github.com/wricardo/cities-game/game/catalog"
	"github.com/wricardo/cities-game/game/engine"
)

// Strategy picks the human side's next city from a local copy of the catalog.
// Among the cities the server would accept it prefers the one that leaves the
// opponent the fewest unused replies.
type Strategy struct {
	entries  []catalog.Entry
	rejected map[string]bool
}

// NewStrategy creates a strategy over cat
func NewStrategy(cat *catalog.Catalog) *Strategy {
	return &Strategy{
		entries:  cat.Entries(),
		rejected: make(map[string]bool),
	}
}

// Reset forgets cities the server rejected in the previous game
func (s *Strategy) Reset() {
	clear(s.rejected)
}

// Reject marks a city the server refused so it is not offered again
func (s *Strategy) Reject(city string) {
	s.rejected[catalog.Key(city)] = true
}

// NextCity returns the city to play for state, or "" when none is left
func (s *Strategy) NextCity(state *engine.GameState) string {
	used := make(map[string]bool, len(state.History))
	for _, m := range state.History {
		used[catalog.Key(m.City)] = true
	}

	best := ""
	bestReplies := -1
	for _, e := range s.entries {
		if used[e.Key] || s.rejected[e.Key] || !startsWithAny(e.Name, state.RequiredLetters) {
			continue
		}

		replies := s.countReplies(e, used)
		if bestReplies < 0 || replies < bestReplies {
			best, bestReplies = e.Name, replies
		}
		if bestReplies == 0 {
			break
		}
	}
	return best
}

// countReplies counts unused cities the opponent could answer e with
func (s *Strategy) countReplies(e catalog.Entry, used map[string]bool) int {
	letters := engine.NextLetters(e.Name)

	n := 0
	for _, other := range s.entries {
		if other.Key == e.Key || used[other.Key] {
			continue
		}
		if startsWithAny(other.Name, letters) {
			n++
		}
	}
	return n
}

func startsWithAny(name string, letters []string) bool {
	if len(letters) == 0 {
		return true
	}
	for _, l := range letters {
		if strings.HasPrefix(name, l) {
			return true
		}
	}
	return false
}
