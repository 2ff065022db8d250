// Package engine provides the core game logic for the Cities game.
//
// Two players, a human and the engine itself, take turns naming cities. Each
// new city must start with a letter derived from the last letter of the
// previous city, and no city may be named twice in one game. The engine wins
// the human a game when it cannot find a valid unused city.
//
// Core Types:
//
// Game owns all mutable state of one session and exposes a single
// request/response cycle: Process consumes raw player input and Messages
// returns the lines produced by that call. GameState is a JSON-friendly
// snapshot used by the transports.
//
// Usage:
//
//	cat, err := catalog.Default()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	game, err := engine.NewGame(cat, engine.NewRandom())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	game.Process("/new_game")
//	for _, line := range game.Messages() {
//		fmt.Println(line)
//	}
//
// Game Rules:
//
// The commands /new_game and /exit_game are recognized in every state. A new
// game flips a coin to decide who moves first. Names are compared case
// insensitively with hyphen and space treated alike and "ё" folded into "е".
// The next required letter is the last letter of the accepted city, with the
// special cases implemented by NextLetters.
//
// A Game is not safe for concurrent use; callers serialize access.
package engine
