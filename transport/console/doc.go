// Package console runs a game session over a line-oriented text stream,
// typically the terminal.
//
// Each output line of the game is written on its own line. The driver
// prints the pending messages, reads one line, feeds it to the game and
// repeats until the game is finished, the input ends or the context is
// cancelled.
//
// Usage:
//
//	game, _ := engine.NewGame(cat, nil)
//	err := console.Run(ctx, game, os.Stdin, os.Stdout)
package console
