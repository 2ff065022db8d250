package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/wricardo/cities-game/game/engine"
)

// Game is the part of the engine the console drives
type Game interface {
	Process(input string)
	Messages() []string
	IsFinished() bool
}

var _ Game = (engine.Engine)(nil)

// Run plays the game over in and out until it finishes or the input ends.
// A cancelled context stops the loop between lines and returns ctx.Err().
func Run(ctx context.Context, game Game, in io.Reader, out io.Writer) error {
	lines, readErr := readLines(ctx, in)

	for {
		if err := printMessages(out, game.Messages()); err != nil {
			return err
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-readErr
			}
			line = l
		}

		game.Process(line)
		if game.IsFinished() {
			// the exit command produces no output, but flush anything the game left
			return printMessages(out, game.Messages())
		}
	}
}

func printMessages(out io.Writer, messages []string) error {
	for _, msg := range messages {
		if _, err := fmt.Fprintln(out, msg); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

// readLines scans in on its own goroutine so a blocked read does not
// hold up cancellation. readErr receives exactly one value after lines closes.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		if err := scanner.Err(); err != nil {
			readErr <- fmt.Errorf("read input: %w", err)
			return
		}
		readErr <- nil
	}()

	return lines, readErr
}
