// Command bot plays the human side of the cities game against a running
// server through its REST API. It keeps a local copy of the catalog, answers
// every prompt with the city that leaves the opponent the fewest replies and
// reports how many games it won.
//
// Usage:
//
//	go run ./cmd/bot --url http://localhost:8080 --games 10
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/cities-game/game/catalog"
	"github.com/wricardo/cities-game/game/engine"
)

// ErrSessionFinished is returned when the session was exited while playing
var ErrSessionFinished = errors.New("session is finished")

// Options control a bot run
type Options struct {
	Games    int
	MaxTurns int
	Delay    time.Duration
	Verbose  bool
}

// Stats summarizes a bot run
type Stats struct {
	Games      int
	Wins       int
	Losses     int
	Unfinished int
	Turns      int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "bot",
		Usage: "play the cities game automatically against a running server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Usage:   "game server URL",
				Value:   "http://localhost:8080",
				Sources: cli.EnvVars("CITIES_URL"),
			},
			&cli.StringFlag{
				Name:    "catalog",
				Usage:   "city list the bot chooses from (embedded list when empty)",
				Sources: cli.EnvVars("CITIES_CATALOG"),
			},
			&cli.StringFlag{
				Name:  "continue",
				Usage: "play in an existing session by ID",
			},
			&cli.IntFlag{
				Name:  "games",
				Usage: "number of games to play",
				Value: 1,
			},
			&cli.IntFlag{
				Name:  "max-turns",
				Usage: "maximum inputs per game",
				Value: 500,
			},
			&cli.DurationFlag{
				Name:  "delay",
				Usage: "pause between inputs",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log every turn",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cat, err := catalog.Default()
	if path := cmd.String("catalog"); path != "" {
		cat, err = catalog.Load(path)
	}
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	log.Printf("Connecting to game server at %s", cmd.String("url"))
	client := NewClient(cmd.String("url"))

	if id := cmd.String("continue"); id != "" {
		if _, err := client.Resume(ctx, id); err != nil {
			return err
		}
		log.Printf("[BOT] resumed session=%s", id)
	} else {
		if _, err := client.CreateSession(ctx); err != nil {
			return err
		}
		log.Printf("[BOT] created session=%s", client.SessionID())
	}

	stats, err := playGames(ctx, client, NewStrategy(cat), Options{
		Games:    cmd.Int("games"),
		MaxTurns: cmd.Int("max-turns"),
		Delay:    cmd.Duration("delay"),
		Verbose:  cmd.Bool("verbose"),
	})
	log.Printf("[BOT] session=%s games=%d wins=%d losses=%d unfinished=%d turns=%d",
		client.SessionID(), stats.Games, stats.Wins, stats.Losses, stats.Unfinished, stats.Turns)
	return err
}

// playGames plays opts.Games games in the client's session
func playGames(ctx context.Context, client *Client, strategy *Strategy, opts Options) (Stats, error) {
	var stats Stats

	for stats.Games < opts.Games {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		strategy.Reset()
		result, err := client.Play(ctx, engine.CommandNewGame)
		if err != nil {
			return stats, err
		}
		state := result.GameState
		if state.Finished {
			return stats, ErrSessionFinished
		}
		stats.Games++

		turns := 0
		stuck := false
		for state.State == engine.StateAwaitingInput && turns < opts.MaxTurns {
			city := strategy.NextCity(state)
			if city == "" {
				stuck = true
				break
			}

			result, err := client.Play(ctx, city)
			if err != nil {
				return stats, err
			}
			if rejected(result.Messages) {
				strategy.Reject(city)
			}
			if opts.Verbose {
				log.Printf("[BOT] game=%d input=%s messages=%q", stats.Games, city, result.Messages)
			}

			state = result.GameState
			turns++

			if opts.Delay > 0 {
				select {
				case <-ctx.Done():
					return stats, ctx.Err()
				case <-time.After(opts.Delay):
				}
			}
		}
		stats.Turns += turns

		if state.Finished {
			return stats, ErrSessionFinished
		}
		switch {
		case state.PlayerWon:
			stats.Wins++
			log.Printf("[BOT] game=%d won after %d cities", stats.Games, len(state.History))
		case !stuck && state.State == engine.StateAwaitingInput:
			stats.Unfinished++
			log.Printf("[BOT] game=%d unfinished after %d inputs", stats.Games, turns)
		default:
			stats.Losses++
			log.Printf("[BOT] game=%d lost, no city on %s", stats.Games, engine.FormatLetters(state.RequiredLetters))
		}
	}

	return stats, nil
}

// rejected reports whether the server refused the last city
func rejected(messages []string) bool {
	return slices.Contains(messages, engine.MsgNoSuchCity) ||
		slices.Contains(messages, engine.MsgWrongFirstLetter) ||
		slices.Contains(messages, engine.MsgCityAlreadyUsed)
}
