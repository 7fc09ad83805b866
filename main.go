// Command kartsim runs the Mario Kart text simulator on the terminal.
//
// The player picks a driver, paints a kart and chooses an engine, then presses
// enter once per turn until the driver reaches the finish line.
//
// Flags control the die seed (for replaying a race), the language of the game
// text and the log level. Logs go to stderr and are off by default.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/kartsim/game/engine"
	"github.com/wricardo/kartsim/game/service"
	"github.com/wricardo/kartsim/i18n"
	"github.com/wricardo/kartsim/transport/console"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Mario Kart Simulator"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "kartsim: %v\n", err)
		os.Exit(1)
	}
}

// newCommand builds the root command. Input and output come from the
// command's Reader and Writer so tests can script a game.
func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "kartsim",
		Usage:   AppName,
		Version: Version,
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "die seed, 0 picks one from the clock",
			},
			&cli.StringFlag{
				Name:  "lang",
				Value: "en",
				Usage: "game language (en, fr)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "disabled",
				Usage: "log level (trace, debug, info, warn, error, disabled)",
			},
		},
		Action: play,
	}
}

func play(ctx context.Context, cmd *cli.Command) error {
	logger, err := newLogger(cmd.ErrWriter, cmd.String("log-level"))
	if err != nil {
		return err
	}

	seed := cmd.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	lang := i18n.ResolveTag(cmd.String("lang"))

	term := console.New(cmd.Reader, cmd.Writer)
	defer func() {
		if err := term.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close input")
		}
	}()

	game, err := service.New(term,
		service.WithRoller(engine.NewSeededRoller(seed)),
		service.WithLanguage(lang),
		service.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	logger.Info().
		Str("version", Version).
		Int64("seed", seed).
		Str("lang", lang.String()).
		Msg("starting " + AppName)

	sess, err := game.Run(ctx)
	if sess != nil {
		logger.Info().Object("summary", service.Summarize(sess)).Msg("session ended")
	}
	return err
}

// newLogger writes human-readable logs to w at the named level
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.Disabled
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
