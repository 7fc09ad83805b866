package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wricardo/kartsim/game/engine"
	"github.com/wricardo/kartsim/game/roster"
	"github.com/wricardo/kartsim/game/session"
	"github.com/wricardo/kartsim/i18n"
)

var (
	ErrUnknownCharacter = errors.New("unknown character")
	ErrInputClosed      = errors.New("input closed")
	ErrNoConsole        = errors.New("console is required")
)

// Console is the player-facing collaborator: it reads a line of text from the
// player and writes a line of text to the player.
type Console interface {
	ReadLine() (string, error)
	WriteLine(text string) error
}

// Prompter is implemented by consoles that can write a prompt without ending
// the line. Consoles that do not implement it get the prompt as a full line.
type Prompter interface {
	Prompt(text string) error
}

// GameService runs a game session from the first prompt to the end
type GameService interface {
	Run(ctx context.Context) (*session.Session, error)
}

// Option configures a Game
type Option func(*Game)

// WithLogger sets the structured logger
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithRoller sets the die roller handed to the driver
func WithRoller(dice engine.Roller) Option {
	return func(g *Game) {
		g.dice = dice
	}
}

// WithLanguage sets the language of every message written to the player
func WithLanguage(tag language.Tag) Option {
	return func(g *Game) {
		g.lang = tag
	}
}

// WithRoster replaces the built-in character table
func WithRoster(r *roster.Roster) Option {
	return func(g *Game) {
		g.roster = r
	}
}

// WithMeter sets the meter used for race metrics
func WithMeter(m metric.Meter) Option {
	return func(g *Game) {
		g.meter = m
	}
}

var _ GameService = (*Game)(nil)

// Game implements GameService for a single player on a console
type Game struct {
	console Console
	roster  *roster.Roster
	dice    engine.Roller
	lang    language.Tag
	printer *message.Printer
	logger  zerolog.Logger
	meter   metric.Meter
	metrics *raceMetrics
}

// New creates a game bound to a console
func New(console Console, opts ...Option) (*Game, error) {
	if console == nil {
		return nil, ErrNoConsole
	}

	g := &Game{
		console: console,
		roster:  roster.Default(),
		lang:    i18n.Default(),
		logger:  zerolog.Nop(),
		meter:   meter(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.dice == nil {
		g.dice = engine.NewSeededRoller(time.Now().UnixNano())
	}
	g.printer = i18n.Printer(g.lang)

	metrics, err := newRaceMetrics(g.meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}
	g.metrics = metrics

	return g, nil
}

// Language returns the language the game speaks
func (g *Game) Language() language.Tag {
	return g.lang
}
