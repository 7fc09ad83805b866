package session

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/wricardo/kartsim/game/engine"
	"github.com/wricardo/kartsim/game/kart"
)

var (
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrSessionDone       = errors.New("session already ended")
)

// State is a step of the game
type State int

const (
	AwaitCharacter State = iota
	AwaitColor
	AwaitEngine
	BuildKart
	ResolveDriver
	Playing
	Finished
	Aborted
)

var stateNames = map[State]string{
	AwaitCharacter: "await_character",
	AwaitColor:     "await_color",
	AwaitEngine:    "await_engine",
	BuildKart:      "build_kart",
	ResolveDriver:  "resolve_driver",
	Playing:        "playing",
	Finished:       "finished",
	Aborted:        "aborted",
}

// transitions lists the states reachable from each state
var transitions = map[State][]State{
	AwaitCharacter: {AwaitColor, Aborted},
	AwaitColor:     {AwaitColor, AwaitEngine, Aborted},
	AwaitEngine:    {BuildKart, Aborted},
	BuildKart:      {ResolveDriver, Aborted},
	ResolveDriver:  {Playing, Aborted},
	Playing:        {Playing, Finished, Aborted},
}

// String returns the state name
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Terminal reports whether no transition leaves s
func (s State) Terminal() bool {
	return s == Finished || s == Aborted
}

// CanTransition reports whether from may move to to
func CanTransition(from, to State) bool {
	return slices.Contains(transitions[from], to)
}

// Session holds everything about one game, from the first prompt to the
// finish line.
type Session struct {
	ID        string
	Locale    language.Tag
	CreatedAt time.Time
	EndedAt   time.Time
	State     State

	// Player choices
	Character  string
	Color      kart.Color
	EngineType string

	Kart   kart.Kart
	Driver *engine.Driver
	Race   *engine.GameEngine

	// Err is the reason the session was aborted
	Err error

	// ColorAttempts counts answers given to the color prompt, valid or not
	ColorAttempts int
}

// New creates a session waiting for the character choice
func New(locale language.Tag) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Locale:    locale,
		CreatedAt: time.Now(),
		State:     AwaitCharacter,
	}
}

// Transition moves the session to the given state
func (s *Session) Transition(to State) error {
	if s.State.Terminal() {
		return fmt.Errorf("%w: %s", ErrSessionDone, s.State)
	}
	if !CanTransition(s.State, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.State, to)
	}

	s.State = to
	if to.Terminal() {
		s.EndedAt = time.Now()
	}
	return nil
}

// Abort ends the session early and records why
func (s *Session) Abort(reason error) error {
	if err := s.Transition(Aborted); err != nil {
		return err
	}
	s.Err = reason
	return nil
}

// Done reports whether the session reached a terminal state
func (s *Session) Done() bool {
	return s.State.Terminal()
}

// Won reports whether the driver reached the finish line
func (s *Session) Won() bool {
	return s.State == Finished
}

// Duration returns how long the session lasted, or has lasted so far
func (s *Session) Duration() time.Duration {
	if s.EndedAt.IsZero() {
		return time.Since(s.CreatedAt)
	}
	return s.EndedAt.Sub(s.CreatedAt)
}
