package service

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/wricardo/kartsim/game/session"
)

// Summary is a flat view of a finished or aborted session
type Summary struct {
	SessionID     string
	State         string
	Character     string
	Driver        string
	Kart          string
	ColorAttempts int
	Turns         int
	Slips         int
	Position      int
	Won           bool
	Duration      time.Duration
	Err           string
}

// Summarize flattens a session. Fields the session never reached are left
// at their zero value.
func Summarize(sess *session.Session) Summary {
	s := Summary{
		SessionID:     sess.ID,
		State:         sess.State.String(),
		Character:     sess.Character,
		ColorAttempts: sess.ColorAttempts,
		Won:           sess.Won(),
		Duration:      sess.Duration(),
	}
	if !sess.Kart.IsZero() {
		s.Kart = sess.Kart.Description()
	}
	if sess.Driver != nil {
		s.Driver = sess.Driver.Name
		s.Position = sess.Driver.Position
	}
	if sess.Race != nil {
		s.Turns = sess.Race.TurnCount()
		s.Slips = sess.Race.SlipCount()
	}
	if sess.Err != nil {
		s.Err = sess.Err.Error()
	}
	return s
}

// MarshalZerologObject lets a Summary be logged as a nested object
func (s Summary) MarshalZerologObject(e *zerolog.Event) {
	e.Str("session", s.SessionID).
		Str("state", s.State).
		Bool("won", s.Won).
		Dur("duration", s.Duration)

	if s.Character != "" {
		e.Str("character", s.Character)
	}
	if s.Driver != "" {
		e.Str("driver", s.Driver).
			Int("position", s.Position).
			Int("turns", s.Turns).
			Int("slips", s.Slips)
	}
	if s.Kart != "" {
		e.Str("kart", s.Kart)
	}
	if s.Err != "" {
		e.Str("error", s.Err)
	}
}
