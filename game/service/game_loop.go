package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"

	"github.com/wricardo/kartsim/game/engine"
	"github.com/wricardo/kartsim/game/kart"
	"github.com/wricardo/kartsim/game/session"
	"github.com/wricardo/kartsim/i18n"
	"github.com/wricardo/kartsim/transport/console"
)

// Abort reasons recorded on the sessions.aborted counter
const (
	reasonInvalidKart      = "invalid_kart"
	reasonUnknownCharacter = "unknown_character"
	reasonInputClosed      = "input_closed"
	reasonCanceled         = "canceled"
	reasonIO               = "io"
)

// run is the state of one call to Game.Run
type run struct {
	*Game
	ctx  context.Context
	sess *session.Session
	log  zerolog.Logger

	inputClosed bool
	writeErr    error
}

// Run plays one full session: setup dialogue, kart, driver and race.
//
// Setup failures abort the session with a message to the player and a nil
// error; the reason is kept in Session.Err. A canceled context or a console
// that cannot be written to returns the error.
func (g *Game) Run(ctx context.Context) (*session.Session, error) {
	r := &run{
		Game: g,
		ctx:  ctx,
		sess: session.New(g.lang),
	}
	r.log = g.logger.With().
		Str("session", r.sess.ID).
		Str("lang", g.lang.String()).
		Logger()

	r.log.Info().Msg("session started")

	if err := r.play(); err != nil {
		return r.abort(err)
	}
	return r.sess, nil
}

func (r *run) play() error {
	if err := r.say("welcome"); err != nil {
		return err
	}

	steps := []func() error{
		r.askCharacter,
		r.askColor,
		r.askEngine,
		r.buildKart,
		r.resolveDriver,
		r.race,
	}
	for _, step := range steps {
		if err := r.ctx.Err(); err != nil {
			return err
		}
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) askCharacter() error {
	if err := r.prompt("prompt.character", strings.Join(r.roster.Keys(), " / ")); err != nil {
		return err
	}
	line, err := r.readLine()
	if err != nil {
		return err
	}

	r.sess.Character = strings.TrimSpace(line)
	r.log.Debug().Str("character", r.sess.Character).Msg("character chosen")
	return r.sess.Transition(session.AwaitColor)
}

func (r *run) askColor() error {
	palette := kart.Palette()
	listed := make([]string, len(palette))
	names := make([]any, len(palette))
	for i, c := range palette {
		listed[i] = i18n.ColorName(r.printer, c)
		names[i] = listed[i]
	}
	aliases := i18n.ColorAliases(r.printer)

	for {
		if err := r.ctx.Err(); err != nil {
			return err
		}
		if err := r.prompt("prompt.color", strings.Join(listed, " / ")); err != nil {
			return err
		}
		line, err := r.readLine()
		if err != nil {
			return err
		}
		r.sess.ColorAttempts++

		c, ok := kart.ParseColor(line)
		if !ok {
			c, ok = aliases[cases.Fold().String(strings.TrimSpace(line))]
		}
		if ok {
			r.sess.Color = c
			r.log.Debug().
				Str("color", string(c)).
				Int("attempts", r.sess.ColorAttempts).
				Msg("color chosen")
			return r.sess.Transition(session.AwaitEngine)
		}

		r.log.Debug().Str("input", line).Msg("invalid color")
		if err := r.say("color.invalid", names...); err != nil {
			return err
		}
		if err := r.sess.Transition(session.AwaitColor); err != nil {
			return err
		}
	}
}

func (r *run) askEngine() error {
	if err := r.prompt("prompt.engine"); err != nil {
		return err
	}
	line, err := r.readLine()
	if err != nil {
		return err
	}

	r.sess.EngineType = strings.TrimSpace(line)
	return r.sess.Transition(session.BuildKart)
}

func (r *run) buildKart() error {
	k, err := kart.NewBuilder().
		SetColor(string(r.sess.Color)).
		SetEngine(r.sess.EngineType).
		Build()
	if err != nil {
		return err
	}

	r.sess.Kart = k
	r.log.Debug().Str("kart", k.Description()).Msg("kart built")
	return r.sess.Transition(session.ResolveDriver)
}

func (r *run) resolveDriver() error {
	driver := r.roster.Create(r.sess.Character, r.sess.Kart, r.dice)
	if driver == nil {
		return fmt.Errorf("%w: %q", ErrUnknownCharacter, r.sess.Character)
	}

	race, err := engine.NewEngine(driver, engine.WithReporter(r))
	if err != nil {
		return fmt.Errorf("failed to create race: %w", err)
	}
	r.sess.Driver = driver
	r.sess.Race = race

	r.log.Info().
		Str("driver", driver.Name).
		Str("strategy", driver.Strategy.String()).
		Int("stability", driver.Stability).
		Msg("driver ready")

	if err := r.say("race.start", driver.Name, r.describeKart(driver.Kart)); err != nil {
		return err
	}
	if err := r.say("race.goal", engine.TrackLength); err != nil {
		return err
	}
	return r.sess.Transition(session.Playing)
}

func (r *run) race() error {
	race := r.sess.Race
	for {
		if err := r.ctx.Err(); err != nil {
			return err
		}
		if err := r.waitForPlayer(); err != nil {
			return err
		}

		race.PlayTurn()
		if r.writeErr != nil {
			return r.writeErr
		}
		if race.IsFinished() {
			break
		}
		if err := r.sess.Transition(session.Playing); err != nil {
			return err
		}
	}

	if err := r.sess.Transition(session.Finished); err != nil {
		return err
	}

	driver := race.GetDriver()
	r.metrics.raceFinished(r.ctx, driver.Name)
	r.log.Info().
		Str("driver", driver.Name).
		Int("turns", race.TurnCount()).
		Int("slips", race.SlipCount()).
		Dur("duration", r.sess.Duration()).
		Msg("race finished")

	if err := r.say("race.won", driver.Name); err != nil {
		return err
	}
	return r.say("race.summary", race.TurnCount(), race.SlipCount())
}

// waitForPlayer blocks until the player presses enter. Once input is closed
// the remaining turns play without waiting.
func (r *run) waitForPlayer() error {
	if err := r.console.WriteLine(""); err != nil {
		return err
	}
	if err := r.promptInline(r.printer.Sprintf("turn.prompt")); err != nil {
		return err
	}
	if r.inputClosed {
		return r.console.WriteLine("")
	}

	_, err := r.readLine()
	if errors.Is(err, ErrInputClosed) {
		r.inputClosed = true
		r.log.Debug().Msg("input closed, playing remaining turns")
		return r.console.WriteLine("")
	}
	return err
}

// TurnPlayed narrates a turn and draws the track
func (r *run) TurnPlayed(d *engine.Driver, rec engine.TurnRecord) {
	if r.writeErr != nil {
		return
	}

	r.metrics.turnPlayed(r.ctx, d.Name, rec.Slipped)
	r.log.Debug().
		Int("turn", rec.Number).
		Int("roll", rec.Roll).
		Int("from", rec.From).
		Int("to", rec.To).
		Bool("slipped", rec.Slipped).
		Bool("clamped", rec.Clamped).
		Msg("turn played")

	lines := []string{r.printer.Sprintf("turn.roll", d.Name, rec.Roll)}
	if rec.Slipped {
		lines = append(lines, r.printer.Sprintf("turn.slip", d.Name))
	} else {
		lines = append(lines, r.printer.Sprintf("turn.move", d.Name, rec.From, rec.To))
	}
	lines = append(lines, d.RenderTrack())

	for _, line := range lines {
		if err := r.console.WriteLine(line); err != nil {
			r.writeErr = err
			return
		}
	}
}

// abort ends the session. Setup failures are reported to the player and
// swallowed; anything else is returned.
func (r *run) abort(cause error) (*session.Session, error) {
	var (
		reason   string
		message  string
		graceful = true
	)

	switch {
	case errors.Is(cause, kart.ErrInvalidKart):
		reason = reasonInvalidKart
		message = r.printer.Sprintf("error.kart", r.printer.Sprintf("error.kart.missing"))
	case errors.Is(cause, ErrUnknownCharacter):
		reason = reasonUnknownCharacter
		message = r.printer.Sprintf("error.character", strings.Join(r.roster.Keys(), ", "))
	case errors.Is(cause, ErrInputClosed):
		reason = reasonInputClosed
		message = r.printer.Sprintf("error.input_closed")
	case errors.Is(cause, context.Canceled), errors.Is(cause, context.DeadlineExceeded):
		reason = reasonCanceled
		graceful = false
	default:
		reason = reasonIO
		graceful = false
	}

	if !r.sess.Done() {
		if err := r.sess.Abort(cause); err != nil {
			r.log.Error().Err(err).Msg("failed to abort session")
		}
	}
	r.metrics.sessionAborted(context.WithoutCancel(r.ctx), reason)

	event := r.log.Warn()
	if !graceful {
		event = r.log.Error()
	}
	event.Err(cause).
		Str("reason", reason).
		Str("state", r.sess.State.String()).
		Msg("session aborted")

	if !graceful {
		return r.sess, cause
	}
	if err := r.console.WriteLine(message); err != nil {
		return r.sess, err
	}
	return r.sess, nil
}

func (r *run) describeKart(k kart.Kart) string {
	return r.printer.Sprintf("kart.description", i18n.ColorName(r.printer, kart.Color(k.Color())), k.Engine())
}

// readLine reads one answer. A closed input is reported as ErrInputClosed.
func (r *run) readLine() (string, error) {
	if err := r.ctx.Err(); err != nil {
		return "", err
	}
	line, err := r.console.ReadLine()
	if errors.Is(err, io.EOF) || errors.Is(err, console.ErrClosed) {
		return "", ErrInputClosed
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

func (r *run) say(key string, args ...any) error {
	return r.console.WriteLine(r.printer.Sprintf(key, args...))
}

// prompt writes a question on its own line followed by the input marker
func (r *run) prompt(key string, args ...any) error {
	if err := r.say(key, args...); err != nil {
		return err
	}
	return r.promptInline(r.printer.Sprintf("prompt.marker"))
}

func (r *run) promptInline(text string) error {
	if p, ok := r.console.(Prompter); ok {
		return p.Prompt(text)
	}
	return r.console.WriteLine(text)
}
