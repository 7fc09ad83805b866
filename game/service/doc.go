// Package service provides the game loop for the kart simulator.
//
// The service package implements:
//   - The setup dialogue: character, kart color (with retry) and engine
//   - Kart construction and driver resolution through the roster
//   - The turn loop: wait for the player, play a turn, narrate it, draw the track
//   - Graceful aborts with a localized message when setup fails
//   - Structured logging and race metrics
//
// Core Types:
//
// Game runs one session against a Console, the two-capability collaborator
// that reads a line from and writes a line to the player. All randomness comes
// from an injected engine.Roller so a whole game can be replayed from a seed.
//
// Architecture:
//
// The service layer sits between the console transport and the game engine.
// It owns the session.Session for the game and drives its state machine;
// there is no global game state.
//
// Usage:
//
//	term := console.New(os.Stdin, os.Stdout)
//	defer term.Close()
//
//	game, err := service.New(term,
//		service.WithRoller(engine.NewSeededRoller(seed)),
//		service.WithLanguage(i18n.ResolveTag("fr")),
//		service.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err := game.Run(ctx)
//
// Errors:
//
// An invalid kart, an unknown character or input closing during setup abort
// the session: Run prints a message, records the reason in Session.Err and
// returns a nil error. Run only returns an error when the context is canceled
// or the console cannot be written to.
package service
