// Package session provides the per-game session context for the kart
// simulator.
//
// The session package implements:
//   - Unique session ID generation
//   - The game state machine, from character selection to the finish line
//   - Storage of the player's choices, the built kart and the racing driver
//   - The abort reason when a session ends early
//
// Core Types:
//
// Session is created once at program start and owned by the game loop; there
// is no process-wide game state. State enumerates the steps of a game and
// Transition enforces the allowed moves between them.
//
// State Machine:
//
//	AwaitCharacter -> AwaitColor -> AwaitEngine -> BuildKart -> ResolveDriver -> Playing -> Finished
//
// AwaitColor and Playing may transition to themselves (color retry and one
// transition per turn). Every non-terminal state may transition to Aborted.
// Finished and Aborted are terminal.
//
// Usage:
//
//	sess := session.New(language.English)
//	if err := sess.Transition(session.AwaitColor); err != nil {
//		log.Fatal(err)
//	}
//
// Concurrency:
//
// A session belongs to a single game loop and is not safe for concurrent use.
package session
