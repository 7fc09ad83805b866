// Package engine provides the core race logic for the kart simulator.
//
// The engine package implements the game mechanics including:
//   - Movement strategies that scale the die roll (Balanced, Stable, Fast)
//   - Driver turns, the slip hazard and finish-line clamping
//   - Track rendering
//   - Turn history for a single race
//   - Driver profile validation
//
// Core Types:
//
// A Driver races along a one-dimensional track of TrackLength cells. Each
// call to PlayTurn rolls the die through an injected Roller, so races are
// reproducible when the roller is seeded or scripted. GameEngine wraps a
// Driver, records every TurnRecord and forwards it to an optional Reporter.
//
// Usage:
//
//	k, err := kart.NewBuilder().SetColor("red").SetEngine("Turbo").Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	driver := engine.NewDriver(profile, k, engine.NewSeededRoller(42))
//	race, err := engine.NewEngine(driver)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for !race.IsFinished() {
//		race.PlayTurn()
//	}
//
// Game Rules:
//
// Each turn the driver rolls a six-sided die. A driver whose stability is
// below SlipStabilityThreshold slips on a roll of SlipRoll and does not move.
// Otherwise the driver's strategy turns the roll into a new position, which
// is capped at FinishLine. The race ends when the driver reaches FinishLine.
package engine
