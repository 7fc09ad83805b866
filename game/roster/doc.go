// Package roster provides the playable characters of the kart simulator.
//
// The roster package handles:
//   - The fixed table of character profiles (name, speed, stability, strategy)
//   - Case-insensitive lookup of a character by key
//   - Creating a ready-to-race engine.Driver for a chosen character
//
// Available Characters:
//
//   - mario: Mario, speed 2, stability 2, balanced strategy
//   - luigi: Luigi, speed 1, stability 3, stable strategy
//   - peach: Peach, speed 3, stability 1, fast strategy
//
// Usage:
//
//	r := roster.Default()
//
//	driver := r.Create("MARIO", k, engine.NewSeededRoller(seed))
//	if driver == nil {
//		// unknown character
//	}
//
// Unknown keys are not an error at this level: Create returns nil and the
// caller decides how to report it.
package roster
