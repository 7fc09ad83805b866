package engine

import "github.com/wricardo/kartsim/game/kart"

// Strategy is the movement style of a driver
type Strategy int

const (
	Unknown Strategy = iota
	Balanced
	Stable
	Fast
)

const (
	// Track constants
	TrackLength      = 20
	FinishLine       = TrackLength - 1
	TrackMarker      = "J"
	TrackPlaceholder = "_"

	// Die and slip rule
	DieSides               = 6
	SlipRoll               = 6
	SlipStabilityThreshold = 2
)

var strategyNames = map[Strategy]string{
	Balanced: "balanced",
	Stable:   "stable",
	Fast:     "fast",
}

// String returns the lowercase strategy name
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "unknown"
}

// Multiplier returns how many cells one pip of the die is worth.
func (s Strategy) Multiplier() int {
	switch s {
	case Balanced:
		return 2
	case Stable:
		return 1
	case Fast:
		return 3
	default:
		return 0
	}
}

// Move returns the position reached from position with the given die roll.
// It does not clamp to the finish line.
func (s Strategy) Move(position, roll int) int {
	return position + s.Multiplier()*roll
}

// Profile is the preconfigured set of attributes for a playable character
type Profile struct {
	Key       string
	Name      string
	Speed     int
	Stability int
	Strategy  Strategy
}

// Driver is a racer on the track
type Driver struct {
	Name      string
	Speed     int
	Stability int
	Position  int
	Strategy  Strategy
	Kart      kart.Kart

	dice Roller
}

// TurnRecord represents a single turn in the race history
type TurnRecord struct {
	Number    int
	Roll      int
	From      int
	To        int
	Slipped   bool
	Clamped   bool
	Timestamp int64
}

// Moved reports whether the turn changed the driver's position
func (r TurnRecord) Moved() bool {
	return r.To != r.From
}
