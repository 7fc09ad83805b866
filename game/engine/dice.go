package engine

import "math/rand"

// Roller draws one die roll in [1, DieSides]
type Roller interface {
	Roll() int
}

// RollerFunc adapts a plain function to the Roller interface
type RollerFunc func() int

// Roll calls f
func (f RollerFunc) Roll() int {
	return f()
}

// SeededRoller is a deterministic Roller backed by math/rand.
// Given the same seed it always produces the same sequence of rolls.
type SeededRoller struct {
	rng *rand.Rand
}

// NewSeededRoller creates a roller from a seed
func NewSeededRoller(seed int64) *SeededRoller {
	return &SeededRoller{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a uniformly distributed value in [1, DieSides]
func (r *SeededRoller) Roll() int {
	return rollDie(r.rng, DieSides)
}

// rollDie rolls a single die with the provided number of sides.
func rollDie(rng *rand.Rand, sides int) int {
	return rng.Intn(sides) + 1
}

// SequenceRoller replays a fixed list of rolls. Once the list is exhausted
// it keeps returning the last value.
type SequenceRoller struct {
	rolls []int
	next  int
}

// Sequence creates a roller that replays rolls in order.
// An empty sequence always rolls 1.
func Sequence(rolls ...int) *SequenceRoller {
	if len(rolls) == 0 {
		rolls = []int{1}
	}
	cp := make([]int, len(rolls))
	copy(cp, rolls)
	return &SequenceRoller{rolls: cp}
}

// Roll returns the next scripted value
func (s *SequenceRoller) Roll() int {
	if s.next >= len(s.rolls) {
		return s.rolls[len(s.rolls)-1]
	}
	v := s.rolls[s.next]
	s.next++
	return v
}

// Drawn returns how many scripted values have been consumed
func (s *SequenceRoller) Drawn() int {
	return s.next
}
