package engine

import (
	"time"

	"github.com/wricardo/kartsim/game/kart"
)

// NewDriver creates a driver at the start line from a character profile.
// A nil roller falls back to a time-seeded one.
func NewDriver(profile Profile, k kart.Kart, dice Roller) *Driver {
	if dice == nil {
		dice = NewSeededRoller(time.Now().UnixNano())
	}
	return &Driver{
		Name:      profile.Name,
		Speed:     profile.Speed,
		Stability: profile.Stability,
		Position:  0,
		Strategy:  profile.Strategy,
		Kart:      k,
		dice:      dice,
	}
}

// CanSlip reports whether a roll makes this driver lose the turn
func (d *Driver) CanSlip(roll int) bool {
	return roll == SlipRoll && d.Stability < SlipStabilityThreshold
}

// PlayTurn rolls the die and advances the driver. The returned record has no
// turn number; GameEngine assigns one when it records the turn.
func (d *Driver) PlayTurn() TurnRecord {
	roll := d.dice.Roll()
	record := TurnRecord{
		Roll:      roll,
		From:      d.Position,
		To:        d.Position,
		Timestamp: time.Now().Unix(),
	}

	// Slip check comes before the move, so a slipped turn never needs clamping
	if d.CanSlip(roll) {
		record.Slipped = true
		return record
	}

	next := d.Strategy.Move(d.Position, roll)
	if next > FinishLine {
		next = FinishLine
		record.Clamped = true
	}
	// Strategies never move backwards, but the position must not either
	if next < d.Position {
		next = d.Position
	}

	d.Position = next
	record.To = next
	return record
}

// Finished reports whether the driver has reached the finish line
func (d *Driver) Finished() bool {
	return d.Position >= FinishLine
}

// RenderTrack returns the track with the driver's cell marked
func (d *Driver) RenderTrack() string {
	return RenderTrack(d.Position)
}
