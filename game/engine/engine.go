package engine

import "fmt"

// Engine provides the main interface for race operations
type Engine interface {
	// Race state
	GetDriver() *Driver
	IsFinished() bool
	GetPosition() int
	Track() string

	// Turns
	PlayTurn() TurnRecord

	// History
	GetTurnHistory() []TurnRecord
	GetLastTurn() *TurnRecord
	TurnCount() int
	SlipCount() int
}

// Reporter is notified after every recorded turn
type Reporter interface {
	TurnPlayed(d *Driver, rec TurnRecord)
}

// ReporterFunc adapts a plain function to the Reporter interface
type ReporterFunc func(d *Driver, rec TurnRecord)

// TurnPlayed calls f
func (f ReporterFunc) TurnPlayed(d *Driver, rec TurnRecord) {
	f(d, rec)
}

// Option configures a GameEngine
type Option func(*GameEngine)

// WithReporter registers a reporter for played turns
func WithReporter(r Reporter) Option {
	return func(e *GameEngine) {
		e.reporter = r
	}
}

var _ Engine = (*GameEngine)(nil)

// GameEngine implements the Engine interface for a single driver
type GameEngine struct {
	driver   *Driver
	history  []TurnRecord
	reporter Reporter
}

// NewEngine creates a new race engine around a driver
func NewEngine(driver *Driver, opts ...Option) (*GameEngine, error) {
	if driver == nil {
		return nil, fmt.Errorf("driver cannot be nil")
	}
	if driver.dice == nil {
		return nil, fmt.Errorf("driver %q has no die roller", driver.Name)
	}

	e := &GameEngine{
		driver:  driver,
		history: []TurnRecord{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// GetDriver returns the racing driver
func (e *GameEngine) GetDriver() *Driver {
	return e.driver
}

// IsFinished returns whether the driver has crossed the finish line
func (e *GameEngine) IsFinished() bool {
	return e.driver.Finished()
}

// GetPosition returns the driver's current cell
func (e *GameEngine) GetPosition() int {
	return e.driver.Position
}

// Track returns the rendered track for the current position
func (e *GameEngine) Track() string {
	return e.driver.RenderTrack()
}

// PlayTurn plays one turn, records it and notifies the reporter.
// Once the race is finished it does nothing and returns a zero record.
func (e *GameEngine) PlayTurn() TurnRecord {
	if e.IsFinished() {
		return TurnRecord{}
	}

	rec := e.driver.PlayTurn()
	rec.Number = len(e.history) + 1
	e.history = append(e.history, rec)

	if e.reporter != nil {
		e.reporter.TurnPlayed(e.driver, rec)
	}
	return rec
}

// GetTurnHistory returns the complete turn history
func (e *GameEngine) GetTurnHistory() []TurnRecord {
	return e.history
}

// GetLastTurn returns the last turn played, or nil if no turns
func (e *GameEngine) GetLastTurn() *TurnRecord {
	if len(e.history) == 0 {
		return nil
	}
	return &e.history[len(e.history)-1]
}

// TurnCount returns the number of turns played
func (e *GameEngine) TurnCount() int {
	return len(e.history)
}

// SlipCount returns the number of turns lost to a slip
func (e *GameEngine) SlipCount() int {
	return CountSlips(e.history)
}

// Run plays turns until the race is finished or maxTurns is reached.
// A maxTurns of zero or less means no limit.
func (e *GameEngine) Run(maxTurns int) int {
	played := 0
	for !e.IsFinished() {
		if maxTurns > 0 && played >= maxTurns {
			break
		}
		e.PlayTurn()
		played++
	}
	return played
}
