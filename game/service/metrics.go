package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/wricardo/kartsim/game/service"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// raceMetrics holds the counters recorded by the game loop.
// They are no-ops unless the program installs a global meter provider.
type raceMetrics struct {
	turns    metric.Int64Counter
	slips    metric.Int64Counter
	finished metric.Int64Counter
	aborted  metric.Int64Counter
}

func newRaceMetrics(m metric.Meter) (*raceMetrics, error) {
	var (
		rm  raceMetrics
		err error
	)

	rm.turns, err = m.Int64Counter(
		"kartsim.turns.played",
		metric.WithDescription("Total turns played"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating turns counter: %w", err)
	}

	rm.slips, err = m.Int64Counter(
		"kartsim.turns.slipped",
		metric.WithDescription("Total turns lost to a slip"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating slips counter: %w", err)
	}

	rm.finished, err = m.Int64Counter(
		"kartsim.races.finished",
		metric.WithDescription("Total races that reached the finish line"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating finished counter: %w", err)
	}

	rm.aborted, err = m.Int64Counter(
		"kartsim.sessions.aborted",
		metric.WithDescription("Total sessions that ended before the race"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating aborted counter: %w", err)
	}

	return &rm, nil
}

func (m *raceMetrics) turnPlayed(ctx context.Context, character string, slipped bool) {
	attrs := metric.WithAttributes(attribute.String("character", character))
	m.turns.Add(ctx, 1, attrs)
	if slipped {
		m.slips.Add(ctx, 1, attrs)
	}
}

func (m *raceMetrics) raceFinished(ctx context.Context, character string) {
	m.finished.Add(ctx, 1, metric.WithAttributes(attribute.String("character", character)))
}

func (m *raceMetrics) sessionAborted(ctx context.Context, reason string) {
	m.aborted.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}
