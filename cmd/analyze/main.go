// Command analyze prints quick, human-readable heuristics about the built-in
// characters. For every driver it reports the strategy, whether the driver can
// slip, the fewest turns a race can take, and statistics from a batch of
// simulated races played with a seeded die.
package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/message"

	"github.com/wricardo/kartsim/game/engine"
	"github.com/wricardo/kartsim/game/kart"
	"github.com/wricardo/kartsim/game/roster"
	"github.com/wricardo/kartsim/i18n"
)

// RaceStats summarizes a batch of simulated races for one driver.
type RaceStats struct {
	Profile   engine.Profile
	Races     int
	Finished  int
	MinTurns  int
	MaxTurns  int
	AvgTurns  float64
	TotalSlip int
	TotalTurn int
}

// SlipRate returns the share of turns lost to a slip
func (s RaceStats) SlipRate() float64 {
	if s.TotalTurn == 0 {
		return 0
	}
	return float64(s.TotalSlip) / float64(s.TotalTurn)
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "simulate races for every built-in driver",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "races",
				Value: 1000,
				Usage: "races to simulate per driver",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Value: 1,
				Usage: "die seed for the first driver",
			},
			&cli.IntFlag{
				Name:  "max-turns",
				Value: 500,
				Usage: "turns after which a race counts as unfinished",
			},
			&cli.StringFlag{
				Name:  "lang",
				Value: "en",
				Usage: "number formatting language (en, fr)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			races := int(cmd.Int("races"))
			if races <= 0 {
				return fmt.Errorf("races must be positive, got %d", races)
			}
			p := i18n.Printer(i18n.ResolveTag(cmd.String("lang")))

			for i, profile := range roster.Default().Profiles() {
				if err := ctx.Err(); err != nil {
					return err
				}
				stats, err := simulate(profile, races, cmd.Int64("seed")+int64(i), int(cmd.Int("max-turns")))
				if err != nil {
					return err
				}
				report(cmd.Writer, p, stats)
			}
			return nil
		},
	}
}

// simulate plays races for one profile with a single seeded die
func simulate(profile engine.Profile, races int, seed int64, maxTurns int) (RaceStats, error) {
	k, err := kart.NewBuilder().SetColor(string(kart.Red)).SetEngine("Standard").Build()
	if err != nil {
		return RaceStats{}, err
	}

	dice := engine.NewSeededRoller(seed)
	stats := RaceStats{Profile: profile, Races: races, MinTurns: math.MaxInt}
	finishedTurns := 0

	for range races {
		race, err := engine.NewEngine(engine.NewDriver(profile, k, dice))
		if err != nil {
			return RaceStats{}, err
		}
		turns := race.Run(maxTurns)

		stats.TotalTurn += turns
		stats.TotalSlip += race.SlipCount()
		if !race.IsFinished() {
			continue
		}

		stats.Finished++
		finishedTurns += turns
		stats.MinTurns = min(stats.MinTurns, turns)
		stats.MaxTurns = max(stats.MaxTurns, turns)
	}

	if stats.Finished == 0 {
		stats.MinTurns = 0
		return stats, nil
	}
	stats.AvgTurns = float64(finishedTurns) / float64(stats.Finished)
	return stats, nil
}

// fewestTurns is the shortest possible race: every roll is the largest one
// that does not make the driver slip.
func fewestTurns(profile engine.Profile) int {
	best := engine.DieSides
	if profile.Stability < engine.SlipStabilityThreshold {
		best = engine.SlipRoll - 1
	}
	step := best * profile.Strategy.Multiplier()
	return (engine.FinishLine + step - 1) / step
}

func report(w io.Writer, p *message.Printer, stats RaceStats) {
	profile := stats.Profile

	p.Fprintf(w, "\n=== %s (%s) ===\n", profile.Name, profile.Key)
	p.Fprintf(w, "Strategy: %s (x%d)\n", profile.Strategy, profile.Strategy.Multiplier())
	p.Fprintf(w, "Speed: %d, Stability: %d\n", profile.Speed, profile.Stability)
	p.Fprintf(w, "Fewest possible turns: %d\n", fewestTurns(profile))

	if profile.Stability < engine.SlipStabilityThreshold {
		p.Fprintf(w, "⚠️  WARNING: loses the turn on every %d\n", engine.SlipRoll)
	} else {
		p.Fprintf(w, "✅ Never slips\n")
	}

	p.Fprintf(w, "Races: %d, finished: %d\n", stats.Races, stats.Finished)
	if stats.Finished > 0 {
		p.Fprintf(w, "Turns: min %d, avg %.2f, max %d\n", stats.MinTurns, stats.AvgTurns, stats.MaxTurns)
	}
	p.Fprintf(w, "Slip rate: %.1f%%\n", stats.SlipRate()*100)

	if unfinished := stats.Races - stats.Finished; unfinished > 0 {
		p.Fprintf(w, "⚠️  CRITICAL: %d races did not finish\n", unfinished)
	}
}
