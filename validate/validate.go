// Command validate checks the built-in game data. It checks:
//   - Every character profile has a key, a name and a known strategy
//   - Character keys are unique
//   - Every character can reach the finish line
//   - Every supported language translates every message
//   - Translations take the same arguments as the English text
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/language"

	"github.com/wricardo/kartsim/game/engine"
	"github.com/wricardo/kartsim/game/roster"
	"github.com/wricardo/kartsim/i18n"
)

// ValidationResult captures the outcome of validating one piece of game data.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	Name   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) info(format string, args ...any) {
	r.Errors = append(r.Errors, "✓ "+fmt.Sprintf(format, args...))
}

// validateProfiles checks the character table and that every driver can
// finish a race.
func validateProfiles(profiles []engine.Profile) ValidationResult {
	result := ValidationResult{
		Name:   "roster",
		Valid:  true,
		Errors: []string{},
	}

	if _, err := roster.New(profiles...); err != nil {
		result.fail("Invalid roster: %v", err)
	}

	for _, p := range profiles {
		if err := engine.ValidateProfile(p); err != nil {
			// already reported by roster.New
			continue
		}
		if step := bestStep(p); step <= 0 {
			result.fail("%s can never leave the start line", p.Name)
		}
	}

	if result.Valid {
		result.info("Characters: %d", len(profiles))
		for _, p := range profiles {
			slips := "never slips"
			if p.Stability < engine.SlipStabilityThreshold {
				slips = fmt.Sprintf("slips on %d", engine.SlipRoll)
			}
			result.info("%s: %s, up to %d cells per turn, %s", p.Name, p.Strategy, bestStep(p), slips)
		}
	}

	return result
}

// bestStep is the longest move a driver can make without slipping
func bestStep(p engine.Profile) int {
	for roll := engine.DieSides; roll >= 1; roll-- {
		if roll == engine.SlipRoll && p.Stability < engine.SlipStabilityThreshold {
			continue
		}
		return p.Strategy.Move(0, roll)
	}
	return 0
}

// validateCatalog checks one language against the English text
func validateCatalog(tag language.Tag) ValidationResult {
	result := ValidationResult{
		Name:   "messages " + tag.String(),
		Valid:  true,
		Errors: []string{},
	}

	for _, key := range i18n.Missing(tag) {
		result.fail("Missing translation: %s", key)
	}

	for _, key := range i18n.Keys() {
		want := i18n.Placeholders(i18n.Default(), key)
		if got := i18n.Placeholders(tag, key); got != want {
			result.fail("%s takes %d arguments, expected %d", key, got, want)
		}
	}

	if result.Valid {
		result.info("Messages: %d", len(i18n.Keys()))
	}
	return result
}

// report prints a result and returns whether it was valid
func report(w io.Writer, result ValidationResult) bool {
	fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.Name)

	if result.Valid {
		fmt.Fprintln(w, "✅ VALID")
		for _, info := range result.Errors {
			fmt.Fprintln(w, "  "+info)
		}
		return true
	}

	fmt.Fprintln(w, "❌ INVALID")
	for _, err := range result.Errors {
		if !strings.HasPrefix(err, "✓") {
			fmt.Fprintln(w, "  ❌ "+err)
		}
	}
	return false
}

// run validates the roster and every catalogue, returning whether all passed
func run(w io.Writer, profiles []engine.Profile) bool {
	results := []ValidationResult{validateProfiles(profiles)}
	for _, tag := range i18n.Supported() {
		results = append(results, validateCatalog(tag))
	}

	allValid := true
	for _, result := range results {
		if !report(w, result) {
			allValid = false
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintln(w, "✅ All game data is valid!")
	} else {
		fmt.Fprintln(w, "❌ Some game data has errors")
	}
	return allValid
}

func main() {
	cmd := &cli.Command{
		Name:  "validate",
		Usage: "check the built-in characters and message catalogues",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if !run(cmd.Writer, roster.DefaultProfiles) {
				return cli.Exit("", 1)
			}
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "validate: %v\n", err)
		os.Exit(1)
	}
}
