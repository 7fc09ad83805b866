package main

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/wricardo/kartsim/game/engine"
	"github.com/wricardo/kartsim/game/roster"
)

func TestValidateProfiles_Default(t *testing.T) {
	result := validateProfiles(roster.DefaultProfiles)
	if !result.Valid {
		t.Fatalf("Expected default roster to be valid, got errors: %v", result.Errors)
	}

	if result.Name != "roster" {
		t.Errorf("Expected name roster, got %s", result.Name)
	}

	joined := strings.Join(result.Errors, "\n")
	if !strings.Contains(joined, "✓ Characters: 3") {
		t.Errorf("Expected character count, got %v", result.Errors)
	}
	if !strings.Contains(joined, "Peach: fast, up to 15 cells per turn, slips on 6") {
		t.Errorf("Expected Peach summary, got %v", result.Errors)
	}
	if !strings.Contains(joined, "Mario: balanced, up to 12 cells per turn, never slips") {
		t.Errorf("Expected Mario summary, got %v", result.Errors)
	}
}

func TestValidateProfiles_DuplicateKey(t *testing.T) {
	profiles := []engine.Profile{
		{Key: "mario", Name: "Mario", Speed: 2, Stability: 2, Strategy: engine.Balanced},
		{Key: "MARIO", Name: "Mario Again", Speed: 2, Stability: 2, Strategy: engine.Balanced},
	}

	result := validateProfiles(profiles)
	if result.Valid {
		t.Fatal("Expected duplicate keys to be invalid")
	}
	if !strings.Contains(result.Errors[0], "duplicate character key") {
		t.Errorf("Expected duplicate key error, got %v", result.Errors)
	}
}

func TestValidateProfiles_UnknownStrategy(t *testing.T) {
	profiles := []engine.Profile{
		{Key: "wario", Name: "Wario", Speed: 2, Stability: 2},
	}

	result := validateProfiles(profiles)
	if result.Valid {
		t.Fatal("Expected a profile without strategy to be invalid")
	}
}

func TestValidateProfiles_Empty(t *testing.T) {
	result := validateProfiles(nil)
	if result.Valid {
		t.Fatal("Expected an empty roster to be invalid")
	}
}

func TestBestStep(t *testing.T) {
	tests := []struct {
		name    string
		profile engine.Profile
		want    int
	}{
		{"stable", engine.Profile{Stability: 3, Strategy: engine.Stable}, 6},
		{"balanced", engine.Profile{Stability: 2, Strategy: engine.Balanced}, 12},
		{"fast and slippery", engine.Profile{Stability: 1, Strategy: engine.Fast}, 15},
		{"no strategy", engine.Profile{Stability: 3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bestStep(tt.profile); got != tt.want {
				t.Errorf("Expected step %d, got %d", tt.want, got)
			}
		})
	}
}

func TestValidateCatalog(t *testing.T) {
	for _, tag := range []language.Tag{language.English, language.French} {
		t.Run(tag.String(), func(t *testing.T) {
			result := validateCatalog(tag)
			if !result.Valid {
				t.Errorf("Expected %s catalogue to be valid, got errors: %v", tag, result.Errors)
			}
		})
	}
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	if !run(&buf, roster.DefaultProfiles) {
		t.Fatalf("Expected built-in data to be valid, got:\n%s", buf.String())
	}

	out := buf.String()
	for _, want := range []string{"roster", "messages en", "messages fr", "All game data is valid!"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
}

func TestRun_Invalid(t *testing.T) {
	var buf bytes.Buffer
	profiles := []engine.Profile{{Key: "", Name: "Nobody"}}

	if run(&buf, profiles) {
		t.Fatal("Expected invalid roster to fail")
	}
	if !strings.Contains(buf.String(), "❌ INVALID") {
		t.Errorf("Expected INVALID marker, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "Some game data has errors") {
		t.Errorf("Expected failure summary, got:\n%s", buf.String())
	}
}
