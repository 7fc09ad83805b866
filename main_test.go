package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, "1.0.0", Version)
	assert.Equal(t, "Mario Kart Simulator", AppName)
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{" warn ", zerolog.WarnLevel},
		{"disabled", zerolog.Disabled},
		{"", zerolog.Disabled},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := newLogger(&bytes.Buffer{}, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}

	t.Run("invalid", func(t *testing.T) {
		_, err := newLogger(&bytes.Buffer{}, "loud")
		assert.Error(t, err)
	})
}

// runCommand plays a game through the root command with scripted input
func runCommand(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newCommand()
	cmd.Reader = strings.NewReader(input)
	cmd.Writer = &stdout
	cmd.ErrWriter = &stderr

	err := cmd.Run(context.Background(), append([]string{"kartsim"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestCommand_PlaysToTheFinish(t *testing.T) {
	out, logs, err := runCommand(t, "luigi\ngreen\nStandard\n", "--seed", "42")
	require.NoError(t, err)

	assert.Contains(t, out, "Welcome to Mario Kart Simulator!")
	assert.Contains(t, out, "Luigi won the race! Well done")
	assert.Empty(t, logs)
}

func TestCommand_SameSeedSameRace(t *testing.T) {
	first, _, err := runCommand(t, "peach\nblue\nTurbo\n", "--seed", "7")
	require.NoError(t, err)
	second, _, err := runCommand(t, "peach\nblue\nTurbo\n", "--seed", "7")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCommand_French(t *testing.T) {
	out, _, err := runCommand(t, "mario\nvert\nTurbo\n", "--seed", "3", "--lang", "fr-CA")
	require.NoError(t, err)

	assert.Contains(t, out, "Bienvenue")
	assert.Contains(t, out, "Mario a gagné la course !")
}

func TestCommand_AbortExitsCleanly(t *testing.T) {
	out, _, err := runCommand(t, "wario\nred\nTurbo\n", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Unknown driver.")
}

func TestCommand_Logging(t *testing.T) {
	_, logs, err := runCommand(t, "mario\nred\nTurbo\n", "--seed", "1", "--log-level", "info")
	require.NoError(t, err)

	assert.Contains(t, logs, "starting Mario Kart Simulator")
	assert.Contains(t, logs, "race finished")
	assert.Contains(t, logs, "session ended")
}

func TestCommand_InvalidLogLevel(t *testing.T) {
	_, _, err := runCommand(t, "", "--log-level", "loud")
	assert.Error(t, err)
}
