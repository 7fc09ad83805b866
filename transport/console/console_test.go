package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trackingReader struct {
	io.Reader
	closes int
}

func (r *trackingReader) Close() error {
	r.closes++
	return nil
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestReadLine(t *testing.T) {
	term := New(strings.NewReader("mario\r\nred\n\nTurbo"), io.Discard)

	var lines []string
	for {
		line, err := term.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		lines = append(lines, line)
	}

	assert.Equal(t, []string{"mario", "red", "", "Turbo"}, lines)

	_, err := term.ReadLine()
	assert.ErrorIs(t, err, io.EOF, "EOF must be sticky")
}

func TestReadLine_Empty(t *testing.T) {
	term := New(strings.NewReader(""), io.Discard)
	_, err := term.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestWriteLineAndPrompt(t *testing.T) {
	var buf bytes.Buffer
	term := New(strings.NewReader(""), &buf)

	require.NoError(t, term.WriteLine("Choose your driver:"))
	require.NoError(t, term.Prompt("> "))
	require.NoError(t, term.WriteLine("ok"))

	assert.Equal(t, "Choose your driver:\n> ok\n", buf.String())
}

func TestWrite_Errors(t *testing.T) {
	term := New(strings.NewReader(""), failingWriter{})
	assert.Error(t, term.WriteLine("x"))
	assert.Error(t, term.Prompt("x"))
}

func TestClose(t *testing.T) {
	r := &trackingReader{Reader: strings.NewReader("line\n")}
	term := New(r, io.Discard)

	require.NoError(t, term.Close())
	require.NoError(t, term.Close())
	assert.Equal(t, 1, r.closes)

	_, err := term.ReadLine()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestClose_NonCloser(t *testing.T) {
	term := New(strings.NewReader("line\n"), io.Discard)
	assert.NoError(t, term.Close())
}
