package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrClosed is returned when reading from a closed terminal
var ErrClosed = errors.New("console closed")

// Terminal reads player input line by line and writes game text
type Terminal struct {
	scanner *bufio.Scanner
	closer  io.Closer
	out     io.Writer
	eof     bool
	closed  bool
}

// New creates a terminal over r and w. If r is an io.Closer it is closed by
// Terminal.Close.
func New(r io.Reader, w io.Writer) *Terminal {
	t := &Terminal{
		scanner: bufio.NewScanner(r),
		out:     w,
	}
	if c, ok := r.(io.Closer); ok {
		t.closer = c
	}
	return t
}

// ReadLine returns the next line of input without its line terminator
func (t *Terminal) ReadLine() (string, error) {
	if t.closed {
		return "", ErrClosed
	}
	if t.eof {
		return "", io.EOF
	}

	if !t.scanner.Scan() {
		t.eof = true
		if err := t.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(t.scanner.Text(), "\r"), nil
}

// WriteLine writes text followed by a newline
func (t *Terminal) WriteLine(text string) error {
	if _, err := io.WriteString(t.out, text+"\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Prompt writes text without a trailing newline
func (t *Terminal) Prompt(text string) error {
	if _, err := io.WriteString(t.out, text); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}
	return nil
}

// Close closes the underlying input if it is closable. It is safe to call
// more than once.
func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if t.closer != nil {
		return t.closer.Close()
	}
	return nil
}
