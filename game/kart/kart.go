// Package kart defines the kart a driver races in and the builder that
// validates it.
package kart

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// ErrInvalidKart is returned by Builder.Build when a required field is missing.
var ErrInvalidKart = errors.New("kart must have a color and an engine")

// Color is a kart body color
type Color string

const (
	Red   Color = "red"
	Green Color = "green"
	Blue  Color = "blue"
)

// Palette returns the colors a kart can be painted, in prompt order.
func Palette() []Color {
	return []Color{Red, Green, Blue}
}

// ParseColor matches a canonical color name, ignoring case and surrounding space.
func ParseColor(s string) (Color, bool) {
	folded := cases.Fold().String(strings.TrimSpace(s))
	for _, c := range Palette() {
		if string(c) == folded {
			return c, true
		}
	}
	return "", false
}

// Kart is immutable once built. Use a Builder to create one.
type Kart struct {
	color  string
	engine string
}

// Color returns the kart body color
func (k Kart) Color() string {
	return k.color
}

// Engine returns the engine type
func (k Kart) Engine() string {
	return k.engine
}

// Description returns a human-readable summary of the kart
func (k Kart) Description() string {
	return fmt.Sprintf("Kart color %s, engine %s", k.color, k.engine)
}

// IsZero reports whether k was never built.
func (k Kart) IsZero() bool {
	return k.color == "" && k.engine == ""
}

// Builder assembles a Kart one field at a time.
type Builder struct {
	color  string
	engine string
}

// NewBuilder creates an empty kart builder
func NewBuilder() *Builder {
	return &Builder{}
}

// SetColor sets the body color
func (b *Builder) SetColor(color string) *Builder {
	b.color = color
	return b
}

// SetEngine sets the engine type
func (b *Builder) SetEngine(engine string) *Builder {
	b.engine = engine
	return b
}

// Build returns the kart, or ErrInvalidKart if the color or engine is blank.
func (b *Builder) Build() (Kart, error) {
	color := strings.TrimSpace(b.color)
	engine := strings.TrimSpace(b.engine)
	if color == "" || engine == "" {
		return Kart{}, ErrInvalidKart
	}
	return Kart{color: color, engine: engine}, nil
}
