package roster

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/wricardo/kartsim/game/engine"
	"github.com/wricardo/kartsim/game/kart"
)

var (
	ErrDuplicateKey = errors.New("duplicate character key")
	ErrEmptyRoster  = errors.New("roster has no characters")
)

// DefaultProfiles is the built-in character table
var DefaultProfiles = []engine.Profile{
	{Key: "mario", Name: "Mario", Speed: 2, Stability: 2, Strategy: engine.Balanced},
	{Key: "luigi", Name: "Luigi", Speed: 1, Stability: 3, Strategy: engine.Stable},
	{Key: "peach", Name: "Peach", Speed: 3, Stability: 1, Strategy: engine.Fast},
}

var defaultRoster = mustNew(DefaultProfiles...)

// Roster maps character keys to their profiles. It is read-only after
// construction and safe for concurrent use.
type Roster struct {
	profiles map[string]engine.Profile
	keys     []string
}

// Default returns the built-in roster
func Default() *Roster {
	return defaultRoster
}

// New creates a roster from profiles. Every profile is validated and keys
// must be unique after case folding.
func New(profiles ...engine.Profile) (*Roster, error) {
	if len(profiles) == 0 {
		return nil, ErrEmptyRoster
	}

	r := &Roster{
		profiles: make(map[string]engine.Profile, len(profiles)),
		keys:     make([]string, 0, len(profiles)),
	}

	for _, p := range profiles {
		if err := engine.ValidateProfile(p); err != nil {
			return nil, err
		}

		key := normalizeKey(p.Key)
		if _, exists := r.profiles[key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, p.Key)
		}

		p.Key = key
		r.profiles[key] = p
		r.keys = append(r.keys, key)
	}

	return r, nil
}

func mustNew(profiles ...engine.Profile) *Roster {
	r, err := New(profiles...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the profile for a key, ignoring case and surrounding space
func (r *Roster) Lookup(key string) (engine.Profile, bool) {
	p, ok := r.profiles[normalizeKey(key)]
	return p, ok
}

// Create builds a driver for the character named by key, racing in k and
// rolling with dice. It returns nil when the key is unknown.
func (r *Roster) Create(key string, k kart.Kart, dice engine.Roller) *engine.Driver {
	p, ok := r.Lookup(key)
	if !ok {
		return nil
	}
	return engine.NewDriver(p, k, dice)
}

// Keys returns the character keys in table order
func (r *Roster) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Profiles returns every profile in table order
func (r *Roster) Profiles() []engine.Profile {
	profiles := make([]engine.Profile, 0, len(r.keys))
	for _, key := range r.keys {
		profiles = append(profiles, r.profiles[key])
	}
	return profiles
}

func normalizeKey(key string) string {
	return cases.Fold().String(strings.TrimSpace(key))
}
