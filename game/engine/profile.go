package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidProfile wraps every profile validation failure
var ErrInvalidProfile = errors.New("invalid driver profile")

// ValidateProfile validates a character profile for correctness
func ValidateProfile(p Profile) error {
	// Validate required fields
	if strings.TrimSpace(p.Key) == "" {
		return fmt.Errorf("%w: key is required", ErrInvalidProfile)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required for %q", ErrInvalidProfile, p.Key)
	}

	// Validate attributes
	if p.Speed < 0 {
		return fmt.Errorf("%w: speed must not be negative for %q, got %d", ErrInvalidProfile, p.Key, p.Speed)
	}
	if p.Stability < 0 {
		return fmt.Errorf("%w: stability must not be negative for %q, got %d", ErrInvalidProfile, p.Key, p.Stability)
	}

	// Validate strategy
	if p.Strategy.Multiplier() <= 0 {
		return fmt.Errorf("%w: unknown strategy %d for %q", ErrInvalidProfile, p.Strategy, p.Key)
	}

	return nil
}
