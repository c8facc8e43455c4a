// Package palette maps scheme colors onto key groups and expands them to
// per-key assignments.
package palette

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/monkeypaint-cli/monkeypaint/rgb"
	"github.com/samber/mo"
)

// ConstraintError reports an explicit base color that falls short of the
// configured minimum brightness.
type ConstraintError struct {
	Required int
	Actual   int
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf(
		"base color brightness %d is below the configured minimum %d",
		e.Actual, e.Required,
	)
}

// BaseSelector picks the seed color for scheme generation: either a validated
// explicit color or a bounded random draw above the minimum brightness.
type BaseSelector struct {
	Explicit mo.Option[rgb.Color]
	Minimum  int

	// Rand is the injectable random source for the search; nil falls back to
	// a time-seeded source.
	Rand *rand.Rand

	// MaxAttempts bounds the random search; non-positive uses rgb.DefaultMaxAttempts.
	MaxAttempts int
}

// Select returns a base color satisfying the minimum brightness.
func (s BaseSelector) Select() (rgb.Color, error) {
	if explicit, ok := s.Explicit.Get(); ok {
		if explicit.Brightness() < s.Minimum {
			return rgb.Color{}, &ConstraintError{
				Required: s.Minimum,
				Actual:   explicit.Brightness(),
			}
		}
		return explicit, nil
	}

	src := s.Rand
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rgb.RandomAbove(src, s.Minimum, s.MaxAttempts)
}
