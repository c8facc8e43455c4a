// Package rgb defines the 8-bit-per-channel color model used throughout palette generation.
package rgb

import (
	"fmt"
	"math/rand"
)

// DefaultMaxAttempts bounds the random search for a sufficiently bright color.
// A minimum near MaxBrightness leaves very few acceptable colors, and the
// bound keeps the search from spinning forever when none exist.
const DefaultMaxAttempts = 10000

// GenerationError reports that the bounded random search exhausted its
// attempts without drawing a color at or above the requested minimum brightness.
type GenerationError struct {
	Minimum  int
	Attempts int
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf(
		"no color with brightness >= %d found after %d random draws",
		e.Minimum, e.Attempts,
	)
}

// RandomAbove draws uniformly random colors from src until one satisfies the
// minimum brightness, giving up after the specified number of attempts.
// A non-positive attempt count falls back to DefaultMaxAttempts.
func RandomAbove(src *rand.Rand, minimum, attempts int) (Color, error) {
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	for i := 0; i < attempts; i++ {
		c := Color{
			R: uint8(src.Intn(256)),
			G: uint8(src.Intn(256)),
			B: uint8(src.Intn(256)),
		}
		if c.Brightness() >= minimum {
			return c, nil
		}
	}

	return Color{}, &GenerationError{Minimum: minimum, Attempts: attempts}
}
