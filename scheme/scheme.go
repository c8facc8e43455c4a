// Package scheme defines the capability interface to external color-scheme generators.
package scheme

import (
	"context"
	"fmt"

	"github.com/monkeypaint-cli/monkeypaint/rgb"
)

// Provider generates an ordered color sequence from a seed color.
type Provider interface {
	// Name returns the unique identifier of the generator.
	Name() string

	// Generate requests an ordered scheme of up to count colors derived from
	// the base color under the named generation mode. The returned sequence
	// may be shorter than count but is never empty on success.
	Generate(ctx context.Context, base rgb.Color, mode string, count int) ([]rgb.Color, error)
}

// Unavailable reports a generator failure: transport errors, timeouts,
// non-success responses, or an empty scheme.
type Unavailable struct {
	Provider string
	Err      error
}

func (e *Unavailable) Error() string {
	return fmt.Sprintf("scheme provider %s unavailable: %v", e.Provider, e.Err)
}

func (e *Unavailable) Unwrap() error {
	return e.Err
}

// Modes returns the named generation strategies understood by the default provider.
func Modes() []string {
	return []string{
		"monochrome",
		"monochrome-dark",
		"monochrome-light",
		"analogic",
		"complement",
		"analogic-complement",
		"triad",
		"quad",
	}
}

// ValidMode reports whether a mode name is one of the known generation strategies.
func ValidMode(mode string) bool {
	for _, m := range Modes() {
		if m == mode {
			return true
		}
	}
	return false
}
