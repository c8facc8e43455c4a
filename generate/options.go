// Package generate implements the palette-generation pipeline: group
// resolution, base color selection, scheme retrieval and profile encoding.
package generate

import (
	"io"
	"math/rand"

	"github.com/samber/mo"

	"github.com/monkeypaint-cli/monkeypaint/groups"
	"github.com/monkeypaint-cli/monkeypaint/rgb"
	"github.com/monkeypaint-cli/monkeypaint/scheme"
)

// Options carries a single invocation's inputs. Absent optionals fall back to
// the global configuration.
type Options struct {
	// Out is the stream used when the destination resolves to "-".
	// Defaults to os.Stdout.
	Out io.Writer

	// Output overrides the configured destination path.
	Output mo.Option[string]

	// Prefix overrides the configured grouping prefix.
	Prefix mo.Option[string]

	// Base is the explicit base color; when absent a random one is drawn
	// under the configured minimum brightness.
	Base mo.Option[rgb.Color]

	// MinimumBase overrides the configured minimum base brightness.
	MinimumBase mo.Option[int]

	// Sections overrides the configured group sections; nil reads them from
	// the configuration.
	Sections []groups.Section

	// Provider generates the color schemes. Required.
	Provider scheme.Provider

	// Rand drives random base selection; nil uses a time-seeded source.
	Rand *rand.Rand

	// Json emits a structured description to Out instead of writing the
	// encoded profile to the destination.
	Json bool
}
