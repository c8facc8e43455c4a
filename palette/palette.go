// Package palette maps scheme colors onto key groups and expands them to
// per-key assignments.
package palette

import (
	"errors"

	"github.com/monkeypaint-cli/monkeypaint/groups"
	"github.com/monkeypaint-cli/monkeypaint/keyboard"
	"github.com/monkeypaint-cli/monkeypaint/rgb"
)

// Palette assigns one color to each group of an invocation's group set.
type Palette map[groups.ID]rgb.Color

// KeyColorMap assigns a color to every key in the vocabulary.
type KeyColorMap map[keyboard.Key]rgb.Color

// Assign distributes an ordered color sequence over the ordered group list.
// Group i receives colors[i mod len(colors)], so a sequence shorter than the
// group list wraps around and is reused in order.
func Assign(order []groups.ID, colors []rgb.Color) (Palette, error) {
	if len(colors) == 0 {
		return nil, errors.New("cannot assign an empty color sequence")
	}

	p := make(Palette, len(order))
	for i, id := range order {
		p[id] = colors[i%len(colors)]
	}
	return p, nil
}

// Expand resolves every vocabulary key through the registry and returns its
// group's color. Keys outside every group receive the fallback color.
func (p Palette) Expand(reg *groups.Registry, fallback rgb.Color) KeyColorMap {
	m := make(KeyColorMap, keyboard.Count())
	for _, k := range keyboard.Vocabulary() {
		if id, ok := reg.Of(k); ok {
			m[k] = p[id]
		} else {
			m[k] = fallback
		}
	}
	return m
}
