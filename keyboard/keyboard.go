// Package keyboard defines the fixed key vocabulary and device slot order for
// the Kinesis Freestyle Edge.
package keyboard

import (
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Key identifies a single physical key by its firmware name.
type Key string

// vocabulary lists every supported key in device slot order. The lighting
// profile encoder emits one line per entry in exactly this order.
var vocabulary = []Key{
	// Function row
	"esc", "f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10", "f11", "f12",
	"prnt", "scrl", "pause",
	// Number row
	"tilde", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "hyphen", "equals", "bspc",
	// Top alpha row
	"tab", "q", "w", "e", "r", "t", "y", "u", "i", "o", "p", "obrack", "cbrack", "bslash",
	// Home row
	"caps", "a", "s", "d", "f", "g", "h", "j", "k", "l", "colon", "quote", "enter",
	// Bottom alpha row
	"lshift", "z", "x", "c", "v", "b", "n", "m", "comma", "period", "fslash", "rshift",
	// Modifier row
	"lctrl", "lwin", "lalt", "lspace", "fn", "rspace", "ralt", "smartset", "rctrl",
	// Arrows
	"up", "down", "left", "right",
	// Navigation cluster
	"ins", "del", "home", "end", "pgup", "pgdn",
}

// index maps each key name to its device slot position.
var index = make(map[Key]int, len(vocabulary))

func init() {
	for i, k := range vocabulary {
		index[k] = i
	}
}

// Vocabulary returns every supported key in device slot order.
// Callers must not mutate the returned slice.
func Vocabulary() []Key {
	return vocabulary
}

// Count returns the number of physical key slots.
func Count() int {
	return len(vocabulary)
}

// Slot returns the device slot position of a key and whether the key is supported.
func Slot(k Key) (int, bool) {
	i, ok := index[k]
	return i, ok
}

// Lookup resolves a key name against the vocabulary.
func Lookup(name string) (Key, bool) {
	k := Key(name)
	_, ok := index[k]
	return k, ok
}

// Suggest returns the vocabulary key closest to an unrecognized name,
// used to build "did you mean" diagnostics.
func Suggest(name string) Key {
	return lo.MinBy(vocabulary, func(a, b Key) bool {
		return levenshtein.Distance(name, string(a)) < levenshtein.Distance(name, string(b))
	})
}
