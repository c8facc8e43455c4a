// Package rgb defines the 8-bit-per-channel color model used throughout palette generation.
package rgb

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxBrightness is the largest possible channel sum of a Color.
const MaxBrightness = 255 * 3

// Color is an RGB triple with 8-bit channels.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// New initializes a Color from individual channel values.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Brightness returns the sum of the three channels, in the range [0, 765].
func (c Color) Brightness() int {
	return int(c.R) + int(c.G) + int(c.B)
}

// Hex returns the six digit lowercase hex encoding without a "#" prefix,
// the form the color-scheme service expects.
func (c Color) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the conventional "#rrggbb" representation.
func (c Color) String() string {
	return "#" + c.Hex()
}

// Parse decodes a six digit hex color string, with or without a leading "#".
func Parse(s string) (Color, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(trimmed) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: expected six hex digits", s)
	}

	value, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return Color{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
	}, nil
}
