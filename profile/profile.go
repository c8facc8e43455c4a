// Package profile encodes per-key color assignments into the Freestyle Edge
// lighting-profile text format, and parses that format back.
//
// The artifact is one line per key slot in device slot order, main layer
// first and the fn layer after it:
//
//	[esc]>[255][64][0]
//	...
//	[fn esc]>[0][0][128]
//
// Lines are ASCII and CRLF-terminated, including the final line, matching
// what the SmartSet firmware loads from the v-drive.
package profile

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/monkeypaint-cli/monkeypaint/keyboard"
	"github.com/monkeypaint-cli/monkeypaint/palette"
	"github.com/monkeypaint-cli/monkeypaint/rgb"
	"github.com/monkeypaint-cli/monkeypaint/util"
)

const lineEnding = "\r\n"

// Encode serializes the two per-key color maps into the device's
// lighting-profile byte sequence. Identical inputs always produce
// byte-identical output: slot order, number formatting and line termination
// are all fixed.
func Encode(main, fn palette.KeyColorMap) []byte {
	var buf bytes.Buffer
	for _, k := range keyboard.Vocabulary() {
		c := main[k]
		fmt.Fprintf(&buf, "[%s]>[%d][%d][%d]%s", k, c.R, c.G, c.B, lineEnding)
	}
	for _, k := range keyboard.Vocabulary() {
		c := fn[k]
		fmt.Fprintf(&buf, "[fn %s]>[%d][%d][%d]%s", k, c.R, c.G, c.B, lineEnding)
	}
	return buf.Bytes()
}

// linePattern matches a single profile line for either layer.
var linePattern = regexp.MustCompile(
	`^\[(?P<layer>fn )?(?P<key>[a-z0-9]+)\]>\[(?P<r>\d{1,3})\]\[(?P<g>\d{1,3})\]\[(?P<b>\d{1,3})\]$`,
)

// Decode parses an encoded lighting profile back into per-key color maps for
// the main and fn layers. Blank lines are ignored; when a key appears more
// than once within a layer the last occurrence wins.
func Decode(data []byte) (main, fn palette.KeyColorMap, err error) {
	main = make(palette.KeyColorMap)
	fn = make(palette.KeyColorMap)

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		fields := util.ReGroups(linePattern, line)
		if len(fields) == 0 {
			return nil, nil, fmt.Errorf("line %d: malformed profile line %q", i+1, line)
		}

		k, ok := keyboard.Lookup(fields["key"])
		if !ok {
			return nil, nil, fmt.Errorf("line %d: unknown key %q", i+1, fields["key"])
		}

		c, err := parseTriple(fields["r"], fields["g"], fields["b"])
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		if fields["layer"] == "fn " {
			fn[k] = c
		} else {
			main[k] = c
		}
	}

	return main, fn, nil
}

func parseTriple(r, g, b string) (rgb.Color, error) {
	var values [3]uint8
	for i, s := range [3]string{r, g, b} {
		v, err := strconv.ParseUint(s, 10, 16)
		if err != nil || v > 255 {
			return rgb.Color{}, fmt.Errorf("channel value %q out of range 0-255", s)
		}
		values[i] = uint8(v)
	}
	return rgb.New(values[0], values[1], values[2]), nil
}
