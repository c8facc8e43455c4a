// Package generate implements the palette-generation pipeline: group
// resolution, base color selection, scheme retrieval and profile encoding.
package generate

import (
	"encoding/json"
	"io"
)

// GroupColor describes the colors assigned to one group, per layer.
type GroupColor struct {
	// Group is the group's section name.
	Group string `json:"group"`
	// Main is the main-layer color as "#rrggbb".
	Main string `json:"main"`
	// Fn is the fn-layer color as "#rrggbb".
	Fn string `json:"fn"`
}

// Output is the structured description of a generated profile, used by the
// --json mode and the schema command.
type Output struct {
	// Base is the selected base color as "#rrggbb".
	Base string `json:"base"`
	// Prefix is the grouping prefix the profile was generated for.
	Prefix string `json:"prefix"`
	// Mode is the scheme mode of the main layer.
	Mode string `json:"mode"`
	// FnMode is the scheme mode of the fn layer.
	FnMode string `json:"fn_mode"`
	// Groups lists the per-group color assignments in group order.
	Groups []GroupColor `json:"groups"`
	// Profile is the full encoded lighting profile text.
	Profile string `json:"profile"`
}

// AsOutput converts a generated result into its structured description.
func (r *Result) AsOutput() *Output {
	out := &Output{
		Base:   r.Base.String(),
		Prefix: r.Registry.Prefix(),
		Mode:   r.Mode,
		FnMode: r.FnMode,
		Groups: make([]GroupColor, 0, r.Registry.Count()),
	}

	for _, id := range r.Registry.Order() {
		out.Groups = append(out.Groups, GroupColor{
			Group: string(id),
			Main:  r.MainPalette[id].String(),
			Fn:    r.FnPalette[id].String(),
		})
	}

	out.Profile = string(r.Encoded)
	return out
}

func writeJson(w io.Writer, result *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result.AsOutput())
}
