// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Generator Function Identifiers - these constants define the required global function signatures for Lua generator scripts.
const (
	GenerateSchemeFn = "GenerateScheme"
)

// GeneratorTemplate is a Go text/template for scaffolding new Lua scheme generator files.
const GeneratorTemplate = `{{ $divider := repeat "-" (plus (max (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}

--- Generates an ordered color scheme from a seed color.
-- @param seed string Seed color as a six digit hex string, no "#" prefix
-- @param mode string Requested generation mode (e.g. "analogic")
-- @param count number Number of colors requested
-- @return string[] Table of hex color strings; may be shorter than count but never empty
function {{ .GenerateSchemeFn }}(seed, mode, count)
	return { seed }
end

-- ex: ts=4 sw=4 et filetype=lua
`
