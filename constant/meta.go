// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Monkeypaint is the canonical application identifier used for filesystem paths and CLI branding.
	Monkeypaint = "monkeypaint"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent identifies the application to the color-scheme service.
	UserAgent = Monkeypaint + "/" + Version + " (+https://github.com/monkeypaint-cli/monkeypaint)"
)

// Build metadata injected at link time via -ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
