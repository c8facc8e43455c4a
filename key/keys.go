// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Output Destination - these keys govern where the encoded lighting profile is published.
const (
	OutputPath = "output.path"
)

// Color Scheme Service - these keys configure the external color-scheme provider and its transport.
const (
	ColorAPIURL            = "colorapi.url"
	ColorAPIMode           = "colorapi.mode"
	ColorAPIFnMode         = "colorapi.fn_mode"
	ColorAPIProvider       = "colorapi.provider"
	ColorAPITimeoutSeconds = "colorapi.timeout_seconds"
	ColorAPIKeyringAuth    = "colorapi.keyring_auth"
)

// Palette Generation - these keys control base color selection and group expansion.
const (
	PaletteMinimumBase  = "palette.minimum_base"
	PaletteGroupPrefix  = "palette.group_prefix"
	PaletteDefaultColor = "palette.default_color"
)

// Response Caching - these keys manage the persistence of color-scheme service responses.
const (
	CacheSchemeLifetimeHours = "cache.scheme_lifetime_hours"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// CLI Execution Environment - these settings govern terminal presentation and startup behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
