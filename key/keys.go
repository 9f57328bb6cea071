// Package key names every configuration entry. Keys double as JSON field
// names in hyfetch.json and, upper-cased, as HYFETCH_ environment variables.
package key

// DefinedFieldsCount is the number of registered configuration fields.
const DefinedFieldsCount = 15

// Recoloring - what the art is painted with.
const (
	Preset     = "preset"
	Mode       = "mode"
	LightDark  = "light_dark"
	Lightness  = "lightness"
	ColorAlign = "color_align"
)

// Backend - the program that prints the art next to the system information.
const (
	Backend = "backend"
	Args    = "args"
	Distro  = "distro"
)

const (
	PrideMonthDisable = "pride_month_disable"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI behaviour outside of printing the art.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
