// Package constant holds application-wide identifiers.
package constant

const (
	// Hyfetch names the binary, the config file and every application directory.
	Hyfetch = "hyfetch"

	// Version is the application semantic version.
	Version = "2.0.0"

	// Repository is where releases and presets are published.
	Repository = "hykilpikonna/hyfetch"
)

// Build metadata, set with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
