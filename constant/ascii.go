package constant

import _ "embed"

// AsciiArtLogo is the banner shown in the root command help. It is plain
// text with one color marker per line so it can be recolored with a preset.
//
//go:embed ascii.txt
var AsciiArtLogo string
