package style

import "github.com/charmbracelet/lipgloss"

// Neutrals.
var (
	Base    = lipgloss.Color("#1e1e2e")
	Text    = lipgloss.Color("#cdd6f4")
	Subtext = lipgloss.Color("#a6adc8")
	Overlay = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")
)

// Accents, taken from the transgender flag.
var (
	Pink   = lipgloss.Color("#f5a9b8")
	Blue   = lipgloss.Color("#5bcefa")
	White  = lipgloss.Color("#ffffff")
	Red    = lipgloss.Color("#f38ba8")
	Yellow = lipgloss.Color("#f9e2af")
	Green  = lipgloss.Color("#a6e3a1")
)

// Semantic roles.
var (
	AccentColor    = Pink
	SecondaryColor = Blue
	SuccessColor   = Green
	WarningColor   = Yellow
	ErrorColor     = Red
	HiRed          = Red
	FaintColor     = Overlay

	BorderColor       = Surface
	ActiveBorderColor = AccentColor
)
