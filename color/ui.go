package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Lipgloss converts an RGB value into a color lipgloss can render,
// so flag previews are drawn with the exact stripe color.
func Lipgloss(c RGB) lipgloss.Color {
	return New(c.Hex())
}

// Standard ANSI 8-color palette used by the CLI chrome.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

// High-intensity extension.
var (
	HiRed    = New("9")
	HiGreen  = New("10")
	HiYellow = New("11")
	HiBlue   = New("12")
	HiPurple = New("13")
	HiCyan   = New("14")
	HiWhite  = New("15")
	HiBlack  = New("16")
)

var (
	Orange = New("#ffb703")
	Gray   = New("#808080")
	// Banner is the foreground of the pride month animation text.
	Banner = New("#ffe09b")
)
