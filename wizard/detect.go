package wizard

import (
	"github.com/hyfetch-cli/hyfetch/color"
	"github.com/muesli/termenv"
)

// DetectMode guesses the color mode from COLORTERM and TERM.
func DetectMode() color.Mode {
	return modeOf(termenv.EnvColorProfile())
}

func modeOf(profile termenv.Profile) color.Mode {
	if profile == termenv.TrueColor {
		return color.TrueColor
	}

	return color.Ansi256
}

// DetectTheme asks the terminal for its background color. Terminals that
// do not answer are treated as dark.
func DetectTheme() color.Theme {
	return color.FromColorful(termenv.ConvertToRGB(termenv.BackgroundColor())).Theme()
}
