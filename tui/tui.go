// Package tui is the interactive preset picker. It lists every flag next
// to a live preview of the art recolored with it.
package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hyfetch-cli/hyfetch/ascii"
	"github.com/hyfetch-cli/hyfetch/color"
	"github.com/hyfetch-cli/hyfetch/preset"
)

// ErrAborted is returned when the picker is closed without a choice.
var ErrAborted = errors.New("preset selection aborted")

// Options configures the picker.
type Options struct {
	Art       ascii.RawArt
	Mode      color.Mode
	Theme     color.Theme
	Lightness color.Lightness
	Align     ascii.Alignment
	// Selected is the preset the cursor starts on.
	Selected string
}

// Result is what the user settled on. Lightness and alignment can be
// tuned from inside the picker.
type Result struct {
	Preset    preset.Preset
	Lightness color.Lightness
	Align     ascii.Alignment
}

// Run shows the picker until a preset is confirmed or the user quits.
func Run(options *Options) (*Result, error) {
	bubble, err := newBubble(options)
	if err != nil {
		return nil, err
	}

	model, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	return model.(*statefulBubble).result()
}
