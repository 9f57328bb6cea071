package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hyfetch-cli/hyfetch/color"
	"github.com/hyfetch-cli/hyfetch/icon"
	"github.com/hyfetch-cli/hyfetch/preset"
	"github.com/hyfetch-cli/hyfetch/style"
	"github.com/rivo/uniseg"
)

const (
	bandWidth  = 16
	labelWidth = 24
)

// listItem wraps a preset for list.Model.
type listItem struct {
	preset preset.Preset
	mode   color.Mode
	marked bool
}

func (t *listItem) Title() string {
	title := t.preset.Name
	if t.marked {
		title = fmt.Sprintf("%s %s", title, lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Mark)))
	}

	return title
}

// Description draws the flag as a band of background colored spaces. The
// first alias, if any, is cut into the middle of it.
func (t *listItem) Description() string {
	var alias string
	if len(t.preset.Aliases) > 0 {
		alias = t.preset.Aliases[0]
	}

	width := max(bandWidth, uniseg.GraphemeClusterCount(alias)+2)
	left := (width - uniseg.GraphemeClusterCount(alias)) / 2
	text := strings.Repeat(" ", left) + alias
	text += strings.Repeat(" ", width-uniseg.GraphemeClusterCount(text))

	band, err := t.preset.Profile().ColorText(text, t.mode, color.Background, true)
	if err != nil {
		return style.Swatch(t.preset.Profile().Colors, 2)
	}

	return band
}

// FilterValue matches the name and every alias.
func (t *listItem) FilterValue() string {
	return strings.Join(append([]string{t.preset.Name}, t.preset.Aliases...), " ")
}
