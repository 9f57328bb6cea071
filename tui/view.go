package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hyfetch-cli/hyfetch/icon"
	"github.com/hyfetch-cli/hyfetch/style"
	"github.com/muesli/reflow/wrap"
)

const listMaxWidth = 48

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
	previewStyle          = lipgloss.NewStyle().Padding(2, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case presetsState:
		output = b.viewPresets()
	case previewState:
		output = b.viewPreview()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewPresets() string {
	presets := listExtraPaddingStyle.Render(b.presetsC.View())

	p, ok := b.selected().Get()
	if !ok {
		return presets
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, presets, previewStyle.Render(b.preview(p)))
}

func (b *statefulBubble) viewPreview() string {
	p, ok := b.selected().Get()
	if !ok {
		return b.renderLines(true, []string{style.Title("Preview")})
	}

	lines := []string{
		style.Title(p.Name),
		"",
		style.Label(p.Name, p.Profile().Unique().Colors, labelWidth),
		"",
		b.preview(p),
		"",
		style.Faint(fmt.Sprintf("lightness %.2f, %s", float64(b.lightness), b.align)),
	}

	if len(p.Aliases) > 0 {
		lines = append(lines, style.Faint("aliases: "+strings.Join(p.Aliases, ", ")))
	}

	if p.Source != "" {
		lines = append(lines, style.Faint(icon.Get(icon.Link)+" "+p.Source))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	errorMsg := wrap.String(style.Fg(style.ErrorColor)(b.lastError.Error()), b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " Something went wrong:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	if addHelp {
		if h := lipgloss.Height(l); b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
