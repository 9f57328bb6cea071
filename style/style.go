// Package style composes the lipgloss styles the CLI output is rendered with.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hyfetch-cli/hyfetch/color"
	"github.com/rivo/uniseg"
)

// New returns an empty style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored returns a style with the given foreground and background.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a renderer painting the foreground.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Bg returns a renderer painting the background.
func Bg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored("", c).Render(s) }
}

// Truncate returns a renderer that fixes the width of its input.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().Width(max).Render(s) }
}

var (
	Faint     = func(s string) string { return New().Faint(true).Render(s) }
	Bold      = func(s string) string { return New().Bold(true).Render(s) }
	Italic    = func(s string) string { return New().Italic(true).Render(s) }
	Underline = func(s string) string { return New().Underline(true).Render(s) }
)

var Title = func(s string) string {
	return Colored(Base, AccentColor).Bold(true).Padding(0, 1).Render(s)
}

var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}

// Tag renders s as a padded, colored block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// Swatch draws one block of width cells per color, like a tiny flag.
func Swatch(colors []color.RGB, width int) string {
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(Bg(color.Lipgloss(c))(strings.Repeat(" ", width)))
	}

	return b.String()
}

// Label centers text on a band of colors at least width cells wide. Each
// letter is drawn in the grey that contrasts most with the stripe under it.
func Label(text string, colors []color.RGB, width int) string {
	if len(colors) == 0 {
		return text
	}

	var cells []string
	for g := uniseg.NewGraphemes(text); g.Next(); {
		cells = append(cells, g.Str())
	}

	total := max(width, len(cells)+2, len(colors))
	left := (total - len(cells)) / 2
	cells = append(append(strings.Split(strings.Repeat(" ", left), ""), cells...),
		strings.Split(strings.Repeat(" ", total-left-len(cells)), "")...)

	var b strings.Builder
	for start := 0; start < total; {
		stripe := start * len(colors) / total

		end := start + 1
		for end < total && end*len(colors)/total == stripe {
			end++
		}

		bg := colors[stripe]
		b.WriteString(Colored(color.Lipgloss(bg.ContrastGrayscale()), color.Lipgloss(bg)).Render(strings.Join(cells[start:end], "")))
		start = end
	}

	return b.String()
}
