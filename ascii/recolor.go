package ascii

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/hyfetch-cli/hyfetch/color"
	"github.com/hyfetch-cli/hyfetch/log"
	"github.com/hyfetch-cli/hyfetch/markup"
	"github.com/hyfetch-cli/hyfetch/placeholder"
	"github.com/hyfetch-cli/hyfetch/profile"
	"github.com/rivo/uniseg"
)

// ErrPaletteIndex is returned when a custom alignment points past the
// unique colors of the profile.
var ErrPaletteIndex = errors.New("custom color index is out of range")

// reset ends every recolored line so colors never bleed into whatever the
// backend prints next to the art.
const reset = markup.Reset

// textColor is the static color of fore slots, readable on the theme.
func textColor(theme color.Theme, mode color.Mode) string {
	if theme == color.Light {
		return markup.MustRender("&0", mode)
	}

	return markup.MustRender("&f", mode)
}

// Recolor normalizes raw and paints it.
func Recolor(raw RawArt, align Alignment, p profile.Profile, mode color.Mode, theme color.Theme) (string, error) {
	art, err := Normalize(raw)
	if err != nil {
		return "", err
	}

	return art.Recolor(align, p, mode, theme)
}

// Recolor paints the art with p according to align and joins the lines.
func (n NormalizedArt) Recolor(align Alignment, p profile.Profile, mode color.Mode, theme color.Theme) (string, error) {
	lines, err := n.RecolorLines(align, p, mode, theme)
	if err != nil {
		return "", err
	}

	return strings.Join(lines, "\n"), nil
}

// RecolorLines paints the art with p according to align. Every returned
// line ends with a reset of the foreground and background colors.
func (n NormalizedArt) RecolorLines(align Alignment, p profile.Profile, mode color.Mode, theme color.Theme) ([]string, error) {
	fore, back := n.Fore, n.Back
	if fb, ok := align.ForeBack.Get(); ok {
		fore, back = []placeholder.Slot{fb.Fore}, []placeholder.Slot{fb.Back}
	}

	log.Debugf("recolor %dx%d art: %s, fore %v, back %v", n.Width, n.Height, align, fore, back)

	withForeBack := len(fore) > 0 || len(back) > 0

	switch align.Mode {
	case AlignHorizontal:
		if withForeBack {
			return n.horizontalForeBack(fore, back, p, mode, theme)
		}

		return n.horizontal(p, mode)
	case AlignVertical:
		if withForeBack {
			return n.verticalForeBack(fore, back, p, mode, theme)
		}

		return n.vertical(p, mode)
	case AlignCustom:
		return n.custom(align.Colors, p, mode)
	default:
		return nil, fmt.Errorf("unknown color alignment %q", align.Mode)
	}
}

func (n NormalizedArt) filled() ([]string, error) {
	lines, err := FillStarting(n.Lines)
	if err != nil {
		return nil, fmt.Errorf("failed to fill in starting neofetch color codes: %w", err)
	}

	return lines, nil
}

func (n NormalizedArt) horizontalForeBack(fore, back []placeholder.Slot, p profile.Profile, mode color.Mode, theme color.Theme) ([]string, error) {
	lines, err := n.filled()
	if err != nil {
		return nil, err
	}

	spread, err := p.WithLength(n.Height)
	if err != nil {
		return nil, err
	}

	text := textColor(theme, mode)
	scanner := placeholder.Default()

	recolored := make([]string, len(lines))
	for i, line := range lines {
		// Slots left empty are stripped.
		var with placeholder.Replacements

		// Back slots are "background" in the art, but foreground text in the terminal.
		row := spread.Colors[i].ANSI(mode, color.Foreground)
		for _, slot := range back {
			with.Set(slot, row)
		}

		for _, slot := range fore {
			with.Set(slot, text)
		}

		recolored[i] = scanner.ReplaceAll(line, with) + reset
	}

	return recolored, nil
}

func (n NormalizedArt) horizontal(p profile.Profile, mode color.Mode) ([]string, error) {
	spread, err := p.WithLength(n.Height)
	if err != nil {
		return nil, err
	}

	scanner := placeholder.Default()

	recolored := make([]string, len(n.Lines))
	for i, line := range n.Lines {
		recolored[i] = spread.Colors[i].ANSI(mode, color.Foreground) + scanner.Visible(line) + reset
	}

	return recolored, nil
}

func (n NormalizedArt) verticalForeBack(fore, back []placeholder.Slot, p profile.Profile, mode color.Mode, theme color.Theme) ([]string, error) {
	lines, err := n.filled()
	if err != nil {
		return nil, err
	}

	spread, err := p.WithLength(n.Width)
	if err != nil {
		return nil, err
	}

	text := textColor(theme, mode)

	recolored := make([]string, len(lines))
	for i, line := range lines {
		visible, segments := split(line)

		// Columns come from the whole visible line, so a cluster cut in two
		// by a marker still takes a single column.
		starts := clusterStarts(visible)
		if len(starts) > spread.Len() {
			return nil, fmt.Errorf("%w: line %d spans %d columns of %d", ErrNegativePadding, i+1, len(starts), spread.Len())
		}

		var b strings.Builder

		// Indentation before the first marker stays uncolored.
		b.WriteString(visible[:segments[0].start])

		for _, seg := range segments {
			if seg.start == seg.end {
				continue
			}

			part := visible[seg.start:seg.end]

			switch {
			case slices.Contains(fore, seg.slot):
				b.WriteString(text + part + reset)
			case slices.Contains(back, seg.slot):
				painted, err := spread.ColorSpans(columnSpans(visible, starts, seg.start, seg.end), mode, color.Foreground)
				if err != nil {
					return nil, fmt.Errorf("failed to color text using color profile: %w", err)
				}

				b.WriteString(painted)
			default:
				b.WriteString(part)
			}
		}

		b.WriteString(reset)
		recolored[i] = b.String()
	}

	return recolored, nil
}

// segment is the text following one marker, as a byte range of the visible line.
type segment struct {
	slot       placeholder.Slot
	start, end int
}

// split removes the markers of line and records where the text after each
// one lands. line must contain at least one marker.
func split(line string) (string, []segment) {
	matches := placeholder.Default().FindAll(line)

	var b strings.Builder
	b.WriteString(line[:matches[0].Start])

	segments := make([]segment, len(matches))
	for j, m := range matches {
		end := len(line)
		if j+1 < len(matches) {
			end = matches[j+1].Start
		}

		start := b.Len()
		b.WriteString(line[m.End:end])
		segments[j] = segment{slot: m.Slot, start: start, end: b.Len()}
	}

	return b.String(), segments
}

// clusterStarts returns the byte offset of every grapheme cluster of text.
func clusterStarts(text string) []int {
	var starts []int
	for g := uniseg.NewGraphemes(text); g.Next(); {
		from, _ := g.Positions()
		starts = append(starts, from)
	}

	return starts
}

// columnSpans cuts text[start:end] at cluster boundaries and tags every piece
// with the column of the cluster it belongs to.
func columnSpans(text string, starts []int, start, end int) []profile.Span {
	var spans []profile.Span

	// The cluster containing start may have begun before it.
	column := sort.Search(len(starts), func(k int) bool { return starts[k] > start }) - 1

	for pos := start; pos < end; column++ {
		next := len(text)
		if column+1 < len(starts) {
			next = starts[column+1]
		}

		next = min(next, end)
		spans = append(spans, profile.Span{Text: text[pos:next], Index: column})
		pos = next
	}

	return spans
}

func (n NormalizedArt) vertical(p profile.Profile, mode color.Mode) ([]string, error) {
	scanner := placeholder.Default()

	recolored := make([]string, len(n.Lines))
	for i, line := range n.Lines {
		painted, err := p.ColorText(scanner.Visible(line), mode, color.Foreground, false)
		if err != nil {
			return nil, fmt.Errorf("failed to color text using color profile: %w", err)
		}

		recolored[i] = painted + reset
	}

	return recolored, nil
}

func (n NormalizedArt) custom(colors map[placeholder.Slot]int, p profile.Profile, mode color.Mode) ([]string, error) {
	lines, err := n.filled()
	if err != nil {
		return nil, err
	}

	unique := p.Unique()

	// Unmapped slots are stripped.
	var with placeholder.Replacements
	for slot, index := range colors {
		if index < 0 || index >= unique.Len() {
			return nil, fmt.Errorf("%w: slot %d wants color %d, the preset has %d", ErrPaletteIndex, slot, index, unique.Len())
		}

		with.Set(slot, unique.Colors[index].ANSI(mode, color.Foreground))
	}

	scanner := placeholder.Default()

	recolored := make([]string, len(lines))
	for i, line := range lines {
		recolored[i] = scanner.ReplaceAll(line, with) + reset
	}

	return recolored, nil
}
