// Package ascii turns template art into colored terminal text.
//
// Template art carries neofetch color markers (see package placeholder).
// It is first normalized into a rectangle, then recolored with a color
// profile under one of the alignments.
package ascii

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hyfetch-cli/hyfetch/placeholder"
	"github.com/rivo/uniseg"
	"github.com/samber/lo"
)

var (
	ErrEmptyArt        = errors.New("ascii art is empty")
	ErrNegativePadding = errors.New("line is wider than the art it belongs to")
)

// RawArt is template art as read from disk, along with the slots that
// should be painted with the static text color (Fore) and with the
// profile (Back).
type RawArt struct {
	Text string
	Fore []placeholder.Slot
	Back []placeholder.Slot
}

// NormalizedArt is art whose lines all share the same visible width.
type NormalizedArt struct {
	Lines  []string
	Width  int
	Height int
	Fore   []placeholder.Slot
	Back   []placeholder.Slot
}

// HasForeBack reports whether the art declares any fore or back slot.
func (n NormalizedArt) HasForeBack() bool {
	return len(n.Fore) > 0 || len(n.Back) > 0
}

// splitLines splits on newlines; a single trailing newline does not start
// a new line.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// visibleWidth counts the grapheme clusters of line without markers.
func visibleWidth(line string) int {
	return uniseg.GraphemeClusterCount(placeholder.Default().Visible(line))
}

// Size measures the art in grapheme clusters, ignoring markers.
func Size(text string) (width, height int, err error) {
	if strings.TrimSuffix(text, "\n") == "" {
		return 0, 0, ErrEmptyArt
	}

	lines := splitLines(text)
	width = lo.Max(lo.Map(lines, func(line string, _ int) int {
		return visibleWidth(line)
	}))

	return width, len(lines), nil
}

// Normalize pads every line with spaces to the width of the widest one.
func Normalize(raw RawArt) (NormalizedArt, error) {
	width, height, err := Size(raw.Text)
	if err != nil {
		return NormalizedArt{}, fmt.Errorf("failed to get ascii size: %w", err)
	}

	lines := splitLines(raw.Text)
	for i, line := range lines {
		pad := width - visibleWidth(line)
		if pad < 0 {
			return NormalizedArt{}, fmt.Errorf("%w: line %d", ErrNegativePadding, i+1)
		}

		lines[i] = line + strings.Repeat(" ", pad)
	}

	return NormalizedArt{
		Lines:  lines,
		Width:  width,
		Height: height,
		Fore:   raw.Fore,
		Back:   raw.Back,
	}, nil
}
