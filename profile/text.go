package profile

import (
	"fmt"
	"strings"

	"github.com/hyfetch-cli/hyfetch/color"
	"github.com/rivo/uniseg"
)

const (
	resetAll      = "\x1b[0m"
	resetForeBack = "\x1b[39;49m"
)

// ColorText paints txt with the profile spread over its grapheme clusters,
// one color per cluster. An escape is only written when the color changes.
//
// With spaceOnly set, only spaces are painted (useful with the Background
// role) and other clusters are printed with default colors.
func (p Profile) ColorText(txt string, mode color.Mode, role color.Role, spaceOnly bool) (string, error) {
	var clusters []string
	for g := uniseg.NewGraphemes(txt); g.Next(); {
		clusters = append(clusters, g.Str())
	}

	if len(clusters) == 0 {
		return resetAll, nil
	}

	spread, err := p.WithLength(len(clusters))
	if err != nil {
		return "", err
	}

	var (
		b       strings.Builder
		current string
		painted bool
	)

	for i, cluster := range clusters {
		if spaceOnly && cluster != " " {
			if painted {
				b.WriteString(resetForeBack)
				current, painted = "", false
			}

			b.WriteString(cluster)
			continue
		}

		if escape := spread.Colors[i].ANSI(mode, role); escape != current {
			b.WriteString(escape)
			current, painted = escape, true
		}

		b.WriteString(cluster)
	}

	b.WriteString(resetAll)
	return b.String(), nil
}

// Span is a piece of text painted with the color at Index.
type Span struct {
	Text  string
	Index int
}

// ColorSpans paints each span with p.Colors[span.Index]. As with ColorText,
// an escape is only written when the color changes and the result ends with
// a full reset.
func (p Profile) ColorSpans(spans []Span, mode color.Mode, role color.Role) (string, error) {
	var (
		b       strings.Builder
		current string
	)

	for _, span := range spans {
		if span.Index < 0 || span.Index >= p.Len() {
			return "", fmt.Errorf("%w: color %d of %d", ErrSpread, span.Index, p.Len())
		}

		if escape := p.Colors[span.Index].ANSI(mode, role); escape != current {
			b.WriteString(escape)
			current = escape
		}

		b.WriteString(span.Text)
	}

	b.WriteString(resetAll)
	return b.String(), nil
}
