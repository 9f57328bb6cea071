package ascii

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hyfetch-cli/hyfetch/placeholder"
	"github.com/samber/lo"
)

// ErrNoPrecedingPlaceholder is returned when a line needs a color marker
// and none was seen on the lines above it.
var ErrNoPrecedingPlaceholder = errors.New("failed to find neofetch color code from a previous line")

// FillStarting makes every line start with a color marker, carrying over
// the last marker of the previous lines where one is missing. Whitespace
// before a line's first marker counts as starting with it.
func FillStarting(lines []string) ([]string, error) {
	scanner := placeholder.Default()
	filled := make([]string, len(lines))

	var last string
	for i, line := range lines {
		matches := scanner.FindAll(line)

		starts := len(matches) > 0 && strings.TrimSpace(line[:matches[0].Start]) == ""
		if !starts {
			if last == "" {
				return nil, fmt.Errorf("%w (line %d)", ErrNoPrecedingPlaceholder, i+1)
			}

			line = last + line
		}

		filled[i] = line

		if len(matches) > 0 {
			m := lo.LastOrEmpty(matches)
			last = m.Slot.Token()
		}
	}

	return filled, nil
}
