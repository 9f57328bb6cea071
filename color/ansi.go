package color

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Mode is the terminal color capability output is rendered for.
type Mode string

const (
	// Ansi256 renders colors as xterm 256-color palette indices.
	Ansi256 Mode = "8bit"
	// TrueColor renders colors as 24-bit escapes.
	TrueColor Mode = "rgb"
)

// Modes lists every supported mode in display order.
var Modes = []Mode{Ansi256, TrueColor}

// ParseMode accepts a mode name as stored in the config file.
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(Modes, mode) {
		return "", fmt.Errorf("unknown color mode %q, expected one of %v", s, Modes)
	}

	return mode, nil
}

// Role selects whether an escape paints the text or the cell behind it.
type Role int

const (
	Foreground Role = iota
	Background
)

func (r Role) sgr() int {
	if r == Background {
		return 48
	}

	return 38
}

// ANSI returns the escape sequence that switches the terminal to c.
func (c RGB) ANSI(mode Mode, role Role) string {
	if mode == Ansi256 {
		return Indexed(c.Ansi256(), role)
	}

	return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", role.sgr(), c.R, c.G, c.B)
}

// Indexed returns the escape sequence for a 256-color palette index.
func Indexed(index uint8, role Role) string {
	return fmt.Sprintf("\x1b[%d;5;%dm", role.sgr(), index)
}

var cubeLevels = [6]int{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

func toCube(v int) int {
	switch {
	case v < 48:
		return 0
	case v < 115:
		return 1
	default:
		return (v - 35) / 40
	}
}

func distSq(r1, g1, b1, r2, g2, b2 int) int {
	return (r1-r2)*(r1-r2) + (g1-g2)*(g1-g2) + (b1-b2)*(b1-b2)
}

// Ansi256 maps the color to the nearest xterm palette entry, choosing
// between the 6x6x6 cube (16-231) and the grey ramp (232-255).
func (c RGB) Ansi256() uint8 {
	r, g, b := int(c.R), int(c.G), int(c.B)

	qr, qg, qb := toCube(r), toCube(g), toCube(b)
	cr, cg, cb := cubeLevels[qr], cubeLevels[qg], cubeLevels[qb]
	cube := 16 + 36*qr + 6*qg + qb

	if cr == r && cg == g && cb == b {
		return uint8(cube)
	}

	avg := (r + g + b) / 3
	greyIdx := 23
	if avg <= 238 {
		greyIdx = max(avg-3, 0) / 10
	}
	grey := 8 + 10*greyIdx

	if distSq(grey, grey, grey, r, g, b) < distSq(cr, cg, cb, r, g, b) {
		return uint8(232 + greyIdx)
	}

	return uint8(cube)
}
