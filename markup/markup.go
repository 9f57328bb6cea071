// Package markup renders the short "&x" color codes used in messages and
// static art colors into ANSI escape sequences.
//
//	&0 - &f  xterm colors 0 to 15     &r  reset everything
//	&l &o &n &m &k  bold, italic, underline, strike, hidden
//	&L &O &N &M     undo bold, italic, underline, strike
//	&~ &*    default foreground / background
//	&-       newline
//	&gf(#rrggbb) &gb(r,g,b)  24-bit foreground / background
package markup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/hyfetch-cli/hyfetch/color"
)

// Reset restores default foreground and background, leaving other
// attributes alone.
const Reset = "\x1b[39m\x1b[49m"

var codes = map[string]string{
	"&l": "\x1b[1m",
	"&o": "\x1b[3m",
	"&n": "\x1b[4m",
	"&m": "\x1b[9m",
	"&k": "\x1b[8m",
	"&L": "\x1b[22m",
	"&O": "\x1b[23m",
	"&N": "\x1b[24m",
	"&M": "\x1b[29m",
	"&r": "\x1b[0m",
	"&~": "\x1b[39m",
	"&*": "\x1b[49m",
	"&-": "\n",
}

func init() {
	for i, c := range "0123456789abcdef" {
		codes["&"+string(c)] = color.Indexed(uint8(i), color.Foreground)
	}
}

type renderer struct {
	rgb      *regexp.Regexp
	replacer *strings.Replacer
}

var shared = sync.OnceValue(func() *renderer {
	pairs := make([]string, 0, len(codes)*2)
	for code, escape := range codes {
		pairs = append(pairs, code, escape)
	}

	return &renderer{
		rgb:      regexp.MustCompile(`&g([fb])\(([^)]*)\)`),
		replacer: strings.NewReplacer(pairs...),
	}
})

// Render translates every code in msg. 24-bit codes are downsampled when
// mode is color.Ansi256.
func Render(msg string, mode color.Mode) (string, error) {
	r := shared()

	var err error
	msg = r.rgb.ReplaceAllStringFunc(msg, func(code string) string {
		groups := r.rgb.FindStringSubmatch(code)

		c, parseErr := parseColor(groups[2])
		if parseErr != nil {
			err = fmt.Errorf("invalid color code %q: %w", code, parseErr)
			return code
		}

		role := color.Foreground
		if groups[1] == "b" {
			role = color.Background
		}

		return c.ANSI(mode, role)
	})
	if err != nil {
		return "", err
	}

	return r.replacer.Replace(msg), nil
}

// MustRender is like Render but panics on an invalid color code.
func MustRender(msg string, mode color.Mode) string {
	out, err := Render(msg, mode)
	if err != nil {
		panic(err)
	}

	return out
}

// parseColor accepts "#rrggbb" or three channel values separated by
// commas, semicolons or spaces.
func parseColor(s string) (color.RGB, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return color.ParseHex(s)
	}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' '
	})
	if len(fields) != 3 {
		return color.RGB{}, fmt.Errorf("expected 3 channels, got %d", len(fields))
	}

	var channels [3]uint8
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return color.RGB{}, fmt.Errorf("channel %q is not within 0..255", f)
		}

		channels[i] = uint8(v)
	}

	return color.RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}
