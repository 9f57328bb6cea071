// Package color implements the color model used to paint ascii art:
// 24-bit values, their terminal escape sequences and the lightness
// arithmetic presets are adjusted with. It also carries the palette the
// CLI renders its own output with.
package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a hex string is not a 6 digit color.
var ErrInvalidHex = errors.New("invalid hex color")

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses "#RRGGBB" or "RRGGBB", case-insensitively.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w %q: expected 6 hex digits", ErrInvalidHex, s)
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w %q: %q is not a hex byte", ErrInvalidHex, s, hex[i*2:i*2+2])
		}

		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Meant for compile-time constants only.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}

	return c
}

// Hex renders the color as lowercase "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}
