package color

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrOutOfRange is returned when a lightness is not within [0, 1].
var ErrOutOfRange = errors.New("lightness out of range")

// Lightness is an HSL lightness value within [0, 1].
type Lightness float64

// NewLightness validates v.
func NewLightness(v float64) (Lightness, error) {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return 0, fmt.Errorf("%w: %v is not within [0, 1]", ErrOutOfRange, v)
	}

	return Lightness(v), nil
}

// Theme is the brightness of the terminal background.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme accepts "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	switch theme := Theme(strings.ToLower(strings.TrimSpace(s))); theme {
	case Light, Dark:
		return theme, nil
	default:
		return "", fmt.Errorf("unknown theme %q, expected %q or %q", s, Light, Dark)
	}
}

// DefaultLightness is the lightness presets are clamped to when the user
// has not chosen one.
func (t Theme) DefaultLightness() Lightness {
	if t == Light {
		return 0.4
	}

	return 0.65
}

// Lighten multiplies the HSL lightness of c by m. The HSL conversion is done
// over linear-light channels.
func (c RGB) Lighten(m float64) RGB {
	r, g, b := c.colorful().LinearRgb()
	h, s, l := colorful.Color{R: r, G: g, B: b}.Hsl()
	lin := colorful.Hsl(h, s, l*m)

	return fromColorful(colorful.LinearRgb(lin.R, lin.G, lin.B))
}

// MapLightness replaces the sRGB HSL lightness of c with f(lightness),
// keeping hue and saturation.
func (c RGB) MapLightness(f func(l float64) float64) RGB {
	h, s, l := c.colorful().Hsl()
	return fromColorful(colorful.Hsl(h, s, f(l)))
}

// Lightness reports the sRGB HSL lightness of c.
func (c RGB) Lightness() float64 {
	_, _, l := c.colorful().Hsl()
	return l
}
