// Package profile implements color profiles: the ordered list of colors a
// preset paints art with, and the ways that list is stretched and adjusted
// to fit a given piece of art.
package profile

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hyfetch-cli/hyfetch/color"
	"github.com/samber/lo"
)

var (
	// ErrWeightsMismatch is returned when weights do not pair up with colors.
	ErrWeightsMismatch = errors.New("weights should have the same number of elements as colors")
	// ErrNegativeWeight is returned when a color is asked to repeat a negative number of times.
	ErrNegativeWeight = errors.New("weights should not be negative")
	// ErrSpread is returned when a profile cannot be stretched to a length.
	ErrSpread = errors.New("failed to spread color profile")
)

// Profile is an ordered, possibly repeating, list of colors.
// Every method returns a new profile and leaves the receiver untouched.
type Profile struct {
	Colors []color.RGB
}

// New creates a profile from colors.
func New(colors ...color.RGB) Profile {
	return Profile{Colors: slices.Clone(colors)}
}

// FromHex parses every hex string into a profile.
func FromHex(hex ...string) (Profile, error) {
	colors := make([]color.RGB, len(hex))
	for i, h := range hex {
		c, err := color.ParseHex(h)
		if err != nil {
			return Profile{}, fmt.Errorf("failed to parse hex colors: %w", err)
		}

		colors[i] = c
	}

	return Profile{Colors: colors}, nil
}

// Len returns the number of colors.
func (p Profile) Len() int {
	return len(p.Colors)
}

// Unique keeps the first occurrence of every color.
func (p Profile) Unique() Profile {
	return Profile{Colors: lo.Uniq(p.Colors)}
}

// WithWeights repeats colors[i] weights[i] times.
func (p Profile) WithWeights(weights []int) (Profile, error) {
	if len(weights) != len(p.Colors) {
		return Profile{}, fmt.Errorf("%w: %d weights for %d colors", ErrWeightsMismatch, len(weights), len(p.Colors))
	}

	if i := slices.IndexFunc(weights, func(w int) bool { return w < 0 }); i >= 0 {
		return Profile{}, fmt.Errorf("%w: weight %d is %d", ErrNegativeWeight, i, weights[i])
	}

	var colors []color.RGB
	for i, w := range weights {
		for range w {
			colors = append(colors, p.Colors[i])
		}
	}

	return Profile{Colors: colors}, nil
}

// MustWithWeights is like WithWeights but panics on bad weights.
func MustWithWeights(p Profile, weights []int) Profile {
	return lo.Must(p.WithWeights(weights))
}

// WithLength spreads the profile over n slots.
//
// Every color gets n/len slots. A leftover odd slot goes to the center
// color, the rest are handed out in pairs from both ends inward, so the
// outer bands grow first and the flag stays symmetric.
func (p Profile) WithLength(n int) (Profile, error) {
	size := len(p.Colors)
	if size == 0 || n <= 0 {
		return Profile{}, fmt.Errorf("%w to length %d", ErrSpread, n)
	}

	if n == size {
		return New(p.Colors...), nil
	}

	weights := make([]int, size)
	for i := range weights {
		weights[i] = n / size
	}

	extras := n % size
	if extras%2 == 1 {
		extras--
		weights[size/2]++
	}

	for border := 0; extras > 0; border++ {
		extras -= 2
		weights[border]++
		weights[size-border-1]++
	}

	return p.WithWeights(weights)
}

// Lighten multiplies the lightness of every color by m.
func (p Profile) Lighten(m float64) Profile {
	return p.mapColors(func(c color.RGB) color.RGB {
		return c.Lighten(m)
	})
}

// WithLightness adjusts the lightness of every color.
func (p Profile) WithLightness(assign AssignLightness) Profile {
	return p.mapColors(func(c color.RGB) color.RGB {
		return c.MapLightness(assign.apply)
	})
}

// WithLightnessAdaptive keeps colors readable on the given background:
// dark themes raise dim colors to l, light themes lower bright colors to l.
func (p Profile) WithLightnessAdaptive(l color.Lightness, theme color.Theme) Profile {
	if theme == color.Light {
		return p.WithLightness(ClampMax(l))
	}

	return p.WithLightness(ClampMin(l))
}

func (p Profile) mapColors(f func(color.RGB) color.RGB) Profile {
	return Profile{Colors: lo.Map(p.Colors, func(c color.RGB, _ int) color.RGB {
		return f(c)
	})}
}
