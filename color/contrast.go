package color

import "github.com/lucasb-eyer/go-colorful"

// The xterm grey ramp occupies palette indices 232 to 255.
const (
	greyRampStart = 232
	greyRampEnd   = 255
)

// Grey returns the color of a grey ramp index. Indices outside the ramp
// are clamped to it.
func Grey(index uint8) RGB {
	index = min(max(index, greyRampStart), greyRampEnd)
	v := uint8(8 + 10*int(index-greyRampStart))

	return RGB{R: v, G: v, B: v}
}

// ContrastGrayscaleIndex returns the grey ramp index that is perceptually
// farthest from c under CIEDE2000. The ramp is scanned from dark to light
// and the first maximum wins.
func (c RGB) ContrastGrayscaleIndex() uint8 {
	background := c.colorful()

	best, bestDistance := uint8(greyRampStart), -1.0
	for index := greyRampStart; index <= greyRampEnd; index++ {
		distance := background.DistanceCIEDE2000(Grey(uint8(index)).colorful())
		if distance > bestDistance {
			best, bestDistance = uint8(index), distance
		}
	}

	return best
}

// ContrastGrayscale returns the most readable grey to print over c.
func (c RGB) ContrastGrayscale() RGB {
	return Grey(c.ContrastGrayscaleIndex())
}

// Theme classifies c as a light or dark background by its L*a*b* lightness.
func (c RGB) Theme() Theme {
	l, _, _ := c.colorful().Lab()
	if l > 0.5 {
		return Light
	}

	return Dark
}

// FromColorful converts a go-colorful color, clamping it into gamut.
func FromColorful(c colorful.Color) RGB {
	return fromColorful(c)
}
