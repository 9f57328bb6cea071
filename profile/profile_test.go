package profile

import (
	"errors"
	"testing"

	"github.com/hyfetch-cli/hyfetch/color"
	. "github.com/smartystreets/goconvey/convey"
)

var (
	red   = color.RGB{R: 255}
	green = color.RGB{G: 255}
	blue  = color.RGB{B: 255}
	black = color.RGB{}
	white = color.RGB{R: 255, G: 255, B: 255}
)

func TestWithLength(t *testing.T) {
	Convey("WithLength", t, func() {
		p := New(red, green, blue)

		Convey("Should give an odd leftover to the center", func() {
			spread, err := p.WithLength(4)
			So(err, ShouldBeNil)
			So(spread.Colors, ShouldResemble, []color.RGB{red, green, green, blue})
		})

		Convey("Should give even leftovers to the borders", func() {
			spread, err := p.WithLength(5)
			So(err, ShouldBeNil)
			So(spread.Colors, ShouldResemble, []color.RGB{red, red, green, blue, blue})
		})

		Convey("Should always produce exactly n colors", func() {
			for size := 1; size <= 9; size++ {
				colors := make([]color.RGB, size)
				for i := range colors {
					colors[i] = color.RGB{R: uint8(i)}
				}

				for n := 1; n <= 60; n++ {
					spread, err := New(colors...).WithLength(n)
					So(err, ShouldBeNil)
					So(spread.Len(), ShouldEqual, n)
				}
			}
		})

		Convey("Should fail with the target length in the message", func() {
			_, err := Profile{}.WithLength(3)
			So(errors.Is(err, ErrSpread), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "failed to spread color profile to length 3")

			_, err = p.WithLength(0)
			So(errors.Is(err, ErrSpread), ShouldBeTrue)
		})

		Convey("Should not alias the receiver", func() {
			spread, _ := p.WithLength(3)
			spread.Colors[0] = white
			So(p.Colors[0], ShouldEqual, red)
		})
	})
}

func TestWeightsAndUnique(t *testing.T) {
	Convey("WithWeights", t, func() {
		p := New(red, blue)

		weighted, err := p.WithWeights([]int{2, 3})
		So(err, ShouldBeNil)
		So(weighted.Colors, ShouldResemble, []color.RGB{red, red, blue, blue, blue})

		_, err = p.WithWeights([]int{1})
		So(errors.Is(err, ErrWeightsMismatch), ShouldBeTrue)

		_, err = p.WithWeights([]int{2, -1})
		So(errors.Is(err, ErrNegativeWeight), ShouldBeTrue)
		So(func() { MustWithWeights(p, []int{-1, 1}) }, ShouldPanic)

		weighted, err = p.WithWeights([]int{0, 1})
		So(err, ShouldBeNil)
		So(weighted.Colors, ShouldResemble, p.Colors[1:])

		So(func() { MustWithWeights(p, []int{1, 2, 3}) }, ShouldPanic)
	})

	Convey("Unique", t, func() {
		p := New(red, red, blue, red, green, blue)
		So(p.Unique().Colors, ShouldResemble, []color.RGB{red, blue, green})
	})

	Convey("FromHex", t, func() {
		p, err := FromHex("#ff0000", "0000FF")
		So(err, ShouldBeNil)
		So(p.Colors, ShouldResemble, []color.RGB{red, blue})

		_, err = FromHex("#ff0000", "nope")
		So(errors.Is(err, color.ErrInvalidHex), ShouldBeTrue)
	})
}

func TestLightness(t *testing.T) {
	Convey("Lightness adjustments", t, func() {
		Convey("Replace should set every color", func() {
			So(New(red, black).WithLightness(Replace(1)).Colors, ShouldResemble, []color.RGB{white, white})
		})

		Convey("ClampMin should only raise dark colors", func() {
			p := New(black, white).WithLightness(ClampMin(0.65))
			So(p.Colors[0], ShouldResemble, color.RGB{R: 166, G: 166, B: 166})
			So(p.Colors[1], ShouldResemble, white)
		})

		Convey("ClampMax should only lower light colors", func() {
			p := New(black, white).WithLightness(ClampMax(0.4))
			So(p.Colors[0], ShouldResemble, black)
			So(p.Colors[1], ShouldResemble, color.RGB{R: 102, G: 102, B: 102})
		})

		Convey("Adaptive should clamp towards readability", func() {
			So(New(black).WithLightnessAdaptive(0.65, color.Dark).Colors[0], ShouldResemble, color.RGB{R: 166, G: 166, B: 166})
			So(New(white).WithLightnessAdaptive(0.4, color.Light).Colors[0], ShouldResemble, color.RGB{R: 102, G: 102, B: 102})
		})

		Convey("Lighten should scale lightness", func() {
			So(New(red).Lighten(1).Colors[0], ShouldResemble, red)
			So(New(red).Lighten(0).Colors[0], ShouldResemble, black)
		})
	})
}

func TestColorText(t *testing.T) {
	Convey("ColorText", t, func() {
		Convey("Should paint one color per grapheme", func() {
			out, err := New(red, blue).ColorText("ab", color.TrueColor, color.Foreground, false)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "\x1b[38;2;255;0;0ma\x1b[38;2;0;0;255mb\x1b[0m")
		})

		Convey("Should only emit an escape when the color changes", func() {
			out, err := New(red).ColorText("aaa", color.TrueColor, color.Foreground, false)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "\x1b[38;2;255;0;0maaa\x1b[0m")
		})

		Convey("Should keep combining marks with their base", func() {
			out, err := New(red, blue).ColorText("éx", color.TrueColor, color.Foreground, false)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "\x1b[38;2;255;0;0mé\x1b[38;2;0;0;255mx\x1b[0m")
		})

		Convey("Should paint only spaces when asked", func() {
			out, err := New(red).ColorText(" a ", color.TrueColor, color.Background, true)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "\x1b[48;2;255;0;0m \x1b[39;49ma\x1b[48;2;255;0;0m \x1b[0m")
		})

		Convey("Should treat empty text as a bare reset", func() {
			out, err := New(red).ColorText("", color.Ansi256, color.Foreground, false)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "\x1b[0m")
		})
	})
}
