package color

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseHex(t *testing.T) {
	Convey("ParseHex", t, func() {
		Convey("Should accept an optional hash and any case", func() {
			for _, s := range []string{"#5BCEFA", "5bcefa", "#5bCeFa"} {
				c, err := ParseHex(s)
				So(err, ShouldBeNil)
				So(c, ShouldResemble, RGB{R: 0x5b, G: 0xce, B: 0xfa})
			}
		})

		Convey("Should reject malformed input", func() {
			for _, s := range []string{"", "#fff", "#12345", "#1234567", "#gg0000", "#+10000"} {
				_, err := ParseHex(s)
				So(errors.Is(err, ErrInvalidHex), ShouldBeTrue)
			}
		})

		Convey("Should round trip every channel value", func() {
			for v := 0; v < 256; v++ {
				c := RGB{R: uint8(v), G: uint8(255 - v), B: uint8(v / 2)}
				parsed, err := ParseHex(c.Hex())
				So(err, ShouldBeNil)
				So(parsed, ShouldEqual, c)
			}
		})

		Convey("Should render lowercase", func() {
			So(MustParseHex("#ABCDEF").Hex(), ShouldEqual, "#abcdef")
		})
	})
}

func TestANSI(t *testing.T) {
	Convey("ANSI", t, func() {
		red := RGB{R: 255}

		Convey("Should emit truecolor escapes", func() {
			So(red.ANSI(TrueColor, Foreground), ShouldEqual, "\x1b[38;2;255;0;0m")
			So(red.ANSI(TrueColor, Background), ShouldEqual, "\x1b[48;2;255;0;0m")
		})

		Convey("Should emit indexed escapes", func() {
			So(red.ANSI(Ansi256, Foreground), ShouldEqual, "\x1b[38;5;196m")
			So(red.ANSI(Ansi256, Background), ShouldEqual, "\x1b[48;5;196m")
		})
	})
}

func TestAnsi256(t *testing.T) {
	Convey("Ansi256", t, func() {
		Convey("Should hit cube colors exactly", func() {
			So(RGB{}.Ansi256(), ShouldEqual, 16)
			So(RGB{R: 255, G: 255, B: 255}.Ansi256(), ShouldEqual, 231)
			So(RGB{R: 0x5f, G: 0x87, B: 0xaf}.Ansi256(), ShouldEqual, 16+36*1+6*2+3)
		})

		Convey("Should prefer the grey ramp for greys", func() {
			So(RGB{R: 128, G: 128, B: 128}.Ansi256(), ShouldEqual, 244)
			So(RGB{R: 8, G: 8, B: 8}.Ansi256(), ShouldEqual, 232)
		})

		Convey("Should never panic", func() {
			So(func() {
				for r := 0; r < 256; r += 5 {
					for g := 0; g < 256; g += 5 {
						for b := 0; b < 256; b += 5 {
							_ = RGB{R: uint8(r), G: uint8(g), B: uint8(b)}.Ansi256()
						}
					}
				}
			}, ShouldNotPanic)
		})
	})
}

func TestLightness(t *testing.T) {
	Convey("NewLightness", t, func() {
		Convey("Should accept the closed unit range", func() {
			for _, v := range []float64{0, 0.5, 1} {
				l, err := NewLightness(v)
				So(err, ShouldBeNil)
				So(float64(l), ShouldEqual, v)
			}
		})

		Convey("Should reject values outside it", func() {
			for _, v := range []float64{-0.01, 1.01} {
				_, err := NewLightness(v)
				So(errors.Is(err, ErrOutOfRange), ShouldBeTrue)
			}
		})
	})

	Convey("Lightness adjustments", t, func() {
		red := RGB{R: 255}

		Convey("Should keep a color when lightened by one", func() {
			So(red.Lighten(1), ShouldEqual, red)
		})

		Convey("Should reach black when lightened by zero", func() {
			So(red.Lighten(0), ShouldEqual, RGB{})
		})

		Convey("Should replace lightness keeping the hue", func() {
			So(red.MapLightness(func(float64) float64 { return 1 }), ShouldEqual, RGB{R: 255, G: 255, B: 255})
			So(red.MapLightness(func(float64) float64 { return 0 }), ShouldEqual, RGB{})
			So(red.Lightness(), ShouldAlmostEqual, 0.5, 0.001)
		})

		Convey("Should pick default lightness per theme", func() {
			So(Dark.DefaultLightness(), ShouldEqual, Lightness(0.65))
			So(Light.DefaultLightness(), ShouldEqual, Lightness(0.4))
		})
	})
}

func TestContrast(t *testing.T) {
	Convey("ContrastGrayscale", t, func() {
		Convey("Should pick the brightest grey over black", func() {
			So(RGB{}.ContrastGrayscaleIndex(), ShouldEqual, 255)
			So(RGB{}.ContrastGrayscale(), ShouldEqual, RGB{R: 238, G: 238, B: 238})
		})

		Convey("Should pick the darkest grey over white", func() {
			So(RGB{R: 255, G: 255, B: 255}.ContrastGrayscaleIndex(), ShouldEqual, 232)
		})
	})

	Convey("Theme", t, func() {
		So(RGB{}.Theme(), ShouldEqual, Dark)
		So(RGB{R: 255, G: 255, B: 255}.Theme(), ShouldEqual, Light)
		So(MustParseHex("#1e1e2e").Theme(), ShouldEqual, Dark)
	})

	Convey("ParseMode and ParseTheme", t, func() {
		m, err := ParseMode("RGB")
		So(err, ShouldBeNil)
		So(m, ShouldEqual, TrueColor)

		_, err = ParseMode("16bit")
		So(err, ShouldNotBeNil)

		th, err := ParseTheme("Light")
		So(err, ShouldBeNil)
		So(th, ShouldEqual, Light)
	})
}
