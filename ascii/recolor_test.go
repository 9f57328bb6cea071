package ascii

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/hyfetch-cli/hyfetch/color"
	"github.com/hyfetch-cli/hyfetch/placeholder"
	"github.com/hyfetch-cli/hyfetch/profile"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	fgRed    = "\x1b[38;2;255;0;0m"
	fgGreen  = "\x1b[38;2;0;255;0m"
	fgBlue   = "\x1b[38;2;0;0;255m"
	fgYellow = "\x1b[38;2;255;255;0m"
	fgWhite  = "\x1b[38;5;15m"
	resetAll = "\x1b[0m"
)

var (
	red    = color.RGB{R: 255}
	green  = color.RGB{G: 255}
	blue   = color.RGB{B: 255}
	yellow = color.RGB{R: 255, G: 255}
)

func recolor(text string, fore, back []placeholder.Slot, align Alignment, p profile.Profile) ([]string, error) {
	art, err := Normalize(RawArt{Text: text, Fore: fore, Back: back})
	if err != nil {
		return nil, err
	}

	return art.RecolorLines(align, p, color.TrueColor, color.Dark)
}

func TestHorizontal(t *testing.T) {
	Convey("Horizontal alignment", t, func() {
		Convey("Without fore/back every row gets one color", func() {
			lines, err := recolor("${c1}AA\n${c1}BB", nil, nil, Horizontal(mo.None[ForeBack]()), profile.New(red, blue))
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{
				fgRed + "AA" + reset,
				fgBlue + "BB" + reset,
			})
		})

		Convey("With the art's fore/back slots", func() {
			lines, err := recolor("${c1}ab${c2}cd\n${c2}ef", []placeholder.Slot{2}, []placeholder.Slot{1},
				Horizontal(mo.None[ForeBack]()), profile.New(red, blue))
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{
				fgRed + "ab" + fgWhite + "cd" + reset,
				fgWhite + "ef  " + reset,
			})
		})

		Convey("An alignment pair overrides the art's slots", func() {
			lines, err := recolor("${c1}ab${c2}cd\n${c2}ef", []placeholder.Slot{2}, []placeholder.Slot{1},
				Horizontal(mo.Some(ForeBack{Fore: 1, Back: 2})), profile.New(red, blue))
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{
				fgWhite + "ab" + fgRed + "cd" + reset,
				fgBlue + "ef  " + reset,
			})
		})

		Convey("Other slots are stripped", func() {
			lines, err := recolor("${c1}a${c3}b", nil, nil, Horizontal(mo.Some(ForeBack{Fore: 2, Back: 1})), profile.New(red))
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{fgRed + "ab" + reset})
		})

		Convey("The light theme paints fore slots black", func() {
			art, err := Normalize(RawArt{Text: "${c1}a", Fore: []placeholder.Slot{1}})
			So(err, ShouldBeNil)

			lines, err := art.RecolorLines(Horizontal(mo.None[ForeBack]()), profile.New(red), color.TrueColor, color.Light)
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{"\x1b[38;5;0ma" + reset})
		})
	})
}

func TestVertical(t *testing.T) {
	Convey("Vertical alignment", t, func() {
		Convey("Back segments get one color per column", func() {
			lines, err := recolor("${c1}ab${c2}c\n ${c1}de", []placeholder.Slot{2}, []placeholder.Slot{1},
				Vertical(mo.None[ForeBack]()), profile.New(red, green, blue))
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{
				fgRed + "a" + fgGreen + "b" + resetAll + fgWhite + "c" + reset + reset,
				" " + fgGreen + "d" + fgBlue + "e" + resetAll + reset,
			})
		})

		Convey("Back to back markers do not paint an empty segment", func() {
			lines, err := recolor("${c1}${c2}ab", []placeholder.Slot{2}, []placeholder.Slot{1},
				Vertical(mo.None[ForeBack]()), profile.New(red))
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{fgWhite + "ab" + reset + reset})
		})

		Convey("A combining mark cut off by a marker stays in its column", func() {
			lines, err := recolor("${c2}e${c1}\u0301x", nil, nil,
				Vertical(mo.Some(ForeBack{Fore: 2, Back: 1})), profile.New(red, green))
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{
				fgWhite + "e" + reset + fgRed + "\u0301" + fgGreen + "x" + resetAll + reset,
			})
		})

		Convey("A joined emoji cut by a marker takes one column", func() {
			lines, err := recolor("${c1}👩\u200d${c1}👧a\n${c1}bc", []placeholder.Slot{2}, []placeholder.Slot{1},
				Vertical(mo.None[ForeBack]()), profile.New(red, blue))
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{
				fgRed + "👩\u200d" + resetAll + fgRed + "👧" + fgBlue + "a" + resetAll + reset,
				fgRed + "b" + fgBlue + "c" + resetAll + reset,
			})
		})

		Convey("Without fore/back each line walks the whole profile", func() {
			lines, err := recolor("${c1}ab\nc", nil, nil, Vertical(mo.None[ForeBack]()), profile.New(red, blue))
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{
				fgRed + "a" + fgBlue + "b" + resetAll + reset,
				fgRed + "c" + fgBlue + " " + resetAll + reset,
			})
		})
	})
}

func TestJoinedMarkers(t *testing.T) {
	Convey("Text joined into a marker by removal", t, func() {
		text := "${c1}$${c1}{c1}ab\n${c1}x"

		Convey("Should be measured as it is printed", func() {
			w, _, err := Size(text)
			So(err, ShouldBeNil)
			So(w, ShouldEqual, len("${c1}ab"))
		})

		Convey("Should keep horizontal lines the same width", func() {
			lines, err := recolor(text, nil, nil, Horizontal(mo.None[ForeBack]()), profile.New(red, blue))
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{
				fgRed + "${c1}ab" + reset,
				fgBlue + "x      " + reset,
			})
		})

		Convey("Should keep custom lines the same width", func() {
			lines, err := recolor(text, nil, nil, Custom(map[placeholder.Slot]int{1: 0}), profile.New(red))
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{
				fgRed + "$" + fgRed + "{c1}ab" + reset,
				fgRed + "x      " + reset,
			})
		})
	})
}

func TestCustom(t *testing.T) {
	Convey("Custom alignment", t, func() {
		p := profile.New(green, yellow, green)

		Convey("Slots map onto the unique colors", func() {
			lines, err := recolor("${c1}A${c2}B\n${c2}C", nil, nil, Custom(map[placeholder.Slot]int{1: 0, 2: 1}), p)
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{
				fgGreen + "A" + fgYellow + "B" + reset,
				fgYellow + "C " + reset,
			})

			for _, line := range lines {
				So(strings.Count(line, reset), ShouldEqual, 1)
			}
		})

		Convey("Unmapped slots are removed", func() {
			lines, err := recolor("${c1}A${c3}B", nil, nil, Custom(map[placeholder.Slot]int{1: 1}), p)
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{fgYellow + "AB" + reset})
		})

		Convey("Indices past the palette are rejected", func() {
			_, err := recolor("${c1}A", nil, nil, Custom(map[placeholder.Slot]int{1: 2}), p)
			So(errors.Is(err, ErrPaletteIndex), ShouldBeTrue)
		})

		Convey("A line with no preceding marker is a hard error", func() {
			_, err := recolor("  no_placeholder_here\n${c1}X", nil, nil, Custom(map[placeholder.Slot]int{1: 0}), p)
			So(errors.Is(err, ErrNoPrecedingPlaceholder), ShouldBeTrue)
		})
	})
}

func TestRecolorInvariants(t *testing.T) {
	Convey("Every alignment", t, func() {
		art := "${c1}  __\n ${c2}/  \\${c1}x\n${c1}|__|"
		aligns := []Alignment{
			Horizontal(mo.None[ForeBack]()),
			Horizontal(mo.Some(ForeBack{Fore: 2, Back: 1})),
			Vertical(mo.None[ForeBack]()),
			Vertical(mo.Some(ForeBack{Fore: 2, Back: 1})),
			Custom(map[placeholder.Slot]int{1: 0, 2: 1}),
		}

		Convey("Should end every line with a reset", func() {
			for _, mode := range color.Modes {
				for _, align := range aligns {
					out, err := Recolor(RawArt{Text: art}, align, profile.New(red, green, blue), mode, color.Dark)
					So(err, ShouldBeNil)

					for _, line := range strings.Split(out, "\n") {
						So(line, ShouldEndWith, reset)
					}
				}
			}
		})

		Convey("Should fail with the spread length on an empty profile", func() {
			_, err := Recolor(RawArt{Text: art}, aligns[0], profile.Profile{}, color.TrueColor, color.Dark)
			So(errors.Is(err, profile.ErrSpread), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "to length 3")
		})
	})
}

func TestAlignmentJSON(t *testing.T) {
	Convey("Alignment JSON", t, func() {
		Convey("Should read custom mappings", func() {
			var a Alignment
			So(json.Unmarshal([]byte(`{"mode":"custom","custom_colors":{"1":0,"2":1}}`), &a), ShouldBeNil)
			So(a.Mode, ShouldEqual, AlignCustom)
			So(a.Colors, ShouldResemble, map[placeholder.Slot]int{1: 0, 2: 1})
		})

		Convey("Should read fore/back pairs", func() {
			var a Alignment
			So(json.Unmarshal([]byte(`{"mode":"vertical","fore_back":[2,1]}`), &a), ShouldBeNil)
			So(a.ForeBack, ShouldResemble, mo.Some(ForeBack{Fore: 2, Back: 1}))
		})

		Convey("Should write an absent pair as null", func() {
			data, err := json.Marshal(Horizontal(mo.None[ForeBack]()))
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"mode":"horizontal","fore_back":null}`)
		})

		Convey("Should reject unknown modes and slots", func() {
			var a Alignment
			So(json.Unmarshal([]byte(`{"mode":"diagonal"}`), &a), ShouldNotBeNil)
			So(json.Unmarshal([]byte(`{"mode":"custom","custom_colors":{"7":0}}`), &a), ShouldNotBeNil)
		})
	})
}
