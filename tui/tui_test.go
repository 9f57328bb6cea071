package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hyfetch-cli/hyfetch/ascii"
	"github.com/hyfetch-cli/hyfetch/color"
	"github.com/hyfetch-cli/hyfetch/placeholder"
	"github.com/hyfetch-cli/hyfetch/preset"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testOptions() *Options {
	return &Options{
		Art:       ascii.RawArt{Text: "${c1}###\n${c2}###"},
		Mode:      color.TrueColor,
		Theme:     color.Dark,
		Lightness: 0.65,
		Align:     ascii.Horizontal(mo.None[ascii.ForeBack]()),
		Selected:  "transgender",
	}
}

func TestBubble(t *testing.T) {
	Convey("Given a picker starting on transgender", t, func() {
		b, err := newBubble(testOptions())
		So(err, ShouldBeNil)
		b.resize(120, 40)

		Convey("When nothing was pressed", func() {
			Convey("Then the cursor should be on the selected preset", func() {
				So(b.selected().MustGet().Name, ShouldEqual, "transgender")
				So(b.state, ShouldEqual, presetsState)
			})

			Convey("Then the preview should show the recolored art", func() {
				view := b.View()
				So(view, ShouldContainSubstring, "transgender")
				So(view, ShouldContainSubstring, "###")
			})
		})

		Convey("When making it lighter", func() {
			b.Update(runes("+"))

			Convey("Then the lightness should rise by one step", func() {
				So(float64(b.lightness), ShouldAlmostEqual, 0.70, 1e-9)
			})
		})

		Convey("When making it darker past zero", func() {
			b.lightness = 0.02
			b.Update(runes("-"))

			Convey("Then the lightness should stop at zero", func() {
				So(float64(b.lightness), ShouldEqual, 0)
			})
		})

		Convey("When flipping the alignment", func() {
			b.preview(b.selected().MustGet())
			b.Update(runes("a"))

			Convey("Then it should become vertical and drop cached previews", func() {
				So(b.align.Mode, ShouldEqual, ascii.AlignVertical)
				So(b.previews, ShouldBeEmpty)
			})
		})

		Convey("When the alignment is custom", func() {
			b.align = ascii.Custom(map[placeholder.Slot]int{1: 0, 2: 1})
			b.Update(runes("a"))

			Convey("Then it should be kept", func() {
				So(b.align.Mode, ShouldEqual, ascii.AlignCustom)
			})
		})

		Convey("When opening the preview and going back", func() {
			b.Update(runes("p"))
			So(b.state, ShouldEqual, previewState)
			So(b.View(), ShouldContainSubstring, "lightness 0.65")

			b.Update(tea.KeyMsg{Type: tea.KeyEsc})

			Convey("Then the list should be back", func() {
				So(b.state, ShouldEqual, presetsState)
			})
		})

		Convey("When confirming", func() {
			_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})

			Convey("Then the chosen preset should be returned", func() {
				So(cmd, ShouldNotBeNil)
				result, err := b.result()
				So(err, ShouldBeNil)
				So(result.Preset.Name, ShouldEqual, "transgender")
				So(float64(result.Lightness), ShouldEqual, 0.65)
			})
		})

		Convey("When quitting", func() {
			b.Update(runes("q"))

			Convey("Then nothing should be chosen", func() {
				_, err := b.result()
				So(errors.Is(err, ErrAborted), ShouldBeTrue)
			})
		})

		Convey("When an error arrives", func() {
			b.Update(errors.New("boom"))

			Convey("Then it should be shown", func() {
				So(b.state, ShouldEqual, errorState)
				So(b.View(), ShouldContainSubstring, "boom")
			})
		})
	})

	Convey("Empty art should be refused", t, func() {
		options := testOptions()
		options.Art = ascii.RawArt{}
		_, err := newBubble(options)
		So(errors.Is(err, ascii.ErrEmptyArt), ShouldBeTrue)
	})
}

func TestListItem(t *testing.T) {
	Convey("A list item", t, func() {
		Convey("Should cut the first alias into the flag band", func() {
			item := &listItem{preset: preset.MustGet("greysexual"), mode: color.TrueColor}
			desc := item.Description()

			So(desc, ShouldContainSubstring, "biromantic2")
			So(desc, ShouldStartWith, "\x1b[48;2;116;1;148m")
		})

		Convey("Should draw a plain band without aliases", func() {
			item := &listItem{preset: preset.MustGet("transgender"), mode: color.TrueColor}
			desc := item.Description()

			So(strings.Count(desc, " "), ShouldEqual, bandWidth)
			So(desc, ShouldContainSubstring, "\x1b[48;2;85;205;253m")
		})
	})
}
