package ascii

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSize(t *testing.T) {
	Convey("Size", t, func() {
		Convey("Should ignore markers and a trailing newline", func() {
			w, h, err := Size("${c1}ab\nabc${c2}d\n")
			So(err, ShouldBeNil)
			So(w, ShouldEqual, 4)
			So(h, ShouldEqual, 2)
		})

		Convey("Should count grapheme clusters rather than bytes", func() {
			w, h, err := Size("╔═╗\n║é║\n👩‍👩‍👧")
			So(err, ShouldBeNil)
			So(w, ShouldEqual, 3)
			So(h, ShouldEqual, 3)
		})

		Convey("Should reject empty art", func() {
			_, _, err := Size("")
			So(errors.Is(err, ErrEmptyArt), ShouldBeTrue)
		})
	})
}

func TestNormalize(t *testing.T) {
	Convey("Normalize", t, func() {
		raw := RawArt{Text: "${c1}a\n${c2}╔═══╗\n\n${c1}xy${c2}z"}

		art, err := Normalize(raw)
		So(err, ShouldBeNil)
		So(art.Width, ShouldEqual, 5)
		So(art.Height, ShouldEqual, 4)

		Convey("Every line should share the art width", func() {
			for _, line := range art.Lines {
				So(visibleWidth(line), ShouldEqual, art.Width)
			}
		})

		Convey("Lines should be padded with spaces only", func() {
			So(art.Lines[0], ShouldEqual, "${c1}a    ")
			So(art.Lines[2], ShouldEqual, "     ")
		})
	})
}

func TestFillStarting(t *testing.T) {
	Convey("FillStarting", t, func() {
		Convey("Should carry the last marker over", func() {
			lines, err := FillStarting([]string{"${c1}ab${c3}", "cd", "  ${c2}ef", "gh"})
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{"${c1}ab${c3}", "${c3}cd", "  ${c2}ef", "${c2}gh"})
		})

		Convey("Should fail when nothing precedes an unmarked line", func() {
			_, err := FillStarting([]string{"  no_placeholder_here", "${c1}X"})
			So(errors.Is(err, ErrNoPrecedingPlaceholder), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "line 1")
		})

		Convey("Should not treat text before a marker as indentation", func() {
			lines, err := FillStarting([]string{"${c1}a", "b${c2}c"})
			So(err, ShouldBeNil)
			So(lines[1], ShouldEqual, "${c1}b${c2}c")
		})
	})
}
