package placeholder

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestScanner(t *testing.T) {
	Convey("Given the default scanner", t, func() {
		s := Default()

		So(s, ShouldEqual, Default())

		Convey("FindAll should report slots and byte spans in order", func() {
			matches := s.FindAll("ab${c2}cd${c1}${c6}")
			So(matches, ShouldResemble, []Match{
				{Slot: 2, Start: 2, End: 7},
				{Slot: 1, Start: 9, End: 14},
				{Slot: 6, Start: 14, End: 19},
			})
		})

		Convey("FindAll should ignore look-alikes", func() {
			So(s.FindAll("${c0} ${c7} $c1 ${C1} {c1}"), ShouldBeEmpty)
		})

		Convey("StripAll should be idempotent", func() {
			for _, text := range []string{
				"${c1}AA\n${c1}BB",
				"$${c1}{c2}}",
				"no markers at all",
				"${c${c1}1}",
				"",
			} {
				once := s.StripAll(text)
				So(s.StripAll(once), ShouldEqual, once)
			}
		})

		Convey("StripAll should leave the visible text", func() {
			So(s.StripAll("${c1}ab${c2}c"), ShouldEqual, "abc")
		})

		Convey("Visible should remove markers in one pass", func() {
			So(s.Visible("${c1}ab${c2}c"), ShouldEqual, "abc")
			So(s.Visible("$${c1}{c1}ab"), ShouldEqual, "${c1}ab")
			So(s.Visible("$${c1}{c1}ab"), ShouldEqual, s.ReplaceAll("$${c1}{c1}ab", Replacements{}))
		})

		Convey("ReplaceAll should substitute per slot", func() {
			var with Replacements
			with.Set(1, "<one>")
			with.Set(3, "<three>")

			So(s.ReplaceAll("${c1}a${c2}b${c3}", with), ShouldEqual, "<one>ab<three>")
		})

		Convey("ReplaceSlot should touch a single slot", func() {
			So(s.ReplaceSlot("${c1}a${c2}", 2, "!"), ShouldEqual, "${c1}a!")
		})

		Convey("Slots should list distinct slots by first use", func() {
			So(s.Slots("${c3}x${c1}${c3}y${c1}"), ShouldResemble, []Slot{3, 1})
		})

		Convey("Find should return the first marker", func() {
			m, ok := s.Find("  ${c4}x")
			So(ok, ShouldBeTrue)
			So(m, ShouldResemble, Match{Slot: 4, Start: 2, End: 7})

			_, ok = s.Find("plain")
			So(ok, ShouldBeFalse)
		})
	})
}
