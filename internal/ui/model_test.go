package ui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given a notifier", t, func() {
		m := &Model{}

		Convey("When nothing was sent", func() {
			Convey("Then the view should be untouched", func() {
				So(m.View("art"), ShouldEqual, "art")
			})
		})

		Convey("When a notice arrives", func() {
			cmd := m.Update(Notify("lightness 0.70")())

			Convey("Then it should be shown and a clear scheduled", func() {
				So(m.Notification(), ShouldEqual, "lightness 0.70")
				So(m.View("art"), ShouldContainSubstring, "lightness 0.70")
				So(cmd, ShouldNotBeNil)
			})

			Convey("Then a clear for it should remove it", func() {
				m.Update(clearMsg{generation: 1})
				So(m.Notification(), ShouldBeEmpty)
			})

			Convey("Then a stale clear should not remove a newer notice", func() {
				m.Update(Notify("vertical")())
				m.Update(clearMsg{generation: 1})
				So(m.Notification(), ShouldEqual, "vertical")
			})
		})
	})
}
