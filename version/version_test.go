package version

import (
	"testing"

	"github.com/hyfetch-cli/hyfetch/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Should order by major, minor then patch", func() {
			for _, tc := range []struct {
				a, b string
				want int
			}{
				{"2.0.0", "1.99.9", 1},
				{"1.4.11", "1.4.9", 1},
				{"1.4.0", "1.5.0", -1},
				{"v2.0.0", "2.0.0", 0},
				{"2.1", "2.1.0", 0},
			} {
				got, err := Compare(tc.a, tc.b)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, tc.want)
			}
		})

		Convey("Should reject garbage", func() {
			_, err := Compare("latest", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLatest(t *testing.T) {
	Convey("Latest should answer from the cache first", t, func() {
		So(releases.Set(latestKey, "9.9.9"), ShouldBeNil)

		latest, err := Latest(t.Context())
		So(err, ShouldBeNil)
		So(latest, ShouldEqual, "9.9.9")
		So(ReleaseURL(latest), ShouldEqual, "https://github.com/hykilpikonna/hyfetch/releases/tag/9.9.9")
	})
}
