package log

import (
	"os"
	"testing"

	"github.com/hyfetch-cli/hyfetch/filesystem"
	"github.com/hyfetch-cli/hyfetch/key"
	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Setup", t, func() {
		Convey("Should stay silent when writing is off", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeFalse)
		})

		Convey("Should fall back to info on an unknown level", func() {
			So(level("loud"), ShouldEqual, logrus.InfoLevel)
			So(level("debug"), ShouldEqual, logrus.DebugLevel)
		})
	})

	Convey("EnableConsole", t, func() {
		defer logrus.SetOutput(os.Stderr)

		EnableConsole("trace")
		So(enabled, ShouldBeTrue)
		So(logrus.GetLevel(), ShouldEqual, logrus.TraceLevel)

		enabled = false
	})
}
