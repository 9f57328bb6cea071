package cmd

import (
	"testing"

	"github.com/hyfetch-cli/hyfetch/distro"
	"github.com/hyfetch-cli/hyfetch/filesystem"
	"github.com/hyfetch-cli/hyfetch/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestParseValue(t *testing.T) {
	Convey("Parsing config values", t, func() {
		Convey("Lightness should accept null and floats", func() {
			v, err := parseValue(key.Lightness, "null")
			So(err, ShouldBeNil)
			So(v, ShouldBeNil)

			v, err = parseValue(key.Lightness, "0.5")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 0.5)

			_, err = parseValue(key.Lightness, "bright")
			So(err, ShouldNotBeNil)
		})

		Convey("Booleans should be parsed", func() {
			v, err := parseValue(key.PrideMonthDisable, "true")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)

			_, err = parseValue(key.CliColored, "maybe")
			So(err, ShouldNotBeNil)
		})

		Convey("Alignment should accept a mode name", func() {
			v, err := parseValue(key.ColorAlign, "vertical")
			So(err, ShouldBeNil)
			So(v, ShouldResemble, map[string]any{"mode": "vertical", "fore_back": nil})
		})

		Convey("Alignment should accept an object", func() {
			v, err := parseValue(key.ColorAlign, `{"mode": "custom", "custom_colors": {"1": 0}}`)
			So(err, ShouldBeNil)
			So(v.(map[string]any)["mode"], ShouldEqual, "custom")

			_, err = parseValue(key.ColorAlign, `{"mode": `)
			So(err, ShouldNotBeNil)
		})

		Convey("Strings should be kept", func() {
			v, err := parseValue(key.Preset, "transgender")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "transgender")
		})
	})
}

func TestLoadArt(t *testing.T) {
	Convey("Loading art", t, func() {
		filesystem.SetMemMapFs()
		viper.Reset()

		Convey("From a file", func() {
			lo.Must0(filesystem.API().WriteFile("/art.txt", []byte("${c1}##\n${c2}##"), 0o644))

			art, err := loadArt("/art.txt")
			So(err, ShouldBeNil)
			So(art.Text, ShouldEqual, "${c1}##\n${c2}##")
			So(art.Fore, ShouldBeEmpty)
		})

		Convey("From a missing file", func() {
			_, err := loadArt("/missing.txt")
			So(err, ShouldNotBeNil)
		})

		Convey("From the distro key", func() {
			viper.Set(key.Distro, "Arch Linux")

			art, err := loadArt("")
			So(err, ShouldBeNil)
			So(art.Text, ShouldEqual, lo.Must(distro.Lookup("arch")).Art().Text)
		})

		Convey("An unknown distro should fall back", func() {
			viper.Set(key.Distro, "definitely not a distro")

			art, err := loadArt("")
			So(err, ShouldBeNil)
			So(art.Text, ShouldEqual, lo.Must(distro.Lookup(distro.Fallback)).Art().Text)
		})
	})
}

func TestFlagAliases(t *testing.T) {
	Convey("Old flag names should resolve", t, func() {
		So(rootCmd.Flags().Lookup("test-distro"), ShouldEqual, rootCmd.Flags().Lookup("distro"))
		So(rootCmd.Flags().Lookup("test-print"), ShouldEqual, rootCmd.Flags().Lookup("print"))
	})
}
