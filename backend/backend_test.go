package backend

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/hyfetch-cli/hyfetch/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeBackend puts an executable script named after kind on PATH.
func fakeBackend(t *testing.T, kind Kind, script string) {
	dir := t.TempDir()
	path := filepath.Join(dir, kind.Command())
	lo.Must0(os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestKind(t *testing.T) {
	Convey("Kind", t, func() {
		Convey("Should point each backend at the art file", func() {
			So(Neofetch.Args("/tmp/a"), ShouldResemble, []string{"--ascii", "--source", "/tmp/a"})
			So(Fastfetch.Args("/tmp/a"), ShouldResemble, []string{"--file-raw", "/tmp/a"})
		})

		Convey("Should parse names", func() {
			k, err := ParseKind("FastFetch")
			So(err, ShouldBeNil)
			So(k, ShouldEqual, Fastfetch)

			_, err = ParseKind("screenfetch")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts")
	}

	filesystem.SetOsFs()

	Convey("Run", t, func() {
		var stdout bytes.Buffer
		runner := Runner{Stdout: &stdout, Stderr: &stdout}

		Convey("Should hand the art and the user's args to the backend", func() {
			fakeBackend(t, Fastfetch, `cat "$2"; shift 2; echo " $*"`)

			So(runner.Run("ART", Fastfetch, []string{"--logo-padding", "2"}), ShouldBeNil)
			So(stdout.String(), ShouldEqual, "ART --logo-padding 2\n")
		})

		Convey("Should report a missing backend", func() {
			t.Setenv("PATH", t.TempDir())

			var notFound *NotFoundError
			So(errors.As(runner.Run("ART", Neofetch, nil), &notFound), ShouldBeTrue)
			So(notFound.Command, ShouldEqual, "neofetch")
		})

		Convey("Should report the exit code", func() {
			fakeBackend(t, Neofetch, "exit 3")

			var exit *ExitError
			So(errors.As(runner.Run("ART", Neofetch, nil), &exit), ShouldBeTrue)
			So(exit.Code, ShouldEqual, 3)
		})

		Convey("Should report a killing signal", func() {
			fakeBackend(t, Neofetch, "kill -KILL $$")

			var signal *SignalError
			So(errors.As(runner.Run("ART", Neofetch, nil), &signal), ShouldBeTrue)
			So(signal.Signal, ShouldEqual, "killed")
		})
	})
}

func TestOSRelease(t *testing.T) {
	Convey("ReadOSRelease", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		Convey("Should prefer NAME", func() {
			lo.Must0(fs.WriteFile("/etc/os-release", []byte("# comment\nNAME=\"Arch Linux\"\nID=arch\n"), 0o644))

			name, err := ReadOSRelease("/etc/os-release")
			So(err, ShouldBeNil)
			So(name, ShouldEqual, "Arch Linux")
		})

		Convey("Should fall back to ID", func() {
			lo.Must0(fs.WriteFile("/etc/os-release", []byte("ID='nixos'\n"), 0o644))

			name, err := ReadOSRelease("/etc/os-release")
			So(err, ShouldBeNil)
			So(name, ShouldEqual, "nixos")
		})

		Convey("Should fail on an empty file", func() {
			lo.Must0(fs.WriteFile("/etc/os-release", nil, 0o644))

			_, err := ReadOSRelease("/etc/os-release")
			So(errors.Is(err, ErrNoDistroName), ShouldBeTrue)
		})
	})
}
