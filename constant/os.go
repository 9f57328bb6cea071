package constant

// Platform identifiers for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
	FreeBSD = "freebsd"
)

// OSRelease is the file Linux and BSD systems describe themselves in.
const OSRelease = "/etc/os-release"
