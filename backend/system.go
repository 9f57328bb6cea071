package backend

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/hyfetch-cli/hyfetch/constant"
	"github.com/hyfetch-cli/hyfetch/filesystem"
	"github.com/hyfetch-cli/hyfetch/internal/cache"
	"github.com/hyfetch-cli/hyfetch/log"
)

// ErrNoDistroName is returned when os-release names nothing.
var ErrNoDistroName = errors.New("os-release has neither NAME nor ID")

var distroNames = cache.New[string, string]("distro.json", 24*time.Hour, nil)

// DistroName returns the name of the running system, e.g. "Arch Linux"
// or "macOS". Linux and BSD names are read from os-release and cached
// for a day.
func DistroName() (string, error) {
	switch runtime.GOOS {
	case constant.Darwin:
		return "macOS", nil
	case constant.Windows:
		return "Windows", nil
	}

	if name, ok := distroNames.Get(constant.OSRelease).Get(); ok {
		return name, nil
	}

	name, err := ReadOSRelease(constant.OSRelease)
	if err != nil {
		return "", err
	}

	if err := distroNames.Set(constant.OSRelease, name); err != nil {
		log.Warnf("failed to cache distro name: %v", err)
	}

	return name, nil
}

// ReadOSRelease reads the NAME field of an os-release file, falling back
// to ID.
func ReadOSRelease(path string) (string, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	fields := make(map[string]string)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		fields[k] = strings.Trim(v, `"'`)
	}

	for _, k := range []string{"NAME", "ID"} {
		if v := fields[k]; v != "" {
			return v, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNoDistroName, path)
}
