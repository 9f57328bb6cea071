// Package where resolves the paths hyfetch reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/hyfetch-cli/hyfetch/constant"
	"github.com/hyfetch-cli/hyfetch/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the directory hyfetch.json lives in.
const EnvConfigPath = "HYFETCH_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the directory holding hyfetch.json. It is the user config
// directory itself (~/.config on Linux), so existing configs are picked up.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	return ensureDir(lo.Must(os.UserConfigDir()))
}

// ConfigFile is the path of the config document.
func ConfigFile() string {
	return filepath.Join(Config(), constant.Hyfetch+".json")
}

// Cache is the directory for cached lookups such as the detected distro.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}

	return ensureDir(filepath.Join(base, constant.Hyfetch))
}

// Logs is where daily log files are written.
func Logs() string {
	return ensureDir(filepath.Join(Cache(), "logs"))
}

// Temp holds the recolored art handed to the backend.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Hyfetch))
}
