// Package config loads and persists hyfetch.json through viper. Every
// entry can also be set with a HYFETCH_ prefixed environment variable.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/hyfetch-cli/hyfetch/constant"
	"github.com/hyfetch-cli/hyfetch/filesystem"
	"github.com/hyfetch-cli/hyfetch/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer turns keys into environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and environment bindings, then reads
// hyfetch.json if there is one.
func Setup() error {
	viper.SetConfigName(constant.Hyfetch)
	viper.SetConfigType("json")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Hyfetch)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		if field.Value != nil {
			viper.SetDefault(name, field.Value)
		}
	}

	return read()
}

// UseFile switches to an explicit config file instead of the default one.
func UseFile(path string) error {
	viper.SetConfigFile(path)
	return read()
}

func read() error {
	err := viper.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if err == nil || errors.As(err, &notFound) {
		return nil
	}

	// An explicit file that does not exist yet is not an error either,
	// the wizard will create it.
	if exists, _ := filesystem.API().Exists(Path()); !exists {
		return nil
	}

	return err
}

// Path is the file the configuration is read from and written to.
func Path() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}

	return where.ConfigFile()
}

// Write stores values over the current settings in the config file and
// reloads it. Keys may be dotted. A nil value is written as null.
func Write(values map[string]any) error {
	doc := viper.AllSettings()
	for k, v := range values {
		setPath(doc, strings.Split(k, "."), v)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	path := Path()
	if err := filesystem.API().MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}

	if err := filesystem.API().WriteFile(path, data, 0o644); err != nil {
		return err
	}

	viper.SetConfigFile(path)
	return viper.ReadInConfig()
}

func setPath(doc map[string]any, path []string, v any) {
	if len(path) == 1 {
		doc[path[0]] = v
		return
	}

	child, ok := doc[path[0]].(map[string]any)
	if !ok {
		child = make(map[string]any)
		doc[path[0]] = child
	}

	setPath(child, path[1:], v)
}

// Exists reports whether a config file has been written.
func Exists() bool {
	exists, err := filesystem.API().Exists(Path())
	return err == nil && exists
}
