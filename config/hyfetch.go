package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hyfetch-cli/hyfetch/ascii"
	"github.com/hyfetch-cli/hyfetch/backend"
	"github.com/hyfetch-cli/hyfetch/color"
	"github.com/hyfetch-cli/hyfetch/key"
	"github.com/hyfetch-cli/hyfetch/preset"
	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// ErrNoPreset is returned by Load when no preset was chosen yet.
var ErrNoPreset = errors.New("no preset configured")

// Config is the validated view of hyfetch.json.
type Config struct {
	Preset            string
	Mode              color.Mode
	LightDark         color.Theme
	Lightness         mo.Option[color.Lightness]
	ColorAlign        ascii.Alignment
	Backend           backend.Kind
	Args              []string
	Distro            string
	PrideMonthDisable bool
}

// DefaultLightness is the explicit lightness, or the theme default when unset.
func (c *Config) DefaultLightness() color.Lightness {
	return c.Lightness.OrElse(c.LightDark.DefaultLightness())
}

// Load reads the current viper state into a Config. Mode may be empty,
// in which case the caller detects it from the terminal.
func Load() (*Config, error) {
	c := &Config{
		Preset:            viper.GetString(key.Preset),
		Distro:            viper.GetString(key.Distro),
		PrideMonthDisable: viper.GetBool(key.PrideMonthDisable),
	}

	if c.Preset == "" {
		return nil, ErrNoPreset
	}

	p, err := preset.Get(c.Preset)
	if err != nil {
		return nil, err
	}
	c.Preset = p.Name

	if mode := viper.GetString(key.Mode); mode != "" {
		if c.Mode, err = color.ParseMode(mode); err != nil {
			return nil, fieldError(key.Mode, err)
		}
	}

	if c.LightDark, err = color.ParseTheme(viper.GetString(key.LightDark)); err != nil {
		return nil, fieldError(key.LightDark, err)
	}

	if c.Lightness, err = parseLightness(viper.Get(key.Lightness)); err != nil {
		return nil, fieldError(key.Lightness, err)
	}

	if c.ColorAlign, err = parseAlignment(viper.Get(key.ColorAlign)); err != nil {
		return nil, fieldError(key.ColorAlign, err)
	}

	if c.Backend, err = backend.ParseKind(viper.GetString(key.Backend)); err != nil {
		return nil, fieldError(key.Backend, err)
	}

	if c.Args, err = ParseArgs(viper.Get(key.Args)); err != nil {
		return nil, fieldError(key.Args, err)
	}

	return c, nil
}

// Save writes c to the config file, keeping every other key as it is,
// and reloads viper from it.
func Save(c *Config) error {
	if err := c.ColorAlign.Validate(); err != nil {
		return fieldError(key.ColorAlign, err)
	}

	fields, err := toAny(c.Document())
	if err != nil {
		return err
	}

	return Write(fields.(map[string]any))
}

// ParseArgs accepts either a shell-quoted string or a list of strings.
func ParseArgs(v any) ([]string, error) {
	switch args := v.(type) {
	case nil:
		return nil, nil
	case string:
		return shellquote.Split(args)
	case []string:
		return args, nil
	case []any:
		return lo.Map(args, func(a any, _ int) string { return fmt.Sprint(a) }), nil
	default:
		return nil, fmt.Errorf("expected a string or a list, got %T", v)
	}
}

func parseLightness(v any) (mo.Option[color.Lightness], error) {
	var value float64

	switch l := v.(type) {
	case nil:
		return mo.None[color.Lightness](), nil
	case float64:
		value = l
	case int:
		value = float64(l)
	case string:
		if l == "" {
			return mo.None[color.Lightness](), nil
		}
		if _, err := fmt.Sscanf(l, "%g", &value); err != nil {
			return mo.None[color.Lightness](), err
		}
	default:
		return mo.None[color.Lightness](), fmt.Errorf("expected a number, got %T", v)
	}

	lightness, err := color.NewLightness(value)
	if err != nil {
		return mo.None[color.Lightness](), err
	}

	return mo.Some(lightness), nil
}

func parseAlignment(v any) (ascii.Alignment, error) {
	var align ascii.Alignment

	if s, ok := v.(string); ok {
		if s == "" {
			return ascii.Horizontal(mo.None[ascii.ForeBack]()), nil
		}
		return align, json.Unmarshal([]byte(s), &align)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return align, err
	}

	if err := json.Unmarshal(data, &align); err != nil {
		return align, err
	}

	return align, align.Validate()
}

func toAny(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var out any
	return out, json.Unmarshal(data, &out)
}

func fieldError(field string, err error) error {
	return fmt.Errorf("invalid %s: %w", field, err)
}
