package config

import (
	"strconv"

	"github.com/hyfetch-cli/hyfetch/ascii"
	"github.com/hyfetch-cli/hyfetch/placeholder"
	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"
)

// Document is the on-disk shape of the hyfetch keys in hyfetch.json.
type Document struct {
	Preset            string        `json:"preset" jsonschema:"description=Name of the flag preset."`
	Mode              string        `json:"mode" jsonschema:"enum=8bit,enum=rgb,description=Color mode of the terminal."`
	LightDark         string        `json:"light_dark" jsonschema:"enum=light,enum=dark,description=Background brightness of the terminal."`
	Lightness         *float64      `json:"lightness" jsonschema:"minimum=0,maximum=1,description=Lightness the colors are clamped to. Theme default when null."`
	ColorAlign        AlignDocument `json:"color_align" jsonschema:"description=How colors are laid over the art."`
	Backend           string        `json:"backend" jsonschema:"enum=neofetch,enum=fastfetch,description=Program printing the system information."`
	Args              string        `json:"args" jsonschema:"description=Extra backend arguments, shell quoted. A list of strings is accepted too."`
	Distro            *string       `json:"distro" jsonschema:"description=Distro whose art is shown. Detected when null."`
	PrideMonthDisable bool          `json:"pride_month_disable" jsonschema:"description=Skip the pride month animation."`
}

// AlignDocument is the on-disk shape of ascii.Alignment.
type AlignDocument struct {
	Mode         string         `json:"mode" jsonschema:"enum=horizontal,enum=vertical,enum=custom"`
	ForeBack     *[2]int        `json:"fore_back" jsonschema:"description=Slots of the foreground and background parts of the art."`
	CustomColors map[string]int `json:"custom_colors,omitempty" jsonschema:"description=Preset color index per slot, custom mode only."`
}

// Document converts c to its on-disk shape.
func (c *Config) Document() Document {
	doc := Document{
		Preset:            c.Preset,
		Mode:              string(c.Mode),
		LightDark:         string(c.LightDark),
		ColorAlign:        alignDocument(c.ColorAlign),
		Backend:           string(c.Backend),
		Args:              shellquote.Join(c.Args...),
		PrideMonthDisable: c.PrideMonthDisable,
	}

	if l, ok := c.Lightness.Get(); ok {
		doc.Lightness = lo.ToPtr(float64(l))
	}

	if c.Distro != "" {
		doc.Distro = lo.ToPtr(c.Distro)
	}

	return doc
}

func alignDocument(a ascii.Alignment) AlignDocument {
	doc := AlignDocument{Mode: string(a.Mode)}

	if fb, ok := a.ForeBack.Get(); ok {
		doc.ForeBack = &[2]int{int(fb.Fore), int(fb.Back)}
	}

	if a.Mode == ascii.AlignCustom {
		doc.CustomColors = lo.MapKeys(a.Colors, func(_ int, slot placeholder.Slot) string {
			return strconv.Itoa(int(slot))
		})
	}

	return doc
}
