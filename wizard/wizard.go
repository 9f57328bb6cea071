// Package wizard walks through creating hyfetch.json.
package wizard

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/hyfetch-cli/hyfetch/ascii"
	"github.com/hyfetch-cli/hyfetch/backend"
	"github.com/hyfetch-cli/hyfetch/color"
	"github.com/hyfetch-cli/hyfetch/config"
	"github.com/hyfetch-cli/hyfetch/log"
	"github.com/hyfetch-cli/hyfetch/placeholder"
	"github.com/hyfetch-cli/hyfetch/tui"
	"github.com/hyfetch-cli/hyfetch/util"
	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// DefaultPreset is offered when there is no previous config.
const DefaultPreset = "rainbow"

// Options configures a wizard run.
type Options struct {
	// Art is previewed while choosing the preset and decides which slots
	// a custom alignment asks about.
	Art ascii.RawArt
	// Current seeds the defaults. It may be nil.
	Current *config.Config
	// Save writes the result after confirmation.
	Save bool
}

// Run asks every question and returns the resulting config.
func Run(options *Options) (*config.Config, error) {
	if util.IsTerminal() {
		util.ClearScreen()
	}

	return run(options, surveyPrompter{})
}

func run(options *Options, p prompter) (*config.Config, error) {
	current := lo.FromPtrOr(options.Current, config.Config{})

	mode, err := askMode(p, current.Mode)
	if err != nil {
		return nil, err
	}

	theme, err := askTheme(p, current.LightDark)
	if err != nil {
		return nil, err
	}

	picked, err := p.pickPreset(&tui.Options{
		Art:       options.Art,
		Mode:      mode,
		Theme:     theme,
		Lightness: current.Lightness.OrElse(theme.DefaultLightness()),
		Align:     lo.Ternary(current.ColorAlign.Mode == "", ascii.Horizontal(mo.None[ascii.ForeBack]()), current.ColorAlign),
		Selected:  lo.Ternary(current.Preset == "", DefaultPreset, current.Preset),
	})
	if err != nil {
		return nil, err
	}

	lightness, err := askLightness(p, picked.Lightness)
	if err != nil {
		return nil, err
	}

	align, err := askAlignment(p, options.Art, picked)
	if err != nil {
		return nil, err
	}

	kind, err := askBackend(p, current.Backend)
	if err != nil {
		return nil, err
	}

	args, err := askArgs(p, current.Args)
	if err != nil {
		return nil, err
	}

	cfg := &config.Config{
		Preset:            picked.Preset.Name,
		Mode:              mode,
		LightDark:         theme,
		Lightness:         lo.Ternary(lightness == theme.DefaultLightness(), mo.None[color.Lightness](), mo.Some(lightness)),
		ColorAlign:        align,
		Backend:           kind,
		Args:              args,
		Distro:            current.Distro,
		PrideMonthDisable: current.PrideMonthDisable,
	}

	if !options.Save {
		return cfg, nil
	}

	save, err := p.confirm(fmt.Sprintf("Save this configuration to %s?", config.Path()), true)
	if err != nil {
		return nil, err
	}

	if save {
		if err := config.Save(cfg); err != nil {
			return nil, err
		}
		log.Infof("saved config to %s", config.Path())
	}

	return cfg, nil
}

func askMode(p prompter, current color.Mode) (color.Mode, error) {
	def := lo.Ternary(current == "", DetectMode(), current)

	answer, err := p.choose(
		"Which color mode does your terminal support?",
		lo.Map(color.Modes, func(m color.Mode, _ int) string { return string(m) }),
		string(def),
	)
	if err != nil {
		return "", err
	}

	return color.ParseMode(answer)
}

func askTheme(p prompter, current color.Theme) (color.Theme, error) {
	def := lo.Ternary(current == "", DetectTheme(), current)

	answer, err := p.choose(
		"Is your terminal background light or dark?",
		[]string{string(color.Dark), string(color.Light)},
		string(def),
	)
	if err != nil {
		return "", err
	}

	return color.ParseTheme(answer)
}

func parseLightness(s string) (color.Lightness, error) {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}

	return color.NewLightness(value)
}

func askLightness(p prompter, def color.Lightness) (color.Lightness, error) {
	answer, err := p.input(
		"How light should the colors be? (0 to 1)",
		strconv.FormatFloat(float64(def), 'f', 2, 64),
		func(s string) error {
			_, err := parseLightness(s)
			return err
		},
	)
	if err != nil {
		return 0, err
	}

	return parseLightness(answer)
}

func askAlignment(p prompter, art ascii.RawArt, picked *tui.Result) (ascii.Alignment, error) {
	answer, err := p.choose(
		"How should the colors be laid over the art?",
		lo.Map(ascii.AlignModes, func(m ascii.AlignMode, _ int) string { return string(m) }),
		string(picked.Align.Mode),
	)
	if err != nil {
		return ascii.Alignment{}, err
	}

	switch ascii.AlignMode(answer) {
	case ascii.AlignHorizontal:
		return ascii.Horizontal(picked.Align.ForeBack), nil
	case ascii.AlignVertical:
		return ascii.Vertical(picked.Align.ForeBack), nil
	case ascii.AlignCustom:
		return askCustomColors(p, art, picked)
	default:
		return ascii.Alignment{}, fmt.Errorf("unknown color alignment %q", answer)
	}
}

// askCustomColors asks for a palette index for every slot the art uses.
func askCustomColors(p prompter, art ascii.RawArt, picked *tui.Result) (ascii.Alignment, error) {
	palette := picked.Preset.Profile().Unique()
	slots := placeholder.Default().Slots(art.Text)
	slices.Sort(slots)

	validate := func(s string) error {
		index, err := strconv.Atoi(s)
		if err != nil || index < 0 || index >= palette.Len() {
			return fmt.Errorf("pick a color between 0 and %d", palette.Len()-1)
		}
		return nil
	}

	colors := make(map[placeholder.Slot]int, len(slots))
	for i, slot := range slots {
		def := i % palette.Len()
		if previous, ok := picked.Align.Colors[slot]; ok && previous < palette.Len() {
			def = previous
		}

		answer, err := p.input(
			fmt.Sprintf("Color for %s (0 to %d)", slot, palette.Len()-1),
			strconv.Itoa(def),
			validate,
		)
		if err != nil {
			return ascii.Alignment{}, err
		}

		colors[slot] = lo.Must(strconv.Atoi(answer))
	}

	return ascii.Custom(colors), nil
}

func askBackend(p prompter, current backend.Kind) (backend.Kind, error) {
	def := current
	if def == "" {
		def = lo.FindOrElse(backend.Kinds, backend.Neofetch, backend.Kind.Available)
	}

	answer, err := p.choose(
		"Which program should print the system information?",
		lo.Map(backend.Kinds, func(k backend.Kind, _ int) string { return string(k) }),
		string(def),
	)
	if err != nil {
		return "", err
	}

	return backend.ParseKind(answer)
}

func askArgs(p prompter, current []string) ([]string, error) {
	answer, err := p.input(
		"Extra arguments for it? (shell quoted, may be empty)",
		shellquote.Join(current...),
		func(s string) error {
			_, err := shellquote.Split(s)
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	return shellquote.Split(answer)
}
