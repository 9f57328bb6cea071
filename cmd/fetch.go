package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hyfetch-cli/hyfetch/ascii"
	"github.com/hyfetch-cli/hyfetch/backend"
	"github.com/hyfetch-cli/hyfetch/color"
	"github.com/hyfetch-cli/hyfetch/config"
	"github.com/hyfetch-cli/hyfetch/distro"
	"github.com/hyfetch-cli/hyfetch/filesystem"
	"github.com/hyfetch-cli/hyfetch/key"
	"github.com/hyfetch-cli/hyfetch/log"
	"github.com/hyfetch-cli/hyfetch/preset"
	"github.com/hyfetch-cli/hyfetch/pride"
	"github.com/hyfetch-cli/hyfetch/profile"
	"github.com/hyfetch-cli/hyfetch/util"
	"github.com/hyfetch-cli/hyfetch/wizard"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// fetch recolors the art and hands it to the backend.
func fetch(cmd *cobra.Command) error {
	flags := cmd.Flags()

	now := time.Now()
	if lo.Must(flags.GetBool("june")) || (pride.ShouldShow(now) && util.IsTerminal()) {
		if err := pride.Run(); err != nil {
			log.Warn(err)
		}
		util.Ignore(func() error { return pride.MarkShown(now.Year()) })
	}

	art, err := loadArt(lo.Must(flags.GetString("ascii-file")))
	if err != nil {
		return err
	}

	cfg, err := loadConfig(art, lo.Must(flags.GetBool("config")))
	if err != nil {
		return err
	}

	mode := cfg.Mode
	if mode == "" {
		mode = wizard.DetectMode()
		log.Debugf("detected color mode %s", mode)
	}

	p, err := preset.Get(cfg.Preset)
	if err != nil {
		return err
	}

	colors := p.Profile()
	switch {
	case flags.Changed("c-scale"):
		colors = colors.Lighten(lo.Must(flags.GetFloat64("c-scale")))
	case flags.Changed("c-set-l"):
		l, err := color.NewLightness(lo.Must(flags.GetFloat64("c-set-l")))
		if err != nil {
			return err
		}
		colors = colors.WithLightness(profile.Replace(l))
	default:
		colors = colors.WithLightnessAdaptive(cfg.DefaultLightness(), cfg.LightDark)
	}

	recolored, err := ascii.Recolor(art, cfg.ColorAlign, colors, mode, cfg.LightDark)
	if err != nil {
		return err
	}

	if lo.Must(flags.GetBool("print")) {
		fmt.Println(recolored)
		return nil
	}

	err = backend.Run(recolored, cfg.Backend, cfg.Args)

	var (
		exitErr     *backend.ExitError
		notFoundErr *backend.NotFoundError
	)

	switch {
	case errors.As(err, &exitErr):
		log.Error(err)
		os.Exit(exitErr.Code)
	case errors.As(err, &notFoundErr):
		log.Error(err)
		printMissingBackendError(cfg.Backend)
		os.Exit(1)
	}

	return err
}

// loadArt reads the art from file, or from the distro table.
func loadArt(file string) (ascii.RawArt, error) {
	if file != "" {
		data, err := filesystem.API().ReadFile(file)
		if err != nil {
			return ascii.RawArt{}, err
		}

		return ascii.RawArt{Text: string(data)}, nil
	}

	name := viper.GetString(key.Distro)
	if name == "" {
		var err error
		if name, err = backend.DistroName(); err != nil {
			log.Warn(err)
			name = distro.Fallback
		}
	}

	d, err := distro.Lookup(name)
	if err != nil {
		log.Warnf("%s, showing %s instead", err, distro.Fallback)
		d = lo.Must(distro.Lookup(distro.Fallback))
	}

	log.Debugf("using %s art", d.Name)
	return d.Art(), nil
}

// loadConfig reads the config, running the wizard when asked to or when
// nothing has been configured yet.
func loadConfig(art ascii.RawArt, reconfigure bool) (*config.Config, error) {
	cfg, err := config.Load()
	switch {
	case errors.Is(err, config.ErrNoPreset):
		if config.Exists() {
			log.Warnf("%s has no preset", config.Path())
		}
		reconfigure = true
	case err != nil && !reconfigure:
		return nil, err
	}

	if !reconfigure {
		return cfg, nil
	}

	return wizard.Run(&wizard.Options{
		Art:     art,
		Current: cfg,
		Save:    true,
	})
}
