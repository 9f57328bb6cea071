// Package cmd is the hyfetch command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/hyfetch-cli/hyfetch/ascii"
	"github.com/hyfetch-cli/hyfetch/backend"
	"github.com/hyfetch-cli/hyfetch/color"
	"github.com/hyfetch-cli/hyfetch/config"
	"github.com/hyfetch-cli/hyfetch/constant"
	"github.com/hyfetch-cli/hyfetch/icon"
	"github.com/hyfetch-cli/hyfetch/key"
	"github.com/hyfetch-cli/hyfetch/log"
	"github.com/hyfetch-cli/hyfetch/placeholder"
	"github.com/hyfetch-cli/hyfetch/preset"
	"github.com/hyfetch-cli/hyfetch/style"
	"github.com/hyfetch-cli/hyfetch/util"
	"github.com/hyfetch-cli/hyfetch/version"
	"github.com/hyfetch-cli/hyfetch/where"
	"github.com/hyfetch-cli/hyfetch/wizard"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Old spellings of flags that were renamed.
var flagAliases = map[string]string{
	"test-distro": "distro",
	"test-print":  "print",
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the hyfetch version")
	rootCmd.Flags().BoolP("config", "c", false, "Run the configuration wizard")

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Use another config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Print debug logs to stderr")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icon variant (emoji, kaomoji, plain, squares, nerd)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("preset", "p", "", "Use preset")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("preset", completionPresets))
	lo.Must0(viper.BindPFlag(key.Preset, rootCmd.Flags().Lookup("preset")))

	rootCmd.Flags().StringP("mode", "m", "", "Color mode (8bit, rgb)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("mode", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(color.Modes, func(m color.Mode, _ int) string { return string(m) }), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.Mode, rootCmd.Flags().Lookup("mode")))

	rootCmd.Flags().StringP("backend", "b", "", "Program that prints the system information (neofetch, fastfetch)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("backend", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(backend.Kinds, func(k backend.Kind, _ int) string { return string(k) }), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.Backend, rootCmd.Flags().Lookup("backend")))

	rootCmd.Flags().String("args", "", "Extra arguments passed to the backend")
	lo.Must0(viper.BindPFlag(key.Args, rootCmd.Flags().Lookup("args")))

	rootCmd.Flags().String("distro", "", "Show the art of another distro")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("distro", completionDistros))
	lo.Must0(viper.BindPFlag(key.Distro, rootCmd.Flags().Lookup("distro")))

	rootCmd.Flags().Float64("c-scale", 0, "Lighten colors by a multiplier")
	rootCmd.Flags().Float64("c-set-l", 0, "Set the lightness of every color (0 to 1)")
	rootCmd.Flags().Bool("june", false, "Show the pride month animation")
	rootCmd.Flags().String("ascii-file", "", "Recolor this file instead of the distro art")
	rootCmd.Flags().Bool("print", false, "Print the recolored art only, without running the backend")

	rootCmd.Flags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if alias, ok := flagAliases[name]; ok {
			name = alias
		}
		return pflag.NormalizedName(name)
	})

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd == rootCmd {
			cmd.Long = logo() + "\n" + style.New().Italic(true).Foreground(color.HiPurple).Render("    - neofetch with pride flags <3")
		}
		helpFunc(cmd, args)
		version.Notify(cmd.Context())
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.Hyfetch,
	Short: "neofetch with pride flags",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if lo.Must(cmd.Flags().GetBool("debug")) {
			log.EnableConsole("debug")
		}

		if path := lo.Must(cmd.Flags().GetString("config-file")); path != "" {
			return config.UseFile(path)
		}

		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(cmd, args)
			return
		}

		handleErr(fetch(cmd))
	},
}

// logo is the banner recolored with the configured preset, or rainbow.
func logo() string {
	name := lo.Ternary(viper.GetString(key.Preset) == "", wizard.DefaultPreset, viper.GetString(key.Preset))

	p, err := preset.Get(name)
	if err != nil {
		p = preset.MustGet(wizard.DefaultPreset)
	}

	mode := wizard.DetectMode()
	if m, err := color.ParseMode(viper.GetString(key.Mode)); err == nil {
		mode = m
	}

	recolored, err := ascii.Recolor(
		ascii.RawArt{Text: constant.AsciiArtLogo},
		ascii.Horizontal(mo.None[ascii.ForeBack]()),
		p.Profile(),
		mode,
		color.Dark,
	)
	if err != nil || !viper.GetBool(key.CliColored) {
		return placeholder.Default().StripAll(constant.AsciiArtLogo)
	}

	return recolored
}

func completionPresets(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return fuzzy.FindFold(toComplete, preset.Names()), cobra.ShellCompDirectiveNoFileComp
}

// Execute runs the command line.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiMagenta + cc.Bold + cc.Underline,
			Commands:      cc.HiCyan + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
