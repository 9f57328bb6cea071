package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hyfetch-cli/hyfetch/color"
	"github.com/hyfetch-cli/hyfetch/icon"
	"github.com/hyfetch-cli/hyfetch/open"
	"github.com/hyfetch-cli/hyfetch/preset"
	"github.com/hyfetch-cli/hyfetch/style"
	"github.com/hyfetch-cli/hyfetch/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	presetsCmd.Flags().BoolP("open", "o", false, "Open the source of each named preset")
	presetsCmd.Flags().Bool("memes", true, "Include presets that are not pride flags")

	presetsCmd.SetOut(os.Stdout)
}

var presetsCmd = &cobra.Command{
	Use:               "presets [names...]",
	Short:             "List the flag presets",
	ValidArgsFunction: completionPresets,
	Run: func(cmd *cobra.Command, args []string) {
		presets := preset.All()

		if len(args) > 0 {
			presets = make([]preset.Preset, 0, len(args))
			for _, name := range args {
				p, err := preset.Get(name)
				handleErr(err)
				presets = append(presets, p)
			}
		} else if !lo.Must(cmd.Flags().GetBool("memes")) {
			presets = lo.Reject(presets, func(p preset.Preset, _ int) bool {
				return p.Meme
			})
		}

		if lo.Must(cmd.Flags().GetBool("open")) {
			for _, p := range presets {
				if p.Source == "" {
					fmt.Printf("%s %s has no source\n", icon.Get(icon.Fail), p.Name)
					continue
				}

				fmt.Printf("%s %s\n", icon.Get(icon.Link), p.Source)
				handleErr(open.Start(p.Source))
			}
			return
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(presets))
			return
		}

		width := lo.Max(lo.Map(presets, func(p preset.Preset, _ int) int {
			return len(p.Name)
		}))

		for _, p := range presets {
			line := style.Fg(color.Purple)(util.PadRight(p.Name, width)) + " " + style.Swatch(p.Profile().Colors, 2)
			if len(p.Aliases) > 0 {
				line += " " + style.Faint(strings.Join(p.Aliases, ", "))
			}
			cmd.Println(line)
		}
	},
}
