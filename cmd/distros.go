package cmd

import (
	"os"

	"github.com/hyfetch-cli/hyfetch/backend"
	"github.com/hyfetch-cli/hyfetch/color"
	"github.com/hyfetch-cli/hyfetch/distro"
	"github.com/hyfetch-cli/hyfetch/style"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func completionDistros(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return fuzzy.FindFold(toComplete, distro.Names()), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(distrosCmd)
	distrosCmd.Flags().BoolP("detect", "d", false, "Print the distro detected on this system")

	distrosCmd.SetOut(os.Stdout)
}

var distrosCmd = &cobra.Command{
	Use:               "distros [query]",
	Short:             "List the distros with art",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionDistros,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("detect")) {
			name, err := backend.DistroName()
			handleErr(err)

			d, err := distro.Lookup(name)
			handleErr(err)

			cmd.Println(d.Name)
			return
		}

		names := distro.Names()
		if len(args) == 1 {
			names = fuzzy.FindFold(args[0], names)
		}

		for _, name := range names {
			cmd.Println(style.Fg(color.Purple)(name))
		}
	},
}
