package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/hyfetch-cli/hyfetch/backend"
	"github.com/hyfetch-cli/hyfetch/color"
	"github.com/hyfetch-cli/hyfetch/config"
	"github.com/hyfetch-cli/hyfetch/constant"
	"github.com/hyfetch-cli/hyfetch/distro"
	"github.com/hyfetch-cli/hyfetch/icon"
	"github.com/hyfetch-cli/hyfetch/style"
	"github.com/hyfetch-cli/hyfetch/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.SetOut(os.Stdout)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that backends are installed and the config is valid",
	Run: func(cmd *cobra.Command, args []string) {
		pass := style.Fg(color.Green)(icon.Get(icon.Success))
		fail := style.Fg(color.Red)(icon.Get(icon.Fail))

		var problems int

		for _, kind := range backend.Kinds {
			if kind.Available() {
				cmd.Printf("%s %s found\n", pass, kind)
			} else {
				cmd.Printf("%s %s not found\n", fail, kind)
			}
		}

		switch _, err := config.Load(); {
		case errors.Is(err, config.ErrNoPreset):
			cmd.Printf("%s no preset configured, run %s\n", fail, style.Fg(color.Yellow)(constant.Hyfetch+" -c"))
			problems++
		case err != nil:
			cmd.Printf("%s %s: %s\n", fail, config.Path(), err)
			problems++
		default:
			cmd.Printf("%s %s is valid\n", pass, config.Path())
		}

		name, err := backend.DistroName()
		if err != nil {
			cmd.Printf("%s %s\n", fail, err)
		} else if d, ok := distro.Detect(name); ok {
			cmd.Printf("%s detected %s\n", pass, style.Fg(color.Purple)(d.Name))
		} else {
			cmd.Printf("%s no art for %q, %s is used\n", fail, name, distro.Fallback)
		}

		if problems > 0 {
			handleErr(fmt.Errorf("%s found", util.Quantify(problems, "problem", "problems")))
		}
	},
}

func printMissingBackendError(kind backend.Kind) {
	var installCmd string
	switch runtime.GOOS {
	case constant.Darwin:
		installCmd = "brew install " + kind.Command()
	case constant.Linux:
		installCmd = "sudo apt install " + kind.Command()
	case constant.Windows:
		installCmd = "scoop install " + kind.Command()
	case constant.FreeBSD:
		installCmd = "pkg install " + kind.Command()
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Backend", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The backend '%s' was not found in your PATH.", kind.Command()))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	others := fmt.Sprintf("\n\nOr pick another one with %s", style.Fg(style.AccentColor)(constant.Hyfetch+" -b"))

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
			others,
		),
	))
}
