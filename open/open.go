// Package open hands URLs to the desktop's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/hyfetch-cli/hyfetch/constant"
)

// Start opens input without waiting for the handler to exit.
func Start(input string) error {
	cmd, err := command(input)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Run opens input and waits for the handler.
func Run(input string) error {
	cmd, err := command(input)
	if err != nil {
		return err
	}
	return cmd.Run()
}

func command(input string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), nil
	case constant.Darwin:
		return exec.Command("open", input), nil
	case constant.Android:
		return exec.Command("termux-open", input), nil
	case constant.Linux, constant.FreeBSD:
		return exec.Command("xdg-open", input), nil
	default:
		return nil, fmt.Errorf("opening links is not supported on %s", runtime.GOOS)
	}
}
