//go:build windows

package backend

import "os"

// Windows processes always end with an exit code.
func terminatedBy(*os.ProcessState) (string, bool) {
	return "", false
}
