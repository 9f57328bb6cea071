//go:build !windows

package backend

import (
	"os"
	"syscall"
)

func terminatedBy(state *os.ProcessState) (string, bool) {
	status, ok := state.Sys().(syscall.WaitStatus)
	if !ok || !status.Signaled() {
		return "", false
	}

	return status.Signal().String(), true
}
