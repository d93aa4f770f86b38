//go:build !windows
// +build !windows

package app

import (
	"os"
	"syscall"
)

func signalsForPlatform() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	}
}
