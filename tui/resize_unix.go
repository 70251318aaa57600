//go:build !windows

package tui

import (
	"os/signal"
	"syscall"
	"time"
)

// ignoreResize stops the spinner from redrawing on SIGWINCH. Bubble Tea
// installs its handler once the program starts, so the reset is delayed.
func ignoreResize() {
	go func() {
		time.Sleep(100 * time.Millisecond)
		signal.Reset(syscall.SIGWINCH)
	}()
}
