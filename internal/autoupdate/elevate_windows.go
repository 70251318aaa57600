//go:build windows

package autoupdate

import (
	"context"
	"unsafe"

	"golang.org/x/sys/windows"
)

type uacElevator struct {
	runner Runner
}

func platformElevator(r Runner) Elevator { return uacElevator{runner: r} }

func (u uacElevator) Run(ctx context.Context, shell Shell, script string) error {
	if isElevated() {
		return u.runner.Run(ctx, shell.Name, shell.Flag, script)
	}
	return u.runner.Run(ctx, "powershell.exe",
		"-NoProfile",
		"-NonInteractive",
		"-Command",
		powerShellElevationScript(shell, script),
	)
}

// isElevated reports whether the process token already has admin rights.
func isElevated() bool {
	token := windows.GetCurrentProcessToken()
	defer token.Close()

	var elevation struct {
		TokenIsElevated uint32
	}
	var outLen uint32
	err := windows.GetTokenInformation(
		token,
		windows.TokenElevation,
		(*byte)(unsafe.Pointer(&elevation)),
		uint32(unsafe.Sizeof(elevation)),
		&outLen,
	)
	if err != nil {
		return false
	}
	return elevation.TokenIsElevated != 0
}
