//go:build windows

// Package console prepares the terminal for styled output.
package console

import (
	"os"

	"golang.org/x/sys/windows"
)

const utf8CodePage = 65001

// Init switches the console to UTF-8 and turns on ANSI escape handling for
// stdout and stderr.
func Init() {
	_ = windows.SetConsoleOutputCP(utf8CodePage)
	_ = windows.SetConsoleCP(utf8CodePage)

	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		h := windows.Handle(f.Fd())
		var mode uint32
		if err := windows.GetConsoleMode(h, &mode); err == nil {
			_ = windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
		}
	}
}
