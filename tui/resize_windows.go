//go:build windows

package tui

// ignoreResize is a no-op; Windows consoles do not deliver SIGWINCH.
func ignoreResize() {}
