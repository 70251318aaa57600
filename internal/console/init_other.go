//go:build !windows

// Package console prepares the terminal for styled output.
package console

// Init is a no-op outside Windows.
func Init() {}
