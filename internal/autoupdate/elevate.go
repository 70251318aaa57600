package autoupdate

import (
	"fmt"
	"strings"
)

// powerShellElevationScript builds a PowerShell one-liner that starts shell
// through UAC, waits for it and exits with its code.
func powerShellElevationScript(shell Shell, script string) string {
	args := shell.Flag + " " + script
	return fmt.Sprintf(
		`$p = Start-Process -FilePath %s -ArgumentList %s -Verb RunAs -Wait -PassThru; exit $p.ExitCode`,
		psQuote(shell.Name+".exe"), psQuote(args),
	)
}

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, `'`, `''`) + "'"
}

// sudoArgs returns the command line for running script under sudo, or
// directly when already root.
func sudoArgs(isRoot bool, shell Shell, script string) (string, []string) {
	if isRoot {
		return shell.Name, []string{shell.Flag, script}
	}
	return "sudo", []string{shell.Name, shell.Flag, script}
}
