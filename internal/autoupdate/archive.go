package autoupdate

import (
	"os"
	"runtime"
	"strings"
)

// Shell runs a joined command batch.
type Shell struct {
	Name string
	Flag string
	Sep  string
}

// Join concatenates scripts with the shell's separator.
func (s Shell) Join(scripts []string) string {
	return strings.Join(scripts, s.Sep)
}

var (
	posixShell = Shell{Name: "sh", Flag: "-c", Sep: " && "}
	cmdShell   = Shell{Name: "cmd", Flag: "/c", Sep: " & "}
)

// Strategy bundles every platform specific step of an update: the archive
// format, how it is unpacked, and the commands that install its contents.
type Strategy interface {
	// Ext is the archive extension without a leading dot.
	Ext() string
	// Extract unpacks archive and returns the path of the executable named filename.
	Extract(archive, filename string) (string, error)
	// PlanSwap adds the commands replacing oldExe with newExe.
	PlanSwap(b *Batch, oldExe, newExe string) error
	// PlanCompletions adds the commands installing shell completions generated by exe.
	PlanCompletions(b *Batch, exe string) error
	// Shell returns the shell used to run planned commands.
	Shell() Shell
}

// Detect returns the Strategy for the running platform.
func Detect() Strategy {
	return strategyFor(runtime.GOOS, os.TempDir())
}

func strategyFor(goos, tempDir string) Strategy {
	switch goos {
	case "windows":
		return &zipStrategy{tempDir: tempDir}
	case "linux":
		return &tarGzStrategy{tempDir: tempDir, completions: true}
	default:
		// macOS does not allow writing system completion directories
		return &tarGzStrategy{tempDir: tempDir}
	}
}
