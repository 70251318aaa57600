package autoupdate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
)

const discardName = ".hop.tmp"

// zipStrategy handles Windows releases, where the running executable cannot
// be overwritten and is moved aside instead.
type zipStrategy struct {
	tempDir string
}

func (s *zipStrategy) Ext() string  { return "zip" }
func (s *zipStrategy) Shell() Shell { return cmdShell }

// Extract writes the archive's single file entry to <tempDir>/<filename>.exe.
func (s *zipStrategy) Extract(archive, filename string) (string, error) {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return "", &IoError{Op: "open", Path: archive, Err: err}
	}
	defer r.Close()

	var entry *zip.File
	for _, f := range r.File {
		if !f.FileInfo().IsDir() {
			entry = f
			break
		}
	}
	if entry == nil {
		return "", &IoError{Op: "unpack", Path: archive, Err: ErrEmptyArchive}
	}

	rc, err := entry.Open()
	if err != nil {
		return "", &IoError{Op: "unpack", Path: archive, Err: err}
	}
	defer rc.Close()

	exe := filepath.Join(s.tempDir, filename+".exe")
	if err := writeEntry(exe, rc, 0o755); err != nil {
		return "", &IoError{Op: "write", Path: exe, Err: err}
	}
	return exe, nil
}

func (s *zipStrategy) PlanSwap(b *Batch, oldExe, newExe string) error {
	discard := strings.TrimRight(s.tempDir, `\/`) + `\` + discardName
	old, nw, tmp := cmdQuote(oldExe), cmdQuote(newExe), cmdQuote(discard)

	b.Add(oldExe, strings.Join([]string{
		fmt.Sprintf("move %s %s", old, tmp),
		fmt.Sprintf("move %s %s", nw, old),
		fmt.Sprintf("del %s", tmp),
	}, cmdShell.Sep))
	return nil
}

// PlanCompletions is a no-op; Windows has no stable completion directory.
func (s *zipStrategy) PlanCompletions(*Batch, string) error { return nil }

// cmdQuote wraps paths containing cmd.exe metacharacters in double quotes.
// Windows paths cannot contain '"' so no escaping is needed.
func cmdQuote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t&()[]{}^=;!'+,`~%") {
		return `"` + s + `"`
	}
	return s
}
