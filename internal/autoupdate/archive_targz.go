package autoupdate

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"mvdan.cc/sh/v3/syntax"
)

const extractDirName = "hop-extract"

type completionTarget struct {
	shell string
	dir   string
	file  string
}

var completionTargets = []completionTarget{
	{shell: "zsh", dir: "/usr/share/zsh/site-functions", file: "_hop"},
	{shell: "fish", dir: "/usr/share/fish/completions", file: "hop.fish"},
	{shell: "bash", dir: "/usr/share/bash-completion/completions", file: "hop"},
}

// tarGzStrategy handles Linux and macOS releases.
type tarGzStrategy struct {
	tempDir     string
	completions bool
}

func (s *tarGzStrategy) Ext() string  { return "tar.gz" }
func (s *tarGzStrategy) Shell() Shell { return posixShell }

func (s *tarGzStrategy) Extract(archive, filename string) (string, error) {
	dir := filepath.Join(s.tempDir, extractDirName)

	if err := os.RemoveAll(dir); err != nil {
		return "", &IoError{Op: "clean", Path: dir, Err: err}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &IoError{Op: "mkdir", Path: dir, Err: err}
	}

	f, err := os.Open(archive)
	if err != nil {
		return "", &IoError{Op: "open", Path: archive, Err: err}
	}
	defer f.Close()

	gzr, err := gzip.NewReader(f)
	if err != nil {
		return "", &IoError{Op: "decompress", Path: archive, Err: err}
	}
	defer gzr.Close()

	if err := untar(tar.NewReader(gzr), dir); err != nil {
		return "", &IoError{Op: "unpack", Path: archive, Err: err}
	}

	exe := filepath.Join(dir, filename)
	if _, err := os.Stat(exe); err != nil {
		return "", &IoError{Op: "locate", Path: exe, Err: err}
	}
	return exe, nil
}

func untar(tr *tar.Reader, dir string) error {
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		target, err := safeJoin(dir, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			if err := writeEntry(target, tr, os.FileMode(hdr.Mode).Perm()); err != nil {
				return err
			}
		}
	}
}

// safeJoin keeps archive entries inside dir.
func safeJoin(dir, name string) (string, error) {
	target := filepath.Join(dir, name)
	rel, err := filepath.Rel(dir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("illegal path in archive: %s", name)
	}
	return target, nil
}

func writeEntry(path string, r io.Reader, mode os.FileMode) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func (s *tarGzStrategy) PlanSwap(b *Batch, oldExe, newExe string) error {
	src, err := shQuote(newExe)
	if err != nil {
		return err
	}
	dst, err := shQuote(oldExe)
	if err != nil {
		return err
	}
	b.Add(oldExe, fmt.Sprintf("mv %s %s", src, dst))
	return nil
}

func (s *tarGzStrategy) PlanCompletions(b *Batch, exe string) error {
	if !s.completions {
		return nil
	}
	bin, err := shQuote(exe)
	if err != nil {
		return err
	}
	for _, t := range completionTargets {
		file := t.dir + "/" + t.file
		b.Add(file, fmt.Sprintf(
			"mkdir -p %s && %s completions %s > %s 2> /dev/null && chmod 644 %s",
			t.dir, bin, t.shell, file, file,
		))
	}
	return nil
}

func shQuote(s string) (string, error) {
	q, err := syntax.Quote(s, syntax.LangPOSIX)
	if err != nil {
		return "", fmt.Errorf("cannot quote %q for the shell: %w", s, err)
	}
	return q, nil
}
