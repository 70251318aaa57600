package autoupdate

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyArchive is returned when a zip archive holds no file entry.
	ErrEmptyArchive = errors.New("archive contains no entries")

	// ErrManaged is returned when the binary belongs to a package manager.
	ErrManaged = errors.New("hop is managed by a package manager")

	// ErrBatchConsumed is returned when a Batch is executed twice.
	ErrBatchConsumed = errors.New("command batch already executed")
)

// IoError wraps a filesystem failure during extraction or staging.
type IoError struct {
	Op   string
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// DownloadError reports a failed archive download.
type DownloadError struct {
	URL    string
	Status int
	Err    error
}

func (e *DownloadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("failed to download %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("failed to download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// ExecutionError reports a command batch that did not exit cleanly.
type ExecutionError struct {
	Elevated bool
	// ExitCode is -1 when the process never produced one.
	ExitCode int
	Err      error
}

func (e *ExecutionError) Error() string {
	kind := "update commands"
	if e.Elevated {
		kind = "elevated update commands"
	}
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%s failed with exit code %d", kind, e.ExitCode)
	}
	return fmt.Sprintf("%s failed: %v", kind, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

type exitCoder interface {
	ExitCode() int
}

func newExecutionError(elevated bool, err error) *ExecutionError {
	code := -1
	var ec exitCoder
	if errors.As(err, &ec) {
		code = ec.ExitCode()
	}
	return &ExecutionError{Elevated: elevated, ExitCode: code, Err: err}
}
