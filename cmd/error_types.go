package cmd

import (
	"context"
	"errors"

	"github.com/hopinc/hop-cli/internal/autoupdate"
	"github.com/hopinc/hop-cli/internal/release"
	"github.com/hopinc/hop-cli/sentry"
)

// getErrorType categorizes errors for better Sentry grouping
func getErrorType(err error) string {
	var (
		ioErr   *autoupdate.IoError
		dlErr   *autoupdate.DownloadError
		execErr *autoupdate.ExecutionError
	)

	switch {
	case errors.Is(err, autoupdate.ErrManaged):
		return "managed_install"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.As(err, &dlErr):
		return "download_error"
	case errors.Is(err, release.ErrNetwork):
		return "network_error"
	case errors.As(err, &execErr):
		return "execution_error"
	case errors.As(err, &ioErr):
		return "io_error"
	case errors.Is(err, release.ErrParse):
		return "parse_error"
	case errors.Is(err, release.ErrNotFound):
		return "not_found"
	default:
		return "unknown_error"
	}
}

// getLogLevelForError determines the appropriate Sentry level for an error
func getLogLevelForError(err error) sentry.Level {
	switch getErrorType(err) {
	case "network_error", "timeout", "not_found":
		return sentry.LevelWarning
	case "managed_install":
		return sentry.LevelInfo
	default:
		return sentry.LevelError
	}
}
