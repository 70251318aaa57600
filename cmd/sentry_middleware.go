package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/hopinc/hop-cli/internal/autoupdate"
	"github.com/hopinc/hop-cli/internal/version"
	"github.com/hopinc/hop-cli/sentry"
)

// WrapCommandWithSentry wraps a cobra.Command's Run function
// to automatically capture panics to Sentry
func WrapCommandWithSentry(cmd *cobra.Command) {
	if cmd.Run == nil {
		return
	}

	originalRun := cmd.Run
	cmd.Run = func(c *cobra.Command, args []string) {
		defer sentry.CapturePanic(&sentry.EventOptions{
			Tags: map[string]string{
				"command": cmd.Name(),
				"version": version.BuildVersion,
			},
		})

		originalRun(c, args)
	}
}

// shouldCapture filters out errors that are not failures of hop itself.
func shouldCapture(err error) bool {
	return err != nil &&
		!errors.Is(err, autoupdate.ErrManaged) &&
		!errors.Is(err, errDevBuild) &&
		!errors.Is(err, context.Canceled)
}

// CaptureCommandError reports a failed command. The event is flushed right
// away because the caller exits with os.Exit.
func CaptureCommandError(cmd *cobra.Command, err error) {
	if !shouldCapture(err) {
		return
	}

	eventID := sentry.CaptureError(err, &sentry.EventOptions{
		Tags: map[string]string{
			"command":    cmd.Name(),
			"version":    version.BuildVersion,
			"error_type": getErrorType(err),
		},
		Extra: map[string]any{
			"args": cmd.Flags().Args(),
		},
		Level: getLogLevelForError(err),
	})

	if eventID != nil {
		sentry.Flush(2 * time.Second)
	}
}
