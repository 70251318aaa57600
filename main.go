package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/hopinc/hop-cli/cmd"
	"github.com/hopinc/hop-cli/internal/console"
	"github.com/hopinc/hop-cli/internal/version"
	"github.com/hopinc/hop-cli/sentry"
)

func main() {
	console.Init()

	// DSN is injected at build time - if empty, Sentry is disabled
	if err := sentry.Init(sentry.Config{
		DSN:         version.SentryDSN,
		Environment: sentry.Environment(version.IsDev()),
		Release:     sentry.Release(version.BuildVersion),
		SampleRate:  1.0,
		FilteredErrors: []string{
			"context canceled",
			"update interrupted",
		},
		Tags: map[string]string{
			"os":           runtime.GOOS,
			"arch":         runtime.GOARCH,
			"go_version":   runtime.Version(),
			"build_commit": version.BuildCommit,
		},
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	defer sentry.Flush(5 * time.Second)
	defer sentry.CapturePanic(nil)

	cmd.Execute()
}
