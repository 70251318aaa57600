// Package autoupdate downloads a newer hop release and swaps it in for the
// running executable, asking for elevation only when a target is not
// writable.
package autoupdate

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/creativeprojects/go-selfupdate"

	"github.com/hopinc/hop-cli/internal/release"
)

// ExecutableName is the binary name inside release archives.
const ExecutableName = "hop"

// VersionChecker reports whether a newer release than current exists.
type VersionChecker interface {
	CheckVersion(ctx context.Context, current *release.Version, allowPrerelease bool) (bool, *release.Version, error)
}

// BatchExecutor runs a planned Batch.
type BatchExecutor interface {
	Execute(ctx context.Context, b *Batch) error
}

// Updater wires the update stages together.
type Updater struct {
	Checker  VersionChecker
	Fetcher  *Fetcher
	Strategy Strategy
	Executor BatchExecutor
	Probe    Probe
	Logger   *log.Logger
}

// RunOptions controls a single update.
type RunOptions struct {
	Current         *release.Version
	AllowPrerelease bool
	// Force reinstalls the latest release even when it is not newer.
	Force           bool
	SkipCompletions bool
	// ExePath is the installed binary; resolved from the running process when empty.
	ExePath string
	// Asset overrides the archive base name; defaults to AssetName for this platform.
	Asset string
	// Progress wraps long running stages, e.g. with a spinner.
	Progress func(label string, fn func() error) error
}

// Outcome describes what Run did.
type Outcome struct {
	Updated bool
	Latest  *release.Version
	Planned []Command
}

// ExecutablePath returns the running binary with symlinks resolved.
func ExecutablePath() (string, error) {
	return selfupdate.ExecutablePath()
}

// Run checks for a newer release and installs it.
func (u *Updater) Run(ctx context.Context, opts RunOptions) (*Outcome, error) {
	logger := u.Logger
	if logger == nil {
		logger = log.Default()
	}
	progress := opts.Progress
	if progress == nil {
		progress = func(_ string, fn func() error) error { return fn() }
	}

	exe := opts.ExePath
	if exe == "" {
		p, err := ExecutablePath()
		if err != nil {
			return nil, fmt.Errorf("failed to locate hop executable: %w", err)
		}
		exe = p
	}
	if PackageManager(exe) != "" {
		return nil, fmt.Errorf("%w: run `%s` instead", ErrManaged, UpdateCommand(exe))
	}

	newer, latest, err := u.Checker.CheckVersion(ctx, opts.Current, opts.AllowPrerelease)
	if err != nil {
		return nil, err
	}
	if !newer && !opts.Force {
		return &Outcome{Latest: latest}, nil
	}

	asset := opts.Asset
	if asset == "" {
		asset = AssetName(runtime.GOOS, runtime.GOARCH)
	}

	var archive, newExe string
	err = progress(fmt.Sprintf("Downloading hop %s", latest.Tag()), func() error {
		var err error
		archive, err = u.Fetcher.Download(ctx, latest.Tag(), asset)
		if err != nil {
			return err
		}
		newExe, err = u.Strategy.Extract(archive, ExecutableName)
		return err
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("Unpacked to: " + newExe)

	batch := NewBatch(u.Probe)
	if err := u.Strategy.PlanSwap(batch, exe, newExe); err != nil {
		return nil, err
	}
	if !opts.SkipCompletions {
		if err := u.Strategy.PlanCompletions(batch, exe); err != nil {
			return nil, err
		}
	}

	planned := batch.Commands()
	if err := u.Executor.Execute(ctx, batch); err != nil {
		return nil, err
	}

	return &Outcome{Updated: true, Latest: latest, Planned: planned}, nil
}
