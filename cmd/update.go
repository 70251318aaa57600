package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/hopinc/hop-cli/internal/autoupdate"
	"github.com/hopinc/hop-cli/internal/release"
	"github.com/hopinc/hop-cli/internal/updatecheck"
	"github.com/hopinc/hop-cli/internal/version"
	"github.com/hopinc/hop-cli/tui"
	helpmenus "github.com/hopinc/hop-cli/tui/help-menus"
)

const (
	updateTimeout  = 5 * time.Minute
	releasePageURL = "https://github.com/hopinc/hop_cli/releases/latest"
)

var errDevBuild = errors.New("refusing to update a development build, pass --force to install the latest release anyway")

type updateOptions struct {
	beta            bool
	force           bool
	check           bool
	skipCompletions bool
	output          string
}

var updateOpts updateOptions

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update hop to the latest version",
	Annotations: map[string]string{
		skipUpdateCheckAnnotation: "true",
	},
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runUpdateCommand(cmd.Context(), cmd.OutOrStdout(), updateOpts); err != nil {
			if !errors.Is(err, autoupdate.ErrManaged) {
				fmt.Fprintln(os.Stderr, tui.RenderUpdateFailed(err, releasePageURL))
			}
			CaptureCommandError(cmd, err)
			os.Exit(exitCode(err))
		}
	},
}

func init() {
	updateCmd.Flags().BoolVar(&updateOpts.beta, "beta", false, "Include prereleases")
	updateCmd.Flags().BoolVar(&updateOpts.force, "force", false, "Reinstall even when already up-to-date")
	updateCmd.Flags().BoolVar(&updateOpts.check, "check", false, "Only report whether an update is available")
	updateCmd.Flags().StringVarP(&updateOpts.output, "output", "o", "text", "Output format for --check (text, json, yaml)")
	updateCmd.Flags().BoolVar(&updateOpts.skipCompletions, "skip-completions", false, "Do not reinstall shell completions")

	updateCmd.SetHelpFunc(helpmenus.HelpFunc(helpmenus.UpdatePage))
	WrapCommandWithSentry(updateCmd)

	rootCmd.AddCommand(updateCmd)
}

func runUpdateCommand(parent context.Context, out io.Writer, opts updateOptions) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, updateTimeout)
	defer cancel()
	ctx, interrupt := context.WithCancel(ctx)
	defer interrupt()

	exe, err := autoupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("failed to locate hop executable: %w", err)
	}

	client := release.NewClient(
		release.WithURL(settings.ReleaseURL),
		release.WithToken(settings.GitHubToken),
		release.WithLogger(logger),
	)
	strategy := autoupdate.Detect()

	executor := autoupdate.NewExecutor(strategy.Shell(), logger)
	executor.BeforeElevate = func(scripts []string) {
		fmt.Fprintln(os.Stderr, tui.RenderElevationPlan(scripts))
	}

	r := &updateRun{
		build:   version.BuildVersion,
		exe:     exe,
		checker: client,
		updater: &autoupdate.Updater{
			Checker: client,
			Fetcher: &autoupdate.Fetcher{
				BaseURL: settings.DownloadURL,
				Ext:     strategy.Ext(),
				TempDir: os.TempDir(),
				Token:   settings.GitHubToken,
				Logger:  logger,
			},
			Strategy: strategy,
			Executor: executor,
			Logger:   logger,
		},
		out:      out,
		progress: progressFor(os.Stdout, interrupt),
	}
	return r.run(ctx, opts)
}

// progressFor shows a spinner on terminals and plain log lines elsewhere.
// Interrupting the spinner calls cancel.
func progressFor(f *os.File, cancel context.CancelFunc) func(string, func() error) error {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return func(label string, fn func() error) error {
			return tui.RunUpdateProgress(label, cancel, fn)
		}
	}
	return func(label string, fn func() error) error {
		logger.Info(label)
		return fn()
	}
}

// exitCode is the process status for a failed update. A failed command batch
// passes on its shell's exit status.
func exitCode(err error) int {
	var execErr *autoupdate.ExecutionError
	if errors.As(err, &execErr) && execErr.ExitCode > 0 {
		return execErr.ExitCode
	}
	return 1
}

type updateRun struct {
	build    string
	exe      string
	checker  autoupdate.VersionChecker
	updater  *autoupdate.Updater
	out      io.Writer
	progress func(string, func() error) error
}

func (r *updateRun) run(ctx context.Context, opts updateOptions) error {
	format, err := ParseFormat(opts.output)
	if err != nil {
		return err
	}

	current, err := r.currentVersion(opts)
	if err != nil {
		return err
	}

	if opts.check {
		return r.report(ctx, current, opts.beta, format)
	}

	outcome, err := r.updater.Run(ctx, autoupdate.RunOptions{
		Current:         current,
		AllowPrerelease: opts.beta,
		Force:           opts.force,
		SkipCompletions: opts.skipCompletions,
		ExePath:         r.exe,
		Progress:        r.progress,
	})
	if errors.Is(err, autoupdate.ErrManaged) {
		fmt.Fprintln(r.out, tui.RenderManaged(autoupdate.PackageManager(r.exe), autoupdate.UpdateCommand(r.exe)))
		return err
	}
	if err != nil {
		return err
	}

	if !outcome.Updated {
		fmt.Fprintln(r.out, tui.RenderUpToDate(current.String()))
		return nil
	}
	fmt.Fprintln(r.out, tui.RenderUpdateSuccess(outcome.Latest.String()))
	return nil
}

// currentVersion parses the running build. Development builds compare as
// 0.0.0 so any release counts as newer.
func (r *updateRun) currentVersion(opts updateOptions) (*release.Version, error) {
	if updatecheck.SkipBuild(r.build) {
		if !opts.force && !opts.check {
			return nil, errDevBuild
		}
		return &release.Version{}, nil
	}
	return release.ParseVersion(r.build)
}

func (r *updateRun) report(ctx context.Context, current *release.Version, beta bool, format Format) error {
	newer, latest, err := r.checker.CheckVersion(ctx, current, beta)
	if err != nil {
		return err
	}

	rep := Report{
		Current:         r.build,
		Latest:          latest.String(),
		UpdateAvailable: newer,
	}
	if newer {
		rep.UpdateCommand = autoupdate.UpdateCommand(r.exe)
	}
	return NewWriter(r.out, format).Write(rep)
}
