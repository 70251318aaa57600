package cmd

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hopinc/hop-cli/internal/autoupdate"
	"github.com/hopinc/hop-cli/internal/release"
	"github.com/hopinc/hop-cli/internal/store"
	"github.com/hopinc/hop-cli/internal/updatecheck"
	"github.com/hopinc/hop-cli/internal/version"
)

const noticeTimeout = 5 * time.Second

// versionNotice warns when a newer release exists. It never fails the
// command it runs in front of.
func versionNotice(cmd *cobra.Command) {
	if shouldSkipUpdateCheck(cmd) || settings.NoUpdateCheck || updatecheck.SkipBuild(version.BuildVersion) {
		return
	}

	current, err := release.ParseVersion(version.BuildVersion)
	if err != nil {
		return
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, noticeTimeout)
	defer cancel()

	client := release.NewClient(
		release.WithURL(settings.ReleaseURL),
		release.WithToken(settings.GitHubToken),
		release.WithLogger(logger),
	)
	exe, _ := autoupdate.ExecutablePath()

	n := &notifier{
		scheduler:     updatecheck.New(client, logger),
		contextPath:   settings.ContextPath,
		updateCommand: autoupdate.UpdateCommand(exe),
		logger:        logger,
	}
	n.run(ctx, current)
}

type notifier struct {
	scheduler     *updatecheck.Scheduler
	contextPath   string
	updateCommand string
	logger        *log.Logger
}

func (n *notifier) run(ctx context.Context, current *release.Version) updatecheck.Result {
	state, err := store.Load(n.contextPath)
	if err != nil {
		n.logger.Debug("skipping update check", "err", err)
		return updatecheck.Result{}
	}

	before := state.VersionCheck()
	res, after := n.scheduler.Check(ctx, current, before)

	if updatecheck.Changed(before, after) {
		state.SetVersionCheck(after)
		if err := state.Save(); err != nil {
			n.logger.Warn("failed to save update check", "err", err)
		}
	}

	if res.Available {
		n.logger.Warnf("A new version is available: %s", res.Candidate)
		n.logger.Warnf("Use `%s` to update", n.updateCommand)
	}
	return res
}
