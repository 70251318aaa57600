// Package updatecheck decides when to look for a newer release and whether the
// running build is behind. It never downloads or installs anything.
package updatecheck

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/hopinc/hop-cli/internal/release"
)

// Interval is how long a recorded check stays fresh.
const Interval = time.Hour

// CacheState is the persisted outcome of the last live check.
type CacheState struct {
	LastChecked   time.Time
	LatestVersion string
}

// IsZero reports whether no check has been recorded.
func (c CacheState) IsZero() bool {
	return c.LastChecked.IsZero() && c.LatestVersion == ""
}

// Changed reports whether after differs from before and should be persisted.
func Changed(before, after CacheState) bool {
	return !before.LastChecked.Equal(after.LastChecked) || before.LatestVersion != after.LatestVersion
}

// LatestFunc returns the newest stable release version.
type LatestFunc func(ctx context.Context) (*release.Version, error)

// Result describes the outcome of a check.
type Result struct {
	Available bool
	Candidate *release.Version
	FromCache bool
	Checked   bool
	// Err holds a failed live lookup. It is informational only.
	Err error
}

// Scheduler runs cached or live checks against the release feed.
type Scheduler struct {
	Fetch    LatestFunc
	Now      func() time.Time
	Interval time.Duration
	Logger   *log.Logger
}

// New returns a Scheduler that asks client for stable releases only.
func New(client *release.Client, logger *log.Logger) *Scheduler {
	return &Scheduler{
		Fetch: func(ctx context.Context) (*release.Version, error) {
			return client.Latest(ctx, false)
		},
		Logger: logger,
	}
}

// SkipBuild reports whether a build version should never be checked, e.g.
// local development builds.
func SkipBuild(build string) bool {
	build = strings.TrimSpace(build)
	if build == "" || strings.EqualFold(build, "dev") {
		return true
	}
	_, err := release.ParseVersion(build)
	return err != nil
}

// Check compares current against the cached latest version while the cache is
// fresh, and against the release feed otherwise. The returned CacheState is
// what the caller should persist.
func (s *Scheduler) Check(ctx context.Context, current *release.Version, cache CacheState) (Result, CacheState) {
	now := s.now()

	if !cache.LastChecked.IsZero() && now.Sub(cache.LastChecked) <= s.interval() {
		cached, err := release.ParseVersion(cache.LatestVersion)
		if err == nil {
			return Result{
				Available: cached.IsNewerThan(current),
				Candidate: cached,
				FromCache: true,
			}, cache
		}
		s.logger().Debug("ignoring cached version", "version", cache.LatestVersion, "err", err)
	}

	latest, err := s.Fetch(ctx)
	if err != nil {
		s.logger().Debug("update check failed", "err", err)
		// record the attempt so a failing feed is not hit again within the interval
		return Result{Checked: true, Err: err}, CacheState{
			LastChecked:   now,
			LatestVersion: current.String(),
		}
	}

	return Result{
			Available: latest.IsNewerThan(current),
			Candidate: latest,
			Checked:   true,
		}, CacheState{
			LastChecked:   now,
			LatestVersion: latest.String(),
		}
}

func (s *Scheduler) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Scheduler) interval() time.Duration {
	if s.Interval > 0 {
		return s.Interval
	}
	return Interval
}

func (s *Scheduler) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.Default()
}
