package updatecheck

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hopinc/hop-cli/internal/release"
)

var baseTime = time.Unix(1_700_000_000, 0)

func fixedScheduler(now time.Time, fetch LatestFunc) *Scheduler {
	return &Scheduler{
		Fetch: fetch,
		Now:   func() time.Time { return now },
	}
}

func mustFetch(t *testing.T, tag string, calls *int) LatestFunc {
	return func(ctx context.Context) (*release.Version, error) {
		*calls++
		return release.ParseVersion(tag)
	}
}

func TestCheckLiveWhenCacheMissing(t *testing.T) {
	calls := 0
	s := fixedScheduler(baseTime, mustFetch(t, "v1.3.0", &calls))

	res, cache := s.Check(context.Background(), release.MustParseVersion("1.2.0"), CacheState{})

	if calls != 1 {
		t.Fatalf("expected one live fetch, got %d", calls)
	}
	if !res.Available || !res.Checked || res.FromCache {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Candidate.String() != "1.3.0" {
		t.Fatalf("expected candidate 1.3.0, got %s", res.Candidate)
	}
	if !cache.LastChecked.Equal(baseTime) || cache.LatestVersion != "1.3.0" {
		t.Fatalf("unexpected cache: %+v", cache)
	}
}

func TestCheckUsesFreshCache(t *testing.T) {
	s := fixedScheduler(baseTime, func(ctx context.Context) (*release.Version, error) {
		t.Fatal("fetcher should not be called when cache is fresh")
		return nil, nil
	})
	in := CacheState{LastChecked: baseTime.Add(-10 * time.Minute), LatestVersion: "1.5.0"}

	res, out := s.Check(context.Background(), release.MustParseVersion("1.2.0"), in)

	if !res.FromCache || res.Checked {
		t.Fatalf("expected cached result, got %+v", res)
	}
	if !res.Available {
		t.Fatal("expected cached 1.5.0 to be newer than 1.2.0")
	}
	if Changed(in, out) {
		t.Fatalf("cache should be returned unchanged, got %+v", out)
	}
}

func TestCheckExactlyAtIntervalIsFresh(t *testing.T) {
	s := fixedScheduler(baseTime, func(ctx context.Context) (*release.Version, error) {
		t.Fatal("fetcher should not be called at the interval boundary")
		return nil, nil
	})
	in := CacheState{LastChecked: baseTime.Add(-Interval), LatestVersion: "1.2.0"}

	res, _ := s.Check(context.Background(), release.MustParseVersion("1.2.0"), in)
	if !res.FromCache || res.Available {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestCheckStaleCacheGoesLive(t *testing.T) {
	calls := 0
	s := fixedScheduler(baseTime, mustFetch(t, "1.2.0", &calls))
	in := CacheState{LastChecked: baseTime.Add(-2 * time.Hour), LatestVersion: "9.9.9"}

	res, out := s.Check(context.Background(), release.MustParseVersion("1.2.0"), in)

	if calls != 1 {
		t.Fatalf("expected stale cache to trigger a live fetch, got %d calls", calls)
	}
	if res.Available {
		t.Fatal("1.2.0 should not be newer than 1.2.0")
	}
	// a live success is always recorded, even when nothing is newer
	if out.LatestVersion != "1.2.0" || !out.LastChecked.Equal(baseTime) {
		t.Fatalf("unexpected cache: %+v", out)
	}
	if !Changed(in, out) {
		t.Fatal("expected cache to change after a live check")
	}
}

func TestCheckUnparsableCacheGoesLive(t *testing.T) {
	calls := 0
	s := fixedScheduler(baseTime, mustFetch(t, "1.3.0", &calls))
	in := CacheState{LastChecked: baseTime.Add(-time.Minute), LatestVersion: "garbage"}

	res, out := s.Check(context.Background(), release.MustParseVersion("1.2.0"), in)

	if calls != 1 || !res.Checked || !res.Available {
		t.Fatalf("expected a live check, got calls=%d res=%+v", calls, res)
	}
	if out.LatestVersion != "1.3.0" {
		t.Fatalf("unexpected cache: %+v", out)
	}
}

func TestCheckLiveFailureRecordsCurrentVersion(t *testing.T) {
	boom := errors.New("boom")
	s := fixedScheduler(baseTime, func(ctx context.Context) (*release.Version, error) {
		return nil, boom
	})

	res, out := s.Check(context.Background(), release.MustParseVersion("1.2.0"), CacheState{})

	if res.Available || res.Candidate != nil {
		t.Fatalf("expected no update on failure, got %+v", res)
	}
	if !errors.Is(res.Err, boom) {
		t.Fatalf("expected fetch error to be reported, got %v", res.Err)
	}
	if out.LatestVersion != "1.2.0" || !out.LastChecked.Equal(baseTime) {
		t.Fatalf("unexpected cache: %+v", out)
	}
}

func TestCheckThenCachedWithinInterval(t *testing.T) {
	calls := 0
	current := release.MustParseVersion("1.2.0")
	s := fixedScheduler(baseTime, mustFetch(t, "v1.3.0", &calls))

	first, cache := s.Check(context.Background(), current, CacheState{})
	if !first.Available {
		t.Fatal("expected 1.3.0 to be offered")
	}

	s.Now = func() time.Time { return baseTime.Add(30 * time.Minute) }
	second, _ := s.Check(context.Background(), current, cache)

	if calls != 1 {
		t.Fatalf("expected a single network call, got %d", calls)
	}
	if !second.FromCache || !second.Available || second.Candidate.String() != "1.3.0" {
		t.Fatalf("unexpected cached result: %+v", second)
	}
}

func TestSkipBuild(t *testing.T) {
	cases := map[string]bool{
		"":       true,
		"dev":    true,
		"DEV":    true,
		"nope":   true,
		"0.2.51": false,
		"v1.0.0": false,
	}
	for build, want := range cases {
		if got := SkipBuild(build); got != want {
			t.Errorf("SkipBuild(%q) = %v, want %v", build, got, want)
		}
	}
}
