// Package release reads the published release feed and models release versions.
package release

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// DefaultFeedURL lists every published release, newest first.
	DefaultFeedURL = "https://api.github.com/repos/hopinc/hop_cli/releases"

	// DefaultDownloadURL is the base for release archive downloads.
	DefaultDownloadURL = "https://github.com/hopinc/hop_cli/releases/download"
)

// Release is a single feed entry.
type Release struct {
	TagName    string `json:"tag_name"`
	Name       string `json:"name,omitempty"`
	HTMLURL    string `json:"html_url,omitempty"`
	Prerelease bool   `json:"prerelease"`
	Draft      bool   `json:"draft"`
}

// Eligible reports whether r may be installed.
func (r Release) Eligible(allowPrerelease bool) bool {
	return !r.Draft && (allowPrerelease || !r.Prerelease)
}

// Client fetches the release feed.
type Client struct {
	url    string
	token  string
	client *http.Client
	logger *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithURL overrides the feed URL (used by tests and HOP_RELEASE_URL).
func WithURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.url = url
		}
	}
}

// WithToken sets an optional GitHub token to raise API rate limits.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a feed client pointed at DefaultFeedURL.
func NewClient(opts ...Option) *Client {
	c := &Client{
		url:    DefaultFeedURL,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchReleases returns the feed entries in the order served.
func (c *Client) FetchReleases(ctx context.Context) ([]Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &NetworkError{URL: c.url, Err: err}
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("fetching release feed", "url", c.url)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{URL: c.url, Status: resp.StatusCode}
	}

	var releases []Release
	if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
		return nil, &NetworkError{URL: c.url, Err: fmt.Errorf("failed to parse release feed: %w", err)}
	}

	return releases, nil
}

// SelectLatest returns the version of the first eligible entry. The feed is
// served newest first, so the first match is taken rather than the maximum.
func SelectLatest(releases []Release, allowPrerelease bool) (*Version, error) {
	for _, r := range releases {
		if !r.Eligible(allowPrerelease) {
			continue
		}
		return ParseVersion(r.TagName)
	}
	if allowPrerelease {
		return nil, fmt.Errorf("%w: no prerelease found", ErrNotFound)
	}
	return nil, ErrNotFound
}

// Latest fetches the feed and selects the newest eligible version.
func (c *Client) Latest(ctx context.Context, allowPrerelease bool) (*Version, error) {
	releases, err := c.FetchReleases(ctx)
	if err != nil {
		return nil, err
	}
	return SelectLatest(releases, allowPrerelease)
}

// CheckVersion reports whether the feed holds a version newer than current.
// The latest eligible version is returned either way.
func (c *Client) CheckVersion(ctx context.Context, current *Version, allowPrerelease bool) (bool, *Version, error) {
	latest, err := c.Latest(ctx, allowPrerelease)
	if err != nil {
		return false, nil, err
	}
	return latest.IsNewerThan(current), latest, nil
}
