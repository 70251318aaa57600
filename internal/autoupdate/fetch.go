package autoupdate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// AssetName returns the release asset base name for a platform, e.g.
// hop-x86_64-linux or hop-aarch64-darwin.
func AssetName(goos, goarch string) string {
	arch := goarch
	switch goarch {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "aarch64"
	case "386":
		arch = "i686"
	}
	return fmt.Sprintf("hop-%s-%s", arch, goos)
}

// Fetcher downloads release archives.
type Fetcher struct {
	Client  *http.Client
	BaseURL string
	// Ext is the archive extension, normally Strategy.Ext().
	Ext     string
	TempDir string
	Token   string
	Logger  *log.Logger
}

// URL returns {BaseURL}/{version}/{filename}.{Ext}.
func (f *Fetcher) URL(version, filename string) string {
	return fmt.Sprintf("%s/%s/%s.%s", strings.TrimRight(f.BaseURL, "/"), version, filename, f.Ext)
}

// Download fetches the archive for version and stores it as
// <TempDir>/<filename>, replacing any file left by an earlier run.
func (f *Fetcher) Download(ctx context.Context, version, filename string) (string, error) {
	logger := f.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Infof("Downloading %s@%s", filename, version)

	url := f.URL(version, filename)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &DownloadError{URL: url, Err: err}
	}
	if f.Token != "" {
		req.Header.Set("Authorization", "Bearer "+f.Token)
	}

	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Minute}
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", &DownloadError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &DownloadError{URL: url, Status: resp.StatusCode}
	}

	tempDir := f.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	dest := filepath.Join(tempDir, filename)
	logger.Debug("Downloading to: " + dest)

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", &IoError{Op: "create", Path: dest, Err: err}
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return "", &DownloadError{URL: url, Err: err}
	}
	if err := out.Close(); err != nil {
		return "", &IoError{Op: "write", Path: dest, Err: err}
	}
	return dest, nil
}
