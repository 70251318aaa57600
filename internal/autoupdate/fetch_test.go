package autoupdate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetName(t *testing.T) {
	assert.Equal(t, "hop-x86_64-linux", AssetName("linux", "amd64"))
	assert.Equal(t, "hop-aarch64-darwin", AssetName("darwin", "arm64"))
	assert.Equal(t, "hop-x86_64-windows", AssetName("windows", "amd64"))
	assert.Equal(t, "hop-riscv64-linux", AssetName("linux", "riscv64"))
}

func TestFetcherURL(t *testing.T) {
	f := &Fetcher{BaseURL: "https://github.com/hopinc/hop_cli/releases/download/", Ext: "tar.gz"}
	assert.Equal(t,
		"https://github.com/hopinc/hop_cli/releases/download/v1.3.0/hop-x86_64-linux.tar.gz",
		f.URL("v1.3.0", "hop-x86_64-linux"),
	)
}

func TestDownloadWritesArchive(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("fresh"))
	}))
	defer srv.Close()

	tmp := t.TempDir()
	dest := filepath.Join(tmp, "hop-x86_64-linux")
	require.NoError(t, os.WriteFile(dest, []byte("a much longer stale archive"), 0o644))

	f := &Fetcher{Client: srv.Client(), BaseURL: srv.URL, Ext: "tar.gz", TempDir: tmp}
	path, err := f.Download(context.Background(), "v1.3.0", "hop-x86_64-linux")
	require.NoError(t, err)

	assert.Equal(t, "/v1.3.0/hop-x86_64-linux.tar.gz", gotPath)
	assert.Equal(t, dest, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))
}

func TestDownloadFailsOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	tmp := t.TempDir()
	f := &Fetcher{Client: srv.Client(), BaseURL: srv.URL, Ext: "zip", TempDir: tmp}
	_, err := f.Download(context.Background(), "v9.9.9", "hop-x86_64-windows")

	var dlErr *DownloadError
	require.True(t, errors.As(err, &dlErr))
	assert.Equal(t, http.StatusNotFound, dlErr.Status)
	assert.NoFileExists(t, filepath.Join(tmp, "hop-x86_64-windows"))
}
