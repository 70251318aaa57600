package autoupdate

import (
	"archive/tar"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type archiveEntry struct {
	name string
	body string
	dir  bool
}

func writeTarGz(t *testing.T, path string, entries ...archiveEntry) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)
	for _, e := range entries {
		hdr := &tar.Header{Name: e.name, Mode: 0o755, Size: int64(len(e.body)), Typeflag: tar.TypeReg}
		if e.dir {
			hdr = &tar.Header{Name: e.name, Mode: 0o755, Typeflag: tar.TypeDir}
		}
		require.NoError(t, tw.WriteHeader(hdr))
		if !e.dir {
			_, err := tw.Write([]byte(e.body))
			require.NoError(t, err)
		}
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
}

func writeZip(t *testing.T, path string, entries ...archiveEntry) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, e := range entries {
		w, err := zw.Create(e.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(e.body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func TestTarGzExtract(t *testing.T) {
	tmp := t.TempDir()
	archive := filepath.Join(tmp, "hop-x86_64-linux")
	writeTarGz(t, archive, archiveEntry{name: "hop", body: "#!/bin/sh\necho new\n"})

	s := &tarGzStrategy{tempDir: tmp}
	exe, err := s.Extract(archive, "hop")
	require.NoError(t, err)

	assert.Equal(t, "hop", filepath.Base(exe))
	assert.Equal(t, filepath.Join(tmp, extractDirName, "hop"), exe)
	data, err := os.ReadFile(exe)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\necho new\n", string(data))
}

func TestTarGzExtractClearsStaleFiles(t *testing.T) {
	tmp := t.TempDir()
	stale := filepath.Join(tmp, extractDirName, "leftover")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	archive := filepath.Join(tmp, "archive")
	writeTarGz(t, archive, archiveEntry{name: "hop", body: "new"})

	_, err := (&tarGzStrategy{tempDir: tmp}).Extract(archive, "hop")
	require.NoError(t, err)

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale file should be removed")
}

func TestTarGzExtractNestedAndMissing(t *testing.T) {
	tmp := t.TempDir()
	archive := filepath.Join(tmp, "archive")
	writeTarGz(t, archive,
		archiveEntry{name: "docs/", dir: true},
		archiveEntry{name: "docs/README", body: "readme"},
	)

	_, err := (&tarGzStrategy{tempDir: tmp}).Extract(archive, "hop")
	require.Error(t, err)

	var ioErr *IoError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "locate", ioErr.Op)
	assert.FileExists(t, filepath.Join(tmp, extractDirName, "docs", "README"))
}

func TestTarGzExtractRejectsTraversal(t *testing.T) {
	tmp := t.TempDir()
	archive := filepath.Join(tmp, "archive")
	writeTarGz(t, archive, archiveEntry{name: "../escape", body: "x"})

	_, err := (&tarGzStrategy{tempDir: tmp}).Extract(archive, "hop")
	require.Error(t, err)
	_, statErr := os.Stat(filepath.Join(tmp, "escape"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestTarGzExtractNotGzip(t *testing.T) {
	tmp := t.TempDir()
	archive := filepath.Join(tmp, "archive")
	require.NoError(t, os.WriteFile(archive, []byte("<html>not found</html>"), 0o644))

	_, err := (&tarGzStrategy{tempDir: tmp}).Extract(archive, "hop")
	var ioErr *IoError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "decompress", ioErr.Op)
}

func TestZipExtract(t *testing.T) {
	tmp := t.TempDir()
	archive := filepath.Join(tmp, "hop-x86_64-windows")
	writeZip(t, archive, archiveEntry{name: "hop.exe", body: "MZ-new"})

	// stale output from a previous run is overwritten
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "hop.exe"), []byte("MZ-old-and-longer"), 0o644))

	exe, err := (&zipStrategy{tempDir: tmp}).Extract(archive, "hop")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "hop.exe"), exe)

	data, err := os.ReadFile(exe)
	require.NoError(t, err)
	assert.Equal(t, "MZ-new", string(data))
}

func TestZipExtractEmpty(t *testing.T) {
	tmp := t.TempDir()
	archive := filepath.Join(tmp, "empty.zip")
	writeZip(t, archive)

	_, err := (&zipStrategy{tempDir: tmp}).Extract(archive, "hop")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyArchive))
}

func TestStrategyFor(t *testing.T) {
	win := strategyFor("windows", `C:\Temp`)
	assert.Equal(t, "zip", win.Ext())
	assert.Equal(t, cmdShell, win.Shell())

	linux := strategyFor("linux", "/tmp")
	assert.Equal(t, "tar.gz", linux.Ext())
	assert.True(t, linux.(*tarGzStrategy).completions)

	mac := strategyFor("darwin", "/tmp")
	assert.Equal(t, "tar.gz", mac.Ext())
	assert.Equal(t, posixShell, mac.Shell())
	assert.False(t, mac.(*tarGzStrategy).completions)
}
