package autoupdate

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWritableCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe")

	assert.True(t, IsWritable(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())

	// exclusive create fails once the file exists
	assert.False(t, IsWritable(path))
}

func TestIsWritableReadOnlyDir(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	assert.False(t, IsWritable(filepath.Join(dir, "hop")))
}

func TestPackageManager(t *testing.T) {
	cases := []struct{ exe, want string }{
		{"/opt/homebrew/bin/hop", "homebrew"},
		{"/usr/local/Cellar/hop/0.2.51/bin/hop", "homebrew"},
		{`C:\Users\me\scoop\apps\hop\current\hop.exe`, "scoop"},
		{`C:\Program Files\WindowsApps\hop\hop.exe`, "winget"},
		{"/usr/local/bin/hop", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, PackageManager(c.exe), c.exe)
	}
	assert.Equal(t, "brew upgrade hop", UpdateCommand("/opt/homebrew/bin/hop"))
	assert.Equal(t, "hop update", UpdateCommand("/usr/local/bin/hop"))
}
