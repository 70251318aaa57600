// Package testutils isolates tests from the user's home directory and
// HOP_* environment.
package testutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// HopEnv lists every environment variable hop reads.
var HopEnv = []string{
	"HOP_RELEASE_URL",
	"HOP_DOWNLOAD_URL",
	"HOP_CONTEXT_PATH",
	"HOP_NO_UPDATE_CHECK",
	"HOP_LOG_LEVEL",
	"HOP_GITHUB_TOKEN",
	"GITHUB_TOKEN",
}

type TestEnvironment struct {
	HomeDir     string
	HopDir      string
	ContextFile string
	ConfigFile  string
}

// SetupTestEnvironment points HOME at a fresh temp dir holding an empty
// ~/.hop and clears HopEnv for the duration of the test.
func SetupTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	home := t.TempDir()
	hopDir := filepath.Join(home, ".hop")
	if err := os.MkdirAll(hopDir, 0o755); err != nil {
		t.Fatalf("Failed to create hop directory: %v", err)
	}

	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	ClearEnv(t)

	return &TestEnvironment{
		HomeDir:     home,
		HopDir:      hopDir,
		ContextFile: filepath.Join(hopDir, "context.json"),
		ConfigFile:  filepath.Join(hopDir, "config.yaml"),
	}
}

// ClearEnv unsets HopEnv, restoring the old values when t ends.
func ClearEnv(t *testing.T) {
	t.Helper()
	for _, key := range HopEnv {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// WriteContext writes fields as the context file.
func (e *TestEnvironment) WriteContext(t *testing.T, fields map[string]any) {
	t.Helper()
	data, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal context: %v", err)
	}
	if err := os.WriteFile(e.ContextFile, data, 0o644); err != nil {
		t.Fatalf("Failed to write context: %v", err)
	}
}

// WriteConfig writes body as ~/.hop/config.yaml.
func (e *TestEnvironment) WriteConfig(t *testing.T, body string) {
	t.Helper()
	if err := os.WriteFile(e.ConfigFile, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}
