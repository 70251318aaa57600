// Package store reads and writes the on-disk context file shared by hop
// commands. Only the update check entry is interpreted here; every other
// field is carried through untouched.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hopinc/hop-cli/internal/updatecheck"
)

const (
	contextDir  = ".hop"
	contextFile = "context.json"

	lastVersionCheckKey = "last_version_check"
)

// DefaultPath returns ~/.hop/context.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, contextDir, contextFile), nil
}

// Context is the decoded context file.
type Context struct {
	path   string
	fields map[string]json.RawMessage
}

// Load reads the context file at path. A missing file yields an empty Context.
func Load(path string) (*Context, error) {
	c := &Context{path: path, fields: map[string]json.RawMessage{}}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read context: %w", err)
	}
	if len(data) == 0 {
		return c, nil
	}
	if err := json.Unmarshal(data, &c.fields); err != nil {
		return nil, fmt.Errorf("failed to parse context %s: %w", path, err)
	}
	if c.fields == nil {
		c.fields = map[string]json.RawMessage{}
	}
	return c, nil
}

// Path returns the file the Context was loaded from.
func (c *Context) Path() string { return c.path }

// VersionCheck returns the recorded update check. A missing or malformed entry
// yields the zero CacheState, which forces a live check.
func (c *Context) VersionCheck() updatecheck.CacheState {
	raw, ok := c.fields[lastVersionCheckKey]
	if !ok {
		return updatecheck.CacheState{}
	}

	var pair []string
	if err := json.Unmarshal(raw, &pair); err != nil || len(pair) != 2 {
		return updatecheck.CacheState{}
	}
	secs, err := strconv.ParseInt(pair[0], 10, 64)
	if err != nil {
		return updatecheck.CacheState{}
	}

	return updatecheck.CacheState{
		LastChecked:   time.Unix(secs, 0),
		LatestVersion: pair[1],
	}
}

// SetVersionCheck records cs as ["<unix seconds>", "<version>"].
func (c *Context) SetVersionCheck(cs updatecheck.CacheState) {
	pair := [2]string{strconv.FormatInt(cs.LastChecked.Unix(), 10), cs.LatestVersion}
	raw, _ := json.Marshal(pair)
	c.fields[lastVersionCheckKey] = raw
}

// Save writes the context back to its path, creating the directory if needed.
func (c *Context) Save() error {
	if c.path == "" {
		return errors.New("context has no path")
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed to create context directory: %w", err)
	}

	data, err := json.MarshalIndent(c.fields, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode context: %w", err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write context: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write context: %w", err)
	}
	return nil
}
