// Package config resolves hop's runtime settings from defaults, an optional
// config file in ~/.hop and HOP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/hopinc/hop-cli/internal/release"
)

const (
	// EnvPrefix is prepended to every environment override.
	EnvPrefix = "HOP"
	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"

	configDirName = ".hop"
	contextFile   = "context.json"
)

// Settings holds every tunable hop reads at startup.
type Settings struct {
	ReleaseURL    string `mapstructure:"release_url"`
	DownloadURL   string `mapstructure:"download_url"`
	ContextPath   string `mapstructure:"context_path"`
	NoUpdateCheck bool   `mapstructure:"no_update_check"`
	LogLevel      string `mapstructure:"log_level"`
	GitHubToken   string `mapstructure:"github_token"`
}

// LoadOptions overrides where configuration is looked up.
type LoadOptions struct {
	// ConfigDir replaces ~/.hop as the config file directory.
	ConfigDir string
}

// Dir returns ~/.hop.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}

// Load resolves Settings. A missing config file is not an error.
func Load(opts LoadOptions) (*Settings, error) {
	dir := opts.ConfigDir
	if dir == "" {
		d, err := Dir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	v := viper.New()

	v.SetDefault("release_url", release.DefaultFeedURL)
	v.SetDefault("download_url", release.DefaultDownloadURL)
	v.SetDefault("context_path", filepath.Join(dir, contextFile))
	v.SetDefault("no_update_check", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("github_token", "")

	v.SetConfigName(ConfigFileName)
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("github_token", "HOP_GITHUB_TOKEN", "GITHUB_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	s.ReleaseURL = strings.TrimRight(s.ReleaseURL, "/")
	s.DownloadURL = strings.TrimRight(s.DownloadURL, "/")
	s.GitHubToken = strings.TrimSpace(s.GitHubToken)

	return &s, nil
}
