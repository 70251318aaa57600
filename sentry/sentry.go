// Package sentry reports hop failures when a DSN is compiled into the build.
package sentry

import (
	"fmt"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
)

// Level is a Sentry severity level.
type Level = sentry.Level

const (
	LevelDebug   = sentry.LevelDebug
	LevelInfo    = sentry.LevelInfo
	LevelWarning = sentry.LevelWarning
	LevelError   = sentry.LevelError
	LevelFatal   = sentry.LevelFatal
)

// Config holds Sentry client settings.
type Config struct {
	DSN         string
	Environment string
	Release     string
	Debug       bool
	SampleRate  float64
	// FilteredErrors drops events whose message contains any of these.
	FilteredErrors []string
	// Tags are set on every event.
	Tags map[string]string
}

var enabled bool

// Init starts the Sentry client. An empty DSN disables reporting.
func Init(cfg Config) error {
	if cfg.DSN == "" {
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		Debug:            cfg.Debug,
		AttachStacktrace: true,
		SampleRate:       cfg.SampleRate,
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			if filtered(event, cfg.FilteredErrors) {
				return nil
			}
			return event
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize Sentry: %w", err)
	}
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTags(cfg.Tags)
	})
	enabled = true
	return nil
}

// Enabled reports whether Init configured a client.
func Enabled() bool { return enabled }

func filtered(event *sentry.Event, patterns []string) bool {
	for _, p := range patterns {
		if event.Message != "" && strings.Contains(event.Message, p) {
			return true
		}
		for _, ex := range event.Exception {
			if strings.Contains(ex.Value, p) {
				return true
			}
		}
	}
	return false
}

// Release returns the release name reported for a build version.
func Release(version string) string {
	return "hop@" + strings.TrimPrefix(version, "v")
}

// Environment returns "dev" for development builds and "production" otherwise.
func Environment(dev bool) string {
	if dev {
		return "dev"
	}
	return "production"
}

// Flush waits up to timeout for buffered events.
func Flush(timeout time.Duration) bool {
	if !enabled {
		return true
	}
	return sentry.Flush(timeout)
}

// EventOptions adds context to a captured event.
type EventOptions struct {
	Tags  map[string]string
	Extra map[string]any
	Level Level
}

func (o *EventOptions) apply(scope *sentry.Scope) {
	if o == nil {
		return
	}
	for k, v := range o.Tags {
		scope.SetTag(k, v)
	}
	for k, v := range o.Extra {
		scope.SetExtra(k, v)
	}
	if o.Level != "" {
		scope.SetLevel(o.Level)
	}
}

// CaptureError reports err and returns the event ID, or nil when nothing
// was sent.
func CaptureError(err error, opts *EventOptions) *sentry.EventID {
	if err == nil || !enabled {
		return nil
	}

	var id *sentry.EventID
	sentry.WithScope(func(scope *sentry.Scope) {
		opts.apply(scope)
		id = sentry.CaptureException(err)
	})
	return id
}

// CapturePanic must be deferred. It reports a panic, flushes and re-panics.
func CapturePanic(opts *EventOptions) {
	r := recover()
	if r == nil {
		return
	}
	if enabled {
		sentry.WithScope(func(scope *sentry.Scope) {
			opts.apply(scope)
			scope.SetLevel(sentry.LevelFatal)
			sentry.CurrentHub().Recover(r)
		})
		sentry.Flush(5 * time.Second)
	}
	panic(r)
}
