package sentry

import (
	"errors"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
)

func TestInitWithoutDSNDisablesReporting(t *testing.T) {
	assert.NoError(t, Init(Config{}))
	assert.False(t, Enabled())
	assert.Nil(t, CaptureError(errors.New("boom"), nil))
	assert.True(t, Flush(0))
}

func TestFiltered(t *testing.T) {
	patterns := []string{"context canceled"}

	assert.True(t, filtered(&sentry.Event{Message: "update: context canceled"}, patterns))
	assert.True(t, filtered(&sentry.Event{Exception: []sentry.Exception{{Value: "context canceled"}}}, patterns))
	assert.False(t, filtered(&sentry.Event{Message: "exit code 1"}, patterns))
}

func TestReleaseAndEnvironment(t *testing.T) {
	assert.Equal(t, "hop@1.3.0", Release("v1.3.0"))
	assert.Equal(t, "dev", Environment(true))
	assert.Equal(t, "production", Environment(false))
}

func TestCapturePanicRepanics(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		defer CapturePanic(nil)
		panic("boom")
	})
}
