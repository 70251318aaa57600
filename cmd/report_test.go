package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"toml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestReportText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, FormatText).Write(Report{Current: "1.0.0", Latest: "1.0.0"}))
	assert.Equal(t, "hop is up-to-date (1.0.0)\n", buf.String())

	buf.Reset()
	rep := Report{Current: "1.0.0", Latest: "1.2.0", UpdateAvailable: true, UpdateCommand: "scoop update hop"}
	require.NoError(t, NewWriter(&buf, FormatText).Write(rep))
	assert.Contains(t, buf.String(), "1.0.0 → 1.2.0")
	assert.Contains(t, buf.String(), "Run `scoop update hop` to update")
}
