package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hopinc/hop-cli/tui"
)

// Format is an output format for machine readable command results.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a --output value.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format: %s", s)
	}
}

// Writer renders values in a Format.
type Writer struct {
	format Format
	w      io.Writer
}

func NewWriter(w io.Writer, format Format) *Writer {
	return &Writer{format: format, w: w}
}

func (w *Writer) Write(v any) error {
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		if s, ok := v.(fmt.Stringer); ok {
			_, err := fmt.Fprintln(w.w, s.String())
			return err
		}
		_, err := fmt.Fprintf(w.w, "%+v\n", v)
		return err
	}
}

// Report is the result of `hop update --check`.
type Report struct {
	Current         string `json:"current" yaml:"current"`
	Latest          string `json:"latest" yaml:"latest"`
	UpdateAvailable bool   `json:"update_available" yaml:"update_available"`
	UpdateCommand   string `json:"update_command,omitempty" yaml:"update_command,omitempty"`
}

func (r Report) String() string {
	if !r.UpdateAvailable {
		return fmt.Sprintf("hop is up-to-date (%s)", r.Current)
	}
	return fmt.Sprintf("%s\nRun `%s` to update", tui.RenderUpdateAvailable(r.Current, r.Latest), r.UpdateCommand)
}
