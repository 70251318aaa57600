// Package tui renders hop's terminal output.
package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/hopinc/hop-cli/tui/theme"
)

var (
	helpStyle    lipgloss.Style
	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
	successStyle lipgloss.Style
	primaryStyle lipgloss.Style
	titleStyle   lipgloss.Style
	labelStyle   lipgloss.Style
	subtleStyle  lipgloss.Style
	boxStyle     lipgloss.Style
)

// InitStyles prepares every style for out.
func InitStyles(out io.Writer) {
	theme.Init(out)

	helpStyle = theme.Neutral().Italic(true)
	errorStyle = theme.Error()
	warningStyle = theme.Warning()
	successStyle = theme.Success()
	primaryStyle = theme.Primary()
	titleStyle = primaryStyle.Bold(true)
	labelStyle = theme.Label()
	subtleStyle = theme.Neutral()
	boxStyle = warningStyle.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.WarningColor)).
		Padding(1, 2)
}

func RenderWarning(message string) string {
	if message == "" {
		return ""
	}
	return warningStyle.Render("⚠ " + message)
}

func RenderSuccess(message string) string {
	if message == "" {
		return ""
	}
	return successStyle.Render("✓ " + message)
}

func RenderError(err error) string {
	if err == nil {
		return ""
	}
	return errorStyle.Render("✗ Error: " + err.Error())
}

func NewPrimarySpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = primaryStyle
	return s
}
