// Package theme holds hop's terminal palette.
package theme

import (
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

const (
	PrimaryColor = "#6E56CF"
	NeutralColor = "#8B8D98"
	LabelColor   = "#EDEEF0"
	SuccessColor = "#30A46C"
	ErrorColor   = "#E5484D"
	WarningColor = "#F5A524"
)

var (
	once         sync.Once
	renderer     *lipgloss.Renderer
	primaryStyle lipgloss.Style
	neutralStyle lipgloss.Style
	labelStyle   lipgloss.Style
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
)

// Init builds the styles for out. Only the first call has an effect.
func Init(out io.Writer) {
	once.Do(func() {
		renderer = lipgloss.NewRenderer(out)
		primaryStyle = renderer.NewStyle().Foreground(lipgloss.Color(PrimaryColor))
		neutralStyle = renderer.NewStyle().Foreground(lipgloss.Color(NeutralColor))
		labelStyle = renderer.NewStyle().Foreground(lipgloss.Color(LabelColor)).Bold(true)
		successStyle = renderer.NewStyle().Foreground(lipgloss.Color(SuccessColor)).Bold(true)
		errorStyle = renderer.NewStyle().Foreground(lipgloss.Color(ErrorColor)).Bold(true)
		warningStyle = renderer.NewStyle().Foreground(lipgloss.Color(WarningColor)).Bold(true)
	})
}

func Renderer() *lipgloss.Renderer { return renderer }

func Primary() lipgloss.Style { return primaryStyle }
func Neutral() lipgloss.Style { return neutralStyle }
func Label() lipgloss.Style   { return labelStyle }
func Success() lipgloss.Style { return successStyle }
func Error() lipgloss.Style   { return errorStyle }
func Warning() lipgloss.Style { return warningStyle }
