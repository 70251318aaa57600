package helpmenus

import (
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/hopinc/hop-cli/tui/theme"
)

var (
	initOnce     sync.Once
	headerStyle  lipgloss.Style
	sectionStyle lipgloss.Style
	commandStyle lipgloss.Style
	descStyle    lipgloss.Style
	flagStyle    lipgloss.Style
	exampleStyle lipgloss.Style
)

const (
	flagColor    = "#FF8B3E"
	descColor    = "#F2F2F2"
	exampleColor = "#BCBCBC"
)

func initStyles(out io.Writer) {
	theme.Init(out)

	initOnce.Do(func() {
		r := theme.Renderer()

		headerStyle = theme.Primary().Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.PrimaryColor)).
			Width(77).
			Align(lipgloss.Center).
			Padding(1, 0)
		sectionStyle = theme.Label().MarginTop(1)
		commandStyle = theme.Primary().Bold(true)
		descStyle = r.NewStyle().Foreground(lipgloss.Color(descColor))
		flagStyle = r.NewStyle().Foreground(lipgloss.Color(flagColor)).Bold(true).Width(22)
		exampleStyle = r.NewStyle().Foreground(lipgloss.Color(exampleColor)).Italic(true)
	})
}
