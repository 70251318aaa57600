package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func RenderUpToDate(version string) string {
	return RenderSuccess(fmt.Sprintf("hop is already up-to-date (%s)", version))
}

func RenderUpdateAvailable(current, latest string) string {
	return fmt.Sprintf("%s %s %s %s",
		warningStyle.Render("⚠ Update available:"),
		titleStyle.Render(current),
		subtleStyle.Render("→"),
		titleStyle.Render(latest))
}

func RenderUpdateSuccess(version string) string {
	return RenderSuccess(fmt.Sprintf("Updated hop to %s", version))
}

// RenderElevationPlan lists the commands that will run with administrator
// rights before the consent prompt appears.
func RenderElevationPlan(scripts []string) string {
	if len(scripts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(labelStyle.Render("The following commands need administrator rights:"))
	for _, s := range scripts {
		b.WriteString("\n  ")
		b.WriteString(subtleStyle.Render(s))
	}
	return b.String()
}

// RenderManaged explains how to update a package manager install.
func RenderManaged(pm, command string) string {
	name := map[string]string{
		"homebrew": "Homebrew",
		"scoop":    "Scoop",
		"winget":   "Windows Package Manager",
	}[pm]
	if name == "" {
		name = "a package manager"
	}
	return boxStyle.Render(fmt.Sprintf(
		"This installation is managed by %s.\nRun: %s", name, titleStyle.Render(command)))
}

func RenderUpdateFailed(err error, releaseURL string) string {
	var b strings.Builder
	b.WriteString(errorStyle.Render(fmt.Sprintf("✗ Update failed: %v", err)))
	if releaseURL != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("You can download the latest version from: " + releaseURL))
	}
	return b.String()
}

// UpdateProgressModel shows a spinner while action runs. Ctrl+C calls cancel
// and waits for action to return.
type UpdateProgressModel struct {
	spinner     spinner.Model
	message     string
	quitting    bool
	done        bool
	interrupted bool
	err         error
	action      func() error
	cancel      context.CancelFunc
}

type updateDoneMsg struct {
	err error
}

var errInterrupted = errors.New("update interrupted")

func runUpdateAction(action func() error) tea.Cmd {
	return func() tea.Msg {
		return updateDoneMsg{err: action()}
	}
}

// NewUpdateProgressModel returns the spinner model. cancel may be nil, in
// which case ctrl+c quits without waiting for action.
func NewUpdateProgressModel(message string, cancel context.CancelFunc, action func() error) UpdateProgressModel {
	return UpdateProgressModel{
		spinner: NewPrimarySpinner(),
		message: message,
		action:  action,
		cancel:  cancel,
	}
}

func (m UpdateProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, runUpdateAction(m.action))
}

func (m UpdateProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case updateDoneMsg:
		m.done = true
		m.quitting = true
		m.err = msg.err
		if m.interrupted {
			m.err = errInterrupted
		}
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" && !m.interrupted {
			m.interrupted = true
			if m.cancel == nil {
				m.quitting = true
				m.err = errInterrupted
				return m, tea.Quit
			}
			m.cancel()
			return m, nil
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m UpdateProgressModel) View() string {
	if m.quitting || m.done {
		return ""
	}
	if m.interrupted {
		return fmt.Sprintf("%s %s\n", m.spinner.View(), subtleStyle.Render("Cancelling..."))
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), labelStyle.Bold(false).Render(m.message))
}

// RunUpdateProgress runs action behind a spinner and returns its error.
// Interrupting calls cancel, which action is expected to observe.
func RunUpdateProgress(message string, cancel context.CancelFunc, action func() error) error {
	p := tea.NewProgram(NewUpdateProgressModel(message, cancel, action))
	ignoreResize()
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running update progress: %w", err)
	}
	return final.(UpdateProgressModel).err
}
