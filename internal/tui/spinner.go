package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// DoneMsg tells the spinner the background work finished.
type DoneMsg struct{}

// Spinner is a Bubble Tea model shown while the provider chain runs.
type Spinner struct {
	spinner  spinner.Model
	message  string
	start    time.Time
	quitting bool
}

// NewSpinner creates a spinner with the given status message.
func NewSpinner(message string) *Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return &Spinner{
		spinner: s,
		message: message,
		start:   time.Now(),
	}
}

// Init implements tea.Model.
func (m *Spinner) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m *Spinner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DoneMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m *Spinner) View() string {
	if m.quitting {
		return ""
	}
	elapsed := time.Since(m.start).Truncate(time.Second)
	return fmt.Sprintf("%s %s  %s\n",
		m.spinner.View(),
		m.message,
		HelpStyle.Render(elapsed.String()),
	)
}
