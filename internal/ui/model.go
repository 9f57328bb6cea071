// Package ui shows short-lived notices at the bottom of a bubbletea view.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hyfetch-cli/hyfetch/style"
)

// Lifetime is how long a notice stays on screen.
const Lifetime = 3 * time.Second

// Model holds the notice currently shown.
type Model struct {
	notification string
	generation   int
}

type notifyMsg string

type clearMsg struct {
	generation int
}

// Notify returns a command that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return notifyMsg(text)
	}
}

// Notification is the notice currently shown, if any.
func (m *Model) Notification() string {
	return m.notification
}

// Update handles notify and clear messages and ignores everything else.
// A clear scheduled for an older notice leaves a newer one alone.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case notifyMsg:
		m.notification = string(msg)
		m.generation++
		generation := m.generation
		return tea.Tick(Lifetime, func(time.Time) tea.Msg {
			return clearMsg{generation: generation}
		})
	case clearMsg:
		if msg.generation == m.generation {
			m.notification = ""
		}
	}

	return nil
}

// View appends the notice to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	return content + "  " + style.Faint(m.notification)
}
