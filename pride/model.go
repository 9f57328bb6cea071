package pride

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hyfetch-cli/hyfetch/util"
)

const (
	fps   = 25
	speed = 2
)

type tickMsg time.Time

type model struct {
	frame         int
	width, height int
	scene         *scene
}

func newModel() *model {
	m := &model{scene: newScene()}
	if w, h, err := util.TerminalSize(); err == nil {
		m.width, m.height = w, h
	}

	return m
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) Init() tea.Cmd {
	return tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tickMsg:
		m.frame += speed
		return m, tick()
	}

	return m, nil
}

func (m *model) View() string {
	return m.scene.render(m.frame, m.width, m.height)
}
