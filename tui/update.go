package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hyfetch-cli/hyfetch/ascii"
	"github.com/hyfetch-cli/hyfetch/color"
	"github.com/hyfetch-cli/hyfetch/internal/ui"
	"github.com/hyfetch-cli/hyfetch/log"
	"github.com/hyfetch-cli/hyfetch/open"
	"github.com/hyfetch-cli/hyfetch/util"
)

func (b *statefulBubble) Init() tea.Cmd {
	return nil
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := b.notifier.Update(msg)

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, cmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, cmd
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		if keyCmd, handled := b.handleKey(msg); handled {
			return b, tea.Batch(cmd, keyCmd)
		}
	}

	if b.state == presetsState {
		var listCmd tea.Cmd
		b.presetsC, listCmd = b.presetsC.Update(msg)
		return b, tea.Batch(cmd, listCmd)
	}

	return b, cmd
}

// handleKey runs the picker's own bindings. Keys it does not claim go to
// the list, and so does everything while the filter is being typed.
func (b *statefulBubble) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if b.presetsC.FilterState() == list.Filtering {
		return nil, false
	}

	switch {
	case key.Matches(msg, b.keymap.back):
		if b.state == presetsState {
			return nil, false
		}

		b.previousState()
		return nil, true
	case key.Matches(msg, b.keymap.quit):
		return tea.Quit, true
	case b.state == errorState:
		return nil, true
	case key.Matches(msg, b.keymap.confirm):
		b.chosen = b.selected()
		if b.chosen.IsPresent() {
			return tea.Quit, true
		}
		return nil, true
	case key.Matches(msg, b.keymap.preview):
		if b.state == presetsState && b.selected().IsPresent() {
			b.newState(previewState)
		}
		return nil, true
	case key.Matches(msg, b.keymap.lighter):
		return b.adjustLightness(lightnessStep), true
	case key.Matches(msg, b.keymap.darker):
		return b.adjustLightness(-lightnessStep), true
	case key.Matches(msg, b.keymap.align):
		return b.flipAlignment(), true
	case key.Matches(msg, b.keymap.openSource):
		return b.openSource(), true
	}

	return nil, false
}

func (b *statefulBubble) adjustLightness(delta float64) tea.Cmd {
	lightness, err := color.NewLightness(util.Clamp(float64(b.lightness)+delta, 0, 1))
	if err != nil {
		return nil
	}

	b.lightness = lightness
	b.invalidatePreviews()
	return ui.Notify(fmt.Sprintf("lightness %.2f", float64(lightness)))
}

func (b *statefulBubble) flipAlignment() tea.Cmd {
	switch b.align.Mode {
	case ascii.AlignHorizontal:
		b.align = ascii.Vertical(b.align.ForeBack)
	case ascii.AlignVertical:
		b.align = ascii.Horizontal(b.align.ForeBack)
	default:
		return ui.Notify("custom alignment can only be changed in the config")
	}

	b.invalidatePreviews()
	return ui.Notify(b.align.String())
}

func (b *statefulBubble) openSource() tea.Cmd {
	p, ok := b.selected().Get()
	if !ok {
		return nil
	}

	if p.Source == "" {
		return ui.Notify(fmt.Sprintf("%s has no source", p.Name))
	}

	return func() tea.Msg {
		if err := open.Start(p.Source); err != nil {
			log.Warn(err)
			return ui.Notify(err.Error())()
		}

		return ui.Notify("opened " + p.Source)()
	}
}
