package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/hyfetch-cli/hyfetch/ascii"
	"github.com/hyfetch-cli/hyfetch/color"
	"github.com/hyfetch-cli/hyfetch/internal/ui"
	"github.com/hyfetch-cli/hyfetch/preset"
	"github.com/hyfetch-cli/hyfetch/style"
	"github.com/hyfetch-cli/hyfetch/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

const lightnessStep = 0.05

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	// components
	presetsC list.Model
	helpC    help.Model

	art       ascii.NormalizedArt
	lightness color.Lightness
	align     ascii.Alignment
	// previews caches rendered art by preset name for the current
	// lightness and alignment.
	previews map[string]string

	chosen    mo.Option[preset.Preset]
	lastError error

	width, height int
	notifier      *ui.Model

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	b.statesHistory.Push(b.state)
	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := min(listMaxWidth, width/2) - xx
	listHeight := height - yy

	b.presetsC.SetSize(listWidth, listHeight)
	b.presetsC.Help.Width = listWidth

	b.width = width - x
	b.height = height - y
	b.helpC.Width = b.width
}

func (b *statefulBubble) selected() mo.Option[preset.Preset] {
	item, ok := b.presetsC.SelectedItem().(*listItem)
	if !ok {
		return mo.None[preset.Preset]()
	}

	return mo.Some(item.preset)
}

// preview renders the art with p under the current settings.
func (b *statefulBubble) preview(p preset.Preset) string {
	if cached, ok := b.previews[p.Name]; ok {
		return cached
	}

	colors := p.Profile().WithLightnessAdaptive(b.lightness, b.options.Theme)
	rendered, err := b.art.Recolor(b.align, colors, b.options.Mode, b.options.Theme)
	if err != nil {
		rendered = style.Fg(style.ErrorColor)(err.Error())
	}

	b.previews[p.Name] = rendered
	return rendered
}

func (b *statefulBubble) invalidatePreviews() {
	clear(b.previews)
}

func (b *statefulBubble) result() (*Result, error) {
	p, ok := b.chosen.Get()
	if !ok {
		return nil, ErrAborted
	}

	return &Result{Preset: p, Lightness: b.lightness, Align: b.align}, nil
}

func newBubble(options *Options) (*statefulBubble, error) {
	art, err := ascii.Normalize(options.Art)
	if err != nil {
		return nil, err
	}

	if err := options.Align.Validate(); err != nil {
		return nil, err
	}

	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		art:           art,
		lightness:     options.Lightness,
		align:         options.Align,
		previews:      make(map[string]string),
		notifier:      &ui.Model{},
		options:       options,
	}

	presets := preset.All()
	items := lo.Map(presets, func(p preset.Preset, _ int) list.Item {
		return &listItem{preset: p, mode: options.Mode, marked: p.Matches(options.Selected)}
	})

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))

	bubble.presetsC = list.New(items, delegate, 0, 0)
	bubble.presetsC.KeyMap = keymap.forList()
	bubble.presetsC.AdditionalShortHelpKeys = keymap.ShortHelp
	bubble.presetsC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
		return keymap.FullHelp()[0]
	}
	bubble.presetsC.Title = "Presets"
	bubble.presetsC.Styles.Title = lipgloss.NewStyle().
		Foreground(style.Base).
		Background(style.AccentColor).
		Padding(0, 1)
	bubble.presetsC.Styles.NoItems = paddingStyle
	bubble.presetsC.SetStatusBarItemName("flag", "flags")

	if index := slices.IndexFunc(presets, func(p preset.Preset) bool { return p.Matches(options.Selected) }); index >= 0 {
		bubble.presetsC.Select(index)
	}

	bubble.helpC = help.New()

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble, nil
}
