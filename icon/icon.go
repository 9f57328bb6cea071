// Package icon renders status symbols in the variant chosen with
// icons.variant: emoji, nerd font glyphs, plain ASCII, kaomoji or squares.
package icon

import (
	"github.com/hyfetch-cli/hyfetch/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists every variant name.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Icon identifies a symbol.
type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Mark
	Link
	Search
	Flag
	Config
	Terminal
)

var icons = map[Icon]*iconDef{
	Fail:     {emoji: "💀", nerd: "\uF00D", plain: "X", kaomoji: "(×_×)", squares: "🟥"},
	Success:  {emoji: "🎉", nerd: "\uF00C", plain: "OK", kaomoji: "(ᵔᴥᵔ)", squares: "🟩"},
	Progress: {emoji: "⏳", nerd: "\uF110", plain: "...", kaomoji: "(・_・;)", squares: "🟨"},
	Mark:     {emoji: "💫", nerd: "\uF005", plain: "*", kaomoji: "(✿◠‿◠)", squares: "🟪"},
	Link:     {emoji: "🔗", nerd: "\uF0C1", plain: "->", kaomoji: "(っ˘ڡ˘ς)", squares: "🟦"},
	Search:   {emoji: "🔍", nerd: "\uF002", plain: "?", kaomoji: "(⊙_⊙)", squares: "🟫"},
	Flag:     {emoji: "🏳️‍🌈", nerd: "\uF024", plain: "#", kaomoji: "\\(^o^)/", squares: "🟧"},
	Config:   {emoji: "⚙️", nerd: "\uF013", plain: "=", kaomoji: "(￣▽￣)ノ", squares: "⬜"},
	Terminal: {emoji: "💻", nerd: "\uF120", plain: ">", kaomoji: "(⌐■_■)", squares: "⬛"},
}

// Get renders i in the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}
