package pride

import (
	"math"
	"strings"

	"github.com/hyfetch-cli/hyfetch/color"
	"github.com/hyfetch-cli/hyfetch/markup"
	"github.com/hyfetch-cli/hyfetch/preset"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"
)

const blocks = 9

const banner = `.======================================================.
| .  .              .__       .     .  .       , .   | |
| |__| _.._ ._   .  [__)._.* _| _   |\/| _ ._ -+-|_  | |
| |  |(_][_)[_)\_|  |   [  |(_](/,  |  |(_)[ ) | [ ) * |
|        |  |  ._|                                     |
'======================================================'`

const notice = "Press any key to continue"

// Presets whose stripes scroll by, in order.
var Presets = []string{
	"rainbow", "transgender", "nonbinary", "xenogender", "agender", "queer",
	"genderfluid", "bisexual", "pansexual", "polysexual", "omnisexual",
	"omniromantic", "gay-men", "lesbian", "abrosexual", "asexual",
	"aromantic", "aroace1", "aroace2", "aroace3", "greysexual", "autosexual",
	"intergender", "greygender", "akiosexual", "bigender", "demigender",
	"demiboy", "demigirl", "transmasculine", "transfeminine", "genderfaun",
	"demifaun", "genderfae", "demifae", "neutrois", "biromantic1",
	"autoromantic", "boyflux2", "girlflux", "genderflux", "finsexual",
	"unlabeled1", "unlabeled2", "pangender", "gendernonconforming1",
	"gendernonconforming2", "femboy", "tomboy", "gynesexual", "androsexual",
	"gendervoid", "voidgirl", "voidboy", "nonhuman-unity", "plural",
	"fraysexual", "beiyang", "burger", "baker",
}

var (
	bannerColor = color.MustParseHex(string(color.Banner))
	lineBreak   = markup.MustRender("&r&-", color.TrueColor)
)

type scene struct {
	colors []color.RGB
	text   [][]rune
	notice []rune
}

func newScene() *scene {
	return &scene{
		colors: lo.FlatMap(Presets, func(name string, _ int) []color.RGB {
			return preset.MustGet(name).Profile().Colors
		}),
		text:   lo.Map(strings.Split(banner, "\n"), func(line string, _ int) []rune { return []rune(line) }),
		notice: []rune(notice),
	}
}

func (s *scene) stripe(i int) string {
	return s.colors[i%len(s.colors)].ANSI(color.TrueColor, color.Background)
}

// render draws one frame of w by h cells: diagonal stripes waving to the
// right, the banner in the middle and the notice in the bottom right.
func (s *scene) render(frame, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}

	blockWidth := max(w/blocks, 1)

	textWidth := runewidth.StringWidth(string(s.text[0]))
	textHeight := len(s.text)
	textStartY := h/2 - textHeight/2
	textEndY := textStartY + textHeight
	textStartX := w/2 - textWidth/2
	textEndX := textStartX + textWidth

	noticeStartX := w - len(s.notice) - 1
	noticeEndX := w - 1
	noticeY := h - 1

	fg := bannerColor.ANSI(color.TrueColor, color.Foreground)

	var b strings.Builder
	for y := range h {
		b.WriteString(s.stripe((frame + y) / blockWidth))
		b.WriteString(fg)

		inText := textStartY <= y && y < textEndY
		border := 2
		if y == textStartY || y == textEndY-1 {
			border = 1
		}

		for x := range w {
			wave := max(int(2*math.Sin(float64(y)+0.5*float64(frame))), 0)
			idx := frame + x + y + wave

			if idx%blockWidth == 0 ||
				x == textStartX-border || x == textEndX+border ||
				x == noticeStartX-1 || x == noticeEndX+1 {
				b.WriteString(s.stripe(idx / blockWidth))
			}

			switch {
			case inText && textStartX <= x && x < textEndX && x-textStartX < len(s.text[y-textStartY]):
				b.WriteRune(s.text[y-textStartY][x-textStartX])
			case y == noticeY && noticeStartX <= x && x < noticeEndX && x-noticeStartX < len(s.notice):
				b.WriteRune(s.notice[x-noticeStartX])
			default:
				b.WriteByte(' ')
			}
		}

		if y != h-1 {
			b.WriteString(lineBreak)
		}
	}

	return b.String()
}
