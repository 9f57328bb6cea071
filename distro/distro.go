// Package distro maps operating system names to their ascii art.
package distro

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/hyfetch-cli/hyfetch/ascii"
	"github.com/hyfetch-cli/hyfetch/placeholder"
	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// ErrUnknown is returned when no distro matches a name.
var ErrUnknown = errors.New("unknown distro")

// Fallback is used when the running system is not recognised.
const Fallback = "linux"

//go:embed distros.yaml ascii/*.txt
var data embed.FS

// Distro is one entry of the art table.
type Distro struct {
	Name     string             `yaml:"name"`
	Patterns string             `yaml:"patterns"`
	ArtFile  string             `yaml:"art"`
	ForeBack []placeholder.Slot `yaml:"fore_back"`

	art      string
	matchers []matcher
}

// Art returns the template art along with its fore/back slots.
func (d Distro) Art() ascii.RawArt {
	raw := ascii.RawArt{Text: d.art}
	if len(d.ForeBack) == 2 {
		raw.Fore = []placeholder.Slot{d.ForeBack[0]}
		raw.Back = []placeholder.Slot{d.ForeBack[1]}
	}

	return raw
}

// Matches reports whether d answers to the system name.
func (d Distro) Matches(name string) bool {
	name = normalizeName(name)
	return lo.SomeBy(d.matchers, func(m matcher) bool {
		return m(name)
	})
}

var table = sync.OnceValue(func() []Distro {
	var distros []Distro
	lo.Must0(yaml.Unmarshal(lo.Must(data.ReadFile("distros.yaml")), &distros))

	for i := range distros {
		d := &distros[i]

		if len(d.ForeBack) != 0 && (len(d.ForeBack) != 2 || !d.ForeBack[0].Valid() || !d.ForeBack[1].Valid()) {
			panic(fmt.Sprintf("distro %q: fore_back must be two slots within 1..6", d.Name))
		}

		art := lo.Must(data.ReadFile(path.Join("ascii", d.ArtFile)))
		d.art = strings.TrimSuffix(strings.ReplaceAll(string(art), "\r\n", "\n"), "\n")
		d.matchers = lo.Must(parsePatterns(d.Patterns))
	}

	return distros
})

// All returns every distro in table order.
func All() []Distro {
	return append([]Distro(nil), table()...)
}

// Names returns every distro name in table order.
func Names() []string {
	return lo.Map(table(), func(d Distro, _ int) string {
		return d.Name
	})
}

// Detect finds the first distro whose patterns match name.
func Detect(name string) (Distro, bool) {
	return lo.Find(table(), func(d Distro) bool {
		return d.Matches(name)
	})
}

// Lookup is like Detect but reports a miss as ErrUnknown.
func Lookup(name string) (Distro, error) {
	d, ok := Detect(name)
	if !ok {
		return Distro{}, fmt.Errorf("%w %q", ErrUnknown, name)
	}

	return d, nil
}

func normalizeName(name string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(name)))
}
