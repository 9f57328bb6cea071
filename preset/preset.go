// Package preset holds the built-in pride flag color presets.
package preset

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/hyfetch-cli/hyfetch/profile"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

// Preset is a named flag.
type Preset struct {
	Name    string   `yaml:"name" json:"name"`
	Colors  []string `yaml:"colors" json:"colors"`
	Weights []int    `yaml:"weights" json:"weights,omitempty"`
	Aliases []string `yaml:"aliases" json:"aliases,omitempty"`
	// Meme presets are not pride flags and are left out of animations.
	Meme   bool   `yaml:"meme" json:"meme,omitempty"`
	Source string `yaml:"source" json:"source,omitempty"`

	profile profile.Profile
}

// Profile returns the flag colors with weights applied.
func (p Preset) Profile() profile.Profile {
	return profile.New(p.profile.Colors...)
}

// Matches reports whether name refers to p, case-insensitively.
func (p Preset) Matches(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	return p.Name == name || slices.Contains(p.Aliases, name)
}

func (p *Preset) load() error {
	colors, err := profile.FromHex(p.Colors...)
	if err != nil {
		return err
	}

	if len(p.Weights) > 0 {
		colors, err = colors.WithWeights(p.Weights)
		if err != nil {
			return err
		}
	}

	p.profile = colors
	return nil
}

var table = sync.OnceValue(func() []Preset {
	var presets []Preset
	lo.Must0(yaml.Unmarshal(presetsYAML, &presets))

	for i := range presets {
		if err := presets[i].load(); err != nil {
			panic(fmt.Sprintf("preset %q: %v", presets[i].Name, err))
		}
	}

	return presets
})

// All returns every preset in table order.
func All() []Preset {
	return slices.Clone(table())
}

// Names returns the name of every preset in table order.
func Names() []string {
	return lo.Map(table(), func(p Preset, _ int) string {
		return p.Name
	})
}

// Get finds a preset by name or alias.
func Get(name string) (Preset, error) {
	if p, ok := lo.Find(table(), func(p Preset) bool { return p.Matches(name) }); ok {
		return p, nil
	}

	return Preset{}, &UnknownError{Name: name, Suggestions: Suggest(name, 3)}
}

// MustGet is like Get but panics on an unknown name.
func MustGet(name string) Preset {
	return lo.Must(Get(name))
}
