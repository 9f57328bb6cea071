package ascii

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/hyfetch-cli/hyfetch/placeholder"
	"github.com/samber/mo"
)

// AlignMode names a recoloring strategy.
type AlignMode string

const (
	// AlignHorizontal paints one color per row.
	AlignHorizontal AlignMode = "horizontal"
	// AlignVertical paints one color per column.
	AlignVertical AlignMode = "vertical"
	// AlignCustom maps every slot to a fixed palette color.
	AlignCustom AlignMode = "custom"
)

// AlignModes lists the strategies in the order they are offered.
var AlignModes = []AlignMode{AlignHorizontal, AlignVertical, AlignCustom}

// ForeBack selects a slot painted with the static text color and a slot
// painted with the profile.
type ForeBack struct {
	Fore placeholder.Slot
	Back placeholder.Slot
}

// Alignment is a recoloring strategy and the data it needs.
// ForeBack is only meaningful for the horizontal and vertical modes,
// Colors only for the custom one.
type Alignment struct {
	Mode     AlignMode
	ForeBack mo.Option[ForeBack]
	// Colors maps a slot to an index into the unique colors of the profile.
	Colors map[placeholder.Slot]int
}

// Horizontal creates a per-row alignment.
func Horizontal(foreBack mo.Option[ForeBack]) Alignment {
	return Alignment{Mode: AlignHorizontal, ForeBack: foreBack}
}

// Vertical creates a per-column alignment.
func Vertical(foreBack mo.Option[ForeBack]) Alignment {
	return Alignment{Mode: AlignVertical, ForeBack: foreBack}
}

// Custom creates an alignment with an explicit slot to palette mapping.
func Custom(colors map[placeholder.Slot]int) Alignment {
	return Alignment{Mode: AlignCustom, Colors: colors}
}

func (a Alignment) String() string {
	switch a.Mode {
	case AlignCustom:
		return fmt.Sprintf("%s %v", a.Mode, a.Colors)
	default:
		if fb, ok := a.ForeBack.Get(); ok {
			return fmt.Sprintf("%s (fore %d, back %d)", a.Mode, fb.Fore, fb.Back)
		}

		return string(a.Mode)
	}
}

// Validate checks the mode and every slot it references.
func (a Alignment) Validate() error {
	switch a.Mode {
	case AlignHorizontal, AlignVertical:
		if fb, ok := a.ForeBack.Get(); ok && (!fb.Fore.Valid() || !fb.Back.Valid()) {
			return fmt.Errorf("fore/back slots must be within 1..6, got %d and %d", fb.Fore, fb.Back)
		}
	case AlignCustom:
		for slot, index := range a.Colors {
			if !slot.Valid() {
				return fmt.Errorf("custom color slot %d is not within 1..6", slot)
			}

			if index < 0 {
				return fmt.Errorf("custom color index %d of slot %d is negative", index, slot)
			}
		}
	default:
		return fmt.Errorf("unknown color alignment %q", a.Mode)
	}

	return nil
}

type alignmentJSON struct {
	Mode         AlignMode            `json:"mode"`
	ForeBack     *[2]placeholder.Slot `json:"fore_back,omitempty"`
	CustomColors map[string]int       `json:"custom_colors,omitempty"`
}

// MarshalJSON writes the alignment tagged by its mode, e.g.
// {"mode":"horizontal","fore_back":null}.
func (a Alignment) MarshalJSON() ([]byte, error) {
	if a.Mode == AlignCustom {
		colors := make(map[string]int, len(a.Colors))
		for slot, index := range a.Colors {
			colors[strconv.Itoa(int(slot))] = index
		}

		return json.Marshal(alignmentJSON{Mode: a.Mode, CustomColors: colors})
	}

	var foreBack *[2]placeholder.Slot
	if fb, ok := a.ForeBack.Get(); ok {
		foreBack = &[2]placeholder.Slot{fb.Fore, fb.Back}
	}

	return json.Marshal(struct {
		Mode     AlignMode            `json:"mode"`
		ForeBack *[2]placeholder.Slot `json:"fore_back"`
	}{a.Mode, foreBack})
}

// UnmarshalJSON reads the form written by MarshalJSON.
func (a *Alignment) UnmarshalJSON(data []byte) error {
	var raw alignmentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed := Alignment{Mode: raw.Mode}
	switch raw.Mode {
	case AlignHorizontal, AlignVertical:
		if raw.ForeBack != nil {
			parsed.ForeBack = mo.Some(ForeBack{Fore: raw.ForeBack[0], Back: raw.ForeBack[1]})
		}
	case AlignCustom:
		parsed.Colors = make(map[placeholder.Slot]int, len(raw.CustomColors))
		for key, index := range raw.CustomColors {
			slot, err := strconv.ParseUint(key, 10, 8)
			if err != nil {
				return fmt.Errorf("custom color slot %q is not a number", key)
			}

			parsed.Colors[placeholder.Slot(slot)] = index
		}
	}

	if err := parsed.Validate(); err != nil {
		return err
	}

	*a = parsed
	return nil
}
