package profile

import (
	"fmt"

	"github.com/hyfetch-cli/hyfetch/color"
)

type assignKind int

const (
	replace assignKind = iota
	clampMax
	clampMin
)

// AssignLightness describes how WithLightness treats each color.
type AssignLightness struct {
	kind  assignKind
	value color.Lightness
}

// Replace sets the lightness of every color to l.
func Replace(l color.Lightness) AssignLightness {
	return AssignLightness{kind: replace, value: l}
}

// ClampMax lowers colors lighter than l.
func ClampMax(l color.Lightness) AssignLightness {
	return AssignLightness{kind: clampMax, value: l}
}

// ClampMin raises colors darker than l.
func ClampMin(l color.Lightness) AssignLightness {
	return AssignLightness{kind: clampMin, value: l}
}

func (a AssignLightness) apply(l float64) float64 {
	v := float64(a.value)

	switch a.kind {
	case clampMax:
		return min(l, v)
	case clampMin:
		return max(l, v)
	default:
		return v
	}
}

func (a AssignLightness) String() string {
	name := [...]string{"replace", "clamp-max", "clamp-min"}[a.kind]
	return fmt.Sprintf("%s(%.2f)", name, float64(a.value))
}
