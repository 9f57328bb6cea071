// Package pride plays the pride month banner animation.
package pride

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hyfetch-cli/hyfetch/internal/cache"
	"github.com/hyfetch-cli/hyfetch/key"
	"github.com/spf13/viper"
)

var shown = cache.New[string, bool]("pride.json", 0, nil)

// IsJune reports whether t falls into pride month.
func IsJune(t time.Time) bool {
	return t.Month() == time.June
}

// ShouldShow reports whether the animation is due at now: in June, once
// per year, unless pride_month_disable is set.
func ShouldShow(now time.Time) bool {
	if viper.GetBool(key.PrideMonthDisable) || !IsJune(now) {
		return false
	}

	return !shown.Get(strconv.Itoa(now.Year())).OrElse(false)
}

// MarkShown records that the animation was played in year.
func MarkShown(year int) error {
	return shown.Set(strconv.Itoa(year), true)
}

// Run plays the animation until a key is pressed.
func Run() error {
	_, err := tea.NewProgram(newModel(), tea.WithAltScreen()).Run()
	return err
}
