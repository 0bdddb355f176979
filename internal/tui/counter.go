package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Counters animate from zero to their targets over counterDuration, redrawn
// on every animation tick until the duration elapses.
const (
	counterDuration = time.Second
	counterInterval = time.Second / 60
)

type counterTickMsg time.Time

func counterTickCmd() tea.Cmd {
	return tea.Tick(counterInterval, func(t time.Time) tea.Msg {
		return counterTickMsg(t)
	})
}

// easeOutCubic maps linear progress in [0,1] onto the deceleration curve the
// counters follow.
func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// counterValue is the displayed value of a counter given its target and the
// eased animation progress.
func counterValue(target int, eased float64) int {
	return int(math.Round(float64(target) * eased))
}
