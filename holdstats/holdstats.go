// Package holdstats contains tools for calculating stats on key hold times.
package holdstats

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type (
	CalcMsg struct {
		Latest time.Duration
		Avg    time.Duration
		Min    time.Duration
		Max    time.Duration
		Count  int
	}
)

// CalcStats folds the latest tracked hold into stats over the previous ones.
// The average is rounded to the nearest millisecond for status-bar display.
func CalcStats(latest time.Duration, prev []time.Duration) tea.Cmd {
	roundedAvg := math.Round(float64(Avg(prev)/time.Millisecond)) * float64(time.Millisecond)
	return func() tea.Msg {
		return CalcMsg{
			Latest: latest,
			Avg:    time.Duration(roundedAvg),
			Min:    Min(prev),
			Max:    Max(prev),
			Count:  len(prev),
		}
	}
}

func Min(times []time.Duration) time.Duration {
	if len(times) == 0 {
		return 0
	}
	min := time.Duration(math.MaxInt64)
	for _, t := range times {
		if t < min {
			min = t
		}
	}
	return min
}

func Max(times []time.Duration) time.Duration {
	max := time.Duration(0)
	for _, t := range times {
		if t > max {
			max = t
		}
	}
	return max
}

func Avg(times []time.Duration) time.Duration {
	if len(times) == 0 {
		return 0
	}
	sum := time.Duration(0)
	for _, t := range times {
		sum = sum + t
	}
	return sum / time.Duration(len(times))
}
