// Package stats computes session statistics for recorded solves.
package stats

import (
	"fmt"
	"sort"
	"time"
)

// Mean returns the arithmetic mean of all solve times.
func Mean(times []time.Duration) (time.Duration, bool) {
	if len(times) == 0 {
		return 0, false
	}
	var total time.Duration
	for _, t := range times {
		total += t
	}
	return total / time.Duration(len(times)), true
}

// AverageOfFive returns the WCA-style Ao5 for the last five solves: the best
// and worst of the window are dropped and the remaining three averaged.
// Returns false until five solves exist.
func AverageOfFive(times []time.Duration) (time.Duration, bool) {
	if len(times) < 5 {
		return 0, false
	}

	window := make([]time.Duration, 5)
	copy(window, times[len(times)-5:])
	sort.Slice(window, func(i, j int) bool { return window[i] < window[j] })

	middle := window[1:4]
	var total time.Duration
	for _, t := range middle {
		total += t
	}
	return total / 3, true
}

// Best returns the fastest solve time.
func Best(times []time.Duration) (time.Duration, bool) {
	if len(times) == 0 {
		return 0, false
	}
	best := times[0]
	for _, t := range times[1:] {
		if t < best {
			best = t
		}
	}
	return best, true
}

// FormatDuration renders a solve time as S.ss under a minute and M:SS.ss
// otherwise, the conventional speedcubing display format.
func FormatDuration(d time.Duration) string {
	seconds := d.Seconds()
	if seconds < 60 {
		return fmt.Sprintf("%.2f", seconds)
	}
	minutes := int(seconds) / 60
	return fmt.Sprintf("%d:%05.2f", minutes, seconds-float64(minutes*60))
}
