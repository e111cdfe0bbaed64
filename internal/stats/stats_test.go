package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sec(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func TestMean(t *testing.T) {
	_, ok := Mean(nil)
	assert.False(t, ok, "mean of no solves")

	mean, ok := Mean([]time.Duration{sec(10), sec(20), sec(30)})
	assert.True(t, ok)
	assert.Equal(t, sec(20), mean)
}

func TestAverageOfFive(t *testing.T) {
	_, ok := AverageOfFive([]time.Duration{sec(10), sec(11), sec(12), sec(13)})
	assert.False(t, ok, "Ao5 needs five solves")

	// Best (8) and worst (20) dropped; mean of 10, 11, 12.
	ao5, ok := AverageOfFive([]time.Duration{sec(8), sec(20), sec(10), sec(11), sec(12)})
	assert.True(t, ok)
	assert.Equal(t, sec(11), ao5)
}

func TestAverageOfFiveUsesLastWindow(t *testing.T) {
	// The leading 100s solve is outside the last-five window.
	times := []time.Duration{sec(100), sec(8), sec(20), sec(10), sec(11), sec(12)}
	ao5, ok := AverageOfFive(times)
	assert.True(t, ok)
	assert.Equal(t, sec(11), ao5)
}

func TestBest(t *testing.T) {
	best, ok := Best([]time.Duration{sec(12), sec(9.5), sec(15)})
	assert.True(t, ok)
	assert.Equal(t, sec(9.5), best)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "9.43", FormatDuration(sec(9.43)))
	assert.Equal(t, "59.99", FormatDuration(sec(59.99)))
	assert.Equal(t, "1:05.20", FormatDuration(sec(65.2)))
	assert.Equal(t, "2:00.00", FormatDuration(sec(120)))
}
