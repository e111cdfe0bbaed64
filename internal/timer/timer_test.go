package timer

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pressSpace(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func newTestModel() Model {
	m := New(func() string { return "R U R' U'" }, nil, "")
	// Deliver the initial scramble so the timer is armed.
	next, _ := m.Update(scrambleMsg("R U R' U'"))
	return next.(Model)
}

func TestSpaceStartsAndStopsTimer(t *testing.T) {
	m := newTestModel()
	assert.False(t, m.Running())

	m = pressSpace(t, m)
	assert.True(t, m.Running())

	time.Sleep(5 * time.Millisecond)
	m = pressSpace(t, m)
	assert.False(t, m.Running())

	times := m.SolveTimes()
	require.Len(t, times, 1)
	assert.Greater(t, times[0], time.Duration(0))
}

func TestSpaceIgnoredWhileScramblePending(t *testing.T) {
	m := New(func() string { return "R" }, nil, "")
	// No scrambleMsg delivered yet: still fetching.
	m = pressSpace(t, m)
	assert.False(t, m.Running(), "timer must not start before a scramble exists")
}

func TestStopRecordsHistoryRow(t *testing.T) {
	m := newTestModel()
	m = pressSpace(t, m)
	m = pressSpace(t, m)

	rows := m.history.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0][0])
	assert.Equal(t, "R U R' U'", rows[0][2])
}

func TestClearHistory(t *testing.T) {
	m := newTestModel()
	m = pressSpace(t, m)
	m = pressSpace(t, m)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = next.(Model)

	assert.Empty(t, m.SolveTimes())
	assert.Empty(t, m.history.Rows())
}

func TestViewShowsScramble(t *testing.T) {
	m := newTestModel()
	assert.Contains(t, m.View(), "R U R' U'")
}
