// Package timer implements the interactive terminal cube timer.
package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubetimer/internal/stats"
	"github.com/SeamusWaldron/cubetimer/internal/storage"
)

// ScrambleFunc produces the next scramble to display. It must never panic
// and should fold failures into the returned text (cubetimer.GenerateText
// satisfies this).
type ScrambleFunc func() string

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	scrambleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)

	timerIdleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	timerRunningStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("82"))

	statsStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Messages
type tickMsg time.Time
type scrambleMsg string
type solveSavedMsg struct{ err error }

// Model is the Bubble Tea model for the timer screen.
type Model struct {
	// Scramble
	nextScramble ScrambleFunc
	scramble     string
	fetching     bool

	// Persistence (optional)
	repo      *storage.SolveRepository
	sessionID string

	// Timing
	running   bool
	startTime time.Time
	elapsed   time.Duration

	// Session history
	history    table.Model
	solveTimes []time.Duration
	solveCount int

	// UI
	width    int
	height   int
	err      error
	quitting bool
}

// New creates a timer model. repo may be nil, in which case solves are kept
// in memory for the session only.
func New(next ScrambleFunc, repo *storage.SolveRepository, sessionID string) Model {
	columns := []table.Column{
		{Title: "No.", Width: 4},
		{Title: "Time", Width: 8},
		{Title: "Scramble", Width: 48},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows([]table.Row{}),
		table.WithHeight(8),
	)

	return Model{
		nextScramble: next,
		scramble:     "Generating scramble...",
		fetching:     true,
		repo:         repo,
		sessionID:    sessionID,
		history:      t,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchScramble(), m.tickCmd())
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(30*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchScramble runs scramble generation off the render loop; the solver
// call can take tens of milliseconds.
func (m Model) fetchScramble() tea.Cmd {
	next := m.nextScramble
	return func() tea.Msg {
		return scrambleMsg(next())
	}
}

func (m Model) saveSolve(duration time.Duration, scramble string) tea.Cmd {
	repo := m.repo
	sessionID := m.sessionID
	return func() tea.Msg {
		if repo == nil {
			return solveSavedMsg{}
		}
		_, err := repo.RecordSolve(sessionID, duration, scramble)
		return solveSavedMsg{err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ":
			if m.running {
				return m.stopSolve()
			}
			return m.startSolve()

		case "s":
			// Skip to a fresh scramble
			if !m.running && !m.fetching {
				m.fetching = true
				m.scramble = "Generating scramble..."
				return m, m.fetchScramble()
			}

		case "x":
			if !m.running {
				m.solveTimes = nil
				m.solveCount = 0
				m.history.SetRows([]table.Row{})
				if m.repo != nil {
					if err := m.repo.ClearSession(m.sessionID); err != nil {
						m.err = err
					}
				}
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if m.running {
			m.elapsed = time.Since(m.startTime)
		}
		return m, m.tickCmd()

	case scrambleMsg:
		m.scramble = string(msg)
		m.fetching = false

	case solveSavedMsg:
		if msg.err != nil {
			m.err = msg.err
		}
	}

	return m, nil
}

func (m Model) startSolve() (tea.Model, tea.Cmd) {
	if m.fetching {
		return m, nil
	}
	m.running = true
	m.startTime = time.Now()
	m.elapsed = 0
	return m, nil
}

func (m Model) stopSolve() (tea.Model, tea.Cmd) {
	final := time.Since(m.startTime)
	m.running = false
	m.elapsed = final

	m.solveCount++
	m.solveTimes = append(m.solveTimes, final)

	rows := append(m.history.Rows(), table.Row{
		fmt.Sprintf("%d", m.solveCount),
		stats.FormatDuration(final),
		m.scramble,
	})
	m.history.SetRows(rows)
	m.history.GotoBottom()

	solvedScramble := m.scramble
	m.fetching = true
	m.scramble = "Generating scramble..."

	return m, tea.Batch(
		m.saveSolve(final, solvedScramble),
		m.fetchScramble(),
	)
}

// SolveTimes returns the session's recorded times, oldest first.
func (m Model) SolveTimes() []time.Duration {
	return m.solveTimes
}

// Running reports whether a solve is being timed.
func (m Model) Running() bool {
	return m.running
}

func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubetimer"))
	b.WriteString("\n\n")

	b.WriteString(scrambleStyle.Render(m.scramble))
	b.WriteString("\n\n")

	timerText := stats.FormatDuration(m.elapsed)
	if m.running {
		b.WriteString(timerRunningStyle.Render(timerText))
	} else {
		b.WriteString(timerIdleStyle.Render(timerText))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.history.View(),
		" ",
		statsStyle.Render(m.statsView()),
	))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	help := "SPACE=start/stop  s=skip scramble  x=clear history  q=quit"
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

func (m Model) statsView() string {
	meanText := "N/A"
	if mean, ok := stats.Mean(m.solveTimes); ok {
		meanText = stats.FormatDuration(mean)
	}

	ao5Text := "N/A"
	if ao5, ok := stats.AverageOfFive(m.solveTimes); ok {
		ao5Text = stats.FormatDuration(ao5)
	}

	bestText := "N/A"
	if best, ok := stats.Best(m.solveTimes); ok {
		bestText = stats.FormatDuration(best)
	}

	return fmt.Sprintf("Count: %d\n\nMean: %s\nAo5:  %s\nBest: %s",
		m.solveCount, meanText, ao5Text, bestText)
}

// Run starts the timer UI and blocks until it exits.
func Run(next ScrambleFunc, repo *storage.SolveRepository, sessionID string) error {
	p := tea.NewProgram(New(next, repo, sessionID), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
