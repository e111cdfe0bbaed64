package cli

import (
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubetimer/internal/storage"
	"github.com/SeamusWaldron/cubetimer/internal/timer"
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Run the interactive timer",
	Long: `Start the interactive timer TUI.

Keyboard shortcuts:
  SPACE   - Start / stop the timer
  s       - Skip to a new scramble
  x       - Clear session history
  q/Esc   - Quit

Each completed solve gets a fresh random-state scramble and is stored in the
solve history database.`,
	RunE: runTimer,
}

func init() {
	rootCmd.AddCommand(timerCmd)
}

func runTimer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogging(cfg)

	scrambler := newScrambler(cfg)

	// Persistence is best-effort: a broken database should not keep the
	// timer from running.
	var repo *storage.SolveRepository
	sessionID := ""
	if db, err := openDB(cfg); err == nil {
		defer db.Close()
		repo = storage.NewSolveRepository(db)
		if id, err := repo.StartSession(); err == nil {
			sessionID = id
		} else {
			repo = nil
		}
	}

	return timer.Run(scrambler.GenerateText, repo, sessionID)
}
