// Package cli implements the command-line interface for cubetimer.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath    string
	solverCmd string
	verbose   bool
)

// rootCmd is the base command. Running it with no subcommand starts the
// interactive timer.
var rootCmd = &cobra.Command{
	Use:   "cubetimer",
	Short: "Terminal Rubik's cube timer",
	Long: `cubetimer - A terminal timer for speedcubing with random-state scrambles.

Scrambles are true random-state: a uniformly random reachable cube state is
drawn, handed to an external solver (Kociemba's algorithm), and the solution
is inverted. Solve history and session statistics are stored in SQLite.`,
	Version: version,
	RunE:    runTimer,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubetimer/cubetimer.db)")
	rootCmd.PersistentFlags().StringVar(&solverCmd, "solver", "", "Solver executable (default: kociemba, or CUBETIMER_SOLVER)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
