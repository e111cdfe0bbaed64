package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubetimer/internal/stats"
	"github.com/SeamusWaldron/cubetimer/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate solve statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogging(cfg)

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	times, err := storage.NewSolveRepository(db).Durations("")
	if err != nil {
		return err
	}

	fmt.Printf("Solves: %d\n", len(times))

	if mean, ok := stats.Mean(times); ok {
		fmt.Printf("Mean:   %s\n", stats.FormatDuration(mean))
	}
	if best, ok := stats.Best(times); ok {
		fmt.Printf("Best:   %s\n", stats.FormatDuration(best))
	}
	if ao5, ok := stats.AverageOfFive(times); ok {
		fmt.Printf("Ao5:    %s\n", stats.FormatDuration(ao5))
	}
	return nil
}
