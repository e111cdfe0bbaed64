package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubetimer/internal/stats"
	"github.com/SeamusWaldron/cubetimer/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solves",
	RunE:  runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded solves",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
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

	solves, err := storage.NewSolveRepository(db).ListSolves("")
	if err != nil {
		return err
	}

	if len(solves) == 0 {
		fmt.Println("No solves recorded.")
		return nil
	}

	for i, s := range solves {
		fmt.Printf("%4d  %8s  %s  %s\n",
			i+1,
			stats.FormatDuration(s.Duration),
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
			s.Scramble)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
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

	if err := storage.NewSolveRepository(db).ClearAll(); err != nil {
		return err
	}
	fmt.Println("History cleared.")
	return nil
}
