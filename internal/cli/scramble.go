package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scrambleCount int

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print random-state scrambles",
	Long: `Generate scrambles without starting the timer.

Each scramble corresponds to a uniformly random reachable cube state; the
printed sequence transforms a solved cube into that state.`,
	RunE: runScramble,
}

func init() {
	scrambleCmd.Flags().IntVarP(&scrambleCount, "count", "n", 1, "Number of scrambles to print")
	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogging(cfg)

	scrambler := newScrambler(cfg)
	for i := 0; i < scrambleCount; i++ {
		scramble, err := scrambler.Generate()
		if err != nil {
			return err
		}
		fmt.Println(scramble)
	}
	return nil
}
