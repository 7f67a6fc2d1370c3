package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riftlab/go-lol-metrics/internal/aggregator"
	"github.com/riftlab/go-lol-metrics/internal/geometry"
	"github.com/riftlab/go-lol-metrics/internal/report"
)

// swapCmd shows where the lane roles actually stand in the early game.
var swapCmd = &cobra.Command{
	Use:   "swap",
	Short: "Lane-swap zone occupancy for a team",
	Long: `Buckets the top, bot, and support positions into simplified map zones
over one-minute windows between 3:00 and 7:00, revealing lane swaps and
early rotations.`,
	Args: cobra.NoArgs,
	RunE: runSwap,
}

func init() {
	addFilterFlags(swapCmd)
}

func runSwap(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	_, stats, _ := aggregator.SwapZones(db, viewFilters(), geometry.NewClassifier())
	if stats.Error != "" {
		return errors.New(stats.Error)
	}
	if stats.Message != "" {
		fmt.Println(stats.Message)
		return nil
	}
	report.PrintSwapTables(os.Stdout, stats)
	return nil
}
