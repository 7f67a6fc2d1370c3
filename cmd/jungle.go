package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riftlab/go-lol-metrics/internal/aggregator"
	"github.com/riftlab/go-lol-metrics/internal/report"
)

// jungleCmd shows a team's opening jungle clears.
var jungleCmd = &cobra.Command{
	Use:   "jungle",
	Short: "Jungle opening-clear analysis for a team",
	Long: `Aggregates the jungler's reconstructed early pathing: which camps get
cleared in which order, how long each clear takes, and the gaps between
consecutive camps. The champion filter applies to the jungler pick.`,
	Args: cobra.NoArgs,
	RunE: runJungle,
}

func init() {
	addFilterFlags(jungleCmd)
}

func runJungle(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	_, stats, _ := aggregator.JungleClears(db, viewFilters())
	if stats.Error != "" {
		return errors.New(stats.Error)
	}
	if stats.Message != "" {
		fmt.Println(stats.Message)
		return nil
	}
	report.PrintJungleTables(os.Stdout, stats)
	return nil
}
