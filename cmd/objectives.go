package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riftlab/go-lol-metrics/internal/aggregator"
	"github.com/riftlab/go-lol-metrics/internal/report"
)

// objectivesCmd shows a team's objective control rates.
var objectivesCmd = &cobra.Command{
	Use:   "objectives",
	Short: "Objective control analysis for a team",
	Long: `Drake take rates by spawn, soul conversion, voidgrub cohorts, herald,
baron and atakhan control, and first-tower rates per lane. Reported
overall and split by side.`,
	Args: cobra.NoArgs,
	RunE: runObjectives,
}

func init() {
	addFilterFlags(objectivesCmd)
}

func runObjectives(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	_, stats, _ := aggregator.Objectives(db, viewFilters())
	if stats.Error != "" {
		return errors.New(stats.Error)
	}
	if stats.Message != "" {
		fmt.Println(stats.Message)
		return nil
	}
	report.PrintObjectiveTables(os.Stdout, stats)
	return nil
}
