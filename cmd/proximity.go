package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riftlab/go-lol-metrics/internal/aggregator"
	"github.com/riftlab/go-lol-metrics/internal/model"
	"github.com/riftlab/go-lol-metrics/internal/report"
)

var proximityRole string

// proximityCmd shows how much time a role spends near each ally.
var proximityCmd = &cobra.Command{
	Use:   "proximity",
	Short: "Ally proximity analysis for one role",
	Long: `Measures the share of timeline ticks the chosen role spends within 2000
units of each ally, bucketed by game phase and broken down by the role's
champion.`,
	Args: cobra.NoArgs,
	RunE: runProximity,
}

func init() {
	addFilterFlags(proximityCmd)
	proximityCmd.Flags().StringVar(&proximityRole, "role", model.RoleJgl, "role to analyze: TOP, JGL, MID, BOT, SUP")
}

func runProximity(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	_, stats, _ := aggregator.Proximity(db, viewFilters(), proximityRole)
	if stats.Error != "" {
		return errors.New(stats.Error)
	}
	if stats.Message != "" {
		fmt.Println(stats.Message)
		return nil
	}
	report.PrintProximityTables(os.Stdout, stats)
	return nil
}
