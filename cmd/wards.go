package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riftlab/go-lol-metrics/internal/aggregator"
	"github.com/riftlab/go-lol-metrics/internal/report"
)

var wardsRole string

// wardsCmd shows a team's ward placements over game time.
var wardsCmd = &cobra.Command{
	Use:   "wards",
	Short: "Ward placement timeline for a team",
	Long: `Buckets the team's own ward placements into 90-second intervals across
the first 50 minutes, with per-type totals. Optionally restricted to one
role or champion.`,
	Args: cobra.NoArgs,
	RunE: runWards,
}

func init() {
	addFilterFlags(wardsCmd)
	wardsCmd.Flags().StringVar(&wardsRole, "role", "All", "role filter: All, TOP, JGL, MID, BOT, SUP")
}

func runWards(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	_, stats, _ := aggregator.Wards(db, viewFilters(), wardsRole)
	if stats.Error != "" {
		return errors.New(stats.Error)
	}
	if stats.Message != "" {
		fmt.Println(stats.Message)
		return nil
	}
	report.PrintWardTables(os.Stdout, stats)
	return nil
}
