package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riftlab/go-lol-metrics/internal/aggregator"
	"github.com/riftlab/go-lol-metrics/internal/ddragon"
	"github.com/riftlab/go-lol-metrics/internal/report"
)

// positionsCmd shows per-game opening position frames.
var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "Start-of-game positions for a team's games",
	Long: `Prints the stored position timeline for the opening 100 seconds of each
game, frame by frame. Champion names are resolved through Data Dragon.`,
	Args: cobra.NoArgs,
	RunE: runPositions,
}

func init() {
	addFilterFlags(positionsCmd)
}

func runPositions(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	champData, err := ddragon.NewClient().Champions(cmd.Context())
	if err != nil {
		log.Warn().Err(err).Msg("champion catalog unavailable, icons skipped")
	}

	_, stats, _ := aggregator.StartPositions(db, viewFilters(), champData)
	if stats.Error != "" {
		return errors.New(stats.Error)
	}
	if stats.Message != "" {
		fmt.Println(stats.Message)
		return nil
	}
	report.PrintStartPositions(os.Stdout, stats)
	return nil
}
