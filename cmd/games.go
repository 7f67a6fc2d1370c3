package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/riftlab/go-lol-metrics/internal/aggregator"
	"github.com/riftlab/go-lol-metrics/internal/report"
)

// gamesCmd lists a team's stored games, most recent first.
var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List a team's stored games",
	Args:  cobra.NoArgs,
	RunE:  runGames,
}

func init() {
	addFilterFlags(gamesCmd)
}

func runGames(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	games, err := aggregator.SelectTeamGames(db, viewFilters())
	if err != nil {
		return err
	}
	report.PrintGameList(os.Stdout, games)
	return nil
}
