package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/riftlab/go-lol-metrics/internal/report"
)

// teamsCmd lists the team tags present in the database.
var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List stored teams",
	Args:  cobra.NoArgs,
	RunE:  runTeams,
}

func runTeams(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	teams, err := db.TeamTags()
	if err != nil {
		return err
	}
	report.PrintTeams(os.Stdout, teams)
	return nil
}
