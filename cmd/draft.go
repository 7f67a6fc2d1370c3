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

var (
	draftTeam  string
	draftLimit int
)

// draftCmd shows draft statistics: tournament-wide without --team, one
// team's draft habits with it.
var draftCmd = &cobra.Command{
	Use:     "draft",
	Aliases: []string{"tournament"},
	Short:   "Draft analysis, tournament-wide or per team",
	Long: `Without --team: champion presence, per-role pick counts, and duo
pairings across every stored game. With --team: the team's record, ban
rotations, pick-phase role patterns, and series history.`,
	Args: cobra.NoArgs,
	RunE: runDraft,
}

func init() {
	draftCmd.Flags().StringVar(&draftTeam, "team", "", "team tag (omit for the tournament-wide view)")
	draftCmd.Flags().IntVar(&draftLimit, "limit", 20, "max rows in the presence and duo tables (0 for all)")
}

func runDraft(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	champData, err := ddragon.NewClient().Champions(cmd.Context())
	if err != nil {
		log.Warn().Err(err).Msg("champion catalog unavailable, ban ids will not resolve")
	}

	if draftTeam == "" {
		_, stats, err := aggregator.OverallDraft(db, champData)
		if err != nil {
			return err
		}
		if stats.Message != "" {
			fmt.Println(stats.Message)
			return nil
		}
		report.PrintOverallDraft(os.Stdout, stats, draftLimit)
		return nil
	}

	_, stats, err := aggregator.TeamDraft(db, aggregator.Filters{Team: draftTeam}, champData)
	if err != nil {
		return err
	}
	if stats.Error != "" {
		return errors.New(stats.Error)
	}
	if stats.Message != "" {
		fmt.Println(stats.Message)
		return nil
	}
	report.PrintTeamDraft(os.Stdout, stats)
	return nil
}
