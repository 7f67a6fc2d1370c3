package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/riftlab/go-lol-metrics/internal/geometry"
)

// scrimTournament labels scrim games in storage so the views can keep them
// apart from official games via --tournament.
const scrimTournament = "Scrims"

var fetchScrimsDays int

// fetchScrimsCmd downloads recent scrim series. Scrims are not tied to a
// tournament, so discovery goes by series type and a sliding date window.
var fetchScrimsCmd = &cobra.Command{
	Use:   "fetch-scrims",
	Short: "Fetch recent scrim games and derive per-game analytics",
	Long: `Lists scrim series played in the last --days days on the GRID platform
and stores each game the same way fetch does, labeled "Scrims". Pass
--tournament Scrims to the view commands to analyze them separately.`,
	Args: cobra.NoArgs,
	RunE: runFetchScrims,
}

func init() {
	fetchScrimsCmd.Flags().IntVar(&fetchScrimsDays, "days", 30, "how far back to look for scrim series")
}

func runFetchScrims(cmd *cobra.Command, args []string) error {
	client, err := newGridClient()
	if err != nil {
		return err
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	classifier := geometry.NewClassifier()

	since := time.Now().UTC().AddDate(0, 0, -fetchScrimsDays).Format("2006-01-02T15:04:05Z")
	series, err := client.ScrimSeries(ctx, since)
	if err != nil {
		return err
	}
	log.Info().Int("series", len(series)).Str("since", since).Msg("scrim series discovered")

	stored := 0
	for i, s := range series {
		log.Info().Str("series", s.ID).Str("scheduled", s.StartTimeScheduled).
			Int("n", i+1).Int("total", len(series)).Msg("processing series")
		n, err := fetchSeries(ctx, db, client, classifier, s.ID, scrimTournament)
		if err != nil {
			log.Error().Err(err).Str("series", s.ID).Msg("series failed, skipping")
			continue
		}
		stored += n
	}
	log.Info().Int("games", stored).Msg("scrim fetch complete")
	return nil
}
