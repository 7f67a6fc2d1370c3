package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riftlab/go-lol-metrics/internal/grid"
	"github.com/riftlab/go-lol-metrics/internal/parser"
)

// refreshWardsCmd re-downloads livestats for every stored game and rebuilds
// the full ward table, leaving everything else untouched. Useful after the
// ward whitelist changes.
var refreshWardsCmd = &cobra.Command{
	Use:   "refresh-wards",
	Short: "Re-extract ward placements for every stored game",
	Args:  cobra.NoArgs,
	RunE:  runRefreshWards,
}

func runRefreshWards(cmd *cobra.Command, args []string) error {
	client, err := newGridClient()
	if err != nil {
		return err
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	recs, err := db.AllGames()
	if err != nil {
		return fmt.Errorf("list games: %w", err)
	}
	log.Info().Int("games", len(recs)).Msg("refreshing wards")

	ctx := cmd.Context()
	refreshed := 0
	for _, rec := range recs {
		if rec.SeriesID == "" || rec.SeqNumber == 0 {
			log.Warn().Str("game", rec.GameID).Msg("no series reference, skipping")
			continue
		}

		client.Pace(ctx)
		summary, err := client.GameSummary(ctx, rec.SeriesID, rec.SeqNumber)
		if err != nil {
			log.Error().Err(err).Str("game", rec.GameID).Msg("summary download failed, skipping")
			continue
		}
		_, manifest, err := parser.ParseGameSummary(summary)
		if err != nil {
			log.Error().Err(err).Str("game", rec.GameID).Msg("summary parse failed, skipping")
			continue
		}

		client.Pace(ctx)
		livestats, err := client.GameLivestats(ctx, rec.SeriesID, rec.SeqNumber)
		if err != nil {
			if errors.Is(err, grid.ErrNotFound) {
				log.Warn().Str("game", rec.GameID).Msg("no livestats file")
			} else {
				log.Error().Err(err).Str("game", rec.GameID).Msg("livestats download failed, skipping")
			}
			continue
		}

		wards := parser.ExtractAllWards(livestats, rec.GameID, manifest)
		if err := db.ReplaceAllWards(rec.GameID, wards); err != nil {
			return fmt.Errorf("store wards for %s: %w", rec.GameID, err)
		}
		log.Info().Str("game", rec.GameID).Int("wards", len(wards)).Msg("refreshed")
		refreshed++
	}
	log.Info().Int("refreshed", refreshed).Int("total", len(recs)).Msg("done")
	return nil
}
