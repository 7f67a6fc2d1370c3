package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/riftlab/go-lol-metrics/internal/geometry"
	"github.com/riftlab/go-lol-metrics/internal/grid"
	"github.com/riftlab/go-lol-metrics/internal/model"
	"github.com/riftlab/go-lol-metrics/internal/parser"
	"github.com/riftlab/go-lol-metrics/internal/storage"
)

var fetchSkipExisting bool

// fetchCmd downloads every series of the configured tournament and derives
// the per-game analytics.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch tournament series and derive per-game analytics",
	Long: `Lists the configured tournament's series on the GRID platform, then for
every game downloads the end-of-game summary and the livestats telemetry
and stores the derived data: game record and draft, objective events,
position timeline, jungle paths, early snapshots, and ward placements.

Failures are per-game: a series with one broken game still contributes
its other games.`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchSkipExisting, "skip-existing", true, "skip games already stored")
}

func newGridClient() (*grid.Client, error) {
	if cfg.Grid.APIKey == "" {
		return nil, fmt.Errorf("GRID API key not set: use LOLMETRICS_GRID_API_KEY or grid.api_key in the config file")
	}
	delay := time.Duration(cfg.Grid.RequestDelayMS) * time.Millisecond
	return grid.NewClient(cfg.Grid.APIKey, cfg.Grid.BaseURL, delay, log), nil
}

func runFetch(cmd *cobra.Command, args []string) error {
	if cfg.Grid.TournamentID == "" {
		return fmt.Errorf("tournament id not set: use LOLMETRICS_GRID_TOURNAMENT_ID or grid.tournament_id in the config file")
	}
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

	series, err := client.TournamentSeries(ctx, cfg.Grid.TournamentID, cfg.Grid.StartDate)
	if err != nil {
		return fmt.Errorf("list series: %w", err)
	}
	log.Info().Int("series", len(series)).Str("tournament", cfg.Grid.TournamentID).Msg("series discovered")

	stored := 0
	for i, s := range series {
		log.Info().Str("series", s.ID).Str("scheduled", s.StartTimeScheduled).
			Int("n", i+1).Int("total", len(series)).Msg("processing series")
		n, err := fetchSeries(ctx, db, client, classifier, s.ID, cfg.Grid.TournamentName)
		if err != nil {
			log.Error().Err(err).Str("series", s.ID).Msg("series failed, skipping")
			continue
		}
		stored += n
	}
	log.Info().Int("games", stored).Msg("fetch complete")
	return nil
}

// fetchSeries stores every game of one series under the given tournament
// label and returns how many landed.
func fetchSeries(ctx context.Context, db *storage.DB, client *grid.Client, classifier *geometry.Classifier, seriesID, tournament string) (int, error) {
	drafts := make(map[int][]model.DraftAction)
	endGames, err := client.SeriesEndState(ctx, seriesID)
	if err != nil {
		log.Warn().Err(err).Str("series", seriesID).Msg("no end state, drafts unavailable")
	}
	for _, eg := range endGames {
		actions, err := parser.ParseDraftActions(eg.DraftActions)
		if err != nil {
			log.Warn().Err(err).Str("series", seriesID).Int("game", eg.SequenceNumber).Msg("bad draft actions")
			continue
		}
		drafts[eg.SequenceNumber] = actions
	}

	client.Pace(ctx)
	games, err := client.SeriesGames(ctx, seriesID)
	if err != nil {
		return 0, fmt.Errorf("list games: %w", err)
	}

	stored := 0
	for _, game := range games {
		if err := fetchGame(ctx, db, client, classifier, seriesID, tournament, game, drafts[game.SequenceNumber]); err != nil {
			log.Error().Err(err).Str("series", seriesID).Int("game", game.SequenceNumber).Msg("game failed, skipping")
			continue
		}
		stored++
	}
	return stored, nil
}

// fetchGame downloads, parses, and stores one game end to end.
func fetchGame(ctx context.Context, db *storage.DB, client *grid.Client, classifier *geometry.Classifier, seriesID, tournament string, game grid.SeriesGame, draft []model.DraftAction) error {
	client.Pace(ctx)
	summary, err := client.GameSummary(ctx, seriesID, game.SequenceNumber)
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	rec, manifest, err := parser.ParseGameSummary(summary)
	if err != nil {
		return fmt.Errorf("parse summary: %w", err)
	}
	rec.SeriesID = seriesID
	rec.SeqNumber = game.SequenceNumber
	rec.Tournament = tournament
	rec.Draft = draft

	if fetchSkipExisting {
		exists, err := db.GameExists(rec.GameID)
		if err != nil {
			return err
		}
		if exists {
			log.Debug().Str("game", rec.GameID).Msg("already stored")
			return nil
		}
	}
	if err := db.UpsertGame(rec); err != nil {
		return fmt.Errorf("store game: %w", err)
	}

	client.Pace(ctx)
	livestats, err := client.GameLivestats(ctx, seriesID, game.SequenceNumber)
	if err != nil {
		if errors.Is(err, grid.ErrNotFound) {
			log.Warn().Str("game", rec.GameID).Msg("no livestats file, metadata only")
			return nil
		}
		return fmt.Errorf("livestats: %w", err)
	}
	if err := storeDerived(db, classifier, rec, manifest, livestats); err != nil {
		return err
	}

	log.Info().Str("game", rec.GameID).Str("blue", rec.BlueTeam).Str("red", rec.RedTeam).Msg("stored")
	return nil
}

// storeDerived extracts and stores everything the views read from a game's
// livestats telemetry.
func storeDerived(db *storage.DB, classifier *geometry.Classifier, rec *model.GameRecord, manifest model.Manifest, livestats []byte) error {
	if err := db.ReplaceObjectiveEvents(rec.GameID, parser.ExtractObjectiveEvents(livestats, rec.GameID, manifest)); err != nil {
		return fmt.Errorf("store objectives: %w", err)
	}
	if err := db.ReplaceTimeline(rec.GameID, parser.ExtractPositionTimeline(livestats, rec.GameID)); err != nil {
		return fmt.Errorf("store timeline: %w", err)
	}

	for _, side := range []model.Side{model.SideBlue, model.SideRed} {
		jgl, ok := rec.Player(side, model.RoleJgl)
		if !ok || jgl.PUUID == "" {
			continue
		}
		path := parser.ReconstructPath(livestats, classifier, jgl.PUUID, side)
		if len(path) == 0 {
			continue
		}
		if err := db.UpsertJunglePath(rec.GameID, jgl.PUUID, path); err != nil {
			return fmt.Errorf("store jungle path: %w", err)
		}
	}

	frames := parser.ExtractPositionFrames(livestats, rec.GameID, nil, 0)
	if err := db.UpsertPositionFrames(frames); err != nil {
		return fmt.Errorf("store frames: %w", err)
	}
	if err := db.UpsertFirstWards(parser.ExtractFirstWards(livestats, rec.GameID, manifest)); err != nil {
		return fmt.Errorf("store first wards: %w", err)
	}
	if err := db.ReplaceAllWards(rec.GameID, parser.ExtractAllWards(livestats, rec.GameID, manifest)); err != nil {
		return fmt.Errorf("store wards: %w", err)
	}
	return nil
}
