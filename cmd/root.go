package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/riftlab/go-lol-metrics/internal/aggregator"
	"github.com/riftlab/go-lol-metrics/internal/config"
	"github.com/riftlab/go-lol-metrics/internal/storage"
)

var (
	cfgPath    string
	dbOverride string

	cfg config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lolmetrics",
	Short: "LoL esports telemetry analytics",
	Long:  "Fetch professional League of Legends series from the GRID platform and compute team scouting views from the stored telemetry.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if dbOverride != "" {
			cfg.DBPath = dbOverride
		}
		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = zerolog.InfoLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(level).
			With().Timestamp().Logger()
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: ./lolmetrics.yaml, ~/.lolmetrics.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbOverride, "db", "", "path to SQLite database (overrides config)")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(fetchScrimsCmd)
	rootCmd.AddCommand(refreshWardsCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(jungleCmd)
	rootCmd.AddCommand(objectivesCmd)
	rootCmd.AddCommand(swapCmd)
	rootCmd.AddCommand(proximityCmd)
	rootCmd.AddCommand(wardsCmd)
	rootCmd.AddCommand(positionsCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(dropCmd)
}

func openDB() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return db, nil
}

// Filter flags shared by the analytic view commands.
var (
	flagTeam       string
	flagSide       string
	flagChampion   string
	flagLastN      int
	flagTournament string
)

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagTeam, "team", "", "team tag (required; see the teams command)")
	cmd.Flags().StringVar(&flagSide, "side", aggregator.SideAll, "side filter: all, blue, red")
	cmd.Flags().StringVar(&flagChampion, "champion", "All", "champion filter")
	cmd.Flags().IntVar(&flagLastN, "last", 0, "only the N most recent games")
	cmd.Flags().StringVar(&flagTournament, "tournament", "", "tournament label filter (e.g. Scrims; empty keeps all)")
	_ = cmd.MarkFlagRequired("team")
}

func viewFilters() aggregator.Filters {
	return aggregator.Filters{
		Team:       flagTeam,
		Side:       flagSide,
		Champion:   flagChampion,
		LastN:      flagLastN,
		Tournament: flagTournament,
	}
}
