package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dropForce bool
	dropGame  string
)

// dropCmd deletes the metrics database, or a single game with --game.
var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Delete the metrics database or a single game",
	Long:  "Delete the SQLite metrics database, or with --game just that game and its derived rows. Re-run fetch afterwards to rebuild.",
	Args:  cobra.NoArgs,
	RunE:  runDrop,
}

func init() {
	dropCmd.Flags().BoolVarP(&dropForce, "force", "f", false, "skip confirmation prompt")
	dropCmd.Flags().StringVar(&dropGame, "game", "", "only delete this game id")
}

func runDrop(cmd *cobra.Command, args []string) error {
	if dropGame != "" {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.DeleteGame(dropGame); err != nil {
			return fmt.Errorf("delete game: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Deleted game %s\n", dropGame)
		return nil
	}

	if !dropForce {
		fmt.Fprintf(os.Stderr, "This will permanently delete: %s\n", cfg.DBPath)
		fmt.Fprintf(os.Stderr, "Re-run with --force to confirm.\n")
		return nil
	}
	if err := os.Remove(cfg.DBPath); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(os.Stdout, "Database does not exist, nothing to drop.")
			return nil
		}
		return fmt.Errorf("remove database: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Deleted: %s\n", cfg.DBPath)
	return nil
}
