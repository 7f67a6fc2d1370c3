package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a raw SQL query against the metrics database",
	Long: `Run an arbitrary SQL query against the metrics database and print results as a table.

Schema overview:
  games(game_id, tournament, stage, date, patch, blue_team, red_team, duration,
    winner_side, series_id, seq_number, blue_ban1..5, red_ban1..5,
    blue_top_champ/_puuid/_part_id ... red_sup_champ/_puuid/_part_id, draft_json)
  jungle_paths(game_id, player_puuid, path_json)
  position_snapshots(game_id, timestamp_seconds, positions_json)
  first_wards(game_id, player_puuid, participant_id, player_name, champion_name,
    ward_type, timestamp_seconds, pos_x, pos_z)
  all_wards(same columns as first_wards)
  position_timeline(game_id, timestamp_ms, participant_id, player_puuid, pos_x, pos_z)
  objective_events(game_id, timestamp_ms, objective_type, objective_subtype,
    team_id, killer_participant_id, lane)`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("(no rows)")
		return nil
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))

	colsAny := make([]any, len(cols))
	for i, c := range cols {
		colsAny[i] = c
	}
	table.Header(colsAny...)

	for _, row := range rows {
		rowAny := make([]any, len(row))
		for i, v := range row {
			rowAny[i] = v
		}
		table.Append(rowAny...)
	}
	table.Render()
	fmt.Fprintf(os.Stdout, "\n(%d rows)\n", len(rows))
	return nil
}
