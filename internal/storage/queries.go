package storage

import (
	"database/sql"
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"github.com/riftlab/go-lol-metrics/internal/model"
)

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// nullStr maps empty strings to NULL so placeholder values never pollute
// filter queries.
func nullStr(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// GameExists returns true if a game with the given id is already stored.
func (db *DB) GameExists(gameID string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM games WHERE game_id = ?", gameID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpsertGame stores a game record. Uses INSERT OR REPLACE for idempotency.
func (db *DB) UpsertGame(rec *model.GameRecord) error {
	draftJSON, err := json.Marshal(rec.Draft)
	if err != nil {
		return fmt.Errorf("marshal draft for %s: %w", rec.GameID, err)
	}

	args := []interface{}{
		rec.GameID, nullStr(rec.Tournament), nullStr(rec.Stage), nullStr(rec.Date), nullStr(rec.Patch),
		rec.BlueTeam, rec.RedTeam, nullStr(rec.Duration), string(rec.WinnerSide),
		nullStr(rec.SeriesID), rec.SeqNumber,
	}
	for _, ban := range rec.BlueBans {
		args = append(args, nullStr(ban))
	}
	for _, ban := range rec.RedBans {
		args = append(args, nullStr(ban))
	}
	for _, side := range []map[string]model.RolePlayer{rec.Blue, rec.Red} {
		for _, role := range model.Roles {
			p := side[role]
			args = append(args, nullStr(p.Champion), nullStr(p.PUUID), p.ParticipantID)
		}
	}
	args = append(args, string(draftJSON), nowStamp())

	_, err = db.conn.Exec(`
		INSERT OR REPLACE INTO games(
			game_id, tournament, stage, date, patch,
			blue_team, red_team, duration, winner_side, series_id, seq_number,
			blue_ban_1, blue_ban_2, blue_ban_3, blue_ban_4, blue_ban_5,
			red_ban_1, red_ban_2, red_ban_3, red_ban_4, red_ban_5,
			blue_top_champ, blue_top_puuid, blue_top_part_id,
			blue_jgl_champ, blue_jgl_puuid, blue_jgl_part_id,
			blue_mid_champ, blue_mid_puuid, blue_mid_part_id,
			blue_bot_champ, blue_bot_puuid, blue_bot_part_id,
			blue_sup_champ, blue_sup_puuid, blue_sup_part_id,
			red_top_champ, red_top_puuid, red_top_part_id,
			red_jgl_champ, red_jgl_puuid, red_jgl_part_id,
			red_mid_champ, red_mid_puuid, red_mid_part_id,
			red_bot_champ, red_bot_puuid, red_bot_part_id,
			red_sup_champ, red_sup_puuid, red_sup_part_id,
			draft_json, last_updated
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		args...,
	)
	return err
}

const gameColumns = `game_id, tournament, stage, date, patch,
	blue_team, red_team, duration, winner_side, series_id, seq_number,
	blue_ban_1, blue_ban_2, blue_ban_3, blue_ban_4, blue_ban_5,
	red_ban_1, red_ban_2, red_ban_3, red_ban_4, red_ban_5,
	blue_top_champ, blue_top_puuid, blue_top_part_id,
	blue_jgl_champ, blue_jgl_puuid, blue_jgl_part_id,
	blue_mid_champ, blue_mid_puuid, blue_mid_part_id,
	blue_bot_champ, blue_bot_puuid, blue_bot_part_id,
	blue_sup_champ, blue_sup_puuid, blue_sup_part_id,
	red_top_champ, red_top_puuid, red_top_part_id,
	red_jgl_champ, red_jgl_puuid, red_jgl_part_id,
	red_mid_champ, red_mid_puuid, red_mid_part_id,
	red_bot_champ, red_bot_puuid, red_bot_part_id,
	red_sup_champ, red_sup_puuid, red_sup_part_id,
	draft_json`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGame(row rowScanner) (*model.GameRecord, error) {
	rec := &model.GameRecord{
		Blue: make(map[string]model.RolePlayer, 5),
		Red:  make(map[string]model.RolePlayer, 5),
	}
	var (
		tournament, stage, date, patch, duration, seriesID sql.NullString
		winner                                             string
		bans                                               [10]sql.NullString
		slots                                              [10]struct {
			champ, puuid sql.NullString
			partID       sql.NullInt64
		}
		draftJSON sql.NullString
	)

	dest := []interface{}{
		&rec.GameID, &tournament, &stage, &date, &patch,
		&rec.BlueTeam, &rec.RedTeam, &duration, &winner, &seriesID, &rec.SeqNumber,
	}
	for i := range bans {
		dest = append(dest, &bans[i])
	}
	for i := range slots {
		dest = append(dest, &slots[i].champ, &slots[i].puuid, &slots[i].partID)
	}
	dest = append(dest, &draftJSON)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	rec.Tournament = tournament.String
	rec.Stage = stage.String
	rec.Date = date.String
	rec.Patch = patch.String
	rec.Duration = duration.String
	rec.WinnerSide = model.Side(winner)
	rec.SeriesID = seriesID.String
	for i := 0; i < 5; i++ {
		rec.BlueBans[i] = bans[i].String
		rec.RedBans[i] = bans[i+5].String
	}
	for i, role := range model.Roles {
		rec.Blue[role] = model.RolePlayer{
			Champion:      slots[i].champ.String,
			PUUID:         slots[i].puuid.String,
			ParticipantID: int(slots[i].partID.Int64),
		}
		rec.Red[role] = model.RolePlayer{
			Champion:      slots[i+5].champ.String,
			PUUID:         slots[i+5].puuid.String,
			ParticipantID: int(slots[i+5].partID.Int64),
		}
	}
	if draftJSON.Valid && draftJSON.String != "" {
		if err := json.Unmarshal([]byte(draftJSON.String), &rec.Draft); err != nil {
			return nil, fmt.Errorf("decode draft for %s: %w", rec.GameID, err)
		}
	}
	return rec, nil
}

// TeamTags returns every team tag seen across stored games, excluding the
// unresolved placeholders.
func (db *DB) TeamTags() ([]string, error) {
	rows, err := db.conn.Query(`
		SELECT DISTINCT blue_team AS tag FROM games
		WHERE blue_team NOT IN (?, 'Blue Team')
		UNION
		SELECT DISTINCT red_team AS tag FROM games
		WHERE red_team NOT IN (?, 'Red Team')
		ORDER BY tag`,
		model.UnknownBlueTag, model.UnknownRedTag,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// GamesForTeam returns every stored game a team played, most recent first.
func (db *DB) GamesForTeam(tag string) ([]*model.GameRecord, error) {
	rows, err := db.conn.Query(`
		SELECT `+gameColumns+` FROM games
		WHERE blue_team = ? OR red_team = ?
		ORDER BY date DESC, seq_number DESC`, tag, tag)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []*model.GameRecord
	for rows.Next() {
		rec, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, rec)
	}
	return games, rows.Err()
}

// AllGames returns every stored game, most recent first.
func (db *DB) AllGames() ([]*model.GameRecord, error) {
	rows, err := db.conn.Query(`SELECT ` + gameColumns + ` FROM games ORDER BY date DESC, seq_number DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []*model.GameRecord
	for rows.Next() {
		rec, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, rec)
	}
	return games, rows.Err()
}

// DeleteGame removes a game and every derived row tied to it.
func (db *DB) DeleteGame(gameID string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{
		"objective_events", "position_timeline", "all_wards",
		"first_wards", "position_snapshots", "jungle_paths", "games",
	} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE game_id = ?", gameID); err != nil {
			return fmt.Errorf("delete from %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// UpsertJunglePath stores one player's reconstructed path as JSON.
func (db *DB) UpsertJunglePath(gameID, puuid string, path []model.PathEntry) error {
	pathJSON, err := json.Marshal(path)
	if err != nil {
		return fmt.Errorf("marshal path for %s: %w", gameID, err)
	}
	_, err = db.conn.Exec(`
		INSERT OR REPLACE INTO jungle_paths(game_id, player_puuid, path_json, last_updated)
		VALUES (?, ?, ?, ?)`,
		gameID, puuid, string(pathJSON), nowStamp(),
	)
	return err
}

// JunglePath loads one player's stored path. Returns nil, nil when absent.
func (db *DB) JunglePath(gameID, puuid string) ([]model.PathEntry, error) {
	var pathJSON string
	err := db.conn.QueryRow(
		"SELECT path_json FROM jungle_paths WHERE game_id = ? AND player_puuid = ?",
		gameID, puuid,
	).Scan(&pathJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var path []model.PathEntry
	if err := json.Unmarshal([]byte(pathJSON), &path); err != nil {
		return nil, fmt.Errorf("decode path for %s: %w", gameID, err)
	}
	return path, nil
}

// UpsertPositionFrames stores targeted position snapshots, one row per
// captured timestamp.
func (db *DB) UpsertPositionFrames(frames []model.PositionFrame) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO position_snapshots(game_id, timestamp_seconds, positions_json, last_updated)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	stamp := nowStamp()
	for _, f := range frames {
		posJSON, err := json.Marshal(f.Positions)
		if err != nil {
			return fmt.Errorf("marshal frame %s@%ds: %w", f.GameID, f.TimestampSec, err)
		}
		if _, err := stmt.Exec(f.GameID, f.TimestampSec, string(posJSON), stamp); err != nil {
			return fmt.Errorf("insert position_snapshots: %w", err)
		}
	}
	return tx.Commit()
}

// PositionFramesForGame loads the stored targeted snapshots for a game.
func (db *DB) PositionFramesForGame(gameID string) ([]model.PositionFrame, error) {
	rows, err := db.conn.Query(`
		SELECT timestamp_seconds, positions_json FROM position_snapshots
		WHERE game_id = ? ORDER BY timestamp_seconds`, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var frames []model.PositionFrame
	for rows.Next() {
		f := model.PositionFrame{GameID: gameID}
		var posJSON string
		if err := rows.Scan(&f.TimestampSec, &posJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(posJSON), &f.Positions); err != nil {
			return nil, fmt.Errorf("decode frame %s@%ds: %w", gameID, f.TimestampSec, err)
		}
		frames = append(frames, f)
	}
	return frames, rows.Err()
}

// UpsertFirstWards stores first-ward rows, one per player.
func (db *DB) UpsertFirstWards(wards []model.WardEvent) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO first_wards(
			game_id, player_puuid, participant_id, player_name, champion_name,
			ward_type, timestamp_seconds, pos_x, pos_z, last_updated
		) VALUES (?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	stamp := nowStamp()
	for _, w := range wards {
		_, err := stmt.Exec(
			w.GameID, w.PUUID, w.ParticipantID, w.PlayerName, w.Champion,
			w.WardType, w.TimestampSec, w.X, w.Z, stamp,
		)
		if err != nil {
			return fmt.Errorf("insert first_wards: %w", err)
		}
	}
	return tx.Commit()
}

// ReplaceAllWards supersedes every ward row for a game.
func (db *DB) ReplaceAllWards(gameID string, wards []model.WardEvent) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM all_wards WHERE game_id = ?", gameID); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO all_wards(
			game_id, player_puuid, participant_id, player_name, champion_name,
			ward_type, timestamp_seconds, pos_x, pos_z, last_updated
		) VALUES (?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	stamp := nowStamp()
	for _, w := range wards {
		_, err := stmt.Exec(
			gameID, w.PUUID, w.ParticipantID, w.PlayerName, w.Champion,
			w.WardType, w.TimestampSec, w.X, w.Z, stamp,
		)
		if err != nil {
			return fmt.Errorf("insert all_wards: %w", err)
		}
	}
	return tx.Commit()
}

// wardRows scans a ward query result.
func wardRows(rows *sql.Rows, gameID string) ([]model.WardEvent, error) {
	defer rows.Close()
	var wards []model.WardEvent
	for rows.Next() {
		w := model.WardEvent{GameID: gameID}
		err := rows.Scan(
			&w.PUUID, &w.ParticipantID, &w.PlayerName, &w.Champion,
			&w.WardType, &w.TimestampSec, &w.X, &w.Z,
		)
		if err != nil {
			return nil, err
		}
		wards = append(wards, w)
	}
	return wards, rows.Err()
}

// AllWardsForGame returns every stored ward placement for a game in time
// order.
func (db *DB) AllWardsForGame(gameID string) ([]model.WardEvent, error) {
	rows, err := db.conn.Query(`
		SELECT player_puuid, participant_id, player_name, champion_name,
		       ward_type, timestamp_seconds, pos_x, pos_z
		FROM all_wards WHERE game_id = ? ORDER BY timestamp_seconds`, gameID)
	if err != nil {
		return nil, err
	}
	return wardRows(rows, gameID)
}

// FirstWardsForGame returns the stored first-ward rows for a game.
func (db *DB) FirstWardsForGame(gameID string) ([]model.WardEvent, error) {
	rows, err := db.conn.Query(`
		SELECT player_puuid, participant_id, player_name, champion_name,
		       ward_type, timestamp_seconds, pos_x, pos_z
		FROM first_wards WHERE game_id = ? ORDER BY timestamp_seconds`, gameID)
	if err != nil {
		return nil, err
	}
	return wardRows(rows, gameID)
}

// ReplaceTimeline supersedes the full position timeline for a game.
func (db *DB) ReplaceTimeline(gameID string, samples []model.PositionSample) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM position_timeline WHERE game_id = ?", gameID); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO position_timeline(game_id, timestamp_ms, participant_id, player_puuid, pos_x, pos_z, last_updated)
		VALUES (?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	stamp := nowStamp()
	for _, s := range samples {
		if _, err := stmt.Exec(gameID, s.TimestampMS, s.ParticipantID, s.PUUID, s.X, s.Z, stamp); err != nil {
			return fmt.Errorf("insert position_timeline: %w", err)
		}
	}
	return tx.Commit()
}

// TimelineRange returns a game's position samples with timestamp_ms in
// [fromMS, toMS], ordered by time. Pass toMS < 0 for no upper bound.
func (db *DB) TimelineRange(gameID string, fromMS, toMS int64) ([]model.PositionSample, error) {
	query := `
		SELECT timestamp_ms, participant_id, player_puuid, pos_x, pos_z
		FROM position_timeline WHERE game_id = ? AND timestamp_ms >= ?`
	args := []interface{}{gameID, fromMS}
	if toMS >= 0 {
		query += " AND timestamp_ms <= ?"
		args = append(args, toMS)
	}
	query += " ORDER BY timestamp_ms"

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []model.PositionSample
	for rows.Next() {
		s := model.PositionSample{GameID: gameID}
		if err := rows.Scan(&s.TimestampMS, &s.ParticipantID, &s.PUUID, &s.X, &s.Z); err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, rows.Err()
}

// ReplaceObjectiveEvents supersedes the derived objective rows for a game.
func (db *DB) ReplaceObjectiveEvents(gameID string, events []model.ObjectiveEvent) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM objective_events WHERE game_id = ?", gameID); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO objective_events(
			game_id, timestamp_ms, objective_type, objective_subtype,
			team_id, killer_participant_id, lane, last_updated
		) VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	stamp := nowStamp()
	for _, e := range events {
		_, err := stmt.Exec(
			gameID, e.TimestampMS, e.Type, e.Subtype,
			e.TeamID, e.KillerID, nullStr(e.Lane), stamp,
		)
		if err != nil {
			return fmt.Errorf("insert objective_events: %w", err)
		}
	}
	return tx.Commit()
}

// ObjectiveEventsForGame returns a game's objective rows in time order.
func (db *DB) ObjectiveEventsForGame(gameID string) ([]model.ObjectiveEvent, error) {
	rows, err := db.conn.Query(`
		SELECT timestamp_ms, objective_type, objective_subtype, team_id, killer_participant_id, lane
		FROM objective_events WHERE game_id = ? ORDER BY timestamp_ms`, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.ObjectiveEvent
	for rows.Next() {
		e := model.ObjectiveEvent{GameID: gameID}
		var lane sql.NullString
		if err := rows.Scan(&e.TimestampMS, &e.Type, &e.Subtype, &e.TeamID, &e.KillerID, &lane); err != nil {
			return nil, err
		}
		e.Lane = lane.String
		events = append(events, e)
	}
	return events, rows.Err()
}
