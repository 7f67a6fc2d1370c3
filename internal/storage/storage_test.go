package storage

import (
	"path/filepath"
	"testing"

	"github.com/riftlab/go-lol-metrics/internal/model"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func makeGame(id, blue, red, date string) *model.GameRecord {
	return &model.GameRecord{
		GameID:     id,
		Tournament: "Worlds",
		Date:       date,
		Patch:      "14.18",
		BlueTeam:   blue,
		RedTeam:    red,
		Duration:   "31:02",
		WinnerSide: model.SideBlue,
		SeriesID:   "s1",
		SeqNumber:  1,
		BlueBans:   [5]string{"266", "", "103", "", ""},
		Blue: map[string]model.RolePlayer{
			model.RoleTop: {Champion: "Gnar", PUUID: "b-top", ParticipantID: 1},
			model.RoleJgl: {Champion: "LeeSin", PUUID: "b-jgl", ParticipantID: 2},
		},
		Red: map[string]model.RolePlayer{
			model.RoleJgl: {Champion: "Viego", PUUID: "r-jgl", ParticipantID: 7},
		},
		Draft: []model.DraftAction{
			{Sequence: 1, Type: "ban", TeamID: "100", Champion: "Aatrox", ChampID: "266", ActionID: "a1"},
		},
	}
}

func TestUpsertGameRoundTrip(t *testing.T) {
	db := openTestDB(t)

	rec := makeGame("g1", "T1", "GEN", "2025-01-10 15:00:00")
	if err := db.UpsertGame(rec); err != nil {
		t.Fatalf("UpsertGame: %v", err)
	}

	exists, err := db.GameExists("g1")
	if err != nil || !exists {
		t.Fatalf("GameExists = %v, %v", exists, err)
	}
	if exists, _ := db.GameExists("nope"); exists {
		t.Error("unknown game should not exist")
	}

	games, err := db.GamesForTeam("T1")
	if err != nil {
		t.Fatalf("GamesForTeam: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("got %d games", len(games))
	}
	got := games[0]
	if got.GameID != "g1" || got.Tournament != "Worlds" || got.Patch != "14.18" {
		t.Errorf("round trip = %+v", got)
	}
	if got.WinnerSide != model.SideBlue || got.Duration != "31:02" || got.SeriesID != "s1" {
		t.Errorf("round trip = %+v", got)
	}
	if got.BlueBans != rec.BlueBans {
		t.Errorf("blue bans = %v", got.BlueBans)
	}
	if p := got.Blue[model.RoleJgl]; p.Champion != "LeeSin" || p.PUUID != "b-jgl" || p.ParticipantID != 2 {
		t.Errorf("blue jgl = %+v", p)
	}
	if p := got.Red[model.RoleJgl]; p.Champion != "Viego" {
		t.Errorf("red jgl = %+v", p)
	}
	if len(got.Draft) != 1 || got.Draft[0].Champion != "Aatrox" {
		t.Errorf("draft = %+v", got.Draft)
	}

	// Replaces on re-upsert rather than duplicating.
	rec.Duration = "35:00"
	if err := db.UpsertGame(rec); err != nil {
		t.Fatalf("second UpsertGame: %v", err)
	}
	games, _ = db.GamesForTeam("T1")
	if len(games) != 1 || games[0].Duration != "35:00" {
		t.Errorf("after replace: %d games, duration %q", len(games), games[0].Duration)
	}
}

func TestGamesForTeamOrdering(t *testing.T) {
	db := openTestDB(t)

	db.UpsertGame(makeGame("old", "T1", "GEN", "2025-01-01 12:00:00"))
	db.UpsertGame(makeGame("new", "GEN", "T1", "2025-02-01 12:00:00"))

	games, err := db.GamesForTeam("T1")
	if err != nil {
		t.Fatalf("GamesForTeam: %v", err)
	}
	if len(games) != 2 || games[0].GameID != "new" {
		t.Errorf("ordering: %+v", games)
	}
	if games, _ := db.GamesForTeam("DK"); len(games) != 0 {
		t.Errorf("unrelated team matched %d games", len(games))
	}
}

func TestTeamTagsExcludesPlaceholders(t *testing.T) {
	db := openTestDB(t)

	db.UpsertGame(makeGame("g1", "T1", "GEN", "2025-01-01 12:00:00"))
	db.UpsertGame(makeGame("g2", model.UnknownBlueTag, "DK", "2025-01-02 12:00:00"))
	db.UpsertGame(makeGame("g3", "KT", model.UnknownRedTag, "2025-01-03 12:00:00"))

	tags, err := db.TeamTags()
	if err != nil {
		t.Fatalf("TeamTags: %v", err)
	}
	want := []string{"DK", "GEN", "KT", "T1"}
	if len(tags) != len(want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("tags = %v, want %v", tags, want)
		}
	}
}

func TestJunglePath(t *testing.T) {
	db := openTestDB(t)

	path, err := db.JunglePath("g1", "b-jgl")
	if err != nil || path != nil {
		t.Fatalf("absent path = %v, %v, want nil, nil", path, err)
	}

	stored := []model.PathEntry{
		{Action: "Krugs", Time: 95},
		{Action: "Recall", Time: 200},
	}
	if err := db.UpsertJunglePath("g1", "b-jgl", stored); err != nil {
		t.Fatalf("UpsertJunglePath: %v", err)
	}

	path, err = db.JunglePath("g1", "b-jgl")
	if err != nil {
		t.Fatalf("JunglePath: %v", err)
	}
	if len(path) != 2 || path[0].Action != "Krugs" || path[0].Time != 95 {
		t.Errorf("path = %+v", path)
	}
}

func TestWardStorage(t *testing.T) {
	db := openTestDB(t)

	first := []model.WardEvent{
		{GameID: "g1", PUUID: "b-sup", ParticipantID: 5, PlayerName: "T1 Keria", Champion: "Rell", WardType: "Stealth Ward", TimestampSec: 62, X: 4000, Z: 9000},
	}
	if err := db.UpsertFirstWards(first); err != nil {
		t.Fatalf("UpsertFirstWards: %v", err)
	}
	got, err := db.FirstWardsForGame("g1")
	if err != nil || len(got) != 1 {
		t.Fatalf("FirstWardsForGame = %+v, %v", got, err)
	}
	if got[0].WardType != "Stealth Ward" || got[0].X != 4000 {
		t.Errorf("first ward = %+v", got[0])
	}

	all := []model.WardEvent{
		{PUUID: "b-sup", ParticipantID: 5, WardType: "Stealth Ward", TimestampSec: 62},
		{PUUID: "b-jgl", ParticipantID: 2, WardType: "Control Ward", TimestampSec: 40},
	}
	if err := db.ReplaceAllWards("g1", all); err != nil {
		t.Fatalf("ReplaceAllWards: %v", err)
	}
	wards, _ := db.AllWardsForGame("g1")
	if len(wards) != 2 || wards[0].PUUID != "b-jgl" {
		t.Errorf("all wards (time order) = %+v", wards)
	}

	// A second replace supersedes, never appends.
	if err := db.ReplaceAllWards("g1", all[:1]); err != nil {
		t.Fatalf("second ReplaceAllWards: %v", err)
	}
	wards, _ = db.AllWardsForGame("g1")
	if len(wards) != 1 {
		t.Errorf("after replace: %+v", wards)
	}
}

func TestTimelineRange(t *testing.T) {
	db := openTestDB(t)

	samples := []model.PositionSample{
		{TimestampMS: 100000, ParticipantID: 1, PUUID: "b-top", X: 10, Z: 20},
		{TimestampMS: 200000, ParticipantID: 1, PUUID: "b-top", X: 30, Z: 40},
		{TimestampMS: 300000, ParticipantID: 1, PUUID: "b-top", X: 50, Z: 60},
	}
	if err := db.ReplaceTimeline("g1", samples); err != nil {
		t.Fatalf("ReplaceTimeline: %v", err)
	}

	got, err := db.TimelineRange("g1", 150000, 250000)
	if err != nil {
		t.Fatalf("TimelineRange: %v", err)
	}
	if len(got) != 1 || got[0].TimestampMS != 200000 || got[0].X != 30 {
		t.Errorf("bounded range = %+v", got)
	}

	got, _ = db.TimelineRange("g1", 150000, -1)
	if len(got) != 2 {
		t.Errorf("open-ended range = %+v", got)
	}
	if got, _ := db.TimelineRange("other", 0, -1); len(got) != 0 {
		t.Errorf("wrong game matched %d samples", len(got))
	}
}

func TestObjectiveEvents(t *testing.T) {
	db := openTestDB(t)

	events := []model.ObjectiveEvent{
		{TimestampMS: 840000, Type: model.ObjTower, Subtype: "OUTER", TeamID: 100, KillerID: 1, Lane: "MID_LANE"},
		{TimestampMS: 600000, Type: model.ObjDragon, Subtype: "MOUNTAIN", TeamID: 200, KillerID: 7},
	}
	if err := db.ReplaceObjectiveEvents("g1", events); err != nil {
		t.Fatalf("ReplaceObjectiveEvents: %v", err)
	}

	got, err := db.ObjectiveEventsForGame("g1")
	if err != nil {
		t.Fatalf("ObjectiveEventsForGame: %v", err)
	}
	if len(got) != 2 || got[0].Type != model.ObjDragon {
		t.Fatalf("events (time order) = %+v", got)
	}
	if got[0].Lane != "" {
		t.Errorf("dragon lane = %q, want empty for NULL", got[0].Lane)
	}
	if got[1].Lane != "MID_LANE" || got[1].Subtype != "OUTER" {
		t.Errorf("tower = %+v", got[1])
	}
}

func TestPositionFrames(t *testing.T) {
	db := openTestDB(t)

	frames := []model.PositionFrame{
		{GameID: "g1", TimestampSec: 60, Positions: []model.FramePosition{
			{ParticipantID: 1, Champion: "Gnar", TeamID: 100, X: 500, Z: 600},
		}},
		{GameID: "g1", TimestampSec: 40, Positions: []model.FramePosition{
			{ParticipantID: 1, Champion: "Gnar", TeamID: 100, X: 400, Z: 500},
		}},
	}
	if err := db.UpsertPositionFrames(frames); err != nil {
		t.Fatalf("UpsertPositionFrames: %v", err)
	}

	got, err := db.PositionFramesForGame("g1")
	if err != nil {
		t.Fatalf("PositionFramesForGame: %v", err)
	}
	if len(got) != 2 || got[0].TimestampSec != 40 {
		t.Fatalf("frames = %+v", got)
	}
	if got[0].Positions[0].X != 400 || got[1].Positions[0].Champion != "Gnar" {
		t.Errorf("frames = %+v", got)
	}
}

func TestDeleteGame(t *testing.T) {
	db := openTestDB(t)

	db.UpsertGame(makeGame("g1", "T1", "GEN", "2025-01-01 12:00:00"))
	db.UpsertJunglePath("g1", "b-jgl", []model.PathEntry{{Action: "Krugs", Time: 95}})
	db.ReplaceAllWards("g1", []model.WardEvent{{PUUID: "b-sup", WardType: "Control Ward", TimestampSec: 40}})
	db.UpsertGame(makeGame("g2", "T1", "DK", "2025-01-02 12:00:00"))

	if err := db.DeleteGame("g1"); err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}
	if exists, _ := db.GameExists("g1"); exists {
		t.Error("g1 should be gone")
	}
	if path, _ := db.JunglePath("g1", "b-jgl"); path != nil {
		t.Error("g1 path should be gone")
	}
	if wards, _ := db.AllWardsForGame("g1"); len(wards) != 0 {
		t.Error("g1 wards should be gone")
	}
	if exists, _ := db.GameExists("g2"); !exists {
		t.Error("g2 must survive")
	}
}

func TestQueryRaw(t *testing.T) {
	db := openTestDB(t)

	db.UpsertGame(makeGame("g1", "T1", "GEN", "2025-01-01 12:00:00"))

	cols, rows, err := db.QueryRaw("SELECT game_id, blue_team, stage FROM games")
	if err != nil {
		t.Fatalf("QueryRaw: %v", err)
	}
	if len(cols) != 3 || cols[0] != "game_id" {
		t.Errorf("cols = %v", cols)
	}
	if len(rows) != 1 || rows[0][0] != "g1" || rows[0][1] != "T1" {
		t.Errorf("rows = %v", rows)
	}
	// Empty stage is stored as NULL.
	if rows[0][2] != "NULL" {
		t.Errorf("stage = %q, want NULL", rows[0][2])
	}

	if _, _, err := db.QueryRaw("SELECT * FROM missing_table"); err == nil {
		t.Error("bad query should error")
	}
}
