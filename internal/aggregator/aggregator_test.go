package aggregator

import (
	"testing"

	"github.com/riftlab/go-lol-metrics/internal/geometry"
	"github.com/riftlab/go-lol-metrics/internal/model"
)

// testGame builds a stored game seen from T1's perspective on the given side.
func testGame(id string, side model.Side, win bool) TeamGame {
	blue := map[string]model.RolePlayer{
		model.RoleTop: {Champion: "Gnar", PUUID: "b-top", ParticipantID: 1},
		model.RoleJgl: {Champion: "LeeSin", PUUID: "b-jgl", ParticipantID: 2},
		model.RoleMid: {Champion: "Azir", PUUID: "b-mid", ParticipantID: 3},
		model.RoleBot: {Champion: "Jinx", PUUID: "b-bot", ParticipantID: 4},
		model.RoleSup: {Champion: "Nautilus", PUUID: "b-sup", ParticipantID: 5},
	}
	red := map[string]model.RolePlayer{
		model.RoleTop: {Champion: "Renekton", PUUID: "r-top", ParticipantID: 6},
		model.RoleJgl: {Champion: "Viego", PUUID: "r-jgl", ParticipantID: 7},
		model.RoleMid: {Champion: "Ahri", PUUID: "r-mid", ParticipantID: 8},
		model.RoleBot: {Champion: "Kaisa", PUUID: "r-bot", ParticipantID: 9},
		model.RoleSup: {Champion: "Rell", PUUID: "r-sup", ParticipantID: 10},
	}
	winner := side
	if !win {
		winner = model.SideBlue
		if side == model.SideBlue {
			winner = model.SideRed
		}
	}
	rec := &model.GameRecord{
		GameID:     id,
		BlueTeam:   "T1",
		RedTeam:    "GEN",
		WinnerSide: winner,
		Blue:       blue,
		Red:        red,
	}
	if side == model.SideRed {
		rec.BlueTeam, rec.RedTeam = "GEN", "T1"
	}
	return TeamGame{Rec: rec, Side: side, Win: win}
}

// ---- Formatting helper tests ----

func TestFormatHelpers(t *testing.T) {
	if got := fmtMSToMinSec(754000); got != "12:34" {
		t.Errorf("fmtMSToMinSec(754000) = %q", got)
	}
	if got := fmtMSToMinSec(0); got != "N/A" {
		t.Errorf("fmtMSToMinSec(0) = %q", got)
	}
	if got := fmtMSToMinSec(-5); got != "N/A" {
		t.Errorf("fmtMSToMinSec(-5) = %q", got)
	}
	if got := fmtSecToMinSec(97.9); got != "1:37" {
		t.Errorf("fmtSecToMinSec(97.9) = %q", got)
	}
	if got := fmtSecToMinSec(0); got != "0:00" {
		t.Errorf("fmtSecToMinSec(0) = %q", got)
	}
}

func TestNumericHelpers(t *testing.T) {
	if got := pct(1, 3); got != 33 {
		t.Errorf("pct(1,3) = %d", got)
	}
	if got := pct(2, 3); got != 67 {
		t.Errorf("pct(2,3) = %d", got)
	}
	if got := pct(5, 0); got != 0 {
		t.Errorf("pct(5,0) = %d", got)
	}
	if got := pct2(1, 3); got != 33.33 {
		t.Errorf("pct2(1,3) = %v", got)
	}
	if got := pct2(1, 0); got != 0 {
		t.Errorf("pct2(1,0) = %v", got)
	}
	if got := mean([]float64{1, 2, 3}); got != 2 {
		t.Errorf("mean = %v", got)
	}
	if got := mean(nil); got != 0 {
		t.Errorf("mean(nil) = %v", got)
	}
	if minOf([]float64{3, 1, 2}) != 1 || maxOf([]float64{3, 1, 2}) != 3 {
		t.Error("minOf/maxOf wrong")
	}
	if got := round2(1.238); got != 1.24 {
		t.Errorf("round2 = %v", got)
	}
}

// ---- Jungle clear aggregation ----

func TestComputeJungleStats(t *testing.T) {
	games := []TeamGame{
		testGame("g1", model.SideBlue, true),
		testGame("g2", model.SideBlue, false),
		testGame("g3", model.SideRed, true), // no path recorded
	}
	paths := map[string][]model.PathEntry{
		"g1": {
			{Action: "Krugs", Time: 95},
			{Action: "Red Buff", Time: 130},
			{Action: "Gank/Save Mid", Time: 140},
			{Action: "Raptors", Time: 170},
			{Action: "Recall", Time: 200},
		},
		"g2": {
			{Action: "Krugs", Time: 100},
			{Action: "Blue Buff", Time: 145},
		},
	}
	champs := map[string]string{"g1": "LeeSin", "g2": "LeeSin"}

	stats := computeJungleStats(games, paths, champs)

	if stats.Games != 2 {
		t.Fatalf("Games = %d, want 2 (g3 has no path)", stats.Games)
	}

	slot0 := stats.Slots[0]
	if slot0.AvgTime != "1:37" { // mean(95, 100)
		t.Errorf("slot 0 avg = %q", slot0.AvgTime)
	}
	if len(slot0.Camps) != 1 || slot0.Camps[0].Camp != "Krugs" || slot0.Camps[0].Pct != 100 {
		t.Errorf("slot 0 camps = %+v", slot0.Camps)
	}

	slot1 := stats.Slots[1]
	if slot1.AvgTime != "2:17" { // mean(130, 145)
		t.Errorf("slot 1 avg = %q", slot1.AvgTime)
	}
	if len(slot1.Camps) != 2 {
		t.Fatalf("slot 1 camps = %+v", slot1.Camps)
	}
	for _, c := range slot1.Camps {
		if c.Count != 1 || c.Pct != 50 {
			t.Errorf("slot 1 camp %+v, want count 1 pct 50", c)
		}
	}

	// Gank and recall entries are excluded from slots; Raptors lands in 3.
	if stats.Slots[2].Camps[0].Camp != "Raptors" {
		t.Errorf("slot 2 camps = %+v", stats.Slots[2].Camps)
	}
	if stats.Slots[3].AvgTime != "N/A" {
		t.Errorf("slot 3 avg = %q", stats.Slots[3].AvgTime)
	}

	if stats.Deltas[0] != "+40s" { // mean(35, 45)
		t.Errorf("delta 0 = %q", stats.Deltas[0])
	}
	if stats.Deltas[1] != "+40s" { // g1 only: 170-130
		t.Errorf("delta 1 = %q", stats.Deltas[1])
	}
	if stats.Deltas[2] != "N/A" {
		t.Errorf("delta 2 = %q", stats.Deltas[2])
	}

	if len(stats.Champions) != 1 {
		t.Fatalf("champions = %+v", stats.Champions)
	}
	c := stats.Champions[0]
	if c.Name != "LeeSin" || c.Games != 2 || c.Wins != 1 || c.WinRate != 50 {
		t.Errorf("champion record = %+v", c)
	}

	want := []string{"Blue Buff", "Krugs", "Raptors", "Red Buff"}
	if len(stats.CampNames) != len(want) {
		t.Fatalf("camp names = %v", stats.CampNames)
	}
	for i, name := range want {
		if stats.CampNames[i] != name {
			t.Errorf("camp names = %v, want %v", stats.CampNames, want)
			break
		}
	}
}

func TestComputeJungleStatsEmpty(t *testing.T) {
	stats := computeJungleStats(nil, nil, nil)
	if stats.Message == "" {
		t.Error("empty input should set the no-data message")
	}
}

// ---- Ward timeline aggregation ----

func TestComputeWardStats(t *testing.T) {
	games := []TeamGame{testGame("g1", model.SideBlue, true)}
	wards := map[string][]model.WardEvent{
		"g1": {
			{PUUID: "b-jgl", Champion: "LeeSin", WardType: "Stealth Ward", TimestampSec: 70},
			{PUUID: "b-sup", Champion: "Nautilus", WardType: "Control Ward", TimestampSec: 100},
			{PUUID: "r-sup", Champion: "Rell", WardType: "Control Ward", TimestampSec: 110}, // enemy ward
			{PUUID: "b-top", Champion: "Gnar", WardType: "Stealth Ward", TimestampSec: 3100}, // past horizon
		},
	}

	stats := computeWardStats(games, wards, "All", "")
	if stats.Games != 1 {
		t.Fatalf("Games = %d", stats.Games)
	}
	if len(stats.Intervals) != 33 {
		t.Fatalf("interval count = %d", len(stats.Intervals))
	}
	if stats.Intervals[0].Label != "00:00 - 01:30" {
		t.Errorf("interval 0 label = %q", stats.Intervals[0].Label)
	}
	if len(stats.Intervals[0].Wards) != 1 || stats.Intervals[0].Wards[0].PUUID != "b-jgl" {
		t.Errorf("interval 0 wards = %+v", stats.Intervals[0].Wards)
	}
	if len(stats.Intervals[1].Wards) != 1 || stats.Intervals[1].Wards[0].PUUID != "b-sup" {
		t.Errorf("interval 1 wards = %+v", stats.Intervals[1].Wards)
	}
	if stats.TypeTotals["Stealth Ward"] != 1 || stats.TypeTotals["Control Ward"] != 1 {
		t.Errorf("type totals = %v", stats.TypeTotals)
	}

	jgl := computeWardStats(games, wards, model.RoleJgl, "")
	if jgl.TypeTotals["Control Ward"] != 0 || jgl.TypeTotals["Stealth Ward"] != 1 {
		t.Errorf("jungler filter totals = %v", jgl.TypeTotals)
	}

	naut := computeWardStats(games, wards, "All", "Nautilus")
	if naut.TypeTotals["Stealth Ward"] != 0 || naut.TypeTotals["Control Ward"] != 1 {
		t.Errorf("champion filter totals = %v", naut.TypeTotals)
	}
}

func TestWardIntervalLabel(t *testing.T) {
	if got := wardIntervalLabel(0); got != "00:00 - 01:30" {
		t.Errorf("label(0) = %q", got)
	}
	if got := wardIntervalLabel(10); got != "15:00 - 16:30" {
		t.Errorf("label(10) = %q", got)
	}
}

// ---- Proximity aggregation ----

func TestBucketsFor(t *testing.T) {
	cases := []struct {
		ts   int64
		want string
	}{
		{0, "0-5"},
		{299999, "0-5"},
		{300000, "5-14"},
		{1000000, "14-20"},
		{2000000, "30+"},
	}
	for _, tc := range cases {
		labels := bucketsFor(tc.ts)
		if len(labels) != 2 || labels[0] != OverallBucket || labels[1] != tc.want {
			t.Errorf("bucketsFor(%d) = %v, want [Overall %s]", tc.ts, labels, tc.want)
		}
	}
}

func TestComputeProximityStats(t *testing.T) {
	games := []TeamGame{testGame("g1", model.SideBlue, true)}
	timelines := map[string][]model.PositionSample{
		"g1": {
			// Early tick: top hugging the jungler, mid far away.
			{TimestampMS: 60000, ParticipantID: 2, X: 0, Z: 0},
			{TimestampMS: 60000, ParticipantID: 1, X: 1000, Z: 0},
			{TimestampMS: 60000, ParticipantID: 3, X: 5000, Z: 0},
			// Late tick: top has left.
			{TimestampMS: 1900000, ParticipantID: 2, X: 0, Z: 0},
			{TimestampMS: 1900000, ParticipantID: 1, X: 3000, Z: 0},
		},
	}

	stats := computeProximityStats(model.RoleJgl, games, timelines)
	if stats.Role != model.RoleJgl || len(stats.Champions) != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if len(stats.AllyRoles) != 4 {
		t.Errorf("ally roles = %v", stats.AllyRoles)
	}

	c := stats.Champions[0]
	if c.Champion != "LeeSin" || c.Games != 1 || c.WinRate != 100 {
		t.Errorf("champion = %+v", c)
	}

	top := c.Allies[model.RoleTop]
	if top["0-5"] != 100 || top["30+"] != 0 || top[OverallBucket] != 50 {
		t.Errorf("top proximity = %v", top)
	}
	mid := c.Allies[model.RoleMid]
	if mid["0-5"] != 0 {
		t.Errorf("mid 0-5 = %d, want 0 (far)", mid["0-5"])
	}
	if mid["30+"] != NoData {
		t.Errorf("mid 30+ = %d, want NoData", mid["30+"])
	}
	if c.Allies[model.RoleBot][OverallBucket] != NoData {
		t.Errorf("bot overall = %d, want NoData", c.Allies[model.RoleBot][OverallBucket])
	}

	// Single champion: averages mirror the per-champion numbers.
	if stats.Averages[model.RoleTop][OverallBucket] != 50 {
		t.Errorf("averages = %v", stats.Averages[model.RoleTop])
	}
}

func TestComputeProximityStatsNoData(t *testing.T) {
	stats := computeProximityStats(model.RoleJgl, nil, nil)
	if stats.Message == "" {
		t.Error("empty input should set the no-data message")
	}
}

func TestComputeProximityStatsSkipsGamesWithoutTimeline(t *testing.T) {
	// g2 was stored metadata-only (no livestats) and must not count.
	games := []TeamGame{
		testGame("g1", model.SideBlue, true),
		testGame("g2", model.SideBlue, false),
	}
	timelines := map[string][]model.PositionSample{
		"g1": {
			{TimestampMS: 60000, ParticipantID: 2, X: 0, Z: 0},
			{TimestampMS: 60000, ParticipantID: 1, X: 1000, Z: 0},
		},
	}

	stats := computeProximityStats(model.RoleJgl, games, timelines)
	if len(stats.Champions) != 1 {
		t.Fatalf("champions = %+v", stats.Champions)
	}
	c := stats.Champions[0]
	if c.Champion != "LeeSin" || c.Games != 1 || c.Wins != 1 || c.WinRate != 100 {
		t.Errorf("champion record = %+v, want 1 game 100%% from the played game only", c)
	}
}

func TestComputeProximityAveragesUnrounded(t *testing.T) {
	// LeeSin: 1 of 40 ticks near top (2.5%). Ivern: 0 of 1 (0%). The AVG
	// row averages the raw shares (1.25% -> 1), not the rounded cells
	// (3 and 0 -> 2).
	g1 := testGame("g1", model.SideBlue, true)
	g2 := testGame("g2", model.SideBlue, false)
	g2.Rec.Blue[model.RoleJgl] = model.RolePlayer{Champion: "Ivern", PUUID: "b-jgl", ParticipantID: 2}

	var t1 []model.PositionSample
	for i := int64(0); i < 40; i++ {
		ts := 60000 + i*1000
		topX := 5000
		if i == 0 {
			topX = 1000
		}
		t1 = append(t1,
			model.PositionSample{TimestampMS: ts, ParticipantID: 2, X: 0, Z: 0},
			model.PositionSample{TimestampMS: ts, ParticipantID: 1, X: topX, Z: 0},
		)
	}
	timelines := map[string][]model.PositionSample{
		"g1": t1,
		"g2": {
			{TimestampMS: 60000, ParticipantID: 2, X: 0, Z: 0},
			{TimestampMS: 60000, ParticipantID: 1, X: 5000, Z: 0},
		},
	}

	stats := computeProximityStats(model.RoleJgl, []TeamGame{g1, g2}, timelines)
	if got := stats.Averages[model.RoleTop][OverallBucket]; got != 1 {
		t.Errorf("top overall average = %d, want 1", got)
	}
}

// ---- Game selection ----

func TestFilterTeamGamesTournament(t *testing.T) {
	official := testGame("g1", model.SideBlue, true)
	official.Rec.Tournament = "Worlds"
	scrim := testGame("g2", model.SideBlue, false)
	scrim.Rec.Tournament = "Scrims"
	recs := []*model.GameRecord{official.Rec, scrim.Rec}

	got := filterTeamGames(recs, Filters{Team: "T1", Side: SideAll, Tournament: "Scrims"})
	if len(got) != 1 || got[0].Rec.GameID != "g2" {
		t.Fatalf("scrim filter = %+v", got)
	}
	got = filterTeamGames(recs, Filters{Team: "T1", Side: SideAll})
	if len(got) != 2 {
		t.Errorf("empty tournament filter should keep all games, got %+v", got)
	}
}

// ---- Lane-swap aggregation ----

func TestComputeSwapStats(t *testing.T) {
	games := []TeamGame{testGame("g1", model.SideBlue, true)}
	timelines := map[string][]model.PositionSample{
		"g1": {
			// Window 03:00-04:00: top splits mid lane and top-side jungle.
			{TimestampMS: 190000, ParticipantID: 1, X: 7530, Z: 7480}, // Mid Lane (Center)
			{TimestampMS: 200000, ParticipantID: 1, X: 2500, Z: 8700}, // Blue Side Gromp
			// Base ticks simplify to nothing and are dropped.
			{TimestampMS: 210000, ParticipantID: 4, X: 500, Z: 500},
			// Window 04:00-05:00: support in the bot-side jungle.
			{TimestampMS: 250000, ParticipantID: 5, X: 8500, Z: 2500}, // Blue Side Krugs
			// Non-swap role, ignored.
			{TimestampMS: 250000, ParticipantID: 2, X: 8500, Z: 2500},
		},
	}

	stats := computeSwapStats(games, timelines, geometry.NewClassifier())
	if stats.Games != 1 || len(stats.Windows) != 4 {
		t.Fatalf("stats = %+v", stats)
	}

	w0 := stats.Windows[0]
	if w0.Label != "03:00-04:00" {
		t.Errorf("window 0 label = %q", w0.Label)
	}
	topShares := w0.Roles[model.RoleTop]
	if len(topShares) != 2 {
		t.Fatalf("top shares = %+v", topShares)
	}
	// Equal percentages order alphabetically.
	if topShares[0].Zone != geometry.SimplifiedMid || topShares[0].Pct != 50 {
		t.Errorf("top shares = %+v", topShares)
	}
	if topShares[1].Zone != geometry.SimplifiedTopJNG || topShares[1].Pct != 50 {
		t.Errorf("top shares = %+v", topShares)
	}
	if len(w0.Roles[model.RoleBot]) != 0 {
		t.Errorf("bot shares in window 0 = %+v", w0.Roles[model.RoleBot])
	}

	w1 := stats.Windows[1]
	supShares := w1.Roles[model.RoleSup]
	if len(supShares) != 1 || supShares[0].Zone != geometry.SimplifiedBotJNG || supShares[0].Pct != 100 {
		t.Errorf("sup shares = %+v", supShares)
	}
}
