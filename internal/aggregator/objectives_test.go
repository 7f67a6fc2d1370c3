package aggregator

import (
	"testing"

	"github.com/riftlab/go-lol-metrics/internal/model"
)

func TestTimerStats(t *testing.T) {
	empty := timerStats(nil)
	if empty.Avg != "N/A" || empty.Min != "N/A" || empty.Max != "N/A" || len(empty.Times) != 0 {
		t.Errorf("empty timer stats = %+v", empty)
	}

	ts := timerStats([]float64{600000, 360000, 480000})
	if ts.Avg != "8:00" || ts.Min != "6:00" || ts.Max != "10:00" {
		t.Errorf("timer stats = %+v", ts)
	}
	if len(ts.Times) != 3 || ts.Times[0] != "6:00" || ts.Times[2] != "10:00" {
		t.Errorf("timer times = %v", ts.Times)
	}
}

func TestIsElementalDrake(t *testing.T) {
	if !isElementalDrake(model.ObjectiveEvent{Type: model.ObjDragon, Subtype: "MOUNTAIN"}) {
		t.Error("mountain drake should count")
	}
	if isElementalDrake(model.ObjectiveEvent{Type: model.ObjDragon, Subtype: "ELDER"}) {
		t.Error("elder should not count")
	}
	if isElementalDrake(model.ObjectiveEvent{Type: model.ObjBaron, Subtype: "BARON"}) {
		t.Error("baron should not count")
	}
}

func TestComputeSideStats(t *testing.T) {
	games := []TeamGame{
		testGame("g1", model.SideBlue, true),
		testGame("g2", model.SideBlue, false),
	}
	events := map[string][]model.ObjectiveEvent{
		"g1": {
			{TimestampMS: 360000, Type: model.ObjDragon, Subtype: "OCEAN", TeamID: 100},
			{TimestampMS: 480000, Type: model.ObjVoidgrub, Subtype: "VOIDGRUB", TeamID: 100},
			{TimestampMS: 500000, Type: model.ObjVoidgrub, Subtype: "VOIDGRUB", TeamID: 100},
			{TimestampMS: 520000, Type: model.ObjVoidgrub, Subtype: "VOIDGRUB", TeamID: 100},
			{TimestampMS: 540000, Type: model.ObjVoidgrub, Subtype: "VOIDGRUB", TeamID: 200},
			{TimestampMS: 840000, Type: model.ObjTower, Subtype: "OUTER", TeamID: 100, Lane: "MID_LANE"},
			{TimestampMS: 900000, Type: model.ObjDragon, Subtype: "INFERNAL", TeamID: 200},
			{TimestampMS: 900000, Type: model.ObjTower, Subtype: "OUTER", TeamID: 100, Lane: "BOT_LANE"},
			{TimestampMS: 960000, Type: model.ObjHerald, Subtype: "HERALD", TeamID: 100},
			{TimestampMS: 1000000, Type: model.ObjTower, Subtype: "OUTER", TeamID: 200, Lane: "MID_LANE"},
			{TimestampMS: 1200000, Type: model.ObjDragon, Subtype: "CLOUD", TeamID: 100},
			{TimestampMS: 1500000, Type: model.ObjDragon, Subtype: "HEXTECH", TeamID: 100},
			{TimestampMS: 1800000, Type: model.ObjDragon, Subtype: "MOUNTAIN", TeamID: 100},
			{TimestampMS: 2200000, Type: model.ObjDragon, Subtype: "ELDER", TeamID: 100},
			{TimestampMS: 2300000, Type: model.ObjBaron, Subtype: "BARON", TeamID: 200},
		},
		"g2": {
			{TimestampMS: 420000, Type: model.ObjDragon, Subtype: "OCEAN", TeamID: 200},
			{TimestampMS: 800000, Type: model.ObjTower, Subtype: "OUTER", TeamID: 200, Lane: "TOP_LANE"},
		},
	}

	s := computeSideStats(games, events)

	if s.Games != 2 || s.Wins != 1 || s.WinRate != 50 {
		t.Fatalf("record = %d/%d/%d", s.Games, s.Wins, s.WinRate)
	}

	// Spawn 1 was contested across both games; 3 and 4 were ours alone.
	if s.Drakes.TakeRateBySpawn != [4]int{50, 0, 100, 100} {
		t.Errorf("take rates = %v", s.Drakes.TakeRateBySpawn)
	}
	if s.Drakes.SoulGames != 1 || s.Drakes.SoulRate != 50 || s.Drakes.SoulWinRate != 100 {
		t.Errorf("soul = %+v", s.Drakes)
	}
	if s.Drakes.AvgBefore7 != 0.5 || s.Drakes.AvgPerGame != 2 {
		t.Errorf("drake averages = %+v", s.Drakes)
	}
	if s.Drakes.FirstDrake.Avg != "6:00" {
		t.Errorf("first drake = %+v", s.Drakes.FirstDrake)
	}

	if len(s.Grubs.Buckets) != 2 {
		t.Fatalf("grub buckets = %+v", s.Grubs.Buckets)
	}
	zero, threePlus := s.Grubs.Buckets[0], s.Grubs.Buckets[1]
	if zero.Label != "0" || zero.Games != 1 || zero.WinRate != 0 || zero.DiffWR != "-50.00%" {
		t.Errorf("zero bucket = %+v", zero)
	}
	if threePlus.Label != "3+" || threePlus.WinRate != 100 || threePlus.DiffWR != "+50.00%" {
		t.Errorf("3+ bucket = %+v", threePlus)
	}
	if s.Grubs.AvgTaken != 1.5 || s.Grubs.OnePlusRate != 50 || s.Grubs.ThreePlusRate != 50 {
		t.Errorf("grubs = %+v", s.Grubs)
	}
	if s.Grubs.FirstGrub.Avg != "8:00" {
		t.Errorf("first grub = %+v", s.Grubs.FirstGrub)
	}

	if s.Herald.SecuredPct != 50 || s.Herald.Total != 1 || s.Herald.WinRateWhenSecured != 100 {
		t.Errorf("herald = %+v", s.Herald)
	}
	if s.Herald.First.Avg != "16:00" {
		t.Errorf("herald first = %+v", s.Herald.First)
	}
	if s.Baron.SecuredPct != 0 || s.Baron.First.Avg != "N/A" {
		t.Errorf("baron = %+v", s.Baron)
	}

	if s.Towers.FirstTowerPct != 50 || s.Towers.FirstTowerTimer != "14:00" {
		t.Errorf("towers = %+v", s.Towers)
	}
	if len(s.Towers.Lanes) != 3 {
		t.Fatalf("lanes = %+v", s.Towers.Lanes)
	}
	top, mid, bot := s.Towers.Lanes[0], s.Towers.Lanes[1], s.Towers.Lanes[2]
	if top.FTShare != 0 || top.FTTimer != "N/A" || top.FoeOuterAvg != "13:20" || top.OuterDiff != "0:00" {
		t.Errorf("top lane = %+v", top)
	}
	// The only game-first tower we took fell mid, 2:40 ahead of their mid
	// outer.
	if mid.FTShare != 100 || mid.FTTimer != "14:00" || mid.OuterDiff != "-2:40" {
		t.Errorf("mid lane = %+v", mid)
	}
	if bot.FTTimer != "15:00" || bot.OurOuterAvg != "15:00" || bot.FoeOuterAvg != "N/A" {
		t.Errorf("bot lane = %+v", bot)
	}
}

func TestComputeSideStatsFamilyTotalCountsGames(t *testing.T) {
	// Two Barons in one game still count it once.
	games := []TeamGame{testGame("g1", model.SideBlue, true)}
	events := map[string][]model.ObjectiveEvent{
		"g1": {
			{TimestampMS: 1800000, Type: model.ObjBaron, Subtype: "BARON", TeamID: 100},
			{TimestampMS: 2100000, Type: model.ObjBaron, Subtype: "BARON", TeamID: 100},
		},
	}

	s := computeSideStats(games, events)
	if s.Baron.Total != 1 {
		t.Errorf("baron total = %d, want 1 game with a secure", s.Baron.Total)
	}
	if s.Baron.SecuredPct != 100 || s.Baron.WinRateWhenSecured != 100 {
		t.Errorf("baron = %+v", s.Baron)
	}
	// The timer uses the first secure of the game.
	if s.Baron.First.Avg != "30:00" {
		t.Errorf("baron first = %+v", s.Baron.First)
	}
}

func TestComputeSideStatsOuterDiffEqual(t *testing.T) {
	games := []TeamGame{testGame("g1", model.SideBlue, true)}
	events := map[string][]model.ObjectiveEvent{
		"g1": {
			{TimestampMS: 900000, Type: model.ObjTower, Subtype: "OUTER", TeamID: 100, Lane: "BOT_LANE"},
			{TimestampMS: 900000, Type: model.ObjTower, Subtype: "OUTER", TeamID: 200, Lane: "BOT_LANE"},
		},
	}

	s := computeSideStats(games, events)
	bot := s.Towers.Lanes[2]
	if bot.OurOuterAvg != "15:00" || bot.FoeOuterAvg != "15:00" {
		t.Fatalf("bot lane = %+v", bot)
	}
	if bot.OuterDiff != "0:00" {
		t.Errorf("equal outer averages diff = %q, want unsigned 0:00", bot.OuterDiff)
	}
}

func TestComputeSideStatsEmpty(t *testing.T) {
	s := computeSideStats(nil, nil)
	if s.Games != 0 || s.WinRate != 0 {
		t.Errorf("empty stats = %+v", s)
	}
	if s.Towers.FirstTowerTimer != "N/A" || s.Drakes.FirstDrake.Avg != "N/A" {
		t.Errorf("empty timers = %+v", s)
	}
}
