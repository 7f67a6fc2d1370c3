package aggregator

import (
	"fmt"
	"math"
	"sort"

	"github.com/riftlab/go-lol-metrics/internal/model"
	"github.com/riftlab/go-lol-metrics/internal/storage"
)

// Early-game cutoffs for drake counting.
const (
	drakeCutoffEarlyMS = 7 * 60 * 1000
	drakeCutoffMidMS   = 15 * 60 * 1000
)

// soulThreshold is the drake count that banks a soul.
const soulThreshold = 4

// TimerStats summarizes a set of first-take times.
type TimerStats struct {
	Avg   string // "m:ss" or "N/A"
	Min   string
	Max   string
	Times []string // sorted, formatted
}

func timerStats(timesMS []float64) TimerStats {
	if len(timesMS) == 0 {
		return TimerStats{Avg: "N/A", Min: "N/A", Max: "N/A"}
	}
	sorted := append([]float64(nil), timesMS...)
	sort.Float64s(sorted)
	ts := TimerStats{
		Avg: fmtMSToMinSec(mean(sorted)),
		Min: fmtMSToMinSec(minOf(sorted)),
		Max: fmtMSToMinSec(maxOf(sorted)),
	}
	for _, t := range sorted {
		ts.Times = append(ts.Times, fmtMSToMinSec(t))
	}
	return ts
}

// DrakeStats covers elemental drakes (elder and atakhan excluded).
type DrakeStats struct {
	TakeRateBySpawn [4]int // % of spawn N secured by us, 0 when never seen
	SoulGames       int
	SoulRate        int // % of games we banked a soul
	SoulWinRate     int // win rate in soul games
	AvgBefore7      float64
	AvgBefore15     float64
	AvgPerGame      float64
	FirstDrake      TimerStats
}

// GrubBucket is one voidgrub-count cohort.
type GrubBucket struct {
	Label   string // "0", "1", "2", "3+"
	Games   int
	WinRate int
	DiffWR  string // vs the side's base win rate, "+x.xx%"
}

// GrubStats covers voidgrubs.
type GrubStats struct {
	Buckets       []GrubBucket
	AvgTaken      float64
	OnePlusRate   int
	ThreePlusRate int
	FirstGrub     TimerStats
}

// FamilyStats covers single-spawn objective families (herald, baron,
// atakhan).
type FamilyStats struct {
	SecuredPct         int // % of games with at least one taken by us
	Total              int // games with at least one taken by us
	WinRateWhenSecured int
	First              TimerStats
}

// LaneTowers is the per-lane tower summary.
type LaneTowers struct {
	Lane         string
	FTShare      int    // share of our first towers that fell on this lane
	FTTimer      string // avg first-tower-on-lane time when ours
	OurOuterAvg  string
	FoeOuterAvg  string
	OuterDiff    string // our first outer minus theirs, "+m:ss"/"-m:ss"
}

// TowerStats is the tower summary for one game set.
type TowerStats struct {
	FirstTowerPct   int // % of games where the game's first tower was ours
	FirstTowerTimer string
	Lanes           []LaneTowers // TOP_LANE, MID_LANE, BOT_LANE
}

// SideStats aggregates every objective family for one game set.
type SideStats struct {
	Games   int
	Wins    int
	WinRate int
	Drakes  DrakeStats
	Grubs   GrubStats
	Herald  FamilyStats
	Baron   FamilyStats
	Atakhan FamilyStats
	Towers  TowerStats
}

// ObjectiveStats is the objectives view result, split by side.
type ObjectiveStats struct {
	Error   string
	Message string
	Overall SideStats
	Blue    SideStats
	Red     SideStats
}

func isElementalDrake(e model.ObjectiveEvent) bool {
	return e.Type == model.ObjDragon && e.Subtype != "ELDER" && e.Subtype != model.ObjAtakhan
}

// computeSideStats aggregates one game cohort against its objective events.
func computeSideStats(games []TeamGame, events map[string][]model.ObjectiveEvent) SideStats {
	s := SideStats{Games: len(games)}

	spawnOurs := [4]int{}
	spawnTotal := [4]int{}
	var firstDrakes, firstGrubs []float64
	familyTimes := map[string][]float64{}
	familyGames := map[string]int{}
	familyWins := map[string]int{}
	grubGames := map[string][]bool{} // bucket label -> per-game win flags
	var drakesBefore7, drakesBefore15, drakesTotal int

	ftOurs := 0
	var ftTimes []float64
	ftLane := map[string]int{}
	laneFTTimes := map[string][]float64{}
	ourOuter := map[string][]float64{}
	foeOuter := map[string][]float64{}

	for _, g := range games {
		if g.Win {
			s.Wins++
		}
		evs := events[g.Rec.GameID]
		us := g.OwnTeamID()

		// Drakes in spawn order.
		spawn := 0
		ourDrakes := 0
		for _, e := range evs {
			if !isElementalDrake(e) {
				continue
			}
			if spawn < 4 {
				spawnTotal[spawn]++
				if e.TeamID == us {
					spawnOurs[spawn]++
					if spawn == 0 {
						firstDrakes = append(firstDrakes, float64(e.TimestampMS))
					}
				}
			}
			if e.TeamID == us {
				ourDrakes++
				drakesTotal++
				if e.TimestampMS < drakeCutoffEarlyMS {
					drakesBefore7++
				}
				if e.TimestampMS < drakeCutoffMidMS {
					drakesBefore15++
				}
			}
			spawn++
		}
		if ourDrakes >= soulThreshold {
			s.Drakes.SoulGames++
			if g.Win {
				s.Drakes.SoulWinRate++ // wins for now, converted below
			}
		}

		// Voidgrubs.
		grubs := 0
		grubSeen := false
		for _, e := range evs {
			if e.Type != model.ObjVoidgrub || e.TeamID != us {
				continue
			}
			grubs++
			if !grubSeen {
				firstGrubs = append(firstGrubs, float64(e.TimestampMS))
				grubSeen = true
			}
		}
		label := fmt.Sprintf("%d", grubs)
		if grubs >= 3 {
			label = "3+"
		}
		grubGames[label] = append(grubGames[label], g.Win)
		s.Grubs.AvgTaken += float64(grubs)
		if grubs >= 1 {
			s.Grubs.OnePlusRate++
		}
		if grubs >= 3 {
			s.Grubs.ThreePlusRate++
		}

		// Single-spawn families.
		for _, family := range []string{model.ObjHerald, model.ObjBaron, model.ObjAtakhan} {
			secured := false
			for _, e := range evs {
				if e.Type != family || e.TeamID != us {
					continue
				}
				if !secured {
					familyTimes[family] = append(familyTimes[family], float64(e.TimestampMS))
					secured = true
				}
			}
			if secured {
				familyGames[family]++
				if g.Win {
					familyWins[family]++
				}
			}
		}

		// Towers.
		firstSeen := false
		laneFirstSeen := map[string]bool{}
		ourOuterSeen := map[string]bool{}
		foeOuterSeen := map[string]bool{}
		for _, e := range evs {
			if e.Type != model.ObjTower {
				continue
			}
			if !firstSeen {
				firstSeen = true
				if e.TeamID == us {
					ftOurs++
					ftTimes = append(ftTimes, float64(e.TimestampMS))
					ftLane[e.Lane]++
				}
			}
			if !laneFirstSeen[e.Lane] {
				laneFirstSeen[e.Lane] = true
				if e.TeamID == us {
					laneFTTimes[e.Lane] = append(laneFTTimes[e.Lane], float64(e.TimestampMS))
				}
			}
			if e.Subtype == "OUTER" {
				if e.TeamID == us && !ourOuterSeen[e.Lane] {
					ourOuterSeen[e.Lane] = true
					ourOuter[e.Lane] = append(ourOuter[e.Lane], float64(e.TimestampMS))
				}
				if e.TeamID != us && !foeOuterSeen[e.Lane] {
					foeOuterSeen[e.Lane] = true
					foeOuter[e.Lane] = append(foeOuter[e.Lane], float64(e.TimestampMS))
				}
			}
		}
	}

	s.WinRate = pct(s.Wins, s.Games)

	for i := 0; i < 4; i++ {
		s.Drakes.TakeRateBySpawn[i] = pct(spawnOurs[i], spawnTotal[i])
	}
	soulWins := s.Drakes.SoulWinRate
	s.Drakes.SoulWinRate = pct(soulWins, s.Drakes.SoulGames)
	s.Drakes.SoulRate = pct(s.Drakes.SoulGames, s.Games)
	if s.Games > 0 {
		s.Drakes.AvgBefore7 = round2(float64(drakesBefore7) / float64(s.Games))
		s.Drakes.AvgBefore15 = round2(float64(drakesBefore15) / float64(s.Games))
		s.Drakes.AvgPerGame = round2(float64(drakesTotal) / float64(s.Games))
	}
	s.Drakes.FirstDrake = timerStats(firstDrakes)

	base := float64(s.WinRate)
	for _, label := range []string{"0", "1", "2", "3+"} {
		flags := grubGames[label]
		if len(flags) == 0 {
			continue
		}
		wins := 0
		for _, w := range flags {
			if w {
				wins++
			}
		}
		wr := pct(wins, len(flags))
		s.Grubs.Buckets = append(s.Grubs.Buckets, GrubBucket{
			Label:   label,
			Games:   len(flags),
			WinRate: wr,
			DiffWR:  fmt.Sprintf("%+.2f%%", float64(wr)-base),
		})
	}
	if s.Games > 0 {
		s.Grubs.AvgTaken = round2(s.Grubs.AvgTaken / float64(s.Games))
		s.Grubs.OnePlusRate = pct(s.Grubs.OnePlusRate, s.Games)
		s.Grubs.ThreePlusRate = pct(s.Grubs.ThreePlusRate, s.Games)
	}
	s.Grubs.FirstGrub = timerStats(firstGrubs)

	mkFamily := func(family string) FamilyStats {
		return FamilyStats{
			SecuredPct:         pct(familyGames[family], s.Games),
			Total:              familyGames[family],
			WinRateWhenSecured: pct(familyWins[family], familyGames[family]),
			First:              timerStats(familyTimes[family]),
		}
	}
	s.Herald = mkFamily(model.ObjHerald)
	s.Baron = mkFamily(model.ObjBaron)
	s.Atakhan = mkFamily(model.ObjAtakhan)

	s.Towers.FirstTowerPct = pct(ftOurs, s.Games)
	if len(ftTimes) > 0 {
		s.Towers.FirstTowerTimer = fmtMSToMinSec(mean(ftTimes))
	} else {
		s.Towers.FirstTowerTimer = "N/A"
	}
	for _, lane := range []string{"TOP_LANE", "MID_LANE", "BOT_LANE"} {
		lt := LaneTowers{Lane: lane, FTTimer: "N/A", OurOuterAvg: "N/A", FoeOuterAvg: "N/A", OuterDiff: "0:00"}
		// Distribution over first towers taken, not games played.
		lt.FTShare = pct(ftLane[lane], ftOurs)
		if times := laneFTTimes[lane]; len(times) > 0 {
			lt.FTTimer = fmtMSToMinSec(mean(times))
		}
		ours, foes := ourOuter[lane], foeOuter[lane]
		if len(ours) > 0 {
			lt.OurOuterAvg = fmtMSToMinSec(mean(ours))
		}
		if len(foes) > 0 {
			lt.FoeOuterAvg = fmtMSToMinSec(mean(foes))
		}
		if len(ours) > 0 && len(foes) > 0 {
			// Equal averages keep the unsigned zero form.
			if diff := mean(ours) - mean(foes); diff != 0 {
				sign := "+"
				if diff < 0 {
					sign = "-"
				}
				total := int(math.Abs(diff) / 1000)
				lt.OuterDiff = fmt.Sprintf("%s%d:%02d", sign, total/60, total%60)
			}
		}
		s.Towers.Lanes = append(s.Towers.Lanes, lt)
	}

	return s
}

// Objectives runs the objectives view, reporting overall plus per-side
// splits.
func Objectives(db *storage.DB, f Filters) ([]string, ObjectiveStats, []string) {
	teams, err := db.TeamTags()
	if err != nil {
		return nil, ObjectiveStats{Error: fmt.Sprintf("load teams: %v", err)}, nil
	}
	if f.Team == "" {
		return teams, ObjectiveStats{Message: "Select a team"}, []string{"All"}
	}

	all := f
	all.Side = SideAll
	games, err := SelectTeamGames(db, all)
	if err != nil {
		return teams, ObjectiveStats{Error: err.Error()}, []string{"All"}
	}
	champOptions := teamChampions(games, "")

	events := make(map[string][]model.ObjectiveEvent, len(games))
	for _, g := range games {
		evs, err := db.ObjectiveEventsForGame(g.Rec.GameID)
		if err != nil {
			return teams, ObjectiveStats{Error: fmt.Sprintf("load events for %s: %v", g.Rec.GameID, err)}, champOptions
		}
		events[g.Rec.GameID] = evs
	}

	var blue, red []TeamGame
	for _, g := range games {
		if g.Side == model.SideBlue {
			blue = append(blue, g)
		} else {
			red = append(red, g)
		}
	}

	stats := ObjectiveStats{
		Overall: computeSideStats(games, events),
		Blue:    computeSideStats(blue, events),
		Red:     computeSideStats(red, events),
	}
	if len(games) == 0 {
		stats.Message = "No games match the selected filters"
	}
	return teams, stats, champOptions
}
