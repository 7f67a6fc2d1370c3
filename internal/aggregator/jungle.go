package aggregator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/riftlab/go-lol-metrics/internal/model"
	"github.com/riftlab/go-lol-metrics/internal/storage"
)

// campSlots is how many opening camps the clear analysis tracks.
const campSlots = 7

// SlotCamp is one camp's share of a clear slot.
type SlotCamp struct {
	Camp    string
	Count   int
	Pct     int    // share of the slot's observations
	AvgTime string // "m:ss"
}

// ClearSlot aggregates the Nth camp cleared across games.
type ClearSlot struct {
	AvgTime string // "m:ss" over every camp in the slot, "N/A" when empty
	Camps   []SlotCamp
}

// ChampionRecord is one jungler champion's game count and win rate.
type ChampionRecord struct {
	Name    string
	Games   int
	Wins    int
	WinRate int
}

// JungleStats is the jungle-clear view result.
type JungleStats struct {
	Error   string
	Message string

	Games     int
	Slots     [campSlots]ClearSlot
	Deltas    [campSlots - 1]string // avg gap between consecutive slots, "+Ns"
	Champions []ChampionRecord
	CampNames []string // sorted union of camps seen in any slot
}

// isCampClear reports whether a path entry is a camp clear rather than a
// gank or recall.
func isCampClear(e model.PathEntry) bool {
	return !strings.HasPrefix(e.Action, "Gank") && e.Action != "Recall"
}

// computeJungleStats aggregates opening-clear timings over reconstructed
// paths, keyed by game id.
func computeJungleStats(games []TeamGame, paths map[string][]model.PathEntry, junglerChamps map[string]string) JungleStats {
	var stats JungleStats

	slotTimes := [campSlots][]float64{}
	slotCamps := [campSlots]map[string][]float64{}
	for i := range slotCamps {
		slotCamps[i] = make(map[string][]float64)
	}
	deltas := [campSlots - 1][]float64{}
	champs := make(map[string]*ChampionRecord)

	for _, g := range games {
		path, ok := paths[g.Rec.GameID]
		if !ok || len(path) == 0 {
			continue
		}
		stats.Games++

		if champ := junglerChamps[g.Rec.GameID]; champ != "" {
			rec := champs[champ]
			if rec == nil {
				rec = &ChampionRecord{Name: champ}
				champs[champ] = rec
			}
			rec.Games++
			if g.Win {
				rec.Wins++
			}
		}

		var clears []model.PathEntry
		for _, e := range path {
			if isCampClear(e) {
				clears = append(clears, e)
				if len(clears) == campSlots {
					break
				}
			}
		}
		for i, e := range clears {
			slotTimes[i] = append(slotTimes[i], e.Time)
			slotCamps[i][e.Action] = append(slotCamps[i][e.Action], e.Time)
			if i > 0 {
				// Non-positive gaps are malformed ordering, not real clears.
				if delta := e.Time - clears[i-1].Time; delta > 0 {
					deltas[i-1] = append(deltas[i-1], delta)
				}
			}
		}
	}

	campSet := make(map[string]bool)
	for i := 0; i < campSlots; i++ {
		slot := ClearSlot{AvgTime: "N/A"}
		if len(slotTimes[i]) > 0 {
			slot.AvgTime = fmtSecToMinSec(mean(slotTimes[i]))
		}
		for camp, times := range slotCamps[i] {
			campSet[camp] = true
			slot.Camps = append(slot.Camps, SlotCamp{
				Camp:    camp,
				Count:   len(times),
				Pct:     pct(len(times), len(slotTimes[i])),
				AvgTime: fmtSecToMinSec(mean(times)),
			})
		}
		sort.Slice(slot.Camps, func(a, b int) bool {
			if slot.Camps[a].Count != slot.Camps[b].Count {
				return slot.Camps[a].Count > slot.Camps[b].Count
			}
			return slot.Camps[a].Camp < slot.Camps[b].Camp
		})
		stats.Slots[i] = slot
	}

	for i := range deltas {
		if len(deltas[i]) == 0 {
			stats.Deltas[i] = "N/A"
			continue
		}
		stats.Deltas[i] = fmt.Sprintf("+%.0fs", mean(deltas[i]))
	}

	for _, rec := range champs {
		rec.WinRate = pct(rec.Wins, rec.Games)
		stats.Champions = append(stats.Champions, *rec)
	}
	sort.Slice(stats.Champions, func(a, b int) bool {
		if stats.Champions[a].Games != stats.Champions[b].Games {
			return stats.Champions[a].Games > stats.Champions[b].Games
		}
		return stats.Champions[a].Name < stats.Champions[b].Name
	})

	for camp := range campSet {
		stats.CampNames = append(stats.CampNames, camp)
	}
	sort.Strings(stats.CampNames)

	if stats.Games == 0 {
		stats.Message = "No jungle paths recorded for the selected games"
	}
	return stats
}

// JungleClears runs the jungle-clear view: teams available, the aggregated
// stats for the filter set, and the jungler champion filter options.
func JungleClears(db *storage.DB, f Filters) ([]string, JungleStats, []string) {
	teams, err := db.TeamTags()
	if err != nil {
		return nil, JungleStats{Error: fmt.Sprintf("load teams: %v", err)}, nil
	}
	if f.Team == "" {
		return teams, JungleStats{Message: "Select a team"}, []string{"All"}
	}

	// Champion filtering is on the jungler pick specifically, and recency
	// applies after it.
	base := f
	base.Champion = ""
	base.LastN = 0
	games, err := SelectTeamGames(db, base)
	if err != nil {
		return teams, JungleStats{Error: err.Error()}, []string{"All"}
	}
	champOptions := teamChampions(games, model.RoleJgl)

	if f.championFilterActive() {
		filtered := games[:0]
		for _, g := range games {
			if p, ok := g.Player(model.RoleJgl); ok && p.Champion == f.Champion {
				filtered = append(filtered, g)
			}
		}
		games = filtered
	}
	if f.LastN > 0 && len(games) > f.LastN {
		games = games[:f.LastN]
	}

	paths := make(map[string][]model.PathEntry, len(games))
	junglerChamps := make(map[string]string, len(games))
	for _, g := range games {
		p, ok := g.Player(model.RoleJgl)
		if !ok || p.PUUID == "" {
			continue
		}
		junglerChamps[g.Rec.GameID] = p.Champion
		path, err := db.JunglePath(g.Rec.GameID, p.PUUID)
		if err != nil {
			return teams, JungleStats{Error: fmt.Sprintf("load path for %s: %v", g.Rec.GameID, err)}, champOptions
		}
		if path != nil {
			paths[g.Rec.GameID] = path
		}
	}

	return teams, computeJungleStats(games, paths, junglerChamps), champOptions
}
