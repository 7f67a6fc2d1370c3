package aggregator

import (
	"fmt"
	"sort"

	"github.com/riftlab/go-lol-metrics/internal/model"
	"github.com/riftlab/go-lol-metrics/internal/storage"
)

// Ward timeline bucketing: 90-second intervals across the first 50 minutes.
const (
	wardIntervalSec = 90
	wardHorizonSec  = 50 * 60
)

// WardInterval is one timeline bucket of ward placements.
type WardInterval struct {
	Label string // "MM:SS - MM:SS"
	Wards []model.WardEvent
}

// WardStats is the ward-timing view result.
type WardStats struct {
	Error   string
	Message string
	Games   int
	// Intervals holds every bucket in order, including empty ones.
	Intervals []WardInterval
	// TypeTotals counts placements per display ward type.
	TypeTotals map[string]int
}

func wardIntervalLabel(idx int) string {
	from := idx * wardIntervalSec
	to := from + wardIntervalSec
	return fmt.Sprintf("%02d:%02d - %02d:%02d", from/60, from%60, to/60, to%60)
}

// computeWardStats buckets a team's own ward placements into timeline
// intervals. roleFilter is a role abbreviation or "All".
func computeWardStats(games []TeamGame, wardsByGame map[string][]model.WardEvent, roleFilter, championFilter string) WardStats {
	stats := WardStats{
		Games:      len(games),
		TypeTotals: make(map[string]int),
	}

	bucketCount := wardHorizonSec / wardIntervalSec
	buckets := make([][]model.WardEvent, bucketCount)

	for _, g := range games {
		roleByPUUID := make(map[string]string, 5)
		for _, role := range model.Roles {
			if p, ok := g.Player(role); ok && p.PUUID != "" {
				roleByPUUID[p.PUUID] = role
			}
		}
		for _, w := range wardsByGame[g.Rec.GameID] {
			role, own := roleByPUUID[w.PUUID]
			if !own {
				continue
			}
			if roleFilter != "" && roleFilter != "All" && role != roleFilter {
				continue
			}
			if championFilter != "" && championFilter != "All" && w.Champion != championFilter {
				continue
			}
			idx := int(w.TimestampSec) / wardIntervalSec
			if idx < 0 || idx >= bucketCount {
				continue
			}
			buckets[idx] = append(buckets[idx], w)
			stats.TypeTotals[w.WardType]++
		}
	}

	for i, wards := range buckets {
		sort.Slice(wards, func(a, b int) bool { return wards[a].TimestampSec < wards[b].TimestampSec })
		stats.Intervals = append(stats.Intervals, WardInterval{Label: wardIntervalLabel(i), Wards: wards})
	}

	if stats.Games == 0 {
		stats.Message = "No games match the selected filters"
	}
	return stats
}

// Wards runs the ward-timing view over a team's stored ward placements.
func Wards(db *storage.DB, f Filters, role string) ([]string, WardStats, []string) {
	teams, err := db.TeamTags()
	if err != nil {
		return nil, WardStats{Error: fmt.Sprintf("load teams: %v", err)}, nil
	}
	if f.Team == "" {
		return teams, WardStats{Message: "Select a team"}, []string{"All"}
	}

	base := f
	base.Champion = ""
	games, err := SelectTeamGames(db, base)
	if err != nil {
		return teams, WardStats{Error: err.Error()}, []string{"All"}
	}
	champOptions := teamChampions(games, "")

	wardsByGame := make(map[string][]model.WardEvent, len(games))
	for _, g := range games {
		wards, err := db.AllWardsForGame(g.Rec.GameID)
		if err != nil {
			return teams, WardStats{Error: fmt.Sprintf("load wards for %s: %v", g.Rec.GameID, err)}, champOptions
		}
		wardsByGame[g.Rec.GameID] = wards
	}

	return teams, computeWardStats(games, wardsByGame, role, f.Champion), champOptions
}
