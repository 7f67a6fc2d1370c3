package aggregator

import (
	"fmt"
	"sort"

	"github.com/riftlab/go-lol-metrics/internal/geometry"
	"github.com/riftlab/go-lol-metrics/internal/model"
	"github.com/riftlab/go-lol-metrics/internal/storage"
)

// swapWindow is one early-game interval of the lane-swap analysis.
type swapWindow struct {
	label        string
	fromMS, toMS int64
}

var swapWindows = []swapWindow{
	{"03:00-04:00", 180000, 240000},
	{"04:00-05:00", 240000, 300000},
	{"05:00-06:00", 300000, 360000},
	{"06:00-07:00", 360000, 420000},
}

// swapRoles are the positions whose early placement reveals a lane swap.
var swapRoles = []string{model.RoleTop, model.RoleBot, model.RoleSup}

// ZoneShare is one simplified zone's share of a role's ticks in a window.
type ZoneShare struct {
	Zone string
	Pct  float64
}

// SwapWindowStats holds per-role zone distributions for one interval.
type SwapWindowStats struct {
	Label string
	Roles map[string][]ZoneShare
}

// SwapStats is the lane-swap view result.
type SwapStats struct {
	Error   string
	Message string
	Games   int
	Windows []SwapWindowStats
}

// computeSwapStats buckets simplified-zone occupancy ticks per window and
// role. Ticks that simplify to nothing (bases, dead zones) are ignored.
func computeSwapStats(games []TeamGame, timelines map[string][]model.PositionSample, classifier *geometry.Classifier) SwapStats {
	stats := SwapStats{Games: len(games)}

	counts := make(map[string]map[string]map[string]int, len(swapWindows))
	totals := make(map[string]map[string]int, len(swapWindows))
	for _, w := range swapWindows {
		counts[w.label] = make(map[string]map[string]int, len(swapRoles))
		totals[w.label] = make(map[string]int, len(swapRoles))
		for _, role := range swapRoles {
			counts[w.label][role] = make(map[string]int)
		}
	}

	for _, g := range games {
		samples := timelines[g.Rec.GameID]
		if len(samples) == 0 {
			continue
		}
		roleByPart := make(map[int]string, len(swapRoles))
		for _, role := range swapRoles {
			if p, ok := g.Player(role); ok && p.ParticipantID > 0 {
				roleByPart[p.ParticipantID] = role
			}
		}
		for _, s := range samples {
			role, ok := roleByPart[s.ParticipantID]
			if !ok {
				continue
			}
			x, z := float64(s.X), float64(s.Z)
			zone := classifier.Classify(x, z)
			simplified := geometry.Simplify(x, z, zone)
			if simplified == "" {
				continue
			}
			for _, w := range swapWindows {
				if s.TimestampMS >= w.fromMS && s.TimestampMS < w.toMS {
					counts[w.label][role][simplified]++
					totals[w.label][role]++
					break
				}
			}
		}
	}

	for _, w := range swapWindows {
		ws := SwapWindowStats{Label: w.label, Roles: make(map[string][]ZoneShare, len(swapRoles))}
		for _, role := range swapRoles {
			total := totals[w.label][role]
			var shares []ZoneShare
			for zone, n := range counts[w.label][role] {
				shares = append(shares, ZoneShare{Zone: zone, Pct: pct2(n, total)})
			}
			sort.Slice(shares, func(a, b int) bool {
				if shares[a].Pct != shares[b].Pct {
					return shares[a].Pct > shares[b].Pct
				}
				return shares[a].Zone < shares[b].Zone
			})
			ws.Roles[role] = shares
		}
		stats.Windows = append(stats.Windows, ws)
	}

	if stats.Games == 0 {
		stats.Message = "No games match the selected filters"
	}
	return stats
}

// SwapZones runs the lane-swap view over the 3-7 minute timelines.
func SwapZones(db *storage.DB, f Filters, classifier *geometry.Classifier) ([]string, SwapStats, []string) {
	teams, err := db.TeamTags()
	if err != nil {
		return nil, SwapStats{Error: fmt.Sprintf("load teams: %v", err)}, nil
	}
	if f.Team == "" {
		return teams, SwapStats{Message: "Select a team"}, []string{"All"}
	}

	games, err := SelectTeamGames(db, f)
	if err != nil {
		return teams, SwapStats{Error: err.Error()}, []string{"All"}
	}
	champOptions := teamChampions(games, "")

	from := swapWindows[0].fromMS
	to := swapWindows[len(swapWindows)-1].toMS
	timelines := make(map[string][]model.PositionSample, len(games))
	for _, g := range games {
		samples, err := db.TimelineRange(g.Rec.GameID, from, to)
		if err != nil {
			return teams, SwapStats{Error: fmt.Sprintf("load timeline for %s: %v", g.Rec.GameID, err)}, champOptions
		}
		timelines[g.Rec.GameID] = samples
	}

	return teams, computeSwapStats(games, timelines, classifier), champOptions
}
