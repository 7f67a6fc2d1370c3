package aggregator

import (
	"fmt"
	"math"
	"sort"

	"github.com/riftlab/go-lol-metrics/internal/model"
	"github.com/riftlab/go-lol-metrics/internal/storage"
)

// proximityThreshold is the near/far cutoff in game units.
const proximityThreshold = 2000.0

// NoData marks a bucket with zero observed ticks.
const NoData = -1

type proximityBucket struct {
	label        string
	fromMS, toMS int64 // toMS < 0 means open-ended
}

var proximityBuckets = []proximityBucket{
	{"0-5", 0, 300000},
	{"5-14", 300000, 840000},
	{"14-20", 840000, 1200000},
	{"20-24", 1200000, 1440000},
	{"24-30", 1440000, 1800000},
	{"30+", 1800000, -1},
}

// OverallBucket accumulates regardless of game time.
const OverallBucket = "Overall"

// ProximityBucketLabels lists the reporting buckets in order.
func ProximityBucketLabels() []string {
	labels := make([]string, 0, len(proximityBuckets)+1)
	for _, b := range proximityBuckets {
		labels = append(labels, b.label)
	}
	return append(labels, OverallBucket)
}

// ProximityChampion is the per-champion proximity breakdown for the chosen
// role.
type ProximityChampion struct {
	Champion string
	Games    int
	Wins     int
	WinRate  int
	// Allies maps ally role -> bucket label -> percentage of ticks within
	// the threshold, NoData when the bucket saw no ticks.
	Allies map[string]map[string]int
}

// ProximityStats is the proximity view result.
type ProximityStats struct {
	Error     string
	Message   string
	Role      string
	AllyRoles []string
	Buckets   []string
	Champions []ProximityChampion
	// Averages is the cross-champion mean percentage per ally and bucket.
	Averages map[string]map[string]int
}

func allyRolesFor(role string) []string {
	var allies []string
	for _, r := range model.Roles {
		if r != role {
			allies = append(allies, r)
		}
	}
	return allies
}

type tickCounts struct {
	near, total int
}

type champAccum struct {
	games, wins int
	counts      map[string]map[string]*tickCounts // ally -> bucket -> counts
}

func bucketsFor(ts int64) []string {
	labels := []string{OverallBucket}
	for _, b := range proximityBuckets {
		if ts >= b.fromMS && (b.toMS < 0 || ts < b.toMS) {
			labels = append(labels, b.label)
			break
		}
	}
	return labels
}

// computeProximityStats measures how often the chosen role sits within
// threshold range of each ally, bucketed by game phase and keyed by the
// role's champion.
func computeProximityStats(role string, games []TeamGame, timelines map[string][]model.PositionSample) ProximityStats {
	allies := allyRolesFor(role)
	stats := ProximityStats{
		Role:      role,
		AllyRoles: allies,
		Buckets:   ProximityBucketLabels(),
		Averages:  make(map[string]map[string]int),
	}

	accums := make(map[string]*champAccum)

	for _, g := range games {
		main, ok := g.Player(role)
		if !ok || main.PUUID == "" || main.ParticipantID == 0 {
			continue
		}
		// Metadata-only games (no livestats stored) contribute nothing and
		// must not count toward the champion's record.
		samples := timelines[g.Rec.GameID]
		if len(samples) == 0 {
			continue
		}
		allyParts := make(map[string]int, len(allies))
		for _, ally := range allies {
			if p, ok := g.Player(ally); ok && p.ParticipantID > 0 {
				allyParts[ally] = p.ParticipantID
			}
		}

		acc := accums[main.Champion]
		if acc == nil {
			acc = &champAccum{counts: make(map[string]map[string]*tickCounts)}
			for _, ally := range allies {
				acc.counts[ally] = make(map[string]*tickCounts)
				for _, label := range stats.Buckets {
					acc.counts[ally][label] = &tickCounts{}
				}
			}
			accums[main.Champion] = acc
		}
		acc.games++
		if g.Win {
			acc.wins++
		}

		// Group samples by tick so positions can be compared pairwise.
		byTick := make(map[int64]map[int][2]float64)
		for _, s := range samples {
			tick := byTick[s.TimestampMS]
			if tick == nil {
				tick = make(map[int][2]float64, 10)
				byTick[s.TimestampMS] = tick
			}
			tick[s.ParticipantID] = [2]float64{float64(s.X), float64(s.Z)}
		}

		for ts, tick := range byTick {
			mainPos, ok := tick[main.ParticipantID]
			if !ok {
				continue
			}
			labels := bucketsFor(ts)
			for ally, pid := range allyParts {
				allyPos, ok := tick[pid]
				if !ok {
					continue
				}
				dx := mainPos[0] - allyPos[0]
				dz := mainPos[1] - allyPos[1]
				near := math.Hypot(dx, dz) <= proximityThreshold
				for _, label := range labels {
					c := acc.counts[ally][label]
					c.total++
					if near {
						c.near++
					}
				}
			}
		}
	}

	perChampPcts := make(map[string]map[string][]float64) // ally -> bucket -> champion pcts
	for champion, acc := range accums {
		pc := ProximityChampion{
			Champion: champion,
			Games:    acc.games,
			Wins:     acc.wins,
			WinRate:  pct(acc.wins, acc.games),
			Allies:   make(map[string]map[string]int, len(allies)),
		}
		for _, ally := range allies {
			pc.Allies[ally] = make(map[string]int, len(stats.Buckets))
			for _, label := range stats.Buckets {
				c := acc.counts[ally][label]
				if c.total == 0 {
					pc.Allies[ally][label] = NoData
					continue
				}
				pc.Allies[ally][label] = pct(c.near, c.total)
				if perChampPcts[ally] == nil {
					perChampPcts[ally] = make(map[string][]float64)
				}
				// Averages are taken over the unrounded shares; rounding
				// per champion first drifts the mean.
				perChampPcts[ally][label] = append(perChampPcts[ally][label],
					float64(c.near)/float64(c.total)*100)
			}
		}
		stats.Champions = append(stats.Champions, pc)
	}
	sort.Slice(stats.Champions, func(a, b int) bool {
		if stats.Champions[a].Games != stats.Champions[b].Games {
			return stats.Champions[a].Games > stats.Champions[b].Games
		}
		return stats.Champions[a].Champion < stats.Champions[b].Champion
	})

	for _, ally := range allies {
		stats.Averages[ally] = make(map[string]int, len(stats.Buckets))
		for _, label := range stats.Buckets {
			pcts := perChampPcts[ally][label]
			if len(pcts) == 0 {
				stats.Averages[ally][label] = NoData
				continue
			}
			stats.Averages[ally][label] = int(math.Round(mean(pcts)))
		}
	}

	if len(stats.Champions) == 0 {
		stats.Message = "No position data for the selected games"
	}
	return stats
}

// Proximity runs the ally-proximity view for one role.
func Proximity(db *storage.DB, f Filters, role string) ([]string, ProximityStats, []string) {
	teams, err := db.TeamTags()
	if err != nil {
		return nil, ProximityStats{Error: fmt.Sprintf("load teams: %v", err)}, nil
	}
	if f.Team == "" {
		return teams, ProximityStats{Message: "Select a team"}, []string{"All"}
	}
	valid := false
	for _, r := range model.Roles {
		if r == role {
			valid = true
		}
	}
	if !valid {
		return teams, ProximityStats{Error: fmt.Sprintf("unknown role %q", role)}, []string{"All"}
	}

	base := f
	base.Champion = ""
	base.LastN = 0
	games, err := SelectTeamGames(db, base)
	if err != nil {
		return teams, ProximityStats{Error: err.Error()}, []string{"All"}
	}
	champOptions := teamChampions(games, role)

	if f.championFilterActive() {
		filtered := games[:0]
		for _, g := range games {
			if p, ok := g.Player(role); ok && p.Champion == f.Champion {
				filtered = append(filtered, g)
			}
		}
		games = filtered
	}
	if f.LastN > 0 && len(games) > f.LastN {
		games = games[:f.LastN]
	}

	timelines := make(map[string][]model.PositionSample, len(games))
	for _, g := range games {
		samples, err := db.TimelineRange(g.Rec.GameID, 0, -1)
		if err != nil {
			return teams, ProximityStats{Error: fmt.Sprintf("load timeline for %s: %v", g.Rec.GameID, err)}, champOptions
		}
		timelines[g.Rec.GameID] = samples
	}

	return teams, computeProximityStats(role, games, timelines), champOptions
}
