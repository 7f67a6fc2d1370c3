// Package aggregator computes cross-game statistics from stored derived
// events: jungle clear timings, objective and tower rates, lane-swap zone
// occupancy, ally proximity, ward timings, and draft aggregates.
package aggregator

import (
	"fmt"
	"math"
	"sort"

	"github.com/riftlab/go-lol-metrics/internal/model"
	"github.com/riftlab/go-lol-metrics/internal/storage"
)

// Side filter values accepted by every view.
const (
	SideAll  = "all"
	SideBlue = "blue"
	SideRed  = "red"
)

// Filters select the game set a view aggregates over.
type Filters struct {
	Team       string
	Side       string // all, blue, red
	Champion   string // "" or "All" disables the filter
	LastN      int    // 0 keeps every game
	Tournament string // "" keeps every tournament, "Scrims" selects scrim games
}

func (f Filters) championFilterActive() bool {
	return f.Champion != "" && f.Champion != "All"
}

// TeamGame is one stored game seen from the selected team's perspective.
type TeamGame struct {
	Rec  *model.GameRecord
	Side model.Side
	Win  bool
}

// Player returns the selected team's roster slot for a role.
func (g *TeamGame) Player(role string) (model.RolePlayer, bool) {
	return g.Rec.Player(g.Side, role)
}

// OwnTeamID returns the numeric team id for the selected team's side.
func (g *TeamGame) OwnTeamID() int {
	if g.Side == model.SideBlue {
		return model.TeamIDBlue
	}
	return model.TeamIDRed
}

// playedChampion reports whether the team fielded the champion in this game.
func (g *TeamGame) playedChampion(champion string) bool {
	for _, role := range model.Roles {
		if p, ok := g.Player(role); ok && p.Champion == champion {
			return true
		}
	}
	return false
}

// SelectTeamGames loads and filters a team's games, most recent first. The
// champion filter matches any role; views with a role-specific notion of
// champion refine further themselves.
func SelectTeamGames(db *storage.DB, f Filters) ([]TeamGame, error) {
	recs, err := db.GamesForTeam(f.Team)
	if err != nil {
		return nil, fmt.Errorf("load games for %s: %w", f.Team, err)
	}
	return filterTeamGames(recs, f), nil
}

func filterTeamGames(recs []*model.GameRecord, f Filters) []TeamGame {
	var games []TeamGame
	for _, rec := range recs {
		if f.Tournament != "" && rec.Tournament != f.Tournament {
			continue
		}
		side := model.SideBlue
		if rec.RedTeam == f.Team {
			side = model.SideRed
		}
		if f.Side == SideBlue && side != model.SideBlue {
			continue
		}
		if f.Side == SideRed && side != model.SideRed {
			continue
		}
		g := TeamGame{Rec: rec, Side: side, Win: rec.Won(side)}
		if f.championFilterActive() && !g.playedChampion(f.Champion) {
			continue
		}
		games = append(games, g)
	}
	if f.LastN > 0 && len(games) > f.LastN {
		games = games[:f.LastN]
	}
	return games
}

// teamChampions collects the distinct champions a team fielded in a role
// (or any role when role is empty), prefixed with the "All" option.
func teamChampions(games []TeamGame, role string) []string {
	set := make(map[string]bool)
	for _, g := range games {
		roles := model.Roles
		if role != "" {
			roles = []string{role}
		}
		for _, r := range roles {
			if p, ok := g.Player(r); ok && p.Champion != "" {
				set[p.Champion] = true
			}
		}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return append([]string{"All"}, names...)
}

// ---- Formatting helpers shared by the views ----

// fmtMSToMinSec renders milliseconds as "m:ss", or "N/A" for non-positive
// input.
func fmtMSToMinSec(ms float64) string {
	if ms <= 0 {
		return "N/A"
	}
	total := int(ms / 1000)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// fmtSecToMinSec renders seconds as "m:ss".
func fmtSecToMinSec(sec float64) string {
	total := int(sec)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func minOf(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// pct returns part/total as a rounded whole percentage, 0 when total is 0.
func pct(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// pct2 returns part/total*100 rounded to two decimals.
func pct2(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*10000) / 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
