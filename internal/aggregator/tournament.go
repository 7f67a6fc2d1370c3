package aggregator

import (
	"fmt"
	"sort"

	"github.com/riftlab/go-lol-metrics/internal/ddragon"
	"github.com/riftlab/go-lol-metrics/internal/model"
	"github.com/riftlab/go-lol-metrics/internal/storage"
)

// Draft pick sequence numbers per side under the standard tournament draft.
var (
	bluePickSeqs = []int{7, 10, 11, 18, 19}
	redPickSeqs  = []int{8, 9, 12, 17, 20}

	// Pick phase labels keyed by sequence number.
	bluePickPhases = map[int]string{7: "B1", 10: "B2-3", 11: "B2-3", 18: "B4-5", 19: "B4-5"}
	redPickPhases  = map[int]string{8: "R1-2", 9: "R1-2", 12: "R3", 17: "R4", 20: "R5"}
)

// duoCombos are the lane partnerships whose pairings get tracked.
var duoCombos = []struct {
	label string
	roleA string
	roleB string
}{
	{"TOP-JUNGLE", model.RoleTop, model.RoleJgl},
	{"JUNGLE-MID", model.RoleJgl, model.RoleMid},
	{"ADC-SUPPORT", model.RoleBot, model.RoleSup},
}

// ChampionCount is a champion with an occurrence count.
type ChampionCount struct {
	Name  string
	Count int
}

// ChampionPresence is a champion's draft presence across the tournament.
type ChampionPresence struct {
	Name     string
	Picks    int
	Bans     int
	Wins     int
	PickRate float64
	BanRate  float64
	Presence float64
	WinRate  float64
}

// DuoStat is one champion pairing for a lane partnership.
type DuoStat struct {
	Combo     string
	Champions [2]string
	Games     int
	Wins      int
	WinRate   int
}

// OverallDraftStats is the tournament-wide draft view.
type OverallDraftStats struct {
	Error   string
	Message string

	Games       int
	Champions   []ChampionPresence
	PicksByRole map[string][]ChampionCount
	Bans        []ChampionCount
	Duos        []DuoStat
}

// banName resolves a stored ban champion id through the catalog.
func banName(id string, champData *ddragon.ChampionData) string {
	if id == "" {
		return ""
	}
	return champData.Champion(id)
}

// OverallDraft aggregates picks, bans, presence, and duo pairings across
// every stored game.
func OverallDraft(db *storage.DB, champData *ddragon.ChampionData) ([]string, OverallDraftStats, error) {
	teams, err := db.TeamTags()
	if err != nil {
		return nil, OverallDraftStats{Error: fmt.Sprintf("load teams: %v", err)}, err
	}
	recs, err := db.AllGames()
	if err != nil {
		return teams, OverallDraftStats{Error: fmt.Sprintf("load games: %v", err)}, err
	}

	stats := OverallDraftStats{
		Games:       len(recs),
		PicksByRole: make(map[string][]ChampionCount),
	}
	if len(recs) == 0 {
		stats.Message = "No games stored yet"
		return teams, stats, nil
	}

	type presenceAccum struct{ picks, bans, wins int }
	presence := make(map[string]*presenceAccum)
	touch := func(name string) *presenceAccum {
		p := presence[name]
		if p == nil {
			p = &presenceAccum{}
			presence[name] = p
		}
		return p
	}

	roleCounts := make(map[string]map[string]int)
	banCounts := make(map[string]int)
	duoCounts := make(map[string]*DuoStat)

	for _, rec := range recs {
		for _, side := range []model.Side{model.SideBlue, model.SideRed} {
			won := rec.Won(side)
			for _, role := range model.Roles {
				p, ok := rec.Player(side, role)
				if !ok || p.Champion == "" {
					continue
				}
				acc := touch(p.Champion)
				acc.picks++
				if won {
					acc.wins++
				}
				if roleCounts[role] == nil {
					roleCounts[role] = make(map[string]int)
				}
				roleCounts[role][p.Champion]++
			}
			for _, combo := range duoCombos {
				a, okA := rec.Player(side, combo.roleA)
				b, okB := rec.Player(side, combo.roleB)
				if !okA || !okB || a.Champion == "" || b.Champion == "" {
					continue
				}
				key := combo.label + "|" + a.Champion + "|" + b.Champion
				duo := duoCounts[key]
				if duo == nil {
					duo = &DuoStat{Combo: combo.label, Champions: [2]string{a.Champion, b.Champion}}
					duoCounts[key] = duo
				}
				duo.Games++
				if won {
					duo.Wins++
				}
			}
		}
		for _, bans := range [][5]string{rec.BlueBans, rec.RedBans} {
			for _, id := range bans {
				name := banName(id, champData)
				if name == "" {
					continue
				}
				touch(name).bans++
				banCounts[name]++
			}
		}
	}

	games := len(recs)
	for name, acc := range presence {
		cp := ChampionPresence{
			Name:     name,
			Picks:    acc.picks,
			Bans:     acc.bans,
			Wins:     acc.wins,
			PickRate: pct2(acc.picks, games),
			BanRate:  pct2(acc.bans, games),
			Presence: pct2(acc.picks+acc.bans, games),
		}
		if acc.picks > 0 {
			cp.WinRate = pct2(acc.wins, acc.picks)
		}
		stats.Champions = append(stats.Champions, cp)
	}
	sort.Slice(stats.Champions, func(a, b int) bool {
		if stats.Champions[a].Presence != stats.Champions[b].Presence {
			return stats.Champions[a].Presence > stats.Champions[b].Presence
		}
		return stats.Champions[a].Name < stats.Champions[b].Name
	})

	for role, counts := range roleCounts {
		stats.PicksByRole[role] = sortedCounts(counts)
	}
	stats.Bans = sortedCounts(banCounts)

	for _, duo := range duoCounts {
		duo.WinRate = pct(duo.Wins, duo.Games)
		stats.Duos = append(stats.Duos, *duo)
	}
	sort.Slice(stats.Duos, func(a, b int) bool {
		if stats.Duos[a].Games != stats.Duos[b].Games {
			return stats.Duos[a].Games > stats.Duos[b].Games
		}
		return stats.Duos[a].Champions[0] < stats.Duos[b].Champions[0]
	})

	return teams, stats, nil
}

func sortedCounts(m map[string]int) []ChampionCount {
	out := make([]ChampionCount, 0, len(m))
	for name, count := range m {
		out = append(out, ChampionCount{Name: name, Count: count})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		return out[a].Name < out[b].Name
	})
	return out
}

// RotationBans splits bans into the first rotation (bans 1-3) and second
// (bans 4-5).
type RotationBans struct {
	Rot1 []ChampionCount
	Rot2 []ChampionCount
}

// SideRecord is a win/loss tally for one side.
type SideRecord struct {
	Games int
	Wins  int
}

// GameDetail is one game of the team view with its derived artifacts
// attached.
type GameDetail struct {
	Rec        *model.GameRecord
	Side       model.Side
	Win        bool
	JunglePath []model.PathEntry
	Frames     []model.PositionFrame
	FirstWards []model.WardEvent
}

// SeriesGroup groups a team's games by series, most recent series first.
type SeriesGroup struct {
	SeriesID string
	Games    []GameDetail
}

// TeamDraftStats is the per-team tournament view.
type TeamDraftStats struct {
	Error   string
	Message string

	Games  int
	Wins   int
	Losses int
	Blue   SideRecord
	Red    SideRecord

	OurBans RotationBans
	FoeBans RotationBans

	// PickPatterns maps a pick phase (B1, B2-3, ... / R1-2, ...) to the
	// percentage of games where that phase's pick went to each role.
	PickPatterns map[string]map[string]int

	Series []SeriesGroup
}

// pickPhaseRoles tallies, for every draft phase the team drafted in, which
// roster role received the picked champion.
func pickPhaseRoles(g TeamGame, tally map[string]map[string]int) {
	seqs, phases := bluePickSeqs, bluePickPhases
	if g.Side == model.SideRed {
		seqs, phases = redPickSeqs, redPickPhases
	}
	actionsBySeq := make(map[int]model.DraftAction, len(g.Rec.Draft))
	for _, a := range g.Rec.Draft {
		actionsBySeq[a.Sequence] = a
	}
	for _, seq := range seqs {
		a, ok := actionsBySeq[seq]
		if !ok || a.Type != "pick" || a.Champion == "" {
			continue
		}
		role := ""
		for _, r := range model.Roles {
			if p, ok := g.Player(r); ok && p.Champion == a.Champion {
				role = r
				break
			}
		}
		if role == "" {
			continue
		}
		phase := phases[seq]
		if tally[phase] == nil {
			tally[phase] = make(map[string]int)
		}
		tally[phase][role]++
	}
}

// TeamDraft aggregates one team's results, ban rotations, pick patterns,
// and per-series game details.
func TeamDraft(db *storage.DB, f Filters, champData *ddragon.ChampionData) ([]string, TeamDraftStats, error) {
	teams, err := db.TeamTags()
	if err != nil {
		return nil, TeamDraftStats{Error: fmt.Sprintf("load teams: %v", err)}, err
	}
	if f.Team == "" {
		return teams, TeamDraftStats{Message: "Select a team"}, nil
	}
	games, err := SelectTeamGames(db, f)
	if err != nil {
		return teams, TeamDraftStats{Error: err.Error()}, err
	}

	stats := TeamDraftStats{
		Games:        len(games),
		PickPatterns: make(map[string]map[string]int),
	}
	if len(games) == 0 {
		stats.Message = "No games match the selected filters"
		return teams, stats, nil
	}

	ourRot1 := make(map[string]int)
	ourRot2 := make(map[string]int)
	foeRot1 := make(map[string]int)
	foeRot2 := make(map[string]int)
	phaseTally := make(map[string]map[string]int)
	sideGames := map[model.Side]int{}

	bySeries := make(map[string]*SeriesGroup)
	var seriesOrder []string

	for _, g := range games {
		if g.Win {
			stats.Wins++
		} else {
			stats.Losses++
		}
		sideGames[g.Side]++
		if g.Side == model.SideBlue {
			stats.Blue.Games++
			if g.Win {
				stats.Blue.Wins++
			}
		} else {
			stats.Red.Games++
			if g.Win {
				stats.Red.Wins++
			}
		}

		ours, foes := g.Rec.BlueBans, g.Rec.RedBans
		if g.Side == model.SideRed {
			ours, foes = foes, ours
		}
		for i := 0; i < 5; i++ {
			ourTarget, foeTarget := ourRot1, foeRot1
			if i >= 3 {
				ourTarget, foeTarget = ourRot2, foeRot2
			}
			if name := banName(ours[i], champData); name != "" {
				ourTarget[name]++
			}
			if name := banName(foes[i], champData); name != "" {
				foeTarget[name]++
			}
		}

		pickPhaseRoles(g, phaseTally)

		detail := GameDetail{Rec: g.Rec, Side: g.Side, Win: g.Win}
		if jgl, ok := g.Player(model.RoleJgl); ok && jgl.PUUID != "" {
			if path, err := db.JunglePath(g.Rec.GameID, jgl.PUUID); err == nil {
				detail.JunglePath = path
			}
		}
		if frames, err := db.PositionFramesForGame(g.Rec.GameID); err == nil {
			detail.Frames = frames
		}
		if wards, err := db.FirstWardsForGame(g.Rec.GameID); err == nil {
			detail.FirstWards = wards
		}

		seriesID := g.Rec.SeriesID
		group := bySeries[seriesID]
		if group == nil {
			group = &SeriesGroup{SeriesID: seriesID}
			bySeries[seriesID] = group
			seriesOrder = append(seriesOrder, seriesID)
		}
		group.Games = append(group.Games, detail)
	}

	stats.OurBans = RotationBans{Rot1: sortedCounts(ourRot1), Rot2: sortedCounts(ourRot2)}
	stats.FoeBans = RotationBans{Rot1: sortedCounts(foeRot1), Rot2: sortedCounts(foeRot2)}

	for phase, roles := range phaseTally {
		sideTotal := sideGames[model.SideBlue]
		if phase[0] == 'R' {
			sideTotal = sideGames[model.SideRed]
		}
		stats.PickPatterns[phase] = make(map[string]int, len(roles))
		for role, n := range roles {
			stats.PickPatterns[phase][role] = pct(n, sideTotal)
		}
	}

	for _, id := range seriesOrder {
		group := bySeries[id]
		sort.Slice(group.Games, func(a, b int) bool {
			return group.Games[a].Rec.SeqNumber < group.Games[b].Rec.SeqNumber
		})
		stats.Series = append(stats.Series, *group)
	}

	return teams, stats, nil
}
