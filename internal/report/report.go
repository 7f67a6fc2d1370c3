// Package report renders aggregated views as terminal tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/riftlab/go-lol-metrics/internal/aggregator"
	"github.com/riftlab/go-lol-metrics/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintTeams lists the stored team tags.
func PrintTeams(w io.Writer, teams []string) {
	if len(teams) == 0 {
		fmt.Fprintln(w, "no teams stored")
		return
	}
	table := newTable(w)
	table.Header("TEAM")
	for _, t := range teams {
		table.Append(t)
	}
	table.Render()
}

// PrintGameList prints one row per stored game for a team.
func PrintGameList(w io.Writer, games []aggregator.TeamGame) {
	table := newTable(w)
	table.Header("DATE", "GAME", "SERIES", "G#", "SIDE", "VS", "RESULT", "PATCH", "LENGTH")
	for _, g := range games {
		opponent := g.Rec.RedTeam
		if g.Side == model.SideRed {
			opponent = g.Rec.BlueTeam
		}
		result := "LOSS"
		if g.Win {
			result = "WIN"
		}
		table.Append(
			g.Rec.Date,
			g.Rec.GameID,
			g.Rec.SeriesID,
			strconv.Itoa(g.Rec.SeqNumber),
			string(g.Side),
			opponent,
			result,
			g.Rec.Patch,
			g.Rec.Duration,
		)
	}
	table.Render()
}

// PrintJungleTables prints the opening-clear slot breakdown and the jungler
// champion pool.
func PrintJungleTables(w io.Writer, stats aggregator.JungleStats) {
	fmt.Fprintf(w, "\nGames with recorded paths: %d\n\n", stats.Games)

	table := newTable(w)
	table.Header("SLOT", "AVG_TIME", "GAP", "TOP CAMPS")
	for i, slot := range stats.Slots {
		gap := ""
		if i > 0 {
			gap = stats.Deltas[i-1]
		}
		camps := ""
		for j, c := range slot.Camps {
			if j == 3 {
				break
			}
			if j > 0 {
				camps += "  "
			}
			camps += fmt.Sprintf("%s %d%% (%s)", c.Camp, c.Pct, c.AvgTime)
		}
		table.Append(strconv.Itoa(i+1), slot.AvgTime, gap, camps)
	}
	table.Render()

	if len(stats.Champions) > 0 {
		fmt.Fprintln(w, "\nJungler picks:")
		champs := newTable(w)
		champs.Header("CHAMPION", "GAMES", "WINS", "WR%")
		for _, c := range stats.Champions {
			champs.Append(c.Name, strconv.Itoa(c.Games), strconv.Itoa(c.Wins), fmt.Sprintf("%d%%", c.WinRate))
		}
		champs.Render()
	}
}

func printSideStats(w io.Writer, label string, s aggregator.SideStats) {
	fmt.Fprintf(w, "\n%s  (games=%d, wins=%d, WR=%d%%)\n", label, s.Games, s.Wins, s.WinRate)

	drakes := newTable(w)
	drakes.Header("SPAWN1%", "SPAWN2%", "SPAWN3%", "SPAWN4%", "SOUL%", "SOUL_WR%", "<7MIN", "<15MIN", "AVG/GAME", "FIRST_AVG")
	drakes.Append(
		fmt.Sprintf("%d%%", s.Drakes.TakeRateBySpawn[0]),
		fmt.Sprintf("%d%%", s.Drakes.TakeRateBySpawn[1]),
		fmt.Sprintf("%d%%", s.Drakes.TakeRateBySpawn[2]),
		fmt.Sprintf("%d%%", s.Drakes.TakeRateBySpawn[3]),
		fmt.Sprintf("%d%%", s.Drakes.SoulRate),
		fmt.Sprintf("%d%%", s.Drakes.SoulWinRate),
		fmt.Sprintf("%.2f", s.Drakes.AvgBefore7),
		fmt.Sprintf("%.2f", s.Drakes.AvgBefore15),
		fmt.Sprintf("%.2f", s.Drakes.AvgPerGame),
		s.Drakes.FirstDrake.Avg,
	)
	drakes.Render()

	if len(s.Grubs.Buckets) > 0 {
		grubs := newTable(w)
		grubs.Header("GRUBS", "GAMES", "WR%", "DIFF_WR")
		for _, b := range s.Grubs.Buckets {
			grubs.Append(b.Label, strconv.Itoa(b.Games), fmt.Sprintf("%d%%", b.WinRate), b.DiffWR)
		}
		grubs.Render()
		fmt.Fprintf(w, "Grubs: avg=%.2f  1+=%d%%  3+=%d%%  first=%s\n",
			s.Grubs.AvgTaken, s.Grubs.OnePlusRate, s.Grubs.ThreePlusRate, s.Grubs.FirstGrub.Avg)
	}

	families := newTable(w)
	families.Header("OBJECTIVE", "SECURED%", "TOTAL", "WR_WHEN_SECURED", "FIRST_AVG")
	for _, f := range []struct {
		name string
		st   aggregator.FamilyStats
	}{
		{"Herald", s.Herald},
		{"Baron", s.Baron},
		{"Atakhan", s.Atakhan},
	} {
		families.Append(f.name,
			fmt.Sprintf("%d%%", f.st.SecuredPct),
			strconv.Itoa(f.st.Total),
			fmt.Sprintf("%d%%", f.st.WinRateWhenSecured),
			f.st.First.Avg,
		)
	}
	families.Render()

	fmt.Fprintf(w, "First tower: %d%% of games, avg %s\n", s.Towers.FirstTowerPct, s.Towers.FirstTowerTimer)
	towers := newTable(w)
	towers.Header("LANE", "FT_SHARE%", "FT_TIMER", "OUR_OUTER", "FOE_OUTER", "DIFF")
	for _, lt := range s.Towers.Lanes {
		towers.Append(lt.Lane,
			fmt.Sprintf("%d%%", lt.FTShare),
			lt.FTTimer,
			lt.OurOuterAvg,
			lt.FoeOuterAvg,
			lt.OuterDiff,
		)
	}
	towers.Render()
}

// PrintObjectiveTables prints the objectives view split by side.
func PrintObjectiveTables(w io.Writer, stats aggregator.ObjectiveStats) {
	printSideStats(w, "OVERALL", stats.Overall)
	printSideStats(w, "BLUE SIDE", stats.Blue)
	printSideStats(w, "RED SIDE", stats.Red)
}

// PrintSwapTables prints the per-window zone occupancy distributions.
func PrintSwapTables(w io.Writer, stats aggregator.SwapStats) {
	fmt.Fprintf(w, "\nGames: %d\n", stats.Games)
	for _, win := range stats.Windows {
		fmt.Fprintf(w, "\nWindow %s\n", win.Label)
		table := newTable(w)
		table.Header("ROLE", "ZONES")
		for _, role := range []string{model.RoleTop, model.RoleBot, model.RoleSup} {
			line := ""
			for i, share := range win.Roles[role] {
				if i == 4 {
					break
				}
				if i > 0 {
					line += "  "
				}
				line += fmt.Sprintf("%s %.2f%%", share.Zone, share.Pct)
			}
			table.Append(role, line)
		}
		table.Render()
	}
}

func proximityCell(v int) string {
	if v == aggregator.NoData {
		return "-"
	}
	return fmt.Sprintf("%d%%", v)
}

// PrintProximityTables prints the per-champion and averaged ally-proximity
// percentages.
func PrintProximityTables(w io.Writer, stats aggregator.ProximityStats) {
	fmt.Fprintf(w, "\nRole: %s  (threshold 2000 units)\n", stats.Role)

	for _, ally := range stats.AllyRoles {
		fmt.Fprintf(w, "\nTime near %s:\n", ally)
		table := newTable(w)
		header := []any{"CHAMPION", "GAMES", "WR%"}
		for _, b := range stats.Buckets {
			header = append(header, b)
		}
		table.Header(header...)
		for _, c := range stats.Champions {
			row := []any{c.Champion, strconv.Itoa(c.Games), fmt.Sprintf("%d%%", c.WinRate)}
			for _, b := range stats.Buckets {
				row = append(row, proximityCell(c.Allies[ally][b]))
			}
			table.Append(row...)
		}
		avgRow := []any{"AVG", "", ""}
		for _, b := range stats.Buckets {
			avgRow = append(avgRow, proximityCell(stats.Averages[ally][b]))
		}
		table.Append(avgRow...)
		table.Render()
	}
}

// PrintWardTables prints ward placements bucketed by game time, skipping
// empty intervals.
func PrintWardTables(w io.Writer, stats aggregator.WardStats) {
	fmt.Fprintf(w, "\nGames: %d\n", stats.Games)

	if len(stats.TypeTotals) > 0 {
		totals := newTable(w)
		totals.Header("WARD TYPE", "PLACED")
		for _, wt := range []string{"Stealth Ward", "Control Ward", "Farsight Ward", "Zombie Ward"} {
			if n, ok := stats.TypeTotals[wt]; ok {
				totals.Append(wt, strconv.Itoa(n))
			}
		}
		totals.Render()
	}

	table := newTable(w)
	table.Header("INTERVAL", "N", "WARDS")
	for _, iv := range stats.Intervals {
		if len(iv.Wards) == 0 {
			continue
		}
		line := ""
		for i, ward := range iv.Wards {
			if i == 5 {
				line += " ..."
				break
			}
			if i > 0 {
				line += "  "
			}
			line += fmt.Sprintf("%s/%s@%s", ward.Champion, ward.WardType, fmtSec(ward.TimestampSec))
		}
		table.Append(iv.Label, strconv.Itoa(len(iv.Wards)), line)
	}
	table.Render()
}

func fmtSec(sec float64) string {
	total := int(sec)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// PrintStartPositions prints per-game opening frames.
func PrintStartPositions(w io.Writer, stats aggregator.StartPositionStats) {
	for _, g := range stats.Games {
		result := "LOSS"
		if g.Win {
			result = "WIN"
		}
		fmt.Fprintf(w, "\nGame %s  %s vs %s  (%s)\n", g.GameID, g.BlueTeam, g.RedTeam, result)
		table := newTable(w)
		table.Header("TIME", "PARTICIPANT", "CHAMPION", "TEAM", "X", "Z")
		for _, frame := range g.Frames {
			ts := fmtSec(float64(frame.TimestampMS) / 1000)
			for _, p := range frame.Positions {
				table.Append(ts,
					strconv.Itoa(p.ParticipantID),
					p.Champion,
					strconv.Itoa(p.TeamID),
					fmt.Sprintf("%.0f", p.X),
					fmt.Sprintf("%.0f", p.Z),
				)
			}
		}
		table.Render()
	}
}

// PrintOverallDraft prints tournament-wide presence, per-role picks, bans,
// and duo pairings. limit caps the presence and duo tables, 0 means all.
func PrintOverallDraft(w io.Writer, stats aggregator.OverallDraftStats, limit int) {
	fmt.Fprintf(w, "\nGames: %d\n\n", stats.Games)

	table := newTable(w)
	table.Header("CHAMPION", "PICKS", "BANS", "PRESENCE%", "PICK%", "BAN%", "WR%")
	for i, c := range stats.Champions {
		if limit > 0 && i == limit {
			break
		}
		table.Append(c.Name,
			strconv.Itoa(c.Picks),
			strconv.Itoa(c.Bans),
			fmt.Sprintf("%.2f%%", c.Presence),
			fmt.Sprintf("%.2f%%", c.PickRate),
			fmt.Sprintf("%.2f%%", c.BanRate),
			fmt.Sprintf("%.2f%%", c.WinRate),
		)
	}
	table.Render()

	fmt.Fprintln(w, "\nMost-picked by role:")
	roles := newTable(w)
	roles.Header("ROLE", "CHAMPIONS")
	for _, role := range model.Roles {
		line := ""
		for i, c := range stats.PicksByRole[role] {
			if i == 5 {
				break
			}
			if i > 0 {
				line += "  "
			}
			line += fmt.Sprintf("%s (%d)", c.Name, c.Count)
		}
		roles.Append(role, line)
	}
	roles.Render()

	if len(stats.Duos) > 0 {
		fmt.Fprintln(w, "\nDuo pairings:")
		duos := newTable(w)
		duos.Header("COMBO", "CHAMPIONS", "GAMES", "WR%")
		for i, d := range stats.Duos {
			if limit > 0 && i == limit {
				break
			}
			duos.Append(d.Combo,
				d.Champions[0]+" + "+d.Champions[1],
				strconv.Itoa(d.Games),
				fmt.Sprintf("%d%%", d.WinRate),
			)
		}
		duos.Render()
	}
}

func printRotation(w io.Writer, label string, counts []aggregator.ChampionCount) {
	line := ""
	for i, c := range counts {
		if i == 8 {
			break
		}
		if i > 0 {
			line += "  "
		}
		line += fmt.Sprintf("%s (%d)", c.Name, c.Count)
	}
	fmt.Fprintf(w, "  %s: %s\n", label, line)
}

// PrintTeamDraft prints one team's record, ban rotations, pick-phase role
// patterns, and series history.
func PrintTeamDraft(w io.Writer, stats aggregator.TeamDraftStats) {
	fmt.Fprintf(w, "\nRecord: %d-%d  (blue %d-%d, red %d-%d)\n",
		stats.Wins, stats.Losses,
		stats.Blue.Wins, stats.Blue.Games-stats.Blue.Wins,
		stats.Red.Wins, stats.Red.Games-stats.Red.Wins)

	fmt.Fprintln(w, "\nOur bans:")
	printRotation(w, "rotation 1", stats.OurBans.Rot1)
	printRotation(w, "rotation 2", stats.OurBans.Rot2)
	fmt.Fprintln(w, "Bans against us:")
	printRotation(w, "rotation 1", stats.FoeBans.Rot1)
	printRotation(w, "rotation 2", stats.FoeBans.Rot2)

	if len(stats.PickPatterns) > 0 {
		fmt.Fprintln(w, "\nPick phases:")
		table := newTable(w)
		header := []any{"PHASE"}
		for _, role := range model.Roles {
			header = append(header, role)
		}
		table.Header(header...)
		for _, phase := range []string{"B1", "B2-3", "B4-5", "R1-2", "R3", "R4", "R5"} {
			roles, ok := stats.PickPatterns[phase]
			if !ok {
				continue
			}
			row := []any{phase}
			for _, role := range model.Roles {
				row = append(row, fmt.Sprintf("%d%%", roles[role]))
			}
			table.Append(row...)
		}
		table.Render()
	}

	for _, series := range stats.Series {
		fmt.Fprintf(w, "\nSeries %s\n", series.SeriesID)
		table := newTable(w)
		table.Header("G#", "DATE", "SIDE", "BLUE", "RED", "RESULT", "LENGTH")
		for _, g := range series.Games {
			result := "LOSS"
			if g.Win {
				result = "WIN"
			}
			table.Append(
				strconv.Itoa(g.Rec.SeqNumber),
				g.Rec.Date,
				string(g.Side),
				g.Rec.BlueTeam,
				g.Rec.RedTeam,
				result,
				g.Rec.Duration,
			)
		}
		table.Render()
	}
}
