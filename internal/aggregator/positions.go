package aggregator

import (
	"fmt"
	"sort"

	"github.com/riftlab/go-lol-metrics/internal/ddragon"
	"github.com/riftlab/go-lol-metrics/internal/model"
	"github.com/riftlab/go-lol-metrics/internal/storage"
)

// startHorizonMS bounds the start-position timeline: the opening 100
// seconds cover leash setups and lane assignments.
const startHorizonMS = 100000

// StartFrame is the team-wide position set at one early timestamp.
type StartFrame struct {
	TimestampMS int64
	Positions   []model.FramePosition
}

// StartGame is one game's opening movement data.
type StartGame struct {
	GameID   string
	BlueTeam string
	RedTeam  string
	Winner   model.Side
	Win      bool
	Frames   []StartFrame
	// Icons maps champion display names to icon asset keys.
	Icons map[string]string
}

// StartPositionStats is the start-positions view result.
type StartPositionStats struct {
	Error   string
	Message string
	Games   []StartGame
}

// computeStartGame converts early timeline samples into ordered frames,
// resolving champions through the game roster.
func computeStartGame(g TeamGame, samples []model.PositionSample, champData *ddragon.ChampionData) StartGame {
	sg := StartGame{
		GameID:   g.Rec.GameID,
		BlueTeam: g.Rec.BlueTeam,
		RedTeam:  g.Rec.RedTeam,
		Winner:   g.Rec.WinnerSide,
		Win:      g.Win,
		Icons:    make(map[string]string),
	}

	champByPart := make(map[int]struct {
		champ string
		team  int
	}, 10)
	for _, role := range model.Roles {
		if p, ok := g.Rec.Player(model.SideBlue, role); ok && p.ParticipantID > 0 {
			champByPart[p.ParticipantID] = struct {
				champ string
				team  int
			}{p.Champion, model.TeamIDBlue}
		}
		if p, ok := g.Rec.Player(model.SideRed, role); ok && p.ParticipantID > 0 {
			champByPart[p.ParticipantID] = struct {
				champ string
				team  int
			}{p.Champion, model.TeamIDRed}
		}
	}

	byTick := make(map[int64][]model.FramePosition)
	for _, s := range samples {
		if s.TimestampMS > startHorizonMS {
			continue
		}
		info := champByPart[s.ParticipantID]
		champ := info.champ
		if champ == "" {
			champ = "Unknown"
		}
		byTick[s.TimestampMS] = append(byTick[s.TimestampMS], model.FramePosition{
			ParticipantID: s.ParticipantID,
			Champion:      champ,
			TeamID:        info.team,
			X:             float64(s.X),
			Z:             float64(s.Z),
		})
		if champ != "Unknown" {
			sg.Icons[champ] = champData.IconKey(champ)
		}
	}

	ticks := make([]int64, 0, len(byTick))
	for ts := range byTick {
		ticks = append(ticks, ts)
	}
	sort.Slice(ticks, func(a, b int) bool { return ticks[a] < ticks[b] })
	for _, ts := range ticks {
		positions := byTick[ts]
		sort.Slice(positions, func(a, b int) bool {
			return positions[a].ParticipantID < positions[b].ParticipantID
		})
		sg.Frames = append(sg.Frames, StartFrame{TimestampMS: ts, Positions: positions})
	}
	return sg
}

// StartPositions runs the start-positions view: per-game opening movement
// frames for the selected team.
func StartPositions(db *storage.DB, f Filters, champData *ddragon.ChampionData) ([]string, StartPositionStats, []string) {
	teams, err := db.TeamTags()
	if err != nil {
		return nil, StartPositionStats{Error: fmt.Sprintf("load teams: %v", err)}, nil
	}
	if f.Team == "" {
		return teams, StartPositionStats{Message: "Select a team"}, []string{"All"}
	}

	games, err := SelectTeamGames(db, f)
	if err != nil {
		return teams, StartPositionStats{Error: err.Error()}, []string{"All"}
	}
	champOptions := teamChampions(games, "")

	var stats StartPositionStats
	for _, g := range games {
		samples, err := db.TimelineRange(g.Rec.GameID, 0, startHorizonMS)
		if err != nil {
			return teams, StartPositionStats{Error: fmt.Sprintf("load timeline for %s: %v", g.Rec.GameID, err)}, champOptions
		}
		if len(samples) == 0 {
			continue
		}
		stats.Games = append(stats.Games, computeStartGame(g, samples, champData))
	}
	if len(stats.Games) == 0 {
		stats.Message = "No early-game position data for the selected filters"
	}
	return teams, stats, champOptions
}
