package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/riftlab/go-lol-metrics/internal/model"
)

type summaryParticipant struct {
	ParticipantID  int    `json:"participantId"`
	PUUID          string `json:"puuid"`
	TeamID         int    `json:"teamId"`
	Champion       string `json:"championName"`
	RiotIDGameName string `json:"riotIdGameName"`
	SummonerName   string `json:"summonerName"`
}

type summaryBan struct {
	ChampionID int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}

type summaryTeam struct {
	TeamID int          `json:"teamId"`
	Win    bool         `json:"win"`
	Bans   []summaryBan `json:"bans"`
}

type gameSummary struct {
	EsportsGameID      json.Number          `json:"esportsGameId"`
	GameID             json.Number          `json:"gameId"`
	GameSequenceNumber *int                 `json:"gameSequenceNumber"`
	GameDuration       float64              `json:"gameDuration"`
	GameCreation       int64                `json:"gameCreation"`
	GameVersion        string               `json:"gameVersion"`
	Participants       []summaryParticipant `json:"participants"`
	Teams              []summaryTeam        `json:"teams"`
}

// displayName prefers the tournament realm riot id over the plain summoner
// name.
func (p *summaryParticipant) displayName() string {
	if p.RiotIDGameName != "" {
		return p.RiotIDGameName
	}
	if p.SummonerName != "" {
		return p.SummonerName
	}
	return "UnknownPlayer"
}

// roleWords are prefixes that look like tags but name a position instead.
var roleWords = map[string]bool{
	"MID": true, "TOP": true, "BOT": true, "JGL": true, "JUG": true,
	"JG": true, "JUN": true, "ADC": true, "SUP": true, "SPT": true,
}

// teamTag extracts the team prefix from a tournament riot id
// ("T1 Faker" -> "T1"). A candidate must be 2-5 uppercase alphanumeric
// characters and not a role word, otherwise the fallback tag is used.
func teamTag(riotID, fallback string) string {
	i := strings.IndexByte(riotID, ' ')
	if i <= 0 {
		return fallback
	}
	tag := riotID[:i]
	if len(tag) < 2 || len(tag) > 5 || roleWords[tag] {
		return fallback
	}
	hasLetter := false
	for _, r := range tag {
		switch {
		case r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
		default:
			return fallback
		}
	}
	if !hasLetter {
		return fallback
	}
	return tag
}

// ParseGameSummary decodes a match summary into a GameRecord and the
// participant manifest used by the telemetry extractors. Tournament, stage,
// and series identity are supplied by the caller from the series context.
func ParseGameSummary(data []byte) (*model.GameRecord, model.Manifest, error) {
	var sum gameSummary
	if err := json.Unmarshal(data, &sum); err != nil {
		return nil, nil, fmt.Errorf("decode summary: %w", err)
	}

	gameID := sum.EsportsGameID.String()
	if gameID == "" || gameID == "0" {
		gameID = sum.GameID.String()
	}
	if gameID == "" || gameID == "0" {
		return nil, nil, fmt.Errorf("summary has no game id")
	}
	if len(sum.Participants) != 10 || len(sum.Teams) != 2 {
		return nil, nil, fmt.Errorf("game %s: unexpected participants/teams count (%d/%d)",
			gameID, len(sum.Participants), len(sum.Teams))
	}

	rec := &model.GameRecord{
		GameID:     gameID,
		BlueTeam:   teamTag(sum.Participants[0].RiotIDGameName, model.UnknownBlueTag),
		RedTeam:    teamTag(sum.Participants[5].RiotIDGameName, model.UnknownRedTag),
		WinnerSide: model.SideUnknown,
		Blue:       make(map[string]model.RolePlayer, 5),
		Red:        make(map[string]model.RolePlayer, 5),
	}
	if sum.GameSequenceNumber != nil {
		rec.SeqNumber = *sum.GameSequenceNumber
	}

	if sum.GameVersion != "" {
		parts := strings.Split(sum.GameVersion, ".")
		if len(parts) >= 2 {
			rec.Patch = parts[0] + "." + parts[1]
		} else {
			rec.Patch = sum.GameVersion
		}
	}
	if sum.GameCreation > 0 {
		rec.Date = time.UnixMilli(sum.GameCreation).UTC().Format("2006-01-02 15:04:05")
	}
	if sum.GameDuration > 0 {
		total := int(sum.GameDuration)
		rec.Duration = fmt.Sprintf("%d:%02d", total/60, total%60)
	}

	for _, team := range sum.Teams {
		if team.Win {
			if team.TeamID == model.TeamIDBlue {
				rec.WinnerSide = model.SideBlue
			} else {
				rec.WinnerSide = model.SideRed
			}
		}
		bans := append([]summaryBan(nil), team.Bans...)
		sort.Slice(bans, func(i, j int) bool { return bans[i].PickTurn < bans[j].PickTurn })
		target := &rec.BlueBans
		if team.TeamID != model.TeamIDBlue {
			target = &rec.RedBans
		}
		for i, ban := range bans {
			if i >= 5 {
				break
			}
			if ban.ChampionID != -1 {
				target[i] = strconv.Itoa(ban.ChampionID)
			}
		}
	}

	manifest := make(model.Manifest, 10)
	for idx, p := range sum.Participants {
		role := model.Roles[idx%5]
		slot := model.RolePlayer{
			Champion:      p.Champion,
			PUUID:         p.PUUID,
			ParticipantID: p.ParticipantID,
		}
		teamID := p.TeamID
		if idx < 5 {
			rec.Blue[role] = slot
			if teamID == 0 {
				teamID = model.TeamIDBlue
			}
		} else {
			rec.Red[role] = slot
			if teamID == 0 {
				teamID = model.TeamIDRed
			}
		}
		manifest[p.ParticipantID] = model.Participant{
			ParticipantID: p.ParticipantID,
			PUUID:         p.PUUID,
			TeamID:        teamID,
			Champion:      p.Champion,
			Name:          p.displayName(),
		}
	}

	return rec, manifest, nil
}

// draftAction mirrors one entry of the series end-state draft list.
type draftAction struct {
	ID             json.Number `json:"id"`
	Type           string      `json:"type"`
	SequenceNumber *int        `json:"sequenceNumber"`
	Drafter        struct {
		ID json.Number `json:"id"`
	} `json:"drafter"`
	Draftable struct {
		ID   json.Number `json:"id"`
		Name string      `json:"name"`
	} `json:"draftable"`
}

// ParseDraftActions converts the end-state draft list into ordered draft
// actions for sequence numbers 1 through 20.
func ParseDraftActions(data []byte) ([]model.DraftAction, error) {
	var raw []draftAction
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode draft actions: %w", err)
	}
	bySeq := make(map[int]draftAction, len(raw))
	for _, a := range raw {
		if a.SequenceNumber != nil {
			bySeq[*a.SequenceNumber] = a
		}
	}
	var actions []model.DraftAction
	for seq := 1; seq <= 20; seq++ {
		a, ok := bySeq[seq]
		if !ok {
			continue
		}
		actions = append(actions, model.DraftAction{
			Sequence: seq,
			Type:     strings.ToLower(a.Type),
			TeamID:   a.Drafter.ID.String(),
			Champion: a.Draftable.Name,
			ChampID:  a.Draftable.ID.String(),
			ActionID: a.ID.String(),
		})
	}
	return actions, nil
}
