package parser

import (
	"fmt"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/riftlab/go-lol-metrics/internal/model"
)

func summaryFixture(t *testing.T, mutate func(map[string]interface{})) []byte {
	t.Helper()

	participants := make([]map[string]interface{}, 0, 10)
	for i := 1; i <= 10; i++ {
		team, tag := 100, "T1"
		if i > 5 {
			team, tag = 200, "GEN"
		}
		participants = append(participants, map[string]interface{}{
			"participantId":  i,
			"puuid":          fmt.Sprintf("puuid-%d", i),
			"teamId":         team,
			"championName":   fmt.Sprintf("Champ%d", i),
			"riotIdGameName": fmt.Sprintf("%s Player%d", tag, i),
		})
	}
	// One player known only by summoner name.
	participants[9]["riotIdGameName"] = ""
	participants[9]["summonerName"] = "SubPlayer"

	sum := map[string]interface{}{
		"esportsGameId":      "112233",
		"gameSequenceNumber": 2,
		"gameDuration":       1845,
		"gameCreation":       1726000000000,
		"gameVersion":        "14.18.512.1234",
		"participants":       participants,
		"teams": []map[string]interface{}{
			{
				"teamId": 100,
				"win":    false,
				"bans": []map[string]interface{}{
					{"championId": 266, "pickTurn": 3},
					{"championId": -1, "pickTurn": 1},
					{"championId": 103, "pickTurn": 5},
				},
			},
			{
				"teamId": 200,
				"win":    true,
				"bans": []map[string]interface{}{
					{"championId": 64, "pickTurn": 2},
					{"championId": 517, "pickTurn": 4},
				},
			},
		},
	}
	if mutate != nil {
		mutate(sum)
	}
	data, err := json.Marshal(sum)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return data
}

func TestParseGameSummary(t *testing.T) {
	rec, manifest, err := ParseGameSummary(summaryFixture(t, nil))
	if err != nil {
		t.Fatalf("ParseGameSummary: %v", err)
	}

	if rec.GameID != "112233" || rec.SeqNumber != 2 {
		t.Errorf("identity = %q seq %d", rec.GameID, rec.SeqNumber)
	}
	if rec.BlueTeam != "T1" || rec.RedTeam != "GEN" {
		t.Errorf("teams = %q vs %q", rec.BlueTeam, rec.RedTeam)
	}
	if rec.WinnerSide != model.SideRed {
		t.Errorf("winner = %q", rec.WinnerSide)
	}
	if rec.Patch != "14.18" {
		t.Errorf("patch = %q", rec.Patch)
	}
	if rec.Date != "2024-09-10 20:26:40" {
		t.Errorf("date = %q", rec.Date)
	}
	if rec.Duration != "30:45" {
		t.Errorf("duration = %q", rec.Duration)
	}

	// Bans keep pick-turn order; skipped (-1) turns leave gaps.
	if rec.BlueBans != [5]string{"", "266", "103", "", ""} {
		t.Errorf("blue bans = %v", rec.BlueBans)
	}
	if rec.RedBans != [5]string{"64", "517", "", "", ""} {
		t.Errorf("red bans = %v", rec.RedBans)
	}

	// Roster slots follow draft order within each half.
	if p := rec.Blue[model.RoleMid]; p.Champion != "Champ3" || p.ParticipantID != 3 {
		t.Errorf("blue mid = %+v", p)
	}
	if p := rec.Red[model.RoleSup]; p.Champion != "Champ10" || p.PUUID != "puuid-10" {
		t.Errorf("red sup = %+v", p)
	}

	if len(manifest) != 10 {
		t.Fatalf("manifest size = %d", len(manifest))
	}
	if manifest[8].TeamID != model.TeamIDRed || manifest[8].Champion != "Champ8" {
		t.Errorf("manifest[8] = %+v", manifest[8])
	}
	if manifest[10].Name != "SubPlayer" {
		t.Errorf("manifest[10].Name = %q, want summoner-name fallback", manifest[10].Name)
	}
	if manifest[1].Name != "T1 Player1" {
		t.Errorf("manifest[1].Name = %q", manifest[1].Name)
	}
}

func TestParseGameSummaryErrors(t *testing.T) {
	_, _, err := ParseGameSummary(summaryFixture(t, func(sum map[string]interface{}) {
		sum["esportsGameId"] = "0"
		sum["gameId"] = "0"
	}))
	if err == nil {
		t.Error("missing game id should fail")
	}

	_, _, err = ParseGameSummary(summaryFixture(t, func(sum map[string]interface{}) {
		sum["participants"] = sum["participants"].([]map[string]interface{})[:9]
	}))
	if err == nil {
		t.Error("nine participants should fail")
	}

	if _, _, err := ParseGameSummary([]byte("{broken")); err == nil {
		t.Error("malformed json should fail")
	}
}

func TestParseGameSummaryFallbackGameID(t *testing.T) {
	rec, _, err := ParseGameSummary(summaryFixture(t, func(sum map[string]interface{}) {
		delete(sum, "esportsGameId")
		sum["gameId"] = 778899
	}))
	if err != nil {
		t.Fatalf("ParseGameSummary: %v", err)
	}
	if rec.GameID != "778899" {
		t.Errorf("game id = %q", rec.GameID)
	}
}

func TestParseDraftActions(t *testing.T) {
	data := []byte(`[
		{"id":"a3","type":"PICK","sequenceNumber":7,"drafter":{"id":"100"},"draftable":{"id":"266","name":"Aatrox"}},
		{"id":"a1","type":"BAN","sequenceNumber":1,"drafter":{"id":"200"},"draftable":{"id":"64","name":"Lee Sin"}},
		{"id":"a2","type":"ban","sequenceNumber":2,"drafter":{"id":"100"},"draftable":{"id":"517","name":"Sylas"}},
		{"id":"ax","type":"pick","drafter":{"id":"100"},"draftable":{"id":"1","name":"NoSequence"}}
	]`)

	actions, err := ParseDraftActions(data)
	if err != nil {
		t.Fatalf("ParseDraftActions: %v", err)
	}
	if len(actions) != 3 {
		t.Fatalf("got %d actions, want 3: %+v", len(actions), actions)
	}
	if actions[0].Sequence != 1 || actions[0].Type != "ban" || actions[0].Champion != "Lee Sin" {
		t.Errorf("actions[0] = %+v", actions[0])
	}
	if actions[2].Sequence != 7 || actions[2].Type != "pick" || actions[2].TeamID != "100" {
		t.Errorf("actions[2] = %+v", actions[2])
	}

	if _, err := ParseDraftActions([]byte("nope")); err == nil {
		t.Error("malformed draft json should fail")
	}
}

func TestTeamTag(t *testing.T) {
	cases := []struct {
		riotID string
		want   string
	}{
		{"T1 Zeus", "T1"},
		{"GSMCX Player", "GSMCX"},
		{"G2 Caps", "G2"},
		// Role words are not tags.
		{"MID Chovy", "fallback"},
		{"SUP Keria", "fallback"},
		// Must be 2-5 uppercase alphanumeric characters.
		{"A Faker", "fallback"},
		{"TOOLONG Player", "fallback"},
		{"gen Canyon", "fallback"},
		{"G2. Caps", "fallback"},
		// Digits alone carry no team signal.
		{"12 Player", "fallback"},
		{"NoSpace", "fallback"},
		{"", "fallback"},
	}
	for _, tc := range cases {
		if got := teamTag(tc.riotID, "fallback"); got != tc.want {
			t.Errorf("teamTag(%q) = %q, want %q", tc.riotID, got, tc.want)
		}
	}
}
