// Package parser extracts typed events from raw newline-delimited game
// telemetry: objective takedowns, position timelines, ward placements, and
// the reconstructed jungle path for a designated player.
package parser

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// recordKind discriminates the snapshot shapes the feed emits. Anything the
// pipeline does not consume decodes to kindSkip.
type recordKind int

const (
	kindSkip recordKind = iota
	kindStatsUpdate
	kindEpicMonsterKill
	kindBuildingDestroyed
	kindWardPlaced
	kindChannelingStarted
)

// envelope carries the discriminator and timing fields shared by every line.
// The feed has shipped two naming generations, so both spellings of the
// event-type and game-time fields are accepted.
type envelope struct {
	Schema    string   `json:"rfc461Schema"`
	EventType string   `json:"eventType"`
	AltType   string   `json:"type"`
	GameTime  *float64 `json:"gameTime"`
	Timestamp *float64 `json:"timestamp"`
}

// record is one decoded telemetry line: the envelope plus the raw bytes for
// a second, kind-specific decode.
type record struct {
	envelope
	raw []byte
}

// decodeLine parses one line into a record. Malformed or blank lines return
// ok=false and are skipped by every extractor.
func decodeLine(line []byte) (record, bool) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return record{}, false
	}
	var env envelope
	if err := json.Unmarshal(line, &env); err != nil {
		return record{}, false
	}
	return record{envelope: env, raw: line}, true
}

func (r *record) eventType() string {
	if r.EventType != "" {
		return r.EventType
	}
	return r.AltType
}

// gameTimeMS returns the line's game time in milliseconds and whether one
// was present.
func (r *record) gameTimeMS() (float64, bool) {
	if r.GameTime != nil {
		return *r.GameTime, true
	}
	if r.Timestamp != nil {
		return *r.Timestamp, true
	}
	return 0, false
}

func (r *record) kind() recordKind {
	switch r.Schema {
	case "stats_update":
		return kindStatsUpdate
	case "epic_monster_kill":
		return kindEpicMonsterKill
	case "building_destroyed":
		return kindBuildingDestroyed
	case "ward_placed":
		return kindWardPlaced
	case "channeling_started":
		return kindChannelingStarted
	case "event":
		switch r.eventType() {
		case "WARD_PLACED":
			return kindWardPlaced
		case "ELITE_MONSTER_KILL":
			return kindEpicMonsterKill
		}
	}
	if r.eventType() == "ELITE_MONSTER_KILL" {
		return kindEpicMonsterKill
	}
	return kindSkip
}

// position is an x/z pair with presence tracking; lines missing either
// coordinate are unusable.
type position struct {
	X *float64 `json:"x"`
	Z *float64 `json:"z"`
}

func (p *position) valid() bool {
	return p != nil && p.X != nil && p.Z != nil
}

type participantState struct {
	ParticipantID *int      `json:"participantID"`
	PUUID         string    `json:"puuid"`
	Champion      string    `json:"championName"`
	TeamID        *int      `json:"teamID"`
	Position      *position `json:"position"`
}

type statsUpdateBody struct {
	Participants []participantState `json:"participants"`
}

func (r *record) statsUpdate() (statsUpdateBody, bool) {
	var body statsUpdateBody
	if err := json.Unmarshal(r.raw, &body); err != nil {
		return statsUpdateBody{}, false
	}
	return body, true
}

type monsterKillBody struct {
	MonsterType  string    `json:"monsterType"`
	DragonType   string    `json:"dragonType"`
	Killer       *int      `json:"killer"`
	KillerID     *int      `json:"killerId"`
	KillerTeamID *int      `json:"killerTeamID"`
	Position     *position `json:"position"`
}

func (b *monsterKillBody) killerID() (int, bool) {
	if b.Killer != nil {
		return *b.Killer, true
	}
	if b.KillerID != nil {
		return *b.KillerID, true
	}
	return 0, false
}

func (r *record) monsterKill() (monsterKillBody, bool) {
	var body monsterKillBody
	if err := json.Unmarshal(r.raw, &body); err != nil {
		return monsterKillBody{}, false
	}
	return body, true
}

type buildingDestroyedBody struct {
	BuildingType string `json:"buildingType"`
	Lane         string `json:"lane"`
	TurretTier   string `json:"turretTier"`
	TeamID       *int   `json:"teamID"`
	LastHitter   *int   `json:"lastHitter"`
}

func (r *record) buildingDestroyed() (buildingDestroyedBody, bool) {
	var body buildingDestroyedBody
	if err := json.Unmarshal(r.raw, &body); err != nil {
		return buildingDestroyedBody{}, false
	}
	return body, true
}

type wardPlacedBody struct {
	Placer         *int      `json:"placer"`
	ParticipantID  *int      `json:"participantID"`
	ParticipantID2 *int      `json:"participantId"`
	WardType       string    `json:"wardType"`
	Position       *position `json:"position"`
}

func (b *wardPlacedBody) placerID() (int, bool) {
	switch {
	case b.Placer != nil:
		return *b.Placer, true
	case b.ParticipantID != nil:
		return *b.ParticipantID, true
	case b.ParticipantID2 != nil:
		return *b.ParticipantID2, true
	}
	return 0, false
}

func (r *record) wardPlaced() (wardPlacedBody, bool) {
	var body wardPlacedBody
	if err := json.Unmarshal(r.raw, &body); err != nil {
		return wardPlacedBody{}, false
	}
	return body, true
}

type channelingBody struct {
	ChannelingType string `json:"channelingType"`
	ParticipantID  *int   `json:"participantID"`
}

func (r *record) channeling() (channelingBody, bool) {
	var body channelingBody
	if err := json.Unmarshal(r.raw, &body); err != nil {
		return channelingBody{}, false
	}
	return body, true
}

// forEachLine runs fn over every decodable line of a telemetry blob,
// stopping early when fn returns false.
func forEachLine(content []byte, fn func(record) bool) {
	for len(content) > 0 {
		var line []byte
		if i := bytes.IndexByte(content, '\n'); i >= 0 {
			line, content = content[:i], content[i+1:]
		} else {
			line, content = content, nil
		}
		rec, ok := decodeLine(line)
		if !ok {
			continue
		}
		if !fn(rec) {
			return
		}
	}
}
