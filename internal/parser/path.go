package parser

import (
	"bytes"
	"strings"

	"github.com/riftlab/go-lol-metrics/internal/geometry"
	"github.com/riftlab/go-lol-metrics/internal/model"
)

const (
	// gankPresenceThreshold is the minimum dwell in a lane zone, in seconds,
	// before vacating it counts as a gank or lane save.
	gankPresenceThreshold = 2.0
	// campKillDedupWindow absorbs re-reported kill events.
	campKillDedupWindow = 0.5
	// recallDedupWindow absorbs re-reported recall channels.
	recallDedupWindow = 1.0
)

// PathMachine reconstructs one player's opening jungle sequence from a
// telemetry stream. Feed it records via Observe; it emits camp clears,
// recalls, and gank/save transitions into one ordered path, collapsing
// adjacent duplicates, and halts at the first recall after a camp clear.
type PathMachine struct {
	classifier    *geometry.Classifier
	participantID int
	side          model.Side

	path             []model.PathEntry
	lastAction       string
	lastZone         string
	zoneEnteredAt    float64
	lastKillAt       float64
	lastRecallAt     float64
	firstCampCleared bool
	halted           bool
}

// NewPathMachine returns a machine tracking the given participant. side is
// the half of the map the player's team defends, used to annotate kills in
// enemy territory.
func NewPathMachine(classifier *geometry.Classifier, participantID int, side model.Side) *PathMachine {
	return &PathMachine{
		classifier:    classifier,
		participantID: participantID,
		side:          side,
		lastZone:      "Unknown",
		lastKillAt:    -1,
		lastRecallAt:  -1,
	}
}

// Halted reports whether the machine has reached its terminal state.
func (m *PathMachine) Halted() bool { return m.halted }

// Path returns the entries emitted so far.
func (m *PathMachine) Path() []model.PathEntry { return m.path }

// Observe advances the machine by one telemetry record. Records for other
// players and unusable shapes are ignored.
func (m *PathMachine) Observe(rec record) {
	if m.halted {
		return
	}
	ts, ok := rec.gameTimeMS()
	if !ok {
		return
	}
	sec := ts / 1000.0

	switch rec.kind() {
	case kindStatsUpdate:
		body, ok := rec.statsUpdate()
		if !ok {
			return
		}
		for _, p := range body.Participants {
			if p.ParticipantID == nil || *p.ParticipantID != m.participantID {
				continue
			}
			if p.Position.valid() {
				m.observePosition(*p.Position.X, *p.Position.Z, sec)
			}
			break
		}

	case kindEpicMonsterKill:
		body, ok := rec.monsterKill()
		if !ok {
			return
		}
		killer, ok := body.killerID()
		if !ok || killer != m.participantID {
			return
		}
		if body.MonsterType == "" || !body.Position.valid() {
			return
		}
		if sec <= m.lastKillAt+campKillDedupWindow {
			return
		}
		m.lastKillAt = sec
		m.firstCampCleared = true
		label := m.monsterLabel(body.MonsterType, *body.Position.X, *body.Position.Z)
		m.emit(label, sec)

	case kindChannelingStarted:
		body, ok := rec.channeling()
		if !ok || body.ChannelingType != "recall" {
			return
		}
		if body.ParticipantID == nil || *body.ParticipantID != m.participantID {
			return
		}
		if sec <= m.lastRecallAt+recallDedupWindow {
			return
		}
		m.lastRecallAt = sec
		m.emit("Recall", sec)
		if m.firstCampCleared {
			m.halted = true
		}
	}
}

func (m *PathMachine) observePosition(x, z, sec float64) {
	zone := m.classifier.Classify(x, z)
	if zone == m.lastZone {
		return
	}
	if m.classifier.IsLaneZone(m.lastZone) && sec-m.zoneEnteredAt >= gankPresenceThreshold {
		lane := "Unknown"
		switch {
		case strings.Contains(m.lastZone, "Top"):
			lane = "Top"
		case strings.Contains(m.lastZone, "Mid"):
			lane = "Mid"
		case strings.Contains(m.lastZone, "Bot"):
			lane = "Bot"
		}
		m.emit("Gank/Save "+lane, sec)
	}
	m.lastZone = zone
	m.zoneEnteredAt = sec
}

// emit appends an action unless it repeats the previous one.
func (m *PathMachine) emit(action string, sec float64) {
	if len(m.path) > 0 && action == m.lastAction {
		return
	}
	m.path = append(m.path, model.PathEntry{Action: action, Time: sec})
	m.lastAction = action
}

var epicLabels = []string{"Drake", "Herald", "Baron", "VoidGrub"}

// monsterLabel resolves a kill into a path label. Epic monsters and the
// scuttle crab keep their name; regular camps taken on the opposing half
// are annotated "(Enemy)".
func (m *PathMachine) monsterLabel(monsterType string, x, z float64) string {
	name, ok := monsterNameMap[monsterType]
	if !ok {
		name = monsterType
	}
	if name == "Scuttle" {
		return name
	}
	for _, epic := range epicLabels {
		if strings.Contains(name, epic) {
			return name
		}
	}
	zone := m.classifier.Classify(x, z)
	switch m.side {
	case model.SideBlue:
		if strings.HasPrefix(zone, "Red Side") || strings.Contains(zone, "Red Jungle") {
			return name + " (Enemy)"
		}
	case model.SideRed:
		if strings.HasPrefix(zone, "Blue Side") || strings.Contains(zone, "Blue Jungle") {
			return name + " (Enemy)"
		}
	}
	return name
}

// FindParticipantID locates the participant id a puuid maps to, using a
// cheap substring pre-check before decoding candidate lines. Returns 0,
// false when the player never appears in a stats update.
func FindParticipantID(content []byte, puuid string) (int, bool) {
	schemaNeedle := []byte(`"rfc461Schema":"stats_update"`)
	puuidNeedle := []byte(`"puuid":"` + puuid + `"`)

	found := 0
	ok := false
	forEachLineRaw(content, func(line []byte) bool {
		if !bytes.Contains(line, schemaNeedle) || !bytes.Contains(line, puuidNeedle) {
			return true
		}
		rec, decoded := decodeLine(line)
		if !decoded {
			return true
		}
		body, decoded := rec.statsUpdate()
		if !decoded {
			return true
		}
		for _, p := range body.Participants {
			if p.PUUID == puuid && p.ParticipantID != nil {
				found, ok = *p.ParticipantID, true
				return false
			}
		}
		return true
	})
	return found, ok
}

func forEachLineRaw(content []byte, fn func([]byte) bool) {
	for len(content) > 0 {
		var line []byte
		if i := bytes.IndexByte(content, '\n'); i >= 0 {
			line, content = content[:i], content[i+1:]
		} else {
			line, content = content, nil
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if !fn(line) {
			return
		}
	}
}

// ReconstructPath runs the state machine over one game's telemetry for the
// player identified by puuid. Returns nil when the player cannot be located
// in the stream.
func ReconstructPath(content []byte, classifier *geometry.Classifier, puuid string, side model.Side) []model.PathEntry {
	pid, ok := FindParticipantID(content, puuid)
	if !ok {
		return nil
	}
	m := NewPathMachine(classifier, pid, side)
	forEachLine(content, func(rec record) bool {
		m.Observe(rec)
		return !m.Halted()
	})
	return m.Path()
}
