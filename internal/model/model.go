package model

// Side is the map side a team plays from.
type Side string

const (
	SideBlue    Side = "Blue"
	SideRed     Side = "Red"
	SideUnknown Side = "Unknown"
)

// Riot team ids as they appear in telemetry.
const (
	TeamIDBlue = 100
	TeamIDRed  = 200
)

// Placeholder tags used when a team name cannot be resolved from the roster.
const (
	UnknownBlueTag = "UnknownBlue"
	UnknownRedTag  = "UnknownRed"
)

// Role abbreviations in draft order.
const (
	RoleTop = "TOP"
	RoleJgl = "JGL"
	RoleMid = "MID"
	RoleBot = "BOT"
	RoleSup = "SUP"
)

// Roles lists the five positions in roster order.
var Roles = []string{RoleTop, RoleJgl, RoleMid, RoleBot, RoleSup}

// RolePlayer is one roster slot of a stored game.
type RolePlayer struct {
	Champion      string
	PUUID         string
	ParticipantID int
}

// DraftAction is one of the twenty pick/ban steps of a completed draft.
type DraftAction struct {
	Sequence int
	Type     string // "pick" or "ban"
	TeamID   string
	Champion string
	ChampID  string
	ActionID string
}

// GameRecord is the per-game metadata row. The analytic views treat it as a
// read-only join-key source; it is written once per game and replaced
// wholesale on refetch.
type GameRecord struct {
	GameID     string
	Tournament string
	Stage      string
	Date       string
	Patch      string
	BlueTeam   string
	RedTeam    string
	Duration   string
	WinnerSide Side
	SeriesID   string
	SeqNumber  int

	BlueBans [5]string // champion ids, empty when unknown
	RedBans  [5]string

	Blue map[string]RolePlayer // keyed by role abbreviation
	Red  map[string]RolePlayer

	Draft []DraftAction
}

// Player returns the roster slot for a side and role, if present.
func (g *GameRecord) Player(side Side, role string) (RolePlayer, bool) {
	var m map[string]RolePlayer
	switch side {
	case SideBlue:
		m = g.Blue
	case SideRed:
		m = g.Red
	}
	if m == nil {
		return RolePlayer{}, false
	}
	p, ok := m[role]
	return p, ok
}

// Won reports whether the team playing the given side won the game.
func (g *GameRecord) Won(side Side) bool {
	return g.WinnerSide == side
}

// Participant is one entry of a game's participant manifest, used to resolve
// ids during telemetry extraction.
type Participant struct {
	ParticipantID int
	PUUID         string
	TeamID        int
	Champion      string
	Name          string
}

// Manifest indexes participants by id.
type Manifest map[int]Participant

// TeamOf resolves a participant id to a team id, 0 when unknown.
func (m Manifest) TeamOf(id int) int {
	if p, ok := m[id]; ok {
		return p.TeamID
	}
	return 0
}

// Objective type and subtype vocabulary.
const (
	ObjDragon   = "DRAGON"
	ObjBaron    = "BARON"
	ObjHerald   = "HERALD"
	ObjVoidgrub = "VOIDGRUB"
	ObjAtakhan  = "ATAKHAN"
	ObjTower    = "TOWER"
)

// ObjectiveEvent is one derived monster-kill or building-destruction row.
type ObjectiveEvent struct {
	GameID      string
	TimestampMS int64
	Type        string
	Subtype     string
	TeamID      int
	KillerID    int
	Lane        string // towers only
}

// PositionSample is one player position from the per-tick timeline.
type PositionSample struct {
	GameID        string
	TimestampMS   int64
	ParticipantID int
	PUUID         string
	X, Z          int
}

// WardEvent is one validated ward placement.
type WardEvent struct {
	GameID        string
	PUUID         string
	ParticipantID int
	PlayerName    string
	Champion      string
	WardType      string
	TimestampSec  float64
	X, Z          int
}

// PathEntry is one step of a reconstructed jungle path.
type PathEntry struct {
	Action string  `json:"action"`
	Time   float64 `json:"time"`
}

// FramePosition is one player's position inside a targeted snapshot frame.
type FramePosition struct {
	ParticipantID int     `json:"participantID"`
	Champion      string  `json:"championName"`
	TeamID        int     `json:"teamId"`
	X             float64 `json:"x"`
	Z             float64 `json:"z"`
}

// PositionFrame is the set of player positions captured at one targeted
// timestamp (start-of-game snapshots).
type PositionFrame struct {
	GameID       string
	TimestampSec int
	Positions    []FramePosition
}
