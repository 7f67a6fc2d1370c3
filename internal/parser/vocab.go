package parser

import "strings"

// wardTypeMap maps every raw ward-type spelling the feed has used to its
// display name. The keys double as the validity whitelist: a raw type not in
// this map drops the event.
var wardTypeMap = map[string]string{
	"YellowTrinket":       "Stealth Ward",
	"yellowTrinket":       "Stealth Ward",
	"SightWard":           "Stealth Ward",
	"SIGHT_WARD":          "Stealth Ward",
	"YELLOW_TRINKET_WARD": "Stealth Ward",
	"sight":               "Stealth Ward",
	"ControlWard":         "Control Ward",
	"CONTROL_WARD":        "Control Ward",
	"JammerDevice":        "Control Ward",
	"control":             "Control Ward",
	"BlueTrinket":         "Farsight Ward",
	"BLUE_TRINKET":        "Farsight Ward",
	"blueTrinket":         "Farsight Ward",
	"Undefined":           "Unknown Ward",
}

// monsterNameMap maps raw monster-type strings to display names for jungle
// path labels.
var monsterNameMap = map[string]string{
	"redCamp":             "Red Buff",
	"blueCamp":            "Blue Buff",
	"krug":                "Krugs",
	"gromp":               "Gromp",
	"wolf":                "Wolves",
	"raptor":              "Raptors",
	"ScuttleCrab":         "Scuttle",
	"SRU_Crab":            "Scuttle",
	"Sru_Crab":            "Scuttle",
	"SRU_Dragon_Water":    "Ocean Drake",
	"SRU_Dragon_Fire":     "Infernal Drake",
	"SRU_Dragon_Earth":    "Mountain Drake",
	"SRU_Dragon_Air":      "Cloud Drake",
	"SRU_Dragon_Hextech":  "Hextech Drake",
	"SRU_Dragon_Chemtech": "Chemtech Drake",
	"SRU_Dragon_Elder":    "Elder Dragon",
	"SRU_RiftHerald":      "Rift Herald",
	"SRU_Baron":           "Baron Nashor",
	"SRU_KrugMini":        "Mini Krug",
	"SRU_KrugMiniMini":    "Tiny Krug",
	"VoidGrub":            "VoidGrub",
}

// objectiveTypeMap resolves non-dragon monster types to an
// (objective type, subtype) pair. Dragons are handled separately because
// their subtype comes from a second field.
var objectiveTypeMap = map[string][2]string{
	"baron":             {"BARON", "BARON"},
	"riftHerald":        {"HERALD", "HERALD"},
	"ThornboundAtakhan": {"ATAKHAN", "ATAKHAN"},
	"VoidGrub":          {"VOIDGRUB", "VOIDGRUB"},
}

var laneMap = map[string]string{
	"top": "TOP_LANE",
	"mid": "MID_LANE",
	"bot": "BOT_LANE",
}

var turretTierMap = map[string]string{
	"outer":     "OUTER",
	"inner":     "INNER",
	"inhibitor": "INHIBITOR",
	"nexus":     "NEXUS",
}

// dragonSubtype normalizes a raw dragon-type string. The feed reports the
// mountain drake as EARTH and the spawn-altering atakhan as a dragon type in
// some generations.
func dragonSubtype(raw string) (objType, subtype string) {
	up := strings.ToUpper(raw)
	switch up {
	case "THORNBOUNDATAKHAN":
		return "ATAKHAN", "ATAKHAN"
	case "EARTH":
		return "DRAGON", "MOUNTAIN"
	default:
		return "DRAGON", up
	}
}
