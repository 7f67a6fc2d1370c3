package geometry

import "strings"

// Simplified tactical labels produced by Simplify. The empty string means
// the zone carries no swap-analysis meaning (bases, alcoves, inhib
// entrances) and must be excluded downstream.
const (
	SimplifiedTop      = "TOP"
	SimplifiedBot      = "BOT"
	SimplifiedMid      = "MID"
	SimplifiedTopRiver = "TOP River"
	SimplifiedBotRiver = "BOT River"
	SimplifiedTopJNG   = "TOP JNG"
	SimplifiedBotJNG   = "BOT JNG"
)

var (
	blueTopCamps = []string{"Gromp", "Blue Buff", "Wolves"}
	blueBotCamps = []string{"Krugs", "Red Buff", "Raptors"}
	redTopCamps  = []string{"Krugs", "Red Buff", "Raptors"}
	redBotCamps  = []string{"Gromp", "Blue Buff", "Wolves"}
)

func containsAny(name string, subs []string) bool {
	for _, s := range subs {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}

// Simplify maps a detailed zone name to a coarse tactical label. The map is
// point-symmetric, so the jungle camp sets swap meaning between halves; the
// z coordinate breaks ties for zones without a side qualifier.
func Simplify(x, z float64, zoneName string) string {
	switch {
	case strings.Contains(zoneName, "Top Lane"):
		return SimplifiedTop
	case strings.Contains(zoneName, "Bot Lane"):
		return SimplifiedBot
	case strings.Contains(zoneName, "Mid Lane"):
		return SimplifiedMid
	case strings.Contains(zoneName, "Baron Pit"), strings.Contains(zoneName, "Top River"):
		return SimplifiedTopRiver
	case strings.Contains(zoneName, "Dragon Pit"), strings.Contains(zoneName, "Bot River"):
		return SimplifiedBotRiver
	case strings.Contains(zoneName, "River"):
		if z > 7400 {
			return SimplifiedTopRiver
		}
		return SimplifiedBotRiver
	case strings.Contains(zoneName, "Blue Side") && containsAny(zoneName, blueTopCamps):
		return SimplifiedTopJNG
	case strings.Contains(zoneName, "Blue Side") && containsAny(zoneName, blueBotCamps):
		return SimplifiedBotJNG
	case strings.Contains(zoneName, "Red Side") && containsAny(zoneName, redTopCamps):
		return SimplifiedTopJNG
	case strings.Contains(zoneName, "Red Side") && containsAny(zoneName, redBotCamps):
		return SimplifiedBotJNG
	case strings.Contains(zoneName, "Jungle"):
		if z > 7400 {
			return SimplifiedTopJNG
		}
		return SimplifiedBotJNG
	}
	return ""
}
