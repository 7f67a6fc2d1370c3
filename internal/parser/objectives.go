package parser

import (
	"github.com/riftlab/go-lol-metrics/internal/model"
)

// ExtractObjectiveEvents pulls epic-monster kills and turret destructions
// from one game's telemetry. The killer's team comes from the event when
// present, else from the participant manifest; a turret's destroying team is
// the inverse of its owning team.
func ExtractObjectiveEvents(content []byte, gameID string, manifest model.Manifest) []model.ObjectiveEvent {
	var events []model.ObjectiveEvent

	forEachLine(content, func(rec record) bool {
		switch rec.kind() {
		case kindEpicMonsterKill:
			ts, ok := rec.gameTimeMS()
			if !ok {
				return true
			}
			body, ok := rec.monsterKill()
			if !ok || body.MonsterType == "" {
				return true
			}
			var objType, subtype string
			if body.MonsterType == "dragon" {
				objType, subtype = dragonSubtype(body.DragonType)
			} else if pair, ok := objectiveTypeMap[body.MonsterType]; ok {
				objType, subtype = pair[0], pair[1]
			} else {
				return true
			}
			killer, _ := body.killerID()
			team := 0
			if body.KillerTeamID != nil {
				team = *body.KillerTeamID
			} else {
				team = manifest.TeamOf(killer)
			}
			events = append(events, model.ObjectiveEvent{
				GameID:      gameID,
				TimestampMS: int64(ts),
				Type:        objType,
				Subtype:     subtype,
				TeamID:      team,
				KillerID:    killer,
			})

		case kindBuildingDestroyed:
			ts, ok := rec.gameTimeMS()
			if !ok {
				return true
			}
			body, ok := rec.buildingDestroyed()
			if !ok || body.BuildingType != "turret" {
				return true
			}
			lane, ok := laneMap[body.Lane]
			if !ok {
				lane = "UNKNOWN_LANE"
			}
			tier, ok := turretTierMap[body.TurretTier]
			if !ok {
				tier = "UNKNOWN"
			}
			killer := 0
			if body.LastHitter != nil {
				killer = *body.LastHitter
			}
			team := 0
			if body.TeamID != nil {
				// The event reports the owner; the destroyer is the other team.
				switch *body.TeamID {
				case model.TeamIDBlue:
					team = model.TeamIDRed
				case model.TeamIDRed:
					team = model.TeamIDBlue
				}
			} else {
				team = manifest.TeamOf(killer)
			}
			events = append(events, model.ObjectiveEvent{
				GameID:      gameID,
				TimestampMS: int64(ts),
				Type:        model.ObjTower,
				Subtype:     tier,
				TeamID:      team,
				KillerID:    killer,
				Lane:        lane,
			})
		}
		return true
	})

	return events
}
