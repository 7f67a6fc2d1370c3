package parser

import (
	"github.com/riftlab/go-lol-metrics/internal/model"
)

// ExtractAllWards returns every valid ward placement in stream order. A
// placement is valid when the placer resolves through the manifest and the
// raw ward type is on the whitelist.
func ExtractAllWards(content []byte, gameID string, manifest model.Manifest) []model.WardEvent {
	var wards []model.WardEvent

	forEachLine(content, func(rec record) bool {
		if rec.kind() != kindWardPlaced {
			return true
		}
		ts, ok := rec.gameTimeMS()
		if !ok {
			return true
		}
		body, ok := rec.wardPlaced()
		if !ok {
			return true
		}
		placer, ok := body.placerID()
		if !ok || !body.Position.valid() {
			return true
		}
		display, ok := wardTypeMap[body.WardType]
		if !ok {
			return true
		}
		p, ok := manifest[placer]
		if !ok {
			return true
		}
		champion := p.Champion
		if champion == "" {
			champion = "UnknownChamp"
		}
		name := p.Name
		if name == "" {
			name = "UnknownPlayer"
		}
		wards = append(wards, model.WardEvent{
			GameID:        gameID,
			PUUID:         p.PUUID,
			ParticipantID: placer,
			PlayerName:    name,
			Champion:      champion,
			WardType:      display,
			TimestampSec:  ts / 1000.0,
			X:             int(*body.Position.X),
			Z:             int(*body.Position.Z),
		})
		return true
	})

	return wards
}

// ExtractFirstWards keeps only the earliest valid ward per player.
func ExtractFirstWards(content []byte, gameID string, manifest model.Manifest) []model.WardEvent {
	all := ExtractAllWards(content, gameID, manifest)
	seen := make(map[string]bool, 10)
	first := make([]model.WardEvent, 0, 10)
	for _, w := range all {
		if seen[w.PUUID] {
			continue
		}
		seen[w.PUUID] = true
		first = append(first, w)
	}
	return first
}
