package parser

import (
	"math"

	"github.com/riftlab/go-lol-metrics/internal/model"
)

// Targeted-snapshot defaults: early-game timestamps of interest and how far
// a stats update may drift from one and still satisfy it.
var DefaultFrameTargets = []int{40, 60, 80}

const DefaultFrameTolerance = 5.0

// ExtractPositionTimeline emits one PositionSample per participant per stats
// update that carries a game time. Participants missing an id, puuid, or a
// complete position are skipped.
func ExtractPositionTimeline(content []byte, gameID string) []model.PositionSample {
	var samples []model.PositionSample

	forEachLine(content, func(rec record) bool {
		if rec.kind() != kindStatsUpdate {
			return true
		}
		ts, ok := rec.gameTimeMS()
		if !ok {
			return true
		}
		body, ok := rec.statsUpdate()
		if !ok {
			return true
		}
		for _, p := range body.Participants {
			if p.ParticipantID == nil || p.PUUID == "" || !p.Position.valid() {
				continue
			}
			samples = append(samples, model.PositionSample{
				GameID:        gameID,
				TimestampMS:   int64(ts),
				ParticipantID: *p.ParticipantID,
				PUUID:         p.PUUID,
				X:             int(*p.Position.X),
				Z:             int(*p.Position.Z),
			})
		}
		return true
	})

	return samples
}

// ExtractPositionFrames captures one full-team position frame per target
// timestamp: the first stats update within tolerance of a target wins it,
// and the scan stops once every target is satisfied.
func ExtractPositionFrames(content []byte, gameID string, targets []int, tolerance float64) []model.PositionFrame {
	if len(targets) == 0 {
		targets = DefaultFrameTargets
	}
	if tolerance <= 0 {
		tolerance = DefaultFrameTolerance
	}

	frames := make(map[int]model.PositionFrame, len(targets))

	forEachLine(content, func(rec record) bool {
		if rec.kind() != kindStatsUpdate {
			return true
		}
		ts, ok := rec.gameTimeMS()
		if !ok {
			return true
		}
		sec := ts / 1000.0
		body, decoded := rec.statsUpdate()

		for _, target := range targets {
			if _, done := frames[target]; done {
				continue
			}
			if math.Abs(sec-float64(target)) > tolerance {
				continue
			}
			if !decoded {
				break
			}
			frame := model.PositionFrame{GameID: gameID, TimestampSec: target}
			for _, p := range body.Participants {
				if p.ParticipantID == nil || !p.Position.valid() {
					continue
				}
				pos := model.FramePosition{
					ParticipantID: *p.ParticipantID,
					Champion:      "Unknown",
					X:             *p.Position.X,
					Z:             *p.Position.Z,
				}
				if p.Champion != "" {
					pos.Champion = p.Champion
				}
				if p.TeamID != nil {
					pos.TeamID = *p.TeamID
				}
				frame.Positions = append(frame.Positions, pos)
			}
			if len(frame.Positions) > 0 {
				frames[target] = frame
			}
		}
		return len(frames) < len(targets)
	})

	out := make([]model.PositionFrame, 0, len(frames))
	for _, target := range targets {
		if f, ok := frames[target]; ok {
			out = append(out, f)
		}
	}
	return out
}
