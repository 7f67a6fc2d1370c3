package aggregator

import (
	"testing"

	"github.com/riftlab/go-lol-metrics/internal/model"
)

func TestComputeStartGame(t *testing.T) {
	g := testGame("g1", model.SideBlue, true)
	samples := []model.PositionSample{
		{TimestampMS: 30000, ParticipantID: 1, X: 120, Z: 220},
		{TimestampMS: 0, ParticipantID: 6, X: 14000, Z: 14200},
		{TimestampMS: 0, ParticipantID: 1, X: 100, Z: 200},
		// Unknown participant keeps its position but no roster data.
		{TimestampMS: 0, ParticipantID: 99, X: 1, Z: 1},
		// Past the opening horizon.
		{TimestampMS: 200000, ParticipantID: 1, X: 5000, Z: 5000},
	}

	sg := computeStartGame(g, samples, nil)
	if sg.GameID != "g1" || sg.BlueTeam != "T1" || sg.RedTeam != "GEN" || !sg.Win {
		t.Fatalf("start game = %+v", sg)
	}

	if len(sg.Frames) != 2 {
		t.Fatalf("frames = %+v", sg.Frames)
	}
	f0 := sg.Frames[0]
	if f0.TimestampMS != 0 || len(f0.Positions) != 3 {
		t.Fatalf("frame 0 = %+v", f0)
	}
	// Positions sort by participant id.
	if f0.Positions[0].ParticipantID != 1 || f0.Positions[0].Champion != "Gnar" || f0.Positions[0].TeamID != 100 {
		t.Errorf("frame 0 positions = %+v", f0.Positions)
	}
	if f0.Positions[1].Champion != "Renekton" || f0.Positions[1].TeamID != 200 {
		t.Errorf("frame 0 positions = %+v", f0.Positions)
	}
	if f0.Positions[2].Champion != "Unknown" || f0.Positions[2].TeamID != 0 {
		t.Errorf("unknown participant = %+v", f0.Positions[2])
	}

	if sg.Frames[1].TimestampMS != 30000 || sg.Frames[1].Positions[0].X != 120 {
		t.Errorf("frame 1 = %+v", sg.Frames[1])
	}

	// Icons resolve through normalization even without a catalog; the
	// unknown participant contributes none.
	if sg.Icons["Gnar"] != "Gnar" || sg.Icons["Renekton"] != "Renekton" {
		t.Errorf("icons = %v", sg.Icons)
	}
	if _, ok := sg.Icons["Unknown"]; ok {
		t.Error("unknown champion should not get an icon")
	}
}
