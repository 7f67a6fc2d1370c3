package parser

import (
	"strings"
	"testing"

	"github.com/riftlab/go-lol-metrics/internal/model"
)

func wardManifest() model.Manifest {
	return model.Manifest{
		1: {ParticipantID: 1, PUUID: "bp1", TeamID: 100, Champion: "Gnar", Name: "T1 Zeus"},
		6: {ParticipantID: 6, PUUID: "rp6", TeamID: 200, Champion: "Renekton"},
	}
}

func TestExtractAllWards(t *testing.T) {
	content := []byte(strings.Join([]string{
		`{"rfc461Schema":"ward_placed","gameTime":65000,"placer":1,"wardType":"YellowTrinket","position":{"x":4000,"z":9000}}`,
		// Alternate placer field and lowercase raw type.
		`{"rfc461Schema":"ward_placed","gameTime":90000,"participantID":6,"wardType":"control","position":{"x":9000,"z":5000}}`,
		// Alternate envelope generation.
		`{"rfc461Schema":"event","eventType":"WARD_PLACED","timestamp":120000,"participantId":1,"wardType":"Undefined","position":{"x":2000,"z":2000}}`,
		// Off-whitelist type, unknown placer, missing position: all dropped.
		`{"rfc461Schema":"ward_placed","gameTime":130000,"placer":1,"wardType":"BrandNewWard","position":{"x":1,"z":1}}`,
		`{"rfc461Schema":"ward_placed","gameTime":140000,"placer":9,"wardType":"ControlWard","position":{"x":1,"z":1}}`,
		`{"rfc461Schema":"ward_placed","gameTime":150000,"placer":1,"wardType":"ControlWard","position":{"x":1}}`,
	}, "\n"))

	wards := ExtractAllWards(content, "g1", wardManifest())
	if len(wards) != 3 {
		t.Fatalf("got %d wards, want 3: %+v", len(wards), wards)
	}

	first := wards[0]
	if first.WardType != "Stealth Ward" || first.PlayerName != "T1 Zeus" || first.Champion != "Gnar" {
		t.Errorf("first ward = %+v", first)
	}
	if first.TimestampSec != 65 || first.X != 4000 || first.Z != 9000 {
		t.Errorf("first ward position/time = %+v", first)
	}
	if wards[1].WardType != "Control Ward" || wards[1].PUUID != "rp6" {
		t.Errorf("second ward = %+v", wards[1])
	}
	if wards[2].WardType != "Unknown Ward" {
		t.Errorf("undefined type mapped to %q", wards[2].WardType)
	}
}

func TestExtractAllWardsNamePlaceholders(t *testing.T) {
	content := []byte(`{"rfc461Schema":"ward_placed","gameTime":60000,"placer":6,"wardType":"ControlWard","position":{"x":100,"z":100}}`)

	wards := ExtractAllWards(content, "g1", wardManifest())
	if len(wards) != 1 {
		t.Fatalf("got %d wards, want 1", len(wards))
	}
	if wards[0].PlayerName != "UnknownPlayer" {
		t.Errorf("missing name mapped to %q", wards[0].PlayerName)
	}
}

func TestExtractFirstWards(t *testing.T) {
	content := []byte(strings.Join([]string{
		`{"rfc461Schema":"ward_placed","gameTime":65000,"placer":1,"wardType":"YellowTrinket","position":{"x":4000,"z":9000}}`,
		`{"rfc461Schema":"ward_placed","gameTime":80000,"placer":1,"wardType":"ControlWard","position":{"x":4100,"z":9100}}`,
		`{"rfc461Schema":"ward_placed","gameTime":95000,"placer":6,"wardType":"ControlWard","position":{"x":9000,"z":5000}}`,
	}, "\n"))

	first := ExtractFirstWards(content, "g1", wardManifest())
	if len(first) != 2 {
		t.Fatalf("got %d first wards, want 2: %+v", len(first), first)
	}
	if first[0].PUUID != "bp1" || first[0].TimestampSec != 65 {
		t.Errorf("first[0] = %+v, want the earliest bp1 ward", first[0])
	}
	if first[1].PUUID != "rp6" {
		t.Errorf("first[1] = %+v", first[1])
	}
}
