package features

import (
	"testing"

	"github.com/courtvision/nbaroles/internal/model"
)

// makeTotals builds a minimal totals row for one player.
func makeTotals(id, gp int) model.RawTotals {
	return model.RawTotals{
		PlayerID: id,
		Name:     "Player",
		TeamID:   1610612737,
		TeamAbbr: "ATL",
		Age:      25,
		GP:       gp,
	}
}

// makeRoster builds a matching roster row.
func makeRoster(id int, position string) model.RawRosterEntry {
	return model.RawRosterEntry{
		PlayerID: id,
		Name:     "Player",
		TeamID:   1610612737,
		TeamAbbr: "ATL",
		Position: position,
	}
}

// makeFreq gives a player one nonzero frequency so Build keeps them.
func makeFreq(id int) model.RawPlayFreq {
	return model.RawPlayFreq{PlayerID: id, PlayType: "Spotup", Frequency: 0.25}
}

// TestPerGameRounding: 574 field goals over 82 games is exactly 7.0 per
// game; minutes keep 3 decimals.
func TestPerGameRounding(t *testing.T) {
	tot := makeTotals(1, 82)
	tot.FGM = 574
	tot.Minutes = 2673 // 32.597560... per game
	tot.PTS = 1500     // 18.29268... → 18.29

	records, _ := Build(
		[]model.RawTotals{tot},
		[]model.RawRosterEntry{makeRoster(1, "G")},
		[]model.RawPlayFreq{makeFreq(1)},
	)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.FGM != 7.0 {
		t.Errorf("FGM per game: want 7.0, got %v", r.FGM)
	}
	if r.Minutes != 32.598 {
		t.Errorf("Minutes per game: want 32.598 (3 decimals), got %v", r.Minutes)
	}
	if r.PTS != 18.29 {
		t.Errorf("PTS per game: want 18.29 (2 decimals), got %v", r.PTS)
	}
}

// TestThreePointPctPrecision: 3P% keeps 3 decimals while FG% does too —
// both are pass-through percentages, not per-game divisions.
func TestThreePointPctPrecision(t *testing.T) {
	tot := makeTotals(1, 70)
	tot.FG3Pct = 0.38372
	tot.FGPct = 0.45678

	records, _ := Build(
		[]model.RawTotals{tot},
		[]model.RawRosterEntry{makeRoster(1, "G")},
		[]model.RawPlayFreq{makeFreq(1)},
	)
	if records[0].FG3Pct != 0.384 {
		t.Errorf("FG3Pct: want 0.384, got %v", records[0].FG3Pct)
	}
	if records[0].FGPct != 0.457 {
		t.Errorf("FGPct: want 0.457, got %v", records[0].FGPct)
	}
}

// TestNormalizePosition: hybrid labels collapse to their primary category.
func TestNormalizePosition(t *testing.T) {
	cases := []struct {
		raw  string
		want model.Position
	}{
		{"G", model.PositionGuard},
		{"F", model.PositionForward},
		{"C", model.PositionCenter},
		{"G-F", model.PositionGuard},
		{"F-G", model.PositionForward},
		{"F-C", model.PositionForward},
		{"C-F", model.PositionCenter},
		{"Guard", model.PositionGuard},
		{"Guard-Forward", model.PositionGuard},
		{"Forward-Center", model.PositionForward},
		{"Center-Forward", model.PositionCenter},
		{" guard ", model.PositionGuard},
		{"", model.PositionUnknown},
		{"PG", model.PositionUnknown},
	}
	for _, c := range cases {
		if got := NormalizePosition(c.raw); got != c.want {
			t.Errorf("NormalizePosition(%q): want %v, got %v", c.raw, c.want, got)
		}
	}
}

// TestDropMissingTeam: a player in totals with no roster row is dropped
// silently, not reported.
func TestDropMissingTeam(t *testing.T) {
	records, vectors := Build(
		[]model.RawTotals{makeTotals(1, 50), makeTotals(2, 50)},
		[]model.RawRosterEntry{makeRoster(1, "G")}, // no roster for player 2
		[]model.RawPlayFreq{makeFreq(1), makeFreq(2)},
	)
	if len(records) != 1 || len(vectors) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].PlayerID != 1 {
		t.Errorf("wrong player kept: %d", records[0].PlayerID)
	}
}

// TestDropEmptyTeamAbbr: a roster row with an empty team is as good as
// no roster row.
func TestDropEmptyTeamAbbr(t *testing.T) {
	roster := makeRoster(1, "G")
	roster.TeamAbbr = ""
	records, _ := Build(
		[]model.RawTotals{makeTotals(1, 50)},
		[]model.RawRosterEntry{roster},
		[]model.RawPlayFreq{makeFreq(1)},
	)
	if len(records) != 0 {
		t.Errorf("expected empty-team player to be dropped, got %d records", len(records))
	}
}

// TestDropZeroFrequency: all ten frequencies zero → excluded regardless
// of other stats.
func TestDropZeroFrequency(t *testing.T) {
	tot := makeTotals(1, 82)
	tot.PTS = 2000 // stats don't matter without frequency signal

	records, _ := Build(
		[]model.RawTotals{tot},
		[]model.RawRosterEntry{makeRoster(1, "G")},
		nil, // no frequency rows at all
	)
	if len(records) != 0 {
		t.Errorf("expected all-zero-frequency player to be dropped, got %d records", len(records))
	}
}

// TestMissingFrequenciesDefaultZero: play types without an observation
// stay 0 in the vector; the player is kept if any type is nonzero.
func TestMissingFrequenciesDefaultZero(t *testing.T) {
	records, vectors := Build(
		[]model.RawTotals{makeTotals(1, 50)},
		[]model.RawRosterEntry{makeRoster(1, "C")},
		[]model.RawPlayFreq{
			{PlayerID: 1, PlayType: "Postup", Frequency: 0.31},
			{PlayerID: 1, PlayType: "Cut", Frequency: 0.2},
		},
	)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	v := vectors[0]
	if v[model.FreqPostUp] != 0.31 || v[model.FreqCut] != 0.2 {
		t.Errorf("observed frequencies not stored: %v", v)
	}
	if v[model.FreqIsolation] != 0 || v[model.FreqTransition] != 0 {
		t.Errorf("unobserved frequencies should be 0: %v", v)
	}
	if v.Sum() <= 0 {
		t.Error("retained player must have frequency sum > 0")
	}
}

// TestQualifyingThreshold: GP must be strictly greater than min-games.
func TestQualifyingThreshold(t *testing.T) {
	records, vectors := Build(
		[]model.RawTotals{makeTotals(1, 29), makeTotals(2, 30), makeTotals(3, 82)},
		[]model.RawRosterEntry{makeRoster(1, "G"), makeRoster(2, "F"), makeRoster(3, "C")},
		[]model.RawPlayFreq{makeFreq(1), makeFreq(2), makeFreq(3)},
	)
	if len(records) != 3 {
		t.Fatalf("expected 3 records before filtering, got %d", len(records))
	}

	qr, qv := Qualifying(records, vectors, 29)
	if len(qr) != 2 || len(qv) != 2 {
		t.Fatalf("expected 2 qualifying players, got %d", len(qr))
	}
	for _, r := range qr {
		if r.GP <= 29 {
			t.Errorf("player %d with GP=%d should not qualify", r.PlayerID, r.GP)
		}
	}
}

// TestBuildOrderStable: output is sorted by player ID regardless of
// input order, so downstream fits are deterministic.
func TestBuildOrderStable(t *testing.T) {
	records, _ := Build(
		[]model.RawTotals{makeTotals(30, 50), makeTotals(10, 50), makeTotals(20, 50)},
		[]model.RawRosterEntry{makeRoster(10, "G"), makeRoster(20, "F"), makeRoster(30, "C")},
		[]model.RawPlayFreq{makeFreq(10), makeFreq(20), makeFreq(30)},
	)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i-1].PlayerID >= records[i].PlayerID {
			t.Fatalf("records not sorted by player ID: %d before %d",
				records[i-1].PlayerID, records[i].PlayerID)
		}
	}
}

// TestZeroGamesPlayed: per-game rates for a 0-GP row are 0, not NaN.
func TestZeroGamesPlayed(t *testing.T) {
	tot := makeTotals(1, 0)
	tot.PTS = 10

	records, _ := Build(
		[]model.RawTotals{tot},
		[]model.RawRosterEntry{makeRoster(1, "G")},
		[]model.RawPlayFreq{makeFreq(1)},
	)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].PTS != 0 {
		t.Errorf("PTS with GP=0: want 0, got %v", records[0].PTS)
	}
}
