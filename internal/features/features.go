// Package features turns raw season pulls into the engineered table the
// clustering step consumes: per-game rates, normalized positions, and
// aligned play-frequency vectors.
package features

import (
	"math"
	"sort"
	"strings"

	"github.com/courtvision/nbaroles/internal/model"
)

// Build joins raw totals, roster entries, and play-type frequencies into
// engineered player records with aligned frequency vectors, sorted by
// player ID.
//
// Silent drops, by contract: players with no roster match (team cannot
// be resolved) and players whose ten frequency values are all zero.
// Numeric values missing from a join default to 0.
func Build(totals []model.RawTotals, roster []model.RawRosterEntry, freqs []model.RawPlayFreq) ([]model.PlayerRecord, []model.FreqVector) {
	rosterByID := make(map[int]model.RawRosterEntry, len(roster))
	for _, r := range roster {
		rosterByID[r.PlayerID] = r
	}

	freqIdx := make(map[string]int, model.NumFreqFeatures)
	for i, key := range model.FreqKeys {
		freqIdx[key] = i
	}
	freqByID := make(map[int]model.FreqVector)
	for _, f := range freqs {
		col, ok := freqIdx[f.PlayType]
		if !ok {
			continue
		}
		v := freqByID[f.PlayerID]
		v[col] = f.Frequency
		freqByID[f.PlayerID] = v
	}

	sorted := make([]model.RawTotals, len(totals))
	copy(sorted, totals)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PlayerID < sorted[j].PlayerID })

	var records []model.PlayerRecord
	var vectors []model.FreqVector
	for _, t := range sorted {
		r, ok := rosterByID[t.PlayerID]
		if !ok || r.TeamAbbr == "" {
			continue // team unresolved
		}
		v := freqByID[t.PlayerID]
		if v.IsZero() {
			continue // no play-frequency signal
		}
		records = append(records, engineer(t, r))
		vectors = append(vectors, v)
	}
	return records, vectors
}

// engineer converts one totals row into per-game rates. Most stats round
// to 2 decimals; minutes and three-point percentage to 3.
func engineer(t model.RawTotals, r model.RawRosterEntry) model.PlayerRecord {
	return model.PlayerRecord{
		PlayerID:    t.PlayerID,
		Name:        t.Name,
		TeamID:      r.TeamID,
		TeamAbbr:    r.TeamAbbr,
		RawPosition: r.Position,
		Position:    NormalizePosition(r.Position),
		Age:         t.Age,
		GP:          t.GP,

		Minutes: perGame(t.Minutes, t.GP, 3),
		FGM:     perGame(t.FGM, t.GP, 2),
		FGA:     perGame(t.FGA, t.GP, 2),
		FGPct:   roundTo(t.FGPct, 3),
		FG3M:    perGame(t.FG3M, t.GP, 2),
		FG3A:    perGame(t.FG3A, t.GP, 2),
		FG3Pct:  roundTo(t.FG3Pct, 3),
		FTM:     perGame(t.FTM, t.GP, 2),
		FTA:     perGame(t.FTA, t.GP, 2),
		FTPct:   roundTo(t.FTPct, 3),
		OREB:    perGame(t.OREB, t.GP, 2),
		DREB:    perGame(t.DREB, t.GP, 2),
		REB:     perGame(t.REB, t.GP, 2),
		AST:     perGame(t.AST, t.GP, 2),
		STL:     perGame(t.STL, t.GP, 2),
		BLK:     perGame(t.BLK, t.GP, 2),
		TOV:     perGame(t.TOV, t.GP, 2),
		PF:      perGame(t.PF, t.GP, 2),
		PTS:     perGame(t.PTS, t.GP, 2),
	}
}

// NormalizePosition collapses a hybrid listing to its primary category:
// the first component of labels like "G-F" or "Guard-Forward" wins.
func NormalizePosition(raw string) model.Position {
	primary, _, _ := strings.Cut(strings.TrimSpace(raw), "-")
	switch strings.ToUpper(strings.TrimSpace(primary)) {
	case "G", "GUARD":
		return model.PositionGuard
	case "F", "FORWARD":
		return model.PositionForward
	case "C", "CENTER":
		return model.PositionCenter
	default:
		return model.PositionUnknown
	}
}

// Qualifying filters to players eligible for clustering: games played
// strictly above minGames. Record and vector slices stay aligned.
func Qualifying(records []model.PlayerRecord, vectors []model.FreqVector, minGames int) ([]model.PlayerRecord, []model.FreqVector) {
	var outR []model.PlayerRecord
	var outV []model.FreqVector
	for i, r := range records {
		if r.GP > minGames {
			outR = append(outR, r)
			outV = append(outV, vectors[i])
		}
	}
	return outR, outV
}

// Matrix lays frequency vectors out as the row-major matrix the
// clustering functions consume.
func Matrix(vectors []model.FreqVector) [][]float64 {
	X := make([][]float64, len(vectors))
	for i, v := range vectors {
		row := make([]float64, model.NumFreqFeatures)
		copy(row, v[:])
		X[i] = row
	}
	return X
}

func perGame(total float64, gp int, places int) float64 {
	if gp == 0 {
		return 0
	}
	return roundTo(total/float64(gp), places)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
