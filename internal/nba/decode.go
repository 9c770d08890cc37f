package nba

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/courtvision/nbaroles/internal/model"
)

// response is the stats.nba.com JSON envelope: every endpoint wraps its
// tables in resultSets with parallel headers and rowSet arrays.
type response struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	RowSet  [][]interface{} `json:"rowSet"`
}

// table indexes a resultSet's rows by header name. Cells can be null;
// accessors return zero values for missing or null entries.
type table struct {
	idx  map[string]int
	rows [][]interface{}
}

func firstTable(data []byte) (*table, error) {
	var resp response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if len(resp.ResultSets) == 0 {
		return nil, fmt.Errorf("no resultSets in response")
	}
	rs := resp.ResultSets[0]
	idx := make(map[string]int, len(rs.Headers))
	for i, h := range rs.Headers {
		idx[strings.ToUpper(h)] = i
	}
	return &table{idx: idx, rows: rs.RowSet}, nil
}

func (t *table) cell(row []interface{}, col string) interface{} {
	i, ok := t.idx[col]
	if !ok || i >= len(row) {
		return nil
	}
	return row[i]
}

func (t *table) str(row []interface{}, col string) string {
	if s, ok := t.cell(row, col).(string); ok {
		return s
	}
	return ""
}

// num returns the cell as float64, 0 for null or missing.
func (t *table) num(row []interface{}, col string) float64 {
	if f, ok := t.cell(row, col).(float64); ok {
		return f
	}
	return 0
}

func (t *table) int(row []interface{}, col string) int {
	return int(t.num(row, col))
}

// DecodeTotals parses a leaguedashplayerstats response body.
func DecodeTotals(data []byte) ([]model.RawTotals, error) {
	t, err := firstTable(data)
	if err != nil {
		return nil, err
	}
	out := make([]model.RawTotals, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, model.RawTotals{
			PlayerID: t.int(row, "PLAYER_ID"),
			Name:     t.str(row, "PLAYER_NAME"),
			TeamID:   t.int(row, "TEAM_ID"),
			TeamAbbr: t.str(row, "TEAM_ABBREVIATION"),
			Age:      t.int(row, "AGE"),
			GP:       t.int(row, "GP"),
			Minutes:  t.num(row, "MIN"),
			FGM:      t.num(row, "FGM"),
			FGA:      t.num(row, "FGA"),
			FGPct:    t.num(row, "FG_PCT"),
			FG3M:     t.num(row, "FG3M"),
			FG3A:     t.num(row, "FG3A"),
			FG3Pct:   t.num(row, "FG3_PCT"),
			FTM:      t.num(row, "FTM"),
			FTA:      t.num(row, "FTA"),
			FTPct:    t.num(row, "FT_PCT"),
			OREB:     t.num(row, "OREB"),
			DREB:     t.num(row, "DREB"),
			REB:      t.num(row, "REB"),
			AST:      t.num(row, "AST"),
			STL:      t.num(row, "STL"),
			BLK:      t.num(row, "BLK"),
			TOV:      t.num(row, "TOV"),
			PF:       t.num(row, "PF"),
			PTS:      t.num(row, "PTS"),
		})
	}
	return out, nil
}

// DecodeRoster parses a playerindex response body.
func DecodeRoster(data []byte) ([]model.RawRosterEntry, error) {
	t, err := firstTable(data)
	if err != nil {
		return nil, err
	}
	out := make([]model.RawRosterEntry, 0, len(t.rows))
	for _, row := range t.rows {
		name := t.str(row, "PLAYER_FIRST_NAME")
		if last := t.str(row, "PLAYER_LAST_NAME"); last != "" {
			if name != "" {
				name += " "
			}
			name += last
		}
		out = append(out, model.RawRosterEntry{
			PlayerID: t.int(row, "PERSON_ID"),
			Name:     name,
			TeamID:   t.int(row, "TEAM_ID"),
			TeamAbbr: t.str(row, "TEAM_ABBREVIATION"),
			Position: t.str(row, "POSITION"),
		})
	}
	return out, nil
}

// DecodeSynergy parses a synergyplaytypes response body for one play
// type, keeping each player's possession share (POSS_PCT).
func DecodeSynergy(data []byte, playType string) ([]model.RawPlayFreq, error) {
	t, err := firstTable(data)
	if err != nil {
		return nil, err
	}
	out := make([]model.RawPlayFreq, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, model.RawPlayFreq{
			PlayerID:  t.int(row, "PLAYER_ID"),
			PlayType:  playType,
			Frequency: t.num(row, "POSS_PCT"),
		})
	}
	return out, nil
}
