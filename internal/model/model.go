package model

// Position is a player's primary position category after hybrid labels
// like "Guard-Forward" are collapsed to their first component.
type Position int

const (
	PositionUnknown Position = 0
	PositionGuard   Position = 1
	PositionForward Position = 2
	PositionCenter  Position = 3
)

func (p Position) String() string {
	switch p {
	case PositionGuard:
		return "G"
	case PositionForward:
		return "F"
	case PositionCenter:
		return "C"
	default:
		return "?"
	}
}

// Play-frequency feature indices. The order is fixed: it defines the
// column layout of every frequency matrix in the pipeline.
const (
	FreqTransition = iota
	FreqIsolation
	FreqPRBallHandler
	FreqPRRollMan
	FreqPostUp
	FreqSpotUp
	FreqHandoff
	FreqCut
	FreqOffScreen
	FreqPutback

	NumFreqFeatures
)

// FreqKeys holds the stats source identifiers for the ten play types,
// indexed by the Freq* constants.
var FreqKeys = [NumFreqFeatures]string{
	"Transition",
	"Isolation",
	"PRBallHandler",
	"PRRollman",
	"Postup",
	"Spotup",
	"Handoff",
	"Cut",
	"OffScreen",
	"OffRebound",
}

// FreqLabels holds short display names for the ten play types, indexed
// by the Freq* constants.
var FreqLabels = [NumFreqFeatures]string{
	"TRANS", "ISO", "PNR_BH", "PNR_RM", "POST", "SPOT", "HANDOFF", "CUT", "OFF_SCR", "PUTBACK",
}

// FreqVector holds a player's share of offensive possessions per play
// type, each in [0,1]. Unobserved play types stay 0; the vector is not
// required to sum to 1.
type FreqVector [NumFreqFeatures]float64

// Sum returns the total observed possession share.
func (v FreqVector) Sum() float64 {
	s := 0.0
	for _, f := range v {
		s += f
	}
	return s
}

// IsZero reports whether the player has no play-frequency signal at all.
func (v FreqVector) IsZero() bool {
	for _, f := range v {
		if f != 0 {
			return false
		}
	}
	return true
}

// ---- Raw rows from the stats source ----

// RawTotals is one row of raw season totals, keyed by player.
// Counting stats are season totals, not per-game rates.
type RawTotals struct {
	PlayerID int
	Name     string
	TeamID   int
	TeamAbbr string
	Age      int
	GP       int

	Minutes float64
	FGM     float64
	FGA     float64
	FGPct   float64
	FG3M    float64
	FG3A    float64
	FG3Pct  float64
	FTM     float64
	FTA     float64
	FTPct   float64
	OREB    float64
	DREB    float64
	REB     float64
	AST     float64
	STL     float64
	BLK     float64
	TOV     float64
	PF      float64
	PTS     float64
}

// RawRosterEntry is one roster row: the authority for a player's team
// affiliation and listed position.
type RawRosterEntry struct {
	PlayerID int
	Name     string
	TeamID   int
	TeamAbbr string
	Position string // as listed, e.g. "G", "F-C", "Guard-Forward"
}

// RawPlayFreq is one play-type frequency observation for a player.
type RawPlayFreq struct {
	PlayerID  int
	PlayType  string  // one of FreqKeys
	Frequency float64 // share of possessions, in [0,1]
}

// ---- Engineered records ----

// PlayerRecord is one engineered player-season row. Counting stats are
// per-game rates derived from RawTotals.
type PlayerRecord struct {
	PlayerID    int
	Name        string
	TeamID      int
	TeamAbbr    string
	RawPosition string
	Position    Position
	Age         int
	GP          int

	Minutes float64
	FGM     float64
	FGA     float64
	FGPct   float64
	FG3M    float64
	FG3A    float64
	FG3Pct  float64
	FTM     float64
	FTA     float64
	FTPct   float64
	OREB    float64
	DREB    float64
	REB     float64
	AST     float64
	STL     float64
	BLK     float64
	TOV     float64
	PF      float64
	PTS     float64
}

// RoleAssignment ties a player to a cluster and role label, with the
// fit parameters that produced it.
type RoleAssignment struct {
	Season   string
	PlayerID int
	Cluster  int // 1-based cluster number
	Role     string
	K        int
	Seed     int64
	Restarts int
	MinGames int
}

// LabeledPlayer joins an engineered record, its frequency vector, and
// the role assigned by the final clustering.
type LabeledPlayer struct {
	PlayerRecord
	Freq    FreqVector
	Cluster int
	Role    string
}

// StatColumn names one per-game stat column and extracts it from a record.
type StatColumn struct {
	Name string
	Get  func(*PlayerRecord) float64
}

// StatColumns enumerates the per-game stat columns in report and export
// order.
var StatColumns = []StatColumn{
	{"MIN", func(r *PlayerRecord) float64 { return r.Minutes }},
	{"FGM", func(r *PlayerRecord) float64 { return r.FGM }},
	{"FGA", func(r *PlayerRecord) float64 { return r.FGA }},
	{"FG%", func(r *PlayerRecord) float64 { return r.FGPct }},
	{"3PM", func(r *PlayerRecord) float64 { return r.FG3M }},
	{"3PA", func(r *PlayerRecord) float64 { return r.FG3A }},
	{"3P%", func(r *PlayerRecord) float64 { return r.FG3Pct }},
	{"FTM", func(r *PlayerRecord) float64 { return r.FTM }},
	{"FTA", func(r *PlayerRecord) float64 { return r.FTA }},
	{"FT%", func(r *PlayerRecord) float64 { return r.FTPct }},
	{"OREB", func(r *PlayerRecord) float64 { return r.OREB }},
	{"DREB", func(r *PlayerRecord) float64 { return r.DREB }},
	{"REB", func(r *PlayerRecord) float64 { return r.REB }},
	{"AST", func(r *PlayerRecord) float64 { return r.AST }},
	{"STL", func(r *PlayerRecord) float64 { return r.STL }},
	{"BLK", func(r *PlayerRecord) float64 { return r.BLK }},
	{"TOV", func(r *PlayerRecord) float64 { return r.TOV }},
	{"PF", func(r *PlayerRecord) float64 { return r.PF }},
	{"PTS", func(r *PlayerRecord) float64 { return r.PTS }},
}
