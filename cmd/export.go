package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/courtvision/nbaroles/internal/model"
)

var (
	exportFormat string
	exportOut    string
)

// exportRow is the JSON schema for one exported player: identity,
// per-game stats, the ten frequency features, and the assigned role.
type exportRow struct {
	PlayerID int                `json:"player_id"`
	Name     string             `json:"name"`
	Team     string             `json:"team"`
	Position string             `json:"position"`
	Age      int                `json:"age"`
	GP       int                `json:"gp"`
	Stats    map[string]float64 `json:"per_game"`
	Freq     map[string]float64 `json:"play_freq"`
	Cluster  int                `json:"cluster"`
	Role     string             `json:"role"`
}

// exportCmd writes the labeled player table as CSV or JSON for external
// charting.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the labeled player table as CSV or JSON",
	Long: `Writes the full labeled table (identity, per-game stats, the ten
play-frequency features, and the role label) for downstream charting
or spreadsheet work.

Examples:
  nbaroles export --format csv --out roles.csv
  nbaroles export --format json          # JSON to stdout`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format: csv or json")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFormat != "csv" && exportFormat != "json" {
		return fmt.Errorf("unknown format %q (want csv or json)", exportFormat)
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	players, err := loadLabeledPlayers(db, season)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if exportFormat == "json" {
		if err := writeJSON(w, players); err != nil {
			return err
		}
	} else {
		if err := writeCSV(w, players); err != nil {
			return err
		}
	}

	if exportOut != "" {
		fmt.Fprintf(os.Stderr, "wrote %d players to %s\n", len(players), exportOut)
	}
	return nil
}

func writeJSON(w io.Writer, players []model.LabeledPlayer) error {
	rows := make([]exportRow, len(players))
	for i, p := range players {
		stats := make(map[string]float64, len(model.StatColumns))
		for _, c := range model.StatColumns {
			stats[c.Name] = c.Get(&p.PlayerRecord)
		}
		freq := make(map[string]float64, model.NumFreqFeatures)
		for j, key := range model.FreqKeys {
			freq[key] = p.Freq[j]
		}
		rows[i] = exportRow{
			PlayerID: p.PlayerID,
			Name:     p.Name,
			Team:     p.TeamAbbr,
			Position: p.Position.String(),
			Age:      p.Age,
			GP:       p.GP,
			Stats:    stats,
			Freq:     freq,
			Cluster:  p.Cluster,
			Role:     p.Role,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func writeCSV(w io.Writer, players []model.LabeledPlayer) error {
	cw := csv.NewWriter(w)

	header := []string{"player_id", "name", "team", "position", "age", "gp"}
	for _, c := range model.StatColumns {
		header = append(header, c.Name)
	}
	header = append(header, model.FreqKeys[:]...)
	header = append(header, "cluster", "role")
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range players {
		p := &players[i]
		rec := []string{
			strconv.Itoa(p.PlayerID),
			p.Name,
			p.TeamAbbr,
			p.Position.String(),
			strconv.Itoa(p.Age),
			strconv.Itoa(p.GP),
		}
		for _, c := range model.StatColumns {
			rec = append(rec, strconv.FormatFloat(c.Get(&p.PlayerRecord), 'f', -1, 64))
		}
		for _, f := range p.Freq {
			rec = append(rec, strconv.FormatFloat(f, 'f', -1, 64))
		}
		rec = append(rec, strconv.Itoa(p.Cluster), p.Role)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
