package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/courtvision/nbaroles/internal/features"
	"github.com/courtvision/nbaroles/internal/model"
	"github.com/courtvision/nbaroles/internal/storage"
)

// openStore opens the database at --db, creating its directory if needed.
func openStore() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}

// loadSeasonFeatures reads a season's raw rows from the store and builds
// the engineered feature table.
func loadSeasonFeatures(db *storage.DB, season string) ([]model.PlayerRecord, []model.FreqVector, error) {
	info, err := db.GetSeason(season)
	if err != nil {
		return nil, nil, err
	}
	if info == nil {
		return nil, nil, fmt.Errorf("season %s not in store; run 'nbaroles fetch' or 'nbaroles load' first", season)
	}

	totals, err := db.GetTotals(season)
	if err != nil {
		return nil, nil, fmt.Errorf("load totals: %w", err)
	}
	roster, err := db.GetRoster(season)
	if err != nil {
		return nil, nil, fmt.Errorf("load roster: %w", err)
	}
	freqs, err := db.GetPlayFrequencies(season)
	if err != nil {
		return nil, nil, fmt.Errorf("load play frequencies: %w", err)
	}

	records, vectors := features.Build(totals, roster, freqs)
	return records, vectors, nil
}

// loadLabeledPlayers joins the engineered feature table with the stored
// role assignments. Players without an assignment (below the games
// threshold at fit time) are not included.
func loadLabeledPlayers(db *storage.DB, season string) ([]model.LabeledPlayer, error) {
	records, vectors, err := loadSeasonFeatures(db, season)
	if err != nil {
		return nil, err
	}
	assigns, err := db.GetRoleAssignments(season)
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}
	if len(assigns) == 0 {
		return nil, fmt.Errorf("no role assignments for %s; run 'nbaroles cluster' first", season)
	}

	byID := make(map[int]model.RoleAssignment, len(assigns))
	for _, a := range assigns {
		byID[a.PlayerID] = a
	}

	var out []model.LabeledPlayer
	for i, r := range records {
		a, ok := byID[r.PlayerID]
		if !ok {
			continue
		}
		out = append(out, model.LabeledPlayer{
			PlayerRecord: r,
			Freq:         vectors[i],
			Cluster:      a.Cluster,
			Role:         a.Role,
		})
	}
	return out, nil
}
