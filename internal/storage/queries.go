package storage

import (
	"database/sql"
	"fmt"

	"github.com/courtvision/nbaroles/internal/model"
)

// SeasonExists returns true if a season has been fetched into the store.
func (db *DB) SeasonExists(season string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM seasons WHERE season = ?", season).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertSeason records a season pull. Uses INSERT OR REPLACE for idempotency.
func (db *DB) InsertSeason(season, fetchedAt string) error {
	_, err := db.conn.Exec(`INSERT OR REPLACE INTO seasons(season, fetched_at) VALUES (?, ?)`,
		season, fetchedAt)
	return err
}

// InsertTotals bulk-inserts raw season totals in a transaction.
func (db *DB) InsertTotals(season string, totals []model.RawTotals) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO player_totals(
			season, player_id, name, team_id, team_abbr, age, gp,
			minutes, fgm, fga, fg_pct, fg3m, fg3a, fg3_pct,
			ftm, fta, ft_pct, oreb, dreb, reb,
			ast, stl, blk, tov, pf, pts
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range totals {
		_, err = stmt.Exec(
			season, t.PlayerID, t.Name, t.TeamID, t.TeamAbbr, t.Age, t.GP,
			t.Minutes, t.FGM, t.FGA, t.FGPct, t.FG3M, t.FG3A, t.FG3Pct,
			t.FTM, t.FTA, t.FTPct, t.OREB, t.DREB, t.REB,
			t.AST, t.STL, t.BLK, t.TOV, t.PF, t.PTS,
		)
		if err != nil {
			return fmt.Errorf("insert player_totals for %d: %w", t.PlayerID, err)
		}
	}
	return tx.Commit()
}

// GetTotals returns all raw totals rows for a season, ordered by player ID.
func (db *DB) GetTotals(season string) ([]model.RawTotals, error) {
	rows, err := db.conn.Query(`
		SELECT player_id, name, team_id, team_abbr, age, gp,
		       minutes, fgm, fga, fg_pct, fg3m, fg3a, fg3_pct,
		       ftm, fta, ft_pct, oreb, dreb, reb,
		       ast, stl, blk, tov, pf, pts
		FROM player_totals WHERE season = ?
		ORDER BY player_id`, season)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RawTotals
	for rows.Next() {
		var t model.RawTotals
		if err := rows.Scan(
			&t.PlayerID, &t.Name, &t.TeamID, &t.TeamAbbr, &t.Age, &t.GP,
			&t.Minutes, &t.FGM, &t.FGA, &t.FGPct, &t.FG3M, &t.FG3A, &t.FG3Pct,
			&t.FTM, &t.FTA, &t.FTPct, &t.OREB, &t.DREB, &t.REB,
			&t.AST, &t.STL, &t.BLK, &t.TOV, &t.PF, &t.PTS,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// InsertRoster bulk-inserts roster entries in a transaction.
func (db *DB) InsertRoster(season string, roster []model.RawRosterEntry) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO roster(season, player_id, name, team_id, team_abbr, position)
		VALUES (?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range roster {
		if _, err := stmt.Exec(season, r.PlayerID, r.Name, r.TeamID, r.TeamAbbr, r.Position); err != nil {
			return fmt.Errorf("insert roster for %d: %w", r.PlayerID, err)
		}
	}
	return tx.Commit()
}

// GetRoster returns all roster entries for a season, ordered by player ID.
func (db *DB) GetRoster(season string) ([]model.RawRosterEntry, error) {
	rows, err := db.conn.Query(`
		SELECT player_id, name, team_id, team_abbr, position
		FROM roster WHERE season = ?
		ORDER BY player_id`, season)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RawRosterEntry
	for rows.Next() {
		var r model.RawRosterEntry
		if err := rows.Scan(&r.PlayerID, &r.Name, &r.TeamID, &r.TeamAbbr, &r.Position); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// InsertPlayFrequencies bulk-inserts play-type frequency rows in a transaction.
func (db *DB) InsertPlayFrequencies(season string, freqs []model.RawPlayFreq) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO play_frequencies(season, player_id, play_type, frequency)
		VALUES (?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, f := range freqs {
		if _, err := stmt.Exec(season, f.PlayerID, f.PlayType, f.Frequency); err != nil {
			return fmt.Errorf("insert play_frequencies for %d/%s: %w", f.PlayerID, f.PlayType, err)
		}
	}
	return tx.Commit()
}

// GetPlayFrequencies returns all frequency rows for a season.
func (db *DB) GetPlayFrequencies(season string) ([]model.RawPlayFreq, error) {
	rows, err := db.conn.Query(`
		SELECT player_id, play_type, frequency
		FROM play_frequencies WHERE season = ?
		ORDER BY player_id, play_type`, season)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RawPlayFreq
	for rows.Next() {
		var f model.RawPlayFreq
		if err := rows.Scan(&f.PlayerID, &f.PlayType, &f.Frequency); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// InsertRoleAssignments replaces a season's assignments in a transaction.
// The previous fit is cleared first so a re-run with different parameters
// never leaves stale rows behind.
func (db *DB) InsertRoleAssignments(season string, assigns []model.RoleAssignment) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM role_assignments WHERE season = ?`, season); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO role_assignments(season, player_id, cluster, role, k, seed, restarts, min_games)
		VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, a := range assigns {
		if _, err := stmt.Exec(season, a.PlayerID, a.Cluster, a.Role, a.K, a.Seed, a.Restarts, a.MinGames); err != nil {
			return fmt.Errorf("insert role_assignments for %d: %w", a.PlayerID, err)
		}
	}
	return tx.Commit()
}

// GetRoleAssignments returns all assignments for a season, ordered by
// cluster then player ID.
func (db *DB) GetRoleAssignments(season string) ([]model.RoleAssignment, error) {
	rows, err := db.conn.Query(`
		SELECT player_id, cluster, role, k, seed, restarts, min_games
		FROM role_assignments WHERE season = ?
		ORDER BY cluster, player_id`, season)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RoleAssignment
	for rows.Next() {
		a := model.RoleAssignment{Season: season}
		if err := rows.Scan(&a.PlayerID, &a.Cluster, &a.Role, &a.K, &a.Seed, &a.Restarts, &a.MinGames); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// SeasonInfo is a lightweight record for the list command.
type SeasonInfo struct {
	Season    string
	FetchedAt string
	Players   int
	FreqRows  int
	Clustered int
}

// ListSeasons returns stored seasons with row counts, newest first.
func (db *DB) ListSeasons() ([]SeasonInfo, error) {
	rows, err := db.conn.Query(`
		SELECT s.season, s.fetched_at,
		       (SELECT COUNT(1) FROM player_totals t WHERE t.season = s.season),
		       (SELECT COUNT(1) FROM play_frequencies f WHERE f.season = s.season),
		       (SELECT COUNT(1) FROM role_assignments a WHERE a.season = s.season)
		FROM seasons s ORDER BY s.season DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SeasonInfo
	for rows.Next() {
		var s SeasonInfo
		if err := rows.Scan(&s.Season, &s.FetchedAt, &s.Players, &s.FreqRows, &s.Clustered); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetSeason returns the season record, or nil if it was never fetched.
func (db *DB) GetSeason(season string) (*SeasonInfo, error) {
	var s SeasonInfo
	err := db.conn.QueryRow(`
		SELECT s.season, s.fetched_at,
		       (SELECT COUNT(1) FROM player_totals t WHERE t.season = s.season),
		       (SELECT COUNT(1) FROM play_frequencies f WHERE f.season = s.season),
		       (SELECT COUNT(1) FROM role_assignments a WHERE a.season = s.season)
		FROM seasons s WHERE s.season = ?`, season).
		Scan(&s.Season, &s.FetchedAt, &s.Players, &s.FreqRows, &s.Clustered)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// DropSeason deletes every row belonging to a season.
func (db *DB) DropSeason(season string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"role_assignments", "play_frequencies", "roster", "player_totals", "seasons"} {
		if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE season = ?", table), season); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return tx.Commit()
}
