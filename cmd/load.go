package cmd

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"

	"github.com/courtvision/nbaroles/internal/model"
	"github.com/courtvision/nbaroles/internal/nba"
	"github.com/courtvision/nbaroles/internal/storage"
)

// loadCmd ingests saved stats.nba.com response files instead of hitting
// the network, for offline or archived-season runs.
var loadCmd = &cobra.Command{
	Use:   "load <dir|file> [file...]",
	Short: "Ingest saved API response files for a season",
	Long: `Loads previously saved stats.nba.com JSON responses into the store.
Files may be plain or compressed (.gz, .bz2, .zst). The table is picked
by filename:

  totals*        leaguedashplayerstats response
  playerindex*   playerindex response (roster/positions)
  roster*        same as playerindex*
  synergy_<PlayType>*  synergyplaytypes response for one play type,
                       e.g. synergy_Transition.json, synergy_Postup.json.zst

Example:
  nbaroles load --season 2021-22 ./archive/2021-22/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if !e.IsDir() {
				paths = append(paths, filepath.Join(arg, e.Name()))
			}
		}
	}

	loaded := 0
	for _, path := range paths {
		n, err := loadFile(db, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  [skip] %s: %v\n", filepath.Base(path), err)
			continue
		}
		if n < 0 {
			continue // unrecognized filename, not an error
		}
		fmt.Printf("  %s: %d rows\n", filepath.Base(path), n)
		loaded++
	}
	if loaded == 0 {
		return fmt.Errorf("no recognized files loaded")
	}

	if err := db.InsertSeason(season, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("store season: %w", err)
	}
	fmt.Printf("\nLoaded %d file(s) into season %s\n", loaded, season)
	return nil
}

// loadFile reads, decompresses, decodes, and stores one response file.
// Returns the stored row count, or -1 for filenames it does not recognize.
func loadFile(db *storage.DB, path string) (int, error) {
	base := strings.ToLower(filepath.Base(path))
	stem := strings.TrimSuffix(strings.TrimSuffix(strings.TrimSuffix(base, ".zst"), ".gz"), ".bz2")
	stem = strings.TrimSuffix(stem, ".json")

	switch {
	case strings.HasPrefix(stem, "totals"):
		data, err := readMaybeCompressed(path)
		if err != nil {
			return 0, err
		}
		totals, err := nba.DecodeTotals(data)
		if err != nil {
			return 0, err
		}
		return len(totals), db.InsertTotals(season, totals)

	case strings.HasPrefix(stem, "playerindex"), strings.HasPrefix(stem, "roster"):
		data, err := readMaybeCompressed(path)
		if err != nil {
			return 0, err
		}
		roster, err := nba.DecodeRoster(data)
		if err != nil {
			return 0, err
		}
		return len(roster), db.InsertRoster(season, roster)

	case strings.HasPrefix(stem, "synergy_"):
		playType, err := matchPlayType(strings.TrimPrefix(stem, "synergy_"))
		if err != nil {
			return 0, err
		}
		data, err := readMaybeCompressed(path)
		if err != nil {
			return 0, err
		}
		freqs, err := nba.DecodeSynergy(data, playType)
		if err != nil {
			return 0, err
		}
		return len(freqs), db.InsertPlayFrequencies(season, freqs)
	}
	return -1, nil
}

// matchPlayType resolves a case-insensitive play type name to its
// canonical key.
func matchPlayType(name string) (string, error) {
	for _, key := range model.FreqKeys {
		if strings.EqualFold(key, name) {
			return key, nil
		}
	}
	return "", fmt.Errorf("unknown play type %q", name)
}

// readMaybeCompressed reads a file, decompressing by extension.
func readMaybeCompressed(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var src io.Reader = f
	switch {
	case strings.HasSuffix(path, ".bz2"):
		src = bzip2.NewReader(f)
	case strings.HasSuffix(path, ".zst"):
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer dec.Close()
		src = dec
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer gz.Close()
		src = gz
	}
	return io.ReadAll(src)
}
