package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/courtvision/nbaroles/internal/nba"
)

// fetchCmd pulls one season's roster, totals, and play-type tables from
// stats.nba.com into the local store. Any request failure is fatal to
// the run; re-running is cheap and idempotent.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download a season's stats from stats.nba.com",
	Long: `Fetches the player index (roster and positions), per-player season
totals, and the ten synergy play-type frequency tables for one season,
and stores the raw rows locally.

Examples:
  nbaroles fetch --season 2021-22
  nbaroles fetch --season 2019-20 --db ./nba.db`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	client := nba.NewClient()

	fmt.Printf("Season %s\n", season)

	fmt.Printf("[1/3] roster (playerindex) ... ")
	roster, err := client.Roster(season)
	if err != nil {
		return fmt.Errorf("fetch roster: %w", err)
	}
	fmt.Printf("%d players\n", len(roster))

	fmt.Printf("[2/3] season totals (leaguedashplayerstats) ... ")
	totals, err := client.SeasonTotals(season)
	if err != nil {
		return fmt.Errorf("fetch totals: %w", err)
	}
	fmt.Printf("%d rows\n", len(totals))

	fmt.Printf("[3/3] play-type frequencies (synergyplaytypes, 10 tables) ... ")
	freqs, err := client.PlayTypeFrequencies(season)
	if err != nil {
		return fmt.Errorf("fetch play types: %w", err)
	}
	fmt.Printf("%d rows\n", len(freqs))

	if err := db.InsertRoster(season, roster); err != nil {
		return fmt.Errorf("store roster: %w", err)
	}
	if err := db.InsertTotals(season, totals); err != nil {
		return fmt.Errorf("store totals: %w", err)
	}
	if err := db.InsertPlayFrequencies(season, freqs); err != nil {
		return fmt.Errorf("store play frequencies: %w", err)
	}
	if err := db.InsertSeason(season, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("store season: %w", err)
	}

	fmt.Printf("\nStored season %s: %d totals rows, %d roster rows, %d frequency rows\n",
		season, len(totals), len(roster), len(freqs))
	return nil
}
