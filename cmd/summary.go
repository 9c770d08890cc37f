package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/courtvision/nbaroles/internal/report"
)

// summaryCmd prints per-role averages of the per-game stats against the
// league-wide mean.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Per-role averages of per-game stats vs the league mean",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	players, err := loadLabeledPlayers(db, season)
	if err != nil {
		return err
	}

	fmt.Printf("\nSeason %s: %d clustered players (mean ± stddev per role)\n\n", season, len(players))
	report.PrintRoleSummaryTable(os.Stdout, players)
	return nil
}
