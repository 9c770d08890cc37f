package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/courtvision/nbaroles/internal/cluster"
	"github.com/courtvision/nbaroles/internal/features"
	"github.com/courtvision/nbaroles/internal/report"
)

var (
	elbowKMax     int
	elbowSeed     int64
	elbowRestarts int
	elbowMinGames int
)

// elbowCmd prints the WSS-per-k series for picking a cluster count. It
// never picks the knee itself.
var elbowCmd = &cobra.Command{
	Use:   "elbow",
	Short: "Print the within-cluster sum-of-squares series for k = 1..kmax",
	Long: `Fits k-means over the ten play-frequency features for each k in
1..kmax and prints the total within-cluster sum of squares. Reading the
"elbow" (the point of diminishing returns) is a judgment call left to
you; pass your pick to 'nbaroles cluster --k'.`,
	Args: cobra.NoArgs,
	RunE: runElbow,
}

func init() {
	elbowCmd.Flags().IntVar(&elbowKMax, "kmax", 20, "largest cluster count to evaluate")
	elbowCmd.Flags().Int64Var(&elbowSeed, "seed", 22, "random seed")
	elbowCmd.Flags().IntVar(&elbowRestarts, "restarts", 50, "k-means restarts per k")
	elbowCmd.Flags().IntVar(&elbowMinGames, "min-games", 29, "include players with games played strictly above this")
}

func runElbow(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	records, vectors, err := loadSeasonFeatures(db, season)
	if err != nil {
		return err
	}
	records, vectors = features.Qualifying(records, vectors, elbowMinGames)
	if len(records) == 0 {
		return fmt.Errorf("no qualifying players (GP > %d) in season %s", elbowMinGames, season)
	}

	wss, err := cluster.ElbowSeries(features.Matrix(vectors), elbowKMax, elbowSeed, elbowRestarts)
	if err != nil {
		return err
	}

	fmt.Printf("\nSeason %s: %d qualifying players, seed=%d, restarts=%d\n\n",
		season, len(records), elbowSeed, elbowRestarts)
	report.PrintElbowTable(os.Stdout, wss)
	return nil
}
