package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/courtvision/nbaroles/internal/cluster"
	"github.com/courtvision/nbaroles/internal/features"
	"github.com/courtvision/nbaroles/internal/model"
	"github.com/courtvision/nbaroles/internal/report"
)

var (
	clusterK        int
	clusterSeed     int64
	clusterRestarts int
	clusterMinGames int
)

// clusterCmd runs the final fit: feature build, k-means over the ten
// play-frequency features, role labeling, and assignment storage.
var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Cluster qualifying players into roles and store the assignments",
	Long: `Builds the engineered feature table for the season, restricts it to
players with games played above the threshold, fits k-means over the
ten play-frequency features, and stores one role assignment per player.

With the default k=7 the clusters get the fixed role names; any other k
gets numeric labels. The name-to-cluster mapping is validated against
the fitted centroids and mismatches are reported as warnings.`,
	Args: cobra.NoArgs,
	RunE: runCluster,
}

func init() {
	clusterCmd.Flags().IntVar(&clusterK, "k", 7, "cluster count")
	clusterCmd.Flags().Int64Var(&clusterSeed, "seed", 22, "random seed")
	clusterCmd.Flags().IntVar(&clusterRestarts, "restarts", 50, "k-means restarts")
	clusterCmd.Flags().IntVar(&clusterMinGames, "min-games", 29, "include players with games played strictly above this")
}

func runCluster(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	records, vectors, err := loadSeasonFeatures(db, season)
	if err != nil {
		return err
	}
	total := len(records)
	records, vectors = features.Qualifying(records, vectors, clusterMinGames)
	if len(records) == 0 {
		return fmt.Errorf("no qualifying players (GP > %d) in season %s", clusterMinGames, season)
	}

	res, err := cluster.KMeans(features.Matrix(vectors), clusterK, clusterSeed, clusterRestarts)
	if err != nil {
		return err
	}

	var table cluster.RoleTable
	if clusterK == len(cluster.DefaultRoles) {
		table = cluster.DefaultRoles
		for _, w := range cluster.ValidateRoles(res.Centroids, table) {
			fmt.Fprintf(os.Stderr, "[warn] role mapping: %s\n", w)
		}
	}

	assigns := make([]model.RoleAssignment, len(records))
	for i, r := range records {
		clusterNum := res.Assignments[i] + 1
		assigns[i] = model.RoleAssignment{
			Season:   season,
			PlayerID: r.PlayerID,
			Cluster:  clusterNum,
			Role:     table.Role(clusterNum),
			K:        clusterK,
			Seed:     clusterSeed,
			Restarts: clusterRestarts,
			MinGames: clusterMinGames,
		}
	}
	if err := db.InsertRoleAssignments(season, assigns); err != nil {
		return fmt.Errorf("store assignments: %w", err)
	}

	fmt.Printf("\nSeason %s: %d players in feature table, %d qualify (GP > %d)\n",
		season, total, len(records), clusterMinGames)
	fmt.Printf("k=%d seed=%d restarts=%d  WSS=%.4f  converged=%v (%d iterations)\n\n",
		clusterK, clusterSeed, clusterRestarts, res.WSS, res.Converged, res.Iterations)

	report.PrintCentroidTable(os.Stdout, res.Centroids, table.Role)
	return nil
}
