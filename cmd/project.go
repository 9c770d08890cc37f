package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/courtvision/nbaroles/internal/cluster"
	"github.com/courtvision/nbaroles/internal/report"
)

var projectOut string

// projectCmd computes the 2-D PCA projection of the frequency matrix
// for visualization. Presentation only: it never feeds back into the
// cluster assignments.
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "2-D PCA projection of the clustered players",
	Long: `Projects the ten play-frequency features of the clustered players
onto their first two principal components (centered and scaled), for
scatter-plot visualization in external tooling.`,
	Args: cobra.NoArgs,
	RunE: runProject,
}

func init() {
	projectCmd.Flags().StringVar(&projectOut, "out", "", "write coordinates as CSV to this path instead of printing a table")
}

func runProject(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	players, err := loadLabeledPlayers(db, season)
	if err != nil {
		return err
	}

	X := make([][]float64, len(players))
	for i, p := range players {
		X[i] = append([]float64(nil), p.Freq[:]...)
	}
	coords, explained, err := cluster.Project(X)
	if err != nil {
		return err
	}

	if projectOut == "" {
		report.PrintProjectionTable(os.Stdout, players, coords, explained)
		return nil
	}

	f, err := os.Create(projectOut)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"player_id", "name", "cluster", "role", "pc1", "pc2"}); err != nil {
		return err
	}
	for i, p := range players {
		rec := []string{
			strconv.Itoa(p.PlayerID),
			p.Name,
			strconv.Itoa(p.Cluster),
			p.Role,
			strconv.FormatFloat(coords[i][0], 'f', 6, 64),
			strconv.FormatFloat(coords[i][1], 'f', 6, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	fmt.Printf("wrote %d rows to %s (PC1 %.1f%%, PC2 %.1f%% of variance)\n",
		len(players), projectOut, explained[0]*100, explained[1]*100)
	return nil
}
