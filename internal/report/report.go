package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"gonum.org/v1/gonum/stat"

	"github.com/courtvision/nbaroles/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintRoleTable prints the labeled player table, grouped by cluster and
// ordered by minutes within each role.
func PrintRoleTable(w io.Writer, players []model.LabeledPlayer) {
	sorted := make([]model.LabeledPlayer, len(players))
	copy(sorted, players)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Cluster != sorted[j].Cluster {
			return sorted[i].Cluster < sorted[j].Cluster
		}
		return sorted[i].Minutes > sorted[j].Minutes
	})

	table := newTable(w)
	table.Header("CLUSTER", "ROLE", "PLAYER", "TEAM", "POS", "AGE", "GP", "MIN", "PTS", "REB", "AST")
	for _, p := range sorted {
		table.Append(
			strconv.Itoa(p.Cluster),
			p.Role,
			p.Name,
			p.TeamAbbr,
			p.Position.String(),
			strconv.Itoa(p.Age),
			strconv.Itoa(p.GP),
			fmt.Sprintf("%.1f", p.Minutes),
			fmt.Sprintf("%.1f", p.PTS),
			fmt.Sprintf("%.1f", p.REB),
			fmt.Sprintf("%.1f", p.AST),
		)
	}
	table.Render()
}

// PrintElbowTable prints the within-cluster sum-of-squares series for
// k = 1..len(wss), with the absolute and relative drop per step. The
// knee is left to the reader.
func PrintElbowTable(w io.Writer, wss []float64) {
	table := newTable(w)
	table.Header("K", "WSS", "DROP", "DROP%")
	for i, v := range wss {
		drop, dropPct := "—", "—"
		if i > 0 && wss[i-1] > 0 {
			d := wss[i-1] - v
			drop = fmt.Sprintf("%.4f", d)
			dropPct = fmt.Sprintf("%.1f%%", d/wss[i-1]*100)
		}
		table.Append(strconv.Itoa(i+1), fmt.Sprintf("%.4f", v), drop, dropPct)
	}
	table.Render()
}

// PrintCentroidTable prints each cluster's centroid as play-frequency
// percentages, one row per role. The dominant feature per row is what
// the role names were derived from.
func PrintCentroidTable(w io.Writer, centroids [][]float64, roleFor func(cluster int) string) {
	table := newTable(w)
	header := make([]any, 0, model.NumFreqFeatures+2)
	header = append(header, "CLUSTER", "ROLE")
	for _, l := range model.FreqLabels {
		header = append(header, l)
	}
	table.Header(header...)

	for i, c := range centroids {
		row := make([]any, 0, model.NumFreqFeatures+2)
		row = append(row, strconv.Itoa(i+1), roleFor(i+1))
		for _, f := range c {
			row = append(row, fmt.Sprintf("%.1f%%", f*100))
		}
		table.Append(row...)
	}
	table.Render()
}

// summaryStats holds sorted per-game stats to highlight in the role
// summary. The full column set is available via export.
var summaryStats = []string{"MIN", "PTS", "FGA", "3PA", "FTA", "OREB", "REB", "AST", "STL", "BLK", "TOV"}

// PrintRoleSummaryTable prints per-role mean ± standard deviation for
// the headline per-game stats, with the league-wide mean as the last row.
func PrintRoleSummaryTable(w io.Writer, players []model.LabeledPlayer) {
	cols := make([]model.StatColumn, 0, len(summaryStats))
	for _, name := range summaryStats {
		for _, c := range model.StatColumns {
			if c.Name == name {
				cols = append(cols, c)
				break
			}
		}
	}

	// Group by role, keep clusters in numeric order.
	byCluster := make(map[int][]model.LabeledPlayer)
	var clusters []int
	for _, p := range players {
		if _, seen := byCluster[p.Cluster]; !seen {
			clusters = append(clusters, p.Cluster)
		}
		byCluster[p.Cluster] = append(byCluster[p.Cluster], p)
	}
	sort.Ints(clusters)

	table := newTable(w)
	header := make([]any, 0, len(cols)+2)
	header = append(header, "ROLE", "N")
	for _, c := range cols {
		header = append(header, c.Name)
	}
	table.Header(header...)

	appendRow := func(label string, group []model.LabeledPlayer, withStd bool) {
		row := make([]any, 0, len(cols)+2)
		row = append(row, label, strconv.Itoa(len(group)))
		for _, c := range cols {
			vals := make([]float64, len(group))
			for i := range group {
				vals[i] = c.Get(&group[i].PlayerRecord)
			}
			mean, std := stat.MeanStdDev(vals, nil)
			if withStd && len(vals) > 1 {
				row = append(row, fmt.Sprintf("%.1f±%.1f", mean, std))
			} else {
				row = append(row, fmt.Sprintf("%.1f", mean))
			}
		}
		table.Append(row...)
	}

	for _, cl := range clusters {
		group := byCluster[cl]
		appendRow(group[0].Role, group, true)
	}
	appendRow("League", players, false)
	table.Render()
}

// PrintProjectionTable prints 2-D PCA coordinates per player alongside
// the assigned role, sorted by cluster.
func PrintProjectionTable(w io.Writer, players []model.LabeledPlayer, coords [][2]float64, explained [2]float64) {
	fmt.Fprintf(w, "\nPC1 explains %.1f%% of variance, PC2 %.1f%%\n\n",
		explained[0]*100, explained[1]*100)

	idx := make([]int, len(players))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		pa, pb := players[idx[a]], players[idx[b]]
		if pa.Cluster != pb.Cluster {
			return pa.Cluster < pb.Cluster
		}
		return pa.Name < pb.Name
	})

	table := newTable(w)
	table.Header("PLAYER", "ROLE", "PC1", "PC2")
	for _, i := range idx {
		table.Append(
			players[i].Name,
			players[i].Role,
			fmt.Sprintf("%.3f", coords[i][0]),
			fmt.Sprintf("%.3f", coords[i][1]),
		)
	}
	table.Render()
}
