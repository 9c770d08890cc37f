package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

// listCmd shows the seasons in the store and whether they are clustered.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored seasons",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	seasons, err := db.ListSeasons()
	if err != nil {
		return err
	}
	if len(seasons) == 0 {
		fmt.Println("No seasons stored yet. Run 'nbaroles fetch' to add one.")
		return nil
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("SEASON", "FETCHED", "PLAYERS", "FREQ ROWS", "CLUSTERED")
	for _, s := range seasons {
		clustered := "—"
		if s.Clustered > 0 {
			clustered = strconv.Itoa(s.Clustered)
		}
		table.Append(s.Season, s.FetchedAt, strconv.Itoa(s.Players), strconv.Itoa(s.FreqRows), clustered)
	}
	table.Render()
	return nil
}
