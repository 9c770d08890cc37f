package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// dropCmd deletes every stored row for a season.
var dropCmd = &cobra.Command{
	Use:   "drop <season>",
	Short: "Delete a stored season",
	Args:  cobra.ExactArgs(1),
	RunE:  runDrop,
}

func runDrop(cmd *cobra.Command, args []string) error {
	target := args[0]

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	info, err := db.GetSeason(target)
	if err != nil {
		return err
	}
	if info == nil {
		return fmt.Errorf("season %s not in store", target)
	}

	if err := db.DropSeason(target); err != nil {
		return fmt.Errorf("drop season: %w", err)
	}
	fmt.Printf("dropped season %s (%d players)\n", target, info.Players)
	return nil
}
