package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/courtvision/nbaroles/internal/model"
	"github.com/courtvision/nbaroles/internal/report"
)

var (
	rolesRole string
	rolesTeam string
)

// rolesCmd prints the labeled player table from the last cluster run.
var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Show the labeled player table",
	Args:  cobra.NoArgs,
	RunE:  runRoles,
}

func init() {
	rolesCmd.Flags().StringVar(&rolesRole, "role", "", "only show players with this role label")
	rolesCmd.Flags().StringVar(&rolesTeam, "team", "", "only show players on this team (abbreviation)")
}

func runRoles(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	players, err := loadLabeledPlayers(db, season)
	if err != nil {
		return err
	}

	var filtered []model.LabeledPlayer
	for _, p := range players {
		if rolesRole != "" && !strings.EqualFold(p.Role, rolesRole) {
			continue
		}
		if rolesTeam != "" && !strings.EqualFold(p.TeamAbbr, rolesTeam) {
			continue
		}
		filtered = append(filtered, p)
	}
	if len(filtered) == 0 {
		fmt.Println("no players match")
		return nil
	}

	fmt.Printf("\nSeason %s: %d players\n\n", season, len(filtered))
	report.PrintRoleTable(os.Stdout, filtered)
	return nil
}
