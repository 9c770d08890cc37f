package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	dbPath string
	season string
)

var rootCmd = &cobra.Command{
	Use:   "nbaroles",
	Short: "NBA player role clustering tool",
	Long:  "Fetch NBA per-player season stats and play-type frequencies, cluster players into offensive roles, and report on the groups.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".nbaroles", "nbaroles.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&season, "season", "2021-22", "season in YYYY-YY form")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(elbowCmd)
	rootCmd.AddCommand(clusterCmd)
	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(dropCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
