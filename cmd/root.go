package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/athiq-ahmed/certprep/internal/store"
	"github.com/athiq-ahmed/certprep/internal/syllabus"
)

var rootCmd = &cobra.Command{
	Use:   "certprep",
	Short: "Certification exam study planner",
	Long:  "Certprep — terminal study planner that turns exam blueprints and self-assessed knowledge into weighted study schedules and readiness quizzes.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CERTPREP_DB env var)")
	rootCmd.PersistentFlags().String("catalogs", "", "Directory of extra exam catalog YAML files (overrides CERTPREP_CATALOGS env var)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(examsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then CERTPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadRegistry builds the exam registry: built-in catalogs plus any YAML
// catalogs from --catalogs or CERTPREP_CATALOGS.
func loadRegistry(cmd *cobra.Command) (*syllabus.Registry, error) {
	reg, err := syllabus.DefaultRegistry()
	if err != nil {
		return nil, fmt.Errorf("built-in catalogs: %w", err)
	}

	dir, _ := cmd.Flags().GetString("catalogs")
	if dir == "" {
		dir = os.Getenv("CERTPREP_CATALOGS")
	}
	if dir != "" {
		if err := syllabus.LoadDir(reg, dir); err != nil {
			return nil, fmt.Errorf("load catalogs from %s: %w", dir, err)
		}
	}
	return reg, nil
}
