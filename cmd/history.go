package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/athiq-ahmed/certprep/internal/render"
	"github.com/athiq-ahmed/certprep/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded plans, quiz attempts, and progress",
}

var historyPlansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List recorded study plans, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		exam, _ := cmd.Flags().GetString("exam")
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openHistoryStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		recs, err := st.PlanHistory(context.Background(), exam, limit)
		if err != nil {
			return fmt.Errorf("load plan history: %w", err)
		}
		fmt.Println(render.PlanHistory(recs))
		return nil
	},
}

var historyAttemptsCmd = &cobra.Command{
	Use:   "attempts",
	Short: "List recorded quiz attempts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		exam, _ := cmd.Flags().GetString("exam")
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openHistoryStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		recs, err := st.AttemptHistory(context.Background(), exam, limit)
		if err != nil {
			return fmt.Errorf("load attempt history: %w", err)
		}
		fmt.Println(render.AttemptHistory(recs))
		return nil
	},
}

var historyProgressCmd = &cobra.Command{
	Use:   "progress",
	Short: "List recorded progress snapshots, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		exam, _ := cmd.Flags().GetString("exam")
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openHistoryStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		recs, err := st.SnapshotHistory(context.Background(), exam, limit)
		if err != nil {
			return fmt.Errorf("load snapshot history: %w", err)
		}
		if len(recs) == 0 {
			fmt.Println("no snapshots recorded")
			return nil
		}
		for _, rec := range recs {
			fmt.Printf("%s  %-20s %2d/%2d periods  %3d/%3d units\n",
				rec.CreatedAt.Format("2006-01-02 15:04"), rec.Exam,
				rec.PeriodsElapsed, rec.TotalPeriods, rec.UnitsCompleted, rec.UnitsPlanned)
		}
		return nil
	},
}

func openHistoryStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

func init() {
	for _, c := range []*cobra.Command{historyPlansCmd, historyAttemptsCmd, historyProgressCmd} {
		c.Flags().String("exam", "", "Exam code (see `certprep exams`)")
		c.Flags().IntP("limit", "n", 10, "Number of records to show")
		_ = c.MarkFlagRequired("exam")
		historyCmd.AddCommand(c)
	}
}
