package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/athiq-ahmed/certprep/internal/guardrails"
	"github.com/athiq-ahmed/certprep/internal/progress"
	"github.com/athiq-ahmed/certprep/internal/render"
	"github.com/athiq-ahmed/certprep/internal/store"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Record study progress against the latest plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		exam, _ := cmd.Flags().GetString("exam")
		elapsed, _ := cmd.Flags().GetInt("elapsed")
		completed, _ := cmd.Flags().GetInt("completed")
		noSave, _ := cmd.Flags().GetBool("no-save")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		plans, err := st.PlanHistory(ctx, exam, 1)
		if err != nil {
			return fmt.Errorf("load plan history: %w", err)
		}
		if len(plans) == 0 {
			return fmt.Errorf("no recorded plan for %q; run `certprep plan` first", exam)
		}
		latest := plans[0]

		snap := &progress.Snapshot{
			Exam:           exam,
			PeriodsElapsed: elapsed,
			TotalPeriods:   latest.TotalPeriods,
			UnitsCompleted: completed,
			UnitsPlanned:   latest.TotalUnits,
		}

		res := guardrails.Default().CheckProgress(snap)
		if res.Blocked {
			fmt.Println(render.Guardrails(res))
			return fmt.Errorf("progress blocked by guardrails")
		}

		fmt.Printf("Progress on %s: %d/%d periods, %d/%d units\n",
			exam, snap.PeriodsElapsed, snap.TotalPeriods, snap.UnitsCompleted, snap.UnitsPlanned)
		ratio := snap.OnTrackRatio()
		switch {
		case ratio >= 1.0:
			fmt.Printf("On track (pace %.2f)\n", ratio)
		case ratio >= 0.75:
			fmt.Printf("Slightly behind (pace %.2f)\n", ratio)
		default:
			fmt.Printf("Behind schedule (pace %.2f)\n", ratio)
		}
		if out := render.Guardrails(res); out != "" {
			fmt.Println(out)
		}

		if noSave {
			return nil
		}
		if _, err := st.RecordSnapshot(ctx, snap); err != nil {
			return fmt.Errorf("record snapshot: %w", err)
		}
		return nil
	},
}

func init() {
	progressCmd.Flags().String("exam", "", "Exam code (see `certprep exams`)")
	progressCmd.Flags().Int("elapsed", 0, "Scheduling periods elapsed so far")
	progressCmd.Flags().Int("completed", 0, "Study units completed so far")
	progressCmd.Flags().Bool("no-save", false, "Skip recording the snapshot in history")
	_ = progressCmd.MarkFlagRequired("exam")
}
