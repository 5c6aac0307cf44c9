package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/athiq-ahmed/certprep/internal/assessment"
	"github.com/athiq-ahmed/certprep/internal/guardrails"
	"github.com/athiq-ahmed/certprep/internal/render"
	"github.com/athiq-ahmed/certprep/internal/store"
	"github.com/athiq-ahmed/certprep/internal/studyplan"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a weighted study plan for an exam",
	RunE: func(cmd *cobra.Command, args []string) error {
		exam, _ := cmd.Flags().GetString("exam")
		periods, _ := cmd.Flags().GetInt("periods")
		periodLength, _ := cmd.Flags().GetInt("period-length")
		questions, _ := cmd.Flags().GetInt("questions")
		seed, _ := cmd.Flags().GetInt64("seed")
		noSave, _ := cmd.Flags().GetBool("no-save")

		reg, err := loadRegistry(cmd)
		if err != nil {
			return err
		}
		cat, err := reg.Catalog(exam)
		if err != nil {
			return err
		}

		rails := guardrails.Default()
		ratings, _ := cmd.Flags().GetStringToInt("rating")
		res := rails.CheckInput(&guardrails.Input{
			Exam:          exam,
			TotalPeriods:  periods,
			PeriodLength:  periodLength,
			QuestionCount: questions,
			SelfRatings:   ratings,
		})
		if res.Blocked {
			fmt.Println(render.Guardrails(res))
			return fmt.Errorf("request blocked by guardrails")
		}

		learner, err := inferLearner(cmd, cat)
		if err != nil {
			return fmt.Errorf("infer profile: %w", err)
		}
		res = guardrails.Merge(res, rails.CheckProfile(learner))
		if res.Blocked {
			fmt.Println(render.Guardrails(res))
			return fmt.Errorf("profile blocked by guardrails")
		}

		// The plan and the readiness quiz are independent; build both at
		// once.
		var (
			wg      sync.WaitGroup
			plan    *studyplan.Plan
			planErr error
			quiz    *assessment.Assessment
			quizErr error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			engine := studyplan.NewEngine(cat)
			plan, planErr = engine.Build(learner, studyplan.Budget{
				TotalPeriods: periods,
				PeriodLength: periodLength,
			})
		}()
		go func() {
			defer wg.Done()
			quiz, quizErr = assessment.NewSampler(cat, seed).Generate(learner, questions)
		}()
		wg.Wait()

		if planErr != nil {
			return fmt.Errorf("build plan: %w", planErr)
		}

		res = guardrails.Merge(res, rails.CheckPlan(plan))
		if quizErr == nil {
			res = guardrails.Merge(res, rails.CheckAssessment(quiz))
		}
		if res.Blocked {
			fmt.Println(render.Guardrails(res))
			return fmt.Errorf("plan blocked by guardrails")
		}

		fmt.Println(render.Plan(plan))
		if quizErr != nil {
			fmt.Printf("Readiness quiz unavailable: %v\n", quizErr)
		} else {
			fmt.Printf("Readiness quiz ready: %d questions (run `certprep quiz --exam %s --seed %d`)\n",
				len(quiz.Questions), exam, seed)
		}
		if out := render.Guardrails(res); out != "" {
			fmt.Println(out)
		}

		if noSave {
			return nil
		}
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()
		if _, err := st.RecordPlan(context.Background(), plan); err != nil {
			return fmt.Errorf("record plan: %w", err)
		}
		return nil
	},
}

func init() {
	planCmd.Flags().String("exam", "", "Exam code (see `certprep exams`)")
	planCmd.Flags().Int("periods", 8, "Number of scheduling periods until the exam")
	planCmd.Flags().Int("period-length", 5, "Study units available per period")
	planCmd.Flags().Int("questions", 12, "Size of the readiness quiz sampled alongside the plan")
	planCmd.Flags().Int64("seed", 1, "Shuffle seed for the readiness quiz")
	planCmd.Flags().Bool("no-save", false, "Skip recording the plan in history")
	addProfileFlags(planCmd)
	_ = planCmd.MarkFlagRequired("exam")
}
