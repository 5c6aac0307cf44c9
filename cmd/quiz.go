package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/athiq-ahmed/certprep/internal/assessment"
	"github.com/athiq-ahmed/certprep/internal/guardrails"
	"github.com/athiq-ahmed/certprep/internal/render"
	"github.com/athiq-ahmed/certprep/internal/store"
	"github.com/athiq-ahmed/certprep/internal/tui"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take a weighted readiness quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		exam, _ := cmd.Flags().GetString("exam")
		questions, _ := cmd.Flags().GetInt("questions")
		seed, _ := cmd.Flags().GetInt64("seed")
		plain, _ := cmd.Flags().GetBool("plain")
		noSave, _ := cmd.Flags().GetBool("no-save")

		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		reg, err := loadRegistry(cmd)
		if err != nil {
			return err
		}
		cat, err := reg.Catalog(exam)
		if err != nil {
			return err
		}

		learner, err := inferLearner(cmd, cat)
		if err != nil {
			return fmt.Errorf("infer profile: %w", err)
		}

		rails := guardrails.Default()
		res := rails.CheckProfile(learner)
		if res.Blocked {
			fmt.Println(render.Guardrails(res))
			return fmt.Errorf("profile blocked by guardrails")
		}

		quiz, err := assessment.NewSampler(cat, seed).Generate(learner, questions)
		if err != nil {
			return fmt.Errorf("sample questions: %w", err)
		}
		res = guardrails.Merge(res, rails.CheckAssessment(quiz))
		if res.Blocked {
			fmt.Println(render.Guardrails(res))
			return fmt.Errorf("quiz blocked by guardrails")
		}
		if out := render.Guardrails(res); out != "" {
			fmt.Println(out)
		}

		var answers []int
		if plain {
			answers, err = promptAnswers(quiz, cmd.InOrStdin(), cmd.OutOrStdout())
		} else {
			answers, err = tui.Run(quiz)
		}
		if err != nil {
			return err
		}

		result, err := assessment.Evaluate(quiz, answers)
		if err != nil {
			return fmt.Errorf("score quiz: %w", err)
		}
		fmt.Println(render.AssessmentResult(quiz, result))

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
		if err := st.RecordAttempt(context.Background(), quiz, result); err != nil {
			return fmt.Errorf("record attempt: %w", err)
		}
		return nil
	},
}

// promptAnswers runs the quiz without the TUI, reading one answer letter
// per question from in.
func promptAnswers(a *assessment.Assessment, in io.Reader, out io.Writer) ([]int, error) {
	scanner := bufio.NewScanner(in)
	answers := make([]int, 0, len(a.Questions))

	for i, q := range a.Questions {
		fmt.Fprintf(out, "\n%d/%d [%s] %s\n", i+1, len(a.Questions), q.DomainID, q.Text)
		for j, choice := range q.Choices {
			fmt.Fprintf(out, "  %c) %s\n", 'A'+j, choice)
		}

		idx := -1
		for idx < 0 {
			fmt.Fprintf(out, "Answer (A-%c): ", 'A'+len(q.Choices)-1)
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return nil, fmt.Errorf("read answer: %w", err)
				}
				return nil, fmt.Errorf("quiz aborted at question %d", i+1)
			}
			idx = parseAnswer(scanner.Text(), len(q.Choices))
			if idx < 0 {
				fmt.Fprintln(out, "Please answer with a single letter.")
			}
		}
		answers = append(answers, idx)
	}
	return answers, nil
}

// parseAnswer maps a letter like "b" or "B" to a choice index, or -1.
func parseAnswer(s string, choices int) int {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 1 {
		return -1
	}
	idx := int(s[0] - 'A')
	if idx < 0 || idx >= choices {
		return -1
	}
	return idx
}

func init() {
	quizCmd.Flags().String("exam", "", "Exam code (see `certprep exams`)")
	quizCmd.Flags().Int("questions", 12, "Number of questions to sample")
	quizCmd.Flags().Int64("seed", 0, "Shuffle seed (0 picks a random quiz; reuse a seed to repeat one)")
	quizCmd.Flags().Bool("plain", false, "Read answers line by line instead of the interactive view")
	quizCmd.Flags().Bool("no-save", false, "Skip recording the attempt in history")
	addProfileFlags(quizCmd)
	_ = quizCmd.MarkFlagRequired("exam")
}
