package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/athiq-ahmed/certprep/internal/guardrails"
	"github.com/athiq-ahmed/certprep/internal/render"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the inferred knowledge profile for an exam",
	RunE: func(cmd *cobra.Command, args []string) error {
		exam, _ := cmd.Flags().GetString("exam")

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

		res := guardrails.Default().CheckProfile(learner)
		if res.Blocked {
			fmt.Println(render.Guardrails(res))
			return fmt.Errorf("profile blocked by guardrails")
		}

		fmt.Printf("Knowledge profile: %s\n", exam)
		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("%-28s  %-9s  %5s  %-5s  %s\n", "Domain", "Level", "Conf", "Risk", "Skip")
		fmt.Println(strings.Repeat("─", 64))
		for _, d := range learner.Domains {
			dom, err := cat.Domain(d.DomainID)
			if err != nil {
				return err
			}
			risk, skip := "", ""
			if d.Risk {
				risk = "yes"
			}
			if d.SkipRecommended {
				skip = "yes"
			}
			fmt.Printf("%-28s  %-9s  %4.0f%%  %-5s  %s\n",
				dom.Name, d.Level, d.Confidence*100, risk, skip)
		}

		if out := render.Guardrails(res); out != "" {
			fmt.Println()
			fmt.Println(out)
		}
		return nil
	},
}

func init() {
	profileCmd.Flags().String("exam", "", "Exam code (see `certprep exams`)")
	addProfileFlags(profileCmd)
	_ = profileCmd.MarkFlagRequired("exam")
}
