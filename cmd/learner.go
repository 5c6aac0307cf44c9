package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/athiq-ahmed/certprep/internal/llm"
	"github.com/athiq-ahmed/certprep/internal/profile"
	"github.com/athiq-ahmed/certprep/internal/profiler"
	"github.com/athiq-ahmed/certprep/internal/syllabus"
)

// addProfileFlags registers the self-assessment flags shared by the
// plan, quiz, and profile commands.
func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().StringToInt("rating", nil, "Self-rating per domain, e.g. --rating design=4 (0 = never touched, 5 = expert)")
	cmd.Flags().StringArray("cert", nil, "Certification already held (repeatable)")
	cmd.Flags().String("background", "", "Professional background, free text")
	cmd.Flags().String("goals", "", "Why this exam, free text")
	cmd.Flags().StringArray("concern", nil, "Topic the learner is worried about (repeatable)")
	cmd.Flags().StringArray("resource", nil, "Study resource URL (repeatable)")
	cmd.Flags().Bool("llm", false, "Infer the knowledge profile with an LLM instead of the rating rules")
}

// profilerInput collects the self-assessment flags into profiler input.
func profilerInput(cmd *cobra.Command) profiler.Input {
	ratings, _ := cmd.Flags().GetStringToInt("rating")
	certs, _ := cmd.Flags().GetStringArray("cert")
	background, _ := cmd.Flags().GetString("background")
	goals, _ := cmd.Flags().GetString("goals")
	concerns, _ := cmd.Flags().GetStringArray("concern")
	resources, _ := cmd.Flags().GetStringArray("resource")

	return profiler.Input{
		SelfRatings:    ratings,
		Certifications: certs,
		Background:     background,
		Goals:          goals,
		ConcernTopics:  concerns,
		ResourceURLs:   resources,
	}
}

// inferLearner builds a learner profile from the command's flags, using
// the LLM-backed profiler when --llm is set.
func inferLearner(cmd *cobra.Command, cat *syllabus.Catalog) (*profile.Learner, error) {
	in := profilerInput(cmd)

	useLLM, _ := cmd.Flags().GetBool("llm")
	if useLLM {
		provider, err := llm.New(cmd.Context(), llm.ConfigFromEnv())
		if err != nil {
			return nil, fmt.Errorf("configure LLM provider: %w", err)
		}
		return profiler.NewLLMBacked(cat, provider).Infer(cmd.Context(), in)
	}
	return profiler.NewRuleBased(cat).Infer(cmd.Context(), in)
}
