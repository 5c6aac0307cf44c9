package guardrails

import (
	"fmt"

	"github.com/athiq-ahmed/certprep/internal/assessment"
)

// CheckAssessment validates a generated quiz before it is presented.
func (p *Pipeline) CheckAssessment(a *assessment.Assessment) Result {
	var res Result
	if a == nil {
		res.malformed("assessment is nil")
		return res
	}
	if len(a.Questions) == 0 {
		res.add(CodeAssessmentEmpty, LevelBlock, "assessment has no questions")
	} else if len(a.Questions) < p.cfg.MinQuestions {
		res.add(CodeAssessmentMinQuestions, LevelWarn,
			fmt.Sprintf("assessment has %d questions, below the recommended minimum of %d", len(a.Questions), p.cfg.MinQuestions))
	}
	if a.PassMarkPct <= 0 || a.PassMarkPct > 100 {
		res.add(CodeAssessmentPassMark, LevelBlock,
			fmt.Sprintf("pass mark %.1f%% outside (0, 100]", a.PassMarkPct))
	}

	seen := make(map[string]bool, len(a.Questions))
	for _, q := range a.Questions {
		if q.ID == "" || q.DomainID == "" {
			res.malformed(fmt.Sprintf("question %q missing id or domain id", q.ID))
			continue
		}
		if seen[q.ID] {
			res.add(CodeAssessmentDuplicateID, LevelBlock,
				fmt.Sprintf("question id %q appears more than once", q.ID))
		}
		seen[q.ID] = true
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
			res.add(CodeAssessmentAnswerIndex, LevelBlock,
				fmt.Sprintf("question %q correct index %d outside its %d choices", q.ID, q.CorrectIndex, len(q.Choices)))
		}
	}

	for domain, missing := range a.Shortfall {
		res.add(CodeAssessmentShortfall, LevelInfo,
			fmt.Sprintf("domain %q bank was %d questions short of its allocation", domain, missing))
	}
	return res
}
