package guardrails

import "fmt"

// Input is the raw planning request before any stage has processed it.
type Input struct {
	Exam          string
	TotalPeriods  int
	PeriodLength  int
	QuestionCount int
	SelfRatings   map[string]int // domain id -> 0 (none) .. 5 (expert)
}

// maxPlanPeriods is the longest schedule the input stage accepts without
// complaint; two years of weekly periods is already far past any exam date.
const maxPlanPeriods = 104

// CheckInput validates the raw request.
func (p *Pipeline) CheckInput(in *Input) Result {
	var res Result
	if in == nil {
		res.malformed("input artifact is nil")
		return res
	}
	if in.Exam == "" {
		res.add(CodeInputExamMissing, LevelBlock, "exam code is required")
	}
	if in.TotalPeriods < 1 || in.TotalPeriods > maxPlanPeriods {
		res.add(CodeInputPeriodsRange, LevelWarn,
			fmt.Sprintf("total periods %d outside 1-%d; the engine will clamp", in.TotalPeriods, maxPlanPeriods))
	}
	if in.PeriodLength < 1 {
		res.add(CodeInputLengthRange, LevelWarn,
			fmt.Sprintf("period length %d is below 1; the engine will clamp", in.PeriodLength))
	}
	if in.QuestionCount < 1 {
		res.add(CodeInputQuestionCount, LevelWarn,
			fmt.Sprintf("question count %d leaves nothing to assess", in.QuestionCount))
	}
	for domain, rating := range in.SelfRatings {
		if rating < 0 || rating > 5 {
			res.add(CodeInputRatingRange, LevelBlock,
				fmt.Sprintf("self-rating %d for domain %q outside 0-5", rating, domain))
		}
	}
	return res
}
