// Package guardrails validates every artifact flowing between pipeline
// stages: the raw request, the learner profile, the study plan, progress
// snapshots, generated assessments, and free-text/URL content.
//
// Checks never fail with an error. Each stage returns a Result carrying
// severity-tagged violations; a malformed artifact (nil, missing required
// shape) yields a synthetic blocking violation instead of a panic. Rule
// codes are stable strings: a given rule always reports the same code.
package guardrails

// Level is the severity of a violation.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelBlock
)

// String returns the conventional uppercase severity name.
func (l Level) String() string {
	switch l {
	case LevelBlock:
		return "BLOCK"
	case LevelWarn:
		return "WARN"
	default:
		return "INFO"
	}
}

// Stable rule codes. Every rule owns exactly one code.
const (
	CodeMalformedArtifact = "artifact.malformed"

	CodeInputExamMissing   = "input.exam_missing"
	CodeInputPeriodsRange  = "input.periods_range"
	CodeInputLengthRange   = "input.period_length_range"
	CodeInputRatingRange   = "input.rating_range"
	CodeInputQuestionCount = "input.question_count"

	CodeProfileExamMissing    = "profile.exam_missing"
	CodeProfileNoDomains      = "profile.no_domains"
	CodeProfileDomainID       = "profile.domain_id_missing"
	CodeProfileDuplicate      = "profile.duplicate_domain"
	CodeProfileConfidence     = "profile.confidence_range"
	CodeProfileSkipContradict = "profile.skip_contradiction"

	CodePlanEmpty         = "plan.empty"
	CodePlanScheduleOrder = "plan.schedule_order"
	CodePlanPeriodBounds  = "plan.period_bounds"
	CodePlanUnitsNegative = "plan.units_negative"
	CodePlanReviewPeriod  = "plan.review_period"
	CodePlanBudgetOverrun = "plan.budget_overrun"

	CodeProgressPeriodsRange   = "progress.periods_range"
	CodeProgressUnitsRange     = "progress.units_range"
	CodeProgressOverPlanned    = "progress.units_over_planned"
	CodeProgressCompletion     = "progress.completion_range"
	CodeProgressBehindSchedule = "progress.behind_schedule"

	CodeAssessmentEmpty        = "assessment.empty"
	CodeAssessmentMinQuestions = "assessment.min_questions"
	CodeAssessmentDuplicateID  = "assessment.duplicate_question"
	CodeAssessmentAnswerIndex  = "assessment.answer_index"
	CodeAssessmentPassMark     = "assessment.pass_mark_range"
	CodeAssessmentShortfall    = "assessment.bank_shortfall"

	CodeContentHarmful      = "content.harmful_keyword"
	CodeContentPII          = "content.pii_detected"
	CodeContentURLUntrusted = "content.url_untrusted"
)

// Violation is one failed rule.
type Violation struct {
	Code    string
	Level   Level
	Message string
}

// Result is the outcome of one stage check (or a merge of several).
type Result struct {
	Violations []Violation
	Blocked    bool
}

func (r *Result) add(code string, level Level, message string) {
	r.Violations = append(r.Violations, Violation{Code: code, Level: level, Message: message})
	if level == LevelBlock {
		r.Blocked = true
	}
}

// malformed records the synthetic blocking violation used when an artifact
// does not have the required shape.
func (r *Result) malformed(message string) {
	r.add(CodeMalformedArtifact, LevelBlock, message)
}

// Merge combines two stage results: violation lists concatenate and the
// blocked flags OR together.
func Merge(a, b Result) Result {
	merged := Result{
		Violations: make([]Violation, 0, len(a.Violations)+len(b.Violations)),
		Blocked:    a.Blocked || b.Blocked,
	}
	merged.Violations = append(merged.Violations, a.Violations...)
	merged.Violations = append(merged.Violations, b.Violations...)
	return merged
}

// Config tunes the pipeline. Zero values fall back to the defaults below.
type Config struct {
	// BudgetTolerance is the fraction by which a plan's total units may
	// exceed the requested budget before a warning fires.
	BudgetTolerance float64

	// MinQuestions is the smallest assessment size that avoids a warning.
	MinQuestions int

	// TrustedHosts are URL hosts (and their subdomains) that pass the
	// allow-list rule.
	TrustedHosts []string

	// HarmfulKeywords are case-insensitive substrings that block free-text
	// content.
	HarmfulKeywords []string
}

// Pipeline runs the stage checks with one fixed configuration.
type Pipeline struct {
	cfg Config
}

// New creates a pipeline, filling unset config fields with defaults.
func New(cfg Config) *Pipeline {
	if cfg.BudgetTolerance <= 0 {
		cfg.BudgetTolerance = 0.10
	}
	if cfg.MinQuestions <= 0 {
		cfg.MinQuestions = 5
	}
	if cfg.TrustedHosts == nil {
		cfg.TrustedHosts = defaultTrustedHosts()
	}
	if cfg.HarmfulKeywords == nil {
		cfg.HarmfulKeywords = defaultHarmfulKeywords()
	}
	return &Pipeline{cfg: cfg}
}

// Default returns a pipeline with the stock configuration.
func Default() *Pipeline {
	return New(Config{})
}
