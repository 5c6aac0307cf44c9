// Package studyplan builds a week-by-week study schedule from a learner
// profile and a time budget. Study time is spread across syllabus domains
// proportionally to exam weight scaled by a priority tier, the final period
// is always reserved for review, and skipped domains get a short self-test
// immediately before it.
package studyplan

// Priority classifies how urgently a domain needs study time.
type Priority int

const (
	PriorityCritical Priority = iota // unknown material, or risk on a weak domain
	PriorityHigh
	PriorityMedium
	PriorityLow
	PrioritySkip   // learner already covers it; self-test only
	PriorityReview // the reserved final period
)

// String returns the lowercase tier name.
func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	case PrioritySkip:
		return "skip"
	case PriorityReview:
		return "review"
	default:
		return "invalid"
	}
}

// Multiplier returns the weight scaling factor applied to the domain's
// official exam weight before allocation. Skip and Review take no share of
// the allocatable budget.
func (p Priority) Multiplier() float64 {
	switch p {
	case PriorityCritical:
		return 2.0
	case PriorityHigh:
		return 1.5
	case PriorityMedium:
		return 1.0
	case PriorityLow:
		return 0.5
	default:
		return 0
	}
}

// Task is one scheduled block of study for a single domain.
// StartPeriod and EndPeriod are 1-based and inclusive.
type Task struct {
	DomainID      string
	DomainName    string
	StartPeriod   int
	EndPeriod     int
	Units         int
	Priority      Priority
	ConfidencePct float64
}

// Plan is the complete schedule for one exam attempt.
type Plan struct {
	Exam            string
	Tasks           []Task
	ReviewPeriod    int
	PrerequisiteGap bool
	Advisories      []string
	TotalPeriods    int
	PeriodLength    int // units per period
	TotalUnits      int
}
