// Package profiler builds a learner profile from self-reported signals.
// Two implementations exist: a deterministic rule-based mapper over 0-5
// self-ratings, and an LLM-backed inferrer that reads the learner's
// free-text background. Both emit the same read-only profile.Learner.
package profiler

import (
	"context"

	"github.com/athiq-ahmed/certprep/internal/profile"
)

// Input collects everything a profiler may draw on.
type Input struct {
	SelfRatings    map[string]int // domain id -> 0 (never touched) .. 5 (expert)
	Certifications []string
	Background     string
	Goals          string
	ConcernTopics  []string
	ResourceURLs   []string
}

// Profiler turns profiler input into a learner profile.
type Profiler interface {
	Infer(ctx context.Context, in Input) (*profile.Learner, error)
}

// riskWeight is the exam weight at or above which a low-confidence domain
// is flagged as a risk.
const riskWeight = 0.15

// riskConfidence is the confidence below which a heavy domain is a risk.
const riskConfidence = 0.5

// atRisk reports whether a domain's weight/confidence combination makes it
// a risk domain. Both profilers share this rule so the flag means the same
// thing regardless of how the profile was produced.
func atRisk(weight, confidence float64) bool {
	return weight >= riskWeight && confidence < riskConfidence
}
