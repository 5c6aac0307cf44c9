// Package progress defines the mid-plan snapshot artifact checked by the
// guardrails pipeline and recorded in the history store.
package progress

// Snapshot captures how far a learner has gotten through a study plan.
// It is built fresh per check and never mutated afterwards.
type Snapshot struct {
	Exam             string
	PeriodsElapsed   int
	TotalPeriods     int
	UnitsCompleted   int
	UnitsPlanned     int
	DomainCompletion map[string]float64 // domain id -> fraction complete, 0.0-1.0
}

// OnTrackRatio compares completed work against the share of the schedule
// that has elapsed. 1.0 means exactly on pace, below 1.0 means behind.
// A snapshot with no elapsed time or no planned units reports 1.0.
func (s *Snapshot) OnTrackRatio() float64 {
	if s.TotalPeriods <= 0 || s.PeriodsElapsed <= 0 || s.UnitsPlanned <= 0 {
		return 1.0
	}
	expected := float64(s.UnitsPlanned) * float64(s.PeriodsElapsed) / float64(s.TotalPeriods)
	if expected <= 0 {
		return 1.0
	}
	return float64(s.UnitsCompleted) / expected
}
