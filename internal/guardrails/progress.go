package guardrails

import (
	"fmt"

	"github.com/athiq-ahmed/certprep/internal/progress"
)

// behindScheduleRatio is the on-track ratio under which the snapshot stage
// warns that the learner is falling behind.
const behindScheduleRatio = 0.5

// CheckProgress validates a mid-plan progress snapshot.
func (p *Pipeline) CheckProgress(s *progress.Snapshot) Result {
	var res Result
	if s == nil {
		res.malformed("progress snapshot is nil")
		return res
	}
	if s.Exam == "" {
		res.malformed("progress snapshot has no exam code")
	}
	if s.PeriodsElapsed < 0 || s.PeriodsElapsed > s.TotalPeriods {
		res.add(CodeProgressPeriodsRange, LevelBlock,
			fmt.Sprintf("periods elapsed %d outside 0-%d", s.PeriodsElapsed, s.TotalPeriods))
	}
	if s.UnitsCompleted < 0 {
		res.add(CodeProgressUnitsRange, LevelBlock,
			fmt.Sprintf("units completed %d is negative", s.UnitsCompleted))
	}
	if s.UnitsPlanned >= 0 && s.UnitsCompleted > s.UnitsPlanned {
		res.add(CodeProgressOverPlanned, LevelWarn,
			fmt.Sprintf("units completed %d exceeds the %d planned", s.UnitsCompleted, s.UnitsPlanned))
	}
	for domain, frac := range s.DomainCompletion {
		if frac < 0 || frac > 1 {
			res.add(CodeProgressCompletion, LevelBlock,
				fmt.Sprintf("completion %.2f for domain %q outside 0.0-1.0", frac, domain))
		}
	}
	if s.OnTrackRatio() < behindScheduleRatio {
		res.add(CodeProgressBehindSchedule, LevelWarn,
			fmt.Sprintf("progress is at %.0f%% of the expected pace", s.OnTrackRatio()*100))
	}
	return res
}
