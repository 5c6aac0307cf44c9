package guardrails

import (
	"fmt"

	"github.com/athiq-ahmed/certprep/internal/studyplan"
)

// CheckPlan validates a generated study plan.
func (p *Pipeline) CheckPlan(plan *studyplan.Plan) Result {
	var res Result
	if plan == nil {
		res.malformed("study plan is nil")
		return res
	}
	if len(plan.Tasks) == 0 {
		res.add(CodePlanEmpty, LevelWarn, "plan contains no tasks")
	}
	if plan.ReviewPeriod != plan.TotalPeriods {
		res.add(CodePlanReviewPeriod, LevelWarn,
			fmt.Sprintf("review period %d is not the final period %d", plan.ReviewPeriod, plan.TotalPeriods))
	}

	for _, task := range plan.Tasks {
		if task.DomainID == "" {
			res.malformed("plan task has empty domain id")
			continue
		}
		if task.Units < 0 {
			res.add(CodePlanUnitsNegative, LevelBlock,
				fmt.Sprintf("task %q has negative units %d", task.DomainID, task.Units))
		}
		if task.StartPeriod > task.EndPeriod {
			res.add(CodePlanScheduleOrder, LevelBlock,
				fmt.Sprintf("task %q starts in period %d after its end period %d", task.DomainID, task.StartPeriod, task.EndPeriod))
		}
		if task.StartPeriod < 1 || task.EndPeriod > plan.TotalPeriods {
			res.add(CodePlanPeriodBounds, LevelBlock,
				fmt.Sprintf("task %q range %d-%d falls outside periods 1-%d", task.DomainID, task.StartPeriod, task.EndPeriod, plan.TotalPeriods))
		}
	}

	budget := plan.TotalPeriods * plan.PeriodLength
	if budget > 0 {
		limit := float64(budget) * (1 + p.cfg.BudgetTolerance)
		if float64(plan.TotalUnits) > limit {
			res.add(CodePlanBudgetOverrun, LevelWarn,
				fmt.Sprintf("plan schedules %d units against a budget of %d (tolerance %.0f%%)",
					plan.TotalUnits, budget, p.cfg.BudgetTolerance*100))
		}
	}
	return res
}
