// Package render formats plans, assessment results, and guardrail
// findings for terminal output.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/athiq-ahmed/certprep/internal/assessment"
	"github.com/athiq-ahmed/certprep/internal/guardrails"
	"github.com/athiq-ahmed/certprep/internal/store"
	"github.com/athiq-ahmed/certprep/internal/studyplan"
)

// Plan renders a study plan as a period-by-period schedule.
func Plan(p *studyplan.Plan) string {
	if p == nil {
		return dimStyle.Render("no plan")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Study plan: %s", p.Exam)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d periods of %d units (%d study units total)",
		p.TotalPeriods, p.PeriodLength, p.TotalUnits)))
	b.WriteString("\n\n")

	for _, t := range p.Tasks {
		span := fmt.Sprintf("periods %d-%d", t.StartPeriod, t.EndPeriod)
		if t.StartPeriod == t.EndPeriod {
			span = fmt.Sprintf("period %d", t.StartPeriod)
		}
		line := fmt.Sprintf("%-12s  %-28s %3d units  [%s]",
			span, t.DomainName, t.Units, t.Priority)
		if t.Priority == studyplan.PriorityCritical {
			b.WriteString(failStyle.Render(line))
		} else {
			b.WriteString(bodyStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(bodyStyle.Render(fmt.Sprintf("Review: period %d (full pass before the exam)", p.ReviewPeriod)))
	b.WriteString("\n")

	if p.PrerequisiteGap {
		b.WriteString(failStyle.Render("Prerequisite gap detected"))
		b.WriteString("\n")
	}
	for _, a := range p.Advisories {
		b.WriteString(warnStyle.Render("• " + a))
		b.WriteString("\n")
	}
	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// AssessmentResult renders an evaluated attempt with per-domain scores.
func AssessmentResult(a *assessment.Assessment, r *assessment.Result) string {
	if a == nil || r == nil {
		return dimStyle.Render("no result")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Assessment: %s", a.Exam)))
	b.WriteString("\n")

	verdict := failStyle.Render("FAIL")
	if r.Passed {
		verdict = passStyle.Render("PASS")
	}
	b.WriteString(fmt.Sprintf("%s  %s\n\n", verdict,
		bodyStyle.Render(fmt.Sprintf("%.1f%% (%d/%d correct, pass mark %.0f%%)",
			r.ScorePct, r.Correct, r.Total, a.PassMarkPct))))

	ids := make([]string, 0, len(r.DomainScores))
	for id := range r.DomainScores {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		line := fmt.Sprintf("%-28s %5.1f%%", id, r.DomainScores[id])
		if isWeak(r, id) {
			b.WriteString(warnStyle.Render(line + "  (weak)"))
		} else {
			b.WriteString(bodyStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if len(r.WeakDomains) > 0 {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render("Focus next: " + strings.Join(r.WeakDomains, ", ")))
		b.WriteString("\n")
	}
	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// Guardrails renders violations grouped under a blocked/clear verdict.
// Returns the empty string when there is nothing to report.
func Guardrails(r guardrails.Result) string {
	if len(r.Violations) == 0 {
		return ""
	}

	var b strings.Builder
	if r.Blocked {
		b.WriteString(failStyle.Render("Blocked by guardrails"))
	} else {
		b.WriteString(warnStyle.Render("Guardrail findings"))
	}
	b.WriteString("\n")

	for _, v := range r.Violations {
		line := fmt.Sprintf("[%s] %s: %s", v.Level, v.Code, v.Message)
		switch v.Level {
		case guardrails.LevelBlock:
			b.WriteString(failStyle.Render(line))
		case guardrails.LevelWarn:
			b.WriteString(warnStyle.Render(line))
		default:
			b.WriteString(dimStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// PlanHistory renders stored plan runs, newest first.
func PlanHistory(recs []store.PlanRecord) string {
	if len(recs) == 0 {
		return dimStyle.Render("no plan runs recorded")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Plan history"))
	b.WriteString("\n")
	for _, rec := range recs {
		b.WriteString(bodyStyle.Render(fmt.Sprintf("%s  %-20s %2d periods × %d  %3d units  %d tasks",
			rec.CreatedAt.Format("2006-01-02 15:04"), rec.Exam,
			rec.TotalPeriods, rec.PeriodLength, rec.TotalUnits, len(rec.Tasks))))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// AttemptHistory renders stored assessment attempts, newest first.
func AttemptHistory(recs []store.AttemptRecord) string {
	if len(recs) == 0 {
		return dimStyle.Render("no attempts recorded")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Attempt history"))
	b.WriteString("\n")
	for _, rec := range recs {
		verdict := failStyle.Render("fail")
		if rec.Passed {
			verdict = passStyle.Render("pass")
		}
		b.WriteString(fmt.Sprintf("%s  %-20s %5.1f%%  %s  (%d/%d)\n",
			dimStyle.Render(rec.CreatedAt.Format("2006-01-02 15:04")), rec.Exam,
			rec.ScorePct, verdict, rec.Correct, rec.Total))
	}
	return strings.TrimRight(b.String(), "\n")
}

func isWeak(r *assessment.Result, id string) bool {
	for _, w := range r.WeakDomains {
		if w == id {
			return true
		}
	}
	return false
}
