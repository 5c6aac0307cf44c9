package studyplan

import (
	"fmt"
	"sort"
	"strings"

	"github.com/athiq-ahmed/certprep/internal/allocate"
	"github.com/athiq-ahmed/certprep/internal/profile"
	"github.com/athiq-ahmed/certprep/internal/syllabus"
)

// skipSelfTestUnits is the fixed size of the self-test block scheduled for
// each skipped domain in the last study period.
const skipSelfTestUnits = 1

// Engine builds study plans against one exam catalog.
type Engine struct {
	catalog *syllabus.Catalog
}

// NewEngine creates an engine for the given catalog.
func NewEngine(c *syllabus.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Budget is the learner's available study time: totalPeriods scheduling
// periods (e.g. weeks) of periodLength units (e.g. study days) each.
type Budget struct {
	TotalPeriods int
	PeriodLength int
}

// Build turns a learner profile and a time budget into a Plan.
//
// The last period is always reserved for review; the remaining budget is
// split across active domains by exam weight scaled with the priority tier.
// Allocator errors (invalid weight, infeasible budget) propagate unchanged.
func (e *Engine) Build(learner *profile.Learner, budget Budget) (*Plan, error) {
	totalPeriods := budget.TotalPeriods
	if totalPeriods < 1 {
		totalPeriods = 1
	}
	periodLength := budget.PeriodLength
	if periodLength < 1 {
		periodLength = 1
	}

	// Every profiled domain must exist in the catalog; a typo here must
	// surface, not silently allocate zero time.
	for _, d := range learner.Domains {
		if _, err := e.catalog.Domain(d.DomainID); err != nil {
			return nil, err
		}
	}

	type classified struct {
		domain   syllabus.Domain
		prof     profile.DomainProfile
		priority Priority
	}

	// Walk the catalog in its canonical order so identical inputs always
	// classify and lay out identically. Domains missing from the profile
	// count as unknown.
	var active, skipped []classified
	for _, d := range e.catalog.Domains {
		p, ok := learner.Domain(d.ID)
		if !ok {
			p = profile.DomainProfile{DomainID: d.ID, Level: profile.LevelUnknown}
		}
		c := classified{domain: d, prof: p, priority: classify(p)}
		if c.priority == PrioritySkip {
			skipped = append(skipped, c)
		} else {
			active = append(active, c)
		}
	}

	plan := &Plan{
		Exam:         e.catalog.Exam,
		ReviewPeriod: totalPeriods,
		TotalPeriods: totalPeriods,
		PeriodLength: periodLength,
	}
	e.applyPrerequisites(learner, plan)

	lastStudyPeriod := totalPeriods - 1
	if lastStudyPeriod < 1 {
		lastStudyPeriod = 1
	}

	if len(active) > 0 {
		allocatable := (totalPeriods - 1) * periodLength
		req := allocate.Request{TotalUnits: allocatable}
		for _, c := range active {
			req.Items = append(req.Items, allocate.Item{
				Key:     c.domain.ID,
				Weight:  c.domain.Weight * c.priority.Multiplier(),
				Minimum: 1,
			})
		}
		units, err := allocate.Split(req)
		if err != nil {
			return nil, fmt.Errorf("allocating study units: %w", err)
		}

		// Critical work comes first; within a tier the catalog order holds.
		sort.SliceStable(active, func(i, j int) bool {
			return active[i].priority < active[j].priority
		})

		offset := 0
		for _, c := range active {
			n := units[c.domain.ID]
			task := Task{
				DomainID:      c.domain.ID,
				DomainName:    c.domain.Name,
				Units:         n,
				Priority:      c.priority,
				ConfidencePct: c.prof.Confidence * 100,
				StartPeriod:   offset/periodLength + 1,
				EndPeriod:     (offset+n-1)/periodLength + 1,
			}
			offset += n
			plan.Tasks = append(plan.Tasks, task)
			plan.TotalUnits += n
		}
	}

	// Skipped domains get a short self-test right before review.
	for _, c := range skipped {
		plan.Tasks = append(plan.Tasks, Task{
			DomainID:      c.domain.ID,
			DomainName:    c.domain.Name,
			StartPeriod:   lastStudyPeriod,
			EndPeriod:     lastStudyPeriod,
			Units:         skipSelfTestUnits,
			Priority:      PrioritySkip,
			ConfidencePct: c.prof.Confidence * 100,
		})
		plan.TotalUnits += skipSelfTestUnits
	}

	return plan, nil
}

// classify maps a domain profile onto a priority tier.
func classify(p profile.DomainProfile) Priority {
	switch {
	case p.SkipRecommended:
		return PrioritySkip
	case p.Level == profile.LevelUnknown:
		return PriorityCritical
	case p.Risk && p.Level == profile.LevelWeak:
		return PriorityCritical
	case p.Level == profile.LevelWeak || p.Risk:
		return PriorityHigh
	case p.Level == profile.LevelModerate:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// applyPrerequisites flags missing strongly-recommended prerequisites and
// records advisory strings for the rest.
func (e *Engine) applyPrerequisites(learner *profile.Learner, plan *Plan) {
	held := make(map[string]bool, len(learner.Certifications))
	for _, c := range learner.Certifications {
		held[strings.ToLower(strings.TrimSpace(c))] = true
	}
	for _, pr := range e.catalog.Prerequisites {
		if held[strings.ToLower(pr.Cert)] {
			continue
		}
		switch pr.Strength {
		case syllabus.PrereqRequired:
			plan.PrerequisiteGap = true
			plan.Advisories = append(plan.Advisories,
				fmt.Sprintf("Strongly recommended prerequisite %q is missing; plan extra foundation time before the schedule starts.", pr.Cert))
		default:
			plan.Advisories = append(plan.Advisories,
				fmt.Sprintf("Recommended prerequisite %q is missing.", pr.Cert))
		}
	}
}
