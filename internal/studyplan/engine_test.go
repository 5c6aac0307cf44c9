package studyplan

import (
	"errors"
	"testing"

	"github.com/athiq-ahmed/certprep/internal/allocate"
	"github.com/athiq-ahmed/certprep/internal/profile"
	"github.com/athiq-ahmed/certprep/internal/syllabus"
)

func testCatalog(t *testing.T) *syllabus.Catalog {
	t.Helper()
	c := syllabus.NewCatalog("test-cert", "Test Certification", 60,
		[]syllabus.Domain{
			{ID: "security", Name: "Security", Weight: 0.4},
			{ID: "networking", Name: "Networking", Weight: 0.35},
			{ID: "storage", Name: "Storage", Weight: 0.25},
		},
		[]syllabus.Prerequisite{
			{Cert: "base-cert", Strength: syllabus.PrereqRequired},
			{Cert: "nice-to-have", Strength: syllabus.PrereqRecommended},
		},
		nil,
	)
	if err := c.Validate(); err != nil {
		t.Fatalf("fixture catalog invalid: %v", err)
	}
	return c
}

func testLearner() *profile.Learner {
	return &profile.Learner{
		Exam: "test-cert",
		Domains: []profile.DomainProfile{
			{DomainID: "security", Level: profile.LevelWeak, Confidence: 0.3, Risk: true},
			{DomainID: "networking", Level: profile.LevelModerate, Confidence: 0.6},
			{DomainID: "storage", Level: profile.LevelStrong, Confidence: 0.9},
		},
		Certifications: []string{"base-cert"},
	}
}

func TestBuildLayout(t *testing.T) {
	engine := NewEngine(testCatalog(t))
	plan, err := engine.Build(testLearner(), Budget{TotalPeriods: 8, PeriodLength: 5})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if plan.ReviewPeriod != 8 {
		t.Errorf("ReviewPeriod = %d, want 8", plan.ReviewPeriod)
	}
	if plan.TotalUnits != 35 {
		t.Errorf("TotalUnits = %d, want 35 (7 study periods x 5 units)", plan.TotalUnits)
	}
	if len(plan.Tasks) != 3 {
		t.Fatalf("Tasks = %d, want 3", len(plan.Tasks))
	}

	// risk+weak security outranks moderate networking outranks strong storage
	if plan.Tasks[0].DomainID != "security" || plan.Tasks[0].Priority != PriorityCritical {
		t.Errorf("first task = %s/%s, want security/critical", plan.Tasks[0].DomainID, plan.Tasks[0].Priority)
	}
	if plan.Tasks[1].Priority != PriorityMedium || plan.Tasks[2].Priority != PriorityLow {
		t.Errorf("tier order wrong: %s, %s", plan.Tasks[1].Priority, plan.Tasks[2].Priority)
	}

	// consecutive, non-overlapping, inside the study window
	offset := 0
	for _, task := range plan.Tasks {
		if task.StartPeriod > task.EndPeriod || task.EndPeriod > plan.TotalPeriods {
			t.Errorf("task %s has period range %d-%d outside 1-%d",
				task.DomainID, task.StartPeriod, task.EndPeriod, plan.TotalPeriods)
		}
		wantStart := offset/plan.PeriodLength + 1
		if task.StartPeriod != wantStart {
			t.Errorf("task %s starts in period %d, want %d", task.DomainID, task.StartPeriod, wantStart)
		}
		if task.EndPeriod >= plan.ReviewPeriod {
			t.Errorf("task %s runs into the review period", task.DomainID)
		}
		offset += task.Units
	}
	if offset != 35 {
		t.Errorf("allocated units = %d, want 35", offset)
	}
}

func TestBuildSkipBlockPlacement(t *testing.T) {
	engine := NewEngine(testCatalog(t))
	learner := testLearner()
	learner.Domains[2].SkipRecommended = true

	plan, err := engine.Build(learner, Budget{TotalPeriods: 6, PeriodLength: 4})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	var skip *Task
	for i := range plan.Tasks {
		if plan.Tasks[i].Priority == PrioritySkip {
			skip = &plan.Tasks[i]
		}
	}
	if skip == nil {
		t.Fatal("no skip task scheduled")
	}
	if skip.DomainID != "storage" {
		t.Errorf("skip task domain = %q, want storage", skip.DomainID)
	}
	if skip.StartPeriod != 5 || skip.EndPeriod != 5 {
		t.Errorf("skip block in period %d-%d, want the final study period 5", skip.StartPeriod, skip.EndPeriod)
	}
}

func TestBuildPrerequisiteGap(t *testing.T) {
	engine := NewEngine(testCatalog(t))

	learner := testLearner()
	learner.Certifications = nil
	plan, err := engine.Build(learner, Budget{TotalPeriods: 4, PeriodLength: 5})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !plan.PrerequisiteGap {
		t.Error("PrerequisiteGap = false, want true when required cert missing")
	}
	if len(plan.Advisories) != 2 {
		t.Errorf("Advisories = %v, want entries for both missing prerequisites", plan.Advisories)
	}

	// holding the required cert clears the gap but keeps the
	// recommended-cert advisory
	learner.Certifications = []string{"Base-Cert"}
	plan, err = engine.Build(learner, Budget{TotalPeriods: 4, PeriodLength: 5})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if plan.PrerequisiteGap {
		t.Error("PrerequisiteGap = true despite held required cert")
	}
	if len(plan.Advisories) != 1 {
		t.Errorf("Advisories = %v, want only the recommended-cert note", plan.Advisories)
	}
}

func TestBuildClampsPeriods(t *testing.T) {
	engine := NewEngine(testCatalog(t))
	learner := &profile.Learner{Exam: "test-cert"} // no profiled domains: all unknown

	// zero periods clamps to 1, leaving no study budget for three active
	// domains with minimum 1 each
	_, err := engine.Build(learner, Budget{TotalPeriods: 0, PeriodLength: 5})
	if !errors.Is(err, allocate.ErrInfeasible) {
		t.Fatalf("Build() error = %v, want ErrInfeasible", err)
	}
}

func TestBuildAllSkipped(t *testing.T) {
	engine := NewEngine(testCatalog(t))
	learner := testLearner()
	for i := range learner.Domains {
		learner.Domains[i].SkipRecommended = true
	}

	plan, err := engine.Build(learner, Budget{TotalPeriods: 3, PeriodLength: 2})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(plan.Tasks) != 3 {
		t.Fatalf("Tasks = %d, want 3 self-test blocks", len(plan.Tasks))
	}
	for _, task := range plan.Tasks {
		if task.Priority != PrioritySkip {
			t.Errorf("task %s priority = %s, want skip", task.DomainID, task.Priority)
		}
		if task.StartPeriod != 2 || task.EndPeriod != 2 {
			t.Errorf("task %s in period %d-%d, want 2-2", task.DomainID, task.StartPeriod, task.EndPeriod)
		}
	}
}

func TestBuildUnknownProfileDomain(t *testing.T) {
	engine := NewEngine(testCatalog(t))
	learner := testLearner()
	learner.Domains = append(learner.Domains, profile.DomainProfile{DomainID: "ghost"})

	_, err := engine.Build(learner, Budget{TotalPeriods: 4, PeriodLength: 5})
	if !errors.Is(err, syllabus.ErrDomainNotFound) {
		t.Fatalf("Build() error = %v, want ErrDomainNotFound", err)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		p    profile.DomainProfile
		want Priority
	}{
		{"unknown", profile.DomainProfile{Level: profile.LevelUnknown}, PriorityCritical},
		{"risk and weak", profile.DomainProfile{Level: profile.LevelWeak, Risk: true}, PriorityCritical},
		{"weak", profile.DomainProfile{Level: profile.LevelWeak}, PriorityHigh},
		{"risk on moderate", profile.DomainProfile{Level: profile.LevelModerate, Risk: true}, PriorityHigh},
		{"moderate", profile.DomainProfile{Level: profile.LevelModerate}, PriorityMedium},
		{"strong", profile.DomainProfile{Level: profile.LevelStrong}, PriorityLow},
		{"skip wins", profile.DomainProfile{Level: profile.LevelStrong, SkipRecommended: true}, PrioritySkip},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.p); got != tt.want {
				t.Errorf("classify() = %s, want %s", got, tt.want)
			}
		})
	}
}
