package assessment

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/athiq-ahmed/certprep/internal/allocate"
	"github.com/athiq-ahmed/certprep/internal/profile"
	"github.com/athiq-ahmed/certprep/internal/syllabus"
)

// bankCatalog builds a three-domain catalog with the given per-domain bank
// sizes.
func bankCatalog(t *testing.T, sizes map[string]int) *syllabus.Catalog {
	t.Helper()
	domains := []syllabus.Domain{
		{ID: "net", Name: "Networking", Weight: 0.5},
		{ID: "sec", Name: "Security", Weight: 0.3},
		{ID: "ops", Name: "Operations", Weight: 0.2},
	}
	var questions []syllabus.Question
	for _, d := range domains {
		for i := 0; i < sizes[d.ID]; i++ {
			questions = append(questions, syllabus.Question{
				ID:           fmt.Sprintf("%s-%d", d.ID, i),
				DomainID:     d.ID,
				Text:         fmt.Sprintf("Question %d on %s?", i, d.Name),
				Choices:      []string{"first", "second", "third"},
				CorrectIndex: i % 3,
				Difficulty:   i%5 + 1,
			})
		}
	}
	c := syllabus.NewCatalog("bank-cert", "Bank Certification", 60, domains, nil, questions)
	if err := c.Validate(); err != nil {
		t.Fatalf("fixture catalog invalid: %v", err)
	}
	return c
}

func TestGenerateExactCount(t *testing.T) {
	s := NewSampler(bankCatalog(t, map[string]int{"net": 10, "sec": 10, "ops": 10}), 7)
	a, err := s.Generate(nil, 12)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(a.Questions) != 12 {
		t.Fatalf("Generate(12) returned %d questions", len(a.Questions))
	}
	if len(a.Shortfall) != 0 {
		t.Errorf("Shortfall = %v, want empty", a.Shortfall)
	}
	if a.PassMarkPct != 60 {
		t.Errorf("PassMarkPct = %v, want 60", a.PassMarkPct)
	}
	if a.ID == "" {
		t.Error("assessment has empty id")
	}

	// weight split: 6 / 3.6 / 2.4 -> 6 / 4 / 2
	byDomain := make(map[string]int)
	for _, q := range a.Questions {
		byDomain[q.DomainID]++
	}
	want := map[string]int{"net": 6, "sec": 4, "ops": 2}
	if !reflect.DeepEqual(byDomain, want) {
		t.Errorf("per-domain counts = %v, want %v", byDomain, want)
	}

	// no duplicate questions
	seen := make(map[string]bool)
	for _, q := range a.Questions {
		if seen[q.ID] {
			t.Errorf("question %s drawn twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestGenerateInterleaves(t *testing.T) {
	s := NewSampler(bankCatalog(t, map[string]int{"net": 10, "sec": 10, "ops": 10}), 42)
	a, err := s.Generate(nil, 15)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for i := 1; i < len(a.Questions); i++ {
		if a.Questions[i].DomainID == a.Questions[i-1].DomainID {
			t.Errorf("questions %d and %d both from %s", i-1, i, a.Questions[i].DomainID)
		}
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	c := bankCatalog(t, map[string]int{"net": 10, "sec": 10, "ops": 10})
	first, err := NewSampler(c, 99).Generate(nil, 10)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	second, err := NewSampler(c, 99).Generate(nil, 10)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for i := range first.Questions {
		if first.Questions[i].ID != second.Questions[i].ID {
			t.Fatalf("question %d differs across runs with same seed", i)
		}
	}
}

func TestGenerateExcludesSkipDomains(t *testing.T) {
	s := NewSampler(bankCatalog(t, map[string]int{"net": 10, "sec": 10, "ops": 10}), 3)
	learner := &profile.Learner{
		Domains: []profile.DomainProfile{
			{DomainID: "ops", SkipRecommended: true},
		},
	}
	a, err := s.Generate(learner, 8)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for _, q := range a.Questions {
		if q.DomainID == "ops" {
			t.Fatalf("skip-recommended domain ops appeared in quiz")
		}
	}
	if len(a.Questions) != 8 {
		t.Errorf("Generate(8) returned %d questions", len(a.Questions))
	}
}

func TestGenerateShortfallNotRedistributed(t *testing.T) {
	// sec's bank cannot cover its allocation; the quiz comes up short
	// rather than borrowing from other domains
	s := NewSampler(bankCatalog(t, map[string]int{"net": 10, "sec": 1, "ops": 10}), 5)
	a, err := s.Generate(nil, 10)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if a.Shortfall["sec"] != 2 {
		t.Errorf("Shortfall[sec] = %d, want 2", a.Shortfall["sec"])
	}
	if len(a.Questions) != 8 {
		t.Errorf("question count = %d, want 8 (10 minus shortfall)", len(a.Questions))
	}
}

func TestGenerateInfeasibleCount(t *testing.T) {
	s := NewSampler(bankCatalog(t, map[string]int{"net": 10, "sec": 10, "ops": 10}), 1)
	if _, err := s.Generate(nil, 2); !errors.Is(err, allocate.ErrInfeasible) {
		t.Fatalf("Generate(2) error = %v, want ErrInfeasible", err)
	}
}

func TestEvaluateSchemaMismatch(t *testing.T) {
	s := NewSampler(bankCatalog(t, map[string]int{"net": 10, "sec": 10, "ops": 10}), 1)
	a, err := s.Generate(nil, 10)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if _, err := Evaluate(a, make([]int, 9)); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("Evaluate() with 9 answers: error = %v, want ErrSchemaMismatch", err)
	}
	if _, err := Evaluate(a, make([]int, 11)); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("Evaluate() with 11 answers: error = %v, want ErrSchemaMismatch", err)
	}
}

func TestEvaluateScoring(t *testing.T) {
	s := NewSampler(bankCatalog(t, map[string]int{"net": 10, "sec": 10, "ops": 10}), 11)
	a, err := s.Generate(nil, 10)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// answer everything correctly except the sec questions
	answers := make([]int, len(a.Questions))
	for i, q := range a.Questions {
		if q.DomainID == "sec" {
			answers[i] = (q.CorrectIndex + 1) % len(q.Choices)
		} else {
			answers[i] = q.CorrectIndex
		}
	}

	res, err := Evaluate(a, answers)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	// split is 5/3/2, so 7 of 10 correct
	if res.Correct != 7 {
		t.Errorf("Correct = %d, want 7", res.Correct)
	}
	if res.ScorePct != 70 {
		t.Errorf("ScorePct = %v, want 70", res.ScorePct)
	}
	if !res.Passed {
		t.Error("Passed = false at 70%% against a 60%% pass mark")
	}
	if res.DomainScores["sec"] != 0 || res.DomainScores["net"] != 100 {
		t.Errorf("DomainScores = %v", res.DomainScores)
	}
	if !reflect.DeepEqual(res.WeakDomains, []string{"sec"}) {
		t.Errorf("WeakDomains = %v, want [sec]", res.WeakDomains)
	}
}

func TestEvaluateWeakDomainsRankedAscending(t *testing.T) {
	a := &Assessment{
		Exam:        "bank-cert",
		PassMarkPct: 60,
		Questions: []syllabus.Question{
			{ID: "n1", DomainID: "net", Choices: []string{"a", "b"}, CorrectIndex: 0},
			{ID: "n2", DomainID: "net", Choices: []string{"a", "b"}, CorrectIndex: 0},
			{ID: "s1", DomainID: "sec", Choices: []string{"a", "b"}, CorrectIndex: 0},
			{ID: "s2", DomainID: "sec", Choices: []string{"a", "b"}, CorrectIndex: 0},
			{ID: "o1", DomainID: "ops", Choices: []string{"a", "b"}, CorrectIndex: 0},
		},
	}
	// net 1/2 = 50%, sec 0/2 = 0%, ops 1/1 = 100%
	answers := []int{0, 1, 1, 1, 0}

	res, err := Evaluate(a, answers)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !reflect.DeepEqual(res.WeakDomains, []string{"sec", "net"}) {
		t.Errorf("WeakDomains = %v, want [sec net] (worst first)", res.WeakDomains)
	}
	if res.Passed {
		t.Error("Passed = true at 40%%")
	}
}
