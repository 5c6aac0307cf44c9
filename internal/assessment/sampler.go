// Package assessment builds and scores domain-weighted quizzes from an exam
// catalog's question bank. Question counts per domain follow the same
// Largest Remainder allocation the study plan uses, so a quiz mirrors the
// official weight split of the exam.
package assessment

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/athiq-ahmed/certprep/internal/allocate"
	"github.com/athiq-ahmed/certprep/internal/profile"
	"github.com/athiq-ahmed/certprep/internal/syllabus"
)

// ErrSchemaMismatch is returned by Evaluate when the answer list does not
// line up with the question list.
var ErrSchemaMismatch = errors.New("assessment: answer count does not match question count")

// defaultPassMark is used when the catalog does not set its own pass mark.
const defaultPassMark = 60.0

// weakThreshold is the per-domain score below which a domain is reported
// as weak.
const weakThreshold = 60.0

// Assessment is a generated quiz.
//
// Shortfall records domains whose bank held fewer questions than their
// allocation. The missing questions are NOT redistributed to other domains;
// the gap is surfaced here so the caller can decide what to do about a
// thin bank.
type Assessment struct {
	ID          string
	Exam        string
	Questions   []syllabus.Question
	PassMarkPct float64
	Shortfall   map[string]int
}

// Result is the outcome of scoring an assessment.
type Result struct {
	ScorePct     float64
	Passed       bool
	Correct      int
	Total        int
	DomainScores map[string]float64
	WeakDomains  []string // domains under the weak threshold, worst first
}

// Sampler draws quizzes from one catalog. The seed fixes question selection
// and ordering, so a stored seed reproduces the exact same quiz.
type Sampler struct {
	catalog *syllabus.Catalog
	seed    int64
}

// NewSampler creates a sampler for the catalog with the given shuffle seed.
func NewSampler(c *syllabus.Catalog, seed int64) *Sampler {
	return &Sampler{catalog: c, seed: seed}
}

// Generate builds an n-question quiz weighted by the official domain
// weights. Domains the profile marks as skip-recommended are excluded.
// Allocator errors (e.g. n smaller than the number of active domains)
// propagate unchanged.
func (s *Sampler) Generate(learner *profile.Learner, n int) (*Assessment, error) {
	domains := s.activeDomains(learner)

	req := allocate.Request{TotalUnits: n}
	for _, d := range domains {
		req.Items = append(req.Items, allocate.Item{Key: d.ID, Weight: d.Weight, Minimum: 1})
	}
	counts, err := allocate.Split(req)
	if err != nil {
		return nil, fmt.Errorf("allocating question counts: %w", err)
	}

	rng := rand.New(rand.NewSource(s.seed))
	a := &Assessment{
		ID:          uuid.NewString(),
		Exam:        s.catalog.Exam,
		PassMarkPct: s.passMark(),
		Shortfall:   make(map[string]int),
	}

	// Draw without replacement per domain, keeping draws grouped for the
	// interleaving pass below.
	perDomain := make([][]syllabus.Question, 0, len(domains))
	for _, d := range domains {
		bank, err := s.catalog.Questions(d.ID)
		if err != nil {
			return nil, err
		}
		want := counts[d.ID]
		take := want
		if take > len(bank) {
			a.Shortfall[d.ID] = want - len(bank)
			take = len(bank)
		}
		drawn := make([]syllabus.Question, 0, take)
		for _, idx := range rng.Perm(len(bank))[:take] {
			drawn = append(drawn, bank[idx])
		}
		perDomain = append(perDomain, drawn)
	}

	a.Questions = interleave(perDomain)
	return a, nil
}

// Evaluate scores an assessment against the learner's chosen answer
// indices. An out-of-range or negative index simply counts as wrong; a
// wrong-length answer list is a hard error.
func Evaluate(a *Assessment, answers []int) (*Result, error) {
	if len(answers) != len(a.Questions) {
		return nil, fmt.Errorf("%w: %d answers for %d questions", ErrSchemaMismatch, len(answers), len(a.Questions))
	}

	res := &Result{
		Total:        len(a.Questions),
		DomainScores: make(map[string]float64),
	}

	correctByDomain := make(map[string]int)
	totalByDomain := make(map[string]int)
	var domainOrder []string
	for i, q := range a.Questions {
		if totalByDomain[q.DomainID] == 0 {
			domainOrder = append(domainOrder, q.DomainID)
		}
		totalByDomain[q.DomainID]++
		if answers[i] == q.CorrectIndex {
			correctByDomain[q.DomainID]++
			res.Correct++
		}
	}

	if res.Total > 0 {
		res.ScorePct = float64(res.Correct) / float64(res.Total) * 100
	}
	res.Passed = res.ScorePct >= a.PassMarkPct

	for _, id := range domainOrder {
		res.DomainScores[id] = float64(correctByDomain[id]) / float64(totalByDomain[id]) * 100
	}
	res.WeakDomains = rankWeak(domainOrder, res.DomainScores)

	return res, nil
}

// activeDomains returns the catalog domains minus any the profile marks
// skip-recommended, in catalog order.
func (s *Sampler) activeDomains(learner *profile.Learner) []syllabus.Domain {
	var out []syllabus.Domain
	for _, d := range s.catalog.Domains {
		if learner != nil {
			if p, ok := learner.Domain(d.ID); ok && p.SkipRecommended {
				continue
			}
		}
		out = append(out, d)
	}
	return out
}

func (s *Sampler) passMark() float64 {
	if s.catalog.PassMarkPct > 0 {
		return s.catalog.PassMarkPct
	}
	return defaultPassMark
}

// interleave merges per-domain question groups so that no two consecutive
// questions share a domain whenever the counts make that avoidable: always
// emit from the largest remaining group that differs from the previous
// domain, falling back to the largest overall when only one domain remains.
func interleave(groups [][]syllabus.Question) []syllabus.Question {
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	out := make([]syllabus.Question, 0, total)

	lastDomain := ""
	for len(out) < total {
		best := -1
		for i, g := range groups {
			if len(g) == 0 {
				continue
			}
			if g[0].DomainID == lastDomain {
				continue
			}
			if best == -1 || len(g) > len(groups[best]) {
				best = i
			}
		}
		if best == -1 {
			// Only the previous domain has questions left.
			for i, g := range groups {
				if len(g) > 0 {
					best = i
					break
				}
			}
		}
		q := groups[best][0]
		groups[best] = groups[best][1:]
		out = append(out, q)
		lastDomain = q.DomainID
	}
	return out
}

// rankWeak returns the domains scoring under the weak threshold, worst
// score first, ties kept in first-appearance order.
func rankWeak(domainOrder []string, scores map[string]float64) []string {
	var weak []string
	for _, id := range domainOrder {
		if scores[id] < weakThreshold {
			weak = append(weak, id)
		}
	}
	for i := 1; i < len(weak); i++ {
		for j := i; j > 0 && scores[weak[j]] < scores[weak[j-1]]; j-- {
			weak[j], weak[j-1] = weak[j-1], weak[j]
		}
	}
	return weak
}
