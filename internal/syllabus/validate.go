package syllabus

import (
	"fmt"
	"math"
)

// weightSumTolerance is how far the domain weights may drift from 1.0
// before the catalog is rejected. Official syllabi round each domain to
// whole percentage points, so small drift is expected.
const weightSumTolerance = 0.01

// Validate checks the structural invariants of a catalog: non-empty
// identifiers, unique domain ids, weights in (0, 1] summing to ~1.0, and
// bank questions referencing known domains with sane answer indices.
func (c *Catalog) Validate() error {
	if c.Exam == "" {
		return fmt.Errorf("syllabus: catalog has empty exam code")
	}
	if c.Name == "" {
		return fmt.Errorf("syllabus: catalog %q has empty name", c.Exam)
	}
	if c.PassMarkPct < 0 || c.PassMarkPct > 100 {
		return fmt.Errorf("syllabus: catalog %q pass mark %.1f out of range", c.Exam, c.PassMarkPct)
	}
	if len(c.Domains) == 0 {
		return fmt.Errorf("syllabus: catalog %q has no domains", c.Exam)
	}

	seen := make(map[string]bool, len(c.Domains))
	sum := 0.0
	for _, d := range c.Domains {
		if d.ID == "" {
			return fmt.Errorf("syllabus: catalog %q has a domain with empty id", c.Exam)
		}
		if d.Name == "" {
			return fmt.Errorf("syllabus: domain %q in catalog %q has empty name", d.ID, c.Exam)
		}
		if seen[d.ID] {
			return fmt.Errorf("syllabus: duplicate domain id %q in catalog %q", d.ID, c.Exam)
		}
		seen[d.ID] = true
		if d.Weight <= 0 || d.Weight > 1 || math.IsNaN(d.Weight) {
			return fmt.Errorf("syllabus: domain %q weight %v out of (0,1]", d.ID, d.Weight)
		}
		sum += d.Weight
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("syllabus: catalog %q domain weights sum to %.4f, want 1.0", c.Exam, sum)
	}

	for domainID, qs := range c.bank {
		if !seen[domainID] {
			return fmt.Errorf("syllabus: bank references unknown domain %q in catalog %q", domainID, c.Exam)
		}
		qids := make(map[string]bool, len(qs))
		for _, q := range qs {
			if q.ID == "" {
				return fmt.Errorf("syllabus: domain %q has a question with empty id", domainID)
			}
			if qids[q.ID] {
				return fmt.Errorf("syllabus: duplicate question id %q in domain %q", q.ID, domainID)
			}
			qids[q.ID] = true
			if len(q.Choices) < 2 {
				return fmt.Errorf("syllabus: question %q has %d choices, want at least 2", q.ID, len(q.Choices))
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
				return fmt.Errorf("syllabus: question %q correct index %d out of range", q.ID, q.CorrectIndex)
			}
		}
	}
	return nil
}
