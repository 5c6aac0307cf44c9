// Package syllabus holds the static per-exam configuration: domain weights,
// prerequisite recommendations, and the question bank. Catalogs are loaded
// once at startup and never mutated; every consumer receives them by
// explicit injection so multiple exams can coexist and tests can substitute
// fixtures.
package syllabus

import (
	"errors"
	"fmt"
)

var (
	// ErrExamNotFound is returned when a registry lookup names an exam
	// that was never registered.
	ErrExamNotFound = errors.New("syllabus: exam not found")

	// ErrDomainNotFound is returned when a catalog lookup names a domain
	// that is not part of the exam.
	ErrDomainNotFound = errors.New("syllabus: domain not found")
)

// Domain is one syllabus subject area with its official scoring weight.
type Domain struct {
	ID     string
	Name   string
	Weight float64 // fraction of the exam score, (0, 1]
}

// PrereqStrength says how strongly a prerequisite certification is advised.
type PrereqStrength int

const (
	PrereqRecommended PrereqStrength = iota
	PrereqRequired                   // strongly recommended; absence flags a gap
)

// Prerequisite names a certification the exam builds on.
type Prerequisite struct {
	Cert     string
	Strength PrereqStrength
}

// Question is one bank entry for a domain.
type Question struct {
	ID           string
	DomainID     string
	Text         string
	Choices      []string
	CorrectIndex int
	Difficulty   int // 1 (easy) - 5 (hard)
}

// Catalog is the complete static configuration for one exam.
type Catalog struct {
	Exam          string // short code, e.g. "aws-saa"
	Name          string
	PassMarkPct   float64
	Domains       []Domain
	Prerequisites []Prerequisite
	bank          map[string][]Question
}

// NewCatalog builds a catalog and indexes its question bank.
// The domain slice order is the catalog's canonical order; allocation
// tie-breaks and plan layout both follow it.
func NewCatalog(exam, name string, passMark float64, domains []Domain, prereqs []Prerequisite, questions []Question) *Catalog {
	c := &Catalog{
		Exam:          exam,
		Name:          name,
		PassMarkPct:   passMark,
		Domains:       domains,
		Prerequisites: prereqs,
		bank:          make(map[string][]Question),
	}
	for _, q := range questions {
		c.bank[q.DomainID] = append(c.bank[q.DomainID], q)
	}
	return c
}

// Domain returns the domain with the given id.
func (c *Catalog) Domain(id string) (Domain, error) {
	for _, d := range c.Domains {
		if d.ID == id {
			return d, nil
		}
	}
	return Domain{}, fmt.Errorf("%w: %q in exam %q", ErrDomainNotFound, id, c.Exam)
}

// Questions returns the bank entries for a domain. A registered domain with
// an empty bank returns an empty slice; an unknown domain id is an error.
func (c *Catalog) Questions(domainID string) ([]Question, error) {
	if _, err := c.Domain(domainID); err != nil {
		return nil, err
	}
	return c.bank[domainID], nil
}

// BankSize returns the total number of questions across all domains.
func (c *Catalog) BankSize() int {
	n := 0
	for _, qs := range c.bank {
		n += len(qs)
	}
	return n
}

// Registry holds all known exam catalogs, in registration order.
type Registry struct {
	catalogs map[string]*Catalog
	order    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{catalogs: make(map[string]*Catalog)}
}

// Register adds a catalog after validating it. Re-registering an exam code
// is an error.
func (r *Registry) Register(c *Catalog) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if _, ok := r.catalogs[c.Exam]; ok {
		return fmt.Errorf("syllabus: exam %q already registered", c.Exam)
	}
	r.catalogs[c.Exam] = c
	r.order = append(r.order, c.Exam)
	return nil
}

// Catalog returns the catalog for an exam code.
func (r *Registry) Catalog(exam string) (*Catalog, error) {
	c, ok := r.catalogs[exam]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrExamNotFound, exam)
	}
	return c, nil
}

// Exams lists registered exam codes in registration order.
func (r *Registry) Exams() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
