package syllabus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// catalogFile mirrors the on-disk YAML shape of an exam catalog.
type catalogFile struct {
	Exam        string  `yaml:"exam"`
	Name        string  `yaml:"name"`
	PassMarkPct float64 `yaml:"pass_mark_pct"`
	Domains     []struct {
		ID     string  `yaml:"id"`
		Name   string  `yaml:"name"`
		Weight float64 `yaml:"weight"`
	} `yaml:"domains"`
	Prerequisites struct {
		Required    []string `yaml:"required"`
		Recommended []string `yaml:"recommended"`
	} `yaml:"prerequisites"`
	Questions []struct {
		ID           string   `yaml:"id"`
		DomainID     string   `yaml:"domain_id"`
		Text         string   `yaml:"text"`
		Choices      []string `yaml:"choices"`
		CorrectIndex int      `yaml:"correct_index"`
		Difficulty   int      `yaml:"difficulty"`
	} `yaml:"questions"`
}

// LoadDir reads every .yaml/.yml file in dir as an exam catalog and
// registers it. Files are visited in lexical order so registration order is
// reproducible. A missing directory is an error; an empty one is not.
func LoadDir(r *Registry, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading catalog dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if err := loadFile(r, path); err != nil {
			return fmt.Errorf("loading catalog %s: %w", e.Name(), err)
		}
	}
	return nil
}

func loadFile(r *Registry, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return fmt.Errorf("parsing yaml: %w", err)
	}
	return r.Register(cf.toCatalog())
}

func (cf *catalogFile) toCatalog() *Catalog {
	domains := make([]Domain, 0, len(cf.Domains))
	for _, d := range cf.Domains {
		domains = append(domains, Domain{ID: d.ID, Name: d.Name, Weight: d.Weight})
	}
	var prereqs []Prerequisite
	for _, cert := range cf.Prerequisites.Required {
		prereqs = append(prereqs, Prerequisite{Cert: cert, Strength: PrereqRequired})
	}
	for _, cert := range cf.Prerequisites.Recommended {
		prereqs = append(prereqs, Prerequisite{Cert: cert, Strength: PrereqRecommended})
	}
	questions := make([]Question, 0, len(cf.Questions))
	for _, q := range cf.Questions {
		questions = append(questions, Question{
			ID:           q.ID,
			DomainID:     q.DomainID,
			Text:         q.Text,
			Choices:      q.Choices,
			CorrectIndex: q.CorrectIndex,
			Difficulty:   q.Difficulty,
		})
	}
	pass := cf.PassMarkPct
	if pass == 0 {
		pass = 60.0
	}
	return NewCatalog(cf.Exam, cf.Name, pass, domains, prereqs, questions)
}
