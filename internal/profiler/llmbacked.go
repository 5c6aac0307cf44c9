package profiler

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/athiq-ahmed/certprep/internal/llm"
	"github.com/athiq-ahmed/certprep/internal/profile"
	"github.com/athiq-ahmed/certprep/internal/syllabus"
)

// LLMBacked infers knowledge levels from the learner's free-text background
// using a schema-constrained model call. On any model or validation
// failure it returns the error; it never fabricates a profile.
type LLMBacked struct {
	catalog  *syllabus.Catalog
	provider llm.Provider
}

// NewLLMBacked creates an LLM-backed profiler.
func NewLLMBacked(c *syllabus.Catalog, p llm.Provider) *LLMBacked {
	return &LLMBacked{catalog: c, provider: p}
}

const profilerSystem = `You assess how prepared a learner is for a certification exam.
Given the exam's domains and the learner's own description of their background,
estimate a knowledge level and a confidence score per domain. Be conservative:
when the background says nothing about a domain, use level "unknown" with low
confidence. Recommend skipping a domain only when the background shows solid
hands-on experience with it.`

// domainAssessment mirrors one element of the model's JSON output.
type domainAssessment struct {
	DomainID        string  `json:"domain_id"`
	Level           string  `json:"level"`
	Confidence      float64 `json:"confidence"`
	SkipRecommended bool    `json:"skip_recommended"`
}

// Infer asks the model for a per-domain assessment and maps it onto a
// learner profile. Risk flags are always derived locally from the catalog
// weights, not taken from the model.
func (l *LLMBacked) Infer(ctx context.Context, in Input) (*profile.Learner, error) {
	resp, err := l.provider.Generate(ctx, llm.Request{
		System:    profilerSystem,
		Prompt:    l.buildPrompt(in),
		Schema:    l.schema(),
		MaxTokens: 1024,
	})
	if err != nil {
		return nil, fmt.Errorf("inferring profile: %w", err)
	}

	var out struct {
		Domains []domainAssessment `json:"domains"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("decoding profile response: %w", err)
	}

	learner := &profile.Learner{
		Exam:           l.catalog.Exam,
		Certifications: in.Certifications,
		Background:     in.Background,
		Goals:          in.Goals,
		ConcernTopics:  in.ConcernTopics,
		ResourceURLs:   in.ResourceURLs,
	}

	byID := make(map[string]domainAssessment, len(out.Domains))
	for _, a := range out.Domains {
		if _, err := l.catalog.Domain(a.DomainID); err != nil {
			return nil, err
		}
		byID[a.DomainID] = a
	}

	// Emit in catalog order; domains the model left out become unknown.
	for _, d := range l.catalog.Domains {
		a, ok := byID[d.ID]
		if !ok {
			a = domainAssessment{DomainID: d.ID, Level: "unknown", Confidence: 0.05}
		}
		learner.Domains = append(learner.Domains, profile.DomainProfile{
			DomainID:        d.ID,
			Level:           profile.ParseLevel(a.Level),
			Confidence:      a.Confidence,
			SkipRecommended: a.SkipRecommended,
			Risk:            atRisk(d.Weight, a.Confidence),
		})
	}
	return learner, nil
}

func (l *LLMBacked) buildPrompt(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Exam: %s\n\nDomains:\n", l.catalog.Name)
	for _, d := range l.catalog.Domains {
		fmt.Fprintf(&b, "- %s: %s (%.0f%% of the exam)\n", d.ID, d.Name, d.Weight*100)
	}
	if len(in.Certifications) > 0 {
		fmt.Fprintf(&b, "\nExisting certifications: %s\n", strings.Join(in.Certifications, ", "))
	}
	fmt.Fprintf(&b, "\nLearner background:\n%s\n", in.Background)
	if in.Goals != "" {
		fmt.Fprintf(&b, "\nLearner goals:\n%s\n", in.Goals)
	}
	if len(in.ConcernTopics) > 0 {
		fmt.Fprintf(&b, "\nTopics the learner is worried about: %s\n", strings.Join(in.ConcernTopics, ", "))
	}
	return b.String()
}

func (l *LLMBacked) schema() *llm.Schema {
	ids := make([]any, 0, len(l.catalog.Domains))
	for _, d := range l.catalog.Domains {
		ids = append(ids, d.ID)
	}
	return &llm.Schema{
		Name:        "learner-profile",
		Description: "Per-domain readiness assessment for a certification exam",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"domains": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"domain_id": map[string]any{
								"type": "string",
								"enum": ids,
							},
							"level": map[string]any{
								"type": "string",
								"enum": []any{"unknown", "weak", "moderate", "strong"},
							},
							"confidence": map[string]any{
								"type":    "number",
								"minimum": 0,
								"maximum": 1,
							},
							"skip_recommended": map[string]any{
								"type": "boolean",
							},
						},
						"required":             []any{"domain_id", "level", "confidence", "skip_recommended"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"domains"},
			"additionalProperties": false,
		},
	}
}
