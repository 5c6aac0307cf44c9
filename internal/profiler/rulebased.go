package profiler

import (
	"context"
	"strings"

	"github.com/athiq-ahmed/certprep/internal/profile"
	"github.com/athiq-ahmed/certprep/internal/syllabus"
)

// RuleBased maps 0-5 self-ratings onto knowledge levels with fixed
// thresholds. It needs no network and is the default profiler.
type RuleBased struct {
	catalog *syllabus.Catalog
}

// NewRuleBased creates a rule-based profiler for the catalog.
func NewRuleBased(c *syllabus.Catalog) *RuleBased {
	return &RuleBased{catalog: c}
}

// Infer builds a profile. Every rating must name a catalog domain; domains
// without a rating are treated as unknown. A domain rated 5 with no
// matching concern topic is marked skip-recommended.
func (r *RuleBased) Infer(_ context.Context, in Input) (*profile.Learner, error) {
	for id := range in.SelfRatings {
		if _, err := r.catalog.Domain(id); err != nil {
			return nil, err
		}
	}

	learner := &profile.Learner{
		Exam:           r.catalog.Exam,
		Certifications: in.Certifications,
		Background:     in.Background,
		Goals:          in.Goals,
		ConcernTopics:  in.ConcernTopics,
		ResourceURLs:   in.ResourceURLs,
	}

	for _, d := range r.catalog.Domains {
		rating, rated := in.SelfRatings[d.ID]
		if !rated {
			rating = 0
		}
		level, confidence := levelForRating(rating)
		concerned := concernMatches(in.ConcernTopics, d)

		// A voiced concern overrides a confident self-rating.
		if concerned && level > profile.LevelModerate {
			level = profile.LevelModerate
			confidence = 0.5
		}

		learner.Domains = append(learner.Domains, profile.DomainProfile{
			DomainID:        d.ID,
			Level:           level,
			Confidence:      confidence,
			SkipRecommended: rating == 5 && !concerned,
			Risk:            atRisk(d.Weight, confidence),
		})
	}
	return learner, nil
}

// levelForRating maps a 0-5 self-rating to a knowledge level and a
// confidence score.
func levelForRating(rating int) (profile.KnowledgeLevel, float64) {
	switch {
	case rating <= 0:
		return profile.LevelUnknown, 0.05
	case rating == 1:
		return profile.LevelWeak, 0.2
	case rating == 2:
		return profile.LevelWeak, 0.4
	case rating == 3:
		return profile.LevelModerate, 0.6
	case rating == 4:
		return profile.LevelStrong, 0.75
	default:
		return profile.LevelStrong, 0.9
	}
}

// concernMatches reports whether any concern topic names the domain by id
// or by a word of its display name.
func concernMatches(topics []string, d syllabus.Domain) bool {
	name := strings.ToLower(d.Name)
	for _, topic := range topics {
		t := strings.ToLower(strings.TrimSpace(topic))
		if t == "" {
			continue
		}
		if strings.Contains(t, d.ID) || strings.Contains(name, t) {
			return true
		}
	}
	return false
}
