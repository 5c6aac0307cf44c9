// Package profile defines the learner profile consumed by the study plan
// engine and the assessment sampler. Profiles are produced once by a
// profiler (rule-based or LLM-backed) and are read-only afterwards.
package profile

// KnowledgeLevel is the learner's self-assessed standing in one domain.
type KnowledgeLevel int

const (
	LevelUnknown KnowledgeLevel = iota // never studied, no signal
	LevelWeak
	LevelModerate
	LevelStrong
)

// String returns the lowercase name used in serialized profiles.
func (l KnowledgeLevel) String() string {
	switch l {
	case LevelUnknown:
		return "unknown"
	case LevelWeak:
		return "weak"
	case LevelModerate:
		return "moderate"
	case LevelStrong:
		return "strong"
	default:
		return "invalid"
	}
}

// ParseLevel converts a serialized level name back to a KnowledgeLevel.
// Unrecognized names map to LevelUnknown.
func ParseLevel(s string) KnowledgeLevel {
	switch s {
	case "weak":
		return LevelWeak
	case "moderate":
		return LevelModerate
	case "strong":
		return LevelStrong
	default:
		return LevelUnknown
	}
}

// DomainProfile is the learner's standing in a single syllabus domain.
type DomainProfile struct {
	DomainID        string
	Level           KnowledgeLevel
	Confidence      float64 // 0.0 - 1.0
	SkipRecommended bool    // learner already covers this; schedule only a self-test
	Risk            bool    // heavy exam weight combined with low confidence
}

// Learner is the full profile for one exam attempt.
// Background, Goals, ConcernTopics, and ResourceURLs are free-form fields;
// only the guardrails content stage ever inspects them.
type Learner struct {
	Exam           string
	Domains        []DomainProfile
	Certifications []string
	Background     string
	Goals          string
	ConcernTopics  []string
	ResourceURLs   []string
}

// Domain returns the profile entry for the given domain id.
func (l *Learner) Domain(id string) (DomainProfile, bool) {
	for _, d := range l.Domains {
		if d.DomainID == id {
			return d, true
		}
	}
	return DomainProfile{}, false
}

// Active returns the domains not marked for skipping, in profile order.
func (l *Learner) Active() []DomainProfile {
	var out []DomainProfile
	for _, d := range l.Domains {
		if !d.SkipRecommended {
			out = append(out, d)
		}
	}
	return out
}

// Skipped returns the domains marked for skipping, in profile order.
func (l *Learner) Skipped() []DomainProfile {
	var out []DomainProfile
	for _, d := range l.Domains {
		if d.SkipRecommended {
			out = append(out, d)
		}
	}
	return out
}
