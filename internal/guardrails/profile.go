package guardrails

import (
	"fmt"

	"github.com/athiq-ahmed/certprep/internal/profile"
)

// CheckProfile validates a learner profile before the engines consume it.
func (p *Pipeline) CheckProfile(l *profile.Learner) Result {
	var res Result
	if l == nil {
		res.malformed("learner profile is nil")
		return res
	}
	if l.Exam == "" {
		res.add(CodeProfileExamMissing, LevelBlock, "profile has no exam code")
	}
	if len(l.Domains) == 0 {
		res.add(CodeProfileNoDomains, LevelWarn, "profile covers no domains; every domain will be treated as unknown")
	}

	seen := make(map[string]bool, len(l.Domains))
	for _, d := range l.Domains {
		if d.DomainID == "" {
			res.add(CodeProfileDomainID, LevelBlock, "profile entry has empty domain id")
			continue
		}
		if seen[d.DomainID] {
			res.add(CodeProfileDuplicate, LevelBlock,
				fmt.Sprintf("domain %q appears twice in the profile", d.DomainID))
		}
		seen[d.DomainID] = true

		if d.Confidence < 0 || d.Confidence > 1 {
			res.add(CodeProfileConfidence, LevelBlock,
				fmt.Sprintf("confidence %.2f for domain %q outside 0.0-1.0", d.Confidence, d.DomainID))
		}
		if d.SkipRecommended && (d.Level == profile.LevelUnknown || d.Level == profile.LevelWeak) {
			res.add(CodeProfileSkipContradict, LevelInfo,
				fmt.Sprintf("domain %q is marked skip despite %s knowledge", d.DomainID, d.Level))
		}
	}
	return res
}
