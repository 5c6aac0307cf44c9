package guardrails

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Content bundles the free-text fields and candidate URLs from a request.
// Fields map a field name (for the violation message) to its raw text.
type Content struct {
	Fields map[string]string
	URLs   []string
}

// defaultHarmfulKeywords block content that steers the learner toward
// cheating or unsafe material.
func defaultHarmfulKeywords() []string {
	return []string{
		"braindump",
		"brain dump",
		"leaked exam",
		"leaked questions",
		"actual exam questions",
		"real exam questions",
		"exam answers for sale",
		"impersonate the candidate",
	}
}

// defaultTrustedHosts are vendor documentation and established learning
// platforms. Subdomains of an entry are trusted too.
func defaultTrustedHosts() []string {
	return []string{
		"aws.amazon.com",
		"docs.aws.amazon.com",
		"kubernetes.io",
		"cloud.google.com",
		"learn.microsoft.com",
		"coursera.org",
		"udemy.com",
		"acloudguru.com",
		"oreilly.com",
	}
}

// PII patterns. Deliberately loose: the rule only warns.
var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[\s\-.]?)?\(?\d{3}\)?[\s\-.]\d{3}[\s\-.]?\d{4}`)
	ssnPattern   = regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)
)

// CheckContent scans free-text fields for harmful keywords (BLOCK) and PII
// patterns (WARN), and checks candidate URLs against the trusted-host list.
// Untrusted or unparseable URLs only ever warn.
func (p *Pipeline) CheckContent(c *Content) Result {
	var res Result
	if c == nil {
		res.malformed("content artifact is nil")
		return res
	}

	for field, text := range c.Fields {
		lower := strings.ToLower(text)
		for _, kw := range p.cfg.HarmfulKeywords {
			if strings.Contains(lower, kw) {
				res.add(CodeContentHarmful, LevelBlock,
					fmt.Sprintf("field %q contains disallowed phrase %q", field, kw))
			}
		}
		if emailPattern.MatchString(text) || phonePattern.MatchString(text) || ssnPattern.MatchString(text) {
			res.add(CodeContentPII, LevelWarn,
				fmt.Sprintf("field %q appears to contain personal information", field))
		}
	}

	for _, raw := range c.URLs {
		if !p.trustedURL(raw) {
			res.add(CodeContentURLUntrusted, LevelWarn,
				fmt.Sprintf("url %q is not on the trusted host list", raw))
		}
	}
	return res
}

func (p *Pipeline) trustedURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, trusted := range p.cfg.TrustedHosts {
		if host == trusted || strings.HasSuffix(host, "."+trusted) {
			return true
		}
	}
	return false
}
