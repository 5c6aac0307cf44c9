// Package llm is a thin abstraction over hosted language models, used by
// the profiler to turn a learner's free-text background into a structured
// profile. Only single-turn, schema-constrained generation is supported.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Provider generates structured JSON from a single prompt.
type Provider interface {
	// Generate sends the request and returns the model's JSON output.
	// When a Schema is set, the output is validated against it before
	// being returned.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is one structured-generation call.
type Request struct {
	System      string
	Prompt      string
	Schema      *Schema
	MaxTokens   int
	Temperature float64
}

// Schema is the JSON Schema the response must conform to.
type Schema struct {
	Name        string // kebab-case identifier, e.g. "learner-profile"
	Description string
	Definition  map[string]any
}

// Response is the model's output.
type Response struct {
	Content json.RawMessage
	Model   string
}

// ErrInvalidResponse reports model output that failed schema validation or
// was not JSON at all.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// resolveModel maps a friendly model name through the per-provider alias
// table, passing unknown names through as literal model ids.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
