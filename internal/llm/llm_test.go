package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-rating",
		Description: "a rated item",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":   map[string]any{"type": "string"},
				"rating": map[string]any{"type": "integer", "minimum": 0, "maximum": 5},
			},
			"required":             []any{"name", "rating"},
			"additionalProperties": false,
		},
	}
}

func TestMockValidatesAgainstSchema(t *testing.T) {
	m := NewMock(
		json.RawMessage(`{"name":"networking","rating":3}`),
		json.RawMessage(`{"name":"storage","rating":9}`),
		json.RawMessage(`not json`),
	)
	req := Request{Prompt: "rate it", Schema: testSchema()}

	resp, err := m.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	var out struct {
		Name   string `json:"name"`
		Rating int    `json:"rating"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if out.Name != "networking" || out.Rating != 3 {
		t.Errorf("response = %+v", out)
	}

	var invalid *ErrInvalidResponse
	if _, err := m.Generate(context.Background(), req); !errors.As(err, &invalid) {
		t.Errorf("out-of-range rating: error = %v, want ErrInvalidResponse", err)
	}
	if _, err := m.Generate(context.Background(), req); !errors.As(err, &invalid) {
		t.Errorf("non-JSON payload: error = %v, want ErrInvalidResponse", err)
	}
	if len(m.Calls) != 3 {
		t.Errorf("recorded calls = %d, want 3", len(m.Calls))
	}
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	if _, err := New(context.Background(), Config{Provider: "carrier-pigeon"}); err == nil {
		t.Fatal("New() = nil error for unknown provider")
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	for _, provider := range []string{"anthropic", "openai", "gemini"} {
		if _, err := New(context.Background(), Config{Provider: provider}); err == nil {
			t.Errorf("New(%q) without key: want error", provider)
		}
	}
}
