package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Mock is a deterministic Provider for tests: it returns canned responses
// in FIFO order and records every request it sees.
type Mock struct {
	mu        sync.Mutex
	responses []json.RawMessage
	Calls     []Request
}

// NewMock creates a Mock with the given canned JSON responses.
func NewMock(responses ...json.RawMessage) *Mock {
	return &Mock{responses: responses}
}

// Generate returns the next canned response, validating it against the
// request schema the same way real providers do.
func (m *Mock) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if len(m.responses) == 0 {
		return nil, fmt.Errorf("mock provider: no responses queued")
	}
	content := m.responses[0]
	m.responses = m.responses[1:]

	if err := validateResponse(req.Schema, content); err != nil {
		return nil, err
	}
	return &Response{Content: content, Model: "mock"}, nil
}

// ModelID returns "mock".
func (m *Mock) ModelID() string { return "mock" }
