package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// CannedReply is one scripted answer for the MockProvider.
type CannedReply struct {
	JSON  string // reply body, e.g. `{"answer":"4","steps":["..."]}`
	Usage Usage
	Err   error
}

// MockProvider replays canned replies in order and records every
// request it sees. An exhausted script answers with UnavailableError,
// which doubles as a way to test the outage path.
type MockProvider struct {
	mu       sync.Mutex
	script   []CannedReply
	Requests []Request
}

// NewMockProvider builds a MockProvider with the given script.
func NewMockProvider(script ...CannedReply) *MockProvider {
	return &MockProvider{script: script}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = append(m.Requests, req)

	if len(m.script) == 0 {
		return nil, &UnavailableError{}
	}
	reply := m.script[0]
	m.script = m.script[1:]

	if reply.Err != nil {
		return nil, reply.Err
	}
	return &Response{
		Content: json.RawMessage(reply.JSON),
		Usage:   reply.Usage,
		Model:   "mock",
	}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// Queue appends a reply to the script.
func (m *MockProvider) Queue(reply CannedReply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, reply)
}

// CallCount returns how many Generate calls were made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}
