package llm

import (
	"context"
	"sync"
)

// MockClient is a test double for Client.
type MockClient struct {
	mu        sync.Mutex
	Answer    string
	Err       error
	Questions []string
}

// Ask records the question and returns the configured answer or error.
func (m *MockClient) Ask(_ context.Context, question, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Questions = append(m.Questions, question)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Answer, nil
}

// Calls returns how many times Ask was invoked.
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Questions)
}
