package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockProvider mocks a language model provider for translation tests
type MockProvider struct {
	ProviderName string
	// Replies maps a word contained in the prompt to the model reply
	Replies map[string]string
	// Errors maps a word contained in the prompt to a failure
	Errors map[string]error
	// Err, if set, fails every call
	Err error

	mu    sync.Mutex
	Calls []string
}

// Name returns ProviderName or "mock"
func (m *MockProvider) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

// Complete mocks a completion request. Words are matched as '<word>' in
// the prompt.
func (m *MockProvider) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, prompt)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.Err != nil {
		return "", m.Err
	}
	for word, err := range m.Errors {
		if containsQuoted(prompt, word) {
			return "", err
		}
	}
	for word, reply := range m.Replies {
		if containsQuoted(prompt, word) {
			return reply, nil
		}
	}

	return "", fmt.Errorf("no mock reply for prompt %q", prompt)
}

// CallCount returns the number of Complete calls
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func containsQuoted(prompt, word string) bool {
	return strings.Contains(prompt, "'"+word+"'")
}
