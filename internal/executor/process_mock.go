package executor

import (
	"context"
	"errors"
	"sync"
)

// Call records one invocation of a MockProcessRunner.
type Call struct {
	Path    string
	Args    []string
	Started bool
}

// MockProcessRunner is a mock implementation of ProcessRunner for testing.
type MockProcessRunner struct {
	// RunFunc allows tests to provide custom behaviour for Run and Start.
	RunFunc func(ctx context.Context, path string, args []string) (stdout, stderr []byte, err error)

	mu    sync.Mutex
	calls []Call
}

// NewMockProcessRunner creates a mock that succeeds with empty output.
func NewMockProcessRunner() *MockProcessRunner {
	return &MockProcessRunner{}
}

// NewErrorMockProcessRunner creates a mock whose commands all fail with errMsg.
func NewErrorMockProcessRunner(errMsg string) *MockProcessRunner {
	return &MockProcessRunner{
		RunFunc: func(ctx context.Context, path string, args []string) ([]byte, []byte, error) {
			return nil, []byte(errMsg), errors.New(errMsg)
		},
	}
}

// Run records the call and executes RunFunc if set.
func (m *MockProcessRunner) Run(ctx context.Context, path string, args []string) ([]byte, []byte, error) {
	m.record(Call{Path: path, Args: args})

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if m.RunFunc != nil {
		return m.RunFunc(ctx, path, args)
	}
	return nil, nil, nil
}

// Start records the call and reports the RunFunc error, if any.
func (m *MockProcessRunner) Start(ctx context.Context, path string, args []string) error {
	m.record(Call{Path: path, Args: args, Started: true})

	if m.RunFunc != nil {
		_, _, err := m.RunFunc(ctx, path, args)
		return err
	}
	return nil
}

// Calls returns a copy of the recorded invocations.
func (m *MockProcessRunner) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

func (m *MockProcessRunner) record(c Call) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, c)
}
