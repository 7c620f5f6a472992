// Package executor runs the external commands used after rendering:
// wallpaper setters, gsettings and user hooks.
package executor

import (
	"context"
	"errors"
	"os/exec"
)

// ProcessRunner runs external processes.
// The interface allows wallpaper and reload code to be tested without spawning anything.
type ProcessRunner interface {
	// Run executes a command to completion and returns its stdout and stderr.
	Run(ctx context.Context, path string, args []string) (stdout, stderr []byte, err error)
	// Start launches a long-lived command without waiting for it.
	Start(ctx context.Context, path string, args []string) error
}

// RealProcessRunner implements ProcessRunner using os/exec.
type RealProcessRunner struct{}

// NewRealProcessRunner creates a new real process runner.
func NewRealProcessRunner() *RealProcessRunner {
	return &RealProcessRunner{}
}

// Run executes a real external process.
func (r *RealProcessRunner) Run(ctx context.Context, path string, args []string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, path, args...)

	stdout, err := cmd.Output()
	if err != nil {
		// Output() captures stderr in the error when it is an ExitError.
		exitErr := &exec.ExitError{}
		if errors.As(err, &exitErr) {
			return stdout, exitErr.Stderr, err
		}
		return stdout, nil, err
	}

	return stdout, nil, nil
}

// Start launches a detached process. The context only bounds process creation.
func (r *RealProcessRunner) Start(_ context.Context, path string, args []string) error {
	cmd := exec.Command(path, args...) // #nosec G204 - Command comes from user configuration
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child when it exits so it does not linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}
