package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// RunCommands executes each command in order. Every argument, including the
// program name, is passed through expand first so hooks can use placeholders.
// A failing command does not stop later ones; all failures are returned joined.
func RunCommands(ctx context.Context, runner ProcessRunner, commands [][]string, expand func(string) string, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var errs []error
	for _, command := range commands {
		if len(command) == 0 {
			continue
		}

		args := make([]string, len(command))
		for i, arg := range command {
			if expand != nil {
				arg = expand(arg)
			}
			args[i] = arg
		}

		logger.Debug("running command", "command", strings.Join(args, " "))
		if _, stderr, err := runner.Run(ctx, args[0], args[1:]); err != nil {
			logger.Error("command failed", "command", args[0], "error", err, "stderr", strings.TrimSpace(string(stderr)))
			errs = append(errs, fmt.Errorf("command %q failed: %w", args[0], err))
		}
	}

	return errors.Join(errs...)
}
