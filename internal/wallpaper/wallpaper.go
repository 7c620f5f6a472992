// Package wallpaper sets the desktop wallpaper with an external tool.
package wallpaper

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/executor"
)

// Setter applies a wallpaper using the configured tool.
type Setter struct {
	Tool        config.WallpaperTool
	SwwwOptions []string
	FehOptions  []string

	runner executor.ProcessRunner
	logger hclog.Logger
}

// NewSetter creates a setter from the [config] settings.
func NewSetter(settings config.Settings, runner executor.ProcessRunner, logger hclog.Logger) *Setter {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Setter{
		Tool:        settings.WallpaperTool,
		SwwwOptions: settings.SwwwOptions,
		FehOptions:  settings.FehOptions,
		runner:      runner,
		logger:      logger,
	}
}

// Set applies path as the wallpaper.
func (s *Setter) Set(ctx context.Context, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	program, args, detach, err := s.command(absPath)
	if err != nil {
		return err
	}

	s.logger.Info("setting wallpaper", "tool", program, "path", absPath)

	if detach {
		// swaybg keeps running to hold the wallpaper.
		if err := s.runner.Start(ctx, program, args); err != nil {
			return fmt.Errorf("failed to start %s: %w", program, err)
		}
		return nil
	}

	if _, stderr, err := s.runner.Run(ctx, program, args); err != nil {
		return fmt.Errorf("failed to set wallpaper with %s: %w (output: %s)", program, err, strings.TrimSpace(string(stderr)))
	}
	return nil
}

// command returns the program, its arguments and whether it must be detached.
func (s *Setter) command(path string) (string, []string, bool, error) {
	switch s.Tool {
	case config.WallpaperSwww:
		args := append([]string{"img", path}, s.SwwwOptions...)
		return "swww", args, false, nil
	case config.WallpaperSwaybg:
		return "swaybg", []string{"-i", path, "-m", "fill"}, true, nil
	case config.WallpaperNitrogen:
		return "nitrogen", []string{"--set-zoom-fill", "--save", path}, false, nil
	case config.WallpaperFeh:
		opts := s.FehOptions
		if len(opts) == 0 {
			opts = []string{"--bg-scale"}
		}
		args := append(append([]string{}, opts...), path)
		return "feh", args, false, nil
	case "":
		return "", nil, false, fmt.Errorf("no wallpaper_tool configured (valid tools: %v)", config.ValidWallpaperTools())
	default:
		return "", nil, false, fmt.Errorf("unknown wallpaper tool: %s", s.Tool)
	}
}
