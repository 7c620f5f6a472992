// Package reload tells running applications to pick up freshly rendered themes.
package reload

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/go-ps"

	"github.com/jmylchreest/tonal/internal/executor"
)

// App names accepted by Reload.
const (
	AppKitty    = "kitty"
	AppWaybar   = "waybar"
	AppGtkTheme = "gtk_theme"
	AppDunst    = "dunst"
)

// Reloader signals running applications and refreshes the GTK theme.
type Reloader struct {
	runner executor.ProcessRunner
	logger hclog.Logger

	// find and signal are replaced in tests.
	find   func(name string) ([]int, error)
	signal func(pid int, app string) error
}

// New creates a Reloader that uses runner for gsettings.
func New(runner executor.ProcessRunner, logger hclog.Logger) *Reloader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Reloader{
		runner: runner,
		logger: logger,
		find:   findProcessByName,
		signal: sendSignal,
	}
}

// Reload refreshes every app in apps. Failures are collected and returned
// together; one failing app does not stop the others.
func (r *Reloader) Reload(ctx context.Context, apps []string, dark bool) error {
	var errs []error
	for _, app := range apps {
		var err error
		switch app {
		case AppKitty, AppWaybar, AppDunst:
			err = r.signalAll(app)
		case AppGtkTheme:
			err = r.reloadGTK(ctx, dark)
		default:
			err = fmt.Errorf("unknown app: %s", app)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// signalAll sends the app's reload signal to every running instance.
// No running instance is not an error.
func (r *Reloader) signalAll(app string) error {
	pids, err := r.find(app)
	if err != nil {
		return fmt.Errorf("failed to find %s processes: %w", app, err)
	}

	if len(pids) == 0 {
		r.logger.Debug("no running instances, nothing to reload", "app", app)
		return nil
	}

	for _, pid := range pids {
		if err := r.signal(pid, app); err != nil {
			return fmt.Errorf("failed to send reload signal to %s (PID %d): %w", app, pid, err)
		}
	}

	r.logger.Info("reloaded app", "app", app, "instances", len(pids))
	return nil
}

// reloadGTK resets the GTK theme and sets the adw-gtk3 variant matching the scheme.
// Resetting first forces GTK applications to re-read the theme files.
func (r *Reloader) reloadGTK(ctx context.Context, dark bool) error {
	theme := "adw-gtk3"
	if dark {
		theme = "adw-gtk3-dark"
	}

	for _, value := range []string{"", theme} {
		args := []string{"set", "org.gnome.desktop.interface", "gtk-theme", value}
		if _, stderr, err := r.runner.Run(ctx, "gsettings", args); err != nil {
			return fmt.Errorf("failed to set gtk theme: %w (output: %s)", err, strings.TrimSpace(string(stderr)))
		}
	}

	r.logger.Info("reloaded app", "app", AppGtkTheme, "theme", theme)
	return nil
}

// findProcessByName finds all PIDs of processes with the given executable name.
func findProcessByName(name string) ([]int, error) {
	processes, err := ps.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to get process list: %w", err)
	}

	var pids []int
	for _, p := range processes {
		if p.Executable() == name {
			pids = append(pids, p.Pid())
		}
	}

	return pids, nil
}
