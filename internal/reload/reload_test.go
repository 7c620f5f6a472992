package reload

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jmylchreest/tonal/internal/executor"
)

type sent struct {
	pid int
	app string
}

func newTestReloader(running map[string][]int) (*Reloader, *executor.MockProcessRunner, *[]sent) {
	runner := executor.NewMockProcessRunner()
	r := New(runner, nil)

	var signals []sent
	r.find = func(name string) ([]int, error) {
		return running[name], nil
	}
	r.signal = func(pid int, app string) error {
		signals = append(signals, sent{pid: pid, app: app})
		return nil
	}
	return r, runner, &signals
}

func TestReloadSignalsRunningApps(t *testing.T) {
	r, _, signals := newTestReloader(map[string][]int{
		"kitty":  {100, 101},
		"waybar": {200},
	})

	if err := r.Reload(context.Background(), []string{AppKitty, AppWaybar, AppDunst}, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(*signals) != 3 {
		t.Fatalf("expected 3 signals, got %d: %v", len(*signals), *signals)
	}
	if (*signals)[0] != (sent{100, "kitty"}) || (*signals)[2] != (sent{200, "waybar"}) {
		t.Errorf("unexpected signals: %v", *signals)
	}
}

func TestReloadGTK(t *testing.T) {
	tests := []struct {
		name  string
		dark  bool
		theme string
	}{
		{"dark", true, "adw-gtk3-dark"},
		{"light", false, "adw-gtk3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, runner, _ := newTestReloader(nil)

			if err := r.Reload(context.Background(), []string{AppGtkTheme}, tt.dark); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			calls := runner.Calls()
			if len(calls) != 2 {
				t.Fatalf("expected 2 gsettings calls, got %d", len(calls))
			}
			if calls[0].Args[3] != "" {
				t.Errorf("expected theme reset first, got %q", calls[0].Args[3])
			}
			if calls[1].Path != "gsettings" || calls[1].Args[3] != tt.theme {
				t.Errorf("expected gsettings with %s, got %+v", tt.theme, calls[1])
			}
		})
	}
}

func TestReloadCollectsErrors(t *testing.T) {
	r, _, _ := newTestReloader(map[string][]int{"kitty": {1}})
	r.signal = func(pid int, app string) error {
		return errors.New("operation not permitted")
	}

	err := r.Reload(context.Background(), []string{AppKitty, "emacs"}, false)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "PID 1") || !strings.Contains(err.Error(), "unknown app: emacs") {
		t.Errorf("expected both failures reported, got %v", err)
	}
}
