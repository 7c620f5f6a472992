package cli

import (
	"bytes"
	"encoding/json"
	goimage "image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/tonal/internal/executor"
)

// testEnv holds a temporary config and the buffers a command writes to.
type testEnv struct {
	dir    string
	config string
	runner *executor.MockProcessRunner
	out    bytes.Buffer
	errOut bytes.Buffer
}

func newTestEnv(t *testing.T, configBody string) *testEnv {
	t.Helper()

	dir := t.TempDir()
	env := &testEnv{
		dir:    dir,
		config: filepath.Join(dir, "config.toml"),
		runner: executor.NewMockProcessRunner(),
	}

	body := strings.ReplaceAll(configBody, "{{dir}}", filepath.ToSlash(dir))
	if err := os.WriteFile(env.config, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return env
}

func (e *testEnv) execute(args ...string) error {
	e.out.Reset()
	e.errOut.Reset()

	rootCmd := newRootCmd(e.runner)
	rootCmd.SetOut(&e.out)
	rootCmd.SetErr(&e.errOut)
	rootCmd.SetArgs(append([]string{"--config", e.config}, args...))
	return rootCmd.Execute()
}

func (e *testEnv) writeTemplate(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(e.dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write template: %v", err)
	}
}

func (e *testEnv) read(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(e.dir, name))
	if err != nil {
		t.Fatalf("Failed to read %s: %v", name, err)
	}
	return string(data)
}

const colorsConfig = `
[config]
run_after = [["notify-send", "@{source_color.strip}"]]

[templates.colors]
input_path = '{{dir}}/colors.tmpl'
output_path = '{{dir}}/colors.css'

[templates.absent]
input_path = '{{dir}}/absent.tmpl'
output_path = '{{dir}}/absent.css'
`

func TestColorCommand(t *testing.T) {
	env := newTestEnv(t, colorsConfig)
	env.writeTemplate(t, "colors.tmpl", "source: @{source_color}\nstrip: @{source_color.strip}\nimage: @{image}")

	if err := env.execute("color", "hex", "#6750A4"); err != nil {
		t.Fatalf("Execute() error = %v\nstderr: %s", err, env.errOut.String())
	}

	want := "source: #6750A4\nstrip: 6750A4\nimage: @{image}"
	if got := env.read(t, "colors.css"); got != want {
		t.Errorf("Rendered template =\n%s\nwant\n%s", got, want)
	}

	if _, err := os.Stat(filepath.Join(env.dir, "absent.css")); !os.IsNotExist(err) {
		t.Error("Expected no output for a template with a missing input")
	}

	calls := env.runner.Calls()
	if len(calls) != 1 || calls[0].Path != "notify-send" || calls[0].Args[0] != "6750A4" {
		t.Errorf("Expected run_after hook with expanded placeholder, got %+v", calls)
	}
}

func TestColorCommandDryRun(t *testing.T) {
	env := newTestEnv(t, colorsConfig)
	env.writeTemplate(t, "colors.tmpl", "@{primary}")

	if err := env.execute("color", "rgb", "103, 80, 164", "--dry-run"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(env.dir, "colors.css")); !os.IsNotExist(err) {
		t.Error("Dry run must not write output files")
	}
	if len(env.runner.Calls()) != 0 {
		t.Errorf("Dry run must not run hooks, got %+v", env.runner.Calls())
	}
}

func TestModeSelectsVariant(t *testing.T) {
	env := newTestEnv(t, colorsConfig)
	env.writeTemplate(t, "colors.tmpl", "@{background}")

	if err := env.execute("color", "hex", "#6750A4", "--amoled"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := env.read(t, "colors.css"); got != "#000000" {
		t.Errorf("Expected black amoled background, got %q", got)
	}

	if err := env.execute("color", "hex", "#6750A4", "--mode", "light"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := env.read(t, "colors.css"); got == "#000000" {
		t.Error("Expected light background, got black")
	}
}

func TestJSONOutput(t *testing.T) {
	env := newTestEnv(t, "")

	if err := env.execute("color", "hex", "#6750A4", "--json", "strip"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var dump schemeDump
	if err := json.Unmarshal(env.out.Bytes(), &dump); err != nil {
		t.Fatalf("Failed to decode JSON output: %v\n%s", err, env.out.String())
	}
	if dump.Colors.Light["source_color"] != "6750A4" || dump.Colors.Dark["source_color"] != "6750A4" {
		t.Errorf("Unexpected source_color: %+v", dump.Colors)
	}
	if len(dump.Palettes) != 6 {
		t.Errorf("Expected 6 palettes, got %d", len(dump.Palettes))
	}
	if tones := dump.Palettes["primary"]; len(tones) != 21 || tones["0"] != "000000" {
		t.Errorf("Unexpected primary palette: %v", tones)
	}
}

func TestShowColors(t *testing.T) {
	env := newTestEnv(t, "")

	if err := env.execute("color", "hex", "6750a4", "--show-colors"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := env.out.String()
	for _, want := range []string{"ROLE", "primary", "surface_container_highest", "source_color", "#6750A4"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output:\n%s", want, output)
		}
	}
}

func TestImageCommand(t *testing.T) {
	env := newTestEnv(t, `
[config]
set_wallpaper = true
wallpaper_tool = "feh"

[templates.wall]
input_path = '{{dir}}/wall.tmpl'
output_path = '{{dir}}/wall.conf'
`)
	env.writeTemplate(t, "wall.tmpl", "wallpaper=@{image}")

	imgPath := filepath.Join(env.dir, "wall.png")
	img := goimage.NewRGBA(goimage.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 103, G: 80, B: 164, A: 255})
		}
	}
	f, err := os.Create(imgPath)
	if err != nil {
		t.Fatalf("Failed to create image: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode image: %v", err)
	}
	f.Close()

	if err := env.execute("image", imgPath); err != nil {
		t.Fatalf("Execute() error = %v\nstderr: %s", err, env.errOut.String())
	}

	if got := env.read(t, "wall.conf"); got != "wallpaper="+imgPath {
		t.Errorf("Expected image path substitution, got %q", got)
	}

	calls := env.runner.Calls()
	if len(calls) != 1 || calls[0].Path != "feh" {
		t.Fatalf("Expected feh to set the wallpaper, got %+v", calls)
	}
	if args := calls[0].Args; args[len(args)-1] != imgPath {
		t.Errorf("Expected wallpaper path %s, got %v", imgPath, args)
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"invalid colour", []string{"color", "hex", "#XYZ"}, "invalid hex colour"},
		{"unknown colour kind", []string{"color", "cmyk", "1,2,3,4"}, "unknown colour kind"},
		{"invalid mode", []string{"color", "hex", "#fff", "--mode", "sepia"}, "invalid mode"},
		{"conflicting modes", []string{"color", "hex", "#fff", "-l", "-a"}, "cannot be combined"},
		{"unknown json format", []string{"color", "hex", "#fff", "--json", "cmyk"}, "unknown colour format"},
		{"missing image", []string{"image", "/nonexistent/wall.png"}, "failed to access path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, "")
			err := env.execute(tt.args...)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMissingExplicitConfig(t *testing.T) {
	rootCmd := newRootCmd(executor.NewMockProcessRunner())
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.toml"), "color", "hex", "#fff"})

	if err := rootCmd.Execute(); err == nil || !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Expected config read error, got %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "tonal version") {
		t.Errorf("Unexpected version output: %q", out.String())
	}
}
