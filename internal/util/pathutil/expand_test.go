package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TONAL_TEST_DIR", "/srv/themes")

	base := filepath.Join(home, "base")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		baseDir string
		want    string
	}{
		{"absolute", "/etc/tonal/colors.css", base, "/etc/tonal/colors.css"},
		{"tilde", "~/templates/a.css", base, filepath.Join(home, "templates", "a.css")},
		{"bare tilde", "~", base, home},
		{"tilde user form is relative", "~other/a.css", base, filepath.Join(base, "~other", "a.css")},
		{"dollar in file name", "a$b.conf", base, filepath.Join(base, "a$b.conf")},
		{"set variable kept literal", "$TONAL_TEST_DIR/a.css", base, filepath.Join(base, "$TONAL_TEST_DIR", "a.css")},
		{"unset variable stays relative", "$TONAL_UNSET_DIR/app/colors.css", base, filepath.Join(base, "$TONAL_UNSET_DIR", "app", "colors.css")},
		{"relative to base", "templates/../a.css", base, filepath.Join(base, "a.css")},
		{"relative to working directory", "a.css", "", filepath.Join(wd, "a.css")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.path, tt.baseDir)
			if err != nil {
				t.Fatalf("Expand(%q) error = %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExpandEmpty(t *testing.T) {
	if _, err := Expand("", "/tmp"); err == nil {
		t.Error("expected error for empty path")
	}
}
