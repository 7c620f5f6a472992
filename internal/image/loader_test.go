package image

import (
	goimage "image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePNG(t *testing.T, path string, c color.Color) {
	t.Helper()

	img := goimage.NewRGBA(goimage.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("decodes png", func(t *testing.T) {
		path := filepath.Join(dir, "wall.png")
		writePNG(t, path, color.RGBA{R: 103, G: 80, B: 164, A: 255})

		img, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if img.Bounds().Dx() != 4 {
			t.Errorf("expected width 4, got %d", img.Bounds().Dx())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.png"))
		if err == nil || !strings.Contains(err.Error(), "not found") {
			t.Errorf("expected not found error, got %v", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		if _, err := Load(dir); err == nil {
			t.Error("expected error for directory")
		}
	})

	t.Run("invalid data", func(t *testing.T) {
		path := filepath.Join(dir, "bogus.png")
		if err := os.WriteFile(path, []byte("not an image"), 0o600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected decode error")
		}
	})
}

func TestResolveImagePath(t *testing.T) {
	dir := t.TempDir()
	wall := filepath.Join(dir, "wall.png")
	writePNG(t, wall, color.Black)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	got, err := ResolveImagePath(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != wall {
		t.Errorf("expected %s, got %s", wall, got)
	}

	got, err = ResolveImagePath(wall)
	if err != nil || got != wall {
		t.Errorf("expected file path unchanged, got %s (%v)", got, err)
	}

	if _, err := ResolveImagePath(t.TempDir()); err == nil {
		t.Error("expected error for directory without images")
	}
}

func TestScanDirectoryForImages(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "upper.PNG"), color.White)
	if err := os.Mkdir(filepath.Join(dir, "nested.png"), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	walls, err := ScanDirectoryForImages(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(walls) != 1 || filepath.Base(walls[0]) != "upper.PNG" {
		t.Errorf("expected only upper.PNG, got %v", walls)
	}

	exts := SupportedImageExtensions()
	exts[0] = ".bmp"
	if SupportedImageExtensions()[0] == ".bmp" {
		t.Error("SupportedImageExtensions must return a copy")
	}
}
