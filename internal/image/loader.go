// Package image loads the wallpaper a scheme is derived from.
package image

import (
	"crypto/rand"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"math/big"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/webp"
)

var wallpaperExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// SupportedImageExtensions lists the wallpaper file extensions tonal can decode.
func SupportedImageExtensions() []string {
	return slices.Clone(wallpaperExtensions)
}

// Load decodes the source image at path (JPEG, PNG, GIF or WebP).
func Load(path string) (image.Image, error) {
	if path == "" {
		return nil, errors.New("source image path cannot be empty")
	}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("source image not found: %s", path)
	case err != nil:
		return nil, fmt.Errorf("cannot inspect source image: %w", err)
	case info.IsDir():
		return nil, fmt.Errorf("source image %s is a directory", path)
	}

	f, err := os.Open(path) // #nosec G304 - wallpaper path given on the command line
	if err != nil {
		return nil, fmt.Errorf("cannot open source image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

func isWallpaper(name string) bool {
	return slices.Contains(wallpaperExtensions, strings.ToLower(filepath.Ext(name)))
}

// ScanDirectoryForImages lists the wallpapers directly inside dir.
// Symlinked files count; subdirectories are not searched.
func ScanDirectoryForImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot list wallpaper directory: %w", err)
	}

	var walls []string
	for _, entry := range entries {
		if !isWallpaper(entry.Name()) {
			continue
		}
		full := filepath.Join(dir, entry.Name())
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			walls = append(walls, full)
		}
	}

	if len(walls) == 0 {
		return nil, fmt.Errorf("no wallpapers found in %s", dir)
	}
	return walls, nil
}

// ResolveImagePath returns a wallpaper file for path. A file is returned
// as is; a directory yields one of its wallpapers picked at random.
func ResolveImagePath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return path, nil
	}

	walls, err := ScanDirectoryForImages(path)
	if err != nil {
		return "", err
	}

	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(walls))))
	if err != nil {
		return "", fmt.Errorf("failed to pick a wallpaper: %w", err)
	}
	return walls[n.Int64()], nil
}
