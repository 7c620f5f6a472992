package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/image"
	"github.com/jmylchreest/tonal/internal/util/pathutil"
)

func newImageCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "image <path>",
		Short: "Generate a scheme from an image",
		Long: `Generate a scheme from the dominant colour of an image and render all
configured templates. When path is a directory a random image inside it is used.

Supported formats: JPEG, PNG, GIF, WebP.

Examples:
  tonal image ~/wallpapers/forest.png
  tonal image ~/wallpapers --mode light
  tonal image wall.jpg --show-colors --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := pathutil.Expand(args[0], "")
			if err != nil {
				return err
			}
			path, err = image.ResolveImagePath(path)
			if err != nil {
				return err
			}

			img, err := image.Load(path)
			if err != nil {
				return fmt.Errorf("failed to load image: %w", err)
			}

			seed, err := colour.NewSeedExtractor().Extract(img)
			if err != nil {
				return fmt.Errorf("failed to extract source colour from %s: %w", filepath.Base(path), err)
			}

			return opts.generate(cmd, source{color: seed, imagePath: path})
		},
	}
}
