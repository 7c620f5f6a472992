package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/executor"
	"github.com/jmylchreest/tonal/internal/logging"
	"github.com/jmylchreest/tonal/internal/reload"
	"github.com/jmylchreest/tonal/internal/scheme"
	"github.com/jmylchreest/tonal/internal/template"
	"github.com/jmylchreest/tonal/internal/wallpaper"
)

// source is where a scheme comes from: a colour, and for image sources the image path.
type source struct {
	color     colour.Color
	imagePath string
}

// generate derives the scheme for src and runs the full render pipeline.
func (o *options) generate(cmd *cobra.Command, src source) error {
	logger := logging.New(logging.Options{
		Verbose: o.verbose,
		Quiet:   o.quiet,
		Output:  cmd.ErrOrStderr(),
	})

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if cfg.Path() != "" {
		logger.Debug("loaded config", "path", cfg.Path())
	}

	mode := o.effectiveMode()
	variant := mode.Variant()
	s := scheme.FromSource(src.color, scheme.Options{Amoled: mode == scheme.ModeAmoled})
	logger.Info("generated scheme", "source", src.color.Hex(), "mode", string(mode))

	out := cmd.OutOrStdout()
	if o.showColors {
		printColors(out, s, isTerminal(out))
	}
	if o.jsonFormat != "" {
		format, err := colour.ParseFormat(o.jsonFormat)
		if err != nil {
			return err
		}
		if err := writeJSON(out, s, format); err != nil {
			return err
		}
	}

	patterns, err := template.Compile(template.RolesFor(s, variant), template.CompileOptions{
		Prefix:    cfg.Settings.Prefix,
		ImagePath: src.imagePath,
	})
	if err != nil {
		return fmt.Errorf("failed to compile placeholders: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	renderer := template.NewRenderer(wd, logger.Named("template"))
	renderer.DryRun = o.dryRun

	outcomes, err := renderer.Render(cfg.Definitions(), patterns)
	if err != nil {
		return err
	}
	summarise(logger, outcomes, o.dryRun)

	if o.dryRun {
		return nil
	}

	o.runActions(cmd.Context(), cfg, src, variant, patterns, logger)
	return nil
}

// runActions sets the wallpaper, reloads applications and runs hooks.
// Failures are logged and do not fail the command.
func (o *options) runActions(ctx context.Context, cfg *config.Config, src source, variant scheme.Variant, patterns *template.Patterns, logger hclog.Logger) {
	if src.imagePath != "" && cfg.Settings.SetWallpaper {
		setter := wallpaper.NewSetter(cfg.Settings, o.runner, logger.Named("wallpaper"))
		if err := setter.Set(ctx, src.imagePath); err != nil {
			logger.Error("failed to set wallpaper", "error", err)
		}
	}

	if cfg.Settings.ReloadApps {
		reloader := reload.New(o.runner, logger.Named("reload"))
		if err := reloader.Reload(ctx, cfg.Settings.ReloadAppsList.Enabled(), variant == scheme.Dark); err != nil {
			logger.Error("failed to reload applications", "error", err)
		}
	}

	if len(cfg.Settings.RunAfter) > 0 {
		if err := executor.RunCommands(ctx, o.runner, cfg.Settings.RunAfter, patterns.Render, logger.Named("hooks")); err != nil {
			logger.Error("run_after commands failed", "error", err)
		}
	}
}

func summarise(logger hclog.Logger, outcomes []template.Outcome, dryRun bool) {
	rendered, skipped := 0, 0
	for _, o := range outcomes {
		switch o.Status {
		case template.StatusRendered:
			rendered++
		case template.StatusSkipped:
			skipped++
		}
	}
	logger.Info("templates processed", "rendered", rendered, "skipped", skipped, "dry_run", dryRun)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
