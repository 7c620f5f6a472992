// Package cli provides the command-line interface for Tonal.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/tonal/internal/executor"
	"github.com/jmylchreest/tonal/internal/scheme"
	"github.com/jmylchreest/tonal/internal/version"
)

// options holds the global flags shared by every source subcommand.
type options struct {
	configPath string
	mode       scheme.Mode
	lightMode  bool
	amoled     bool
	verbose    bool
	quiet      bool
	dryRun     bool
	showColors bool
	jsonFormat string

	runner executor.ProcessRunner
}

// effectiveMode resolves --mode together with the --lightmode and --amoled shorthands.
func (o *options) effectiveMode() scheme.Mode {
	switch {
	case o.lightMode:
		return scheme.ModeLight
	case o.amoled:
		return scheme.ModeAmoled
	default:
		return o.mode
	}
}

// NewRootCmd builds the tonal command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(executor.NewRealProcessRunner())
}

func newRootCmd(runner executor.ProcessRunner) *cobra.Command {
	opts := &options{
		mode:   scheme.ModeDark,
		runner: runner,
	}

	rootCmd := &cobra.Command{
		Use:   "tonal",
		Short: "A Material You colour scheme generator",
		Long: `Tonal generates a Material You colour scheme from an image or a colour and
renders it into your application templates.

Templates reference scheme colours with placeholders such as @{primary},
@{on_surface.rgb} or @{image}. Each configured template is rendered and
written to its output path, after which the wallpaper can be set, running
applications reloaded and post-render hooks executed.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.lightMode && opts.amoled {
				return fmt.Errorf("--lightmode and --amoled cannot be combined")
			}
			if opts.verbose && opts.quiet {
				return fmt.Errorf("--verbose and --quiet cannot be combined")
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.SetNormalizeFunc(normalizeFlagName)
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/tonal/config.toml)")
	flags.VarP(&opts.mode, "mode", "m", "scheme mode (light, dark, amoled)")
	flags.BoolVarP(&opts.lightMode, "lightmode", "l", false, "use the light scheme (same as --mode light)")
	flags.BoolVarP(&opts.amoled, "amoled", "a", false, "use the dark scheme with black backgrounds (same as --mode amoled)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "render templates without writing files or running actions")
	flags.BoolVar(&opts.showColors, "show-colors", false, "print the generated scheme")
	flags.StringVar(&opts.jsonFormat, "json", "", "print the scheme as JSON using a colour format (hex, strip, rgb, rgba, hsl, hsla)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newImageCmd(opts))
	rootCmd.AddCommand(newColorCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// normalizeFlagName accepts underscores in place of dashes, e.g. --dry_run.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
