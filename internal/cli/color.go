package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/colour"
)

func newColorCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "color <hex|rgb|hsl> <value>",
		Short: "Generate a scheme from a colour",
		Long: `Generate a scheme from a colour literal and render all configured templates.
Image placeholders are left untouched.

Examples:
  tonal color hex "#6750A4"
  tonal color rgb "rgb(103, 80, 164)"
  tonal color hsl "256, 34%, 48%" --mode amoled`,
		Aliases:   []string{"colour"},
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"hex", "rgb", "hsl"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colour.Parse(args[0], args[1])
			if err != nil {
				return err
			}
			return opts.generate(cmd, source{color: c})
		},
	}
}
