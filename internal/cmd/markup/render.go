package markup

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/tagmark/pkg/text"
)

// NewCmdRender creates the render command.
func NewCmdRender() *cobra.Command {
	opts := &engineOptions{}

	cmd := &cobra.Command{
		Use:   "render [markup]",
		Short: "Render tag markup to the terminal",
		Long: `Parse tag markup and render it with ANSI colors and styles.

Interactive styles (insert, click, hover) have no terminal equivalent
and render as their plain content.`,
		Example: `  # Render styled text
  tagmark render '<bold><red>Error:</red></bold> something broke'

  # Render a gradient
  tagmark render '<gradient:#ff0000:#0000ff>smooth</gradient>'

  # Render markdown
  tagmark render --markdown github 'a **bold** move'`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runRender(cmd, args, opts, noColor)
		},
	}

	addEngineFlags(cmd, opts)

	return cmd
}

func runRender(cmd *cobra.Command, args []string, opts *engineOptions, noColor bool) error {
	cfg := loadConfig(cmd)
	if noColor || cfg.NoColor {
		color.NoColor = true
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	engine, err := opts.engine(cfg)
	if err != nil {
		return err
	}

	parseOpts, err := opts.parseOptions()
	if err != nil {
		return err
	}

	tree, err := engine.Parse(input, parseOpts...)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), text.Render(tree))
	return nil
}
