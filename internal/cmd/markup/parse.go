package markup

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/tagmark/internal/view"
	"github.com/open-cli-collective/tagmark/pkg/tagmark"
)

// NewCmdParse creates the parse command.
func NewCmdParse() *cobra.Command {
	opts := &engineOptions{}
	var tokens bool

	cmd := &cobra.Command{
		Use:   "parse [markup]",
		Short: "Parse tag markup into a styled text tree",
		Long: `Parse tag markup and print the resulting styled text tree.

Input is taken from the arguments, or from stdin when no arguments are
given. The tree is printed as YAML by default; use --output json for
JSON, or --tokens to inspect the raw token stream instead.`,
		Example: `  # Parse markup from an argument
  tagmark parse '<bold>Hello</bold> world'

  # Parse from stdin, strictly
  echo '<red>alert</red>' | tagmark parse --strict

  # Fill placeholders
  tagmark parse 'Hi <name>!' -p 'name=<bold>Ada</bold>'

  # Show the token stream
  tagmark parse --tokens '<click:open_url:https\:\/\/example.com>go</click>'`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runParse(cmd, args, opts, tokens, output, noColor)
		},
	}

	addEngineFlags(cmd, opts)
	cmd.Flags().BoolVar(&tokens, "tokens", false, "print the token stream instead of the parsed tree")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *engineOptions, tokens bool, output string, noColor bool) error {
	format, err := view.ParseFormat(output)
	if err != nil {
		return err
	}
	renderer := view.NewRenderer(format, noColor)
	renderer.SetWriter(cmd.OutOrStdout())

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	if tokens {
		return runTokens(input, renderer)
	}

	cfg := loadConfig(cmd)
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

	return renderer.RenderObject(tree)
}

func runTokens(input string, renderer *view.Renderer) error {
	headers := []string{"POS", "KIND", "NAME", "ARGS", "TEXT"}
	var rows [][]string
	for _, tok := range tagmark.Tokenize(input) {
		rows = append(rows, []string{
			fmt.Sprintf("%d", tok.Position),
			tok.Kind.String(),
			tok.Name,
			view.Truncate(strings.Join(tok.Args, ", "), 40),
			view.Truncate(tok.Text, 40),
		})
	}
	renderer.RenderTable(headers, rows)
	return nil
}
