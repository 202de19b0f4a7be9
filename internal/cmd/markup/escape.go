package markup

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/tagmark/pkg/tagmark"
)

// NewCmdEscape creates the escape command.
func NewCmdEscape() *cobra.Command {
	return &cobra.Command{
		Use:   "escape [text]",
		Short: "Escape tag markup so it parses as literal text",
		Long: `Escape every token opener in the input so that parsing the result
yields the input verbatim.`,
		Example: `  # Protect user input before embedding it in a template
  tagmark escape '<bold>not a tag</bold>'`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tagmark.EscapeTokens(input))
			return nil
		},
	}
}

// NewCmdStrip creates the strip command.
func NewCmdStrip() *cobra.Command {
	return &cobra.Command{
		Use:   "strip [markup]",
		Short: "Remove all tags from markup, keeping the text",
		Long: `Remove every recognizable tag from the input and print the literal
text that remains. Stripping is idempotent.`,
		Example: `  # Extract the plain text
  tagmark strip 'Click <insert:test>this</insert> to insert!'`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tagmark.StripTokens(input))
			return nil
		},
	}
}
