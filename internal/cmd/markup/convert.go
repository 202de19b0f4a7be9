package markup

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/tagmark/pkg/tagmark"
)

type convertOptions struct {
	flavor   string
	fromHTML bool
}

// NewCmdConvert creates the convert command.
func NewCmdConvert() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [input]",
		Short: "Convert markdown or HTML to tag markup",
		Long: `Convert markdown to tag markup without parsing the result.

With --from-html the input is first converted from HTML to markdown,
then to tag markup. The github flavor handles inline spans only; the
document flavor also flattens headings, paragraphs, and code blocks.`,
		Example: `  # Convert inline markdown
  tagmark convert 'a **bold** [link](https://example.com)'

  # Convert a whole document
  cat README.md | tagmark convert --flavor document

  # Convert HTML
  curl -s https://example.com | tagmark convert --from-html --flavor document`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.flavor, "flavor", "", "markdown flavor: github, document")
	cmd.Flags().BoolVar(&opts.fromHTML, "from-html", false, "treat input as HTML and convert via markdown")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, opts *convertOptions) error {
	cfg := loadConfig(cmd)

	flavorName := cfg.Flavor
	if opts.flavor != "" {
		flavorName = opts.flavor
	}
	flavor, err := tagmark.ParseFlavor(flavorName)
	if err != nil {
		return err
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	if opts.fromHTML {
		input, err = htmltomarkdown.ConvertString(input)
		if err != nil {
			return fmt.Errorf("failed to convert HTML: %w", err)
		}
		// Block-level HTML needs the document flavor to survive.
		flavor = tagmark.FlavorDocument
	}

	fmt.Fprintln(cmd.OutOrStdout(), tagmark.FromMarkdown(input, flavor))
	return nil
}
