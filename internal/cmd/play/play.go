// Package play provides an interactive markup playground.
package play

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/tagmark/internal/view"
	"github.com/open-cli-collective/tagmark/pkg/tagmark"
	"github.com/open-cli-collective/tagmark/pkg/text"
)

// NewCmdPlay creates the play command.
func NewCmdPlay() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Interactive tag markup playground",
		Long: `Experiment with tag markup interactively.

Each round prompts for markup and optional placeholder bindings, then
shows the rendered result and its canonical serialized form. Submit an
empty input to quit.`,
		Example: `  # Start the playground
  tagmark play`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd)
		},
	}
}

func runPlay(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	engine := tagmark.New()
	renderer := view.NewRenderer(view.FormatPlain, false)
	renderer.SetWriter(out)

	for {
		var (
			input        string
			placeholders string
		)

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Markup").
					Description("Tag markup to parse; empty to quit").
					Placeholder("<bold>Hello</bold> <red>world</red>").
					Value(&input),

				huh.NewText().
					Title("Placeholders (optional)").
					Description("One name=value binding per line").
					Value(&placeholders),
			),
		)

		if err := form.Run(); err != nil {
			return err
		}
		if strings.TrimSpace(input) == "" {
			return nil
		}

		opts := placeholderOptions(placeholders)
		tree, err := engine.Parse(input, opts...)
		if err != nil {
			renderer.Error(err.Error())
			fmt.Fprintln(out)
			continue
		}

		renderer.RenderText(text.Render(tree))

		if canonical, err := engine.Serialize(tree); err == nil {
			renderer.RenderKeyValue("canonical", canonical)
		}
		fmt.Fprintln(out)
	}
}

func placeholderOptions(raw string) []tagmark.ParseOption {
	pairs := make(map[string]string)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if name, value, ok := strings.Cut(line, "="); ok {
			pairs[name] = value
		}
	}
	if len(pairs) == 0 {
		return nil
	}
	return []tagmark.ParseOption{tagmark.Placeholders(pairs)}
}
