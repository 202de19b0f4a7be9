// Package root provides the root command for the tagmark CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/tagmark/internal/cmd/completion"
	"github.com/open-cli-collective/tagmark/internal/cmd/configcmd"
	"github.com/open-cli-collective/tagmark/internal/cmd/markup"
	"github.com/open-cli-collective/tagmark/internal/cmd/play"
	"github.com/open-cli-collective/tagmark/internal/version"
)

// NewCmdRoot creates the root command for tagmark.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tagmark",
		Short: "A command-line interface for tag-based text markup",
		Long: `tagmark parses, renders, and converts tag-based text markup such as
<bold>Hello</bold> or <color:red>alert</color>.

It provides commands for parsing markup into styled text trees,
rendering them with ANSI colors, escaping and stripping tags, and
converting markdown or HTML into markup.

Try it out: tagmark play`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/tagmark/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json, yaml, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("tagmark version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(markup.NewCmdParse())
	cmd.AddCommand(markup.NewCmdRender())
	cmd.AddCommand(markup.NewCmdEscape())
	cmd.AddCommand(markup.NewCmdStrip())
	cmd.AddCommand(markup.NewCmdConvert())
	cmd.AddCommand(play.NewCmdPlay())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
