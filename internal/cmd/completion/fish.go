package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdFish creates the fish completion command.
func NewCmdFish() *cobra.Command {
	return &cobra.Command{
		Use:   "fish",
		Short: "Generate fish completion script",
		Long: `Generate fish completion script for tagmark.

To load completions in your current shell session:

  tagmark completion fish | source

To load completions for every new session:

  tagmark completion fish > ~/.config/fish/completions/tagmark.fish`,
		Example: `  # Load in current session
  tagmark completion fish | source

  # Install permanently
  tagmark completion fish > ~/.config/fish/completions/tagmark.fish`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	}
}
