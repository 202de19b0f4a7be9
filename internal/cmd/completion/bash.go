package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdBash creates the bash completion command.
func NewCmdBash() *cobra.Command {
	return &cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate bash completion script for tagmark.

To load completions in your current shell session:

  source <(tagmark completion bash)

To load completions for every new session:

  # Linux
  tagmark completion bash > /etc/bash_completion.d/tagmark

  # macOS (requires bash-completion)
  tagmark completion bash > $(brew --prefix)/etc/bash_completion.d/tagmark`,
		Example: `  # Load in current session
  source <(tagmark completion bash)

  # Install permanently (Linux)
  tagmark completion bash | sudo tee /etc/bash_completion.d/tagmark > /dev/null

  # Install permanently (macOS with Homebrew)
  tagmark completion bash > $(brew --prefix)/etc/bash_completion.d/tagmark`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	}
}
