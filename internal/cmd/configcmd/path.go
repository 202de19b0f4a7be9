package configcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/tagmark/internal/config"
)

// NewCmdPath creates the config path command.
func NewCmdPath() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Example: `  # Edit the config in place
  $EDITOR "$(tagmark config path)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.DefaultConfigPath())
			return nil
		},
	}
}
