// Package configcmd provides configuration management commands.
package configcmd

import (
	"github.com/spf13/cobra"
)

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage tagmark configuration",
		Long:  `View and manage the tagmark configuration file.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdPath())
	cmd.AddCommand(NewCmdInit())

	return cmd
}
