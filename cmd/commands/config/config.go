package config

import (
	"panelops/wfctl/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage wfctl configuration",
		Long: "View and modify persistent wfctl settings.\n\n" +
			"Configuration is stored at ~/.config/wfctl/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
