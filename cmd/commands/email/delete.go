package email

import (
	"github.com/spf13/cobra"

	"panelops/wfctl/cmd/commands/cmdutil"
	"panelops/wfctl/internal/config"
)

func DeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <address>",
		Short: "Delete an email address",
		Long: `Delete an email address. Skipped when the address does not exist.

Example:
  wfctl email delete bob@example.com`,
		Args:         cobra.ExactArgs(1),
		RunE:         runDelete,
		SilenceUsage: true,
	}

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, err := cmdutil.Connect(cfg)
	if err != nil {
		return err
	}

	client.Emails().Delete(args[0])
	return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
}
