package mailbox

import (
	"github.com/spf13/cobra"

	"panelops/wfctl/cmd/commands/cmdutil"
	"panelops/wfctl/internal/config"
)

func DeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a mailbox",
		Long: `Delete a mailbox. Skipped when no mailbox with this name exists.

Example:
  wfctl mailbox delete bob`,
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

	client.Mailboxes().Delete(args[0])
	return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
}
