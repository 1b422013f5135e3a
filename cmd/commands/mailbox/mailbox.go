package mailbox

import "github.com/spf13/cobra"

// NewCommand returns the "mailbox" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mailbox",
		Short: "Manage mailboxes",
		Long: `Manage the account's mailboxes.

Creates are skipped when the mailbox already exists; deletes and password
changes are skipped when it does not. Skipped and failed operations are
recorded in the run report instead of aborting.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(DeleteCommand())
	cmd.AddCommand(PasswdCommand())

	return cmd
}
