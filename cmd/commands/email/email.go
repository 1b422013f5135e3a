package email

import "github.com/spf13/cobra"

// NewCommand returns the "email" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Manage email addresses",
		Long: `Manage the account's email addresses.

Creates are skipped when the address already exists; deletes are skipped
when it does not. Skipped and failed operations are recorded in the run
report instead of aborting.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(DeleteCommand())
	cmd.AddCommand(BatchCreateCommand())
	cmd.AddCommand(BatchDeleteCommand())

	return cmd
}
