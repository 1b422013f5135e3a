package history

import "github.com/spf13/cobra"

// NewCommand returns the "history" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "View and manage run history",
		Long: "View past runs recorded locally and prune old entries.\n\n" +
			"Run history is stored locally in ~/.config/wfctl/wfctl.db.",
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(PruneCommand())

	return cmd
}
