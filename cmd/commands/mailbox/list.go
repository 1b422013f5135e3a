package mailbox

import (
	"github.com/spf13/cobra"

	"panelops/wfctl/cmd/commands/cmdutil"
	"panelops/wfctl/internal/config"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List mailboxes",
		RunE:         runList,
		SilenceUsage: true,
	}

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, err := cmdutil.Connect(cfg)
	if err != nil {
		return err
	}

	records, err := client.Mailboxes().List()
	if err != nil {
		return err
	}
	cmdutil.PrintRecords(cmd.OutOrStdout(), records, "mailbox", "enable_spam_protection", "discard_spam")
	return nil
}
