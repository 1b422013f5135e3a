package email

import (
	"fmt"

	"github.com/spf13/cobra"

	"panelops/wfctl/cmd/commands/cmdutil"
	"panelops/wfctl/internal/config"
	"panelops/wfctl/internal/resources"
	"panelops/wfctl/internal/util"
)

func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <address> --target <destination> [--target ...]",
		Short: "Create an email address",
		Long: `Create an email address routing to one or more destinations: mailbox
names or external addresses. Skipped when the address already exists.

Examples:
  wfctl email create bob@example.com --target bob
  wfctl email create info@example.com --target bob --target sales@other.net`,
		Args:         cobra.ExactArgs(1),
		RunE:         runCreate,
		SilenceUsage: true,
	}

	cmd.Flags().StringSlice("target", nil, "Destination mailbox or address (repeatable)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	address := args[0]
	if err := util.ValidateEmailAddress(address); err != nil {
		return err
	}

	targets, _ := cmd.Flags().GetStringSlice("target")
	if len(targets) == 0 {
		return fmt.Errorf("at least one --target is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, err := cmdutil.Connect(cfg)
	if err != nil {
		return err
	}

	client.Emails().Create(address, targets, resources.EmailSettings{})
	return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
}
