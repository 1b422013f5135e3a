package email

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"panelops/wfctl/cmd/commands/cmdutil"
	"panelops/wfctl/internal/config"
	"panelops/wfctl/internal/resources"
	"panelops/wfctl/internal/util"
)

func BatchCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch-create <domain> --target <destination> [--target ...]",
		Short: "Create the standard addresses for a domain",
		Long: `Create one address per prefix for a domain, all routing to the same
destinations. Without --prefix the standard set is used:

  ` + strings.Join(resources.StandardPrefixes, ", ") + `

Addresses that already exist are skipped individually; the rest are
still created.

Examples:
  wfctl email batch-create example.com --target bob
  wfctl email batch-create example.com --target bob --prefix info --prefix sales`,
		Args:         cobra.ExactArgs(1),
		RunE:         runBatchCreate,
		SilenceUsage: true,
	}

	cmd.Flags().StringSlice("target", nil, "Destination mailbox or address (repeatable)")
	cmd.Flags().StringSlice("prefix", nil, "Address prefix (repeatable; defaults to the standard set)")

	return cmd
}

func runBatchCreate(cmd *cobra.Command, args []string) error {
	domain := args[0]
	if err := util.ValidateDomainName(domain); err != nil {
		return err
	}

	targets, _ := cmd.Flags().GetStringSlice("target")
	if len(targets) == 0 {
		return fmt.Errorf("at least one --target is required")
	}
	prefixes, _ := cmd.Flags().GetStringSlice("prefix")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, err := cmdutil.Connect(cfg)
	if err != nil {
		return err
	}

	client.Emails().CreateBatch(domain, prefixes, targets)
	return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
}

func BatchDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch-delete <domain>",
		Short: "Delete the standard addresses for a domain",
		Long: `Delete one address per prefix for a domain. Without --prefix the
standard set is used. Addresses that do not exist are skipped
individually.

Example:
  wfctl email batch-delete example.com`,
		Args:         cobra.ExactArgs(1),
		RunE:         runBatchDelete,
		SilenceUsage: true,
	}

	cmd.Flags().StringSlice("prefix", nil, "Address prefix (repeatable; defaults to the standard set)")

	return cmd
}

func runBatchDelete(cmd *cobra.Command, args []string) error {
	domain := args[0]
	if err := util.ValidateDomainName(domain); err != nil {
		return err
	}
	prefixes, _ := cmd.Flags().GetStringSlice("prefix")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, err := cmdutil.Connect(cfg)
	if err != nil {
		return err
	}

	client.Emails().DeleteBatch(domain, prefixes)
	return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
}
