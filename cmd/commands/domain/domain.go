// Package domain implements the "domain" command group. The panel accepts
// domain creates and deletes idempotently, so these operations carry no
// existence guard.
package domain

import (
	"github.com/spf13/cobra"

	"panelops/wfctl/cmd/commands/cmdutil"
	"panelops/wfctl/internal/config"
	"panelops/wfctl/internal/util"
)

// NewCommand returns the "domain" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "domain",
		Short:        "Manage domains and subdomains",
		SilenceUsage: true,
	}

	cmd.AddCommand(listCommand())
	cmd.AddCommand(createCommand())
	cmd.AddCommand(deleteCommand())

	return cmd
}

func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List domains",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client, err := cmdutil.Connect(cfg)
			if err != nil {
				return err
			}
			records, err := client.Domains().List()
			if err != nil {
				return err
			}
			cmdutil.PrintRecords(cmd.OutOrStdout(), records, "domain", "subdomains")
			return nil
		},
	}
}

func createCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <domain> [subdomain ...]",
		Short: "Create a domain, optionally with subdomains",
		Long: `Create a domain, optionally with subdomains.

Examples:
  wfctl domain create example.com
  wfctl domain create example.com www mail`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := util.ValidateDomainName(args[0]); err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client, err := cmdutil.Connect(cfg)
			if err != nil {
				return err
			}
			client.Domains().Create(args[0], args[1:]...)
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}
}

func deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <domain> [subdomain ...]",
		Short: "Delete a domain or some of its subdomains",
		Long: `Delete a domain. With subdomains given, only those are removed.

Examples:
  wfctl domain delete example.com
  wfctl domain delete example.com www`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client, err := cmdutil.Connect(cfg)
			if err != nil {
				return err
			}
			client.Domains().Delete(args[0], args[1:]...)
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}
}
