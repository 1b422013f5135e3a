// Package dns implements the "dns" command group: DNS overrides for
// hosted domains. Overrides carry no existence guard; the panel accepts
// them idempotently.
package dns

import (
	"github.com/spf13/cobra"

	"panelops/wfctl/cmd/commands/cmdutil"
	"panelops/wfctl/internal/config"
	"panelops/wfctl/internal/resources"
	"panelops/wfctl/internal/util"
)

// NewCommand returns the "dns" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "dns",
		Short:        "Manage DNS overrides",
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
		Short:        "List DNS overrides",
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
			records, err := client.DNS().List()
			if err != nil {
				return err
			}
			cmdutil.PrintRecords(cmd.OutOrStdout(), records, "domain", "a_ip", "cname", "mx_name", "spf_record")
			return nil
		},
	}
}

func overrideFlags(cmd *cobra.Command) {
	cmd.Flags().String("a", "", "A record IP address")
	cmd.Flags().String("aaaa", "", "AAAA record IPv6 address")
	cmd.Flags().String("cname", "", "CNAME target")
	cmd.Flags().String("mx-name", "", "MX mail server name")
	cmd.Flags().String("mx-priority", "", "MX priority")
	cmd.Flags().String("spf", "", "SPF record text")
}

func overrideFromFlags(cmd *cobra.Command) resources.DNSOverride {
	var override resources.DNSOverride
	override.AIP, _ = cmd.Flags().GetString("a")
	override.AAAAIP, _ = cmd.Flags().GetString("aaaa")
	override.CNAME, _ = cmd.Flags().GetString("cname")
	override.MXName, _ = cmd.Flags().GetString("mx-name")
	override.MXPriority, _ = cmd.Flags().GetString("mx-priority")
	override.SPFRecord, _ = cmd.Flags().GetString("spf")
	return override
}

func createCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <domain>",
		Short: "Create a DNS override",
		Long: `Create a DNS override for a domain.

Examples:
  wfctl dns create example.com --a 192.0.2.10
  wfctl dns create example.com --mx-name mail.example.com --mx-priority 10`,
		Args:         cobra.ExactArgs(1),
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
			client.DNS().CreateOverride(args[0], overrideFromFlags(cmd))
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}

	overrideFlags(cmd)
	return cmd
}

func deleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <domain>",
		Short: "Delete a DNS override",
		Long: `Delete a DNS override. The record values must match the override
being removed.

Example:
  wfctl dns delete example.com --a 192.0.2.10`,
		Args:         cobra.ExactArgs(1),
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
			client.DNS().DeleteOverride(args[0], overrideFromFlags(cmd))
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}

	overrideFlags(cmd)
	return cmd
}
