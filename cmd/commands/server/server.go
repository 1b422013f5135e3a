// Package server implements the "server" command group: read-only server
// information and remote shell commands.
package server

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"panelops/wfctl/cmd/commands/cmdutil"
	"panelops/wfctl/internal/config"
)

// NewCommand returns the "server" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "server",
		Short:        "Inspect servers and run remote commands",
		SilenceUsage: true,
	}

	cmd.AddCommand(ipsCommand())
	cmd.AddCommand(machinesCommand())
	cmd.AddCommand(execCommand())

	return cmd
}

func ipsCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "ips",
		Short:        "List servers and their IP addresses",
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
			records, err := client.Info().IPs()
			if err != nil {
				return err
			}
			cmdutil.PrintRecords(cmd.OutOrStdout(), records, "machine", "ip", "is_main")
			return nil
		},
	}
}

func machinesCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "machines",
		Short:        "List machines available to the account",
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
			records, err := client.Info().Machines()
			if err != nil {
				return err
			}
			cmdutil.PrintRecords(cmd.OutOrStdout(), records, "name", "operating_system", "location")
			return nil
		},
	}
}

func execCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command...>",
		Short: "Run a shell command on the home server",
		Long: `Run a shell command on the account's home server. The command's output
is recorded in the run report.

Example:
  wfctl server exec ls -la '~/webapps'`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			command := strings.TrimSpace(strings.Join(args, " "))
			if command == "" {
				return fmt.Errorf("command cannot be empty")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client, err := cmdutil.Connect(cfg)
			if err != nil {
				return err
			}
			client.Info().System(command)
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}
}
