// Package cron implements the "cron" command group. The panel appends and
// removes raw crontab lines, so these operations are unguarded.
package cron

import (
	"strings"

	"github.com/spf13/cobra"

	"panelops/wfctl/cmd/commands/cmdutil"
	"panelops/wfctl/internal/config"
)

// NewCommand returns the "cron" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "cron",
		Short:        "Manage crontab lines",
		SilenceUsage: true,
	}

	cmd.AddCommand(addCommand())
	cmd.AddCommand(removeCommand())

	return cmd
}

func addCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <line...>",
		Short: "Append a crontab line",
		Long: `Append a line to the account's crontab.

Example:
  wfctl cron add '0 3 * * * ~/bin/backup.sh'`,
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
			client.Crons().Create(strings.Join(args, " "))
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}
}

func removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <line...>",
		Short: "Remove a crontab line",
		Long: `Remove a line from the account's crontab. The line must match the one
that was added.

Example:
  wfctl cron remove '0 3 * * * ~/bin/backup.sh'`,
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
			client.Crons().Delete(strings.Join(args, " "))
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}
}
