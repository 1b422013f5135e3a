package cmd

import (
	"os"

	"panelops/wfctl/cmd/commands/app"
	"panelops/wfctl/cmd/commands/auth"
	cfgcmd "panelops/wfctl/cmd/commands/config"
	"panelops/wfctl/cmd/commands/cron"
	"panelops/wfctl/cmd/commands/db"
	"panelops/wfctl/cmd/commands/dns"
	"panelops/wfctl/cmd/commands/domain"
	"panelops/wfctl/cmd/commands/email"
	"panelops/wfctl/cmd/commands/history"
	"panelops/wfctl/cmd/commands/mailbox"
	"panelops/wfctl/cmd/commands/run"
	"panelops/wfctl/cmd/commands/server"
	"panelops/wfctl/cmd/commands/shelluser"
	"panelops/wfctl/cmd/commands/website"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "wfctl",
		Short: "A robust client for the WebFaction control panel API",
		Long: `wfctl manages hosted resources through the WebFaction control panel API:
mailboxes, email addresses, domains, websites, applications, databases,
DNS overrides, shell users, and cron jobs.

Operations are guarded: creates are skipped when the resource already
exists, deletes and updates when it does not. Every outcome lands in a
run report instead of aborting the run, so multi-step scripts always run
to completion.

Quick start:
  wfctl auth login alice           # Store your panel password
  wfctl mailbox list               # List mailboxes
  wfctl run provision.yaml         # Execute a script of operations
  wfctl history list               # Review past runs`,
	}

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(run.NewCommand())
	cmd.AddCommand(history.NewCommand())
	cmd.AddCommand(mailbox.NewCommand())
	cmd.AddCommand(email.NewCommand())
	cmd.AddCommand(domain.NewCommand())
	cmd.AddCommand(website.NewCommand())
	cmd.AddCommand(app.NewCommand())
	cmd.AddCommand(db.NewCommand())
	cmd.AddCommand(dns.NewCommand())
	cmd.AddCommand(shelluser.NewCommand())
	cmd.AddCommand(cron.NewCommand())
	cmd.AddCommand(server.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
