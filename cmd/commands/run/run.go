// Package run implements "wfctl run": execute a YAML step file against
// the panel and render the resulting report.
package run

import (
	"fmt"

	"github.com/spf13/cobra"

	"panelops/wfctl/cmd/commands/cmdutil"
	"panelops/wfctl/internal/config"
	"panelops/wfctl/internal/script"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Execute a script of panel operations",
		Long: `Execute a YAML script of panel operations.

Steps run strictly in order. A failed step is recorded and the run
continues; only an unreadable script or a failed login aborts the run.

Script format:
  steps:
    - action: create_mailbox
      args:
        mailbox: bob
    - action: create_email
      args:
        email_address: bob@example.com
        targets: [bob]

Examples:
  wfctl run provision.yaml
  wfctl run provision.yaml --report runs.html`,
		Args:         cobra.ExactArgs(1),
		RunE:         runScript,
		SilenceUsage: true,
	}

	cmd.Flags().String("report", "", "Append the HTML report to this file (overrides the report-file setting)")

	return cmd
}

func runScript(cmd *cobra.Command, args []string) error {
	path := args[0]

	s, err := script.Load(path)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if reportFlag, _ := cmd.Flags().GetString("report"); reportFlag != "" {
		cfg.ReportFile = reportFlag
	}

	client, err := cmdutil.Connect(cfg)
	if err != nil {
		return err
	}

	script.Execute(client, s)

	if err := cmdutil.Finish(cmd, client, cfg, path); err != nil {
		return fmt.Errorf("run finished but results could not be recorded: %w", err)
	}
	return nil
}
