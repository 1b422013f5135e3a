package mailbox

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/spf13/cobra"

	"panelops/wfctl/cmd/commands/cmdutil"
	"panelops/wfctl/internal/config"
)

func PasswdCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passwd <name>",
		Short: "Change a mailbox password",
		Long: `Change a mailbox password. Skipped when no mailbox with this name exists.

Example:
  wfctl mailbox passwd bob`,
		Args:         cobra.ExactArgs(1),
		RunE:         runPasswd,
		SilenceUsage: true,
	}

	cmd.Flags().String("password", "", "New password (optional, overrides prompt)")

	return cmd
}

func runPasswd(cmd *cobra.Command, args []string) error {
	password, _ := cmd.Flags().GetString("password")
	password = strings.TrimSpace(password)
	if password == "" {
		fmt.Fprint(cmd.OutOrStdout(), "Enter new mailbox password: ")
		bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		password = strings.TrimSpace(string(bytes))
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, err := cmdutil.Connect(cfg)
	if err != nil {
		return err
	}

	client.Mailboxes().ChangePassword(args[0], password)
	return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
}
