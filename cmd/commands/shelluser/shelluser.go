// Package shelluser implements the "user" command group: shell users on
// the account's server.
package shelluser

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/spf13/cobra"

	"panelops/wfctl/cmd/commands/cmdutil"
	"panelops/wfctl/internal/config"
)

// NewCommand returns the "user" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "user",
		Short:        "Manage shell users",
		SilenceUsage: true,
	}

	cmd.AddCommand(listCommand())
	cmd.AddCommand(createCommand())
	cmd.AddCommand(deleteCommand())
	cmd.AddCommand(passwdCommand())

	return cmd
}

func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List shell users",
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
			records, err := client.ShellUsers().List()
			if err != nil {
				return err
			}
			cmdutil.PrintRecords(cmd.OutOrStdout(), records, "username", "shell", "groups")
			return nil
		},
	}
}

func createCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <username>",
		Short: "Create a shell user",
		Long: `Create a shell user. Skipped when a user with this name already exists.

Examples:
  wfctl user create deploy
  wfctl user create deploy --shell bash --group www`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, _ := cmd.Flags().GetString("shell")
			groups, _ := cmd.Flags().GetStringSlice("group")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client, err := cmdutil.Connect(cfg)
			if err != nil {
				return err
			}
			client.ShellUsers().Create(args[0], shell, groups...)
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}

	cmd.Flags().String("shell", "bash", "Login shell")
	cmd.Flags().StringSlice("group", nil, "Additional group (repeatable)")

	return cmd
}

func deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <username>",
		Short: "Delete a shell user",
		Long: `Delete a shell user. Skipped when no user with this name exists.

Example:
  wfctl user delete deploy`,
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
			client.ShellUsers().Delete(args[0])
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}
}

func passwdCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passwd <username>",
		Short: "Change a shell user's password",
		Long: `Change a shell user's password. Skipped when no user with this name
exists.

Example:
  wfctl user passwd deploy`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, _ := cmd.Flags().GetString("password")
			password = strings.TrimSpace(password)
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Enter new password: ")
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
			client.ShellUsers().ChangePassword(args[0], password)
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}

	cmd.Flags().String("password", "", "New password (optional, overrides prompt)")

	return cmd
}
