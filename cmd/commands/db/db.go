// Package db implements the "db" command group: databases and database
// users.
package db

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/spf13/cobra"

	"panelops/wfctl/cmd/commands/cmdutil"
	"panelops/wfctl/internal/config"
)

// NewCommand returns the "db" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "db",
		Short:        "Manage databases and database users",
		SilenceUsage: true,
	}

	cmd.AddCommand(listCommand())
	cmd.AddCommand(createCommand())
	cmd.AddCommand(deleteCommand())
	cmd.AddCommand(addonCommand())
	cmd.AddCommand(userCommand())

	return cmd
}

func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List databases",
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
			records, err := client.Databases().List()
			if err != nil {
				return err
			}
			cmdutil.PrintRecords(cmd.OutOrStdout(), records, "name", "db_type", "server")
			return nil
		},
	}
}

func createCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a database",
		Long: `Create a database. Skipped when a database with this name already exists.

Examples:
  wfctl db create appdata
  wfctl db create appdata --type mysql`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbType, _ := cmd.Flags().GetString("type")
			password, err := readPassword(cmd, "Enter database password: ")
			if err != nil {
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
			client.Databases().Create(args[0], dbType, password)
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}

	cmd.Flags().String("type", "postgresql", "Database type: postgresql or mysql")
	cmd.Flags().String("password", "", "Database password (optional, overrides prompt)")

	return cmd
}

func deleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a database",
		Long: `Delete a database. Skipped when no database with this name exists.

Example:
  wfctl db delete appdata`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbType, _ := cmd.Flags().GetString("type")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client, err := cmdutil.Connect(cfg)
			if err != nil {
				return err
			}
			client.Databases().Delete(args[0], dbType)
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}

	cmd.Flags().String("type", "postgresql", "Database type: postgresql or mysql")

	return cmd
}

func userCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "user",
		Short:        "Manage database users",
		SilenceUsage: true,
	}

	cmd.AddCommand(userListCommand())
	cmd.AddCommand(userCreateCommand())
	cmd.AddCommand(userDeleteCommand())
	cmd.AddCommand(userPasswdCommand())
	cmd.AddCommand(userOwnerCommand())
	cmd.AddCommand(userGrantCommand())
	cmd.AddCommand(userRevokeCommand())

	return cmd
}

func userListCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List database users",
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
			records, err := client.Databases().ListUsers()
			if err != nil {
				return err
			}
			cmdutil.PrintRecords(cmd.OutOrStdout(), records, "username", "db_type", "server")
			return nil
		},
	}
}

func userCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <username>",
		Short: "Create a database user",
		Long: `Create a database user. Skipped when a user with this name already exists.

Example:
  wfctl db user create app_rw --type postgresql`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbType, _ := cmd.Flags().GetString("type")
			password, err := readPassword(cmd, "Enter database user password: ")
			if err != nil {
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
			client.Databases().CreateUser(args[0], password, dbType)
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}

	cmd.Flags().String("type", "postgresql", "Database type: postgresql or mysql")
	cmd.Flags().String("password", "", "Password (optional, overrides prompt)")

	return cmd
}

func userDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <username>",
		Short: "Delete a database user",
		Args:  cobra.ExactArgs(1),
		Long: `Delete a database user. Skipped when no user with this name exists.

Example:
  wfctl db user delete app_rw --type postgresql`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbType, _ := cmd.Flags().GetString("type")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client, err := cmdutil.Connect(cfg)
			if err != nil {
				return err
			}
			client.Databases().DeleteUser(args[0], dbType)
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}

	cmd.Flags().String("type", "postgresql", "Database type: postgresql or mysql")

	return cmd
}

func userPasswdCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passwd <username>",
		Short: "Change a database user's password",
		Args:  cobra.ExactArgs(1),
		Long: `Change a database user's password. Skipped when no user with this
name exists.

Example:
  wfctl db user passwd app_rw --type postgresql`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbType, _ := cmd.Flags().GetString("type")
			password, err := readPassword(cmd, "Enter new password: ")
			if err != nil {
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
			client.Databases().ChangeUserPassword(args[0], password, dbType)
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}

	cmd.Flags().String("type", "postgresql", "Database type: postgresql or mysql")
	cmd.Flags().String("password", "", "Password (optional, overrides prompt)")

	return cmd
}

func addonCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addon <database> <addon>",
		Short: "Enable a database addon",
		Long: `Enable an addon on a database, such as postgis. Skipped when no
database with this name exists.

Example:
  wfctl db addon geodata postgis`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbType, _ := cmd.Flags().GetString("type")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client, err := cmdutil.Connect(cfg)
			if err != nil {
				return err
			}
			client.Databases().EnableAddon(args[0], dbType, args[1])
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}

	cmd.Flags().String("type", "postgresql", "Database type: postgresql or mysql")

	return cmd
}

func userOwnerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner <username> <database>",
		Short: "Make a user the owner of a database",
		Long: `Make a database user the owner of a database. Skipped when no user
with this name exists.

Example:
  wfctl db user owner app_admin appdata`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbType, _ := cmd.Flags().GetString("type")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client, err := cmdutil.Connect(cfg)
			if err != nil {
				return err
			}
			client.Databases().MakeUserOwner(args[0], args[1], dbType)
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}

	cmd.Flags().String("type", "postgresql", "Database type: postgresql or mysql")

	return cmd
}

func userGrantCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grant <username> <database>",
		Short: "Grant a user full permissions on a database",
		Long: `Grant a database user full permissions on a database. Skipped when no
user with this name exists.

Example:
  wfctl db user grant app_rw appdata`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbType, _ := cmd.Flags().GetString("type")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client, err := cmdutil.Connect(cfg)
			if err != nil {
				return err
			}
			client.Databases().GrantPermissions(args[0], args[1], dbType)
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}

	cmd.Flags().String("type", "postgresql", "Database type: postgresql or mysql")

	return cmd
}

func userRevokeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revoke <username> <database>",
		Short: "Revoke a user's permissions on a database",
		Long: `Revoke a database user's permissions on a database. Skipped when no
user with this name exists.

Example:
  wfctl db user revoke app_rw appdata`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbType, _ := cmd.Flags().GetString("type")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client, err := cmdutil.Connect(cfg)
			if err != nil {
				return err
			}
			client.Databases().RevokePermissions(args[0], args[1], dbType)
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}

	cmd.Flags().String("type", "postgresql", "Database type: postgresql or mysql")

	return cmd
}

func readPassword(cmd *cobra.Command, prompt string) (string, error) {
	password, _ := cmd.Flags().GetString("password")
	password = strings.TrimSpace(password)
	if password == "" {
		fmt.Fprint(cmd.OutOrStdout(), prompt)
		bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", err
		}
		password = strings.TrimSpace(string(bytes))
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}
