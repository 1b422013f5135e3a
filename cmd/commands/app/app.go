// Package app implements the "app" command group.
package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"panelops/wfctl/cmd/commands/cmdutil"
	"panelops/wfctl/internal/config"
	"panelops/wfctl/internal/resources"
)

// NewCommand returns the "app" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "app",
		Short:        "Manage applications",
		SilenceUsage: true,
	}

	cmd.AddCommand(listCommand())
	cmd.AddCommand(typesCommand())
	cmd.AddCommand(createCommand())
	cmd.AddCommand(deleteCommand())

	return cmd
}

func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List applications",
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
			records, err := client.Apps().List()
			if err != nil {
				return err
			}
			cmdutil.PrintRecords(cmd.OutOrStdout(), records, "name", "type", "port", "autostart")
			return nil
		},
	}
}

func typesCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "types",
		Short:        "List installable application types",
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
			records, err := client.Apps().Types()
			if err != nil {
				return err
			}
			cmdutil.PrintRecords(cmd.OutOrStdout(), records, "name")
			return nil
		},
	}
}

func createCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name> --type <app-type>",
		Short: "Create an application",
		Long: `Create an application. Skipped when an application with this name
already exists.

Examples:
  wfctl app create blog --type wordpress
  wfctl app create api --type custom_app_with_port --open-port`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			appType, _ := cmd.Flags().GetString("type")
			if appType == "" {
				return fmt.Errorf("--type is required")
			}

			settings := resources.AppSettings{Type: appType}
			settings.Autostart, _ = cmd.Flags().GetBool("autostart")
			settings.ExtraInfo, _ = cmd.Flags().GetString("extra-info")
			settings.OpenPort, _ = cmd.Flags().GetBool("open-port")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client, err := cmdutil.Connect(cfg)
			if err != nil {
				return err
			}
			client.Apps().Create(args[0], settings)
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}

	cmd.Flags().String("type", "", "Application type (required; see 'wfctl app types')")
	cmd.Flags().Bool("autostart", false, "Start the application automatically")
	cmd.Flags().String("extra-info", "", "Type-specific extra configuration")
	cmd.Flags().Bool("open-port", false, "Open a port for the application")

	return cmd
}

func deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an application",
		Long: `Delete an application. Skipped when no application with this name exists.

Example:
  wfctl app delete blog`,
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
			client.Apps().Delete(args[0])
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}
}
