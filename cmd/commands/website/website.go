// Package website implements the "website" command group.
package website

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"panelops/wfctl/cmd/commands/cmdutil"
	"panelops/wfctl/internal/config"
	"panelops/wfctl/internal/resources"
)

// NewCommand returns the "website" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "website",
		Short:        "Manage websites",
		SilenceUsage: true,
	}

	cmd.AddCommand(listCommand())
	cmd.AddCommand(createCommand())
	cmd.AddCommand(deleteCommand())
	cmd.AddCommand(bandwidthCommand())

	return cmd
}

func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List websites",
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
			records, err := client.Websites().List()
			if err != nil {
				return err
			}
			cmdutil.PrintRecords(cmd.OutOrStdout(), records, "name", "ip", "https", "subdomains")
			return nil
		},
	}
}

func createCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name> --ip <address> --subdomain <host> [--app name=path ...]",
		Short: "Create a website",
		Long: `Create a website binding subdomains to applications on an IP.
Skipped when a website with this name already exists.

Examples:
  wfctl website create blog --ip 192.0.2.10 --subdomain blog.example.com --app wordpress=/
  wfctl website create shop --ip 192.0.2.10 --https --subdomain shop.example.com`,
		Args:         cobra.ExactArgs(1),
		RunE:         runCreate,
		SilenceUsage: true,
	}

	cmd.Flags().String("ip", "", "Server IP address the site binds to (required)")
	cmd.Flags().Bool("https", false, "Serve over HTTPS")
	cmd.Flags().StringSlice("subdomain", nil, "Full subdomain served by the site (repeatable)")
	cmd.Flags().StringSlice("app", nil, "Application mount as name=path (repeatable)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ip, _ := cmd.Flags().GetString("ip")
	if ip == "" {
		return fmt.Errorf("--ip is required")
	}

	settings := resources.WebsiteSettings{IP: ip}
	settings.HTTPS, _ = cmd.Flags().GetBool("https")
	settings.Subdomains, _ = cmd.Flags().GetStringSlice("subdomain")

	mounts, _ := cmd.Flags().GetStringSlice("app")
	for _, mount := range mounts {
		name, path, found := strings.Cut(mount, "=")
		if !found || name == "" || path == "" {
			return fmt.Errorf("invalid --app %q, want name=path", mount)
		}
		settings.SiteApps = append(settings.SiteApps, resources.SiteApp{Name: name, Path: path})
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, err := cmdutil.Connect(cfg)
	if err != nil {
		return err
	}

	client.Websites().Create(args[0], settings)
	return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
}

func deleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <name> --ip <address>",
		Short: "Delete a website",
		Long: `Delete a website. Skipped when no website with this name exists.

Example:
  wfctl website delete blog --ip 192.0.2.10`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ip, _ := cmd.Flags().GetString("ip")
			if ip == "" {
				return fmt.Errorf("--ip is required")
			}
			https, _ := cmd.Flags().GetBool("https")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client, err := cmdutil.Connect(cfg)
			if err != nil {
				return err
			}
			client.Websites().Delete(args[0], ip, https)
			return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
		},
	}

	cmd.Flags().String("ip", "", "Server IP address the site binds to (required)")
	cmd.Flags().Bool("https", false, "Site is served over HTTPS")

	return cmd
}

func bandwidthCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "bandwidth",
		Short:        "Show per-website traffic accounting",
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
			usage, err := client.Websites().BandwidthUsage()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), usage)
			return nil
		},
	}
}
