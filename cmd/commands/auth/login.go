package auth

import (
	"fmt"
	"os"
	"strings"

	"panelops/wfctl/internal/api"
	"panelops/wfctl/internal/config"
	"panelops/wfctl/internal/services/auth"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Store the panel password for an account",
		Long: `Store the control panel password for an account in the local keychain.

The credentials are verified against the panel before they are saved, and
the account becomes the configured default.

Example:
  wfctl auth login alice`,
		Args:         cobra.ExactArgs(1),
		RunE:         runLogin,
		SilenceUsage: true,
	}

	cmd.Flags().String("password", "", "Panel password (optional, overrides prompt)")
	cmd.Flags().Bool("no-verify", false, "Skip the live login check before saving")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	username := strings.TrimSpace(args[0])
	if username == "" {
		return fmt.Errorf("username is required")
	}

	password, _ := cmd.Flags().GetString("password")
	password = strings.TrimSpace(password)
	if password == "" {
		fmt.Fprint(cmd.OutOrStdout(), "Enter panel password: ")
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

	if skip, _ := cmd.Flags().GetBool("no-verify"); !skip {
		if err := verifyLogin(cfg, username, password); err != nil {
			return err
		}
	}

	if err := auth.DefaultStore().SetPassword(username, password); err != nil {
		return err
	}

	cfg.Username = username
	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved credentials for %s\n", username)
	return nil
}

func verifyLogin(cfg *config.Config, username, password string) error {
	url := cfg.APIURL
	if url == "" {
		url = api.DefaultURL
	}
	transport, err := api.Dial(url)
	if err != nil {
		return err
	}
	if _, err := api.Login(transport, username, password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	return nil
}
