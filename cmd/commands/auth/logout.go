package auth

import (
	"errors"
	"fmt"
	"strings"

	"panelops/wfctl/internal/config"
	"panelops/wfctl/internal/services/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout [username]",
		Short: "Remove stored panel credentials",
		Long: `Remove the stored panel password for an account.

Without an argument the configured default account is used.

Example:
  wfctl auth logout`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runLogout,
		SilenceUsage: true,
	}

	return cmd
}

func runLogout(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	username := cfg.Username
	if len(args) == 1 {
		username = strings.TrimSpace(args[0])
	}
	if username == "" {
		return fmt.Errorf("no account configured and none given")
	}

	err = auth.DefaultStore().DeletePassword(username)
	if errors.Is(err, auth.ErrCredentialsNotFound) {
		fmt.Fprintf(cmd.OutOrStdout(), "No stored credentials for %s\n", username)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed credentials for %s\n", username)
	return nil
}
