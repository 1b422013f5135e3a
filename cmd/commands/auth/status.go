package auth

import (
	"errors"
	"fmt"

	"panelops/wfctl/internal/config"
	"panelops/wfctl/internal/services/auth"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which account has stored credentials",
		Long: `Show the configured account and whether a password is stored for it.

Example:
  wfctl auth status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Username == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No account configured.")
				return nil
			}

			_, err = auth.DefaultStore().GetPassword(cfg.Username)
			switch {
			case err == nil:
				fmt.Fprintf(cmd.OutOrStdout(), "%s: logged in\n", cfg.Username)
			case errors.Is(err, auth.ErrCredentialsNotFound):
				fmt.Fprintf(cmd.OutOrStdout(), "%s: not logged in\n", cfg.Username)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%s: error (%v)\n", cfg.Username, err)
			}
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
