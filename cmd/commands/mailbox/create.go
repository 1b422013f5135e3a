package mailbox

import (
	"github.com/spf13/cobra"

	"panelops/wfctl/cmd/commands/cmdutil"
	"panelops/wfctl/internal/config"
	"panelops/wfctl/internal/resources"
	"panelops/wfctl/internal/util"
)

func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a mailbox",
		Long: `Create a mailbox. Skipped when a mailbox with this name already exists.

Examples:
  wfctl mailbox create bob
  wfctl mailbox create bob --discard-spam`,
		Args:         cobra.ExactArgs(1),
		RunE:         runCreate,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("no-spam-protection", false, "Disable spam protection")
	cmd.Flags().Bool("discard-spam", false, "Discard detected spam instead of keeping it")
	cmd.Flags().String("spam-redirect-folder", "", "Folder receiving detected spam")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := util.ValidateMailboxName(name); err != nil {
		return err
	}

	settings := resources.DefaultMailboxSettings()
	if noSpam, _ := cmd.Flags().GetBool("no-spam-protection"); noSpam {
		settings.SpamProtection = false
	}
	settings.DiscardSpam, _ = cmd.Flags().GetBool("discard-spam")
	settings.SpamRedirectFolder, _ = cmd.Flags().GetString("spam-redirect-folder")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, err := cmdutil.Connect(cfg)
	if err != nil {
		return err
	}

	client.Mailboxes().Create(name, settings)
	return cmdutil.Finish(cmd, client, cfg, cmd.CommandPath())
}
