package history

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"panelops/wfctl/internal/runstore"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs",
		Long: `List recent runs stored locally.

Examples:
  wfctl history list
  wfctl history list --limit 50
  wfctl history list -o json`,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().Int("limit", 25, "Number of runs to display")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than 0")
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "table"
	}

	repo, err := runstore.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	runs, err := repo.ListRuns(limit)
	if err != nil {
		return err
	}

	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(runs)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSCRIPT\tACCOUNT\tOK\tFAILED")
	fmt.Fprintln(w, "--\t----\t------\t-------\t--\t------")
	for _, run := range runs {
		script := run.Script
		if script == "" {
			script = "-"
		}
		account := run.Username
		if account == "" {
			account = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\n",
			run.ID,
			run.Timestamp.Local().Format("2006-01-02 15:04:05"),
			script,
			account,
			run.Successes,
			run.Failures,
		)
	}
	w.Flush()
	return nil
}
