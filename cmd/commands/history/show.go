package history

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"panelops/wfctl/internal/runstore"

	"github.com/spf13/cobra"
)

func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the results of one run",
		Long: `Show every recorded result of a run, successes first.

Example:
  wfctl history show 12`,
		Args:         cobra.ExactArgs(1),
		RunE:         runShow,
		SilenceUsage: true,
	}

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	runID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run ID %q", args[0])
	}

	repo, err := runstore.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	results, err := repo.Results(runID)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No results recorded for run %d.\n", runID)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tOPERATION\tSTATUS\tDETAIL")
	fmt.Fprintln(w, "----\t---------\t------\t------")
	for _, result := range results {
		detail := result.Detail
		if detail == "" {
			detail = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			result.Timestamp.Local().Format("2006-01-02 15:04:05"),
			result.Label,
			result.Status,
			detail,
		)
	}
	w.Flush()
	return nil
}
