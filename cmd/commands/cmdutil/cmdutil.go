// Package cmdutil holds the plumbing shared by every wfctl command:
// opening an authenticated panel session and finishing a run (report
// rendering, HTML archive, history persistence).
package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"panelops/wfctl/internal/api"
	"panelops/wfctl/internal/config"
	"panelops/wfctl/internal/report"
	"panelops/wfctl/internal/resources"
	"panelops/wfctl/internal/runner"
	"panelops/wfctl/internal/runstore"
	"panelops/wfctl/internal/services/auth"
)

// Connect logs in to the panel with the configured account and keychain
// password. A failed login is fatal: the command must not proceed to issue
// operations against a session it does not have.
func Connect(cfg *config.Config) (*resources.Client, error) {
	username := strings.TrimSpace(cfg.Username)
	if username == "" {
		return nil, errors.New("no account configured; run 'wfctl auth login <username>' first")
	}

	password, err := auth.DefaultStore().GetPassword(username)
	if err != nil {
		if errors.Is(err, auth.ErrCredentialsNotFound) {
			return nil, fmt.Errorf("no stored password for %s; run 'wfctl auth login %s'", username, username)
		}
		return nil, err
	}

	url := cfg.APIURL
	if url == "" {
		url = api.DefaultURL
	}
	transport, err := api.Dial(url)
	if err != nil {
		return nil, err
	}

	session, err := api.Login(transport, username, password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return resources.New(runner.New(session)), nil
}

// Finish renders the client's ledger to the terminal, appends the HTML
// report when one is configured, and persists the run to local history.
// The label records what produced the run: a script path or the command
// path of a single operation.
func Finish(cmd *cobra.Command, client *resources.Client, cfg *config.Config, label string) error {
	doc := report.Render(client.Ledger())
	if err := report.WriteText(cmd.OutOrStdout(), doc); err != nil {
		return err
	}
	if cfg.ReportFile != "" {
		if err := report.AppendHTMLFile(cfg.ReportFile, doc); err != nil {
			return err
		}
	}

	repo, err := runstore.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	run := &runstore.Run{Script: label, Username: cfg.Username}
	return repo.SaveRun(run, doc.Entries)
}

// PrintRecords writes remote records as an aligned table with the given
// columns. Missing fields render as "-".
func PrintRecords(w io.Writer, records []api.Record, columns ...string) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	headers := make([]string, len(columns))
	rules := make([]string, len(columns))
	for i, column := range columns {
		headers[i] = strings.ToUpper(strings.ReplaceAll(column, "_", " "))
		rules[i] = strings.Repeat("-", len(headers[i]))
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	fmt.Fprintln(tw, strings.Join(rules, "\t"))

	for _, record := range records {
		cells := make([]string, len(columns))
		for i, column := range columns {
			cells[i] = formatField(record[column])
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
}

func formatField(value any) string {
	switch v := value.(type) {
	case nil:
		return "-"
	case string:
		if v == "" {
			return "-"
		}
		return v
	case []any:
		if len(v) == 0 {
			return "-"
		}
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}
