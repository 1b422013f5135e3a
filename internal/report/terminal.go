package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"panelops/wfctl/internal/runner"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD787"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8787"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
)

// WriteText renders the document for a terminal, one line per entry.
func WriteText(w io.Writer, doc Document) error {
	for _, entry := range doc.Entries {
		marker := successStyle.Render("ok    ")
		if entry.Status == runner.StatusFailure {
			marker = failureStyle.Render("failed")
		}
		_, err := fmt.Fprintf(w, "%s  %s  %s | %s\n",
			entry.Timestamp.Format("15:04:05"),
			marker,
			labelStyle.Render(entry.Label),
			entry.Text)
		if err != nil {
			return err
		}
	}
	return nil
}
