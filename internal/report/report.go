// Package report renders a ledger into run summaries: an HTML page for
// the archive file and a styled terminal listing.
package report

import (
	"fmt"
	"strings"
	"time"

	"panelops/wfctl/internal/match"
	"panelops/wfctl/internal/runner"
)

// EmptyPayload is the text substituted for calls that return no data.
const EmptyPayload = "remote call returned no data"

// Entry is one rendered result line.
type Entry struct {
	Status    runner.Status
	Label     string
	Timestamp time.Time
	Text      string
}

// Document is a fully rendered run: all successes first, then all
// failures, each bucket in insertion order.
type Document struct {
	Entries []Entry
}

// Render flattens a ledger into a document. Render does not modify the
// ledger and may be called repeatedly with identical output.
func Render(ledger *runner.Ledger) Document {
	var doc Document
	for _, status := range runner.Buckets {
		for _, result := range ledger.Results(status) {
			doc.Entries = append(doc.Entries, Entry{
				Status:    status,
				Label:     result.Label,
				Timestamp: result.Timestamp,
				Text:      payloadText(result.Payload),
			})
		}
	}
	return doc
}

// payloadText renders a result payload: structured replies are flattened
// to their leaf values and comma-joined, nonempty strings pass through
// verbatim, and anything empty becomes the placeholder.
func payloadText(payload any) string {
	switch v := payload.(type) {
	case nil:
	case string:
		if v != "" {
			return v
		}
	case map[string]any, []any:
		leaves := match.Flatten(v, match.Options{})
		if len(leaves) > 0 {
			parts := make([]string, len(leaves))
			for i, leaf := range leaves {
				parts[i] = fmt.Sprint(leaf)
			}
			return strings.Join(parts, ", ")
		}
	default:
		return fmt.Sprint(v)
	}
	return EmptyPayload
}
