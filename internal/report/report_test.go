package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"panelops/wfctl/internal/runner"
)

func TestRenderOrdersSuccessesFirst(t *testing.T) {
	ledger := runner.NewLedger()
	ledger.Log("delete_mailbox", runner.StatusFailure, "550, no such mailbox")
	ledger.Log("create_mailbox", runner.StatusSuccess, map[string]any{"id": int64(1)})
	ledger.Log("create_email", runner.StatusSuccess, "ok")

	doc := Render(ledger)
	if len(doc.Entries) != 3 {
		t.Fatalf("rendered %d entries, want 3", len(doc.Entries))
	}
	gotOrder := []string{doc.Entries[0].Label, doc.Entries[1].Label, doc.Entries[2].Label}
	wantOrder := []string{"create_mailbox", "create_email", "delete_mailbox"}
	if diff := cmp.Diff(wantOrder, gotOrder); diff != "" {
		t.Errorf("entry order mismatch (-want +got):\n%s", diff)
	}
	if doc.Entries[2].Status != runner.StatusFailure {
		t.Errorf("last entry status = %q, want failure", doc.Entries[2].Status)
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	ledger := runner.NewLedger()
	ledger.Log("create_domain", runner.StatusSuccess, nil)

	first := Render(ledger)
	second := Render(ledger)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated render differs (-first +second):\n%s", diff)
	}
}

func TestPayloadText(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		want    string
	}{
		{"nonempty string", "box created", "box created"},
		{"empty string", "", EmptyPayload},
		{"nil", nil, EmptyPayload},
		{"empty list", []any{}, EmptyPayload},
		{"scalar", int64(42), "42"},
		{
			"struct reply",
			map[string]any{"id": int64(1), "name": "foo"},
			"", // checked by parts below; map order is not fixed
		},
		{
			"nested reply",
			[]any{map[string]any{"domain": "example.com", "subdomains": []any{"www"}}},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := payloadText(tt.payload)
			if tt.want != "" {
				if got != tt.want {
					t.Fatalf("payloadText(%v) = %q, want %q", tt.payload, got, tt.want)
				}
				return
			}
			// Flattened output: every leaf present, comma-separated.
			if !strings.Contains(got, ", ") {
				t.Errorf("payloadText(%v) = %q, want comma-joined leaves", tt.payload, got)
			}
		})
	}
}

func TestFlattenedPayloadContainsAllLeaves(t *testing.T) {
	got := payloadText(map[string]any{
		"id":         int64(7),
		"subdomains": []any{"www.example.com", "mail.example.com"},
	})
	for _, leaf := range []string{"7", "www.example.com", "mail.example.com"} {
		if !strings.Contains(got, leaf) {
			t.Errorf("payload text %q missing leaf %q", got, leaf)
		}
	}
}

func TestWriteHTML(t *testing.T) {
	ledger := runner.NewLedger()
	ledger.Log("create_mailbox", runner.StatusSuccess, map[string]any{"name": "foo"})
	ledger.Log("create_email", runner.StatusFailure, "301, duplicate")

	var sb strings.Builder
	if err := WriteHTML(&sb, Render(ledger)); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	html := sb.String()

	for _, want := range []string{
		`<ul id="results">`,
		`<li class="success">`,
		`<li class="failure">`,
		"301, duplicate",
		"</html>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q:\n%s", want, html)
		}
	}
}

func TestWriteHTMLEscapesPayloads(t *testing.T) {
	ledger := runner.NewLedger()
	ledger.Log("system", runner.StatusSuccess, "<script>alert(1)</script>")

	var sb strings.Builder
	if err := WriteHTML(&sb, Render(ledger)); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	if strings.Contains(sb.String(), "<script>") {
		t.Error("payload markup was not escaped")
	}
}

func TestAppendHTMLFileAccumulates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	ledger := runner.NewLedger()
	ledger.Log("create_domain", runner.StatusSuccess, nil)
	doc := Render(ledger)

	if err := AppendHTMLFile(path, doc); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := AppendHTMLFile(path, doc); err != nil {
		t.Fatalf("second append: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if got := strings.Count(string(data), "<!DOCTYPE html>"); got != 2 {
		t.Errorf("report holds %d documents, want 2", got)
	}
}

func TestWriteTextListsEveryEntry(t *testing.T) {
	ledger := runner.NewLedger()
	ledger.Log("create_mailbox", runner.StatusSuccess, "ok")
	ledger.Log("delete_mailbox", runner.StatusFailure, "550, no such mailbox")

	var sb strings.Builder
	if err := WriteText(&sb, Render(ledger)); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := sb.String()
	for _, want := range []string{"create_mailbox", "delete_mailbox", "550, no such mailbox"} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal output missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("terminal output has %d lines, want 2", got)
	}
}
