package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"panelops/wfctl/internal/resources"
	"panelops/wfctl/internal/runner"
)

const sampleScript = `
steps:
  - action: create_mailbox
    args:
      mailbox: bob
  - action: create_email
    args:
      email_address: bob@example.com
      targets: [bob]
  - action: delete_mailbox
    args:
      mailbox: ghost
`

type fakeCaller struct {
	replies map[string]any
	calls   []string
}

func (f *fakeCaller) Call(method string, args ...any) (any, error) {
	f.calls = append(f.calls, method)
	return f.replies[method], nil
}

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "steps.yaml")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("writing script: %v", err)
	}
	return path
}

func TestLoadParsesSteps(t *testing.T) {
	s, err := Load(writeScript(t, sampleScript))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Steps) != 3 {
		t.Fatalf("loaded %d steps, want 3", len(s.Steps))
	}
	if s.Steps[0].Action != "create_mailbox" {
		t.Errorf("first action = %q, want create_mailbox", s.Steps[0].Action)
	}
	if got := s.Steps[0].Args["mailbox"]; got != "bob" {
		t.Errorf("first step mailbox arg = %v, want bob", got)
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load succeeded for a missing file")
	}
}

func TestParseRejectsEmptyScript(t *testing.T) {
	if _, err := Parse([]byte("steps: []")); err == nil {
		t.Fatal("Parse accepted a script with no steps")
	}
}

func TestParseRejectsUnknownAction(t *testing.T) {
	_, err := Parse([]byte("steps:\n  - action: reticulate_splines\n"))
	if err == nil {
		t.Fatal("Parse accepted an unknown action")
	}
	if !strings.Contains(err.Error(), "reticulate_splines") {
		t.Errorf("error %q does not name the action", err)
	}
}

func TestParseRejectsStepWithoutAction(t *testing.T) {
	_, err := Parse([]byte("steps:\n  - args: {mailbox: bob}\n"))
	if err == nil {
		t.Fatal("Parse accepted a step without an action")
	}
}

func TestExecuteRunsStepsInOrderAndContinuesPastFailures(t *testing.T) {
	s, err := Parse([]byte(sampleScript))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	fake := &fakeCaller{replies: map[string]any{
		"list_mailboxes": []any{},
		"list_emails":    []any{},
		"create_mailbox": map[string]any{"id": int64(1)},
		"create_email":   "ok",
	}}
	client := resources.New(runner.New(fake))

	Execute(client, s)

	// delete_mailbox is rejected by the guard (ghost does not exist), so
	// only the two creates reach the remote.
	var mutations []string
	for _, call := range fake.calls {
		if !strings.HasPrefix(call, "list_") {
			mutations = append(mutations, call)
		}
	}
	if len(mutations) != 2 || mutations[0] != "create_mailbox" || mutations[1] != "create_email" {
		t.Errorf("remote mutations = %v, want [create_mailbox create_email]", mutations)
	}

	ledger := client.Ledger()
	if got := len(ledger.Results(runner.StatusSuccess)); got != 2 {
		t.Errorf("success bucket has %d entries, want 2", got)
	}
	if got := len(ledger.Results(runner.StatusFailure)); got != 1 {
		t.Errorf("failure bucket has %d entries, want 1", got)
	}
}
