package runner

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"panelops/wfctl/internal/api"
)

// fakeSession maps method names to canned replies or errors.
type fakeSession struct {
	replies map[string]any
	errs    map[string]error
	calls   []string
}

func (f *fakeSession) Call(method string, args ...any) (any, error) {
	f.calls = append(f.calls, method)
	if err, ok := f.errs[method]; ok {
		return nil, err
	}
	return f.replies[method], nil
}

func TestLog_AppendOnlyAndOrdered(t *testing.T) {
	ledger := NewLedger()
	for i := range 5 {
		ledger.Log(fmt.Sprintf("op_%d", i), StatusSuccess, i)
	}
	ledger.Log("bad", StatusFailure, "boom")

	successes := ledger.Results(StatusSuccess)
	if len(successes) != 5 {
		t.Fatalf("expected 5 success entries, got %d", len(successes))
	}
	for i, result := range successes {
		if result.Label != fmt.Sprintf("op_%d", i) {
			t.Errorf("entry %d out of order: %q", i, result.Label)
		}
		if result.Timestamp.IsZero() {
			t.Errorf("entry %d missing timestamp", i)
		}
	}
	if ledger.Len() != 6 {
		t.Errorf("Len = %d, want 6", ledger.Len())
	}
}

func TestResults_ReturnsCopy(t *testing.T) {
	ledger := NewLedger()
	ledger.Log("op", StatusSuccess, "x")

	results := ledger.Results(StatusSuccess)
	results[0].Label = "mutated"

	if got := ledger.Results(StatusSuccess)[0].Label; got != "op" {
		t.Errorf("ledger mutated through Results copy: %q", got)
	}
}

func TestLedger_Last(t *testing.T) {
	ledger := NewLedger()
	if _, ok := ledger.Last(); ok {
		t.Error("empty ledger should report no last result")
	}

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	ledger.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	ledger.Log("first", StatusSuccess, nil)
	ledger.Log("second", StatusFailure, "nope")

	last, ok := ledger.Last()
	if !ok || last.Label != "second" {
		t.Errorf("Last = %+v, want the failure entry", last)
	}
}

func TestInvoke_Success(t *testing.T) {
	session := &fakeSession{replies: map[string]any{
		"create_mailbox": map[string]any{"id": int64(1), "mailbox": "bob"},
	}}
	run := New(session)

	run.Invoke("create_mailbox", "create_mailbox", "bob")

	successes := run.Ledger().Results(StatusSuccess)
	if len(successes) != 1 {
		t.Fatalf("expected 1 success entry, got %d", len(successes))
	}
	payload, ok := successes[0].Payload.(map[string]any)
	if !ok || payload["mailbox"] != "bob" {
		t.Errorf("unexpected payload %v", successes[0].Payload)
	}
}

func TestInvoke_NeverEscalates(t *testing.T) {
	cases := map[string]error{
		"application fault": &api.Fault{Code: 301, Message: "duplicate"},
		"protocol error":    &api.ProtocolError{URL: "https://api.example.com/", Status: 500, Message: "boom"},
		"argument error":    &api.ArgumentError{Op: "create_mailbox", Message: "missing parameter mailbox"},
		"plain error":       fmt.Errorf("wrapped: %w", &api.Fault{Code: 1, Message: "x"}),
	}

	for name, callErr := range cases {
		session := &fakeSession{errs: map[string]error{"m": callErr}}
		run := New(session)

		run.Invoke("label", "m")

		failures := run.Ledger().Results(StatusFailure)
		if len(failures) != 1 {
			t.Fatalf("%s: expected exactly 1 failure entry, got %d", name, len(failures))
		}
		if run.Ledger().Len() != 1 {
			t.Errorf("%s: expected no other entries", name)
		}
	}
}

func TestInvoke_FaultPayloadCombinesCodeAndMessage(t *testing.T) {
	session := &fakeSession{errs: map[string]error{
		"create_mailbox": &api.Fault{Code: 301, Message: "duplicate"},
	}}
	run := New(session)

	run.Invoke("create_mailbox", "create_mailbox", "bob")

	failure := run.Ledger().Results(StatusFailure)[0]
	text, _ := failure.Payload.(string)
	if !strings.Contains(text, "301") || !strings.Contains(text, "duplicate") {
		t.Errorf("fault payload %q should contain code and message", text)
	}
}

func TestReject(t *testing.T) {
	run := New(&fakeSession{})
	run.Reject("create_mailbox", `can't create mailbox "bob": already exists`)

	failures := run.Ledger().Results(StatusFailure)
	if len(failures) != 1 || !strings.Contains(failures[0].Payload.(string), "bob") {
		t.Errorf("expected rejection naming the identifier, got %v", failures)
	}
	if len(run.Ledger().Results(StatusSuccess)) != 0 {
		t.Error("rejection must not produce a success entry")
	}
}
