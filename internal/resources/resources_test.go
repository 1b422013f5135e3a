package resources

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"panelops/wfctl/internal/api"
	"panelops/wfctl/internal/runner"
)

type recordedCall struct {
	Method string
	Args   []any
}

type fakeCaller struct {
	replies map[string]any
	errs    map[string]error
	calls   []recordedCall
}

func (f *fakeCaller) Call(method string, args ...any) (any, error) {
	f.calls = append(f.calls, recordedCall{Method: method, Args: args})
	if err, ok := f.errs[method]; ok {
		return nil, err
	}
	return f.replies[method], nil
}

func (f *fakeCaller) callsTo(method string) []recordedCall {
	var out []recordedCall
	for _, call := range f.calls {
		if call.Method == method {
			out = append(out, call)
		}
	}
	return out
}

func newTestClient(fake *fakeCaller) *Client {
	return New(runner.New(fake))
}

func TestCreateProceedsAgainstEmptyCollection(t *testing.T) {
	fake := &fakeCaller{replies: map[string]any{
		"list_mailboxes": []any{},
		"create_mailbox": map[string]any{"id": int64(1), "name": "foo"},
	}}
	client := newTestClient(fake)

	client.Mailboxes().Create("foo", DefaultMailboxSettings())

	successes := client.Ledger().Results(runner.StatusSuccess)
	if len(successes) != 1 {
		t.Fatalf("success bucket has %d entries, want 1", len(successes))
	}
	if successes[0].Label != "create_mailbox" {
		t.Errorf("label = %q, want %q", successes[0].Label, "create_mailbox")
	}
	want := map[string]any{"id": int64(1), "name": "foo"}
	if diff := cmp.Diff(want, successes[0].Payload); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}

	creates := fake.callsTo("create_mailbox")
	if len(creates) != 1 {
		t.Fatalf("create_mailbox called %d times, want 1", len(creates))
	}
	wantArgs := []any{"foo", true, false, "", false, ""}
	if diff := cmp.Diff(wantArgs, creates[0].Args); diff != "" {
		t.Errorf("call args mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateBlockedWhenRecordExists(t *testing.T) {
	fake := &fakeCaller{replies: map[string]any{
		"list_mailboxes": []any{
			map[string]any{"id": int64(7), "mailbox": "bob"},
		},
	}}
	client := newTestClient(fake)

	client.Mailboxes().Create("bob", DefaultMailboxSettings())

	if got := fake.callsTo("create_mailbox"); len(got) != 0 {
		t.Fatalf("create_mailbox was called %d times, want 0", len(got))
	}
	failures := client.Ledger().Results(runner.StatusFailure)
	if len(failures) != 1 {
		t.Fatalf("failure bucket has %d entries, want 1", len(failures))
	}
	reason, ok := failures[0].Payload.(string)
	if !ok {
		t.Fatalf("failure payload is %T, want string", failures[0].Payload)
	}
	if !strings.Contains(reason, `"bob"`) || !strings.Contains(reason, "already exists") {
		t.Errorf("failure reason %q does not name the duplicate", reason)
	}
}

func TestDeleteBlockedWhenRecordMissing(t *testing.T) {
	fake := &fakeCaller{replies: map[string]any{
		"list_mailboxes": []any{},
	}}
	client := newTestClient(fake)

	client.Mailboxes().Delete("ghost")

	if got := fake.callsTo("delete_mailbox"); len(got) != 0 {
		t.Fatalf("delete_mailbox was called %d times, want 0", len(got))
	}
	failures := client.Ledger().Results(runner.StatusFailure)
	if len(failures) != 1 {
		t.Fatalf("failure bucket has %d entries, want 1", len(failures))
	}
	reason := failures[0].Payload.(string)
	if !strings.Contains(reason, "nonexistent") || !strings.Contains(reason, `"ghost"`) {
		t.Errorf("failure reason %q does not explain the missing record", reason)
	}
}

func TestRemoteFaultIsLoggedNotRaised(t *testing.T) {
	fake := &fakeCaller{errs: map[string]error{
		"create_domain": &api.Fault{Code: 301, Message: "duplicate"},
	}}
	client := newTestClient(fake)

	client.Domains().Create("example.com")

	failures := client.Ledger().Results(runner.StatusFailure)
	if len(failures) != 1 {
		t.Fatalf("failure bucket has %d entries, want 1", len(failures))
	}
	if got := failures[0].Payload.(string); got != "301, duplicate" {
		t.Errorf("fault payload = %q, want %q", got, "301, duplicate")
	}
}

func TestGuardFailsClosedWhenListUnavailable(t *testing.T) {
	fake := &fakeCaller{errs: map[string]error{
		"list_mailboxes": &api.ProtocolError{URL: "https://api.example.com/", Message: "timeout"},
	}}
	client := newTestClient(fake)

	client.Mailboxes().Create("foo", DefaultMailboxSettings())

	if got := fake.callsTo("create_mailbox"); len(got) != 0 {
		t.Fatalf("create_mailbox was called %d times, want 0", len(got))
	}
	failures := client.Ledger().Results(runner.StatusFailure)
	if len(failures) != 1 {
		t.Fatalf("failure bucket has %d entries, want 1", len(failures))
	}
	reason := failures[0].Payload.(string)
	if !strings.Contains(reason, "existence check") {
		t.Errorf("failure reason %q does not mention the failed check", reason)
	}
}

func TestUnknownActionRejected(t *testing.T) {
	fake := &fakeCaller{}
	client := newTestClient(fake)

	client.Do("reticulate_splines", nil)

	if len(fake.calls) != 0 {
		t.Fatalf("remote was called %d times, want 0", len(fake.calls))
	}
	failures := client.Ledger().Results(runner.StatusFailure)
	if len(failures) != 1 {
		t.Fatalf("failure bucket has %d entries, want 1", len(failures))
	}
	if reason := failures[0].Payload.(string); !strings.Contains(reason, "unknown operation") {
		t.Errorf("failure reason = %q, want unknown-operation message", reason)
	}
}

func TestMissingRequiredArgumentRejected(t *testing.T) {
	fake := &fakeCaller{replies: map[string]any{"list_mailboxes": []any{}}}
	client := newTestClient(fake)

	client.Do("change_mailbox_password", map[string]any{"mailbox": "bob"})

	if got := fake.callsTo("change_mailbox_password"); len(got) != 0 {
		t.Fatalf("change_mailbox_password was called %d times, want 0", len(got))
	}
	failures := client.Ledger().Results(runner.StatusFailure)
	if len(failures) != 1 {
		t.Fatalf("failure bucket has %d entries, want 1", len(failures))
	}
	if reason := failures[0].Payload.(string); !strings.Contains(reason, "password") {
		t.Errorf("failure reason %q does not name the missing parameter", reason)
	}
}

func TestEmailTargetsJoined(t *testing.T) {
	fake := &fakeCaller{replies: map[string]any{
		"list_emails":  []any{},
		"create_email": "ok",
	}}
	client := newTestClient(fake)

	client.Emails().Create("info@example.com",
		[]string{"box1@example.com", "box2@example.com"}, EmailSettings{})

	creates := fake.callsTo("create_email")
	if len(creates) != 1 {
		t.Fatalf("create_email called %d times, want 1", len(creates))
	}
	if got := creates[0].Args[1]; got != "box1@example.com, box2@example.com" {
		t.Errorf("targets arg = %v, want comma-joined string", got)
	}
}

func TestCreateBatchUsesStandardPrefixes(t *testing.T) {
	fake := &fakeCaller{replies: map[string]any{
		"list_emails":  []any{},
		"create_email": "ok",
	}}
	client := newTestClient(fake)

	client.Emails().CreateBatch("example.com", nil, []string{"box@example.com"})

	creates := fake.callsTo("create_email")
	if len(creates) != len(StandardPrefixes) {
		t.Fatalf("create_email called %d times, want %d", len(creates), len(StandardPrefixes))
	}
	for i, prefix := range StandardPrefixes {
		want := prefix + "@example.com"
		if got := creates[i].Args[0]; got != want {
			t.Errorf("call %d address = %v, want %q", i, got, want)
		}
	}
	if client.Ledger().Len() != len(StandardPrefixes) {
		t.Errorf("ledger has %d entries, want %d", client.Ledger().Len(), len(StandardPrefixes))
	}
}

func TestDomainSubdomainsExpandVariadically(t *testing.T) {
	fake := &fakeCaller{replies: map[string]any{"create_domain": "ok"}}
	client := newTestClient(fake)

	client.Domains().Create("example.com", "www", "mail")

	creates := fake.callsTo("create_domain")
	if len(creates) != 1 {
		t.Fatalf("create_domain called %d times, want 1", len(creates))
	}
	want := []any{"example.com", "www", "mail"}
	if diff := cmp.Diff(want, creates[0].Args); diff != "" {
		t.Errorf("call args mismatch (-want +got):\n%s", diff)
	}
}

func TestListReturnsRecordsWithoutLogging(t *testing.T) {
	fake := &fakeCaller{replies: map[string]any{
		"list_domains": []any{
			map[string]any{"domain": "example.com", "id": int64(3)},
		},
	}}
	client := newTestClient(fake)

	records, err := client.Domains().List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []api.Record{{"domain": "example.com", "id": int64(3)}}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
	if client.Ledger().Len() != 0 {
		t.Errorf("ledger has %d entries after a list call, want 0", client.Ledger().Len())
	}
}

func TestWebsiteSiteAppsMarshaledAsPairs(t *testing.T) {
	fake := &fakeCaller{replies: map[string]any{
		"list_websites":  []any{},
		"create_website": "ok",
	}}
	client := newTestClient(fake)

	client.Websites().Create("blog", WebsiteSettings{
		IP:         "192.0.2.10",
		HTTPS:      true,
		Subdomains: []string{"blog.example.com"},
		SiteApps:   []SiteApp{{Name: "wordpress", Path: "/"}},
	})

	creates := fake.callsTo("create_website")
	if len(creates) != 1 {
		t.Fatalf("create_website called %d times, want 1", len(creates))
	}
	want := []any{
		"blog", "192.0.2.10", true,
		[]any{"blog.example.com"},
		[]any{[]any{"wordpress", "/"}},
	}
	if diff := cmp.Diff(want, creates[0].Args); diff != "" {
		t.Errorf("call args mismatch (-want +got):\n%s", diff)
	}
}

func TestReplaceInFileSendsPairs(t *testing.T) {
	fake := &fakeCaller{replies: map[string]any{"replace_in_file": "ok"}}
	client := newTestClient(fake)

	client.Files().ReplaceInFile("~/app/conf.ini",
		Replacement{Old: "debug = on", New: "debug = off"})

	calls := fake.callsTo("replace_in_file")
	if len(calls) != 1 {
		t.Fatalf("replace_in_file called %d times, want 1", len(calls))
	}
	want := []any{"~/app/conf.ini", []any{[]any{"debug = on", "debug = off"}}}
	if diff := cmp.Diff(want, calls[0].Args); diff != "" {
		t.Errorf("call args mismatch (-want +got):\n%s", diff)
	}
}

func TestWrappedFaultStillClassified(t *testing.T) {
	wrapped := errors.Join(errors.New("call failed"), &api.Fault{Code: 550, Message: "no such mailbox"})
	fake := &fakeCaller{
		replies: map[string]any{"list_mailboxes": []any{map[string]any{"mailbox": "bob"}}},
		errs:    map[string]error{"delete_mailbox": wrapped},
	}
	client := newTestClient(fake)

	client.Mailboxes().Delete("bob")

	failures := client.Ledger().Results(runner.StatusFailure)
	if len(failures) != 1 {
		t.Fatalf("failure bucket has %d entries, want 1", len(failures))
	}
	if got := failures[0].Payload.(string); got != "550, no such mailbox" {
		t.Errorf("fault payload = %q, want %q", got, "550, no such mailbox")
	}
}
