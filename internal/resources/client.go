// Package resources is the convenience layer over the panel API: one
// generic guarded-dispatch path driven by the operation catalog, plus thin
// typed wrappers per resource kind.
package resources

import (
	"fmt"
	"strings"

	"panelops/wfctl/internal/api"
	"panelops/wfctl/internal/catalog"
	"panelops/wfctl/internal/match"
	"panelops/wfctl/internal/runner"
)

// Client applies catalog operations through a runner. All mutating
// operations are fire-and-record: outcomes land in the runner's ledger,
// never in returned errors.
type Client struct {
	run *runner.Runner
}

// New wraps an authenticated runner.
func New(run *runner.Runner) *Client {
	return &Client{run: run}
}

// Ledger exposes the accumulated results of this client's runner.
func (c *Client) Ledger() *runner.Ledger { return c.run.Ledger() }

// Do applies one action end to end: resolve it in the catalog, build the
// ordered argument list, evaluate the existence guard against the live
// remote collection, then issue the call. Every way this can go wrong
// becomes a failure entry; Do itself never fails.
func (c *Client) Do(action string, args map[string]any) {
	op, ok := catalog.Lookup(action)
	if !ok {
		c.run.Reject(action, fmt.Sprintf("unknown operation %q", action))
		return
	}

	ordered, err := op.BuildArgs(args)
	if err != nil {
		c.run.Reject(op.Name, err.Error())
		return
	}

	if passed, reason := c.guard(op, args); !passed {
		c.run.Reject(op.Name, reason)
		return
	}

	c.run.Invoke(op.Name, op.Name, ordered...)
}

// List fetches a remote collection directly. List calls feed existence
// guards and read-only commands; they are returned to the caller rather
// than logged, matching the ledger's mutation-outcome focus.
func (c *Client) List(action string) ([]api.Record, error) {
	op, ok := catalog.Lookup(action)
	if !ok {
		return nil, fmt.Errorf("resources: unknown operation %q", action)
	}
	reply, err := c.run.Session().Call(op.Name)
	if err != nil {
		return nil, err
	}
	return api.Records(reply)
}

// guard evaluates an operation's existence precondition. A guard that
// cannot consult the remote collection fails closed: the mutation is not
// issued and the reason is recorded.
func (c *Client) guard(op catalog.Operation, args map[string]any) (bool, string) {
	if op.Guard == catalog.GuardNone {
		return true, ""
	}

	collection, err := c.List(op.List)
	if err != nil {
		return false, fmt.Sprintf("existence check via %s failed: %v", op.List, err)
	}

	exists := match.Exists(op.Candidate(args), toMatchRecords(collection))
	switch op.Guard {
	case catalog.GuardAbsent:
		if exists {
			return false, fmt.Sprintf("can't create %s %q: already exists", op.Kind, op.Identifier(args))
		}
	case catalog.GuardPresent:
		if !exists {
			return false, fmt.Sprintf("can't %s nonexistent %s %q", opVerb(op.Name), op.Kind, op.Identifier(args))
		}
	}
	return true, ""
}

func toMatchRecords(records []api.Record) []match.Record {
	out := make([]match.Record, len(records))
	for i, record := range records {
		out[i] = match.Record(record)
	}
	return out
}

// opVerb extracts the leading verb of an action name for guard messages:
// "change_mailbox_password" rejects as "can't change ...".
func opVerb(action string) string {
	verb, _, found := strings.Cut(action, "_")
	if !found {
		return action
	}
	return verb
}
