package runstore

import "time"

// Run summarizes one completed client session.
type Run struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Script    string    `json:"script,omitempty"`
	Username  string    `json:"username,omitempty"`
	Successes int64     `json:"successes"`
	Failures  int64     `json:"failures"`
}

// RunResult is one persisted ledger entry belonging to a run.
type RunResult struct {
	ID        int64     `json:"id"`
	RunID     int64     `json:"run_id"`
	Timestamp time.Time `json:"timestamp"`
	Label     string    `json:"label"`
	Status    string    `json:"status"`
	Detail    string    `json:"detail,omitempty"`
}
