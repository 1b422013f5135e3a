// Package runner performs guarded remote calls and records every outcome.
//
// Administrative scripts issue many sequential panel operations; a single
// failed step must not abort the rest. Every call outcome, success or
// failure, becomes a ledger entry instead of a returned error, and the
// ledger is rendered into a report when the run finishes.
package runner

import "time"

// Status tags a logged result.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// Buckets lists the ledger's buckets in their fixed rendering order:
// successes first, then failures.
var Buckets = []Status{StatusSuccess, StatusFailure}

// Result is one logged outcome. Payload holds the remote call's decoded
// return value on success and a failure description otherwise.
type Result struct {
	Timestamp time.Time
	Label     string
	Status    Status
	Payload   any
}

// Ledger is the in-memory, append-only record of one client session.
// Entries keep insertion order within their status bucket; entries are
// never mutated or removed. The ledger is not safe for concurrent use,
// matching the strictly sequential call model.
type Ledger struct {
	buckets map[Status][]Result
	now     func() time.Time
}

// NewLedger creates an empty ledger with both buckets in place.
func NewLedger() *Ledger {
	return &Ledger{
		buckets: map[Status][]Result{
			StatusSuccess: nil,
			StatusFailure: nil,
		},
		now: time.Now,
	}
}

// Log appends a timestamped result to the bucket for status.
func (l *Ledger) Log(label string, status Status, payload any) {
	l.buckets[status] = append(l.buckets[status], Result{
		Timestamp: l.now(),
		Label:     label,
		Status:    status,
		Payload:   payload,
	})
}

// Results returns a copy of the bucket for status, in insertion order.
func (l *Ledger) Results(status Status) []Result {
	bucket := l.buckets[status]
	out := make([]Result, len(bucket))
	copy(out, bucket)
	return out
}

// Len reports the total number of logged results across both buckets.
func (l *Ledger) Len() int {
	return len(l.buckets[StatusSuccess]) + len(l.buckets[StatusFailure])
}

// Last returns the most recently appended result and whether one exists.
// Useful for single-operation invocations that want to surface the outcome
// immediately.
func (l *Ledger) Last() (Result, bool) {
	var last Result
	var found bool
	for _, status := range Buckets {
		for _, result := range l.buckets[status] {
			if !found || result.Timestamp.After(last.Timestamp) {
				last = result
				found = true
			}
		}
	}
	return last, found
}
