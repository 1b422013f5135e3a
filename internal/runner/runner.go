package runner

import (
	"errors"

	"panelops/wfctl/internal/api"
)

// Caller issues one authenticated remote procedure call. *api.Session
// satisfies this; tests substitute fakes.
type Caller interface {
	Call(method string, args ...any) (any, error)
}

// Runner dispatches calls against an authenticated session and absorbs
// every failure mode into its ledger.
type Runner struct {
	session Caller
	ledger  *Ledger
}

// New creates a runner around an authenticated session.
func New(session Caller) *Runner {
	return &Runner{session: session, ledger: NewLedger()}
}

// Ledger exposes the run's accumulated results for reporting.
func (r *Runner) Ledger() *Ledger { return r.ledger }

// Session returns the underlying caller, for list calls that feed
// existence guards and are not themselves logged.
func (r *Runner) Session() Caller { return r.session }

// Invoke calls the remote method and logs exactly one result. It never
// returns an error: application faults, transport failures, and local
// argument errors all become failure entries so a multi-step run continues
// past them. There are no retries; one attempt, one entry.
func (r *Runner) Invoke(label, method string, args ...any) {
	reply, err := r.session.Call(method, args...)
	if err != nil {
		r.ledger.Log(label, StatusFailure, describeFailure(err))
		return
	}
	r.ledger.Log(label, StatusSuccess, reply)
}

// Reject records a failure without touching the remote service. Used by
// the precondition guard and the argument builder, whose rejections belong
// in the same ledger as remote failures.
func (r *Runner) Reject(label, reason string) {
	r.ledger.Log(label, StatusFailure, reason)
}

// describeFailure renders any call error into the ledger's textual payload
// form. The error types already format themselves: faults as
// "code, message", protocol errors as "url, status, message".
func describeFailure(err error) string {
	var fault *api.Fault
	if errors.As(err, &fault) {
		return fault.Error()
	}
	var protocol *api.ProtocolError
	if errors.As(err, &protocol) {
		return protocol.Error()
	}
	var argument *api.ArgumentError
	if errors.As(err, &argument) {
		return argument.Error()
	}
	return err.Error()
}
