package api

import "fmt"

// Fault is an application-level error signalled by the panel API itself,
// e.g. "mailbox already exists" rejected server-side.
type Fault struct {
	Code    int
	Message string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%d, %s", f.Code, f.Message)
}

// ProtocolError is a transport-level failure: connection refused, a non-XML
// response, a bad HTTP status, or a timeout. Status is 0 when the failure
// happened before any HTTP status was received.
type ProtocolError struct {
	URL     string
	Status  int
	Message string
}

func (e *ProtocolError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s, %d, %s", e.URL, e.Status, e.Message)
	}
	return fmt.Sprintf("%s, %s", e.URL, e.Message)
}

// ArgumentError is a locally detected call-shape mismatch: a required
// parameter missing, an unknown parameter, or a value of the wrong kind.
// No remote call is issued when one of these is raised.
type ArgumentError struct {
	Op      string
	Message string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}
