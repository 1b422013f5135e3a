// Package api speaks the hosting panel's administrative XML-RPC contract:
// a single authenticated endpoint where login returns a session token and
// every subsequent procedure takes that token as its first argument.
package api

import (
	"errors"
	"fmt"

	"github.com/kolo/xmlrpc"
)

// DefaultURL is the panel's public API endpoint.
const DefaultURL = "https://api.webfaction.com/"

// Transport issues one remote procedure call and returns its decoded
// payload. Implementations must map remote faults to *Fault and transport
// failures to *ProtocolError.
type Transport interface {
	Call(method string, args []any) (any, error)
}

// Client is the XML-RPC transport for the panel API.
type Client struct {
	url string
	rpc *xmlrpc.Client
}

// Dial creates a client for the given endpoint URL. An empty url selects
// DefaultURL. Dial does not authenticate; see Login.
func Dial(url string) (*Client, error) {
	if url == "" {
		url = DefaultURL
	}
	rpc, err := xmlrpc.NewClient(url, nil)
	if err != nil {
		return nil, fmt.Errorf("api: dial %s: %w", url, err)
	}
	return &Client{url: url, rpc: rpc}, nil
}

// URL returns the endpoint this client talks to.
func (c *Client) URL() string { return c.url }

// Call invokes method with the given positional arguments and returns the
// decoded reply. Application faults come back as *Fault, everything else
// as *ProtocolError.
func (c *Client) Call(method string, args []any) (any, error) {
	var reply any
	err := c.rpc.Call(method, args, &reply)
	if err == nil {
		return reply, nil
	}

	var fault xmlrpc.FaultError
	if errors.As(err, &fault) {
		return nil, &Fault{Code: fault.Code, Message: fault.String}
	}
	return nil, &ProtocolError{URL: c.url, Message: err.Error()}
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.rpc.Close()
}
