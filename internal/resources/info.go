package resources

import "panelops/wfctl/internal/api"

// Info exposes read-only account and server information.
type Info struct {
	client *Client
}

// Info returns the server-information wrapper.
func (c *Client) Info() Info { return Info{client: c} }

// IPs lists the account's servers and their addresses.
func (i Info) IPs() ([]api.Record, error) {
	return i.client.List("list_ips")
}

// Machines lists the machines the account can use.
func (i Info) Machines() ([]api.Record, error) {
	return i.client.List("list_machines")
}

// System runs a shell command on the account's home server. Output is
// recorded in the ledger like any other mutating call.
func (i Info) System(cmd string) {
	i.client.Do("system", map[string]any{"cmd": cmd})
}
