package resources

import "panelops/wfctl/internal/api"

// Domains manages the account's domains and subdomains.
type Domains struct {
	client *Client
}

// Domains returns the domain wrapper.
func (c *Client) Domains() Domains { return Domains{client: c} }

func (d Domains) List() ([]api.Record, error) {
	return d.client.List("list_domains")
}

// Create registers a domain, optionally with subdomains. Creating an
// already-registered domain is accepted by the panel (it adds the new
// subdomains), so there is no existence guard here.
func (d Domains) Create(domain string, subdomains ...string) {
	d.client.Do("create_domain", map[string]any{
		"domain":     domain,
		"subdomains": subdomains,
	})
}

// Delete removes subdomains from a domain, or the whole domain when no
// subdomains are given.
func (d Domains) Delete(domain string, subdomains ...string) {
	d.client.Do("delete_domain", map[string]any{
		"domain":     domain,
		"subdomains": subdomains,
	})
}
