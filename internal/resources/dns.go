package resources

import "panelops/wfctl/internal/api"

// DNS manages the account's DNS overrides.
type DNS struct {
	client *Client
}

// DNS returns the DNS-override wrapper.
func (c *Client) DNS() DNS { return DNS{client: c} }

// DNSOverride holds the record values an override can carry. Empty fields
// are sent as empty strings, which the panel treats as unset.
type DNSOverride struct {
	AIP        string
	CNAME      string
	MXName     string
	MXPriority string
	SPFRecord  string
	AAAAIP     string
}

func (o DNSOverride) args(domain string) map[string]any {
	return map[string]any{
		"domain":      domain,
		"a_ip":        o.AIP,
		"cname":       o.CNAME,
		"mx_name":     o.MXName,
		"mx_priority": o.MXPriority,
		"spf_record":  o.SPFRecord,
		"aaaa_ip":     o.AAAAIP,
	}
}

func (d DNS) List() ([]api.Record, error) {
	return d.client.List("list_dns_overrides")
}

func (d DNS) CreateOverride(domain string, override DNSOverride) {
	d.client.Do("create_dns_override", override.args(domain))
}

func (d DNS) DeleteOverride(domain string, override DNSOverride) {
	d.client.Do("delete_dns_override", override.args(domain))
}
