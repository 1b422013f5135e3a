package resources

import "panelops/wfctl/internal/api"

// StandardPrefixes are the conventional role addresses provisioned for a
// freshly hosted domain.
var StandardPrefixes = []string{
	"www", "admin", "webmaster", "postmaster", "hostmaster",
	"info", "sales", "marketing", "support", "abuse",
}

// Emails manages the account's email addresses.
type Emails struct {
	client *Client
}

// Emails returns the email-address wrapper.
func (c *Client) Emails() Emails { return Emails{client: c} }

// EmailSettings carries the optional attributes of an address.
type EmailSettings struct {
	AutoresponderOn      bool
	AutoresponderSubject string
	AutoresponderMessage string
	AutoresponderFrom    string
	ScriptMachine        string
	ScriptPath           string
}

func (s EmailSettings) args(address string, targets []string) map[string]any {
	return map[string]any{
		"email_address":         address,
		"targets":               targets,
		"autoresponder_on":      s.AutoresponderOn,
		"autoresponder_subject": s.AutoresponderSubject,
		"autoresponder_message": s.AutoresponderMessage,
		"autoresponder_from":    s.AutoresponderFrom,
		"script_machine":        s.ScriptMachine,
		"script_path":           s.ScriptPath,
	}
}

func (e Emails) List() ([]api.Record, error) {
	return e.client.List("list_emails")
}

func (e Emails) Create(address string, targets []string, settings EmailSettings) {
	e.client.Do("create_email", settings.args(address, targets))
}

func (e Emails) Update(address string, targets []string, settings EmailSettings) {
	e.client.Do("update_email", settings.args(address, targets))
}

func (e Emails) Delete(address string) {
	e.client.Do("delete_email", map[string]any{"email_address": address})
}

// CreateBatch provisions prefix@domain for every prefix, all targeting the
// same destinations. A nil prefix slice selects StandardPrefixes.
func (e Emails) CreateBatch(domain string, prefixes, targets []string) {
	if prefixes == nil {
		prefixes = StandardPrefixes
	}
	for _, prefix := range prefixes {
		e.Create(prefix+"@"+domain, targets, EmailSettings{})
	}
}

// DeleteBatch removes prefix@domain for every prefix. A nil prefix slice
// selects StandardPrefixes.
func (e Emails) DeleteBatch(domain string, prefixes []string) {
	if prefixes == nil {
		prefixes = StandardPrefixes
	}
	for _, prefix := range prefixes {
		e.Delete(prefix + "@" + domain)
	}
}
