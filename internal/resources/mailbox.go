package resources

import "panelops/wfctl/internal/api"

// Mailboxes manages the account's mail stores.
type Mailboxes struct {
	client *Client
}

// Mailboxes returns the mailbox wrapper.
func (c *Client) Mailboxes() Mailboxes { return Mailboxes{client: c} }

// MailboxSettings carries the mutable mailbox attributes. The zero value
// is not the panel default; use DefaultMailboxSettings.
type MailboxSettings struct {
	SpamProtection      bool
	DiscardSpam         bool
	SpamRedirectFolder  string
	UseManualProcmailrc bool
	ManualProcmailrc    string
}

// DefaultMailboxSettings mirrors the panel's defaults for a new mailbox.
func DefaultMailboxSettings() MailboxSettings {
	return MailboxSettings{SpamProtection: true}
}

func (s MailboxSettings) args(name string) map[string]any {
	return map[string]any{
		"mailbox":                name,
		"enable_spam_protection": s.SpamProtection,
		"discard_spam":           s.DiscardSpam,
		"spam_redirect_folder":   s.SpamRedirectFolder,
		"use_manual_procmailrc":  s.UseManualProcmailrc,
		"manual_procmailrc":      s.ManualProcmailrc,
	}
}

func (m Mailboxes) List() ([]api.Record, error) {
	return m.client.List("list_mailboxes")
}

func (m Mailboxes) Create(name string, settings MailboxSettings) {
	m.client.Do("create_mailbox", settings.args(name))
}

func (m Mailboxes) Update(name string, settings MailboxSettings) {
	m.client.Do("update_mailbox", settings.args(name))
}

func (m Mailboxes) Delete(name string) {
	m.client.Do("delete_mailbox", map[string]any{"mailbox": name})
}

func (m Mailboxes) ChangePassword(name, password string) {
	m.client.Do("change_mailbox_password", map[string]any{
		"mailbox":  name,
		"password": password,
	})
}
