package catalog

// operations is the full table of remote procedures, keyed by action name.
// Parameter order matches the panel API's positional calling convention
// after the session token.
var operations = map[string]Operation{
	// Mailboxes.
	"list_mailboxes": {Name: "list_mailboxes"},
	"create_mailbox": {
		Name: "create_mailbox",
		Kind: "mailbox",
		Params: []Param{
			{Name: "mailbox", Required: true},
			{Name: "enable_spam_protection", Default: true},
			{Name: "discard_spam", Default: false},
			{Name: "spam_redirect_folder", Default: ""},
			{Name: "use_manual_procmailrc", Default: false},
			{Name: "manual_procmailrc", Default: ""},
		},
		Guard: GuardAbsent,
		List:  "list_mailboxes",
		Keys:  []string{"mailbox"},
	},
	"update_mailbox": {
		Name: "update_mailbox",
		Kind: "mailbox",
		Params: []Param{
			{Name: "mailbox", Required: true},
			{Name: "enable_spam_protection", Default: true},
			{Name: "discard_spam", Default: false},
			{Name: "spam_redirect_folder", Default: ""},
			{Name: "use_manual_procmailrc", Default: false},
			{Name: "manual_procmailrc", Default: ""},
		},
		Guard: GuardPresent,
		List:  "list_mailboxes",
		Keys:  []string{"mailbox"},
	},
	"delete_mailbox": {
		Name:   "delete_mailbox",
		Kind:   "mailbox",
		Params: []Param{{Name: "mailbox", Required: true}},
		Guard:  GuardPresent,
		List:   "list_mailboxes",
		Keys:   []string{"mailbox"},
	},
	"change_mailbox_password": {
		Name: "change_mailbox_password",
		Kind: "mailbox",
		Params: []Param{
			{Name: "mailbox", Required: true},
			{Name: "password", Required: true},
		},
		Guard: GuardPresent,
		List:  "list_mailboxes",
		Keys:  []string{"mailbox"},
	},

	// Email addresses.
	"list_emails": {Name: "list_emails"},
	"create_email": {
		Name: "create_email",
		Kind: "email address",
		Params: []Param{
			{Name: "email_address", Required: true},
			{Name: "targets", Required: true, Join: true},
			{Name: "autoresponder_on", Default: false},
			{Name: "autoresponder_subject", Default: ""},
			{Name: "autoresponder_message", Default: ""},
			{Name: "autoresponder_from", Default: ""},
			{Name: "script_machine", Default: ""},
			{Name: "script_path", Default: ""},
		},
		Guard: GuardAbsent,
		List:  "list_emails",
		Keys:  []string{"email_address"},
	},
	"update_email": {
		Name: "update_email",
		Kind: "email address",
		Params: []Param{
			{Name: "email_address", Required: true},
			{Name: "targets", Required: true, Join: true},
			{Name: "autoresponder_on", Default: false},
			{Name: "autoresponder_subject", Default: ""},
			{Name: "autoresponder_message", Default: ""},
			{Name: "autoresponder_from", Default: ""},
			{Name: "script_machine", Default: ""},
			{Name: "script_path", Default: ""},
		},
		Guard: GuardPresent,
		List:  "list_emails",
		Keys:  []string{"email_address"},
	},
	"delete_email": {
		Name:   "delete_email",
		Kind:   "email address",
		Params: []Param{{Name: "email_address", Required: true}},
		Guard:  GuardPresent,
		List:   "list_emails",
		Keys:   []string{"email_address"},
	},

	// Domains. The panel accepts create/delete for domains it already
	// knows about, so these carry no guard.
	"list_domains": {Name: "list_domains"},
	"create_domain": {
		Name: "create_domain",
		Params: []Param{
			{Name: "domain", Required: true},
			{Name: "subdomains", Variadic: true},
		},
	},
	"delete_domain": {
		Name: "delete_domain",
		Params: []Param{
			{Name: "domain", Required: true},
			{Name: "subdomains", Variadic: true},
		},
	},

	// Websites.
	"list_websites":        {Name: "list_websites"},
	"list_bandwidth_usage": {Name: "list_bandwidth_usage"},
	"create_website": {
		Name: "create_website",
		Kind: "website",
		Params: []Param{
			{Name: "website_name", Required: true},
			{Name: "ip", Required: true},
			{Name: "https", Default: false},
			{Name: "subdomains", Default: []any{}},
			{Name: "site_apps", Default: []any{}},
		},
		Guard: GuardAbsent,
		List:  "list_websites",
		Keys:  []string{"website_name"},
	},
	"update_website": {
		Name: "update_website",
		Kind: "website",
		Params: []Param{
			{Name: "website_name", Required: true},
			{Name: "ip", Required: true},
			{Name: "https", Default: false},
			{Name: "subdomains", Default: []any{}},
			{Name: "site_apps", Default: []any{}},
		},
		Guard: GuardPresent,
		List:  "list_websites",
		Keys:  []string{"website_name"},
	},
	"delete_website": {
		Name: "delete_website",
		Kind: "website",
		Params: []Param{
			{Name: "website_name", Required: true},
			{Name: "ip", Required: true},
			{Name: "https", Default: false},
		},
		Guard: GuardPresent,
		List:  "list_websites",
		Keys:  []string{"website_name"},
	},

	// Applications.
	"list_apps":      {Name: "list_apps"},
	"list_app_types": {Name: "list_app_types"},
	"create_app": {
		Name: "create_app",
		Kind: "application",
		Params: []Param{
			{Name: "name", Required: true},
			{Name: "type", Required: true},
			{Name: "autostart", Default: false},
			{Name: "extra_info", Default: ""},
			{Name: "open_port", Default: false},
		},
		Guard: GuardAbsent,
		List:  "list_apps",
		Keys:  []string{"name"},
	},
	"delete_app": {
		Name:   "delete_app",
		Kind:   "application",
		Params: []Param{{Name: "name", Required: true}},
		Guard:  GuardPresent,
		List:   "list_apps",
		Keys:   []string{"name"},
	},

	// Cron jobs. The panel appends/removes raw crontab lines; there is no
	// list procedure to guard against.
	"create_cronjob": {
		Name:   "create_cronjob",
		Params: []Param{{Name: "line", Required: true}},
	},
	"delete_cronjob": {
		Name:   "delete_cronjob",
		Params: []Param{{Name: "line", Required: true}},
	},

	// DNS overrides.
	"list_dns_overrides": {Name: "list_dns_overrides"},
	"create_dns_override": {
		Name: "create_dns_override",
		Params: []Param{
			{Name: "domain", Required: true},
			{Name: "a_ip", Default: ""},
			{Name: "cname", Default: ""},
			{Name: "mx_name", Default: ""},
			{Name: "mx_priority", Default: ""},
			{Name: "spf_record", Default: ""},
			{Name: "aaaa_ip", Default: ""},
		},
	},
	"delete_dns_override": {
		Name: "delete_dns_override",
		Params: []Param{
			{Name: "domain", Required: true},
			{Name: "a_ip", Default: ""},
			{Name: "cname", Default: ""},
			{Name: "mx_name", Default: ""},
			{Name: "mx_priority", Default: ""},
			{Name: "spf_record", Default: ""},
			{Name: "aaaa_ip", Default: ""},
		},
	},

	// Databases and database users.
	"list_dbs":      {Name: "list_dbs"},
	"list_db_users": {Name: "list_db_users"},
	"create_db": {
		Name: "create_db",
		Kind: "database",
		Params: []Param{
			{Name: "name", Required: true},
			{Name: "db_type", Default: "postgresql"},
			{Name: "password", Required: true},
		},
		Guard: GuardAbsent,
		List:  "list_dbs",
		Keys:  []string{"name"},
	},
	"delete_db": {
		Name: "delete_db",
		Kind: "database",
		Params: []Param{
			{Name: "name", Required: true},
			{Name: "db_type", Default: "postgresql"},
		},
		Guard: GuardPresent,
		List:  "list_dbs",
		Keys:  []string{"name"},
	},
	"create_db_user": {
		Name: "create_db_user",
		Kind: "database user",
		Params: []Param{
			{Name: "username", Required: true},
			{Name: "password", Required: true},
			{Name: "db_type", Required: true},
		},
		Guard: GuardAbsent,
		List:  "list_db_users",
		Keys:  []string{"username"},
	},
	"delete_db_user": {
		Name: "delete_db_user",
		Kind: "database user",
		Params: []Param{
			{Name: "username", Required: true},
			{Name: "db_type", Required: true},
		},
		Guard: GuardPresent,
		List:  "list_db_users",
		Keys:  []string{"username"},
	},
	"change_db_user_password": {
		Name: "change_db_user_password",
		Kind: "database user",
		Params: []Param{
			{Name: "username", Required: true},
			{Name: "password", Required: true},
			{Name: "db_type", Required: true},
		},
		Guard: GuardPresent,
		List:  "list_db_users",
		Keys:  []string{"username"},
	},
	"make_user_owner_of_db": {
		Name: "make_user_owner_of_db",
		Kind: "database user",
		Params: []Param{
			{Name: "username", Required: true},
			{Name: "database", Required: true},
			{Name: "db_type", Default: "postgresql"},
		},
		Guard: GuardPresent,
		List:  "list_db_users",
		Keys:  []string{"username"},
	},
	"grant_db_permissions": {
		Name: "grant_db_permissions",
		Kind: "database user",
		Params: []Param{
			{Name: "username", Required: true},
			{Name: "database", Required: true},
			{Name: "db_type", Default: "postgresql"},
		},
		Guard: GuardPresent,
		List:  "list_db_users",
		Keys:  []string{"username"},
	},
	"revoke_db_permissions": {
		Name: "revoke_db_permissions",
		Kind: "database user",
		Params: []Param{
			{Name: "username", Required: true},
			{Name: "database", Required: true},
			{Name: "db_type", Default: "postgresql"},
		},
		Guard: GuardPresent,
		List:  "list_db_users",
		Keys:  []string{"username"},
	},
	"enable_addon": {
		Name: "enable_addon",
		Kind: "database",
		Params: []Param{
			{Name: "database", Required: true},
			{Name: "db_type", Default: "postgresql"},
			{Name: "addon", Required: true},
		},
		Guard: GuardPresent,
		List:  "list_dbs",
		Keys:  []string{"database"},
	},

	// Remote files.
	"replace_in_file": {
		Name: "replace_in_file",
		Params: []Param{
			{Name: "filename", Required: true},
			{Name: "changes", Required: true},
		},
	},
	"write_file": {
		Name: "write_file",
		Params: []Param{
			{Name: "filename", Required: true},
			{Name: "str", Required: true},
			{Name: "mode", Default: "wb"},
		},
	},

	// Shell users.
	"list_users": {Name: "list_users"},
	"create_user": {
		Name: "create_user",
		Kind: "shell user",
		Params: []Param{
			{Name: "username", Required: true},
			{Name: "shell", Required: true},
			{Name: "groups", Default: []any{}},
		},
		Guard: GuardAbsent,
		List:  "list_users",
		Keys:  []string{"username"},
	},
	"delete_user": {
		Name:   "delete_user",
		Kind:   "shell user",
		Params: []Param{{Name: "username", Required: true}},
		Guard:  GuardPresent,
		List:   "list_users",
		Keys:   []string{"username"},
	},
	"change_user_password": {
		Name: "change_user_password",
		Kind: "shell user",
		Params: []Param{
			{Name: "username", Required: true},
			{Name: "password", Required: true},
		},
		Guard: GuardPresent,
		List:  "list_users",
		Keys:  []string{"username"},
	},

	// Server information and shell commands.
	"list_ips":      {Name: "list_ips"},
	"list_machines": {Name: "list_machines"},
	"system": {
		Name:   "system",
		Params: []Param{{Name: "cmd", Required: true}},
	},
}
