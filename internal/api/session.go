package api

import "fmt"

// Record is one entry from a remote list call, decoded from an XML-RPC
// struct into a loosely typed map.
type Record = map[string]any

// Account describes the control-panel account a session is logged in to,
// parsed from the struct the login procedure returns.
type Account struct {
	ID         int64
	Username   string
	Home       string
	WebServer  string
	MailServer string
}

// Session holds the transport and the session token obtained at login.
// It is immutable for the lifetime of a client run; there is no logout.
type Session struct {
	transport Transport
	token     string
	account   Account
}

// Login authenticates against the panel and returns an established
// session. A failed login is fatal to the run: it is returned as an error,
// never absorbed into a ledger.
func Login(t Transport, username, password string) (*Session, error) {
	reply, err := t.Call("login", []any{username, password})
	if err != nil {
		return nil, fmt.Errorf("api: login as %q: %w", username, err)
	}

	pair, ok := reply.([]any)
	if !ok || len(pair) != 2 {
		return nil, fmt.Errorf("api: login reply has unexpected shape %T", reply)
	}
	token, ok := pair[0].(string)
	if !ok || token == "" {
		return nil, fmt.Errorf("api: login reply missing session token")
	}

	session := &Session{transport: t, token: token}
	if info, ok := pair[1].(map[string]any); ok {
		session.account = parseAccount(info)
	}
	return session, nil
}

// Account returns the logged-in account's details.
func (s *Session) Account() Account { return s.account }

// Call invokes a remote procedure with the session token prepended, as the
// panel contract requires for every post-login call.
func (s *Session) Call(method string, args ...any) (any, error) {
	full := make([]any, 0, len(args)+1)
	full = append(full, s.token)
	full = append(full, args...)
	return s.transport.Call(method, full)
}

// List performs a list-style call and decodes the reply as a collection of
// records.
func (s *Session) List(method string) ([]Record, error) {
	reply, err := s.Call(method)
	if err != nil {
		return nil, err
	}
	return Records(reply)
}

// Records converts a decoded list reply into records. Non-struct entries
// are rejected; list procedures on this API always return struct arrays.
func Records(reply any) ([]Record, error) {
	if reply == nil {
		return nil, nil
	}
	items, ok := reply.([]any)
	if !ok {
		return nil, fmt.Errorf("api: expected a list reply, got %T", reply)
	}
	records := make([]Record, 0, len(items))
	for i, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("api: list entry %d is %T, not a struct", i, item)
		}
		records = append(records, record)
	}
	return records, nil
}

func parseAccount(info map[string]any) Account {
	account := Account{
		Username:   stringField(info, "username"),
		Home:       stringField(info, "home"),
		WebServer:  stringField(info, "web_server"),
		MailServer: stringField(info, "mail_server"),
	}
	switch id := info["id"].(type) {
	case int64:
		account.ID = id
	case float64:
		account.ID = int64(id)
	}
	return account
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
