package resources

import "panelops/wfctl/internal/api"

// ShellUsers manages the account's shell users.
type ShellUsers struct {
	client *Client
}

// ShellUsers returns the shell-user wrapper.
func (c *Client) ShellUsers() ShellUsers { return ShellUsers{client: c} }

func (s ShellUsers) List() ([]api.Record, error) {
	return s.client.List("list_users")
}

func (s ShellUsers) Create(username, shell string, groups ...string) {
	groupList := make([]any, len(groups))
	for i, group := range groups {
		groupList[i] = group
	}
	s.client.Do("create_user", map[string]any{
		"username": username,
		"shell":    shell,
		"groups":   groupList,
	})
}

func (s ShellUsers) Delete(username string) {
	s.client.Do("delete_user", map[string]any{"username": username})
}

func (s ShellUsers) ChangePassword(username, password string) {
	s.client.Do("change_user_password", map[string]any{
		"username": username,
		"password": password,
	})
}
