package resources

import "panelops/wfctl/internal/api"

// Apps manages the account's installed applications.
type Apps struct {
	client *Client
}

// Apps returns the application wrapper.
func (c *Client) Apps() Apps { return Apps{client: c} }

// AppSettings describes a new application.
type AppSettings struct {
	Type      string
	Autostart bool
	ExtraInfo string
	OpenPort  bool
}

func (a Apps) List() ([]api.Record, error) {
	return a.client.List("list_apps")
}

// Types lists the application types the panel can install.
func (a Apps) Types() ([]api.Record, error) {
	return a.client.List("list_app_types")
}

func (a Apps) Create(name string, settings AppSettings) {
	a.client.Do("create_app", map[string]any{
		"name":       name,
		"type":       settings.Type,
		"autostart":  settings.Autostart,
		"extra_info": settings.ExtraInfo,
		"open_port":  settings.OpenPort,
	})
}

func (a Apps) Delete(name string) {
	a.client.Do("delete_app", map[string]any{"name": name})
}
