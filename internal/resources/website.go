package resources

import "panelops/wfctl/internal/api"

// Websites manages the account's website definitions.
type Websites struct {
	client *Client
}

// Websites returns the website wrapper.
func (c *Client) Websites() Websites { return Websites{client: c} }

// SiteApp mounts an application at a URL path within a website.
type SiteApp struct {
	Name string
	Path string
}

// WebsiteSettings describes a website's binding and contents.
type WebsiteSettings struct {
	IP         string
	HTTPS      bool
	Subdomains []string
	SiteApps   []SiteApp
}

func (s WebsiteSettings) args(name string) map[string]any {
	subdomains := make([]any, len(s.Subdomains))
	for i, sub := range s.Subdomains {
		subdomains[i] = sub
	}
	apps := make([]any, len(s.SiteApps))
	for i, app := range s.SiteApps {
		apps[i] = []any{app.Name, app.Path}
	}
	return map[string]any{
		"website_name": name,
		"ip":           s.IP,
		"https":        s.HTTPS,
		"subdomains":   subdomains,
		"site_apps":    apps,
	}
}

func (w Websites) List() ([]api.Record, error) {
	return w.client.List("list_websites")
}

// BandwidthUsage fetches the per-website traffic accounting.
func (w Websites) BandwidthUsage() (any, error) {
	return w.client.run.Session().Call("list_bandwidth_usage")
}

func (w Websites) Create(name string, settings WebsiteSettings) {
	w.client.Do("create_website", settings.args(name))
}

func (w Websites) Update(name string, settings WebsiteSettings) {
	w.client.Do("update_website", settings.args(name))
}

func (w Websites) Delete(name, ip string, https bool) {
	w.client.Do("delete_website", map[string]any{
		"website_name": name,
		"ip":           ip,
		"https":        https,
	})
}
