package resources

// Crons manages the account's crontab lines. The panel appends and removes
// raw lines and offers no listing, so these operations are unguarded.
type Crons struct {
	client *Client
}

// Crons returns the cron wrapper.
func (c *Client) Crons() Crons { return Crons{client: c} }

func (cr Crons) Create(line string) {
	cr.client.Do("create_cronjob", map[string]any{"line": line})
}

func (cr Crons) Delete(line string) {
	cr.client.Do("delete_cronjob", map[string]any{"line": line})
}
