package resources

// Files edits files on the account's home server through the panel.
type Files struct {
	client *Client
}

// Files returns the remote-file wrapper.
func (c *Client) Files() Files { return Files{client: c} }

// Replacement is one search/replace pair applied by ReplaceInFile.
type Replacement struct {
	Old string
	New string
}

// ReplaceInFile applies each replacement to the named remote file.
func (f Files) ReplaceInFile(filename string, changes ...Replacement) {
	pairs := make([]any, len(changes))
	for i, change := range changes {
		pairs[i] = []any{change.Old, change.New}
	}
	f.client.Do("replace_in_file", map[string]any{
		"filename": filename,
		"changes":  pairs,
	})
}

// WriteFile writes content to the named remote file. Mode follows the
// panel's file-open convention ("wb" to overwrite, "ab" to append).
func (f Files) WriteFile(filename, content, mode string) {
	f.client.Do("write_file", map[string]any{
		"filename": filename,
		"str":      content,
		"mode":     mode,
	})
}
