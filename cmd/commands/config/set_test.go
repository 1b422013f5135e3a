package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"panelops/wfctl/internal/config"
)

// setupTestConfig points the config package at a temp file and returns its path.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	return path
}

// execConfig creates the config command, wires up output buffers, runs with the
// given args, and returns what was written to stdout and stderr.
func execConfig(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestSet_Username(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "username", "alice")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"alice"`) {
		t.Errorf("expected confirmation with account name, got: %s", stdout)
	}

	// Verify it was persisted.
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Username != "alice" {
		t.Errorf("expected Username %q, got %q", "alice", cfg.Username)
	}
}

func TestSet_ReportFile_PreservesCase(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "report-file", "/home/Alice/Runs.html")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.ReportFile != "/home/Alice/Runs.html" {
		t.Errorf("expected report path preserved, got %q", cfg.ReportFile)
	}
}

func TestSet_APIURL_Invalid(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "api-url", "not a url")

	if !strings.Contains(stderr, "invalid URL") {
		t.Errorf("expected 'invalid URL' error, got: %s", stderr)
	}
}

func TestSet_APIURL_Valid(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "api-url", "https://api.example.com/")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "api-url") {
		t.Errorf("expected confirmation, got: %s", stdout)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "bogus-key", "value")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}
