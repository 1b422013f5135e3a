// Package script loads declarative step files and runs them through a
// resources client. A script is a YAML list of catalog actions with named
// arguments; execution is strictly sequential and log-and-continue, so a
// failed step never stops the steps after it.
package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"panelops/wfctl/internal/catalog"
	"panelops/wfctl/internal/resources"
)

// Step is one scripted operation.
type Step struct {
	Action string         `yaml:"action"`
	Args   map[string]any `yaml:"args"`
}

// Script is an ordered list of steps.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Load reads and validates a script file. Unlike remote call failures,
// an unreadable or malformed script is fatal: nothing has run yet, and
// the caller must not proceed with half a plan.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates script source.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("script: parse: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("script: no steps declared")
	}
	for i, step := range s.Steps {
		if step.Action == "" {
			return fmt.Errorf("script: step %d: missing action", i+1)
		}
		if _, ok := catalog.Lookup(step.Action); !ok {
			return fmt.Errorf("script: step %d: unknown action %q", i+1, step.Action)
		}
	}
	return nil
}

// Execute runs every step in declaration order. Outcomes land in the
// client's ledger; Execute itself cannot fail once the script is loaded.
func Execute(client *resources.Client, s *Script) {
	for _, step := range s.Steps {
		client.Do(step.Action, step.Args)
	}
}
