// Package manifest parses backlog manifests: YAML files listing missions
// to import into the ledger in bulk.
package manifest

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/bosun/internal/core/mission"
)

// Backlog is a parsed backlog manifest.
type Backlog struct {
	Missions []Entry `yaml:"missions"`
}

// Entry describes one mission to import. ID is optional; entries without
// one get a generated MSN id at import time. Kind defaults to general
// and Status to Not Started.
type Entry struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Kind        string `yaml:"kind"`
	Status      string `yaml:"status"`
	Description string `yaml:"description"`
}

// ParseBacklog decodes and validates a backlog manifest payload.
// Entry order is preserved; it becomes ledger insertion order, which the
// candidate picker uses to break status ties.
func ParseBacklog(data []byte) (*Backlog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("backlog manifest is empty")
	}

	var backlog Backlog
	if err := yaml.Unmarshal(data, &backlog); err != nil {
		return nil, fmt.Errorf("failed to decode backlog manifest: %w", err)
	}
	if err := backlog.Validate(); err != nil {
		return nil, err
	}

	return &backlog, nil
}

// LoadBacklog reads and parses a backlog manifest file.
func LoadBacklog(path string) (*Backlog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backlog manifest: %w", err)
	}

	backlog, err := ParseBacklog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return backlog, nil
}

// Validate checks every entry for a title, unique ids, and legal kind
// and status values.
func (b *Backlog) Validate() error {
	if len(b.Missions) == 0 {
		return fmt.Errorf("backlog manifest has no missions")
	}

	seen := make(map[string]bool)
	for i, entry := range b.Missions {
		if entry.Title == "" {
			return fmt.Errorf("mission %d: title is required", i+1)
		}
		if entry.ID != "" {
			if seen[entry.ID] {
				return fmt.Errorf("mission %d: duplicate id %s", i+1, entry.ID)
			}
			seen[entry.ID] = true
		}
		if _, err := mission.ParseKind(entry.Kind); err != nil {
			return fmt.Errorf("mission %d: %w", i+1, err)
		}
		if entry.Status != "" {
			if _, err := mission.ParseStatus(entry.Status); err != nil {
				return fmt.Errorf("mission %d: %w", i+1, err)
			}
		}
	}

	return nil
}
