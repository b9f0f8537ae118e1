// Package journal implements the optional on-disk mission journal: one
// appended line per lifecycle event, grouped per mission. The ledger's
// event table stays authoritative; the journal is a convenience for
// humans tailing a mission from a shell.
package journal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/bosun/internal/ports/secondary"
)

// FileJournal implements secondary.JournalWriter with per-mission append
// files under dir.
type FileJournal struct {
	dir string
}

// NewFileJournal creates a journal rooted at dir.
func NewFileJournal(dir string) *FileJournal {
	return &FileJournal{dir: dir}
}

// Append writes one journal line for the event to <dir>/<mission-id>.log.
func (j *FileJournal) Append(ctx context.Context, event *secondary.MissionEventRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if event.MissionID == "" {
		return fmt.Errorf("journal event has no mission id")
	}

	if err := os.MkdirAll(j.dir, 0755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}

	path := filepath.Join(j.dir, event.MissionID+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open journal file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s %s %s: %s", event.CreatedAt, event.Kind, event.Agent, event.Summary)
	if event.Notes != "" {
		line += " | " + event.Notes
	}

	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to append journal line: %w", err)
	}

	return nil
}

// Ensure FileJournal implements the interface
var _ secondary.JournalWriter = (*FileJournal)(nil)
