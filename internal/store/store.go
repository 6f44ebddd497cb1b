// Package store reads, writes, and validates the task store file.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"tasktrack/internal/task"
)

// Store is a handle to one task store file. The caller owns the lifecycle:
// ensure, load, mutate in memory, save. There is no locking; concurrent
// invocations against the same file can lose updates.
type Store struct {
	Path string
}

// Open returns a handle for the store file at path without touching the
// filesystem.
func Open(path string) *Store {
	return &Store{Path: path}
}

// Ensure creates the store file with an empty task array if it does not
// exist. Idempotent.
func (s *Store) Ensure() error {
	if _, err := os.Stat(s.Path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat store file: %w", err)
	}
	if err := os.WriteFile(s.Path, []byte("[]"), 0644); err != nil {
		return fmt.Errorf("create store file: %w", err)
	}
	return nil
}

// Load reads the whole store file and parses it as a task array.
func (s *Store) Load() ([]task.Task, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	return tasks, nil
}

// Save overwrites the store file with the full collection, pretty-printed
// with 2-space indentation. The write truncates in place, not via a
// temporary file, so a crash mid-write can lose the store.
func (s *Store) Save(tasks []task.Task) error {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	// Add trailing newline
	data = append(data, '\n')

	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}
