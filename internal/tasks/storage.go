package tasks

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const tasksFileName = "tasks.json"

// Storage persists the task list as JSON in a directory.
type Storage struct {
	dir string
}

// NewStorage creates a storage instance rooted at dir.
func NewStorage(dir string) *Storage {
	return &Storage{dir: dir}
}

// Load reads the task list. A missing file yields an empty list.
func (s *Storage) Load() (*List, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewList(nil), nil
		}
		return nil, fmt.Errorf("read tasks file: %w", err)
	}

	var items []Task
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse tasks file: %w", err)
	}
	return NewList(items), nil
}

// Save persists the task list with an atomic write.
func (s *Storage) Save(l *List) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create tasks directory: %w", err)
	}

	data, err := json.MarshalIndent(l.Items(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	// Atomic write: write to temp file then rename.
	path := s.path()
	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0o644); err != nil {
		return fmt.Errorf("write tasks temp file: %w", err)
	}
	if err := os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("rename tasks temp file: %w", err)
	}
	return nil
}

func (s *Storage) path() string {
	return filepath.Join(s.dir, tasksFileName)
}
