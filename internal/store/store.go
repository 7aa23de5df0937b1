// Package store defines the task data model and the storage interface.
package store

import "context"

// Store is the interface for task persistence.
// The tasks file holds a single ordered JSON array; ordering is insertion
// order and is what user-facing task numbers are derived from. Commands
// never touch the filesystem directly.
type Store interface {
	// Load reads the persisted task sequence.
	// A missing file is an empty sequence, not an error.
	Load(ctx context.Context) ([]Task, error)

	// Save overwrites the persisted sequence with the given tasks.
	// The file is created on first save.
	Save(ctx context.Context, tasks []Task) error

	// Path returns the resolved tasks-file path for messages and logs.
	Path() string
}
