// Package jsonfile implements the store.Store interface on a single JSON file.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"

	"taskly/internal/store"
)

const (
	// LockTimeout is the maximum time to wait for the advisory file lock.
	// Locks are held only for the duration of a single read or write, so
	// waiting longer than this means something is wedged; the operation
	// proceeds unlocked (last-writer-wins, as without locking).
	LockTimeout = 2 * time.Second

	// lockRetryDelay is the polling interval while waiting for the lock.
	lockRetryDelay = 50 * time.Millisecond

	// filePerm is the mode for the tasks file.
	filePerm = 0o644

	// dirPerm is the mode for a created parent directory.
	dirPerm = 0o755
)

// Store implements store.Store using a pretty-printed JSON array on disk.
type Store struct {
	path   string
	flk    *flock.Flock
	logger *log.Logger
}

// New creates a file-backed store for the given path.
// A nil logger discards diagnostics. The file itself is not touched until
// the first Save; the advisory lock lives next to it at <path>.lock.
func New(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{
		path:   path,
		flk:    flock.New(path + ".lock"),
		logger: logger,
	}
}

// Path returns the tasks-file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads and parses the tasks file.
// A missing file yields an empty sequence without acquiring the lock, so a
// pure read on a fresh system leaves no artifacts behind.
func (s *Store) Load(ctx context.Context) ([]store.Task, error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("tasks file missing, starting empty", "path", s.path)
		return nil, nil
	}

	unlock := s.acquire(ctx, false)
	defer unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read tasks file: %w", err)
	}

	var tasks []store.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse tasks file: %w", err)
	}

	s.logger.Debug("loaded tasks", "count", len(tasks), "path", s.path)
	return tasks, nil
}

// Save serializes the full sequence and overwrites the tasks file.
// The sequence is always written as a JSON array, 2-space indented, with a
// trailing newline; a nil slice becomes [].
func (s *Store) Save(ctx context.Context, tasks []store.Task) error {
	if tasks == nil {
		tasks = []store.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	data = append(data, '\n')

	unlock := s.acquire(ctx, true)
	defer unlock()

	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("create tasks directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, filePerm); err != nil {
		return fmt.Errorf("write tasks file: %w", err)
	}

	s.logger.Debug("saved tasks", "count", len(tasks), "path", s.path)
	return nil
}

// acquire takes the advisory lock (exclusive for writes, shared for reads)
// and returns the matching release func. Locking is best effort: on timeout
// or error the operation proceeds unlocked and the failure is only logged.
func (s *Store) acquire(ctx context.Context, exclusive bool) func() {
	lockCtx, cancel := context.WithTimeout(ctx, LockTimeout)
	defer cancel()

	var (
		locked bool
		err    error
	)
	if exclusive {
		locked, err = s.flk.TryLockContext(lockCtx, lockRetryDelay)
	} else {
		locked, err = s.flk.TryRLockContext(lockCtx, lockRetryDelay)
	}

	if err != nil || !locked {
		s.logger.Debug("proceeding without file lock", "path", s.flk.Path(), "err", err)
		return func() {}
	}

	return func() {
		if err := s.flk.Unlock(); err != nil {
			s.logger.Debug("releasing file lock failed", "path", s.flk.Path(), "err", err)
		}
	}
}
