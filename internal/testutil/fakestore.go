// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"
	"time"

	"taskly/internal/store"
)

// FakeStore is an in-memory implementation of store.Store for testing.
type FakeStore struct {
	mu    sync.RWMutex
	tasks []store.Task
	saves int

	// Error injection for testing
	LoadErr error
	SaveErr error
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

// AddTask seeds a pending task and returns it.
func (f *FakeStore) AddTask(title string, p store.Priority) store.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := store.NewTask(title, p)
	f.tasks = append(f.tasks, t)
	return t
}

// AddCompletedTask seeds a completed task and returns it.
func (f *FakeStore) AddCompletedTask(title string, p store.Priority) store.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := store.NewTask(title, p)
	now := time.Now().UTC()
	t.Completed = true
	t.CompletedAt = &now
	f.tasks = append(f.tasks, t)
	return t
}

// Tasks returns a copy of the stored sequence.
func (f *FakeStore) Tasks() []store.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]store.Task, len(f.tasks))
	copy(result, f.tasks)
	return result
}

// SaveCount returns the number of successful Save calls.
func (f *FakeStore) SaveCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.saves
}

// Load implements store.Store.
func (f *FakeStore) Load(ctx context.Context) ([]store.Task, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]store.Task, len(f.tasks))
	copy(result, f.tasks)
	return result, nil
}

// Save implements store.Store.
// An injected SaveErr leaves the stored sequence unchanged, like a failed
// file write.
func (f *FakeStore) Save(ctx context.Context, tasks []store.Task) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = make([]store.Task, len(tasks))
	copy(f.tasks, tasks)
	f.saves++
	return nil
}

// Path implements store.Store.
func (f *FakeStore) Path() string {
	return "fake://tasks"
}
