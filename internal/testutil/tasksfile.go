package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"taskly/internal/store"
)

// WriteTasksFile writes tasks in the on-disk JSON format to tasks.json under
// dir and returns the file path.
func WriteTasksFile(t *testing.T, dir string, tasks []store.Task) string {
	t.Helper()

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal tasks: %v", err)
	}
	data = append(data, '\n')

	path := filepath.Join(dir, "tasks.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write tasks file: %v", err)
	}
	return path
}

// ReadTasksFile parses the tasks file at path.
func ReadTasksFile(t *testing.T, path string) []store.Task {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read tasks file: %v", err)
	}

	var tasks []store.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		t.Fatalf("failed to parse tasks file: %v", err)
	}
	return tasks
}
