package commands

import (
	"context"
	"io"

	"taskly/internal/output"
	"taskly/internal/store"
)

// loadTasks reads the full sequence from the store.
// Failures are absorbed: the error is reported to errOut and an empty
// sequence is returned, so every command keeps working on a fresh view.
func loadTasks(ctx context.Context, st store.Store, errOut io.Writer) []store.Task {
	tasks, err := st.Load(ctx)
	if err != nil {
		output.Errorf(errOut, "Error loading tasks: %v", err)
		return nil
	}
	return tasks
}

// saveTasks writes the full sequence to the store.
// Failures are absorbed: the error is reported to errOut and the caller
// proceeds as if the write succeeded, keeping its success output and exit
// code unchanged. Callers save before printing success.
func saveTasks(ctx context.Context, st store.Store, tasks []store.Task, errOut io.Writer) {
	if err := st.Save(ctx, tasks); err != nil {
		output.Errorf(errOut, "Error saving tasks: %v", err)
	}
}
