// Package config resolves runtime settings and the tasks-file path.
package config

import (
	"os"
	"path/filepath"
)

// TasksFileName is the tasks filename placed in the user's home directory.
const TasksFileName = ".taskly-tasks.json"

// Config holds the resolved settings for a single invocation.
type Config struct {
	// TasksFile is the absolute or relative path to the tasks file.
	TasksFile string

	// Quiet suppresses informational output.
	Quiet bool

	// Debug enables debug logging.
	Debug bool
}

// New creates a Config with the default or specified tasks file.
// If tasksFile is empty, uses $HOME/.taskly-tasks.json.
func New(tasksFile string) (*Config, error) {
	path := tasksFile
	if path == "" {
		path = DefaultTasksFile()
	}
	return &Config{TasksFile: path}, nil
}

// DefaultTasksFile returns the default tasks-file path under the user's
// home directory.
func DefaultTasksFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return TasksFileName
	}
	return filepath.Join(home, TasksFileName)
}
