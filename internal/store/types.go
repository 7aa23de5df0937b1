// Package store defines the task data model and the storage interface.
package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Priority is a task priority level.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DefaultPriority is used when no priority is given.
const DefaultPriority = PriorityLow

// ParsePriority parses a priority value from user input.
// Returns an error unless the value is exactly high, medium, or low.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s), nil
	default:
		return "", fmt.Errorf("invalid priority: %q (must be high, medium, or low)", s)
	}
}

func (p Priority) String() string { return string(p) }

// Task represents a single to-do entry.
// JSON keys match the on-disk format; completedAt is absent until the
// task is completed.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Priority    Priority   `json:"priority"`
	Completed   bool       `json:"completed"`
	Created     time.Time  `json:"created"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// NewTask creates a task with a fresh ID and creation timestamp.
func NewTask(title string, p Priority) Task {
	return Task{
		ID:       GenerateID(),
		Title:    title,
		Priority: p,
		Created:  time.Now().UTC(),
	}
}

// GenerateID produces a task identifier with negligible collision
// probability. No uniqueness check is performed against existing tasks.
func GenerateID() string {
	return uuid.New().String()
}
