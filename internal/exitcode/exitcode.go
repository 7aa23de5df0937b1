// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion, including informational
	// no-ops such as completing an already-completed task.
	Success = 0

	// UserError indicates a user error (missing title, invalid priority,
	// invalid task number, unknown command or flag).
	UserError = 1
)
