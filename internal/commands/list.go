package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskly/internal/config"
	"taskly/internal/exitcode"
	"taskly/internal/output"
	"taskly/internal/store"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct {
	completed bool
	pending   bool
}

// SetFilter sets the filter flags (for testing).
func (c *ListCmd) SetFilter(completed, pending bool) {
	c.completed = completed
	c.pending = pending
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return nil }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "taskly list [--completed|--pending]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.completed, "completed", false, "")
	fs.BoolVar(&c.pending, "pending", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	tasks := loadTasks(ctx, st, errOut)

	// --completed wins when both filters are given
	filtered := tasks
	switch {
	case c.completed:
		filtered = filterTasks(tasks, true)
	case c.pending:
		filtered = filterTasks(tasks, false)
	}

	if len(filtered) == 0 {
		if !cfg.Quiet {
			switch {
			case c.completed:
				fmt.Fprintf(out, "%s No completed tasks.\n", output.GlyphEmpty)
			case c.pending:
				fmt.Fprintf(out, "%s No pending tasks.\n", output.GlyphEmpty)
			default:
				fmt.Fprintf(out, "%s No tasks yet. Add one with 'taskly add <title>'.\n", output.GlyphEmpty)
			}
		}
		return exitcode.Success
	}

	// Entries are numbered by position in the displayed listing
	for i, task := range filtered {
		output.FormatTask(out, i+1, task)
	}
	output.FormatTotal(out, len(filtered))

	return exitcode.Success
}

// filterTasks returns the tasks whose completion state matches completed,
// preserving stored order.
func filterTasks(tasks []store.Task, completed bool) []store.Task {
	var result []store.Task
	for _, t := range tasks {
		if t.Completed == completed {
			result = append(result, t)
		}
	}
	return result
}
