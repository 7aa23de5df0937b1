package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"taskly/internal/config"
	"taskly/internal/exitcode"
	"taskly/internal/output"
	"taskly/internal/store"
)

func init() {
	Register(&CompleteCmd{})
}

// CompleteCmd implements the complete command.
type CompleteCmd struct{}

func (c *CompleteCmd) Name() string      { return "complete" }
func (c *CompleteCmd) Aliases() []string { return []string{"done"} }
func (c *CompleteCmd) Synopsis() string  { return "Mark a task completed" }
func (c *CompleteCmd) Usage() string     { return "taskly complete <number>" }
func (c *CompleteCmd) NeedsStore() bool  { return true }

func (c *CompleteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CompleteCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	tasks := loadTasks(ctx, st, errOut)

	num, err := ParseTaskNumber(args, len(tasks))
	if err != nil {
		if errors.Is(err, ErrTaskNumberRequired) {
			output.Errorf(errOut, "Task number required. Usage: %s", c.Usage())
		} else {
			output.Errorf(errOut, "Invalid task number: %s (valid: 1-%d)", args[0], len(tasks))
		}
		return exitcode.UserError
	}

	task := &tasks[num-1]
	if task.Completed {
		// Already done: no write, CompletedAt stays as it was
		if !cfg.Quiet {
			output.Infof(out, "Task \"%s\" is already completed.", task.Title)
		}
		return exitcode.Success
	}

	now := time.Now().UTC()
	task.Completed = true
	task.CompletedAt = &now
	saveTasks(ctx, st, tasks, errOut)

	if !cfg.Quiet {
		fmt.Fprintf(out, "✅ Completed: \"%s\"\n", task.Title)
	}
	return exitcode.Success
}
