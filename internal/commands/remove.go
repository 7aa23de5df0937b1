package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"taskly/internal/config"
	"taskly/internal/exitcode"
	"taskly/internal/output"
	"taskly/internal/store"
)

func init() {
	Register(&RemoveCmd{})
}

// RemoveCmd implements the remove command.
type RemoveCmd struct{}

func (c *RemoveCmd) Name() string      { return "remove" }
func (c *RemoveCmd) Aliases() []string { return []string{"rm"} }
func (c *RemoveCmd) Synopsis() string  { return "Remove a task" }
func (c *RemoveCmd) Usage() string     { return "taskly remove <number>" }
func (c *RemoveCmd) NeedsStore() bool  { return true }

func (c *RemoveCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RemoveCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
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

	// Splice out the task; later tasks shift down one position
	removed := tasks[num-1]
	tasks = append(tasks[:num-1], tasks[num:]...)
	saveTasks(ctx, st, tasks, errOut)

	if !cfg.Quiet {
		fmt.Fprintf(out, "%s Removed: \"%s\"\n", output.GlyphRemoved, removed.Title)
	}
	return exitcode.Success
}
