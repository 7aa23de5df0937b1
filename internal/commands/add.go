package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskly/internal/config"
	"taskly/internal/exitcode"
	"taskly/internal/output"
	"taskly/internal/store"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	priority string
}

// SetPriority sets the priority flag value (for testing).
func (c *AddCmd) SetPriority(p string) {
	c.priority = p
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a task" }
func (c *AddCmd) Usage() string     { return "taskly add <title> [--priority=high|medium|low]" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.priority, "priority", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	// Join args to form title
	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		output.Errorf(errOut, "Title required. Usage: %s", c.Usage())
		return exitcode.UserError
	}

	// Validate priority before touching the store
	priority := store.DefaultPriority
	if c.priority != "" {
		var err error
		priority, err = store.ParsePriority(c.priority)
		if err != nil {
			output.Errorf(errOut, "Invalid priority: \"%s\" (must be high, medium, or low)", c.priority)
			return exitcode.UserError
		}
	}

	tasks := loadTasks(ctx, st, errOut)
	tasks = append(tasks, store.NewTask(title, priority))
	saveTasks(ctx, st, tasks, errOut)

	if !cfg.Quiet {
		fmt.Fprintf(out, "✅ Added: \"%s\" (priority: %s)\n", title, priority)
	}
	return exitcode.Success
}
