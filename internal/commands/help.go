package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskly/internal/config"
	"taskly/internal/exitcode"
	"taskly/internal/store"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskly help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskly add <title...> [--priority=high|medium|low]  Add a task
  taskly list [--completed|--pending]                 List tasks
  taskly complete <number>                            Mark a task completed
  taskly remove <number>                              Remove a task
  taskly init [project-name]                          Print setup status lines
  taskly help                                         Print this help
  taskly version                                      Print version

Aliases:
  done    complete
  rm      remove

Common flags:
  --file=<path>    Override the tasks file location
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
