package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"taskly/internal/config"
	"taskly/internal/exitcode"
	"taskly/internal/store"
)

func init() {
	Register(&InitCmd{})
}

// InitDelay is the pause before the final status lines, simulating setup
// work.
const InitDelay = time.Second

// InitCmd implements the init command.
// Presentation only: it prints status lines, touches no files, and does not
// change where tasks are stored.
type InitCmd struct {
	delay time.Duration
}

// SetDelay overrides the artificial delay (for testing).
func (c *InitCmd) SetDelay(d time.Duration) {
	c.delay = d
}

func (c *InitCmd) Name() string      { return "init" }
func (c *InitCmd) Aliases() []string { return nil }
func (c *InitCmd) Synopsis() string  { return "Print setup status lines" }
func (c *InitCmd) Usage() string     { return "taskly init [project-name]" }
func (c *InitCmd) NeedsStore() bool  { return false }

func (c *InitCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *InitCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	if !cfg.Quiet {
		if len(args) > 0 {
			fmt.Fprintf(out, "🚀 Initializing project \"%s\"...\n", strings.Join(args, " "))
		} else {
			fmt.Fprintln(out, "🚀 Initializing taskly...")
		}
	}

	delay := c.delay
	if delay == 0 {
		delay = InitDelay
	}
	time.Sleep(delay)

	if !cfg.Quiet {
		fmt.Fprintln(out, "📁 Workspace ready.")
		fmt.Fprintln(out, "✨ All set! Add your first task with 'taskly add <title>'.")
	}
	return exitcode.Success
}
