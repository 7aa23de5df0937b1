package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"runtime/debug"

	"taskly/internal/config"
	"taskly/internal/exitcode"
	"taskly/internal/store"
)

// Version is the application version. Set at build time; when the binary
// carries module build info, the module version takes precedence.
var Version = "0.1.0"

func init() {
	Register(&VersionCmd{})

	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			Version = v
		}
	}
}

// VersionCmd implements the version command.
type VersionCmd struct{}

func (c *VersionCmd) Name() string      { return "version" }
func (c *VersionCmd) Aliases() []string { return nil }
func (c *VersionCmd) Synopsis() string  { return "Print version" }
func (c *VersionCmd) Usage() string     { return "taskly version" }
func (c *VersionCmd) NeedsStore() bool  { return false }

func (c *VersionCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *VersionCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprintf(out, "taskly %s\n", Version)
	return exitcode.Success
}
