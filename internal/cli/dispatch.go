// Package cli parses arguments and dispatches to registered commands.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskly/internal/commands"
	"taskly/internal/config"
	"taskly/internal/exitcode"
	"taskly/internal/output"
	"taskly/internal/store"
)

// StoreFactory creates a Store from config.
// Used to inject the backend during dispatch.
type StoreFactory func(ctx context.Context, cfg *config.Config) (store.Store, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  StoreFactory
}

// NewDispatcher creates a new dispatcher with the given registry and store factory.
func NewDispatcher(registry *commands.Registry, factory StoreFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> print usage
	if len(args) == 0 {
		return d.dispatch(ctx, "help", nil, out, errOut)
	}

	cmdName := args[0]

	// Top-level flag forms of help and version
	if strings.HasPrefix(cmdName, "-") {
		switch cmdName {
		case "-h", "--help":
			return d.dispatch(ctx, "help", nil, out, errOut)
		case "-v", "--version":
			return d.dispatch(ctx, "version", nil, out, errOut)
		}
		return unknownCommand(cmdName, errOut)
	}

	// Look up command by name or alias
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		return unknownCommand(cmdName, errOut)
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		return unknownCommand(cmdName, errOut)
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var tasksFile string
	var quiet bool
	var debug bool

	fs.StringVar(&tasksFile, "file", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	// Flags may appear anywhere on the line, so partition tokens before
	// parsing; value flags use the --name=value form.
	flagArgs, positional := splitFlags(args)

	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return d.dispatch(ctx, "help", nil, out, errOut)
		}
		return reportFlagError(err, errOut)
	}

	// Create config
	cfg, err := config.New(tasksFile)
	if err != nil {
		output.Errorf(errOut, "%v", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	// Open the store only for commands that use it
	var st store.Store
	if cmd.NeedsStore() {
		st, err = d.factory(ctx, cfg)
		if err != nil {
			output.Errorf(errOut, "Error opening task store: %v", err)
			return exitcode.UserError
		}
	}

	// Run command
	return cmd.Run(ctx, cfg, st, positional, out, errOut)
}

// splitFlags partitions args into flag tokens and positionals.
// Tokens prefixed "--" are flags; a bare "--" ends flag recognition and
// everything after it is positional. Single-dash tokens stay positional so
// titles like "-x" survive.
func splitFlags(args []string) (flags, positional []string) {
	for i, tok := range args {
		if tok == "--" {
			positional = append(positional, args[i+1:]...)
			return flags, positional
		}
		if strings.HasPrefix(tok, "--") {
			flags = append(flags, tok)
			continue
		}
		positional = append(positional, tok)
	}
	return flags, positional
}

// unknownCommand reports an unrecognized command name with a help hint.
func unknownCommand(name string, errOut io.Writer) int {
	output.Errorf(errOut, "Unknown command: %s", name)
	fmt.Fprintln(errOut, "Run 'taskly help' to see available commands.")
	return exitcode.UserError
}

// reportFlagError maps flag.Parse failures to single-line messages.
func reportFlagError(err error, errOut io.Writer) int {
	errStr := err.Error()

	// Check for missing flag value
	if strings.Contains(errStr, "needs an argument") {
		if i := strings.LastIndex(errStr, ":"); i >= 0 {
			output.Errorf(errOut, "Flag needs an argument: %s", strings.TrimSpace(errStr[i+1:]))
			return exitcode.UserError
		}
	}

	// Check for unknown flag
	if name, ok := strings.CutPrefix(errStr, "flag provided but not defined:"); ok {
		output.Errorf(errOut, "Unknown flag: %s", strings.TrimSpace(name))
		return exitcode.UserError
	}

	// Bad flag values and anything else pass through as-is
	output.Errorf(errOut, "%s", errStr)
	return exitcode.UserError
}
