// Package main is the entry point for the taskly CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"taskly/internal/backend/jsonfile"
	"taskly/internal/cli"
	"taskly/internal/commands"
	"taskly/internal/config"
	"taskly/internal/logging"
	"taskly/internal/store"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create store factory
	factory := func(ctx context.Context, cfg *config.Config) (store.Store, error) {
		logger := logging.New(os.Stderr, cfg.Debug)
		return jsonfile.New(cfg.TasksFile, logger), nil
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
