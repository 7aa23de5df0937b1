package commands

import (
	"context"
	"flag"
	"io"
	"testing"

	"taskly/internal/config"
	"taskly/internal/store"
)

type stubCmd struct {
	name    string
	aliases []string
}

func (c *stubCmd) Name() string                     { return c.name }
func (c *stubCmd) Aliases() []string                { return c.aliases }
func (c *stubCmd) Synopsis() string                 { return "" }
func (c *stubCmd) Usage() string                    { return "" }
func (c *stubCmd) NeedsStore() bool                 { return false }
func (c *stubCmd) RegisterFlags(fs *flag.FlagSet)   {}
func (c *stubCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	return 0
}

func TestRegistry_FindByNameAndAlias(t *testing.T) {
	r := NewRegistry()
	cmd := &stubCmd{name: "complete", aliases: []string{"done"}}
	if err := r.Register(cmd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, n := range []string{"complete", "done"} {
		got, ok := r.Find(n)
		if !ok || got != cmd {
			t.Errorf("Find(%q) did not return the registered command", n)
		}
	}

	if _, ok := r.Find("missing"); ok {
		t.Error("expected Find to miss for an unregistered name")
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&stubCmd{name: "remove", aliases: []string{"rm"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := r.Register(&stubCmd{name: "remove"}); err == nil {
		t.Error("expected error for duplicate name")
	}
	if err := r.Register(&stubCmd{name: "reap", aliases: []string{"rm"}}); err == nil {
		t.Error("expected error for duplicate alias")
	}
}

func TestRegistry_AllSortedByName(t *testing.T) {
	r := NewRegistry()
	for _, n := range []string{"remove", "add", "list"} {
		if err := r.Register(&stubCmd{name: n}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all := r.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(all))
	}
	want := []string{"add", "list", "remove"}
	for i, cmd := range all {
		if cmd.Name() != want[i] {
			t.Errorf("All()[%d] = %q, want %q", i, cmd.Name(), want[i])
		}
	}
}
