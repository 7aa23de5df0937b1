package commands

import (
	"fmt"
	"sort"
)

// Registry is the closed mapping from command names and aliases to
// commands. It is populated from init() functions at startup and only
// read afterwards, so lookups need no locking.
type Registry struct {
	byName  map[string]Command // primary names and aliases
	primary []string           // primary names in registration order
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Command)}
}

// Register adds a command under its name and all aliases.
// Returns an error if any of them is already taken.
func (r *Registry) Register(c Command) error {
	names := append([]string{c.Name()}, c.Aliases()...)
	for _, n := range names {
		if _, taken := r.byName[n]; taken {
			return fmt.Errorf("command name already registered: %s", n)
		}
	}

	for _, n := range names {
		r.byName[n] = c
	}
	r.primary = append(r.primary, c.Name())
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	cmd, ok := r.byName[name]
	return cmd, ok
}

// All returns every registered command, sorted by primary name.
func (r *Registry) All() []Command {
	names := make([]string, len(r.primary))
	copy(names, r.primary)
	sort.Strings(names)

	cmds := make([]Command, len(names))
	for i, n := range names {
		cmds[i] = r.byName[n]
	}
	return cmds
}

// DefaultRegistry is the registry the dispatcher runs against.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry, panicking on a name
// collision. Called from init() only.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
