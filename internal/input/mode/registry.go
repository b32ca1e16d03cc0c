package mode

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/modalcore/internal/command"
	"github.com/dshills/modalcore/internal/input/state"
)

// ErrNoBaseProvider indicates NewRegistry was called without a base.
var ErrNoBaseProvider = errors.New("mode: base provider is required")

// Conflict is one extension binding that replaces a base binding.
type Conflict struct {
	Provider string
	Mode     string
	state.Conflict
}

// String returns a representation like "eclipse/normal: gu (shadows)".
func (c Conflict) String() string {
	s := fmt.Sprintf("%s/%s: %s", c.Provider, c.Mode, c.Keys)
	if c.Shadowed {
		s += " (shadows)"
	}
	return s
}

// ConflictError lists every conflict found while building a registry.
type ConflictError struct {
	Conflicts []Conflict
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	parts := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		parts[i] = c.String()
	}
	return fmt.Sprintf("mode: %d conflicting binding(s): %s", len(e.Conflicts), strings.Join(parts, "; "))
}

type options struct {
	providers []Provider
	validate  bool
}

// Option configures registry construction.
type Option func(*options)

// WithProviders adds extension providers, applied in order.
func WithProviders(ps ...Provider) Option {
	return func(o *options) {
		o.providers = append(o.providers, ps...)
	}
}

// WithValidation makes NewRegistry fail on any conflicting binding.
func WithValidation() Option {
	return func(o *options) {
		o.validate = true
	}
}

// Registry maps mode names to merged binding tries.
// A Registry is immutable and safe for concurrent use.
type Registry struct {
	modes     map[string]*Mode
	providers []string
}

// NewRegistry merges base with the configured extension providers.
func NewRegistry(base Provider, opts ...Option) (*Registry, error) {
	if base == nil {
		return nil, ErrNoBaseProvider
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	roots := make(map[string]*state.State[command.Command])
	var conflicts []Conflict
	r := &Registry{modes: make(map[string]*Mode)}

	for i, p := range append([]Provider{base}, o.providers...) {
		if p == nil {
			continue
		}
		r.providers = append(r.providers, p.Name())
		states := p.States()
		for _, name := range modeNames(p) {
			ext := states[name]
			if i > 0 && o.validate {
				for _, c := range state.Conflicts(roots[name], ext) {
					conflicts = append(conflicts, Conflict{Provider: p.Name(), Mode: name, Conflict: c})
				}
			}
			roots[name] = state.Union(roots[name], ext)
		}
	}
	if len(conflicts) > 0 {
		return nil, &ConflictError{Conflicts: conflicts}
	}

	for name, root := range roots {
		m := describeMode(name)
		m.Root = root
		r.modes[name] = &m
	}
	return r, nil
}

// Mode returns the named mode.
func (r *Registry) Mode(name string) (*Mode, bool) {
	m, ok := r.modes[name]
	return m, ok
}

// Root returns the binding trie for name. Unknown modes get an empty trie.
func (r *Registry) Root(name string) *state.State[command.Command] {
	if m, ok := r.modes[name]; ok {
		return m.Root
	}
	return state.New[command.Command]()
}

// Modes returns the registered mode names in sorted order.
func (r *Registry) Modes() []string {
	names := make([]string, 0, len(r.modes))
	for name := range r.modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Providers returns the provider names in application order.
func (r *Registry) Providers() []string {
	return append([]string(nil), r.providers...)
}

// Bindings returns every complete sequence bound in mode.
func (r *Registry) Bindings(mode string) []state.Entry[command.Command] {
	return r.Root(mode).Entries()
}
