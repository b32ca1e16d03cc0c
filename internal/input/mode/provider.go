package mode

import (
	"sort"

	"github.com/dshills/modalcore/internal/command"
	"github.com/dshills/modalcore/internal/input/key"
	"github.com/dshills/modalcore/internal/input/state"
)

// Provider contributes bindings for one or more modes.
type Provider interface {
	// Name identifies the provider in diagnostics.
	Name() string

	// States returns the binding trie for each mode the provider covers.
	States() map[string]*state.State[command.Command]
}

// StaticProvider is a Provider backed by fixed tries.
type StaticProvider struct {
	ID    string
	Tries map[string]*state.State[command.Command]
}

// NewProvider creates an empty static provider.
func NewProvider(id string) *StaticProvider {
	return &StaticProvider{ID: id, Tries: make(map[string]*state.State[command.Command])}
}

// Name implements Provider.
func (p *StaticProvider) Name() string { return p.ID }

// States implements Provider.
func (p *StaticProvider) States() map[string]*state.State[command.Command] { return p.Tries }

// Add merges bindings into the trie for mode. Later calls win.
func (p *StaticProvider) Add(mode string, bindings ...state.Binding[command.Command]) *StaticProvider {
	p.Tries[mode] = state.Union(p.Tries[mode], state.New(bindings...))
	return p
}

// Declare binds seq to cmd in mode, creating the intermediate transitions.
// Later calls win.
func (p *StaticProvider) Declare(mode string, seq key.Sequence, cmd command.Command) *StaticProvider {
	decl := state.Declare(seq, cmd)
	p.Tries[mode] = state.Union(p.Tries[mode], state.Build([]state.Declaration[command.Command]{decl}))
	return p
}

// modeNames returns the sorted mode names of a provider.
func modeNames(p Provider) []string {
	states := p.States()
	names := make([]string, 0, len(states))
	for name := range states {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
