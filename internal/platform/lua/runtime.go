package lua

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/modalcore/internal/engine"
	"github.com/dshills/modalcore/internal/logging"
)

// DefaultTimeout bounds a single script load or action call.
const DefaultTimeout = time.Second

// ModuleName is the global table scripts use.
const ModuleName = "modal"

// unsafeGlobals are removed after the base library is opened.
var unsafeGlobals = []string{"dofile", "loadfile", "load", "loadstring", "require", "module"}

// Runtime holds a sandboxed Lua state and the actions its scripts define.
type Runtime struct {
	mu sync.Mutex

	ls      *lua.LState
	timeout time.Duration

	actions map[string]*lua.LFunction
	sources map[string]string

	// doc is the document bound while an action runs.
	doc *engine.Document
	// loading names the chunk being run by LoadString.
	loading string

	closed bool
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithTimeout sets the time budget of script loads and action calls.
func WithTimeout(d time.Duration) Option {
	return func(r *Runtime) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// New creates a sandboxed runtime.
func New(opts ...Option) *Runtime {
	r := &Runtime{
		timeout: DefaultTimeout,
		actions: make(map[string]*lua.LFunction),
		sources: make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	for _, name := range unsafeGlobals {
		L.SetGlobal(name, lua.LNil)
	}
	r.ls = L
	L.SetGlobal(ModuleName, r.module())
	return r
}

// openSafeLibraries opens only safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// LoadFile runs a script file, collecting the actions it defines.
func (r *Runtime) LoadFile(path string) error {
	code, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	return r.LoadString(path, string(code))
}

// LoadString runs a chunk named name.
func (r *Runtime) LoadString(name, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}

	fn, err := r.ls.Load(strings.NewReader(code), name)
	if err != nil {
		return &ScriptError{Script: name, Err: err}
	}

	r.loading = name
	defer func() { r.loading = "" }()
	return r.call(name, fn)
}

// call runs fn under the timeout.
func (r *Runtime) call(label string, fn *lua.LFunction) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	r.ls.SetContext(ctx)
	defer r.ls.RemoveContext()

	err := r.ls.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true})
	if err == nil {
		return nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s after %s", ErrTimeout, label, r.timeout)
	}
	return &ScriptError{Script: label, Err: err}
}

// Actions returns the defined action IDs in sorted order.
func (r *Runtime) Actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.actions))
	for id := range r.actions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Source returns the script that defined an action.
func (r *Runtime) Source(id string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sources[id]
	return s, ok
}

// Run calls the action id with doc bound to the modal API.
func (r *Runtime) Run(doc *engine.Document, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	fn, ok := r.actions[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScriptAction, id)
	}

	r.doc = doc
	defer func() { r.doc = nil }()
	return r.call(id, fn)
}

// Install registers every defined action on doc.
func (r *Runtime) Install(doc *engine.Document) error {
	var errs []error
	for _, id := range r.Actions() {
		id := id
		err := doc.RegisterAction(id, func(d *engine.Document) error {
			return r.Run(d, id)
		})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		logging.Debug("script_action_installed", "action", id)
	}
	return errors.Join(errs...)
}

// Close releases the Lua state.
func (r *Runtime) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.ls.Close()
	r.closed = true
}
