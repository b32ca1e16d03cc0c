package app

import (
	"context"
	"sync"

	"github.com/dshills/modalcore/internal/config"
	"github.com/dshills/modalcore/internal/engine"
	"github.com/dshills/modalcore/internal/input"
	"github.com/dshills/modalcore/internal/input/mode"
	"github.com/dshills/modalcore/internal/platform"
	"github.com/dshills/modalcore/internal/platform/lua"
	"github.com/dshills/modalcore/internal/platform/watcher"
)

// Application owns a document, the session driving it and the extensions
// that shape its bindings.
type Application struct {
	mu sync.Mutex

	cfg  config.Config
	opts Options

	loader  *platform.Loader
	decls   []*platform.Declaration
	reg     *mode.Registry
	scripts *lua.Runtime
	doc     *engine.Document
	host    *host
	session *input.Session
	hooks   *input.HookManager
	metrics *input.Metrics

	closed bool
}

// Options configures the application beyond the loaded settings.
type Options struct {
	// Text is the initial document content.
	Text string

	// HostAction handles declared actions the document does not implement.
	// The default logs the action ID.
	HostAction HostActionFunc
}

// New builds an application. A failure releases what was already started.
func New(cfg config.Config, opts Options) (*Application, error) {
	if opts.HostAction == nil {
		opts.HostAction = logHostAction
	}
	app := &Application{
		cfg:     cfg,
		opts:    opts,
		hooks:   input.NewHookManager(),
		metrics: input.NewMetrics(),
	}

	if err := newBootstrapper(app).bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// Config returns the settings the application was built with.
func (app *Application) Config() config.Config {
	return app.cfg
}

// Document returns the edited document.
func (app *Application) Document() *engine.Document {
	return app.doc
}

// Session returns the session fed with keys.
func (app *Application) Session() *input.Session {
	return app.session
}

// Registry returns the registry in use, including reloaded ones.
func (app *Application) Registry() *mode.Registry {
	return app.session.Registry()
}

// Declarations returns the extensions loaded at startup.
func (app *Application) Declarations() []*platform.Declaration {
	return app.decls
}

// ScriptActions returns the IDs of the Lua actions, if any.
func (app *Application) ScriptActions() []string {
	if app.scripts == nil {
		return nil
	}
	return app.scripts.Actions()
}

// Metrics returns the session metrics.
func (app *Application) Metrics() *input.Metrics {
	return app.metrics
}

// Hooks returns the session hook manager.
func (app *Application) Hooks() *input.HookManager {
	return app.hooks
}

// Watch reloads extensions on change until ctx is done. It returns
// immediately when watching is disabled or nothing is configured.
func (app *Application) Watch(ctx context.Context) error {
	app.mu.Lock()
	if app.closed {
		app.mu.Unlock()
		return ErrClosed
	}
	app.mu.Unlock()

	if !app.cfg.Watch || len(app.cfg.Extensions) == 0 {
		return nil
	}

	w, err := watcher.New(watcher.Config{
		Paths:       app.cfg.Extensions,
		DebounceDur: app.cfg.WatchDebounce,
	})
	if err != nil {
		return err
	}
	r := &watcher.Reloader{
		Loader:   app.loader,
		Target:   app.session,
		Validate: app.cfg.Validate,
	}
	return w.Run(ctx, r.Reload)
}

// Close releases the script runtime.
func (app *Application) Close() {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.closed {
		return
	}
	app.closed = true
	if app.scripts != nil {
		app.scripts.Close()
	}
}
