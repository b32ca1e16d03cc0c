package app

import (
	"github.com/dshills/modalcore/internal/engine"
	"github.com/dshills/modalcore/internal/input"
	"github.com/dshills/modalcore/internal/logging"
	"github.com/dshills/modalcore/internal/platform"
	"github.com/dshills/modalcore/internal/platform/lua"
)

// bootstrapper handles component initialization with cleanup on failure.
type bootstrapper struct {
	app       *Application
	initOrder []string
}

func newBootstrapper(app *Application) *bootstrapper {
	return &bootstrapper{
		app:       app,
		initOrder: make([]string, 0, 4),
	}
}

// bootstrap initializes all components in dependency order.
func (b *bootstrapper) bootstrap() error {
	steps := []func() error{
		b.initExtensions,
		b.initDocument,
		b.initScripts,
		b.initSession,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			b.cleanup()
			return err
		}
	}
	logging.Debug("app_started", "components", b.initOrder)
	return nil
}

// initExtensions loads every declaration and builds the registry. Any
// broken extension fails startup.
func (b *bootstrapper) initExtensions() error {
	b.app.loader = platform.NewLoader(b.app.cfg.Extensions...)

	decls, err := b.app.loader.LoadAll()
	if err != nil {
		return &InitError{Component: "extensions", Err: err}
	}
	reg, err := platform.BuildRegistry(decls, b.app.cfg.Validate)
	if err != nil {
		return &InitError{Component: "registry", Err: err}
	}

	b.app.decls = decls
	b.app.reg = reg
	b.initOrder = append(b.initOrder, "extensions")
	return nil
}

func (b *bootstrapper) initDocument() error {
	b.app.doc = engine.New(
		engine.WithContent(b.app.opts.Text),
		engine.WithOptions(b.app.cfg.Options()),
	)
	b.app.host = &host{Document: b.app.doc, fallback: b.app.opts.HostAction}
	b.initOrder = append(b.initOrder, "document")
	return nil
}

// initScripts loads the Lua files and installs their actions.
func (b *bootstrapper) initScripts() error {
	if len(b.app.cfg.Scripts) == 0 {
		return nil
	}

	rt := lua.New()
	b.app.scripts = rt
	b.initOrder = append(b.initOrder, "scripts")

	for _, path := range b.app.cfg.Scripts {
		if err := rt.LoadFile(path); err != nil {
			return &InitError{Component: "scripts", Err: err}
		}
	}
	if err := rt.Install(b.app.doc); err != nil {
		return &InitError{Component: "scripts", Err: err}
	}
	return nil
}

func (b *bootstrapper) initSession() error {
	s, err := input.NewSession(b.app.host, b.app.reg,
		input.WithHooks(b.app.hooks),
		input.WithMetrics(b.app.metrics),
	)
	if err != nil {
		return &InitError{Component: "session", Err: err}
	}
	b.app.session = s
	b.initOrder = append(b.initOrder, "session")
	return nil
}

// cleanup releases initialized components in reverse order.
func (b *bootstrapper) cleanup() {
	for i := len(b.initOrder) - 1; i >= 0; i-- {
		switch b.initOrder[i] {
		case "scripts":
			b.app.scripts.Close()
			b.app.scripts = nil
		case "session":
			b.app.session = nil
		}
	}
}
