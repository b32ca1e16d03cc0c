package watcher

import (
	"os"
	"strings"

	"github.com/dshills/modalcore/internal/input/mode"
	"github.com/dshills/modalcore/internal/logging"
	"github.com/dshills/modalcore/internal/platform"
)

// RegistrySetter receives rebuilt registries. input.Session implements it.
type RegistrySetter interface {
	SetRegistry(reg *mode.Registry)
}

// Reloader rebuilds the registry from a loader and hands it to a target.
// A failed rebuild leaves the target's registry in place.
type Reloader struct {
	Loader   *platform.Loader
	Target   RegistrySetter
	Validate bool
}

// Reload rebuilds and installs the registry.
func (r *Reloader) Reload() error {
	path := strings.Join(r.Loader.SearchPaths(), string(os.PathListSeparator))

	reg, err := r.Loader.Reload(r.Validate)
	if err != nil {
		logging.ExtensionReload(path, 0, err)
		return err
	}

	r.Target.SetRegistry(reg)
	logging.ExtensionReload(path, len(reg.Providers()), nil)
	return nil
}
