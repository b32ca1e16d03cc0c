package platform

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/modalcore/internal/input/mode"
	"github.com/dshills/modalcore/internal/input/vim"
	"github.com/dshills/modalcore/internal/logging"
)

// Format is a declaration file encoding.
type Format int

const (
	// FormatTOML decodes TOML declarations.
	FormatTOML Format = iota
	// FormatYAML decodes YAML declarations.
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// FormatOf returns the format implied by a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Loader reads declarations from files and directories.
type Loader struct {
	// searchPaths are files or directories to search for declarations.
	searchPaths []string
}

// NewLoader creates a loader for the given files or directories.
func NewLoader(paths ...string) *Loader {
	return &Loader{searchPaths: append([]string(nil), paths...)}
}

// AddSearchPath adds a file or directory to search for declarations.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// SearchPaths returns the configured paths.
func (l *Loader) SearchPaths() []string {
	return append([]string(nil), l.searchPaths...)
}

// LoadFile reads one declaration file.
func (l *Loader) LoadFile(path string) (*Declaration, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening declaration file: %w", err)
	}
	defer f.Close()

	d, err := LoadReader(f, format, path)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// LoadReader decodes a declaration. Unknown fields are rejected.
func LoadReader(r io.Reader, format Format, source string) (*Declaration, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading declaration: %w", err)
	}

	var d Declaration
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
			return nil, &ParseError{Path: source, Err: err}
		}
	default:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			pe := &ParseError{Path: source, Err: err}
			var de *toml.DecodeError
			if errors.As(err, &de) {
				pe.Line, pe.Column = de.Position()
			}
			return nil, pe
		}
	}

	d.Source = source
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Files returns the declaration files under the search paths in load
// order. Directories contribute their *.toml, *.yaml and *.yml files sorted
// by name.
func (l *Loader) Files() ([]string, error) {
	var files []string
	for _, p := range l.searchPaths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("searching %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		var found []string
		for _, pattern := range []string{"*.toml", "*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(p, pattern))
			if err != nil {
				return nil, err
			}
			found = append(found, matches...)
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	return files, nil
}

// LoadAll loads every declaration under the search paths. Files that fail
// are logged and skipped; their errors are joined into the returned error.
func (l *Loader) LoadAll() ([]*Declaration, error) {
	files, err := l.Files()
	if err != nil {
		return nil, err
	}

	var decls []*Declaration
	var errs []error
	for _, path := range files {
		d, err := l.LoadFile(path)
		if err != nil {
			logging.Warn("declaration_skipped", "path", path, "error", err.Error())
			errs = append(errs, err)
			continue
		}
		decls = append(decls, d)
	}
	return decls, errors.Join(errs...)
}

// Providers builds a provider per declaration over the base grammar's
// motions and text objects.
func Providers(decls []*Declaration) ([]mode.Provider, error) {
	objects := vim.MotionTrie()
	providers := make([]mode.Provider, 0, len(decls))
	for _, d := range decls {
		p, err := d.Provider(objects)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return providers, nil
}

// BuildRegistry merges the base grammar with decls. With validate set,
// conflicting bindings fail with *mode.ConflictError.
func BuildRegistry(decls []*Declaration, validate bool) (*mode.Registry, error) {
	providers, err := Providers(decls)
	if err != nil {
		return nil, err
	}
	opts := []mode.Option{mode.WithProviders(providers...)}
	if validate {
		opts = append(opts, mode.WithValidation())
	}
	return mode.NewRegistry(vim.Provider(), opts...)
}

// Reload loads the search paths and builds a registry. It is the callback
// used by the extension watcher.
func (l *Loader) Reload(validate bool) (*mode.Registry, error) {
	decls, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	return BuildRegistry(decls, validate)
}
