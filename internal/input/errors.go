package input

import "errors"

// Session construction errors.
var (
	// ErrNilAdaptor indicates NewSession was called without a host.
	ErrNilAdaptor = errors.New("input: editor adaptor is required")

	// ErrNilRegistry indicates NewSession was called without a registry.
	ErrNilRegistry = errors.New("input: mode registry is required")
)
