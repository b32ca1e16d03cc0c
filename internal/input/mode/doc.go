// Package mode provides the immutable registry mapping editor modes to
// their binding tries.
//
// A Registry is built once from a base Provider (the Vim grammar) and any
// number of extension Providers contributed by the host platform. For each
// mode the tries are merged in order with state.Union, so an extension
// binding replaces a base binding on the same sequence.
//
// When built WithValidation, every replacement is reported up front as a
// *ConflictError instead of being applied silently.
//
// Mode Lifecycle:
//
// The registry holds no current mode. Sessions ask the host for its mode
// after each command and switch their resolver to Registry.Root of that
// mode.
package mode
