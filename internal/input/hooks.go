package input

import (
	"sort"
	"sync"

	"github.com/dshills/modalcore/internal/command"
	"github.com/dshills/modalcore/internal/input/key"
	"github.com/dshills/modalcore/internal/logging"
)

// Hook allows interception of session input handling.
type Hook interface {
	// PreKeyEvent is called before a key reaches the resolver.
	// Return true to consume the event.
	PreKeyEvent(ev *key.Event, mode string) bool

	// PostKeyEvent is called after a key has been handled.
	PostKeyEvent(ev key.Event, out *Outcome)

	// PreCommand is called before a resolved command executes.
	// Return true to skip execution.
	PreCommand(cmd command.Command, count int) bool
}

// HookPriority defines the execution order for hooks.
// Lower values execute first.
type HookPriority int

const (
	// HookPriorityHigh runs early in the hook chain.
	HookPriorityHigh HookPriority = -100
	// HookPriorityNormal is the default priority.
	HookPriorityNormal HookPriority = 0
	// HookPriorityLow runs late in the hook chain.
	HookPriorityLow HookPriority = 100
)

// HookID uniquely identifies a registered hook.
type HookID uint64

// HookRegistration holds metadata about a registered hook.
type HookRegistration struct {
	ID       HookID
	Name     string
	Priority HookPriority
	Hook     Hook
}

// HookManager keeps hooks ordered by priority.
// Hooks with equal priority run in registration order.
type HookManager struct {
	mu     sync.RWMutex
	hooks  []HookRegistration
	nextID HookID
}

// NewHookManager creates an empty hook manager.
func NewHookManager() *HookManager {
	return &HookManager{}
}

// Register adds a hook and returns its ID.
func (m *HookManager) Register(name string, priority HookPriority, hook Hook) HookID {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.hooks = append(m.hooks, HookRegistration{
		ID:       m.nextID,
		Name:     name,
		Priority: priority,
		Hook:     hook,
	})
	sort.SliceStable(m.hooks, func(i, j int) bool {
		return m.hooks[i].Priority < m.hooks[j].Priority
	})
	return m.nextID
}

// Unregister removes a hook by ID.
func (m *HookManager) Unregister(id HookID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.hooks {
		if m.hooks[i].ID == id {
			m.hooks = append(m.hooks[:i], m.hooks[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of registered hooks.
func (m *HookManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.hooks)
}

// List returns all hook registrations in execution order.
func (m *HookManager) List() []HookRegistration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]HookRegistration(nil), m.hooks...)
}

func (m *HookManager) snapshot() []Hook {
	m.mu.RLock()
	defer m.mu.RUnlock()
	hooks := make([]Hook, len(m.hooks))
	for i := range m.hooks {
		hooks[i] = m.hooks[i].Hook
	}
	return hooks
}

// RunPreKeyEvent runs PreKeyEvent hooks until one consumes the event.
func (m *HookManager) RunPreKeyEvent(ev *key.Event, mode string) bool {
	for _, h := range m.snapshot() {
		if h.PreKeyEvent(ev, mode) {
			return true
		}
	}
	return false
}

// RunPostKeyEvent runs every PostKeyEvent hook.
func (m *HookManager) RunPostKeyEvent(ev key.Event, out *Outcome) {
	for _, h := range m.snapshot() {
		h.PostKeyEvent(ev, out)
	}
}

// RunPreCommand runs PreCommand hooks until one consumes the command.
func (m *HookManager) RunPreCommand(cmd command.Command, count int) bool {
	for _, h := range m.snapshot() {
		if h.PreCommand(cmd, count) {
			return true
		}
	}
	return false
}

// BaseHook provides a default implementation of the Hook interface.
// Embed this in custom hooks to only implement the methods you need.
type BaseHook struct{}

// PreKeyEvent is a no-op that does not consume events.
func (BaseHook) PreKeyEvent(*key.Event, string) bool { return false }

// PostKeyEvent is a no-op.
func (BaseHook) PostKeyEvent(key.Event, *Outcome) {}

// PreCommand is a no-op that does not consume commands.
func (BaseHook) PreCommand(command.Command, int) bool { return false }

// FuncHook wraps functions into a Hook interface implementation.
type FuncHook struct {
	PreKeyEventFunc  func(*key.Event, string) bool
	PostKeyEventFunc func(key.Event, *Outcome)
	PreCommandFunc   func(command.Command, int) bool
}

// PreKeyEvent calls the PreKeyEventFunc if set.
func (h FuncHook) PreKeyEvent(ev *key.Event, mode string) bool {
	if h.PreKeyEventFunc != nil {
		return h.PreKeyEventFunc(ev, mode)
	}
	return false
}

// PostKeyEvent calls the PostKeyEventFunc if set.
func (h FuncHook) PostKeyEvent(ev key.Event, out *Outcome) {
	if h.PostKeyEventFunc != nil {
		h.PostKeyEventFunc(ev, out)
	}
}

// PreCommand calls the PreCommandFunc if set.
func (h FuncHook) PreCommand(cmd command.Command, count int) bool {
	if h.PreCommandFunc != nil {
		return h.PreCommandFunc(cmd, count)
	}
	return false
}

// LoggingHook logs every key and its outcome at debug level.
type LoggingHook struct {
	BaseHook
}

// PreKeyEvent logs the key event.
func (LoggingHook) PreKeyEvent(ev *key.Event, mode string) bool {
	logging.Debug("key", "key", ev.String(), "mode", mode)
	return false
}

// PostKeyEvent logs the outcome.
func (LoggingHook) PostKeyEvent(ev key.Event, out *Outcome) {
	logging.Debug("key_outcome", "key", ev.String(), "status", out.Status.String(), "pending", out.Pending)
}

// FilterHook blocks keys matching a predicate.
type FilterHook struct {
	BaseHook

	// KeyFilter returns true to consume a key event.
	KeyFilter func(ev *key.Event, mode string) bool
}

// PreKeyEvent applies the key filter.
func (h FilterHook) PreKeyEvent(ev *key.Event, mode string) bool {
	if h.KeyFilter != nil {
		return h.KeyFilter(ev, mode)
	}
	return false
}
