package input

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dshills/modalcore/internal/command"
	"github.com/dshills/modalcore/internal/editor"
	"github.com/dshills/modalcore/internal/input/key"
	"github.com/dshills/modalcore/internal/input/macro"
	"github.com/dshills/modalcore/internal/input/mode"
	"github.com/dshills/modalcore/internal/input/resolver"
	"github.com/dshills/modalcore/internal/logging"
)

// Outcome reports what one key did.
type Outcome struct {
	// Status is the resolver status. An Escape that ran the mode's Escape
	// binding reports StatusResolved.
	Status resolver.Status

	// Mode is the mode the key was handled in.
	Mode string

	// Keys is the sequence that resolved, failed to match or was cancelled.
	Keys key.Sequence

	// Count is the typed count, 0 when none was typed.
	Count int

	// Command is the executed command, or nil.
	Command command.Command

	// Repeated is set when Command ran through dot-repeat.
	Repeated bool

	// Typed is set when unbound keys were inserted as text.
	Typed bool

	// Consumed is set when a hook swallowed the key or the command.
	Consumed bool

	// Pending renders the input still pending after the key, e.g. "2d".
	Pending string
}

// Option configures a Session.
type Option func(*Session)

// WithHooks installs a hook manager.
func WithHooks(h *HookManager) Option {
	return func(s *Session) {
		if h != nil {
			s.hooks = h
		}
	}
}

// WithMetrics installs a metrics tracker.
func WithMetrics(m *Metrics) Option {
	return func(s *Session) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithMacros installs the macro register store.
func WithMacros(r *macro.Recorder) Option {
	return func(s *Session) {
		if r != nil {
			s.macros = r
		}
	}
}

// Session resolves keys against a mode registry and executes the resulting
// commands on a host editor.
//
// Feed and the accessors must be called from one goroutine. SetRegistry is
// safe for concurrent use.
type Session struct {
	ed       editor.Adaptor
	reg      *mode.Registry
	next     atomic.Pointer[mode.Registry]
	res      *resolver.Resolver[command.Command]
	modeName string
	hooks    *HookManager
	metrics  *Metrics

	last       command.Command
	lastCount  int
	lastInsert string
	recording  bool
	insertBuf  strings.Builder

	macros  *macro.Recorder
	playing bool
}

// NewSession creates a session positioned in the host's current mode.
func NewSession(ed editor.Adaptor, reg *mode.Registry, opts ...Option) (*Session, error) {
	if ed == nil {
		return nil, ErrNilAdaptor
	}
	if reg == nil {
		return nil, ErrNilRegistry
	}
	s := &Session{
		ed:      ed,
		reg:     reg,
		res:     resolver.New[command.Command](nil),
		hooks:   NewHookManager(),
		metrics: NewMetrics(),
		macros:  macro.NewRecorder(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.enterMode(ed.CurrentMode())
	return s, nil
}

// Feed handles one key. The returned error comes from the executed command;
// the session stays usable after it.
func (s *Session) Feed(ev key.Event) (Outcome, error) {
	s.metrics.RecordKey()
	if s.res.Phase() == resolver.PhaseIdle {
		s.adoptRegistry()
	}

	out := Outcome{Mode: s.modeName}
	if s.stopsRecording(ev) {
		reg := s.macros.Stop()
		logging.Debug("macro_recorded", "register", string(reg), "events", len(s.macros.Get(reg)))
		out.Status, out.Keys, out.Command = resolver.StatusResolved, key.Sequence{ev.Stroke()}, macro.Stop{}
		s.hooks.RunPostKeyEvent(ev, &out)
		return out, nil
	}
	if !s.playing {
		s.macros.Record(ev)
	}

	if s.hooks.RunPreKeyEvent(&ev, s.modeName) {
		s.metrics.RecordHookConsumption()
		out.Consumed = true
		out.Pending = s.res.Pending()
		s.hooks.RunPostKeyEvent(ev, &out)
		return out, nil
	}

	res := s.res.Feed(ev)
	out.Status, out.Keys, out.Count = res.Status, res.Keys, res.Count

	var err error
	switch res.Status {
	case resolver.StatusResolved:
		err = s.execute(&out, res.Payload, res.Count)
	case resolver.StatusCancelled:
		s.metrics.RecordCancel()
		if len(res.Keys) == 0 && res.Count == 0 {
			if node, ok := s.res.Root().Advance(key.Escape); ok && node.IsLeaf() {
				out.Status = resolver.StatusResolved
				out.Keys = key.Sequence{key.Escape}
				err = s.execute(&out, node.Payload(), command.NoCount)
			}
		}
	case resolver.StatusNoMatch:
		if s.typeKeys(res.Keys) {
			out.Typed = true
		} else {
			s.metrics.RecordNoMatch()
			logging.Debug("no_match", "mode", s.modeName, "keys", res.Keys.String())
		}
	}

	out.Pending = s.res.Pending()
	s.hooks.RunPostKeyEvent(ev, &out)
	return out, err
}

// FeedSequence feeds every stroke of seq and joins the command errors.
func (s *Session) FeedSequence(seq key.Sequence) ([]Outcome, error) {
	outs := make([]Outcome, 0, len(seq))
	var errs []error
	for _, k := range seq {
		out, err := s.Feed(k.Event())
		outs = append(outs, out)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return outs, errors.Join(errs...)
}

func (s *Session) execute(out *Outcome, cmd command.Command, count int) error {
	switch c := cmd.(type) {
	case macro.Record:
		out.Command = cmd
		return s.macros.Start(c.Register)
	case macro.Play:
		out.Command = cmd
		return s.play(c.Register, count)
	}
	if command.IsRepeat(cmd) {
		return s.repeat(out, count)
	}

	out.Command = cmd
	if s.hooks.RunPreCommand(cmd, count) {
		s.metrics.RecordHookConsumption()
		out.Consumed = true
		return nil
	}

	err := s.run(cmd, count, out.Keys)
	if err == nil && cmd.Repeatable() {
		s.last, s.lastCount = cmd, count
		s.lastInsert = ""
		s.insertBuf.Reset()
		s.recording = s.inserting()
	}
	return err
}

func (s *Session) repeat(out *Outcome, count int) error {
	if s.last == nil {
		return nil
	}
	if count == command.NoCount {
		count = s.lastCount
	} else {
		s.lastCount = count
	}
	out.Command = s.last
	out.Repeated = true
	s.metrics.RecordRepeat()

	if err := s.run(s.last, count, out.Keys); err != nil {
		return err
	}
	if !s.inserting() {
		return nil
	}
	if ins, ok := s.ed.(editor.TextInserter); ok && s.lastInsert != "" {
		ins.InsertText(s.lastInsert)
	}
	if node, ok := s.res.Root().Advance(key.Escape); ok && node.IsLeaf() {
		return s.run(node.Payload(), command.NoCount, key.Sequence{key.Escape})
	}
	return nil
}

// stopsRecording reports whether ev is the "q" that ends a recording.
func (s *Session) stopsRecording(ev key.Event) bool {
	if _, rec := s.macros.Recording(); !rec || s.playing {
		return false
	}
	return s.res.Phase() == resolver.PhaseIdle && !s.inserting() && ev.Stroke() == key.Rune('q')
}

// play feeds the events of register back through the session count times,
// at most command.MaxRepeat.
// Playback stops at the first failing command.
func (s *Session) play(register rune, count int) error {
	if s.playing {
		return macro.ErrRecursivePlayback
	}
	if register == 0 {
		if register = s.macros.LastPlayed(); register == 0 {
			return macro.ErrNoLastPlayed
		}
	}
	events := s.macros.Get(register)
	if len(events) == 0 {
		return fmt.Errorf("%w: %c", macro.ErrEmptyRegister, register)
	}
	s.macros.SetLastPlayed(register)

	s.playing = true
	defer func() { s.playing = false }()
	for i := 0; i < min(command.Effective(count), command.MaxRepeat); i++ {
		for _, ev := range events {
			if _, err := s.Feed(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Session) run(cmd command.Command, count int, keys key.Sequence) error {
	start := time.Now()
	err := cmd.Execute(s.ed, count)
	s.metrics.RecordCommand(time.Since(start), err)
	if err != nil {
		logging.CommandFailed(s.modeName, keys.String(), command.Describe(cmd), err)
	} else {
		logging.Resolved(s.modeName, keys.String(), command.Describe(cmd), count)
	}
	s.syncMode()
	return err
}

// typeKeys inserts the text of keys when the mode inserts unbound keys.
func (s *Session) typeKeys(keys key.Sequence) bool {
	if !s.inserting() {
		return false
	}
	ins, ok := s.ed.(editor.TextInserter)
	if !ok {
		return false
	}
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(strokeText(k))
	}
	if b.Len() == 0 {
		return false
	}
	ins.InsertText(b.String())
	if s.recording {
		s.insertBuf.WriteString(b.String())
	}
	s.metrics.RecordTyped()
	return true
}

func strokeText(k key.Stroke) string {
	switch k.Key {
	case key.KeyRune:
		if k.Modifiers.HasCtrl() || k.Modifiers.HasAlt() || k.Modifiers.HasMeta() {
			return ""
		}
		return string(k.Rune)
	case key.KeyEnter:
		return "\n"
	case key.KeyTab:
		return "\t"
	default:
		return ""
	}
}

func (s *Session) syncMode() {
	name := s.ed.CurrentMode()
	if name == s.modeName {
		return
	}
	if s.recording {
		s.lastInsert = s.insertBuf.String()
		s.recording = false
	}
	s.enterMode(name)
}

func (s *Session) enterMode(name string) {
	s.modeName = name
	s.res.SetRoot(s.reg.Root(name))
	s.res.SetCounting(!s.inserting())
}

func (s *Session) inserting() bool {
	m, ok := s.reg.Mode(s.modeName)
	return ok && m.Inserts
}

func (s *Session) adoptRegistry() {
	next := s.next.Swap(nil)
	if next == nil {
		return
	}
	s.reg = next
	s.enterMode(s.modeName)
	s.metrics.RecordRegistrySwap()
	logging.Info("registry_swapped", "providers", strings.Join(next.Providers(), ","))
}

// SetRegistry schedules reg to replace the active registry once no input is
// pending. Later calls before adoption win.
func (s *Session) SetRegistry(reg *mode.Registry) {
	if reg != nil {
		s.next.Store(reg)
	}
}

// Registry returns the registry in use.
func (s *Session) Registry() *mode.Registry {
	return s.reg
}

// Mode returns the mode the resolver is positioned in.
func (s *Session) Mode() string {
	return s.modeName
}

// Phase returns the resolver phase.
func (s *Session) Phase() resolver.Phase {
	return s.res.Phase()
}

// Pending renders the pending count and keys.
func (s *Session) Pending() string {
	return s.res.Pending()
}

// Reset discards pending input and resynchronizes with the host mode.
func (s *Session) Reset() {
	s.res.Reset()
	s.syncMode()
}

// LastCommand returns the command "." would repeat and its count.
func (s *Session) LastCommand() (command.Command, int) {
	return s.last, s.lastCount
}

// Hooks returns the hook manager.
func (s *Session) Hooks() *HookManager {
	return s.hooks
}

// Macros returns the macro register store.
func (s *Session) Macros() *macro.Recorder {
	return s.macros
}

// Metrics returns the metrics tracker.
func (s *Session) Metrics() *Metrics {
	return s.metrics
}
