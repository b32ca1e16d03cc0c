package macro

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/modalcore/internal/input/key"
)

// Errors for recording and playback.
var (
	// ErrInvalidRegister is returned for a rune that names no register.
	ErrInvalidRegister = errors.New("macro: invalid register")

	// ErrAlreadyRecording is returned when starting a second recording.
	ErrAlreadyRecording = errors.New("macro: already recording")

	// ErrEmptyRegister is returned when playing a register with no events.
	ErrEmptyRegister = errors.New("macro: empty register")

	// ErrNoLastPlayed is returned by "@@" before any register was played.
	ErrNoLastPlayed = errors.New("macro: no previously played register")

	// ErrRecursivePlayback is returned when a played macro plays a macro.
	ErrRecursivePlayback = errors.New("macro: recursive playback")
)

// Recorder stores recorded key events per register.
type Recorder struct {
	mu         sync.Mutex
	recording  bool
	register   rune
	appending  bool
	events     []key.Event
	registers  map[rune][]key.Event
	lastPlayed rune
}

// NewRecorder creates a recorder with empty registers.
func NewRecorder() *Recorder {
	return &Recorder{
		registers: make(map[rune][]key.Event),
	}
}

// Start begins recording into register. An upper-case letter appends to
// the lower-case register when recording stops.
func (r *Recorder) Start(register rune) error {
	target := NormalizeRegister(register)
	if target == 0 {
		return fmt.Errorf("%w: %q", ErrInvalidRegister, register)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		return fmt.Errorf("%w: register %c", ErrAlreadyRecording, r.register)
	}
	r.recording = true
	r.register = target
	r.appending = IsAppendRegister(register)
	r.events = nil
	return nil
}

// Stop ends the recording and saves it. It returns the register recorded
// into, or 0 when nothing was being recorded.
func (r *Recorder) Stop() rune {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return 0
	}
	r.recording = false

	saved := make([]key.Event, 0, len(r.events))
	if r.appending {
		saved = append(saved, r.registers[r.register]...)
	}
	saved = append(saved, r.events...)
	if len(saved) == 0 {
		delete(r.registers, r.register)
	} else {
		r.registers[r.register] = saved
	}
	r.events = nil
	return r.register
}

// Recording returns the register being recorded into.
func (r *Recorder) Recording() (rune, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.register, r.recording
}

// Record appends ev to the current recording. It does nothing when not
// recording.
func (r *Recorder) Record(ev key.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		r.events = append(r.events, ev)
	}
}

// Get returns a copy of the events stored in register.
func (r *Recorder) Get(register rune) []key.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]key.Event(nil), r.registers[NormalizeRegister(register)]...)
}

// Set replaces the contents of register. Empty events clear it.
func (r *Recorder) Set(register rune, events []key.Event) error {
	target := NormalizeRegister(register)
	if target == 0 {
		return fmt.Errorf("%w: %q", ErrInvalidRegister, register)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(events) == 0 {
		delete(r.registers, target)
		return nil
	}
	r.registers[target] = append([]key.Event(nil), events...)
	return nil
}

// Registers returns the non-empty registers in sorted order.
func (r *Recorder) Registers() []rune {
	r.mu.Lock()
	defer r.mu.Unlock()

	regs := make([]rune, 0, len(r.registers))
	for reg := range r.registers {
		regs = append(regs, reg)
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i] < regs[j] })
	return regs
}

// SetLastPlayed remembers register for "@@".
func (r *Recorder) SetLastPlayed(register rune) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastPlayed = register
}

// LastPlayed returns the register "@@" replays, or 0.
func (r *Recorder) LastPlayed() rune {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastPlayed
}
